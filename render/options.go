// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

// Option configures a Renderer during creation.
//
// Example:
//
//	r, err := render.NewRenderer(store, device, sink,
//	    render.WithBackTexture("mymod:textures/block/oak_planks.png"))
type Option func(*options)

// options holds optional configuration for Renderer creation.
type options struct {
	backTexture string
	light       uint32
}

// defaultOptions returns the default renderer options.
func defaultOptions() options {
	return options{
		backTexture: BackTexture,
		light:       FullBright,
	}
}

// FullBright is the packed lightmap value for maximum block and sky light.
const FullBright = 0xF000F0

// WithBackTexture replaces the texture of the board's back and sides.
func WithBackTexture(location string) Option {
	return func(o *options) {
		o.backTexture = location
	}
}

// WithDefaultLight sets the lightmap used for placements whose Light is 0.
func WithDefaultLight(light uint32) Option {
	return func(o *options) {
		o.light = light
	}
}
