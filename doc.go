// Package ggpaint keeps painted canvases and their GPU textures in sync.
//
// # Overview
//
// A canvas is a small named picture (for example 16x16 or 32x32 pixels)
// whose pixels arrive from the network at increasing version numbers. The
// renderer draws each visible canvas every frame and needs a GPU texture
// holding its latest pixels. ggpaint provides the pieces for that:
//
//   - picture: a thread-safe store of the latest Picture per canvas name
//   - texture: the canvas texture cache, which lazily allocates one texture
//     per canvas, refreshes it when a newer version is requested, and
//     uploads a white placeholder until real data has arrived
//   - render: quad emission for mounted and held canvases, the canvas
//     shader, and a Renderer owning the cache
//   - config: feature flags loaded from a file and synced from the server
//   - protocol: the wire codec for canvas updates and config sync
//
// # Quick Start
//
//	store := picture.NewStore()
//	cache, _ := texture.NewCache(store, texture.NewDevice(texture.NewSoftwareCreator()))
//	defer cache.Close()
//
//	store.Put("mapA", 1, pixels)
//	tex, err := cache.GetOrCreate("mapA", 1, 16, 16)
//
// # Colors
//
// Pictures carry 0xAARRGGBB colors; textures hold 0xAABBGGRR. The upload
// path swaps red and blue with [Color.SwapRedBlue].
//
// # Logging
//
// All packages log through [Logger], which is silent until [SetLogger] is
// called.
package ggpaint
