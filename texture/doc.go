// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package texture keeps one GPU texture per visible canvas.
//
// # Cache
//
// [Cache] maps canvas names to [CachedTexture] entries. GetOrCreate
// allocates a texture on first use and refreshes it from the picture
// source when a newer version is requested or no real data has been
// loaded yet:
//
//	cache, err := texture.NewCache(store, texture.NewDevice(creator))
//	if err != nil {
//	    return err
//	}
//	defer cache.Close()
//
//	entry, err := cache.GetOrCreate("mapA", version, 16, 16)
//	if err != nil {
//	    return err
//	}
//	draw(entry.Texture())
//
// # Refresh
//
// A refresh looks the canvas up in the picture source. Real pixels are
// always uploaded and their version adopted, even when it is lower than
// the loaded one. A missing picture uploads a white placeholder only if
// the texture has never been filled, so a transient miss never replaces
// real content.
// Pixel buffers shorter than width*height are rejected without touching
// the texture.
//
// Colors are converted from the picture layout 0xAARRGGBB to the texture
// layout 0xAABBGGRR while uploading.
//
// # Threading
//
// Cache is NOT safe for concurrent use. All methods run on the render
// thread. The picture source may be written concurrently; it is only read
// for the duration of a refresh.
//
// # Devices
//
// [NewDevice] adapts any gpucontext.TextureCreator (gogpu renderers, or
// [NewSoftwareCreator] for tools and tests) to the [Device] contract used
// by the cache.
package texture
