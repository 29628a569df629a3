// Package chromakey replaces a green-screen background in camera frames.
//
// # Overview
//
// chromakey removes a designated screen colour from a foreground frame and
// composites what remains over a background image, producing a frame of
// the foreground's size. It is the numerical core behind a live camera
// preview and still capture: capture, decoding and encoding stay with
// the host.
//
// # Quick Start
//
//	import "github.com/gogpu/chromakey"
//
//	p, err := chromakey.NewPipeline(chromakey.WithKeyer(chromakey.KeyerDistance))
//	if err != nil {
//	    return err
//	}
//	p.UpdateFields(map[string]any{
//	    "backgroundPath": "beach.jpg",
//	    "colour":         []any{0, 255, 0},
//	    "sensitivity":    0.4,
//	})
//	out, err := p.Process(chromakey.FromImage(cameraImage))
//
// # Keyers
//
// Two keying strategies share one Keyer interface:
//
//   - KeyerCube precomputes a 64³ table over the RGB cube in which every
//     colour whose hue lies in Params.HueRange is transparent, looks each
//     pixel up in its nearest cell, and composites the premultiplied
//     result over the background with source-over.
//   - KeyerDistance measures each pixel's distance from Params.TargetColor
//     and blends foreground and background by a ramp over Threshold and
//     Smoothing, in a single pass.
//
// KeyerPassThrough returns the foreground unchanged.
//
// # Backgrounds
//
// Backgrounds of any size are fitted to the frame by Fit: scaled to the
// frame height, centred horizontally and cropped. Without a usable
// background the pipeline composites over a solid fallback colour.
//
// Backgrounds are read through a Loader, FileLoader by default. Wrap it
// in a CachingLoader when the host switches between a few backgrounds:
//
//	chromakey.NewPipeline(chromakey.WithLoader(
//	    chromakey.NewCachingLoader(chromakey.FileLoader{}, 4)))
//
// # Parameters
//
// Params is an immutable value. Updates carry optional fields (Opt) and
// are merged field by field, so an update that only sets Threshold keeps
// every other setting. ParseUpdate accepts the loosely typed records sent
// by platform hosts.
//
// # Concurrency
//
// A Pipeline must be driven from one goroutine at a time. Per-pixel work
// is split into row bands and run on a shared worker pool.
package chromakey
