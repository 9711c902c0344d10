// Package raster draws into caller-owned RGBA pixel buffers.
//
// A [Frame] is a view over a row-major slice of 4-byte R,G,B,A pixels. It
// never owns or retains the slice beyond the lifetime of the view, so a
// display shell can wrap its buffer once per frame:
//
//	f, err := raster.NewFrame(buf, w, h)
//	f.Clear(raster.Black)
//	f.FillDisk(disk, raster.White)
//
// Pixel (col, row) is sampled at the integer coordinate (col, row). Drawing
// outside the frame is silently clipped.
package raster
