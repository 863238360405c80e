// Package imaging turns source image bytes into resized image bytes.
//
// The geometry (how much to scale, what to crop) is computed by PlanFor as
// pure arithmetic; Resize applies a plan to real pixels with Lanczos3
// resampling and re-encodes in the format the source decoded as.
package imaging

import (
	"bytes"
	"image"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"

	"github.com/nfnt/resize"

	"github.com/imgfit/imgfit/internal/errs"
)

// jpegQuality matches the usual thumbnail-service tradeoff between size and
// visible artifacts.
const jpegQuality = 85

// Resize decodes data, fits it into width x height under mode and re-encodes
// it in the source's own format. It returns the output bytes and their MIME
// content type.
//
// Undecodable input fails with ErrKindDecodeFailed; an encoder failure with
// ErrKindEncodeFailed. The format is never silently converted.
func Resize(data []byte, width, height int, mode Mode) ([]byte, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", errs.Wrap(errs.ErrKindDecodeFailed, "cannot decode source image", err)
	}

	bounds := img.Bounds()
	plan := PlanFor(bounds.Dx(), bounds.Dy(), width, height, mode)

	out := apply(img, plan)

	var buf bytes.Buffer
	switch format {
	case "jpeg":
		err = jpeg.Encode(&buf, out, &jpeg.Options{Quality: jpegQuality})
	case "png":
		err = png.Encode(&buf, out)
	case "gif":
		err = gif.Encode(&buf, out, nil)
	default:
		return nil, "", errs.Newf(errs.ErrKindEncodeFailed, "no encoder for format %q", format)
	}
	if err != nil {
		return nil, "", errs.Wrap(errs.ErrKindEncodeFailed, "cannot encode "+format+" output", err)
	}

	return buf.Bytes(), "image/" + format, nil
}

// apply resamples img to the plan's intermediate size and crops if the plan
// asks for it. A plan whose scaled size equals the source skips resampling,
// so a scale-down passthrough costs only a re-encode.
func apply(img image.Image, plan Plan) image.Image {
	bounds := img.Bounds()

	out := img
	if plan.ScaledWidth != bounds.Dx() || plan.ScaledHeight != bounds.Dy() {
		out = resize.Resize(uint(plan.ScaledWidth), uint(plan.ScaledHeight), img, resize.Lanczos3)
	}

	if plan.Crop == nil {
		return out
	}

	// The crop rectangle lives in the scaled image's coordinate space.
	// Clamp into bounds regardless of the plan's ceiling bias.
	rect := plan.Crop.Add(out.Bounds().Min).Intersect(out.Bounds())
	if rect == out.Bounds() {
		return out
	}

	cropped := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(cropped, cropped.Bounds(), out, rect.Min, draw.Src)
	return cropped
}
