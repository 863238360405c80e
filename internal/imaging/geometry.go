package imaging

import (
	"image"
	"math"
)

// Plan is the crop/resize work computed for one transformation.
// The source is first resampled to (ScaledWidth, ScaledHeight); if Crop is
// set, that rectangle of the scaled image becomes the output. The final
// output therefore measures (OutWidth, OutHeight).
type Plan struct {
	ScaledWidth  int
	ScaledHeight int

	// Crop is a rectangle within the scaled image's bounds. Only cover
	// mode sets it.
	Crop *image.Rectangle

	OutWidth  int
	OutHeight int
}

// PlanFor computes the geometry for fitting a srcW x srcH image into
// dstW x dstH under mode. Pure arithmetic, no I/O. Assumes all inputs are
// positive; non-positive targets are rejected before any plan is computed
// and a decoded image cannot have a zero axis.
func PlanFor(srcW, srcH, dstW, dstH int, mode Mode) Plan {
	switch mode {
	case ModeFill:
		return Plan{
			ScaledWidth:  dstW,
			ScaledHeight: dstH,
			OutWidth:     dstW,
			OutHeight:    dstH,
		}

	case ModeContain:
		return planContain(srcW, srcH, dstW, dstH)

	case ModeScaleDown:
		if srcW <= dstW && srcH <= dstH {
			return Plan{
				ScaledWidth:  srcW,
				ScaledHeight: srcH,
				OutWidth:     srcW,
				OutHeight:    srcH,
			}
		}
		return planContain(srcW, srcH, dstW, dstH)

	default: // ModeCover
		return planCover(srcW, srcH, dstW, dstH)
	}
}

func planContain(srcW, srcH, dstW, dstH int) Plan {
	scale := math.Min(float64(dstW)/float64(srcW), float64(dstH)/float64(srcH))
	w := atLeastOne(int(math.Round(float64(srcW) * scale)))
	h := atLeastOne(int(math.Round(float64(srcH) * scale)))
	return Plan{
		ScaledWidth:  w,
		ScaledHeight: h,
		OutWidth:     w,
		OutHeight:    h,
	}
}

func planCover(srcW, srcH, dstW, dstH int) Plan {
	// The larger scale ratio wins: dstW/srcW >= dstH/srcH exactly when
	// dstW*srcH >= dstH*srcW. Staying in integers keeps the binding axis
	// at precisely the target size; the free axis rounds up so the
	// intermediate is never a pixel short of the crop.
	var w, h int
	if dstW*srcH >= dstH*srcW {
		w = dstW
		h = ceilDiv(srcH*dstW, srcW)
	} else {
		h = dstH
		w = ceilDiv(srcW*dstH, srcH)
	}
	if w < dstW {
		w = dstW
	}
	if h < dstH {
		h = dstH
	}

	x := (w - dstW) / 2
	y := (h - dstH) / 2
	crop := image.Rect(x, y, x+dstW, y+dstH)

	return Plan{
		ScaledWidth:  w,
		ScaledHeight: h,
		Crop:         &crop,
		OutWidth:     dstW,
		OutHeight:    dstH,
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
