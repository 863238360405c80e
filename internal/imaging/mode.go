package imaging

import "github.com/imgfit/imgfit/internal/errs"

// Mode selects how the source is fitted into the target dimensions.
// The set is closed; geometry dispatches on it once per request.
type Mode string

const (
	// ModeCover scales to fill the target, cropping the overflow. Default.
	ModeCover Mode = "cover"
	// ModeContain scales to fit within the target, preserving aspect ratio.
	ModeContain Mode = "contain"
	// ModeFill stretches to the exact target size. Intentional distortion.
	ModeFill Mode = "fill"
	// ModeScaleDown behaves like contain but never upscales.
	ModeScaleDown Mode = "scale-down"
)

// ParseMode resolves the wire spelling of a mode. The empty string defaults
// to cover. "scaledown" is accepted as an alias of "scale-down" for
// compatibility with earlier clients.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "":
		return ModeCover, nil
	case "cover":
		return ModeCover, nil
	case "contain":
		return ModeContain, nil
	case "fill":
		return ModeFill, nil
	case "scale-down", "scaledown":
		return ModeScaleDown, nil
	default:
		return "", errs.Newf(errs.ErrKindInvalidInput, "unknown object mode %q", s)
	}
}
