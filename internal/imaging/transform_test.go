package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imgfit/imgfit/internal/errs"
)

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	return img
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, testImage(w, h)))
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, testImage(w, h), nil))
	return buf.Bytes()
}

func encodeGIF(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, gif.Encode(&buf, testImage(w, h), nil))
	return buf.Bytes()
}

func decodeDims(t *testing.T, data []byte) (w, h int, format string) {
	t.Helper()
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	return cfg.Width, cfg.Height, format
}

func TestResize_Cover(t *testing.T) {
	src := encodePNG(t, 400, 200)

	out, contentType, err := Resize(src, 80, 60, ModeCover)
	require.NoError(t, err)

	w, h, format := decodeDims(t, out)
	assert.Equal(t, 80, w)
	assert.Equal(t, 60, h)
	assert.Equal(t, "png", format)
	assert.Equal(t, "image/png", contentType)
}

func TestResize_Contain(t *testing.T) {
	src := encodePNG(t, 400, 200)

	out, _, err := Resize(src, 80, 60, ModeContain)
	require.NoError(t, err)

	w, h, _ := decodeDims(t, out)
	assert.Equal(t, 80, w)
	assert.Equal(t, 40, h)
}

func TestResize_Fill(t *testing.T) {
	src := encodePNG(t, 400, 200)

	out, _, err := Resize(src, 50, 50, ModeFill)
	require.NoError(t, err)

	w, h, _ := decodeDims(t, out)
	assert.Equal(t, 50, w)
	assert.Equal(t, 50, h)
}

func TestResize_ScaleDownKeepsSmallSource(t *testing.T) {
	src := encodePNG(t, 100, 100)

	out, _, err := Resize(src, 800, 600, ModeScaleDown)
	require.NoError(t, err)

	w, h, format := decodeDims(t, out)
	assert.Equal(t, 100, w)
	assert.Equal(t, 100, h)
	assert.Equal(t, "png", format)
}

func TestResize_PreservesFormat(t *testing.T) {
	tests := []struct {
		name   string
		src    []byte
		format string
		ctype  string
	}{
		{"jpeg", encodeJPEG(t, 200, 100), "jpeg", "image/jpeg"},
		{"png", encodePNG(t, 200, 100), "png", "image/png"},
		{"gif", encodeGIF(t, 200, 100), "gif", "image/gif"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, contentType, err := Resize(tt.src, 50, 50, ModeCover)
			require.NoError(t, err)

			_, _, format := decodeDims(t, out)
			assert.Equal(t, tt.format, format)
			assert.Equal(t, tt.ctype, contentType)
		})
	}
}

func TestResize_UndecodableInput(t *testing.T) {
	for _, data := range [][]byte{nil, []byte("not an image"), {0xFF, 0x00, 0x12}} {
		_, _, err := Resize(data, 80, 60, ModeCover)
		require.Error(t, err)
		assert.True(t, errs.IsDecodeFailed(err), "got %v", err)
	}
}

func TestResize_CoverMismatchedAspect(t *testing.T) {
	// Tall source into a wide box: the crop must stay inside the
	// intermediate even with awkward rounding.
	src := encodePNG(t, 101, 997)

	out, _, err := Resize(src, 300, 100, ModeCover)
	require.NoError(t, err)

	w, h, _ := decodeDims(t, out)
	assert.Equal(t, 300, w)
	assert.Equal(t, 100, h)
}
