package fill

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"regexp"
	"strings"

	"github.com/formpress/formpress/field"
)

// ErrUnsupportedImage marks a data URI whose format the renderer cannot
// embed. Only PNG and JPEG are supported; anything else is a non-fatal skip.
var ErrUnsupportedImage = errors.New("fill: unsupported image format")

var dataURIRe = regexp.MustCompile(`^data:image/([A-Za-z0-9.+-]+);base64,`)

// decodedImage is a validated, ready-to-embed image payload.
type decodedImage struct {
	format string // "PNG" or "JPG", as the drawing library names them
	data   []byte
	width  float64 // intrinsic pixel dimensions
	height float64
}

// decodeDataURI parses and validates a data:image/...;base64 URI. The image
// bytes are decoded up front so a corrupt payload is caught here, where it
// can be skipped per-field, instead of poisoning the PDF document state.
func decodeDataURI(s string) (*decodedImage, error) {
	m := dataURIRe.FindStringSubmatch(s)
	if m == nil {
		return nil, fmt.Errorf("fill: value is not a base64 image data URI")
	}

	var format string
	switch strings.ToLower(m[1]) {
	case "png":
		format = "PNG"
	case "jpeg", "jpg":
		format = "JPG"
	default:
		return nil, fmt.Errorf("%w: image/%s", ErrUnsupportedImage, m[1])
	}

	raw, err := base64.StdEncoding.DecodeString(s[len(m[0]):])
	if err != nil {
		return nil, fmt.Errorf("fill: decoding image base64: %w", err)
	}

	var cfg image.Config
	if format == "PNG" {
		cfg, err = png.DecodeConfig(bytes.NewReader(raw))
	} else {
		cfg, err = jpeg.DecodeConfig(bytes.NewReader(raw))
	}
	if err != nil {
		return nil, fmt.Errorf("fill: decoding %s image: %w", format, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("fill: image has no dimensions")
	}

	return &decodedImage{
		format: format,
		data:   raw,
		width:  float64(cfg.Width),
		height: float64(cfg.Height),
	}, nil
}

// scaleInto computes the draw size and in-box offset for an image under the
// given fit mode. fit keeps the whole image inside the box, fill covers the
// box (overflow is clipped by the caller), stretch uses the box outright.
// The image is centered in the residual space in both axes.
func (img *decodedImage) scaleInto(boxW, boxH float64, fitMode string) (w, h, dx, dy float64) {
	switch fitMode {
	case field.FitStretch:
		return boxW, boxH, 0, 0
	case field.FitCover:
		s := max(boxW/img.width, boxH/img.height)
		w, h = img.width*s, img.height*s
	default: // fit
		s := min(boxW/img.width, boxH/img.height)
		w, h = img.width*s, img.height*s
	}
	return w, h, (boxW - w) / 2, (boxH - h) / 2
}
