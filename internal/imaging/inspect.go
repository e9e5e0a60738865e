package imaging

import (
	"bytes"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrFormat is returned when decoded bytes are not a recognizable image.
var ErrFormat = errors.New("cannot identify image data")

// Metadata holds the properties read from an image header.
type Metadata struct {
	Width  int
	Height int
	Format string
	Mode   string
}

const unknownMode = "UNKNOWN"

// Inspect reads the image header without decoding pixel data.
func Inspect(data []byte) (Metadata, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Metadata{}, errors.Wrapf(ErrFormat, "%v", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Metadata{}, errors.Wrapf(ErrFormat, "invalid dimensions %dx%d", cfg.Width, cfg.Height)
	}

	mode := modeFromModel(cfg.ColorModel)
	switch format {
	case "png":
		if m, ok := pngMode(data); ok {
			mode = m
		}
	case "tiff":
		// Associated alpha decodes to the same model as plain RGB.
		if mode == "RGB" && tiffHasAlpha(data) {
			mode = "RGBA"
		}
	case "webp":
		if m, ok := webpLosslessMode(data); ok {
			mode = m
		}
	}
	return Metadata{
		Width:  cfg.Width,
		Height: cfg.Height,
		Format: strings.ToUpper(format),
		Mode:   mode,
	}, nil
}

func modeFromModel(model color.Model) string {
	if _, ok := model.(color.Palette); ok {
		return "P"
	}
	switch model {
	case color.GrayModel, color.AlphaModel, color.Alpha16Model:
		return "L"
	case color.Gray16Model:
		return "I;16"
	case color.RGBAModel, color.RGBA64Model, color.YCbCrModel:
		return "RGB"
	case color.NRGBAModel, color.NRGBA64Model, color.NYCbCrAModel:
		return "RGBA"
	case color.CMYKModel:
		return "CMYK"
	}
	return unknownMode
}
