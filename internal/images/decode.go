package images

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var contentTypes = map[string]string{
	"png":  "image/png",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"webp": "image/webp",
	"bmp":  "image/bmp",
	"tiff": "image/tiff",
}

// Info describes a decoded image header.
type Info struct {
	ContentType string
	Width       int
	Height      int
}

// Inspect decodes the image header in data. Only the registered formats
// (png, jpeg, gif, webp, bmp, tiff) are accepted.
func Inspect(data []byte) (Info, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Info{}, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}

	ct, ok := contentTypes[format]
	if !ok {
		return Info{}, fmt.Errorf("%w: unsupported format %q", ErrInvalidFile, format)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Info{}, fmt.Errorf("%w: empty image", ErrInvalidFile)
	}

	return Info{ContentType: ct, Width: cfg.Width, Height: cfg.Height}, nil
}
