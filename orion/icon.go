package orion

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"

	"golang.org/x/image/bmp"
)

// LoadIcon decodes a window icon. Windows style BMP files and PNG files are
// supported.
func LoadIcon(data []byte) (image.Image, error) {
	if bytes.HasPrefix(data, []byte("BM")) {
		icon, err := bmp.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode bmp icon: %w", err)
		}

		return icon, nil
	}

	icon, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode icon: %w", err)
	}

	return icon, nil
}
