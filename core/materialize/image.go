package materialize

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

// ResizeIcon returns a normalizer that decodes an image, fits it inside a
// size x size box and re-encodes it as PNG. Images already smaller are only re-encoded.
func ResizeIcon(size int) Normalizer {
	return func(data []byte) ([]byte, error) {
		img, err := imaging.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode image: %w", err)
		}

		b := img.Bounds()
		if size > 0 && (b.Dx() > size || b.Dy() > size) {
			img = imaging.Fit(img, size, size, imaging.Lanczos)
		}

		var buf bytes.Buffer
		if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
			return nil, fmt.Errorf("encode png: %w", err)
		}
		return buf.Bytes(), nil
	}
}
