package media

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
)

const DefaultMaxWidth = 1280

// EncodeWebP decodes a JPEG/PNG upload, downscales it to maxWidth when
// wider, and re-encodes it as lossy WebP.
func EncodeWebP(r io.Reader, maxWidth int) ([]byte, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	if maxWidth > 0 && src.Bounds().Dx() > maxWidth {
		bounds := src.Bounds()
		height := bounds.Dy() * maxWidth / bounds.Dx()
		dst := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: 85}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
