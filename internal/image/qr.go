package imagepkg

import (
	"bytes"
	"image"
	"image/draw"
	"image/png"

	qrcode "github.com/skip2/go-qrcode"
)

// GenerateQRPNG returns PNG bytes of a QR code for the given text.
func GenerateQRPNG(text string, size int) ([]byte, error) {
	pngBytes, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		return nil, err
	}
	// validate png decode
	if _, err := png.Decode(bytes.NewReader(pngBytes)); err != nil {
		return nil, err
	}
	return pngBytes, nil
}

// GenerateQRImage returns a borderless QR code image of exactly size×size pixels.
func GenerateQRImage(text string, size int) (image.Image, error) {
	q, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	q.DisableBorder = true
	return q.Image(size), nil
}

// drawBadge pastes the QR badge into the bottom-right corner of the canvas,
// one inner padding away from both edges.
func (r *Renderer) drawBadge(dst *image.RGBA, g Geometry) error {
	size := r.opts.QRSize * r.opts.Scale
	qr, err := GenerateQRImage(r.opts.QRText, size)
	if err != nil {
		return err
	}
	origin := image.Pt(g.Width-g.Inner-size, g.Height-g.Inner-size)
	draw.Draw(dst, image.Rectangle{Min: origin, Max: origin.Add(image.Pt(size, size))}, qr, qr.Bounds().Min, draw.Src)
	return nil
}
