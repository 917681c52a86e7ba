package qr

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const pngDataURLPrefix = "data:image/png;base64,"

// Generator renders a payload into an image the customer can present at the
// venue. The order service treats it as a black-box collaborator.
type Generator interface {
	Encode(payload string) (string, error)
}

type pngGenerator struct {
	size int
}

// NewGenerator returns a Generator producing base64 PNG data URLs
func NewGenerator() Generator {
	return &pngGenerator{size: 256}
}

// Encode renders the payload as a QR code and wraps it in a data URL, the
// same representation browsers can drop straight into an <img> src.
func (g *pngGenerator) Encode(payload string) (string, error) {
	png, err := qrcode.Encode(payload, qrcode.Medium, g.size)
	if err != nil {
		return "", fmt.Errorf("failed to encode QR code: %w", err)
	}
	return pngDataURLPrefix + base64.StdEncoding.EncodeToString(png), nil
}
