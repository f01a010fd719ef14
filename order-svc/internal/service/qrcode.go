package service

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

const qrSize = 256

type QRGenerator interface {
	Generate(token string) ([]byte, error)
}

type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(token string) ([]byte, error) {
	return Render(token, g.BaseURL)
}

// OrderURL is the address a table QR code points at.
func OrderURL(baseURL, token string) string {
	return strings.TrimRight(baseURL, "/") + "/order/" + token
}

// Render encodes the order URL for token as a black on white PNG.
func Render(token, baseURL string) ([]byte, error) {
	png, err := qrcode.Encode(OrderURL(baseURL, token), qrcode.Medium, qrSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQRGeneration, err)
	}
	return png, nil
}
