package view

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// QRCode returns a size×size PNG QR code for url, for opening the show on
// another device.
func QRCode(url string, size int) ([]byte, error) {
	if url == "" {
		return nil, fmt.Errorf("qr code: empty url")
	}
	png, err := qrcode.Encode(url, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("qr code: %w", err)
	}
	return png, nil
}
