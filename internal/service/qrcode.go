package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(orderID string) ([]byte, error)
}

type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(orderID string) ([]byte, error) {
	qrData := fmt.Sprintf("%s/api/orders/%s", g.BaseURL, orderID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
