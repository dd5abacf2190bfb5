package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// TicketQRGenerator encodes the pickup check URL of an order into a PNG QR
// code customers scan at the counter.
type TicketQRGenerator struct {
	BaseURL string
}

func (g TicketQRGenerator) Generate(orderID int) ([]byte, error) {
	data := fmt.Sprintf("%s/check.html?order_id=%d", g.BaseURL, orderID)
	return qrcode.Encode(data, qrcode.Medium, 256)
}
