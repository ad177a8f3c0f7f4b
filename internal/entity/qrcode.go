package entity

import (
	"errors"
	"time"
)

// ErrQRCodeNotFound is returned when a QR code with the specified ID cannot be found.
var ErrQRCodeNotFound = errors.New("qr code not found")

// QRCode wraps a link with rendering parameters. It foreign-keys to the link
// and is removed together with it.
type QRCode struct {
	ID         int64
	LinkID     int64
	Foreground string // hex color, e.g. "#000000"
	Background string // hex color, e.g. "#ffffff"
	Size       int    // output size in pixels
	CreatedAt  time.Time
}
