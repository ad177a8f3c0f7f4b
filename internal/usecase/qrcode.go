package usecase

import (
	"context"
	"fmt"
	"image/color"

	qrcode "github.com/skip2/go-qrcode"
	"github.com/vadimbarashkov/linkpulse/internal/entity"
)

type qrCodeRepository interface {
	Save(ctx context.Context, linkID int64, foreground, background string, size int) (*entity.QRCode, error)
	RetrieveByID(ctx context.Context, id int64) (*entity.QRCode, error)
	ListByLink(ctx context.Context, linkID int64) ([]entity.QRCode, error)
	Remove(ctx context.Context, id int64) error
}

// QRCodeInput carries the rendering parameters for a new QR code.
type QRCodeInput struct {
	LinkID     int64
	Foreground string
	Background string
	Size       int
}

type QRCodeUseCase struct {
	baseURL  string
	qrRepo   qrCodeRepository
	linkRepo linkRepository
}

func NewQRCodeUseCase(baseURL string, qrRepo qrCodeRepository, linkRepo linkRepository) *QRCodeUseCase {
	return &QRCodeUseCase{
		baseURL:  baseURL,
		qrRepo:   qrRepo,
		linkRepo: linkRepo,
	}
}

func (uc *QRCodeUseCase) Create(ctx context.Context, input QRCodeInput) (*entity.QRCode, error) {
	const op = "usecase.QRCodeUseCase.Create"

	qr, err := uc.qrRepo.Save(ctx, input.LinkID, input.Foreground, input.Background, input.Size)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create qr code: %w", op, err)
	}

	return qr, nil
}

func (uc *QRCodeUseCase) ListByLink(ctx context.Context, linkID int64) ([]entity.QRCode, error) {
	const op = "usecase.QRCodeUseCase.ListByLink"

	qrCodes, err := uc.qrRepo.ListByLink(ctx, linkID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list qr codes: %w", op, err)
	}

	return qrCodes, nil
}

// RenderPNG renders the QR code as a PNG encoding of the link's short URL.
func (uc *QRCodeUseCase) RenderPNG(ctx context.Context, id int64) ([]byte, error) {
	const op = "usecase.QRCodeUseCase.RenderPNG"

	qr, err := uc.qrRepo.RetrieveByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get qr code: %w", op, err)
	}

	link, err := uc.linkRepo.RetrieveByID(ctx, qr.LinkID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get link for qr code: %w", op, err)
	}

	code, err := qrcode.New(link.ShortURL(uc.baseURL), qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build qr code: %w", op, err)
	}

	code.ForegroundColor = parseHexColor(qr.Foreground, color.Black)
	code.BackgroundColor = parseHexColor(qr.Background, color.White)

	png, err := code.PNG(qr.Size)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to render qr code png: %w", op, err)
	}

	return png, nil
}

func (uc *QRCodeUseCase) Delete(ctx context.Context, id int64) error {
	const op = "usecase.QRCodeUseCase.Delete"

	if err := uc.qrRepo.Remove(ctx, id); err != nil {
		return fmt.Errorf("%s: failed to delete qr code: %w", op, err)
	}

	return nil
}

// parseHexColor parses a "#rrggbb" color, falling back when the stored
// value is malformed. Colors are validated at the delivery layer, so the
// fallback only covers rows written before validation existed.
func parseHexColor(s string, fallback color.Color) color.Color {
	var r, g, b uint8

	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return fallback
	}

	return color.RGBA{R: r, G: g, B: b, A: 255}
}
