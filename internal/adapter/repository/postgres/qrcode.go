package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/vadimbarashkov/linkpulse/internal/entity"
)

type qrCodeDB struct {
	ID         int64     `db:"id"`
	LinkID     int64     `db:"link_id"`
	Foreground string    `db:"foreground"`
	Background string    `db:"background"`
	Size       int       `db:"size"`
	CreatedAt  time.Time `db:"created_at"`
}

func (q *qrCodeDB) toEntity() *entity.QRCode {
	return &entity.QRCode{
		ID:         q.ID,
		LinkID:     q.LinkID,
		Foreground: q.Foreground,
		Background: q.Background,
		Size:       q.Size,
		CreatedAt:  q.CreatedAt,
	}
}

type QRCodeRepository struct {
	db *sqlx.DB
}

func NewQRCodeRepository(db *sqlx.DB) *QRCodeRepository {
	return &QRCodeRepository{db: db}
}

func (r *QRCodeRepository) Save(ctx context.Context, linkID int64, foreground, background string, size int) (*entity.QRCode, error) {
	const op = "adapter.repository.postgres.QRCodeRepository.Save"
	const query = `INSERT INTO qr_codes(link_id, foreground, background, size) VALUES ($1, $2, $3, $4) RETURNING *`

	var qr qrCodeDB

	if err := r.db.GetContext(ctx, &qr, query, linkID, foreground, background, size); err != nil {
		if isForeignKeyViolationError(err) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrLinkNotFound)
		}

		return nil, fmt.Errorf("%s: failed to insert into qr_codes table: %w", op, err)
	}

	return qr.toEntity(), nil
}

func (r *QRCodeRepository) RetrieveByID(ctx context.Context, id int64) (*entity.QRCode, error) {
	const op = "adapter.repository.postgres.QRCodeRepository.RetrieveByID"
	const query = `SELECT * FROM qr_codes WHERE id = $1`

	var qr qrCodeDB

	if err := r.db.GetContext(ctx, &qr, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrQRCodeNotFound)
		}

		return nil, fmt.Errorf("%s: failed to get row from qr_codes table: %w", op, err)
	}

	return qr.toEntity(), nil
}

func (r *QRCodeRepository) ListByLink(ctx context.Context, linkID int64) ([]entity.QRCode, error) {
	const op = "adapter.repository.postgres.QRCodeRepository.ListByLink"
	const query = `SELECT * FROM qr_codes WHERE link_id = $1 ORDER BY created_at DESC, id DESC`

	var rows []qrCodeDB

	if err := r.db.SelectContext(ctx, &rows, query, linkID); err != nil {
		return nil, fmt.Errorf("%s: failed to select from qr_codes table: %w", op, err)
	}

	qrCodes := make([]entity.QRCode, 0, len(rows))
	for i := range rows {
		qrCodes = append(qrCodes, *rows[i].toEntity())
	}

	return qrCodes, nil
}

func (r *QRCodeRepository) Remove(ctx context.Context, id int64) error {
	const op = "adapter.repository.postgres.QRCodeRepository.Remove"
	const query = `DELETE FROM qr_codes WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: failed to delete from qr_codes table: %w", op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: failed to get number of affected rows: %w", op, err)
	}

	if rowsAffected != 1 {
		return fmt.Errorf("%s: %w", op, entity.ErrQRCodeNotFound)
	}

	return nil
}
