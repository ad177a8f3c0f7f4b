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

type linkDB struct {
	ID          int64     `db:"id"`
	Slug        string    `db:"slug"`
	OriginalURL string    `db:"original_url"`
	Name        string    `db:"name"`
	OwnerID     *string   `db:"owner_id"`
	CampaignID  *int64    `db:"campaign_id"`
	ClickCount  int64     `db:"click_count"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (l *linkDB) toEntity() *entity.Link {
	return &entity.Link{
		ID:          l.ID,
		Slug:        l.Slug,
		OriginalURL: l.OriginalURL,
		Name:        l.Name,
		OwnerID:     l.OwnerID,
		CampaignID:  l.CampaignID,
		ClickCount:  l.ClickCount,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

type LinkRepository struct {
	db *sqlx.DB
}

func NewLinkRepository(db *sqlx.DB) *LinkRepository {
	return &LinkRepository{db: db}
}

func (r *LinkRepository) Save(ctx context.Context, slug, originalURL, name string, ownerID *string, campaignID *int64) (*entity.Link, error) {
	const op = "adapter.repository.postgres.LinkRepository.Save"
	const query = `INSERT INTO links(slug, original_url, name, owner_id, campaign_id) VALUES ($1, $2, $3, $4, $5) RETURNING *`

	var link linkDB

	if err := r.db.GetContext(ctx, &link, query, slug, originalURL, name, ownerID, campaignID); err != nil {
		if isUniqueViolationError(err) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrSlugExists)
		}

		return nil, fmt.Errorf("%s: failed to insert into links table: %w", op, err)
	}

	return link.toEntity(), nil
}

func (r *LinkRepository) RetrieveBySlug(ctx context.Context, slug string) (*entity.Link, error) {
	const op = "adapter.repository.postgres.LinkRepository.RetrieveBySlug"
	const query = `SELECT * FROM links WHERE slug = $1`

	var link linkDB

	if err := r.db.GetContext(ctx, &link, query, slug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrLinkNotFound)
		}

		return nil, fmt.Errorf("%s: failed to get row from links table: %w", op, err)
	}

	return link.toEntity(), nil
}

func (r *LinkRepository) RetrieveByID(ctx context.Context, id int64) (*entity.Link, error) {
	const op = "adapter.repository.postgres.LinkRepository.RetrieveByID"
	const query = `SELECT * FROM links WHERE id = $1`

	var link linkDB

	if err := r.db.GetContext(ctx, &link, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrLinkNotFound)
		}

		return nil, fmt.Errorf("%s: failed to get row from links table: %w", op, err)
	}

	return link.toEntity(), nil
}

func (r *LinkRepository) ListByOwner(ctx context.Context, ownerID string) ([]entity.Link, error) {
	const op = "adapter.repository.postgres.LinkRepository.ListByOwner"
	const query = `SELECT * FROM links WHERE owner_id = $1 ORDER BY created_at DESC, id DESC`

	var rows []linkDB

	if err := r.db.SelectContext(ctx, &rows, query, ownerID); err != nil {
		return nil, fmt.Errorf("%s: failed to select from links table: %w", op, err)
	}

	links := make([]entity.Link, 0, len(rows))
	for i := range rows {
		links = append(links, *rows[i].toEntity())
	}

	return links, nil
}

func (r *LinkRepository) ListAll(ctx context.Context) ([]entity.Link, error) {
	const op = "adapter.repository.postgres.LinkRepository.ListAll"
	const query = `SELECT * FROM links ORDER BY created_at DESC, id DESC`

	var rows []linkDB

	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("%s: failed to select from links table: %w", op, err)
	}

	links := make([]entity.Link, 0, len(rows))
	for i := range rows {
		links = append(links, *rows[i].toEntity())
	}

	return links, nil
}

func (r *LinkRepository) Remove(ctx context.Context, id int64) error {
	const op = "adapter.repository.postgres.LinkRepository.Remove"
	const query = `DELETE FROM links WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: failed to delete from links table: %w", op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: failed to get number of affected rows: %w", op, err)
	}

	if rowsAffected != 1 {
		return fmt.Errorf("%s: %w", op, entity.ErrLinkNotFound)
	}

	return nil
}
