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

type templateDB struct {
	ID               int64     `db:"id"`
	Name             string    `db:"name"`
	CountdownSeconds int       `db:"countdown_seconds"`
	BrandingText     string    `db:"branding_text"`
	IsDefault        bool      `db:"is_default"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

func (t *templateDB) toEntity() *entity.RedirectTemplate {
	return &entity.RedirectTemplate{
		ID:               t.ID,
		Name:             t.Name,
		CountdownSeconds: t.CountdownSeconds,
		BrandingText:     t.BrandingText,
		IsDefault:        t.IsDefault,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

type TemplateRepository struct {
	db *sqlx.DB
}

func NewTemplateRepository(db *sqlx.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

func (r *TemplateRepository) Save(ctx context.Context, name string, countdownSeconds int, brandingText string) (*entity.RedirectTemplate, error) {
	const op = "adapter.repository.postgres.TemplateRepository.Save"
	const query = `INSERT INTO redirect_templates(name, countdown_seconds, branding_text) VALUES ($1, $2, $3) RETURNING *`

	var tpl templateDB

	if err := r.db.GetContext(ctx, &tpl, query, name, countdownSeconds, brandingText); err != nil {
		return nil, fmt.Errorf("%s: failed to insert into redirect_templates table: %w", op, err)
	}

	return tpl.toEntity(), nil
}

func (r *TemplateRepository) List(ctx context.Context) ([]entity.RedirectTemplate, error) {
	const op = "adapter.repository.postgres.TemplateRepository.List"
	const query = `SELECT * FROM redirect_templates ORDER BY created_at DESC, id DESC`

	var rows []templateDB

	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("%s: failed to select from redirect_templates table: %w", op, err)
	}

	templates := make([]entity.RedirectTemplate, 0, len(rows))
	for i := range rows {
		templates = append(templates, *rows[i].toEntity())
	}

	return templates, nil
}

// SetDefault promotes one template to default. The unset and set run in one
// transaction; a partial unique index on is_default backs the invariant that
// at most one template is the default.
func (r *TemplateRepository) SetDefault(ctx context.Context, id int64) (*entity.RedirectTemplate, error) {
	const op = "adapter.repository.postgres.TemplateRepository.SetDefault"
	const unsetQuery = `UPDATE redirect_templates SET is_default = FALSE, updated_at = now() WHERE is_default AND id <> $1`
	const setQuery = `UPDATE redirect_templates SET is_default = TRUE, updated_at = now() WHERE id = $1 RETURNING *`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, unsetQuery, id); err != nil {
		return nil, fmt.Errorf("%s: failed to unset current default template: %w", op, err)
	}

	var tpl templateDB

	if err := tx.GetContext(ctx, &tpl, setQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrTemplateNotFound)
		}

		return nil, fmt.Errorf("%s: failed to set default template: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: failed to commit transaction: %w", op, err)
	}

	return tpl.toEntity(), nil
}

func (r *TemplateRepository) RetrieveDefault(ctx context.Context) (*entity.RedirectTemplate, error) {
	const op = "adapter.repository.postgres.TemplateRepository.RetrieveDefault"
	const query = `SELECT * FROM redirect_templates WHERE is_default`

	var tpl templateDB

	if err := r.db.GetContext(ctx, &tpl, query); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrTemplateNotFound)
		}

		return nil, fmt.Errorf("%s: failed to get row from redirect_templates table: %w", op, err)
	}

	return tpl.toEntity(), nil
}

func (r *TemplateRepository) Remove(ctx context.Context, id int64) error {
	const op = "adapter.repository.postgres.TemplateRepository.Remove"
	const query = `DELETE FROM redirect_templates WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: failed to delete from redirect_templates table: %w", op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: failed to get number of affected rows: %w", op, err)
	}

	if rowsAffected != 1 {
		return fmt.Errorf("%s: %w", op, entity.ErrTemplateNotFound)
	}

	return nil
}
