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

type clickEventDB struct {
	ID         int64     `db:"id"`
	LinkID     *int64    `db:"link_id"`
	DedupKey   string    `db:"dedup_key"`
	OccurredAt time.Time `db:"occurred_at"`
	IP         string    `db:"ip"`
	UserAgent  string    `db:"user_agent"`
	Referrer   string    `db:"referrer"`
	Device     string    `db:"device"`
	OS         string    `db:"os"`
	Browser    string    `db:"browser"`
	Country    string    `db:"country"`
	Region     string    `db:"region"`
	City       string    `db:"city"`
}

func (e *clickEventDB) toEntity() *entity.ClickEvent {
	return &entity.ClickEvent{
		ID:         e.ID,
		LinkID:     e.LinkID,
		DedupKey:   e.DedupKey,
		OccurredAt: e.OccurredAt,
		IP:         e.IP,
		UserAgent:  e.UserAgent,
		Referrer:   e.Referrer,
		Device:     e.Device,
		OS:         e.OS,
		Browser:    e.Browser,
		Country:    e.Country,
		Region:     e.Region,
		City:       e.City,
	}
}

// rangeBounds converts an inclusive calendar-day range into half-open
// timestamp bounds. Nil bounds disable the corresponding filter.
func rangeBounds(dr entity.DateRange) (from, to *time.Time) {
	if !dr.From.IsZero() {
		f := dr.From.UTC().Truncate(24 * time.Hour)
		from = &f
	}
	if !dr.To.IsZero() {
		t := dr.To.UTC().Truncate(24 * time.Hour).Add(24 * time.Hour)
		to = &t
	}
	return from, to
}

type ClickRepository struct {
	db *sqlx.DB
}

func NewClickRepository(db *sqlx.DB) *ClickRepository {
	return &ClickRepository{db: db}
}

// Record appends one click event and bumps the link's denormalized counter
// in a single transaction. A duplicate dedup key is a no-op. The counter
// increment is a single atomic statement, so concurrent clicks never lose
// updates.
func (r *ClickRepository) Record(ctx context.Context, linkID int64, dedupKey string, occurredAt time.Time, cc entity.ClickContext) error {
	const op = "adapter.repository.postgres.ClickRepository.Record"
	const insertQuery = `INSERT INTO click_events(link_id, dedup_key, occurred_at, ip, user_agent, referrer, device, os, browser, country, region, city)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (dedup_key) DO NOTHING
		RETURNING id`
	const incrementQuery = `UPDATE links SET click_count = click_count + 1, updated_at = now() WHERE id = $1`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback() //nolint:errcheck

	var eventID int64

	if err := tx.GetContext(ctx, &eventID, insertQuery,
		linkID, dedupKey, occurredAt,
		cc.IP, cc.UserAgent, cc.Referrer,
		cc.Device, cc.OS, cc.Browser,
		cc.Country, cc.Region, cc.City,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Duplicate dedup key: the click is already recorded.
			return nil
		}
		if isForeignKeyViolationError(err) {
			return fmt.Errorf("%s: %w", op, entity.ErrLinkNotFound)
		}

		return fmt.Errorf("%s: failed to insert into click_events table: %w", op, err)
	}

	if _, err := tx.ExecContext(ctx, incrementQuery, linkID); err != nil {
		return fmt.Errorf("%s: failed to increment link click count: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: failed to commit transaction: %w", op, err)
	}

	return nil
}

// ListByLink returns the events for one link within the range, ordered by
// (occurred_at, id) so aggregation output is deterministic.
func (r *ClickRepository) ListByLink(ctx context.Context, linkID int64, dr entity.DateRange) ([]entity.ClickEvent, error) {
	const op = "adapter.repository.postgres.ClickRepository.ListByLink"
	const query = `SELECT * FROM click_events
		WHERE link_id = $1
			AND ($2::timestamptz IS NULL OR occurred_at >= $2)
			AND ($3::timestamptz IS NULL OR occurred_at < $3)
		ORDER BY occurred_at, id`

	from, to := rangeBounds(dr)

	var rows []clickEventDB

	if err := r.db.SelectContext(ctx, &rows, query, linkID, from, to); err != nil {
		return nil, fmt.Errorf("%s: failed to select from click_events table: %w", op, err)
	}

	events := make([]entity.ClickEvent, 0, len(rows))
	for i := range rows {
		events = append(events, *rows[i].toEntity())
	}

	return events, nil
}

// ListAll returns every event within the range, including events orphaned
// by link deletion, ordered by (occurred_at, id).
func (r *ClickRepository) ListAll(ctx context.Context, dr entity.DateRange) ([]entity.ClickEvent, error) {
	const op = "adapter.repository.postgres.ClickRepository.ListAll"
	const query = `SELECT * FROM click_events
		WHERE ($1::timestamptz IS NULL OR occurred_at >= $1)
			AND ($2::timestamptz IS NULL OR occurred_at < $2)
		ORDER BY occurred_at, id`

	from, to := rangeBounds(dr)

	var rows []clickEventDB

	if err := r.db.SelectContext(ctx, &rows, query, from, to); err != nil {
		return nil, fmt.Errorf("%s: failed to select from click_events table: %w", op, err)
	}

	events := make([]entity.ClickEvent, 0, len(rows))
	for i := range rows {
		events = append(events, *rows[i].toEntity())
	}

	return events, nil
}
