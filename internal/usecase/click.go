package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vadimbarashkov/linkpulse/internal/entity"
	"github.com/vadimbarashkov/linkpulse/internal/metrics"
)

type clickRepository interface {
	Record(ctx context.Context, linkID int64, dedupKey string, occurredAt time.Time, cc entity.ClickContext) error
	ListByLink(ctx context.Context, linkID int64, dr entity.DateRange) ([]entity.ClickEvent, error)
	ListAll(ctx context.Context, dr entity.DateRange) ([]entity.ClickEvent, error)
}

type ClickUseCase struct {
	clickRepo clickRepository
	now       func() time.Time
}

func NewClickUseCase(clickRepo clickRepository) *ClickUseCase {
	return &ClickUseCase{
		clickRepo: clickRepo,
		now:       time.Now,
	}
}

// Record appends one click event for the link. Callers that retry pass the
// same dedup key so a retried delivery is a no-op; when no key is supplied
// a fresh one is generated and the write is effectively at-most-once.
func (uc *ClickUseCase) Record(ctx context.Context, linkID int64, cc entity.ClickContext) error {
	const op = "usecase.ClickUseCase.Record"

	dedupKey := cc.DedupKey
	if dedupKey == "" {
		dedupKey = uuid.NewString()
	}

	normalizeClassification(&cc)

	if err := uc.clickRepo.Record(ctx, linkID, dedupKey, uc.now().UTC(), cc); err != nil {
		metrics.ClickRecordErrorsTotal.Inc()
		return fmt.Errorf("%s: failed to record click: %w", op, err)
	}

	metrics.ClicksRecordedTotal.Inc()

	return nil
}

func normalizeClassification(cc *entity.ClickContext) {
	for _, field := range []*string{&cc.Device, &cc.OS, &cc.Browser, &cc.Country, &cc.Region, &cc.City} {
		if *field == "" {
			*field = entity.Unknown
		}
	}
}
