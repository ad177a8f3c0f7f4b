// Package usecase contains the business rules of the link registry, the
// click recorder and the analytics aggregator.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/vadimbarashkov/linkpulse/internal/entity"
	"github.com/vadimbarashkov/linkpulse/internal/metrics"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// ErrMaxRetriesExceeded is returned when slug generation keeps colliding.
var ErrMaxRetriesExceeded = errors.New("maximum retries exceeded for generating slug")

type linkRepository interface {
	Save(ctx context.Context, slug, originalURL, name string, ownerID *string, campaignID *int64) (*entity.Link, error)
	RetrieveBySlug(ctx context.Context, slug string) (*entity.Link, error)
	RetrieveByID(ctx context.Context, id int64) (*entity.Link, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entity.Link, error)
	ListAll(ctx context.Context) ([]entity.Link, error)
	Remove(ctx context.Context, id int64) error
}

// ShortenInput carries the caller-supplied fields for a new link.
type ShortenInput struct {
	OriginalURL string
	Name        string
	OwnerID     *string
	CampaignID  *int64
}

type LinkUseCase struct {
	slugLength int
	linkRepo   linkRepository
}

func NewLinkUseCase(slugLength int, linkRepo linkRepository) *LinkUseCase {
	return &LinkUseCase{
		slugLength: slugLength,
		linkRepo:   linkRepo,
	}
}

// Shorten creates a link with a freshly generated slug, retrying a bounded
// number of times on slug collision.
func (uc *LinkUseCase) Shorten(ctx context.Context, input ShortenInput) (*entity.Link, error) {
	const op = "usecase.LinkUseCase.Shorten"
	const maxRetries = 5

	name := input.Name
	if name == "" {
		name = input.OriginalURL
	}

	for i := 0; i < maxRetries; i++ {
		slug, err := gonanoid.New(uc.slugLength)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to generate slug: %w", op, err)
		}

		link, err := uc.linkRepo.Save(ctx, slug, input.OriginalURL, name, input.OwnerID, input.CampaignID)
		if err != nil {
			if errors.Is(err, entity.ErrSlugExists) {
				continue
			}

			return nil, fmt.Errorf("%s: failed to shorten url: %w", op, err)
		}

		metrics.LinksCreatedTotal.Inc()

		return link, nil
	}

	return nil, fmt.Errorf("%s: %w", op, ErrMaxRetriesExceeded)
}

// Resolve looks up a link by slug. It has no side effects; recording the
// click is a separate operation.
func (uc *LinkUseCase) Resolve(ctx context.Context, slug string) (*entity.Link, error) {
	const op = "usecase.LinkUseCase.Resolve"

	link, err := uc.linkRepo.RetrieveBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to resolve slug: %w", op, err)
	}

	return link, nil
}

func (uc *LinkUseCase) GetLink(ctx context.Context, id int64) (*entity.Link, error) {
	const op = "usecase.LinkUseCase.GetLink"

	link, err := uc.linkRepo.RetrieveByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get link: %w", op, err)
	}

	return link, nil
}

// ListByOwner returns the owner's links, newest first.
func (uc *LinkUseCase) ListByOwner(ctx context.Context, ownerID string) ([]entity.Link, error) {
	const op = "usecase.LinkUseCase.ListByOwner"

	links, err := uc.linkRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list links by owner: %w", op, err)
	}

	return links, nil
}

// ListAll returns every link, newest first. Administrative, unscoped.
func (uc *LinkUseCase) ListAll(ctx context.Context) ([]entity.Link, error) {
	const op = "usecase.LinkUseCase.ListAll"

	links, err := uc.linkRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list links: %w", op, err)
	}

	return links, nil
}

// Delete hard-deletes a link. QR codes cascade; click events are retained
// for analytics history with their link reference nulled.
func (uc *LinkUseCase) Delete(ctx context.Context, id int64) error {
	const op = "usecase.LinkUseCase.Delete"

	if err := uc.linkRepo.Remove(ctx, id); err != nil {
		return fmt.Errorf("%s: failed to delete link: %w", op, err)
	}

	return nil
}
