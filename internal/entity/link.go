// Package entity defines the domain entities and errors used in the application.
// It includes the Link, ClickEvent, RedirectTemplate and QRCode types along with
// the analytics summary value types derived from the click event log.
package entity

import (
	"errors"
	"time"
)

var (
	// ErrSlugExists is returned when attempting to create a link with a slug that already exists.
	ErrSlugExists = errors.New("slug exists")
	// ErrLinkNotFound is returned when a link with the specified slug or ID cannot be found.
	ErrLinkNotFound = errors.New("link not found")
)

// Link represents a shortened URL.
type Link struct {
	ID          int64      // ID is the unique identifier of the link in the database.
	Slug        string     // Slug is the generated token used in the public redirect path.
	OriginalURL string     // OriginalURL is the full URL that the slug resolves to.
	Name        string     // Name is the display name, defaulting to OriginalURL when unset.
	OwnerID     *string    // OwnerID identifies the owning user; nil for anonymous links.
	CampaignID  *int64     // CampaignID is an optional campaign association.
	ClickCount  int64      // ClickCount is the denormalized number of recorded click events.
	CreatedAt   time.Time  // CreatedAt is the timestamp when the link was created.
	UpdatedAt   time.Time  // UpdatedAt is the timestamp when the link was last updated.
}

// ShortURL builds the fully-qualified short URL for the link under the given base URL.
func (l *Link) ShortURL(baseURL string) string {
	return baseURL + "/r/" + l.Slug
}
