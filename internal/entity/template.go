package entity

import (
	"errors"
	"time"
)

// ErrTemplateNotFound is returned when a redirect template with the specified ID cannot be found.
var ErrTemplateNotFound = errors.New("redirect template not found")

// RedirectTemplate is the presentation configuration for the interstitial
// page shown before a redirect completes. At most one template is the default
// at any time.
type RedirectTemplate struct {
	ID               int64
	Name             string
	CountdownSeconds int
	BrandingText     string
	IsDefault        bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
