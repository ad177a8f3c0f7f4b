package entity

import "time"

// Unknown is the bucket used for classification fields that could not be derived.
const Unknown = "unknown"

// ClickEvent is one immutable record of a single redirect resolution.
// Events are append-only: they are never updated and only disappear together
// with their link when analytics retention is not desired.
type ClickEvent struct {
	ID         int64     // ID is the unique identifier of the event in the database.
	LinkID     *int64    // LinkID references the resolved link; nil once the link has been deleted.
	DedupKey   string    // DedupKey deduplicates retried deliveries of the same click.
	OccurredAt time.Time // OccurredAt is the UTC timestamp of the resolution.
	IP         string    // IP is the client address; empty if extraction failed.
	UserAgent  string    // UserAgent is the raw User-Agent header; may be empty.
	Referrer   string    // Referrer is the full referrer URL; empty for direct traffic.
	Device     string    // Device is the classified device category or Unknown.
	OS         string    // OS is the classified operating system or Unknown.
	Browser    string    // Browser is the classified browser or Unknown.
	Country    string    // Country is the classified country or Unknown.
	Region     string    // Region is the classified region or Unknown.
	City       string    // City is the classified city or Unknown.
}

// ClickContext carries the pre-classified request context for a single click.
// Classification itself happens at the edge; the recorder stores what it is given.
type ClickContext struct {
	DedupKey  string
	IP        string
	UserAgent string
	Referrer  string
	Device    string
	OS        string
	Browser   string
	Country   string
	Region    string
	City      string
}
