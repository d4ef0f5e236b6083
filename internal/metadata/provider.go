package metadata

import (
	"context"
	"errors"

	"github.com/alexanderramin/nextup/internal/domain"
)

// ErrUnavailable is returned when the metadata endpoint cannot be reached.
var ErrUnavailable = errors.New("metadata endpoint unavailable")

// ErrNoMatch is returned when the lookup finds nothing for the title.
var ErrNoMatch = errors.New("no metadata match")

// ItemMetadata is the enrichment a lookup can contribute to a new item.
// Empty or zero fields mean the source had nothing for them.
type ItemMetadata struct {
	Title            string
	Author           string
	Genres           string
	ExternalRating   float64
	DurationEstimate float64
	CoverURL         string
}

// Provider looks up external metadata for a title of a given media type.
type Provider interface {
	Lookup(ctx context.Context, mediaType domain.MediaType, title string) (*ItemMetadata, error)

	// Available reports whether the metadata endpoint is reachable.
	Available(ctx context.Context) bool
}

// NoopProvider is the stand-in used when lookups are disabled.
type NoopProvider struct{}

func (NoopProvider) Lookup(ctx context.Context, mediaType domain.MediaType, title string) (*ItemMetadata, error) {
	return nil, ErrNoMatch
}

func (NoopProvider) Available(ctx context.Context) bool { return false }
