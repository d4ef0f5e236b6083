package testutil

import (
	"sync/atomic"
	"time"

	"github.com/alexanderramin/nextup/internal/domain"
	"github.com/google/uuid"
)

var testItemIDCounter atomic.Int64

// Item options
type ItemOption func(*domain.BacklogItem)

func WithType(t domain.MediaType) ItemOption {
	return func(b *domain.BacklogItem) {
		b.Type = t
		b.DurationUnit = domain.CanonicalUnit(t)
	}
}

func WithStatus(s domain.ItemStatus) ItemOption {
	return func(b *domain.BacklogItem) {
		b.Status = s
	}
}

func WithHype(h float64) ItemOption {
	return func(b *domain.BacklogItem) {
		b.Hype = h
	}
}

func WithExternalRating(r float64) ItemOption {
	return func(b *domain.BacklogItem) {
		b.ExternalRating = r
	}
}

func WithPersonalRating(r float64) ItemOption {
	return func(b *domain.BacklogItem) {
		b.PersonalRating = r
	}
}

func WithGenres(g string) ItemOption {
	return func(b *domain.BacklogItem) {
		b.Genres = g
	}
}

func WithAuthor(a string) ItemOption {
	return func(b *domain.BacklogItem) {
		b.Author = a
	}
}

func WithPlatform(p string) ItemOption {
	return func(b *domain.BacklogItem) {
		b.Platform = p
	}
}

func WithDuration(estimate float64, unit domain.DurationUnit) ItemOption {
	return func(b *domain.BacklogItem) {
		b.DurationEstimate = estimate
		b.DurationUnit = unit
	}
}

func WithProgress(current, total float64) ItemOption {
	return func(b *domain.BacklogItem) {
		b.ProgressCurrent = current
		b.ProgressTotal = total
	}
}

func WithSeries(name string, order, total int) ItemOption {
	return func(b *domain.BacklogItem) {
		b.SeriesName = name
		b.SeriesOrder = order
		b.SeriesTotal = total
	}
}

func WithDateAdded(t time.Time) ItemOption {
	return func(b *domain.BacklogItem) {
		b.DateAdded = t
	}
}

func WithDateFinished(t time.Time) ItemOption {
	return func(b *domain.BacklogItem) {
		b.DateFinished = &t
	}
}

func WithOrigin(o domain.Origin) ItemOption {
	return func(b *domain.BacklogItem) {
		b.Origin = o
	}
}

func WithFinalDuration(d float64) ItemOption {
	return func(b *domain.BacklogItem) {
		b.FinalDuration = d
	}
}

// NewTestItem builds a backlog item with sane defaults: a game on the
// backlog, added a month ago, 10h estimate. IDs are monotonically increasing
// across a test run, mirroring store-assigned ids.
func NewTestItem(title string, opts ...ItemOption) domain.BacklogItem {
	now := time.Now().UTC()
	b := domain.BacklogItem{
		ID:               testItemIDCounter.Add(1),
		Title:            title,
		Type:             domain.TypeGame,
		Status:           domain.StatusBacklog,
		Origin:           domain.OriginFree,
		DurationEstimate: 10,
		DurationUnit:     domain.UnitHours,
		SeriesOrder:      1,
		SeriesTotal:      1,
		DateAdded:        now.AddDate(0, -1, 0),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Session options
type SessionOption func(*domain.ActivitySession)

func WithSessionNote(n string) SessionOption {
	return func(s *domain.ActivitySession) {
		s.Note = n
	}
}

func WithSessionDate(t time.Time) SessionOption {
	return func(s *domain.ActivitySession) {
		s.Date = t
	}
}

// NewTestSession builds an activity session for the given item.
func NewTestSession(itemID int64, minutes int, progressDelta float64, opts ...SessionOption) *domain.ActivitySession {
	now := time.Now().UTC()
	s := &domain.ActivitySession{
		ID:            uuid.New().String(),
		ItemID:        itemID,
		Date:          now,
		Minutes:       minutes,
		ProgressDelta: progressDelta,
		CreatedAt:     now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
