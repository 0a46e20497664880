// Package contract provides interfaces and shared utilities for the teamdisc internal architecture.
package contract

import (
	"context"

	"github.com/huangsam/teamdisc/schema"
)

// ProfileRepository is the persistence boundary for assessment profiles.
// This allows the service and analytics to be tested without a real database.
type ProfileRepository interface {
	// CreateProfile stores a new profile. Profiles are never updated, so an
	// existing id yields ErrDuplicateProfile.
	CreateProfile(ctx context.Context, p schema.Profile) error

	// GetProfile returns the profile with the given id or ErrProfileNotFound.
	GetProfile(ctx context.Context, id string) (schema.Profile, error)

	// ListProfiles returns every profile matching the filter, ordered by createdAt then id.
	ListProfiles(ctx context.Context, filter schema.ProfileFilter) ([]schema.Profile, error)

	// Revision returns a cheap fingerprint of the stored profile set.
	Revision(ctx context.Context) (schema.StoreRevision, error)

	// GetStatus returns status information about the store
	GetStatus() (schema.StoreStatus, error)

	// Close closes the underlying connection
	Close() error
}

// MetricsRecorder receives domain events from the service.
// This allows the metrics layer to be swapped out in tests.
type MetricsRecorder interface {
	ProfileSubmitted(ctx context.Context, department string)
	ReportGenerated(ctx context.Context, cached bool)
	StoreError(ctx context.Context, op string)
}

// NopMetrics discards every event.
type NopMetrics struct{}

// ProfileSubmitted implements MetricsRecorder.
func (NopMetrics) ProfileSubmitted(context.Context, string) {}

// ReportGenerated implements MetricsRecorder.
func (NopMetrics) ReportGenerated(context.Context, bool) {}

// StoreError implements MetricsRecorder.
func (NopMetrics) StoreError(context.Context, string) {}

var _ MetricsRecorder = NopMetrics{}
