// Package core scores assessments and derives department analytics from stored profiles.
package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/huangsam/teamdisc/core/agg"
	"github.com/huangsam/teamdisc/internal/contract"
	"github.com/huangsam/teamdisc/schema"
)

// Service is the single entry point used by the CLI, HTTP, and MCP surfaces.
// It validates and scores submissions, persists profiles, and derives analytics.
type Service struct {
	repo    contract.ProfileRepository
	metrics contract.MetricsRecorder
	now     func() time.Time
	newID   func() string
	reports *lru.Cache[string, schema.AnalyticsReport]
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithClock sets the time source used to stamp profiles and reports.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator sets the function that assigns profile ids.
func WithIDGenerator(newID func() string) ServiceOption {
	return func(s *Service) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// WithMetrics sets the recorder that receives service events.
func WithMetrics(m contract.MetricsRecorder) ServiceOption {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithReportCache keeps up to size reports in memory. A size of zero disables caching.
func WithReportCache(size int) ServiceOption {
	return func(s *Service) {
		if size <= 0 {
			s.reports = nil
			return
		}
		cache, err := lru.New[string, schema.AnalyticsReport](size)
		if err != nil {
			return
		}
		s.reports = cache
	}
}

// NewService wires a Service around a profile repository.
func NewService(repo contract.ProfileRepository, opts ...ServiceOption) *Service {
	s := &Service{
		repo:    repo,
		metrics: contract.NopMetrics{},
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit validates and scores a completed questionnaire, then stores the resulting profile.
func (s *Service) Submit(ctx context.Context, sub schema.AssessmentSubmission) (schema.Profile, error) {
	if err := ValidateSubmission(sub); err != nil {
		return schema.Profile{}, err
	}

	disc := ScoreDisc(sub.DiscAnswers)
	var forces *schema.DrivingForceResult
	if len(sub.ForceChoices) > 0 {
		result := ScoreDrivingForces(sub.ForceChoices)
		forces = &result
	}

	profile := schema.NewProfile(sub.Identity, disc, forces, s.now())
	profile.ID = s.newID()

	if err := s.repo.CreateProfile(ctx, profile); err != nil {
		return schema.Profile{}, s.storeError(ctx, "create", err)
	}
	s.metrics.ProfileSubmitted(ctx, profile.Department)
	return profile, nil
}

// Profile returns one stored profile by id.
func (s *Service) Profile(ctx context.Context, id string) (schema.Profile, error) {
	p, err := s.repo.GetProfile(ctx, id)
	if err != nil {
		return schema.Profile{}, s.storeError(ctx, "get", err)
	}
	return p, nil
}

// Profiles returns the stored profiles matching the filter.
func (s *Service) Profiles(ctx context.Context, filter schema.ProfileFilter) ([]schema.Profile, error) {
	profiles, err := s.repo.ListProfiles(ctx, filter)
	if err != nil {
		return nil, s.storeError(ctx, "list", err)
	}
	return profiles, nil
}

// Departments aggregates the matching profiles by department.
func (s *Service) Departments(ctx context.Context, filter schema.ProfileFilter) (schema.DepartmentSummary, error) {
	profiles, err := s.Profiles(ctx, filter)
	if err != nil {
		return schema.DepartmentSummary{}, err
	}
	return agg.AggregateDepartments(profiles), nil
}

// Report reads the matching profiles once and runs every analyzer over them.
// Cached reports are reused only while the store revision is unchanged.
func (s *Service) Report(ctx context.Context, filter schema.ProfileFilter) (schema.AnalyticsReport, error) {
	var key string
	if s.reports != nil {
		rev, err := s.repo.Revision(ctx)
		if err != nil {
			return schema.AnalyticsReport{}, s.storeError(ctx, "revision", err)
		}
		key = filter.Key() + "#" + rev.Key()
		if report, ok := s.reports.Get(key); ok {
			s.metrics.ReportGenerated(ctx, true)
			return report, nil
		}
	}

	profiles, err := s.Profiles(ctx, filter)
	if err != nil {
		return schema.AnalyticsReport{}, err
	}
	report := BuildReport(profiles, filter, s.now())

	if s.reports != nil {
		s.reports.Add(key, report)
	}
	s.metrics.ReportGenerated(ctx, false)
	return report, nil
}

// BuildReport runs every analyzer over an already loaded profile set.
func BuildReport(profiles []schema.Profile, filter schema.ProfileFilter, generatedAt time.Time) schema.AnalyticsReport {
	summary := agg.AggregateDepartments(profiles)
	return schema.AnalyticsReport{
		GeneratedAt:   generatedAt,
		Filter:        filter,
		ProfileCount:  len(profiles),
		Skipped:       summary.Skipped,
		Departments:   summary.Departments,
		Compatibility: AnalyzeCompatibility(summary.Departments),
		Composition:   AnalyzeComposition(summary.Departments),
		Communication: AnalyzeCommunication(summary.Departments),
	}
}

// Status returns the repository status.
func (s *Service) Status() (schema.StoreStatus, error) {
	status, err := s.repo.GetStatus()
	if err != nil {
		return schema.StoreStatus{}, fmt.Errorf("%w: %w", contract.ErrDataAccess, err)
	}
	return status, nil
}

// storeError keeps not-found and duplicate errors distinguishable and folds
// every other repository failure into ErrDataAccess.
func (s *Service) storeError(ctx context.Context, op string, err error) error {
	if errors.Is(err, contract.ErrProfileNotFound) || errors.Is(err, contract.ErrDuplicateProfile) {
		return err
	}
	s.metrics.StoreError(ctx, op)
	if errors.Is(err, contract.ErrDataAccess) {
		return err
	}
	return fmt.Errorf("%w: %s profiles: %w", contract.ErrDataAccess, op, err)
}
