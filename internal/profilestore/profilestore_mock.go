package profilestore

import (
	"context"

	"github.com/huangsam/teamdisc/internal/contract"
	"github.com/huangsam/teamdisc/schema"
	"github.com/stretchr/testify/mock"
)

// MockProfileRepository is a mock implementation of ProfileRepository for testing.
type MockProfileRepository struct {
	mock.Mock
}

var _ contract.ProfileRepository = &MockProfileRepository{} // Compile-time check

// CreateProfile implements the ProfileRepository interface.
func (m *MockProfileRepository) CreateProfile(ctx context.Context, p schema.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

// GetProfile implements the ProfileRepository interface.
func (m *MockProfileRepository) GetProfile(ctx context.Context, id string) (schema.Profile, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(schema.Profile), args.Error(1)
}

// ListProfiles implements the ProfileRepository interface.
func (m *MockProfileRepository) ListProfiles(ctx context.Context, filter schema.ProfileFilter) ([]schema.Profile, error) {
	args := m.Called(ctx, filter)
	profiles, _ := args.Get(0).([]schema.Profile)
	return profiles, args.Error(1)
}

// Revision implements the ProfileRepository interface.
func (m *MockProfileRepository) Revision(ctx context.Context) (schema.StoreRevision, error) {
	args := m.Called(ctx)
	return args.Get(0).(schema.StoreRevision), args.Error(1)
}

// GetStatus implements the ProfileRepository interface.
func (m *MockProfileRepository) GetStatus() (schema.StoreStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.StoreStatus), args.Error(1)
}

// Close implements the ProfileRepository interface.
func (m *MockProfileRepository) Close() error {
	args := m.Called()
	return args.Error(0)
}
