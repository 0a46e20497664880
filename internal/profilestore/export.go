package profilestore

import (
	"context"
	"errors"
	"fmt"

	"github.com/huangsam/teamdisc/core/agg"
	"github.com/huangsam/teamdisc/internal/contract"
	"github.com/huangsam/teamdisc/internal/parquet"
	"github.com/huangsam/teamdisc/schema"
)

// ExportResult lists the files written by ExportParquet.
type ExportResult struct {
	ProfilesFile    string
	ProfileCount    int
	DepartmentsFile string
	DepartmentCount int
}

// ExportParquet writes the matching profiles and their department aggregates to
// <outputFile>.profiles.parquet and <outputFile>.departments.parquet.
func ExportParquet(ctx context.Context, repo contract.ProfileRepository, filter schema.ProfileFilter, outputFile string) (ExportResult, error) {
	if outputFile == "" {
		return ExportResult{}, errors.New("--output-file is required for export command")
	}

	profiles, err := repo.ListProfiles(ctx, filter)
	if err != nil {
		return ExportResult{}, fmt.Errorf("%w: failed to read profiles: %w", contract.ErrDataAccess, err)
	}
	if len(profiles) == 0 {
		return ExportResult{}, errors.New("no profiles found to export")
	}

	summary := agg.AggregateDepartments(profiles)
	result := ExportResult{
		ProfilesFile:    outputFile + ".profiles.parquet",
		ProfileCount:    len(profiles),
		DepartmentsFile: outputFile + ".departments.parquet",
		DepartmentCount: len(summary.Departments),
	}

	if err := parquet.WriteProfilesParquet(parquet.ConvertProfiles(profiles), result.ProfilesFile); err != nil {
		return result, fmt.Errorf("failed to write profiles: %w", err)
	}
	if err := parquet.WriteDepartmentsParquet(parquet.ConvertDepartments(summary.Departments), result.DepartmentsFile); err != nil {
		return result, fmt.Errorf("failed to write departments: %w", err)
	}
	return result, nil
}
