// Package parquet provides data structures and functions for exporting teamdisc
// profiles and department aggregates to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/huangsam/teamdisc/schema"
	"github.com/parquet-go/parquet-go"
)

// ProfileRow is one stored assessment profile.
type ProfileRow struct {
	ID         string  `parquet:"id,snappy"`
	Name       string  `parquet:"name,snappy"`
	Email      *string `parquet:"email,optional,snappy"`
	Department string  `parquet:"department,snappy"`
	TeamCode   *string `parquet:"team_code,optional,snappy"`

	// Score columns are null when the stored vector is missing
	NaturalD  *int32 `parquet:"natural_d,optional,snappy"`
	NaturalI  *int32 `parquet:"natural_i,optional,snappy"`
	NaturalS  *int32 `parquet:"natural_s,optional,snappy"`
	NaturalC  *int32 `parquet:"natural_c,optional,snappy"`
	AdaptiveD *int32 `parquet:"adaptive_d,optional,snappy"`
	AdaptiveI *int32 `parquet:"adaptive_i,optional,snappy"`
	AdaptiveS *int32 `parquet:"adaptive_s,optional,snappy"`
	AdaptiveC *int32 `parquet:"adaptive_c,optional,snappy"`

	PrimaryNatural  string `parquet:"primary_natural,snappy"`
	PrimaryAdaptive string `parquet:"primary_adaptive,snappy"`

	// DrivingForces is the JSON-encoded driving forces result (nullable)
	DrivingForces *string `parquet:"driving_forces,optional,snappy"`

	CreatedAt time.Time `parquet:"created_at,snappy"`
}

// DepartmentRow is one department aggregate.
type DepartmentRow struct {
	Department   string `parquet:"department,snappy"`
	ProfileCount int32  `parquet:"profile_count,snappy"`

	AvgNaturalD  int32 `parquet:"avg_natural_d,snappy"`
	AvgNaturalI  int32 `parquet:"avg_natural_i,snappy"`
	AvgNaturalS  int32 `parquet:"avg_natural_s,snappy"`
	AvgNaturalC  int32 `parquet:"avg_natural_c,snappy"`
	AvgAdaptiveD int32 `parquet:"avg_adaptive_d,snappy"`
	AvgAdaptiveI int32 `parquet:"avg_adaptive_i,snappy"`
	AvgAdaptiveS int32 `parquet:"avg_adaptive_s,snappy"`
	AvgAdaptiveC int32 `parquet:"avg_adaptive_c,snappy"`

	// Primary trait distributions
	PrimaryNaturalD  int32 `parquet:"primary_natural_d,snappy"`
	PrimaryNaturalI  int32 `parquet:"primary_natural_i,snappy"`
	PrimaryNaturalS  int32 `parquet:"primary_natural_s,snappy"`
	PrimaryNaturalC  int32 `parquet:"primary_natural_c,snappy"`
	PrimaryAdaptiveD int32 `parquet:"primary_adaptive_d,snappy"`
	PrimaryAdaptiveI int32 `parquet:"primary_adaptive_i,snappy"`
	PrimaryAdaptiveS int32 `parquet:"primary_adaptive_s,snappy"`
	PrimaryAdaptiveC int32 `parquet:"primary_adaptive_c,snappy"`
}

// WriteProfilesParquet writes profile rows to a Parquet file.
func WriteProfilesParquet(data []ProfileRow, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteDepartmentsParquet writes department rows to a Parquet file.
func WriteDepartmentsParquet(data []DepartmentRow, outputPath string) error {
	return writeParquet(data, outputPath)
}

func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the struct tags
	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// ConvertProfiles maps domain profiles to Parquet rows.
func ConvertProfiles(profiles []schema.Profile) []ProfileRow {
	rows := make([]ProfileRow, 0, len(profiles))
	for _, p := range profiles {
		row := ProfileRow{
			ID:              p.ID,
			Name:            p.Name,
			Email:           optionalString(p.Email),
			Department:      p.Department,
			TeamCode:        optionalString(p.TeamCode),
			PrimaryNatural:  p.PrimaryNatural.String(),
			PrimaryAdaptive: p.PrimaryAdaptive.String(),
			CreatedAt:       p.CreatedAt,
		}
		if p.Natural != nil {
			row.NaturalD, row.NaturalI, row.NaturalS, row.NaturalC = scoreColumns(*p.Natural)
		}
		if p.Adaptive != nil {
			row.AdaptiveD, row.AdaptiveI, row.AdaptiveS, row.AdaptiveC = scoreColumns(*p.Adaptive)
		}
		if p.DrivingForces != nil {
			if b, err := json.Marshal(p.DrivingForces); err == nil {
				s := string(b)
				row.DrivingForces = &s
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// ConvertDepartments maps department aggregates to Parquet rows.
func ConvertDepartments(aggs []schema.DepartmentAggregate) []DepartmentRow {
	rows := make([]DepartmentRow, 0, len(aggs))
	for _, a := range aggs {
		rows = append(rows, DepartmentRow{
			Department:       a.Department,
			ProfileCount:     int32(a.Count),
			AvgNaturalD:      int32(a.AvgNatural[schema.D]),
			AvgNaturalI:      int32(a.AvgNatural[schema.I]),
			AvgNaturalS:      int32(a.AvgNatural[schema.S]),
			AvgNaturalC:      int32(a.AvgNatural[schema.C]),
			AvgAdaptiveD:     int32(a.AvgAdaptive[schema.D]),
			AvgAdaptiveI:     int32(a.AvgAdaptive[schema.I]),
			AvgAdaptiveS:     int32(a.AvgAdaptive[schema.S]),
			AvgAdaptiveC:     int32(a.AvgAdaptive[schema.C]),
			PrimaryNaturalD:  int32(a.PrimaryNaturalDistribution[schema.D]),
			PrimaryNaturalI:  int32(a.PrimaryNaturalDistribution[schema.I]),
			PrimaryNaturalS:  int32(a.PrimaryNaturalDistribution[schema.S]),
			PrimaryNaturalC:  int32(a.PrimaryNaturalDistribution[schema.C]),
			PrimaryAdaptiveD: int32(a.PrimaryAdaptiveDistribution[schema.D]),
			PrimaryAdaptiveI: int32(a.PrimaryAdaptiveDistribution[schema.I]),
			PrimaryAdaptiveS: int32(a.PrimaryAdaptiveDistribution[schema.S]),
			PrimaryAdaptiveC: int32(a.PrimaryAdaptiveDistribution[schema.C]),
		})
	}
	return rows
}

func scoreColumns(s schema.Scores) (d, i, st, c *int32) {
	v := [schema.TraitCount]int32{}
	for _, t := range schema.AllTraits {
		v[t] = int32(s[t])
	}
	return &v[schema.D], &v[schema.I], &v[schema.S], &v[schema.C]
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
