package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/teamdisc/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProfiles() []schema.Profile {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	natural := schema.Scores{50, 25, 25, 0}
	adaptive := schema.Scores{40, 20, 20, 20}
	forces := &schema.DrivingForceResult{}
	return []schema.Profile{
		{
			ID: "p1", Name: "Ada", Email: "ada@example.com", Department: "Engineering", TeamCode: "T1",
			Natural: &natural, Adaptive: &adaptive, PrimaryNatural: schema.D, PrimaryAdaptive: schema.D,
			DrivingForces: forces, CreatedAt: created,
		},
		{ID: "p2", Name: "Bob", Department: "Sales", CreatedAt: created.Add(time.Hour)},
	}
}

func TestProfileRowSchema(t *testing.T) {
	s := parquet.SchemaOf(ProfileRow{})
	for _, col := range []string{"id", "department", "natural_d", "adaptive_c", "primary_natural", "driving_forces", "created_at"} {
		_, ok := s.Lookup(col)
		assert.True(t, ok, "column %s should exist", col)
	}
}

func TestConvertProfiles(t *testing.T) {
	rows := ConvertProfiles(sampleProfiles())
	require.Len(t, rows, 2)

	require.NotNil(t, rows[0].Email)
	assert.Equal(t, "ada@example.com", *rows[0].Email)
	require.NotNil(t, rows[0].NaturalD)
	assert.Equal(t, int32(50), *rows[0].NaturalD)
	assert.Equal(t, int32(20), *rows[0].AdaptiveC)
	assert.Equal(t, "D", rows[0].PrimaryNatural)
	assert.NotNil(t, rows[0].DrivingForces)

	assert.Nil(t, rows[1].Email)
	assert.Nil(t, rows[1].TeamCode)
	assert.Nil(t, rows[1].NaturalD)
	assert.Nil(t, rows[1].DrivingForces)
}

func TestWriteProfilesParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "profiles.parquet")
	data := ConvertProfiles(sampleProfiles())
	require.NoError(t, WriteProfilesParquet(data, outputPath))

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	reader := parquet.NewGenericReader[ProfileRow](file)
	defer func() { _ = reader.Close() }()

	readData := make([]ProfileRow, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	require.Equal(t, len(data), n)

	for i := range data {
		assert.Equal(t, data[i].ID, readData[i].ID)
		assert.Equal(t, data[i].Department, readData[i].Department)
		assert.WithinDuration(t, data[i].CreatedAt, readData[i].CreatedAt, time.Microsecond)
		if data[i].NaturalD == nil {
			assert.Nil(t, readData[i].NaturalD)
		} else {
			require.NotNil(t, readData[i].NaturalD)
			assert.Equal(t, *data[i].NaturalD, *readData[i].NaturalD)
		}
	}
}

func TestWriteDepartmentsParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "departments.parquet")
	aggs := []schema.DepartmentAggregate{{
		Department: "Sales", Count: 2,
		AvgNatural:                 schema.Scores{10, 60, 20, 10},
		PrimaryNaturalDistribution: schema.TraitCounts{0, 2, 0, 0},
	}}
	rows := ConvertDepartments(aggs)
	require.Len(t, rows, 1)
	assert.Equal(t, int32(60), rows[0].AvgNaturalI)
	assert.Equal(t, int32(2), rows[0].PrimaryNaturalI)

	require.NoError(t, WriteDepartmentsParquet(rows, outputPath))
	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteParquet_EmptyData(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "empty.parquet")
	require.NoError(t, WriteProfilesParquet([]ProfileRow{}, outputPath))
	assert.FileExists(t, outputPath)
}

func TestWriteParquet_InvalidPath(t *testing.T) {
	err := WriteDepartmentsParquet(nil, filepath.Join(t.TempDir(), "missing", "dir", "out.parquet"))
	assert.Error(t, err)
}
