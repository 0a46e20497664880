package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoleAxisMembership(t *testing.T) {
	tests := []struct {
		axis        Axis
		left, right Pole
	}{
		{Knowledge, KI, KN},
		{Utility, US, UR},
		{Surroundings, SO, SH},
		{Others, OI, OA},
		{Power, PC, PD},
		{Methodologies, MR, MS},
	}

	for _, tt := range tests {
		t.Run(tt.axis.String(), func(t *testing.T) {
			left, right := tt.axis.Poles()
			assert.Equal(t, tt.left, left)
			assert.Equal(t, tt.right, right)
			assert.Equal(t, tt.axis, left.Axis())
			assert.Equal(t, tt.axis, right.Axis())
		})
	}
}

func TestParsePole(t *testing.T) {
	for _, p := range AllPoles {
		got, err := ParsePole(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	got, err := ParsePole(" ms ")
	require.NoError(t, err)
	assert.Equal(t, MS, got)

	_, err = ParsePole("XX")
	assert.Error(t, err)
}

func TestParseAxis(t *testing.T) {
	a, err := ParseAxis("methodologies")
	require.NoError(t, err)
	assert.Equal(t, Methodologies, a)

	_, err = ParseAxis("Wealth")
	assert.Error(t, err)
}

func TestDrivingForceResultJSON(t *testing.T) {
	var res DrivingForceResult
	res.Scores[KI] = 2
	res.Scores[UR] = 1
	res.PrimaryForces = PrimaryForces{KI, UR, SO, OI, PC, MR}

	data, err := json.Marshal(res)
	require.NoError(t, err)

	var raw map[string]map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Len(t, raw["scores"], PoleCount)
	assert.Equal(t, float64(2), raw["scores"]["KI"])
	assert.Equal(t, "UR", raw["primaryForces"]["Utility"])

	var decoded DrivingForceResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, res, decoded)
}

func TestPrimaryForcesRejectsForeignPole(t *testing.T) {
	var pf PrimaryForces
	err := json.Unmarshal([]byte(`{"Knowledge":"US","Utility":"US","Surroundings":"SO","Others":"OI","Power":"PC","Methodologies":"MR"}`), &pf)
	assert.ErrorContains(t, err, "does not belong")

	err = json.Unmarshal([]byte(`{"Knowledge":"KI"}`), &pf)
	assert.ErrorContains(t, err, "missing axis")
}
