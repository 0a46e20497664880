package core

import (
	"testing"

	"github.com/huangsam/teamdisc/schema"
	"github.com/stretchr/testify/assert"
)

func TestScoreDrivingForces_Empty(t *testing.T) {
	got := ScoreDrivingForces(nil)
	assert.Equal(t, schema.DrivingForceScores{}, got.Scores)
	assert.Equal(t, schema.PrimaryForces{schema.KI, schema.US, schema.SO, schema.OI, schema.PC, schema.MR}, got.PrimaryForces)
}

func TestScoreDrivingForces(t *testing.T) {
	tests := []struct {
		name    string
		choices []schema.Pole
		axis    schema.Axis
		want    schema.Pole
	}{
		{"right pole wins on majority", []schema.Pole{schema.KN, schema.KN, schema.KI}, schema.Knowledge, schema.KN},
		{"left pole wins on tie", []schema.Pole{schema.UR, schema.US}, schema.Utility, schema.US},
		{"left pole wins on majority", []schema.Pole{schema.SO, schema.SO, schema.SH}, schema.Surroundings, schema.SO},
		{"single right choice", []schema.Pole{schema.OA}, schema.Others, schema.OA},
		{"other axes do not interfere", []schema.Pole{schema.PD, schema.MS, schema.MS}, schema.Power, schema.PD},
		{"structured", []schema.Pole{schema.PD, schema.MS, schema.MS}, schema.Methodologies, schema.MS},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreDrivingForces(tt.choices)
			assert.Equal(t, tt.want, got.PrimaryForces[tt.axis])
		})
	}
}

func TestScoreDrivingForces_Counts(t *testing.T) {
	got := ScoreDrivingForces([]schema.Pole{schema.KI, schema.KI, schema.MS, schema.Pole(40)})
	assert.Equal(t, 2, got.Scores[schema.KI])
	assert.Equal(t, 1, got.Scores[schema.MS])
	total := 0
	for _, n := range got.Scores {
		total += n
	}
	assert.Equal(t, 3, total, "unknown poles are ignored")
}
