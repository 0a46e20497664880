package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTrait(t *testing.T) {
	tests := []struct {
		in      string
		want    Trait
		wantErr bool
	}{
		{"D", D, false},
		{"i", I, false},
		{" S ", S, false},
		{"c", C, false},
		{"X", 0, true},
		{"", 0, true},
		{"DI", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTrait(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTraitStringAndName(t *testing.T) {
	assert.Equal(t, "D", D.String())
	assert.Equal(t, "Conscientiousness", C.Name())
	assert.False(t, Trait(7).Valid())
	assert.Equal(t, "Trait(7)", Trait(7).String())
}

func TestScoresJSON(t *testing.T) {
	s := Scores{60, 0, 20, 20}
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"D":60,"I":0,"S":20,"C":20}`, string(data))
	assert.Equal(t, `{"D":60,"I":0,"S":20,"C":20}`, string(data), "keys keep D, I, S, C order")

	var decoded Scores
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, s, decoded)

	err = json.Unmarshal([]byte(`{"D":1,"I":2,"S":3}`), &decoded)
	assert.ErrorContains(t, err, "missing C")

	err = json.Unmarshal([]byte(`{"D":"x","I":2,"S":3,"C":4}`), &decoded)
	assert.Error(t, err)
}

func TestScoresHelpers(t *testing.T) {
	s := Scores{40, 10, 10, 10}
	assert.Equal(t, 40, s.Max())
	assert.Equal(t, 70, s.Total())
	assert.True(t, s.InRange())
	assert.False(t, Scores{-1, 0, 0, 0}.InRange())
	assert.False(t, Scores{101, 0, 0, 0}.InRange())
	assert.Equal(t, 10, s.Get(I))
}

func TestTraitCountsJSON(t *testing.T) {
	c := TraitCounts{2, 0, 1, 0}
	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, `{"D":2,"I":0,"S":1,"C":0}`, string(data))
	assert.Equal(t, 3, c.Total())
}

func TestDiscAnswerJSON(t *testing.T) {
	var a DiscAnswer
	require.NoError(t, json.Unmarshal([]byte(`{"most":"D","least":"i"}`), &a))
	assert.Equal(t, DiscAnswer{Most: D, Least: I}, a)

	assert.Error(t, json.Unmarshal([]byte(`{"most":"Q","least":"I"}`), &a))
}
