package builder

import (
	"testing"

	"github.com/statlang/statlang/internal/errors"
	"github.com/statlang/statlang/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Scalars(t *testing.T) {
	tests := []struct {
		name  string
		value models.Value
		want  models.ScalarText
	}{
		{"string verbatim", models.String("pong"), "pong"},
		{"number keeps literal", models.Number("1e37"), "1e37"},
		{"bool true", models.Bool(true), "true"},
		{"bool false", models.Bool(false), "false"},
		{"null is empty", models.Null{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify_Array(t *testing.T) {
	got, err := Classify(models.Array{
		models.String("none"),
		models.String("or"),
		models.Number("0"),
		models.Bool(true),
		models.Null{},
	})
	require.NoError(t, err)
	assert.Equal(t, models.ArrayText{"none", "or", "0", "true", ""}, got)
}

func TestClassify_ArrayWithObject(t *testing.T) {
	_, err := Classify(models.Array{
		models.String("fine"),
		models.Object{{Key: "x", Value: models.Number("1")}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrArrayContainsObject)
	assert.Contains(t, err.Error(), "element 1")
}

func TestClassify_NestedArrayStringified(t *testing.T) {
	// A nested array is not an object, so it is not rejected; it
	// collapses to its compact JSON text
	got, err := Classify(models.Array{
		models.Array{models.Number("1"), models.Bool(true)},
	})
	require.NoError(t, err)
	assert.Equal(t, models.ArrayText{"[1,true]"}, got)
}

func TestClassify_NestedArrayMayContainObjects(t *testing.T) {
	// Only direct elements are checked; an object one level further
	// down rides along inside the stringified text
	got, err := Classify(models.Array{
		models.Array{models.Object{{Key: "a", Value: models.Number("1")}}},
	})
	require.NoError(t, err)
	assert.Equal(t, models.ArrayText{`[{"a":1}]`}, got)
}

func TestClassify_Object(t *testing.T) {
	_, err := Classify(models.Object{{Key: "a", Value: models.Number("1")}})
	assert.Error(t, err)
}
