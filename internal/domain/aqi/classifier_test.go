package aqi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		value    float64
		category Category
		color    string
	}{
		{0, CategoryGood, "#009966"},
		{50, CategoryGood, "#009966"},
		{51, CategorySatisfactory, "#FFDE33"},
		{100, CategorySatisfactory, "#FFDE33"},
		{101, CategoryModerate, "#FF9933"},
		{200, CategoryModerate, "#FF9933"},
		{201, CategoryPoor, "#CC0033"},
		{300, CategoryPoor, "#CC0033"},
		{301, CategoryVeryPoor, "#660099"},
		{400, CategoryVeryPoor, "#660099"},
		{401, CategorySevere, "#7E0023"},
		{1250, CategorySevere, "#7E0023"},
		{-1, CategoryUnknown, "#808080"},
		{-0.0001, CategoryUnknown, "#808080"},
	}

	for _, tc := range cases {
		got := Classify(tc.value)
		require.Equal(t, tc.category, got.Category, "value %v", tc.value)
		require.Equal(t, tc.color, got.Color, "value %v", tc.value)
	}
}

func TestClassifyNonFinite(t *testing.T) {
	require.Equal(t, CategoryUnknown, Classify(math.NaN()).Category)
	require.Equal(t, CategoryUnknown, Classify(math.Inf(-1)).Category)
	// The top band is open-ended, +Inf still counts as Severe.
	require.Equal(t, CategorySevere, Classify(math.Inf(1)).Category)
}

func TestClassifyDeterministic(t *testing.T) {
	require.Equal(t, Classify(137.5), Classify(137.5))
}
