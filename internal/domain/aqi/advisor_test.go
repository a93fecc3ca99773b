package aqi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdviseKnownCategories(t *testing.T) {
	for _, category := range []Category{
		CategoryGood, CategorySatisfactory, CategoryModerate,
		CategoryPoor, CategoryVeryPoor, CategorySevere,
	} {
		rec := Advise(string(category))
		require.NotEmpty(t, rec.General, "category %s", category)
		require.NotEmpty(t, rec.Children, "category %s", category)
		require.NotEmpty(t, rec.Elderly, "category %s", category)
		require.NotEmpty(t, rec.Sensitive, "category %s", category)
		require.NotEmpty(t, rec.Mask, "category %s", category)
		require.NotEmpty(t, rec.OutdoorActivity, "category %s", category)
		require.NotEqual(t, adviceUnavailable, rec, "category %s", category)
	}
}

func TestAdviseCaseInsensitive(t *testing.T) {
	require.Equal(t, Advise("good"), Advise("GOOD"))
	require.Equal(t, Advise("very poor"), Advise("Very Poor"))
}

func TestAdviseUnknownYieldsSentinel(t *testing.T) {
	for _, input := range []string{"bogus", "unknown", "error", ""} {
		rec := Advise(input)
		require.Equal(t, "No data available.", rec.General, "input %q", input)
		require.Equal(t, "No data available.", rec.Children, "input %q", input)
		require.Equal(t, "No data available.", rec.Elderly, "input %q", input)
		require.Equal(t, "No data available.", rec.Sensitive, "input %q", input)
		require.Equal(t, "N/A", rec.Mask, "input %q", input)
		require.Equal(t, "N/A", rec.OutdoorActivity, "input %q", input)
	}
}
