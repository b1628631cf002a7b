package selector

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teetimealerts/internal/teetime"
)

func threeCourses() []teetime.Course {
	return []teetime.Course{
		{Name: "pine-valley", FullName: "Pine Valley", City: "Clementon", Distance: 12.3},
		{Name: "bethpage-black", FullName: "Bethpage Black", City: "Farmingdale", Distance: 4.0},
		{Name: "torrey-pines", FullName: "Torrey Pines", City: "La Jolla", Distance: 48.9},
	}
}

func TestSelectAll(t *testing.T) {
	var out bytes.Buffer
	selected, err := Select(strings.NewReader("all\n"), &out, threeCourses())

	require.NoError(t, err)
	assert.Equal(t, []string{"pine-valley", "bethpage-black", "torrey-pines"}, selected)
	assert.Contains(t, out.String(), "1. Pine Valley (Clementon) - 12.3 miles")
}

func TestSelectByIndices(t *testing.T) {
	var out bytes.Buffer
	selected, err := Select(strings.NewReader("1,3\n"), &out, threeCourses())

	require.NoError(t, err)
	assert.Equal(t, []string{"pine-valley", "torrey-pines"}, selected)
}

func TestSelectPreservesOrderAndDuplicates(t *testing.T) {
	var out bytes.Buffer
	selected, err := Select(strings.NewReader("3, 1, 3\n"), &out, threeCourses())

	require.NoError(t, err)
	assert.Equal(t, []string{"torrey-pines", "pine-valley", "torrey-pines"}, selected)
}

func TestSelectRepromptsOnInvalidInput(t *testing.T) {
	var out bytes.Buffer
	// Non-numeric, out-of-range, then valid.
	input := "abc\n7\n2\n"
	selected, err := Select(strings.NewReader(input), &out, threeCourses())

	require.NoError(t, err)
	assert.Equal(t, []string{"bethpage-black"}, selected)
	assert.Equal(t, 2, strings.Count(out.String(), "Invalid selection"))
	assert.Equal(t, 3, strings.Count(out.String(), "Or type 'all'"))
}

func TestSelectExhaustedInput(t *testing.T) {
	var out bytes.Buffer
	// Input runs out while still invalid: Select must fail, not loop.
	_, err := Select(strings.NewReader("0\n"), &out, threeCourses())
	assert.Error(t, err)
}

func TestSelectNoCourses(t *testing.T) {
	var out bytes.Buffer
	selected, err := Select(strings.NewReader(""), &out, nil)

	require.NoError(t, err)
	assert.Empty(t, selected)
	assert.Contains(t, out.String(), "No courses found")
}
