package a1_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sheetnet/a1"
)

// TestColumnName_SpotValues checks the label boundaries of the bijective base-26 scheme.
func TestColumnName_SpotValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   int
		want string
	}{
		{"first", 0, "A"},
		{"second", 1, "B"},
		{"endSingle", 25, "Z"},
		{"startDouble", 26, "AA"},
		{"AB", 27, "AB"},
		{"AZ", 51, "AZ"},
		{"BA", 52, "BA"},
		{"ZZ", 701, "ZZ"},
		{"AAA", 702, "AAA"},
		{"XFD", a1.MaxColumnsExcel - 1, "XFD"},
		{"ZZZ", a1.MaxColumnsSheets - 1, "ZZZ"},
		{"AAAA", a1.MaxColumnsSheets, "AAAA"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, a1.ColumnName(tc.in))
		})
	}
}

// TestColumnName_Negative verifies the programmer-error panic for negative indices.
func TestColumnName_Negative(t *testing.T) {
	assert.Panics(t, func() { a1.ColumnName(-1) })
}

// TestColumnName_LengthBoundaries verifies labels grow by exactly one letter
// each time n crosses 26 + 26² + … (the last index of each label length).
func TestColumnName_LengthBoundaries(t *testing.T) {
	last := -1 // last index with a label of the current length
	span := 1
	for length := 1; length <= 4; length++ {
		span *= 26
		last += span
		require.Len(t, a1.ColumnName(last), length, "last index %d", last)
		require.Len(t, a1.ColumnName(last+1), length+1, "first index %d", last+1)
		require.Equal(t, strings.Repeat("Z", length), a1.ColumnName(last))
		require.Equal(t, strings.Repeat("A", length+1), a1.ColumnName(last+1))
	}
}

// TestColumnName_Bijective round-trips the first 20000 indices through ColumnIndex
// and checks that labels only use A–Z and never repeat.
func TestColumnName_Bijective(t *testing.T) {
	seen := make(map[string]int, 20000)
	for n := 0; n < 20000; n++ {
		label := a1.ColumnName(n)
		for _, r := range label {
			require.True(t, r >= 'A' && r <= 'Z', "label %q has rune %q", label, r)
		}
		prev, dup := seen[label]
		require.False(t, dup, "label %q produced by %d and %d", label, prev, n)
		seen[label] = n

		back, err := a1.ColumnIndex(label)
		require.NoError(t, err)
		require.Equal(t, n, back, "round-trip of %q", label)
	}
}

// TestColumnIndex_Errors verifies rejection of malformed labels.
func TestColumnIndex_Errors(t *testing.T) {
	t.Parallel()

	for _, label := range []string{"", "A1", "$A", "Ä", " B"} {
		_, err := a1.ColumnIndex(label)
		assert.ErrorIs(t, err, a1.ErrBadLabel, "label %q", label)
	}

	_, err := a1.ColumnIndex(strings.Repeat("Z", 20))
	assert.ErrorIs(t, err, a1.ErrLabelOverflow)
}

// TestColumnIndex_CaseInsensitive verifies lowercase labels parse like uppercase.
func TestColumnIndex_CaseInsensitive(t *testing.T) {
	got, err := a1.ColumnIndex("xfd")
	require.NoError(t, err)
	assert.Equal(t, a1.MaxColumnsExcel-1, got)
}
