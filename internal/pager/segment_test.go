package pager

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func pairs(labels ...string) []Pair {
	out := make([]Pair, len(labels))
	for i, label := range labels {
		out[i] = Pair{Label: label, Page: fmt.Sprintf("page-%d", i)}
	}
	return out
}

func TestBuildSegmentSetPartitionsRange(t *testing.T) {
	for n := 1; n <= 13; n++ {
		labels := make([]string, n)
		for i := range labels {
			labels[i] = fmt.Sprintf("s%d", i)
		}
		set, err := BuildSegmentSet(pairs(labels...))
		require.NoError(t, err)
		require.Equal(t, n, set.Len())

		all := set.All()
		require.Equal(t, 0.0, all[0].Range.Lower, "n=%d", n)
		require.Equal(t, 100.0, all[n-1].Range.Upper, "n=%d", n)
		for i := 0; i < n-1; i++ {
			require.Equal(t, all[i].Range.Upper, all[i+1].Range.Lower, "n=%d i=%d", n, i)
			require.Less(t, all[i].Range.Lower, all[i+1].Range.Lower)
		}
		for i, seg := range all {
			require.Equal(t, i, seg.Index)
			require.InDelta(t, 100.0/float64(n), seg.Range.Upper-seg.Range.Lower, 1e-9)
		}
	}
}

func TestBuildSegmentSetRejectsEmpty(t *testing.T) {
	set, err := BuildSegmentSet(nil)
	require.Nil(t, set)
	require.ErrorIs(t, err, ErrNoSegments)
	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	require.Equal(t, "build", cfgErr.Op)
}

func TestBuildSegmentSetKeepsDuplicateLabels(t *testing.T) {
	set, err := BuildSegmentSet(pairs("First", "Last", "Last"))
	require.NoError(t, err)
	a, _ := set.At(1)
	b, _ := set.At(2)
	require.Equal(t, a.Label, b.Label)
	require.NotEqual(t, a.Button, b.Button)

	got, ok := set.ByButton(b.Button)
	require.True(t, ok)
	require.Equal(t, 2, got.Index)
	require.Equal(t, "page-2", got.Page)
}

func TestIndexAtIsHalfOpen(t *testing.T) {
	set, err := BuildSegmentSet(pairs("A", "B", "C", "D"))
	require.NoError(t, err)

	cases := []struct {
		pct  float64
		want int
		ok   bool
	}{
		{0, 0, true},
		{24.9, 0, true},
		{25, 1, true},
		{50, 2, true},
		{99.99, 3, true},
		{100, -1, false},
		{-1, -1, false},
	}
	for _, tc := range cases {
		got, ok := set.IndexAt(tc.pct)
		require.Equal(t, tc.ok, ok, "pct=%v", tc.pct)
		require.Equal(t, tc.want, got, "pct=%v", tc.pct)
	}
}

func TestSettledIndexAtPrefersLaterSegmentOnSharedBoundary(t *testing.T) {
	set, err := BuildSegmentSet(pairs("A", "B", "C", "D"))
	require.NoError(t, err)

	cases := []struct {
		pct  float64
		want int
	}{
		{0, 0},
		{25, 1},
		{50, 2},
		{75, 3},
		{100, 3},
		{60, 2},
	}
	for _, tc := range cases {
		got, ok := set.SettledIndexAt(tc.pct)
		require.True(t, ok, "pct=%v", tc.pct)
		require.Equal(t, tc.want, got, "pct=%v", tc.pct)
	}

	_, ok := set.SettledIndexAt(100.5)
	require.False(t, ok)
}

func TestSettledIndexAtThirds(t *testing.T) {
	set, err := BuildSegmentSet(pairs("A", "B", "C"))
	require.NoError(t, err)
	b, _ := set.At(1)

	got, ok := set.SettledIndexAt(b.Range.Lower)
	require.True(t, ok)
	require.Equal(t, 1, got)

	got, ok = set.SettledIndexAt(100)
	require.True(t, ok)
	require.Equal(t, 2, got)
}

func TestFindLabel(t *testing.T) {
	set, err := BuildSegmentSet(pairs("First", "Second", "Third", "Last", "Last"))
	require.NoError(t, err)

	cases := []struct {
		query string
		want  int
		ok    bool
	}{
		{"second", 1, true},
		{"thi", 2, true},
		{"last", 3, true},
		{"scd", 1, true},
		{"", -1, false},
		{"zzz", -1, false},
	}
	for _, tc := range cases {
		got, ok := set.FindLabel(tc.query)
		require.Equal(t, tc.ok, ok, "query=%q", tc.query)
		require.Equal(t, tc.want, got, "query=%q", tc.query)
	}
}

func TestPercentRangeContains(t *testing.T) {
	r := PercentRange{Lower: 25, Upper: 50}
	require.True(t, r.Contains(25))
	require.False(t, r.Contains(50))
	require.True(t, r.ContainsInclusive(50))
	require.False(t, r.ContainsInclusive(50.0001))
}
