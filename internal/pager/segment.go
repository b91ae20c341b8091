package pager

import (
	"strings"

	"github.com/google/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

const hundredPercent = 100.0

// Page is an opaque content handle supplied by the integrator. The pager
// never inspects it; it is only handed back in LayoutPages commands.
type Page any

// Pair binds a button label to the page it reveals.
type Pair struct {
	Label string
	Page  Page
}

// ButtonID identifies a segment button for button-activated events.
type ButtonID uuid.UUID

// NewButtonID returns a fresh random identity.
func NewButtonID() ButtonID {
	return ButtonID(uuid.New())
}

func (id ButtonID) String() string {
	return uuid.UUID(id).String()
}

// PercentRange is a segment's share of the horizontal scroll distance on a
// 0..100 scale.
type PercentRange struct {
	Lower float64
	Upper float64
}

// Contains reports whether pct falls in [Lower, Upper).
func (r PercentRange) Contains(pct float64) bool {
	return pct >= r.Lower && pct < r.Upper
}

// ContainsInclusive reports whether pct falls in [Lower, Upper].
func (r PercentRange) ContainsInclusive(pct float64) bool {
	return pct >= r.Lower && pct <= r.Upper
}

// Segment is one selectable tab.
type Segment struct {
	Index  int
	Label  string
	Button ButtonID
	Page   Page
	Range  PercentRange
}

// SegmentSet is the frozen, ordered list of segments built at setup time.
type SegmentSet struct {
	segments []Segment
	byButton map[ButtonID]int
}

// BuildSegmentSet partitions 0..100 into len(pairs) equal ranges, one per
// pair, in the given order. Labels need not be unique.
func BuildSegmentSet(pairs []Pair) (*SegmentSet, error) {
	n := len(pairs)
	if n == 0 {
		return nil, &ConfigurationError{Op: "build", Err: ErrNoSegments}
	}
	perSegment := hundredPercent / float64(n)
	set := &SegmentSet{
		segments: make([]Segment, n),
		byButton: make(map[ButtonID]int, n),
	}
	for i, pair := range pairs {
		lower := float64(i) * perSegment
		upper := float64(i+1) * perSegment
		if i == 0 {
			lower = 0
		}
		if i == n-1 {
			upper = hundredPercent
		}
		id := NewButtonID()
		set.segments[i] = Segment{
			Index:  i,
			Label:  pair.Label,
			Button: id,
			Page:   pair.Page,
			Range:  PercentRange{Lower: lower, Upper: upper},
		}
		set.byButton[id] = i
	}
	return set, nil
}

// Len returns the number of segments.
func (s *SegmentSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.segments)
}

// At returns the segment at index i.
func (s *SegmentSet) At(i int) (Segment, bool) {
	if s == nil || i < 0 || i >= len(s.segments) {
		return Segment{}, false
	}
	return s.segments[i], true
}

// All returns a copy of the segments in display order.
func (s *SegmentSet) All() []Segment {
	if s == nil {
		return nil
	}
	out := make([]Segment, len(s.segments))
	copy(out, s.segments)
	return out
}

// ByButton resolves a button identity to its segment.
func (s *SegmentSet) ByButton(id ButtonID) (Segment, bool) {
	if s == nil {
		return Segment{}, false
	}
	idx, ok := s.byButton[id]
	if !ok {
		return Segment{}, false
	}
	return s.segments[idx], true
}

// IndexAt returns the segment whose half-open range contains pct. A value of
// exactly 100 matches nothing.
func (s *SegmentSet) IndexAt(pct float64) (int, bool) {
	if s == nil {
		return -1, false
	}
	for _, seg := range s.segments {
		if seg.Range.Contains(pct) {
			return seg.Index, true
		}
	}
	return -1, false
}

// SettledIndexAt matches pct inclusively at both ends of each range. A value
// on a boundary shared by two segments resolves to the higher index.
func (s *SegmentSet) SettledIndexAt(pct float64) (int, bool) {
	if s == nil {
		return -1, false
	}
	for i := len(s.segments) - 1; i >= 0; i-- {
		if s.segments[i].Range.ContainsInclusive(pct) {
			return i, true
		}
	}
	return -1, false
}

// FindLabel returns the index of the segment that best matches query: an
// exact case-insensitive label first, then a prefix, then the best fuzzy
// rank. Ties keep display order.
func (s *SegmentSet) FindLabel(query string) (int, bool) {
	trimmed := strings.TrimSpace(query)
	if s == nil || trimmed == "" {
		return -1, false
	}
	for _, seg := range s.segments {
		if strings.EqualFold(seg.Label, trimmed) {
			return seg.Index, true
		}
	}
	lower := strings.ToLower(trimmed)
	for _, seg := range s.segments {
		if strings.HasPrefix(strings.ToLower(seg.Label), lower) {
			return seg.Index, true
		}
	}
	labels := make([]string, len(s.segments))
	for i, seg := range s.segments {
		labels[i] = seg.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return -1, false
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance || (rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	return best.OriginalIndex, true
}
