package pager

import (
	"time"

	"github.com/atomicstack/segmented-pager/internal/logging/events"
)

// State is either Uninitialized or Ready.
type State interface {
	isState()
}

// Uninitialized is the state before a successful Setup.
type Uninitialized struct{}

// Ready is the state after Setup.
type Ready struct {
	Segments *SegmentSet
	Selected int
}

func (Uninitialized) isState() {}
func (Ready) isState()         {}

type readyState struct {
	segments *SegmentSet
	selected int
	style    Style
	frames   []Frame
}

// Pager keeps the selected segment, the indicator and the page scroll
// position in step. It holds no views: every visual change is emitted to the
// Host as a Command. Methods must be called from a single goroutine.
type Pager struct {
	host     Host
	measure  Measurer
	sync     SyncMode
	geometry GeometryModel
	viewport Size

	ready *readyState
}

// New returns an uninitialized pager emitting to host.
func New(host Host, opts ...Option) *Pager {
	p := &Pager{
		host:    host,
		measure: CellMeasurer,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// State returns the tagged state.
func (p *Pager) State() State {
	if p.ready == nil {
		return Uninitialized{}
	}
	return Ready{Segments: p.ready.segments, Selected: p.ready.selected}
}

// SelectedIndex returns the selected segment index; false before Setup.
func (p *Pager) SelectedIndex() (int, bool) {
	if p.ready == nil {
		return -1, false
	}
	return p.ready.selected, true
}

// Segments returns the frozen segment set, or nil before Setup.
func (p *Pager) Segments() *SegmentSet {
	if p.ready == nil {
		return nil
	}
	return p.ready.segments
}

// Style returns the normalized style applied at Setup.
func (p *Pager) Style() Style {
	if p.ready == nil {
		return DefaultStyle()
	}
	return p.ready.style
}

// Sync returns the configured sync source.
func (p *Pager) Sync() SyncMode { return p.sync }

// Geometry returns the configured indicator geometry model.
func (p *Pager) Geometry() GeometryModel { return p.geometry }

// ButtonFrame returns the frame of the button at index.
func (p *Pager) ButtonFrame(index int) (Frame, bool) {
	if p.ready == nil || index < 0 || index >= len(p.ready.frames) {
		return Frame{}, false
	}
	return p.ready.frames[index], true
}

// Setup builds the segments and selects the first one. It runs once; a
// second call returns ErrAlreadyConfigured and changes nothing.
func (p *Pager) Setup(pairs []Pair, style Style) error {
	if p.ready != nil {
		err := &ConfigurationError{Op: "setup", Err: ErrAlreadyConfigured}
		events.Pager.SetupRejected(err)
		return err
	}
	set, err := BuildSegmentSet(pairs)
	if err != nil {
		events.Pager.SetupRejected(err)
		return err
	}
	style = style.normalized()
	r := &readyState{
		segments: set,
		style:    style,
		frames:   layoutButtons(set, style, p.measure),
	}
	p.ready = r
	events.Pager.Setup(set.Len(), p.sync.String(), p.geometry.String())

	p.emit(p.renderButtons())
	p.emit(p.layoutPages())
	p.emit(p.placeIndicator(AnimationDuration))
	p.emit(p.scrollTo(true))
	return nil
}

// MustSetup is Setup that panics on configuration errors.
func (p *Pager) MustSetup(pairs []Pair, style Style) {
	if err := p.Setup(pairs, style); err != nil {
		panic(err)
	}
}

// SelectByIndex selects index and moves the indicator without scrolling.
// Out-of-range indexes are ignored.
func (p *Pager) SelectByIndex(index int) bool {
	if !p.validIndex(index, "select-index") {
		return false
	}
	p.selectIndex(index, AnimationDuration, "index")
	return true
}

// Navigate selects index and scrolls its page into view.
func (p *Pager) Navigate(index int) bool {
	if !p.validIndex(index, "navigate") {
		return false
	}
	p.selectIndex(index, AnimationDuration, "navigate")
	p.emit(p.scrollTo(true))
	return true
}

// SelectByButton selects the segment owning id and scrolls to its page.
// Unknown ids are ignored.
func (p *Pager) SelectByButton(id ButtonID) bool {
	if p.ready == nil {
		events.Pager.Ignored("button", "not ready")
		return false
	}
	seg, ok := p.ready.segments.ByButton(id)
	if !ok {
		events.Pager.Ignored("button", "unknown button "+id.String())
		return false
	}
	p.selectIndex(seg.Index, AnimationDuration, "button")
	p.emit(p.scrollTo(true))
	return true
}

// OnScrollOffsetChanged follows continuous scrolling when the pager runs in
// SyncContinuous mode. It never scrolls.
func (p *Pager) OnScrollOffsetChanged(m ScrollMetrics) bool {
	if p.ready == nil || p.sync != SyncContinuous {
		return false
	}
	pct, ok := m.Percentage()
	if !ok {
		events.Pager.Ignored("scroll", "no scrollable range")
		return false
	}
	idx, ok := p.ready.segments.IndexAt(pct)
	if !ok || idx == p.ready.selected {
		return false
	}
	events.Pager.Scroll(pct, idx)
	p.selectIndex(idx, AnimationDuration, "scroll")
	return true
}

// OnScrollSettled selects the segment under a resting scroll position when
// the pager runs in SyncSettle mode. It never scrolls. The return value
// reports whether the selection changed.
func (p *Pager) OnScrollSettled(m ScrollMetrics) bool {
	if p.ready == nil || p.sync != SyncSettle {
		return false
	}
	pct, ok := m.Percentage()
	if !ok {
		events.Pager.Ignored("settle", "no scrollable range")
		return false
	}
	idx, ok := p.ready.segments.SettledIndexAt(pct)
	if !ok {
		events.Pager.Ignored("settle", "offset outside ranges")
		return false
	}
	changed := idx != p.ready.selected
	events.Pager.Settle(pct, idx)
	p.selectIndex(idx, AnimationDuration, "settle")
	return changed
}

// OnDragEnded settles immediately unless the scroll will keep decelerating.
func (p *Pager) OnDragEnded(willDecelerate bool, m ScrollMetrics) bool {
	if willDecelerate {
		return false
	}
	return p.OnScrollSettled(m)
}

// OnDecelerateEnded settles once momentum scrolling stops.
func (p *Pager) OnDecelerateEnded(m ScrollMetrics) bool {
	return p.OnScrollSettled(m)
}

// OnSizeChanged re-lays pages for the new viewport and snaps the indicator
// and scroll position to the selected segment without animation.
func (p *Pager) OnSizeChanged(size Size) {
	p.viewport = size
	events.Pager.Resize(size.Width, size.Height)
	if p.ready == nil {
		return
	}
	p.emit(p.layoutPages())
	p.emit(p.placeIndicator(0))
	p.emit(p.scrollTo(false))
}

func (p *Pager) validIndex(index int, op string) bool {
	if p.ready == nil {
		events.Pager.Ignored(op, "not ready")
		return false
	}
	if index < 0 || index >= p.ready.segments.Len() {
		events.Pager.Ignored(op, "index out of range")
		return false
	}
	return true
}

func (p *Pager) selectIndex(index int, duration time.Duration, reason string) {
	p.ready.selected = index
	if seg, ok := p.ready.segments.At(index); ok {
		events.Pager.Select(index, seg.Label, reason)
	}
	p.emit(p.renderButtons())
	p.emit(p.placeIndicator(duration))
}

func (p *Pager) emit(cmd Command) {
	if p.host == nil || cmd == nil {
		return
	}
	p.host.Apply(cmd)
}

func layoutButtons(set *SegmentSet, style Style, measure Measurer) []Frame {
	font := style.Font()
	frames := make([]Frame, set.Len())
	left := style.Insets.Left
	for i, seg := range set.All() {
		width := measure(seg.Label, font)
		if width < 0 {
			width = 0
		}
		frames[i] = Frame{Left: left, Width: width}
		left += width + style.Spacing
	}
	return frames
}

func (p *Pager) renderButtons() RenderButtons {
	r := p.ready
	buttons := make([]ButtonState, r.segments.Len())
	for i, seg := range r.segments.All() {
		buttons[i] = ButtonState{
			ID:       seg.Button,
			Index:    seg.Index,
			Label:    seg.Label,
			Selected: seg.Index == r.selected,
			Frame:    r.frames[i],
		}
	}
	return RenderButtons{
		Buttons:       buttons,
		Font:          r.style.Font(),
		NormalColor:   r.style.NormalColor,
		SelectedColor: r.style.SelectedColor,
		Spacing:       r.style.Spacing,
		Insets:        r.style.Insets,
	}
}

func (p *Pager) placeIndicator(duration time.Duration) PlaceIndicator {
	r := p.ready
	frame := r.frames[r.selected]
	rightInset := p.controlWidth() - frame.Right()
	if rightInset < 0 {
		rightInset = 0
	}
	return PlaceIndicator{
		Index: r.selected,
		Geometry: IndicatorGeometry{
			Model:      p.geometry,
			Left:       frame.Left,
			Width:      frame.Width,
			LeftInset:  frame.Left,
			RightInset: rightInset,
		},
		Color:    r.style.SelectedColor,
		Duration: duration,
	}
}

// controlWidth is the viewport width once known, otherwise the extent of the
// button row including its right inset.
func (p *Pager) controlWidth() float64 {
	if p.viewport.Width > 0 {
		return p.viewport.Width
	}
	r := p.ready
	if len(r.frames) == 0 {
		return r.style.Insets.Right
	}
	return r.frames[len(r.frames)-1].Right() + r.style.Insets.Right
}

func (p *Pager) scrollTo(animated bool) SetScrollFraction {
	seg, _ := p.ready.segments.At(p.ready.selected)
	return SetScrollFraction{
		Index:    seg.Index,
		Fraction: seg.Range.Lower / hundredPercent,
		Animated: animated,
	}
}

func (p *Pager) layoutPages() LayoutPages {
	r := p.ready
	n := r.segments.Len()
	pages := make([]PageFrame, n)
	for i, seg := range r.segments.All() {
		pages[i] = PageFrame{
			Index:          seg.Index,
			Page:           seg.Page,
			OffsetFraction: float64(seg.Index) / float64(n),
			WidthFraction:  1 / float64(n),
		}
	}
	return LayoutPages{Pages: pages, Viewport: p.viewport}
}
