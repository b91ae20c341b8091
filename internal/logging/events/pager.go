package events

import "github.com/atomicstack/segmented-pager/internal/logging"

type PagerTracer struct{}

var Pager = PagerTracer{}

func (PagerTracer) Setup(segments int, sync, geometry string) {
	logging.Trace("pager.setup", map[string]interface{}{
		"segments": segments,
		"sync":     sync,
		"geometry": geometry,
	})
}

func (PagerTracer) SetupRejected(err error) {
	if err == nil {
		return
	}
	logging.Trace("pager.setup.rejected", map[string]interface{}{"error": err.Error()})
}

func (PagerTracer) Select(index int, label, reason string) {
	logging.Trace("pager.select", map[string]interface{}{"index": index, "label": label, "reason": reason})
}

func (PagerTracer) Settle(percentage float64, index int) {
	logging.Trace("pager.settle", map[string]interface{}{"percentage": percentage, "index": index})
}

func (PagerTracer) Scroll(percentage float64, index int) {
	logging.Trace("pager.scroll", map[string]interface{}{"percentage": percentage, "index": index})
}

func (PagerTracer) Resize(width, height float64) {
	logging.Trace("pager.resize", map[string]interface{}{"width": width, "height": height})
}

// Ignored records a soft unmatched event; these are expected before the first
// layout pass and never surface as errors.
func (PagerTracer) Ignored(event, reason string) {
	logging.Trace("pager.ignored", map[string]interface{}{"event": event, "reason": reason})
}
