package events

import "github.com/atomicstack/segmented-pager/internal/logging"

type UITracer struct{}

type HostTracer struct{}

var (
	UI   = UITracer{}
	Host = HostTracer{}
)

func (UITracer) Key(key string) {
	logging.Trace("ui.key", map[string]interface{}{"key": key})
}

func (UITracer) Click(x, y int, hit bool) {
	logging.Trace("ui.click", map[string]interface{}{"x": x, "y": y, "hit": hit})
}

func (UITracer) Jump(query string, index int) {
	logging.Trace("ui.jump", map[string]interface{}{"query": query, "index": index})
}

func (UITracer) Drag(offset float64) {
	logging.Trace("ui.drag", map[string]interface{}{"offset": offset})
}

func (UITracer) Settled(offset float64, decelerated bool) {
	logging.Trace("ui.settled", map[string]interface{}{"offset": offset, "decelerated": decelerated})
}

func (HostTracer) Command(name string) {
	logging.Trace("host.command", map[string]interface{}{"command": name})
}
