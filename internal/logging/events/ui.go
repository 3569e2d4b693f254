package events

import "github.com/atomicstack/formatting-rotor/internal/logging"

type UITracer struct{}

var UI = UITracer{}

func (UITracer) Key(key, event string) {
	logging.Trace("ui.key", map[string]interface{}{"key": key, "event": event})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (UITracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("ui.error", map[string]interface{}{"error": err.Error()})
}
