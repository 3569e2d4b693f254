package events

import "github.com/atomicstack/formatting-rotor/internal/logging"

type SessionTracer struct{}

type StoreTracer struct{}

var (
	Session = SessionTracer{}
	Store   = StoreTracer{}
)

func (SessionTracer) Open(id string, keys int) {
	logging.Trace("session.open", map[string]interface{}{"session": id, "keys": keys})
}

func (SessionTracer) Cycle(id, key, value string) {
	logging.Trace("session.cycle", map[string]interface{}{"session": id, "key": key, "value": value})
}

func (SessionTracer) Unsupported(id, key, kind string) {
	logging.Trace("session.unsupported", map[string]interface{}{"session": id, "key": key, "kind": kind})
}

func (SessionTracer) Commit(id string, changed []string) {
	logging.Trace("session.commit", map[string]interface{}{"session": id, "changed": changed})
}

func (SessionTracer) Discard(id string, changed []string) {
	logging.Trace("session.discard", map[string]interface{}{"session": id, "changed": changed})
}

func (SessionTracer) Error(id string, err error) {
	if err == nil {
		return
	}
	logging.Trace("session.error", map[string]interface{}{"session": id, "error": err.Error()})
}

func (StoreTracer) Read(backend string, count int) {
	logging.Trace("store.read", map[string]interface{}{"backend": backend, "count": count})
}

func (StoreTracer) Write(backend string, count int) {
	logging.Trace("store.write", map[string]interface{}{"backend": backend, "count": count})
}
