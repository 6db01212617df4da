package bridge

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Dispatcher executes invocation requests against an immutable registry.
// Each dispatch is independent; the dispatcher holds no per-request
// state and is safe for concurrent use once the registry is sealed.
type Dispatcher struct {
	registry *Registry
	host     *Host
	log      *zap.Logger
}

// NewDispatcher creates a dispatcher over a fully populated registry.
func NewDispatcher(registry *Registry, host *Host, log *zap.Logger) *Dispatcher {
	return &Dispatcher{registry: registry, host: host, log: log}
}

// Dispatch resolves and runs the handler for req, returning either its
// value or an error description. Handler failures and panics become
// error responses; they never terminate the dispatcher or the host.
func (d *Dispatcher) Dispatch(req Request) Response {
	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}

	h, err := d.registry.Resolve(req.Name)
	if err != nil {
		d.log.Warn("command not resolved",
			zap.String("command", req.Name),
			zap.String("invocation", id))
		return Response{ID: id, Error: err.Error()}
	}

	value, err := d.run(h, req.Args)
	if err != nil {
		d.log.Warn("command failed",
			zap.String("command", req.Name),
			zap.String("invocation", id),
			zap.Error(err))
		return Response{ID: id, Error: err.Error()}
	}

	d.log.Debug("command completed",
		zap.String("command", req.Name),
		zap.String("invocation", id))
	return Response{ID: id, OK: true, Value: value}
}

// run executes a handler, converting a panic into an ordinary error so
// a misbehaving command cannot take the process down.
func (d *Dispatcher) run(h Handler, args Args) (value any, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("handler panic: %v", p)
		}
	}()
	return h(d.host, args)
}
