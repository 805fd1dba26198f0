package service

import (
	"sync"

	"github.com/rotisserie/eris"
)

// Hub owns the process services (terminal screen, audio device) and runs
// their lifecycle in registration order. A service may only depend on
// services registered before it, so registration order is a valid start order.
type Hub struct {
	// Crash cleanup may call StopAll from the event poller goroutine
	mu      sync.Mutex
	order   []Service
	names   map[string]struct{}
	started []Service
}

// NewHub creates an empty service hub
func NewHub() *Hub {
	return &Hub{names: make(map[string]struct{})}
}

// Register appends svc to the lifecycle order
func (h *Hub) Register(svc Service) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	name := svc.Name()
	if _, exists := h.names[name]; exists {
		return eris.Errorf("service already registered: %s", name)
	}
	for _, dep := range svc.Dependencies() {
		if _, ok := h.names[dep]; !ok {
			return eris.Errorf("service %s depends on %s, which is not registered before it", name, dep)
		}
	}

	h.names[name] = struct{}{}
	h.order = append(h.order, svc)
	return nil
}

// InitAll calls Init on every service with the same args.
// On failure the services already initialized are stopped in reverse order.
func (h *Hub) InitAll(args ...any) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, svc := range h.order {
		if err := svc.Init(args...); err != nil {
			stopReverse(h.order[:i])
			return eris.Wrapf(err, "service %s init failed", svc.Name())
		}
	}
	return nil
}

// StartAll calls Start in registration order, rolling back on failure
func (h *Hub) StartAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.started = h.started[:0]
	for _, svc := range h.order {
		if err := svc.Start(); err != nil {
			stopReverse(h.started)
			h.started = nil
			return eris.Wrapf(err, "service %s start failed", svc.Name())
		}
		h.started = append(h.started, svc)
	}
	return nil
}

// StopAll stops started services in reverse order; later calls are no-ops
func (h *Hub) StopAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	stopReverse(h.started)
	h.started = nil
}

func stopReverse(svcs []Service) {
	for i := len(svcs) - 1; i >= 0; i-- {
		_ = svcs[i].Stop()
	}
}
