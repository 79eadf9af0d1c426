package service

import (
	"fmt"
	"sort"
	"sync"
)

// Hub owns a set of services and drives them through their lifecycle
type Hub struct {
	mu       sync.RWMutex
	services map[string]Service
	args     map[string][]any
	sorted   []string // dependency order, computed on InitAll
	started  []string // services that completed Start, for rollback
}

// NewHub creates an empty service hub
func NewHub() *Hub {
	return &Hub{
		services: make(map[string]Service),
		args:     make(map[string][]any),
	}
}

// Register adds a service with the args later passed to its Init
func (h *Hub) Register(svc Service, args ...any) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	name := svc.Name()
	if _, exists := h.services[name]; exists {
		return fmt.Errorf("service already registered: %s", name)
	}

	h.services[name] = svc
	h.args[name] = args
	h.sorted = nil
	return nil
}

// Get retrieves a service by name
func (h *Hub) Get(name string) (Service, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	svc, ok := h.services[name]
	return svc, ok
}

// MustGet retrieves a service and casts to type T
// Panics if service not found or type mismatch
func MustGet[T any](h *Hub, name string) T {
	svc, ok := h.Get(name)
	if !ok {
		panic(fmt.Sprintf("service not found: %s", name))
	}
	typed, ok := svc.(T)
	if !ok {
		panic(fmt.Sprintf("service %s: type mismatch, got %T", name, svc))
	}
	return typed
}

// InitAll calls Init on every service in dependency order
// On failure, stops already-initialized services in reverse order
func (h *Hub) InitAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.sorted == nil {
		order, err := h.order()
		if err != nil {
			return err
		}
		h.sorted = order
	}

	for i, name := range h.sorted {
		if err := h.services[name].Init(h.args[name]...); err != nil {
			for j := i - 1; j >= 0; j-- {
				h.services[h.sorted[j]].Stop()
			}
			return fmt.Errorf("service %s init failed: %w", name, err)
		}
	}
	return nil
}

// StartAll calls Start on every service in dependency order
// On failure, stops already-started services in reverse order
func (h *Hub) StartAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.started = nil
	for _, name := range h.sorted {
		if err := h.services[name].Start(); err != nil {
			h.stopStarted()
			return fmt.Errorf("service %s start failed: %w", name, err)
		}
		h.started = append(h.started, name)
	}
	return nil
}

// StopAll stops started services in reverse order; every service gets Stop called
func (h *Hub) StopAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stopStarted()
}

func (h *Hub) stopStarted() {
	for i := len(h.started) - 1; i >= 0; i-- {
		h.services[h.started[i]].Stop()
	}
	h.started = nil
}

// order sorts services so dependencies come first (Kahn's algorithm)
// Ties break by name so startup order is stable
func (h *Hub) order() ([]string, error) {
	inDegree := make(map[string]int, len(h.services))
	dependents := make(map[string][]string)

	for name, svc := range h.services {
		inDegree[name] += 0
		for _, dep := range svc.Dependencies() {
			if _, exists := h.services[dep]; !exists {
				return nil, fmt.Errorf("service %s depends on unregistered service: %s", name, dep)
			}
			inDegree[name]++
			dependents[dep] = append(dependents[dep], name)
		}
	}

	var ready []string
	for name, degree := range inDegree {
		if degree == 0 {
			ready = append(ready, name)
		}
	}

	var result []string
	for len(ready) > 0 {
		sort.Strings(ready)
		name := ready[0]
		ready = ready[1:]
		result = append(result, name)

		for _, d := range dependents[name] {
			inDegree[d]--
			if inDegree[d] == 0 {
				ready = append(ready, d)
			}
		}
	}

	if len(result) != len(h.services) {
		return nil, fmt.Errorf("circular dependency detected in services")
	}
	return result, nil
}

// Names returns registered service names in start order once InitAll has run
func (h *Hub) Names() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.sorted != nil {
		return append([]string(nil), h.sorted...)
	}
	names := make([]string, 0, len(h.services))
	for name := range h.services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
