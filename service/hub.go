package service

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/lixenwraith/chainburst/engine"
)

// Hub owns services and drives them through their lifecycle in dependency order
type Hub struct {
	services map[string]Service
	names    []string // Registration order, keeps the sort deterministic
	order    []string // Resolved by InitAll
	started  []string
}

func NewHub() *Hub {
	return &Hub{services: make(map[string]Service)}
}

// Register adds a service; names must be unique
func (h *Hub) Register(s Service) error {
	name := s.Name()
	if _, exists := h.services[name]; exists {
		return fmt.Errorf("service %q already registered", name)
	}
	h.services[name] = s
	h.names = append(h.names, name)
	return nil
}

// resolve orders services so every dependency precedes its dependents
func (h *Hub) resolve() ([]string, error) {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(h.services))
	order := make([]string, 0, len(h.services))

	var visit func(name string, path []string) error
	visit = func(name string, path []string) error {
		switch state[name] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("service dependency cycle: %v", append(path, name))
		}
		s, ok := h.services[name]
		if !ok {
			return fmt.Errorf("service %q required by %q is not registered", name, path[len(path)-1])
		}

		state[name] = visiting
		for _, dep := range s.Dependencies() {
			if err := visit(dep, append(path, name)); err != nil {
				return err
			}
		}
		state[name] = done
		order = append(order, name)
		return nil
	}

	for _, name := range h.names {
		if err := visit(name, nil); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// InitAll initializes every service in dependency order, stopping at the first failure
func (h *Hub) InitAll() error {
	order, err := h.resolve()
	if err != nil {
		return err
	}
	h.order = order

	for _, name := range h.order {
		if err := h.services[name].Init(); err != nil {
			return fmt.Errorf("init %s: %w", name, err)
		}
	}
	return nil
}

// StartAll starts every initialized service in dependency order
func (h *Hub) StartAll() error {
	for _, name := range h.order {
		if err := h.services[name].Start(); err != nil {
			return fmt.Errorf("start %s: %w", name, err)
		}
		h.started = append(h.started, name)
		slog.Debug("service started", "name", name)
	}
	return nil
}

// Contribute lets every ResourceContributor publish into the world
func (h *Hub) Contribute(w *engine.World) {
	for _, name := range h.order {
		if c, ok := h.services[name].(ResourceContributor); ok {
			c.Contribute(w)
		}
	}
}

// StopAll stops started services in reverse order, collecting every error
func (h *Hub) StopAll() error {
	var errs []error
	for _, name := range slices.Backward(h.started) {
		if err := h.services[name].Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop %s: %w", name, err))
		}
	}
	h.started = nil
	return errors.Join(errs...)
}
