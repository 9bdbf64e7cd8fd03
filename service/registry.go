package service

import (
	"context"
	"sort"
	"sync"

	"myrendezvous/domain"
	"myrendezvous/interfaces"
)

// NameTable is the in-memory registry behind the registry service. Safe for concurrent use.
type NameTable struct {
	mu       sync.RWMutex
	bindings map[string]domain.Binding
}

var _ interfaces.Registry = (*NameTable)(nil)

func NewNameTable() *NameTable {
	return &NameTable{bindings: make(map[string]domain.Binding)}
}

// Bind adds binding. Returns bad_parameter for an empty name and bind_error when the name is taken.
func (t *NameTable) Bind(_ context.Context, binding domain.Binding) error {
	if binding.Name == "" {
		return NewBadParameterError("binding name is required", nil)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.bindings[binding.Name]; ok {
		return NewBindError("name already bound: "+binding.Name, nil)
	}
	t.bindings[binding.Name] = binding
	return nil
}

func (t *NameTable) Rebind(_ context.Context, binding domain.Binding) error {
	if binding.Name == "" {
		return NewBadParameterError("binding name is required", nil)
	}
	t.mu.Lock()
	t.bindings[binding.Name] = binding
	t.mu.Unlock()
	return nil
}

func (t *NameTable) Unbind(_ context.Context, name string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.bindings[name]; !ok {
		return NewEntityNotFoundError("name not bound: "+name, nil)
	}
	delete(t.bindings, name)
	return nil
}

func (t *NameTable) Lookup(_ context.Context, name string) (domain.Binding, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	b, ok := t.bindings[name]
	if !ok {
		return domain.Binding{}, NewEntityNotFoundError("name not bound: "+name, nil)
	}
	return b, nil
}

// List returns a snapshot of all bindings ordered by name.
func (t *NameTable) List(_ context.Context) ([]domain.Binding, error) {
	t.mu.RLock()
	out := make([]domain.Binding, 0, len(t.bindings))
	for _, b := range t.bindings {
		out = append(out, b)
	}
	t.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
