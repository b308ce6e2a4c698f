package hooks

import (
	"context"
	"io"
	"net/url"
	"sync"

	"cptui.GO/core/registry"
	"cptui.GO/form"
	"cptui.GO/ui"
)

// Point names an extension point the editor fires.
type Point string

const (
	PointRenderFields Point = "render_fields"
	PointBeforeUpdate Point = "before_persist"
	PointPreSave      Point = "pre_save"
	PointPreRegister  Point = "pre_register"
)

// Lookup exposes the host's stored records to render callbacks.
type Lookup interface {
	// Records returns every stored record of kind.
	Records(ctx context.Context, kind Kind) (Records, error)
	// Current returns the name of the record selected for editing.
	Current(ctx context.Context, kind Kind) (string, bool)
}

// RenderContext is what a render_fields subscriber gets for one form render.
type RenderContext struct {
	Kind   Kind
	Query  url.Values
	UI     ui.Toolkit
	Lookup Lookup
}

type (
	RenderFunc       func(ctx context.Context, w io.Writer, rc RenderContext) error
	BeforeUpdateFunc func(ctx context.Context, kind Kind, txn *Txn, values form.Values) error
	PreSaveFunc      func(ctx context.Context, kind Kind, txn *Txn, records Records, name string) (Records, error)
	PreRegisterFunc  func(ctx context.Context, kind Kind, args Args, name string, record Record) (Args, error)
)

// Registry holds subscribers per kind and extension point. Subscribe during
// init; the host locks it before serving.
type Registry struct {
	mu          sync.RWMutex
	locked      bool
	render      map[Kind][]RenderFunc
	before      map[Kind][]BeforeUpdateFunc
	preSave     map[Kind][]PreSaveFunc
	preRegister map[Kind][]PreRegisterFunc
}

func NewRegistry() *Registry {
	return &Registry{
		render:      make(map[Kind][]RenderFunc),
		before:      make(map[Kind][]BeforeUpdateFunc),
		preSave:     make(map[Kind][]PreSaveFunc),
		preRegister: make(map[Kind][]PreRegisterFunc),
	}
}

var defaultMu sync.Mutex

// Default returns the process-wide registry, creating it on first use.
func Default() *Registry {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryHooks); ok && v != nil {
		return v.(*Registry)
	}
	r := NewRegistry()
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryHooks, r)
	return r
}

func (r *Registry) checkUnlocked() {
	if r.locked {
		panic("hooks/registry: locked (subscribe only during init)")
	}
}

func (r *Registry) OnRenderFields(kind Kind, fn RenderFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkUnlocked()
	r.render[kind] = append(r.render[kind], fn)
}

func (r *Registry) OnBeforeUpdate(kind Kind, fn BeforeUpdateFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkUnlocked()
	r.before[kind] = append(r.before[kind], fn)
}

func (r *Registry) OnPreSave(kind Kind, fn PreSaveFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkUnlocked()
	r.preSave[kind] = append(r.preSave[kind], fn)
}

func (r *Registry) OnPreRegister(kind Kind, fn PreRegisterFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkUnlocked()
	r.preRegister[kind] = append(r.preRegister[kind], fn)
}

// Lock makes the registry immutable. Dispatch stays available.
func (r *Registry) Lock() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locked = true
}

func (r *Registry) IsLocked() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.locked
}

// Count returns the number of subscribers for point and kind.
func (r *Registry) Count(point Point, kind Kind) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	switch point {
	case PointRenderFields:
		return len(r.render[kind])
	case PointBeforeUpdate:
		return len(r.before[kind])
	case PointPreSave:
		return len(r.preSave[kind])
	case PointPreRegister:
		return len(r.preRegister[kind])
	}
	return 0
}

// RenderFields runs render subscribers for rc.Kind in order.
func (r *Registry) RenderFields(ctx context.Context, w io.Writer, rc RenderContext) error {
	r.mu.RLock()
	fns := r.render[rc.Kind]
	r.mu.RUnlock()
	for _, fn := range fns {
		if err := fn(ctx, w, rc); err != nil {
			return err
		}
	}
	return nil
}

// BeforeUpdate runs before_persist subscribers with the submitted form.
func (r *Registry) BeforeUpdate(ctx context.Context, kind Kind, txn *Txn, values form.Values) error {
	r.mu.RLock()
	fns := r.before[kind]
	r.mu.RUnlock()
	for _, fn := range fns {
		if err := fn(ctx, kind, txn, values); err != nil {
			return err
		}
	}
	return nil
}

// PreSave threads records through pre_save subscribers and returns what
// the host should persist.
func (r *Registry) PreSave(ctx context.Context, kind Kind, txn *Txn, records Records, name string) (Records, error) {
	r.mu.RLock()
	fns := r.preSave[kind]
	r.mu.RUnlock()
	var err error
	for _, fn := range fns {
		if records, err = fn(ctx, kind, txn, records, name); err != nil {
			return nil, err
		}
	}
	return records, nil
}

// PreRegister threads args through pre_register subscribers.
func (r *Registry) PreRegister(ctx context.Context, kind Kind, args Args, name string, record Record) (Args, error) {
	r.mu.RLock()
	fns := r.preRegister[kind]
	r.mu.RUnlock()
	var err error
	for _, fn := range fns {
		if args, err = fn(ctx, kind, args, name, record); err != nil {
			return nil, err
		}
	}
	return args, nil
}
