// Package editor is the content-type editor: it stores post type and
// taxonomy records and fires the extension points around rendering,
// saving and registering them.
package editor

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	apperr "cptui.GO/core/errors"
	"cptui.GO/form"
	"cptui.GO/hooks"
	"cptui.GO/service/registration"
	"cptui.GO/service/search"
)

// Store is the record persistence the editor needs.
type Store interface {
	FindAll(ctx context.Context, kind hooks.Kind) (hooks.Records, error)
	FindByName(ctx context.Context, kind hooks.Kind, name string) (hooks.Record, error)
	Save(ctx context.Context, kind hooks.Kind, name string, record hooks.Record) error
	Delete(ctx context.Context, kind hooks.Kind, name string) error
}

// Indexer receives registrations after every save. Optional.
type Indexer interface {
	Index(ctx context.Context, regs []registration.Registration) error
	Delete(ctx context.Context, kind hooks.Kind, name string) error
}

var namePattern = regexp.MustCompile(`^[a-z0-9_-]{1,20}$`)

// hostFields are the editor's own record fields.
type hostFields struct {
	Name          string `form:"name"`
	Label         string `form:"label"`
	SingularLabel string `form:"singular_label"`
	Description   string `form:"description"`
	Public        string `form:"public"`
}

type Service struct {
	store   Store
	hooks   *hooks.Registry
	cache   registration.Cache
	indexer Indexer

	// gen counts invalidations per kind. A build only reaches the cache
	// when no invalidation happened while it read the store.
	mu  sync.Mutex
	gen map[hooks.Kind]uint64
}

// Option configures a Service.
type Option func(*Service)

// WithCache sets the registration cache. Without it registrations are built on every call.
func WithCache(c registration.Cache) Option {
	return func(s *Service) { s.cache = c }
}

// WithIndexer sets the search indexer notified after saves and deletes.
func WithIndexer(i Indexer) Option {
	return func(s *Service) { s.indexer = i }
}

func NewService(store Store, reg *hooks.Registry, opts ...Option) *Service {
	s := &Service{store: store, hooks: reg, gen: make(map[hooks.Kind]uint64)}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Save handles one form submission for kind and returns the saved name.
// Order: validate, before_persist, load records, apply host fields,
// pre_save, persist. pre_save sees every record of kind, but only the
// submitted one is written back.
func (s *Service) Save(ctx context.Context, kind hooks.Kind, in url.Values) (string, error) {
	values := form.Parse(in)
	group := values.Group(kind.FormGroup())

	var fields hostFields
	if err := group.Decode(&fields); err != nil {
		return "", apperr.NewValidationError("", err.Error())
	}
	fields.Name = strings.TrimSpace(fields.Name)
	if fields.Name == "" {
		return "", apperr.NewValidationError("name", "required")
	}
	if !namePattern.MatchString(fields.Name) {
		return "", apperr.NewValidationError("name", "use 1-20 lowercase letters, digits, dashes or underscores")
	}

	txn := hooks.NewTxn()
	if err := s.hooks.BeforeUpdate(ctx, kind, txn, values); err != nil {
		return "", fmt.Errorf("editor: before_persist %s %q: %w", kind, fields.Name, err)
	}

	records, err := s.store.FindAll(ctx, kind)
	if err != nil {
		return "", err
	}
	if records == nil {
		records = hooks.Records{}
	}
	rec := records[fields.Name]
	if rec == nil {
		rec = hooks.Record{}
	}
	rec["name"] = fields.Name
	rec["label"] = orDefault(fields.Label, fields.Name)
	rec["singular_label"] = orDefault(fields.SingularLabel, fields.Name)
	rec["description"] = fields.Description
	rec["public"] = orDefault(fields.Public, "true")
	records[fields.Name] = rec

	records, err = s.hooks.PreSave(ctx, kind, txn, records, fields.Name)
	if err != nil {
		return "", fmt.Errorf("editor: pre_save %s %q: %w", kind, fields.Name, err)
	}
	rec, ok := records[fields.Name]
	if !ok || rec == nil {
		return "", fmt.Errorf("editor: pre_save %s dropped %q", kind, fields.Name)
	}
	if err := s.store.Save(ctx, kind, fields.Name, rec); err != nil {
		return "", err
	}
	log.Printf("editor: saved %s %q (txn %s)", kind, fields.Name, txn.ID())

	s.refresh(ctx, kind)
	return fields.Name, nil
}

// Delete removes a record and drops it from cache and index.
func (s *Service) Delete(ctx context.Context, kind hooks.Kind, name string) error {
	if err := s.store.Delete(ctx, kind, name); err != nil {
		return err
	}
	s.invalidate(ctx, kind)
	if s.indexer != nil {
		if err := s.indexer.Delete(ctx, kind, name); err != nil && !errors.Is(err, search.ErrNotConfigured) {
			log.Printf("editor: unindex %s %q: %v", kind, name, err)
		}
	}
	return nil
}

// Registrations returns the live registrations of every stored record of kind.
func (s *Service) Registrations(ctx context.Context, kind hooks.Kind) ([]registration.Registration, error) {
	if s.cache != nil {
		regs, ok, err := s.cache.Get(ctx, kind)
		if err != nil {
			log.Printf("editor: registration cache: %v", err)
		} else if ok {
			return regs, nil
		}
	}
	gen := s.generation(kind)
	regs, err := s.build(ctx, kind)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, kind, gen, regs)
	return regs, nil
}

// Registration returns the live registration of one record.
func (s *Service) Registration(ctx context.Context, kind hooks.Kind, name string) (registration.Registration, error) {
	regs, err := s.Registrations(ctx, kind)
	if err != nil {
		return registration.Registration{}, err
	}
	for _, r := range regs {
		if r.Name == name {
			return r, nil
		}
	}
	return registration.Registration{}, apperr.NewNotFoundError(kind.String(), name)
}

// Warm rebuilds the registration cache for every kind.
func (s *Service) Warm(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, kind := range hooks.Kinds() {
		kind := kind
		g.Go(func() error {
			s.invalidate(ctx, kind)
			_, err := s.Registrations(ctx, kind)
			return err
		})
	}
	return g.Wait()
}

func (s *Service) build(ctx context.Context, kind hooks.Kind) ([]registration.Registration, error) {
	records, err := s.store.FindAll(ctx, kind)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(records))
	for name := range records {
		names = append(names, name)
	}
	sort.Strings(names)

	regs := make([]registration.Registration, 0, len(names))
	for _, name := range names {
		rec := records[name]
		args, err := s.hooks.PreRegister(ctx, kind, hostArgs(name, rec), name, rec)
		if err != nil {
			return nil, fmt.Errorf("editor: pre_register %s %q: %w", kind, name, err)
		}
		regs = append(regs, registration.Registration{Kind: kind, Name: name, Args: args})
	}
	return regs, nil
}

// hostArgs are the registration arguments the editor derives itself.
func hostArgs(name string, rec hooks.Record) hooks.Args {
	return hooks.Args{
		"name":        name,
		"label":       orDefault(rec.String("label"), name),
		"labels":      map[string]interface{}{"singular_name": orDefault(rec.String("singular_label"), name)},
		"description": rec.String("description"),
		"public":      rec.String("public") != "false",
	}
}

func (s *Service) refresh(ctx context.Context, kind hooks.Kind) {
	s.invalidate(ctx, kind)
	if s.indexer == nil {
		return
	}
	regs, err := s.Registrations(ctx, kind)
	if err != nil {
		log.Printf("editor: rebuild %s registrations: %v", kind, err)
		return
	}
	if err := s.indexer.Index(ctx, regs); err != nil && !errors.Is(err, search.ErrNotConfigured) {
		log.Printf("editor: index %s: %v", kind, err)
	}
}

func (s *Service) generation(kind hooks.Kind) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen[kind]
}

// cacheSet stores regs unless kind was invalidated after gen was read.
func (s *Service) cacheSet(ctx context.Context, kind hooks.Kind, gen uint64, regs []registration.Registration) {
	if s.cache == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen[kind] != gen {
		log.Printf("editor: %s changed during rebuild, not caching", kind)
		return
	}
	if err := s.cache.Set(ctx, kind, regs); err != nil {
		log.Printf("editor: registration cache: %v", err)
	}
}

func (s *Service) invalidate(ctx context.Context, kind hooks.Kind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen[kind]++
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, kind); err != nil {
		log.Printf("editor: registration cache: %v", err)
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
