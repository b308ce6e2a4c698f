package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"cptui.GO/core/registry"
)

// ResolverFunc resolves one _extension name. Args is the JSON-decoded args object.
type ResolverFunc func(ctx context.Context, args map[string]interface{}) (interface{}, error)

var mu sync.Mutex

func getEntries() map[string]ResolverFunc {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryGraphQL); ok && v != nil {
		return v.(map[string]ResolverFunc)
	}
	return make(map[string]ResolverFunc)
}

// Register adds an extension resolver. Call from init() in custom packages.
// Panics on duplicate names or once the schema is serving.
func Register(name string, resolve ResolverFunc) {
	mu.Lock()
	defer mu.Unlock()
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryGraphQL) {
		panic("graphql/registry: locked (register only during init before the schema is built)")
	}
	entries := getEntries()
	if _, ok := entries[name]; ok {
		panic("graphql/registry: duplicate " + name)
	}
	entries[name] = resolve
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryGraphQL, entries)
}

// Unregister removes a resolver (for tests). Unlocks the registry.
func Unregister(name string) {
	mu.Lock()
	defer mu.Unlock()
	registry.GlobalRegistry.UnlockForTesting(registry.KeyRegistryGraphQL)
	entries := getEntries()
	delete(entries, name)
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryGraphQL, entries)
}

// Lock freezes the registry. graphqlserver.NewSchema calls it.
func Lock() {
	mu.Lock()
	defer mu.Unlock()
	registry.GlobalRegistry.Lock(registry.KeyRegistryGraphQL)
}

// Resolve calls the resolver registered under name.
func Resolve(ctx context.Context, name string, args map[string]interface{}) (interface{}, error) {
	mu.Lock()
	resolve, ok := getEntries()[name]
	mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("unknown extension: %s", name)
	}
	return resolve(ctx, args)
}

// Names returns the registered names, sorted.
func Names() []string {
	mu.Lock()
	defer mu.Unlock()
	entries := getEntries()
	names := make([]string, 0, len(entries))
	for n := range entries {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
