package search

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"cptui.GO/hooks"
	"cptui.GO/service/registration"
)

// fakeES answers like Elasticsearch for the handful of calls the service makes.
type fakeES struct {
	mu      sync.Mutex
	indexed map[string]string
}

func (f *fakeES) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Elastic-Product", "Elasticsearch")
	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.Method == http.MethodPut || (r.Method == http.MethodPost && strings.Contains(r.URL.Path, "/_doc/")):
		body, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.indexed[r.URL.Path] = string(body)
		f.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"result":"created"}`)
	case strings.HasSuffix(r.URL.Path, "/_search"):
		io.WriteString(w, `{"hits":{"hits":[{"_source":{"kind":"post_type","name":"book","label":"Books","show_in_graphql":true,"graphql_single_name":"Book","graphql_plural_name":"Books"}},{"_source":{"kind":"bogus","name":"x"}}]}}`)
	case r.Method == http.MethodDelete:
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"result":"not_found"}`)
	default:
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{}`)
	}
}

func TestSearchService_Disabled(t *testing.T) {
	t.Setenv("ELASTICSEARCH_HOST", "")
	s := NewSearchService()
	if s.Enabled() {
		t.Fatal("Enabled = true without host")
	}
	if _, err := s.Search(context.Background(), "book", 5); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Search err = %v, want ErrNotConfigured", err)
	}
	if err := s.Index(context.Background(), nil); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Index err = %v, want ErrNotConfigured", err)
	}
}

func TestSearchService_IndexAndSearch(t *testing.T) {
	fake := &fakeES{indexed: map[string]string{}}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	s := NewSearchServiceWithAddress(srv.URL, "test")
	ctx := context.Background()
	err := s.Index(ctx, []registration.Registration{{
		Kind: hooks.KindPostType,
		Name: "book",
		Args: hooks.Args{"label": "Books", "show_in_graphql": true, "graphql_single_name": "Book"},
	}})
	if err != nil {
		t.Fatalf("Index: %v", err)
	}
	body, ok := fake.indexed["/test_content_types/_doc/post_type:book"]
	if !ok {
		t.Fatalf("document not indexed, got %v", fake.indexed)
	}
	var doc map[string]interface{}
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		t.Fatalf("decode indexed doc: %v", err)
	}
	if doc["graphql_single_name"] != "Book" || doc["graphql_plural_name"] != "Books" {
		t.Errorf("indexed doc = %v", doc)
	}

	hits, err := s.Search(ctx, "boo", 5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) != 1 || hits[0].Name != "book" || hits[0].Kind != hooks.KindPostType {
		t.Errorf("hits = %+v, want book only", hits)
	}

	if err := s.Delete(ctx, hooks.KindPostType, "movie"); err != nil {
		t.Errorf("Delete of missing doc: %v", err)
	}
}
