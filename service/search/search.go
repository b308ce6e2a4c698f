// Package search indexes registrations in Elasticsearch so the query API
// can look types up by any of their names.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/elastic/go-elasticsearch/v8"

	"cptui.GO/hooks"
	"cptui.GO/service/registration"
)

// ErrNotConfigured is returned when no Elasticsearch host is set.
var ErrNotConfigured = errors.New("elasticsearch not configured")

var (
	searchServiceInstance *SearchService
	searchServiceOnce     sync.Once
)

// GetSearchService returns singleton SearchService.
func GetSearchService() *SearchService {
	searchServiceOnce.Do(func() {
		searchServiceInstance = NewSearchService()
	})
	return searchServiceInstance
}

type SearchService struct {
	client *elasticsearch.Client
	prefix string
}

// NewSearchService reads ELASTICSEARCH_HOST; without it the service is
// disabled and every call returns ErrNotConfigured.
func NewSearchService() *SearchService {
	prefix := os.Getenv("ELASTICSEARCH_INDEX_PREFIX")
	if prefix == "" {
		prefix = "cptui"
	}
	host := os.Getenv("ELASTICSEARCH_HOST")
	if host == "" {
		return &SearchService{prefix: prefix}
	}
	return NewSearchServiceWithAddress(host, prefix)
}

func NewSearchServiceWithAddress(host, prefix string) *SearchService {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{host},
	})
	if err != nil {
		return &SearchService{prefix: prefix}
	}
	return &SearchService{client: client, prefix: prefix}
}

// Enabled reports whether a client is configured.
func (s *SearchService) Enabled() bool {
	return s != nil && s.client != nil
}

func (s *SearchService) index() string {
	return s.prefix + "_content_types"
}

// document is what gets indexed per registration.
type document struct {
	Kind              string `json:"kind"`
	Name              string `json:"name"`
	Label             string `json:"label"`
	ShowInGraphQL     bool   `json:"show_in_graphql"`
	GraphQLSingleName string `json:"graphql_single_name"`
	GraphQLPluralName string `json:"graphql_plural_name"`
}

func docID(kind hooks.Kind, name string) string {
	return kind.String() + ":" + name
}

// Index writes one document per registration, replacing earlier versions.
func (s *SearchService) Index(ctx context.Context, regs []registration.Registration) error {
	if !s.Enabled() {
		return ErrNotConfigured
	}
	for _, r := range regs {
		body, err := json.Marshal(document{
			Kind:              r.Kind.String(),
			Name:              r.Name,
			Label:             r.Label(),
			ShowInGraphQL:     r.ShowInGraphQL(),
			GraphQLSingleName: r.SingleName(),
			GraphQLPluralName: r.PluralName(),
		})
		if err != nil {
			return err
		}
		res, err := s.client.Index(s.index(), bytes.NewReader(body),
			s.client.Index.WithContext(ctx),
			s.client.Index.WithDocumentID(docID(r.Kind, r.Name)),
		)
		if err != nil {
			return fmt.Errorf("elasticsearch index %s: %w", r.Name, err)
		}
		res.Body.Close()
		if res.IsError() {
			return fmt.Errorf("elasticsearch index %s: %s", r.Name, res.String())
		}
	}
	return nil
}

// Delete drops the document of one record. Missing documents are not an error.
func (s *SearchService) Delete(ctx context.Context, kind hooks.Kind, name string) error {
	if !s.Enabled() {
		return ErrNotConfigured
	}
	res, err := s.client.Delete(s.index(), docID(kind, name), s.client.Delete.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("elasticsearch delete %s: %w", name, err)
	}
	defer res.Body.Close()
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("elasticsearch delete %s: %s", name, res.String())
	}
	return nil
}

// Hit is one search result.
type Hit struct {
	Kind       hooks.Kind
	Name       string
	SingleName string
	PluralName string
}

// Search returns exposed types whose names or label match query.
func (s *SearchService) Search(ctx context.Context, query string, limit int) ([]Hit, error) {
	if !s.Enabled() {
		return nil, ErrNotConfigured
	}
	if limit <= 0 {
		limit = 20
	}
	q := map[string]interface{}{
		"size": limit,
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": map[string]interface{}{
					"multi_match": map[string]interface{}{
						"query":  strings.TrimSpace(query),
						"fields": []string{"name^3", "graphql_single_name^2", "graphql_plural_name^2", "label"},
						"type":   "bool_prefix",
					},
				},
				"filter": map[string]interface{}{
					"term": map[string]interface{}{"show_in_graphql": true},
				},
			},
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(q); err != nil {
		return nil, err
	}
	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(s.index()),
		s.client.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("elasticsearch error: %s", res.String())
	}

	var r struct {
		Hits struct {
			Hits []struct {
				Source document `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, err
	}
	hits := make([]Hit, 0, len(r.Hits.Hits))
	for _, h := range r.Hits.Hits {
		kind, err := hooks.ParseKind(h.Source.Kind)
		if err != nil {
			continue
		}
		hits = append(hits, Hit{
			Kind:       kind,
			Name:       h.Source.Name,
			SingleName: h.Source.GraphQLSingleName,
			PluralName: h.Source.GraphQLPluralName,
		})
	}
	return hits, nil
}
