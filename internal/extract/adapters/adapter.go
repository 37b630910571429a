package adapters

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Adapter locates candidate data tables for a particular kind of site
type Adapter interface {
	// Name returns the adapter name
	Name() string

	// CanHandle checks if this adapter can handle the given URL
	CanHandle(url string) bool

	// LocateTables returns up to limit tables carrying any of the given
	// classes, in document order
	LocateTables(doc *goquery.Document, classes []string, limit int) []*goquery.Selection
}

// Registry manages site adapters
type Registry struct {
	adapters []Adapter
	generic  Adapter
}

// NewRegistry creates a new adapter registry
func NewRegistry() *Registry {
	registry := &Registry{
		adapters: make([]Adapter, 0),
	}

	registry.Register(NewWikipediaAdapter())

	// Set generic adapter as fallback
	registry.generic = NewGenericAdapter()

	return registry
}

// Register registers a new adapter
func (r *Registry) Register(adapter Adapter) {
	r.adapters = append(r.adapters, adapter)
}

// FindAdapter finds the best adapter for the given URL
func (r *Registry) FindAdapter(url string) Adapter {
	for _, adapter := range r.adapters {
		if adapter.CanHandle(url) {
			return adapter
		}
	}

	return r.generic
}

// BaseAdapter provides common functionality for adapters
type BaseAdapter struct{}

// ParseHTML parses an HTML string into a queryable document
func ParseHTML(htmlContent string) (*goquery.Document, error) {
	root, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil, err
	}
	return goquery.NewDocumentFromNode(root), nil
}

// HasAnyClass checks if the selection carries at least one of the classes
func (b *BaseAdapter) HasAnyClass(s *goquery.Selection, classes []string) bool {
	for _, class := range classes {
		if class != "" && s.HasClass(class) {
			return true
		}
	}
	return false
}

// FindTables finds the first limit tables under root that carry any of
// the classes. limit <= 0 means no limit.
func (b *BaseAdapter) FindTables(root *goquery.Selection, classes []string, limit int) []*goquery.Selection {
	var tables []*goquery.Selection

	root.Find("table").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !b.HasAnyClass(s, classes) {
			return true
		}
		tables = append(tables, s)
		return limit <= 0 || len(tables) < limit
	})

	return tables
}
