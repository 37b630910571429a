package adapters

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// WikipediaAdapter locates data tables inside a Wikipedia article body
type WikipediaAdapter struct {
	BaseAdapter
}

// NewWikipediaAdapter creates a new Wikipedia adapter
func NewWikipediaAdapter() *WikipediaAdapter {
	return &WikipediaAdapter{}
}

// Name returns the adapter name
func (a *WikipediaAdapter) Name() string {
	return "wikipedia"
}

// CanHandle checks if this is a Wikipedia URL
func (a *WikipediaAdapter) CanHandle(rawURL string) bool {
	return strings.Contains(rawURL, "wikipedia.org")
}

// LocateTables prefers tables inside the article content area. When the
// article yields fewer than limit tables, or limit is not positive, the
// whole document is searched in document order.
func (a *WikipediaAdapter) LocateTables(doc *goquery.Document, classes []string, limit int) []*goquery.Selection {
	if limit > 0 {
		content := doc.Find("div.mw-parser-output").First()
		if content.Length() > 0 {
			if article := a.FindTables(content, classes, limit); len(article) >= limit {
				return article
			}
		}
	}
	return a.FindTables(doc.Selection, classes, limit)
}
