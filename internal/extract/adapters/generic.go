package adapters

import "github.com/PuerkitoBio/goquery"

// GenericAdapter is the fallback adapter for unknown sites
type GenericAdapter struct {
	BaseAdapter
}

// NewGenericAdapter creates a new generic adapter
func NewGenericAdapter() *GenericAdapter {
	return &GenericAdapter{}
}

// Name returns the adapter name
func (a *GenericAdapter) Name() string {
	return "generic"
}

// CanHandle always returns true (fallback adapter)
func (a *GenericAdapter) CanHandle(url string) bool {
	return true
}

// LocateTables searches the whole document
func (a *GenericAdapter) LocateTables(doc *goquery.Document, classes []string, limit int) []*goquery.Selection {
	return a.FindTables(doc.Selection, classes, limit)
}
