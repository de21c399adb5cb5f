// Package catalog - Authoritative page catalog
// Defines every calculator and info page with its route and SEO metadata.
// This is the source of truth for routing and static generation.
package catalog

import "sort"

// SiteURL is the production origin
const SiteURL = "https://calk.kg"

// Kind classifies pages
type Kind int

const (
	// KindInfo - static content page
	KindInfo Kind = iota
	// KindCalculator - interactive calculator
	KindCalculator
)

// String returns string representation
func (k Kind) String() string {
	switch k {
	case KindInfo:
		return "info"
	case KindCalculator:
		return "calculator"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Group is the calculator section on the home page
type Group string

const (
	GroupUtilities Group = "utilities"
	GroupPayroll   Group = "payroll"
	GroupTaxes     Group = "taxes"
	GroupLending   Group = "lending"
	GroupFamily    Group = "family"
	GroupCurrency  Group = "currency"
	GroupHousehold Group = "household"
)

// Entry is a catalog entry for a page
type Entry struct {
	Slug        string `json:"slug"`
	Path        string `json:"path"`
	Kind        Kind   `json:"kind"`
	Group       Group  `json:"group,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	OGImage     string `json:"og_image"`

	// Prerender marks pages written by the static generator
	Prerender bool `json:"prerender"`
}

// URL returns the absolute page URL. The root has no trailing slash.
func (e Entry) URL(base string) string {
	if e.Path == "/" {
		return base
	}
	return base + e.Path
}

// Catalog is the page catalog in registration order
type Catalog struct {
	entries map[string]*Entry
	order   []string
}

// NewCatalog creates a new catalog
func NewCatalog() *Catalog {
	return &Catalog{
		entries: make(map[string]*Entry),
	}
}

// Register adds a page to the catalog
func (c *Catalog) Register(entry Entry) {
	if _, ok := c.entries[entry.Slug]; !ok {
		c.order = append(c.order, entry.Slug)
	}
	c.entries[entry.Slug] = &entry
}

// Get returns a page by slug
func (c *Catalog) Get(slug string) (*Entry, bool) {
	entry, ok := c.entries[slug]
	return entry, ok
}

// GetByPath returns a page by route
func (c *Catalog) GetByPath(path string) (*Entry, bool) {
	for _, slug := range c.order {
		if e := c.entries[slug]; e.Path == path {
			return e, true
		}
	}
	return nil, false
}

// List returns all pages in registration order
func (c *Catalog) List() []Entry {
	out := make([]Entry, 0, len(c.order))
	for _, slug := range c.order {
		out = append(out, *c.entries[slug])
	}
	return out
}

// Routes returns the pages the static generator writes
func (c *Catalog) Routes() []Entry {
	var out []Entry
	for _, e := range c.List() {
		if e.Prerender {
			out = append(out, e)
		}
	}
	return out
}

// ListByGroup returns calculator slugs in a group, sorted
func (c *Catalog) ListByGroup(group Group) []string {
	var result []string
	for _, entry := range c.entries {
		if entry.Kind == KindCalculator && entry.Group == group {
			result = append(result, entry.Slug)
		}
	}
	sort.Strings(result)
	return result
}

// Stats returns catalog statistics
func (c *Catalog) Stats() Stats {
	stats := Stats{
		ByGroup: make(map[Group]int),
	}

	for _, entry := range c.entries {
		stats.Total++
		switch entry.Kind {
		case KindInfo:
			stats.Info++
		case KindCalculator:
			stats.Calculators++
			stats.ByGroup[entry.Group]++
		}
		if entry.Prerender {
			stats.Prerendered++
		}
	}

	return stats
}

// Stats holds catalog statistics
type Stats struct {
	Total       int
	Info        int
	Calculators int
	Prerendered int
	ByGroup     map[Group]int
}
