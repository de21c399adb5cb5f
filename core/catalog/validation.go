// Package catalog - Catalog validation
// Ensures catalog integrity and enforces invariants.
package catalog

import (
	"fmt"
	"strings"
)

// ValidationRule is a catalog validation rule
type ValidationRule func(*Entry) error

// DefaultValidationRules returns the standard validation rules
func DefaultValidationRules() []ValidationRule {
	return []ValidationRule{
		validatePath,
		validateMetadata,
		validateGroup,
	}
}

// Validate checks a catalog against validation rules
func (c *Catalog) Validate(rules []ValidationRule) []error {
	var errs []error

	paths := make(map[string]string)
	for _, slug := range c.order {
		entry := c.entries[slug]
		for _, rule := range rules {
			if err := rule(entry); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", entry.Slug, err))
			}
		}
		if other, ok := paths[entry.Path]; ok {
			errs = append(errs, fmt.Errorf("%s: path %s already used by %s", entry.Slug, entry.Path, other))
		}
		paths[entry.Path] = entry.Slug
	}

	return errs
}

// validatePath ensures routes are absolute and calculators live under /calculator
func validatePath(e *Entry) error {
	if !strings.HasPrefix(e.Path, "/") {
		return fmt.Errorf("path %q must start with /", e.Path)
	}
	if e.Kind == KindCalculator && !strings.HasPrefix(e.Path, "/calculator/") {
		return fmt.Errorf("calculator path %q must be under /calculator/", e.Path)
	}
	return nil
}

// validateMetadata ensures prerendered pages have SEO fields
func validateMetadata(e *Entry) error {
	if !e.Prerender {
		return nil
	}
	if e.Title == "" || e.Description == "" {
		return fmt.Errorf("prerendered page needs a title and description")
	}
	if !strings.HasPrefix(e.OGImage, SiteURL+"/") {
		return fmt.Errorf("og image %q must be served from %s", e.OGImage, SiteURL)
	}
	return nil
}

// validateGroup ensures every calculator is grouped
func validateGroup(e *Entry) error {
	if e.Kind == KindCalculator && e.Group == "" {
		return fmt.Errorf("calculator has no group")
	}
	return nil
}

// MustValidate panics if validation fails
func (c *Catalog) MustValidate() {
	errs := c.Validate(DefaultValidationRules())
	if len(errs) > 0 {
		for _, err := range errs {
			fmt.Printf("Catalog validation error: %v\n", err)
		}
		panic(fmt.Sprintf("Catalog has %d validation errors", len(errs)))
	}
}

// Default is the site catalog
var Default = NewDefault()

// NewDefault builds and validates the site catalog
func NewDefault() *Catalog {
	c := NewCatalog()
	RegisterInfoPages(c)
	RegisterCalculators(c)
	c.MustValidate()
	return c
}
