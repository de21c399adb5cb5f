package catalog

import (
	"strings"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	stats := Default.Stats()
	if stats.Info != 7 {
		t.Errorf("expected 7 info pages, got %d", stats.Info)
	}
	if stats.Calculators != 29 {
		t.Errorf("expected 29 calculators, got %d", stats.Calculators)
	}
	if stats.Prerendered != 33 {
		t.Errorf("expected 33 prerendered pages, got %d", stats.Prerendered)
	}
	if errs := Default.Validate(DefaultValidationRules()); len(errs) > 0 {
		t.Errorf("unexpected validation errors: %v", errs)
	}
}

func TestRoutesOrder(t *testing.T) {
	routes := Default.Routes()
	if routes[0].Path != "/" {
		t.Fatalf("root must be generated first, got %s", routes[0].Path)
	}
	if routes[7].Path != "/calculator/salary" {
		t.Errorf("expected salary after the info pages, got %s", routes[7].Path)
	}
	if last := routes[len(routes)-1]; last.Slug != "calorie" {
		t.Errorf("expected calorie last, got %s", last.Slug)
	}
	for _, r := range routes {
		if r.Slug == "currency-exchange" {
			t.Error("live-rate pages must not be prerendered")
		}
	}
}

func TestEntryURL(t *testing.T) {
	home, _ := Default.Get("home")
	if got := home.URL(SiteURL); got != "https://calk.kg" {
		t.Errorf("expected bare origin for root, got %s", got)
	}
	salary, _ := Default.GetByPath("/calculator/salary")
	if got := salary.URL(SiteURL); got != "https://calk.kg/calculator/salary" {
		t.Errorf("unexpected url %s", got)
	}
	if salary.OGImage != "https://calk.kg/og-images/salary.svg" {
		t.Errorf("unexpected og image %s", salary.OGImage)
	}
	if !strings.Contains(salary.Title, "на руки") {
		t.Errorf("unexpected title %s", salary.Title)
	}
}

func TestListByGroup(t *testing.T) {
	got := Default.ListByGroup(GroupLending)
	want := []string{"auto-loan", "deposit", "loan", "mortgage"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestValidateRejectsBadEntries(t *testing.T) {
	c := NewCatalog()
	c.Register(Entry{Slug: "a", Path: "/calculator/a", Kind: KindCalculator, Group: GroupTaxes})
	c.Register(Entry{Slug: "b", Path: "calculator/b", Kind: KindCalculator})
	c.Register(Entry{Slug: "c", Path: "/calculator/a", Kind: KindCalculator, Group: GroupTaxes})
	c.Register(Entry{Slug: "d", Path: "/d", Kind: KindInfo, Prerender: true, Title: "D", Description: "d", OGImage: "http://example.com/d.svg"})

	errs := c.Validate(DefaultValidationRules())
	// b: relative path and no group; c: duplicate path; d: foreign image
	if len(errs) != 4 {
		t.Errorf("expected 4 errors, got %d: %v", len(errs), errs)
	}
}
