// Package site generates per-route HTML pages with SEO metadata from the
// built single-page template.
package site

import (
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"calk-kg/core/catalog"
	"calk-kg/internal/errors"
	"calk-kg/internal/logging"
)

var (
	titleRe       = regexp.MustCompile(`<title>.*?</title>`)
	descriptionRe = regexp.MustCompile(`<meta name="description" content=".*?".*?/>`)
)

// Options configures a generation run
type Options struct {
	// DistDir holds index.html and receives the generated tree
	DistDir string

	// BaseURL prefixes og:url and the canonical link
	BaseURL string

	// Locale is written to og:locale
	Locale string
}

// Generator writes one index.html per route
type Generator struct {
	opts   Options
	routes []catalog.Entry
	out    io.Writer
}

// NewGenerator creates a generator for routes. Progress lines go to out.
func NewGenerator(opts Options, routes []catalog.Entry, out io.Writer) *Generator {
	if opts.BaseURL == "" {
		opts.BaseURL = catalog.SiteURL
	}
	if opts.Locale == "" {
		opts.Locale = "ru_RU"
	}
	if out == nil {
		out = io.Discard
	}
	return &Generator{opts: opts, routes: routes, out: out}
}

// TemplatePath is the built page every route starts from
func (g *Generator) TemplatePath() string {
	return filepath.Join(g.opts.DistDir, "index.html")
}

// Generate renders every route and returns the number of files written.
// A missing template is a NOT_FOUND error.
func (g *Generator) Generate() (int, error) {
	tmpl, err := os.ReadFile(g.TemplatePath())
	if err != nil {
		if os.IsNotExist(err) {
			return 0, errors.NotFound("template", g.TemplatePath())
		}
		return 0, errors.Wrap(errors.TypeInternal, "read template", err)
	}

	fmt.Fprintln(g.out, "Generating static HTML files...")
	fmt.Fprintln(g.out)

	written := 0
	for _, route := range g.routes {
		page := Render(string(tmpl), route, g.opts)
		target, display := g.target(route.Path)

		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return written, errors.Wrap(errors.TypeInternal, "create route directory", err)
		}
		if err := os.WriteFile(target, []byte(page), 0644); err != nil {
			return written, errors.Wrap(errors.TypeInternal, "write page", err)
		}
		written++

		fmt.Fprintf(g.out, "  %s -> %s\n", route.Path, display)
		logging.Debug("page generated", zap.String("path", route.Path), zap.String("file", target))
	}

	fmt.Fprintln(g.out)
	fmt.Fprintf(g.out, "Generated %d static HTML files.\n", written)
	return written, nil
}

// target returns the file for a route and its name relative to dist
func (g *Generator) target(path string) (string, string) {
	dist := filepath.Base(g.opts.DistDir)
	if path == "/" {
		return filepath.Join(g.opts.DistDir, "index.html"), dist + "/index.html"
	}
	rel := strings.TrimPrefix(path, "/")
	return filepath.Join(g.opts.DistDir, filepath.FromSlash(rel), "index.html"), dist + path + "/index.html"
}

// Render rewrites the title and description of tmpl and injects the
// Open Graph, Twitter and canonical tags before </head>. Only the first
// match of each is replaced.
func Render(tmpl string, route catalog.Entry, opts Options) string {
	if opts.BaseURL == "" {
		opts.BaseURL = catalog.SiteURL
	}
	if opts.Locale == "" {
		opts.Locale = "ru_RU"
	}

	title := html.EscapeString(route.Title)
	desc := html.EscapeString(route.Description)
	url := route.URL(opts.BaseURL)

	page := replaceFirst(titleRe, tmpl, "<title>"+title+"</title>")
	page = replaceFirst(descriptionRe, page, `<meta name="description" content="`+desc+`" />`)

	tags := []string{
		meta("property", "og:title", title),
		meta("property", "og:description", desc),
		meta("property", "og:url", url),
		meta("property", "og:type", "website"),
		meta("property", "og:image", route.OGImage),
		meta("property", "og:image:width", "1200"),
		meta("property", "og:image:height", "630"),
		meta("property", "og:locale", opts.Locale),
		meta("name", "twitter:card", "summary_large_image"),
		meta("name", "twitter:title", title),
		meta("name", "twitter:description", desc),
		meta("name", "twitter:image", route.OGImage),
		`<link rel="canonical" href="` + url + `" />`,
	}

	var b strings.Builder
	for _, t := range tags {
		b.WriteString("\n    ")
		b.WriteString(t)
	}
	b.WriteString("\n  </head>")

	return strings.Replace(page, "</head>", b.String(), 1)
}

func meta(attr, key, content string) string {
	return fmt.Sprintf(`<meta %s="%s" content="%s" />`, attr, key, content)
}

func replaceFirst(re *regexp.Regexp, s, repl string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + repl + s[loc[1]:]
}
