package layouts

import (
	"github.com/divyank00/portfolio/internal/config"
	"github.com/divyank00/portfolio/internal/reveal"
	"github.com/divyank00/portfolio/internal/view"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// StylesheetPath is where the embedded stylesheet is served.
const StylesheetPath = "/static/css/site.css"

// Page describes one full document.
type Page struct {
	Site  *config.Site
	Title string
	// Reveal holds the registrations made while building Body. Nil renders no bootstrap.
	Reveal *reveal.Registry
	Body   []cmp.Node
}

// Base wraps the page body in the document shell: head metadata, navigation,
// the ScrollReveal library and the reveal bootstrap.
func Base(p Page) cmp.Node {
	site := p.Site
	return g.Doctype(
		g.HTML(
			g.Lang(LanguageTag(site.Language)),
			g.Head(
				view.AdaptTemplToGomponent(Meta(MetaProps{
					Title:       CalculateTitle(site.Title, p.Title),
					Description: site.Description,
					Keywords:    site.Keywords,
					URL:         site.URL,
					ThemeColor:  site.Colors.Navy,
				})),
				g.Link(g.Rel("stylesheet"), g.Href(StylesheetPath)),
				g.StyleEl(cmp.Raw(themeStyle(site.Colors))),
			),
			g.Body(
				Nav(site),
				cmp.Group(p.Body),
				cmp.If(p.Reveal != nil, g.Script(g.Src(reveal.LibraryURL))),
				cmp.Iff(p.Reveal != nil, func() cmp.Node { return p.Reveal.Script() }),
			),
		),
	)
}

// Nav renders the site header with the configured navigation entries.
func Nav(site *config.Site) cmp.Node {
	return g.Header(
		g.Class("site-header"),
		g.Nav(
			g.A(g.Class("logo"), g.Href("/"), g.Aria("label", "home"), cmp.Text(site.Name)),
			g.Ol(
				g.Class("nav-links"),
				cmp.Map(site.NavLinks, func(l config.Link) cmp.Node {
					return g.Li(g.A(g.Href(l.URL), cmp.Text(l.Name)))
				}),
			),
		),
	)
}
