package layouts

import (
	"github.com/a-h/templ"
	"github.com/divyank00/portfolio/internal/view"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// MetaProps are the values written into the document head.
type MetaProps struct {
	Title       string
	Description string
	Keywords    string
	URL         string
	ThemeColor  string
}

// Meta renders the head metadata: charset, viewport, title, description,
// keywords, canonical link and Open Graph tags. Empty values are skipped.
// It is exposed as a templ component so templ layouts can embed it as well.
func Meta(p MetaProps) templ.Component {
	return view.AdaptGomponentToTempl(MetaNodes(p))
}

// MetaNodes is Meta as a gomponents group.
func MetaNodes(p MetaProps) cmp.Node {
	nodes := []cmp.Node{
		g.Meta(g.Charset("utf-8")),
		g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
		g.TitleEl(cmp.Text(p.Title)),
		namedMeta("description", p.Description),
		namedMeta("keywords", p.Keywords),
		namedMeta("theme-color", p.ThemeColor),
		propertyMeta("og:title", p.Title),
		propertyMeta("og:description", p.Description),
		propertyMeta("og:url", p.URL),
		propertyMeta("og:type", "website"),
	}
	if p.URL != "" {
		nodes = append(nodes, g.Link(g.Rel("canonical"), g.Href(p.URL)))
	}

	// Skipped tags are nil and a group renders its children unchecked.
	present := nodes[:0]
	for _, n := range nodes {
		if n != nil {
			present = append(present, n)
		}
	}
	return cmp.Group(present)
}

func namedMeta(name, content string) cmp.Node {
	if content == "" {
		return nil
	}
	return g.Meta(g.Name(name), g.Content(content))
}

func propertyMeta(property, content string) cmp.Node {
	if content == "" {
		return nil
	}
	return g.Meta(cmp.Attr("property", property), g.Content(content))
}
