package pages

import (
	"github.com/divyank00/portfolio/internal/config"
	"github.com/divyank00/portfolio/internal/content"
	"github.com/divyank00/portfolio/internal/reveal"
	"github.com/divyank00/portfolio/web/src/templates/components"
	"github.com/divyank00/portfolio/web/src/templates/layouts"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// HomeData is everything the home page reads.
type HomeData struct {
	Site    *config.Site
	Content content.Snapshot
}

// Home builds the full home page from a content snapshot. It is a pure
// function of its inputs apart from the registrations it records in reg,
// which must be a fresh registry for every render. A nil reg renders the
// page without reveal animations.
func Home(data HomeData, reg *reveal.Registry) cmp.Node {
	var ctrl reveal.Controller = reveal.Discard
	if reg != nil {
		ctrl = reg
	}

	about := components.About(components.AboutProps{
		Avatar:   data.Content.Avatar,
		LinkedIn: data.Site.LinkedIn(),
	}, ctrl)
	featured := components.Featured(data.Content.Projects, ctrl)

	return layouts.Base(layouts.Page{
		Site:   data.Site,
		Reveal: reg,
		Body: []cmp.Node{
			g.Main(g.ID("content"), about, featured),
			components.Footer(),
		},
	})
}
