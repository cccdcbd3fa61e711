package components

import (
	"fmt"

	"github.com/divyank00/portfolio/internal/domain"
	"github.com/divyank00/portfolio/internal/reveal"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// FeaturedHeadingRef is the DOM id of the Featured section heading.
const FeaturedHeadingRef reveal.Ref = "projects-heading"

const externalRel = "nofollow noopener noreferrer"

// ProjectRef is the DOM id of the i-th rendered project block.
func ProjectRef(i int) reveal.Ref {
	return reveal.Ref(fmt.Sprintf("project-%d", i))
}

// VisibleProjects drops nil records and keeps the rest in order.
func VisibleProjects(projects []*domain.Project) []*domain.Project {
	out := make([]*domain.Project, 0, len(projects))
	for _, p := range projects {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

// Featured renders one block per non-nil project, newest first as given.
// The heading and every block are registered for reveal; blocks are
// staggered so they animate in sequence.
func Featured(projects []*domain.Project, ctrl reveal.Controller) cmp.Node {
	if ctrl == nil {
		ctrl = reveal.Discard
	}
	visible := VisibleProjects(projects)

	ctrl.Reveal(FeaturedHeadingRef, reveal.DefaultConfig())

	refs := make([]reveal.Ref, len(visible))
	blocks := make([]cmp.Node, len(visible))
	for i, p := range visible {
		refs[i] = ProjectRef(i)
		blocks[i] = ProjectBlock(p, refs[i])
	}
	reveal.Staggered(ctrl, refs)

	return g.Section(
		g.ID("projects"),
		g.H2(
			g.ID(string(FeaturedHeadingRef)),
			g.Class("numbered-heading"),
			cmp.Text("Some Things I’ve Built"),
		),
		g.Div(cmp.Group(blocks)),
	)
}

// ProjectBlock renders a single project.
func ProjectBlock(p *domain.Project, ref reveal.Ref) cmp.Node {
	return g.Div(
		cmp.If(ref != "", g.ID(string(ref))),
		g.Class("featured-project"),
		g.Div(
			g.Class("project-content"),
			g.H4(g.Class("project-overline"), cmp.Text("Featured Project")),
			g.H5(g.Class("project-title"), projectTitle(p)),
			g.Div(g.Class("project-description"), cmp.Raw(string(p.Description))),
			techList(p.Tech),
			g.Div(
				g.Class("project-links"),
				cmp.If(p.HasGitHub(), iconLink(p.GitHub, "GitHub Link", GitHubIcon())),
				cmp.If(p.HasExternal(), iconLink(p.External, "External Link", ExternalIcon())),
			),
		),
		g.A(
			g.Class("project-image"),
			g.Href(p.CoverLink()),
			g.Target("_blank"),
			g.Rel(externalRel),
			cmp.Iff(p.Cover != nil, func() cmp.Node {
				return g.Img(g.Class("project-cover"), g.Src(p.Cover.Src), g.Alt(p.Title), cmp.Attr("loading", "lazy"))
			}),
		),
	)
}

// projectTitle links the title to the live site when there is one.
func projectTitle(p *domain.Project) cmp.Node {
	if !p.HasExternal() {
		return cmp.Text(p.Title)
	}
	return g.A(g.Href(p.External), g.Target("_blank"), g.Rel(externalRel), cmp.Text(p.Title))
}

func techList(tech []string) cmp.Node {
	if len(tech) == 0 {
		return nil
	}
	return g.Ul(
		g.Class("project-tech-list"),
		cmp.Map(tech, func(t string) cmp.Node { return g.Li(cmp.Text(t)) }),
	)
}

func iconLink(href, label string, icon cmp.Node) cmp.Node {
	return g.A(
		g.Class("icon-link"),
		g.Href(href),
		g.Target("_blank"),
		g.Rel(externalRel),
		g.Aria("label", label),
		icon,
	)
}
