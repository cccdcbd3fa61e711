package components

import (
	"github.com/divyank00/portfolio/internal/domain"
	"github.com/divyank00/portfolio/internal/reveal"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// AboutRef is the DOM id of the About section.
const AboutRef reveal.Ref = "about"

// Skills is the fixed list shown under the biography, in display order.
var Skills = []string{
	"Android Development (Java/Kotlin)",
	"Flutter Development",
	"React Native",
	"Problem Solving",
	"NodeJS",
	"Express",
	"Firebase",
	"MongoDB",
	"MySQL",
	"Git",
}

// AboutProps are the data the About section reads.
type AboutProps struct {
	// Avatar is the profile picture; nil renders the section without one.
	Avatar *domain.Image
	// LinkedIn is where the avatar links to.
	LinkedIn string
}

// About renders the biography section and registers it for reveal.
func About(props AboutProps, ctrl reveal.Controller) cmp.Node {
	if ctrl != nil {
		ctrl.Reveal(AboutRef, reveal.DefaultConfig())
	}

	return g.Section(
		g.ID(string(AboutRef)),
		g.Class("about-section"),
		g.H2(g.Class("numbered-heading"), cmp.Text("About Me")),
		g.Div(
			g.Class("inner"),
			g.Div(
				g.Class("about-text"),
				g.Div(
					g.P(cmp.Text("Hello! I'm Divyank Lunkad, a third-year student with keen interest in Data Structures and Algorithms.")),
					g.P(
						cmp.Text("I am pursuing my Bachelors from "),
						g.A(g.Href("https://pict.edu/"), cmp.Text("PICT, Pune")),
						cmp.Text(" in Computer Science (2018-2022) with Cumulative GPA of 9.34/10."),
					),
					g.P(cmp.Text("Here are a few technologies I've been working with recently:")),
				),
				SkillsList(),
			),
			avatar(props),
		),
	)
}

// SkillsList renders Skills. It takes no input, so the output never varies.
func SkillsList() cmp.Node {
	return g.Ul(
		g.Class("skills-list"),
		cmp.Map(Skills, func(skill string) cmp.Node {
			return g.Li(cmp.Text(skill))
		}),
	)
}

func avatar(props AboutProps) cmp.Node {
	if props.Avatar == nil {
		return nil
	}
	return g.Div(
		g.Class("about-pic"),
		g.A(
			g.Class("avatar-link"),
			cmp.If(props.LinkedIn != "", g.Href(props.LinkedIn)),
			g.Img(
				g.Class("avatar"),
				g.Src(props.Avatar.Src),
				g.Alt(props.Avatar.Alt),
				cmp.Attr("loading", "lazy"),
			),
		),
	)
}
