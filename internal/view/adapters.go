// Package view bridges the two component libraries used by the page tree:
// templ for the document head and gomponents for everything else.
package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	cmp "maragu.dev/gomponents"
)

// templNode lets a templ component sit inside a gomponents tree.
type templNode struct {
	ctx       context.Context
	component templ.Component
}

func (n templNode) Render(w io.Writer) error {
	return n.component.Render(n.ctx, w)
}

// AdaptTemplToGomponent wraps c as a gomponents node rendered with a background context.
func AdaptTemplToGomponent(c templ.Component) cmp.Node {
	return AdaptTemplToGomponentCtx(context.Background(), c)
}

// AdaptTemplToGomponentCtx is AdaptTemplToGomponent with an explicit context,
// which gomponents' Render signature cannot carry on its own.
func AdaptTemplToGomponentCtx(ctx context.Context, c templ.Component) cmp.Node {
	return templNode{ctx: ctx, component: c}
}

// AdaptGomponentToTempl wraps a gomponents node so templ layouts can render it.
func AdaptGomponentToTempl(n cmp.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return n.Render(w)
	})
}
