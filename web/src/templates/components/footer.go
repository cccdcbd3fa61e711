package components

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Footer renders the empty page footer.
func Footer() cmp.Node {
	return g.Footer(g.Class("site-footer"))
}
