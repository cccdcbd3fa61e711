package reveal

import (
	"encoding/json"
	"io"
	"strings"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// LibraryURL is the browser build of ScrollReveal the page loads.
const LibraryURL = "https://unpkg.com/scrollreveal@4.0.9/dist/scrollreveal.min.js"

const scriptPrelude = `(function(){if(!window.ScrollReveal){return;}var sr=window.ScrollReveal();` +
	`var r=function(id,c){var el=document.getElementById(id);if(el){sr.reveal(el,c);}};`

// Script renders the bootstrap that replays the registrations in the browser
// after first paint. The registrations are read when the node is rendered, not
// when it is built, so components placed before it in the tree are included.
// An empty registry renders nothing.
func (r *Registry) Script() cmp.Node {
	return cmp.NodeFunc(func(w io.Writer) error {
		js := r.JS()
		if js == "" {
			return nil
		}
		return g.Script(cmp.Raw(js)).Render(w)
	})
}

// JS returns the bootstrap source, or "" when nothing is registered.
// encoding/json escapes <, > and & so the output is safe inside a script element.
func (r *Registry) JS() string {
	regs := r.Registrations()
	if len(regs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(scriptPrelude)
	for _, reg := range regs {
		id, err := json.Marshal(string(reg.Ref))
		if err != nil {
			continue
		}
		cfg, err := json.Marshal(reg.Config)
		if err != nil {
			continue
		}
		b.WriteString("r(")
		b.Write(id)
		b.WriteByte(',')
		b.Write(cfg)
		b.WriteString(");")
	}
	b.WriteString("})();")
	return b.String()
}
