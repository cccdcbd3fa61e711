package reveal

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "bottom", cfg.Origin)
	assert.Equal(t, "20px", cfg.Distance)
	assert.Equal(t, 500*time.Millisecond, cfg.Duration)
	assert.Equal(t, 200*time.Millisecond, cfg.Delay)
	assert.Equal(t, 0.25, cfg.ViewFactor)
	assert.True(t, cfg.Mobile)
	assert.False(t, cfg.Reset)
}

func TestConfig_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Default(300*time.Millisecond, 0.5))
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(b, &wire))
	assert.EqualValues(t, 500, wire["duration"])
	assert.EqualValues(t, 300, wire["delay"])
	assert.EqualValues(t, 0.5, wire["viewFactor"])
	assert.Equal(t, "always", wire["useDelay"])
	assert.Equal(t, "cubic-bezier(0.645, 0.045, 0.355, 1)", wire["easing"])
	assert.Contains(t, wire, "viewOffset")
	assert.Contains(t, wire, "rotate")
}

func TestRegistry_Reveal(t *testing.T) {
	t.Run("unset ref is a no-op", func(t *testing.T) {
		r := NewRegistry()
		assert.NotPanics(t, func() { r.Reveal("", DefaultConfig()) })
		assert.Equal(t, 0, r.Len())
	})

	t.Run("each element registers once per mount", func(t *testing.T) {
		r := NewRegistry()
		r.Reveal("about", DefaultConfig())
		r.Reveal("about", Default(0, 1))
		r.Reveal("projects-heading", DefaultConfig())

		regs := r.Registrations()
		require.Len(t, regs, 2)
		assert.Equal(t, Ref("about"), regs[0].Ref)
		assert.Equal(t, DefaultDelay, regs[0].Config.Delay, "first registration wins")
		assert.Equal(t, Ref("projects-heading"), regs[1].Ref)
	})

	t.Run("a new registry is a new mount", func(t *testing.T) {
		first := NewRegistry()
		first.Reveal("about", DefaultConfig())
		second := NewRegistry()
		second.Reveal("about", DefaultConfig())
		assert.Equal(t, 1, first.Len())
		assert.Equal(t, 1, second.Len())
	})
}

func TestStaggered(t *testing.T) {
	r := NewRegistry()
	Staggered(r, []Ref{"project-0", "", "project-2", "project-3"})

	regs := r.Registrations()
	require.Len(t, regs, 3)
	assert.Equal(t, time.Duration(0), regs[0].Config.Delay)
	assert.Equal(t, 200*time.Millisecond, regs[1].Config.Delay, "unset refs keep their slot")
	assert.Equal(t, 300*time.Millisecond, regs[2].Config.Delay)

	for i := 1; i < len(regs); i++ {
		assert.Greater(t, regs[i].Config.Delay, regs[i-1].Config.Delay)
	}

	assert.NotPanics(t, func() { Staggered(nil, []Ref{"x"}) })
}

func TestRegistry_Script(t *testing.T) {
	t.Run("empty registry renders nothing", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewRegistry().Script().Render(&buf))
		assert.Empty(t, buf.String())
	})

	t.Run("emits one call per registration", func(t *testing.T) {
		r := NewRegistry()
		r.Reveal("about", DefaultConfig())
		r.Reveal("</script><b>", DefaultConfig())

		var buf bytes.Buffer
		require.NoError(t, r.Script().Render(&buf))
		out := buf.String()

		assert.Contains(t, out, "<script>")
		assert.Contains(t, out, `r("about",{"origin":"bottom"`)
		assert.NotContains(t, out, "</script><b>", "ids are escaped inside the script")
		assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("</script>")))
	})
}
