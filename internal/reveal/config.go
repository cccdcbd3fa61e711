// Package reveal registers rendered elements for scroll-triggered reveal
// animations and emits the browser bootstrap that hands them to ScrollReveal.
//
// Components receive a Controller explicitly; there is no shared instance.
// A Registry lives for exactly one render (one "mount") of a page.
package reveal

import (
	"encoding/json"
	"time"
)

const (
	// DefaultDelay and DefaultViewFactor match the site-wide animation config.
	DefaultDelay      = 200 * time.Millisecond
	DefaultViewFactor = 0.25

	// StaggerStep is the extra delay given to each successive element of a list.
	StaggerStep = 100 * time.Millisecond
)

// Rotate is the starting rotation, in degrees, per axis.
type Rotate struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Offset shrinks the viewport used to decide visibility, in pixels.
type Offset struct {
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
}

// Config describes one reveal animation. Durations are emitted as
// milliseconds, which is what the browser library expects.
type Config struct {
	Origin     string
	Distance   string
	Duration   time.Duration
	Delay      time.Duration
	Rotate     Rotate
	Opacity    float64
	Scale      float64
	Easing     string
	Mobile     bool
	Reset      bool
	UseDelay   string
	ViewFactor float64
	ViewOffset Offset
}

// Default returns the site animation: a 20px slide up from the bottom edge.
func Default(delay time.Duration, viewFactor float64) Config {
	return Config{
		Origin:     "bottom",
		Distance:   "20px",
		Duration:   500 * time.Millisecond,
		Delay:      delay,
		Opacity:    0,
		Scale:      1,
		Easing:     "cubic-bezier(0.645, 0.045, 0.355, 1)",
		Mobile:     true,
		Reset:      false,
		UseDelay:   "always",
		ViewFactor: viewFactor,
	}
}

// DefaultConfig is Default with the default delay and view factor.
func DefaultConfig() Config {
	return Default(DefaultDelay, DefaultViewFactor)
}

type wireConfig struct {
	Origin     string  `json:"origin"`
	Distance   string  `json:"distance"`
	Duration   int64   `json:"duration"`
	Delay      int64   `json:"delay"`
	Rotate     Rotate  `json:"rotate"`
	Opacity    float64 `json:"opacity"`
	Scale      float64 `json:"scale"`
	Easing     string  `json:"easing"`
	Mobile     bool    `json:"mobile"`
	Reset      bool    `json:"reset"`
	UseDelay   string  `json:"useDelay"`
	ViewFactor float64 `json:"viewFactor"`
	ViewOffset Offset  `json:"viewOffset"`
}

// MarshalJSON encodes the config in the shape ScrollReveal accepts.
func (c Config) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireConfig{
		Origin:     c.Origin,
		Distance:   c.Distance,
		Duration:   c.Duration.Milliseconds(),
		Delay:      c.Delay.Milliseconds(),
		Rotate:     c.Rotate,
		Opacity:    c.Opacity,
		Scale:      c.Scale,
		Easing:     c.Easing,
		Mobile:     c.Mobile,
		Reset:      c.Reset,
		UseDelay:   c.UseDelay,
		ViewFactor: c.ViewFactor,
		ViewOffset: c.ViewOffset,
	})
}
