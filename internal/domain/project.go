package domain

import (
	"fmt"
	"html/template"
	"time"

	"github.com/go-playground/validator/v10"
)

// validatorInstance is a package-level validator instance.
// A single instance caches struct information across calls.
var validatorInstance = validator.New()

// Image is an opaque reference to an image asset served by the content handler.
type Image struct {
	Src string `json:"src" validate:"required"`
	Alt string `json:"alt"`
}

// Project is a featured portfolio project produced once by the content loader.
// Values are read-only after loading.
type Project struct {
	Slug        string        `json:"slug"`
	Title       string        `json:"title" validate:"required"`
	Date        time.Time     `json:"date"`
	Description template.HTML `json:"description"`
	Tech        []string      `json:"tech"`
	GitHub      string        `json:"github,omitempty" validate:"omitempty,url"`
	External    string        `json:"external,omitempty" validate:"omitempty,url"`
	Cover       *Image        `json:"cover,omitempty" validate:"omitempty"`
}

// Validate runs the struct tag checks and wraps failures in ErrInvalidProject.
func (p *Project) Validate() error {
	if err := validatorInstance.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProject, err)
	}
	return nil
}

// HasGitHub reports whether the project links to a repository.
func (p *Project) HasGitHub() bool { return p.GitHub != "" }

// HasExternal reports whether the project links to a live site.
func (p *Project) HasExternal() bool { return p.External != "" }

// CoverLink is the target of the cover image: the external URL, else GitHub, else "#".
func (p *Project) CoverLink() string {
	switch {
	case p.HasExternal():
		return p.External
	case p.HasGitHub():
		return p.GitHub
	default:
		return "#"
	}
}
