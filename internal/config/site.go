package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var defaultSiteYAML []byte

var siteValidator = validator.New()

// Site is the static site configuration consumed read-only by the page components.
type Site struct {
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description"`
	Keywords    string `yaml:"keywords"`
	URL         string `yaml:"url" validate:"required,url"`
	Language    string `yaml:"language" validate:"required"`
	Name        string `yaml:"name" validate:"required"`
	Location    string `yaml:"location"`
	Email       string `yaml:"email" validate:"omitempty,email"`
	Phone       string `yaml:"phone"`
	SocialMedia []Link `yaml:"social_media" validate:"dive"`
	NavLinks    []Link `yaml:"nav_links" validate:"dive"`
	Colors      Colors `yaml:"colors"`
}

// Link is a named URL used for social profiles and navigation entries.
type Link struct {
	Name string `yaml:"name" validate:"required"`
	URL  string `yaml:"url" validate:"required"`
}

// Colors are the theme tokens exposed to the stylesheet as CSS variables.
type Colors struct {
	Green    string `yaml:"green" validate:"omitempty,hexcolor"`
	Navy     string `yaml:"navy" validate:"omitempty,hexcolor"`
	DarkNavy string `yaml:"dark_navy" validate:"omitempty,hexcolor"`
}

// LoadSite reads the site configuration from path, or the embedded default when path is empty.
func LoadSite(path string) (*Site, error) {
	data := defaultSiteYAML
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading site config %s: %w", path, err)
		}
		data = b
	}
	return ParseSite(data)
}

// ParseSite decodes and validates a YAML site configuration.
func ParseSite(data []byte) (*Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("decoding site config: %w", err)
	}
	if err := siteValidator.Struct(&site); err != nil {
		return nil, fmt.Errorf("invalid site config: %w", err)
	}
	return &site, nil
}

// Social returns the URL of the social profile with the given name, ignoring case.
func (s *Site) Social(name string) string {
	for _, l := range s.SocialMedia {
		if strings.EqualFold(l.Name, name) {
			return l.URL
		}
	}
	return ""
}

// LinkedIn is the profile the About avatar links to.
func (s *Site) LinkedIn() string {
	return s.Social("linkedin")
}
