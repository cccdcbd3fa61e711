package layouts

import (
	"fmt"
	"strings"

	"github.com/divyank00/portfolio/internal/config"
	"golang.org/x/text/language"
)

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(siteTitle, title string) string {
	if title != "" {
		return title + " | " + siteTitle
	}
	return siteTitle
}

// LanguageTag converts the configured locale (e.g. "en_US") into a BCP 47
// tag for the html lang attribute. Unparseable values fall back to "en".
func LanguageTag(locale string) string {
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
	if err != nil {
		return language.English.String()
	}
	return tag.String()
}

// themeStyle exposes the configured theme colors as CSS custom properties.
func themeStyle(c config.Colors) string {
	var b strings.Builder
	b.WriteString(":root{")
	for _, v := range [][2]string{
		{"--green", c.Green},
		{"--navy", c.Navy},
		{"--dark-navy", c.DarkNavy},
	} {
		if v[1] != "" {
			fmt.Fprintf(&b, "%s:%s;", v[0], v[1])
		}
	}
	b.WriteString("}")
	return b.String()
}
