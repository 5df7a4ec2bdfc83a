// internal/app/features/propertydash/templates.go
package propertydash

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "propertydash",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
