// internal/app/features/revenue/templates.go
package revenue

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "revenue",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
