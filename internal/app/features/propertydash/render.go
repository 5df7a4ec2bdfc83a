// internal/app/features/propertydash/render.go
package propertydash

import (
	"embed"
	"html/template"
	"io"
	"net/url"
)

// Paths the rendered panel points HTMX at.
const (
	PanelPath   = "/dashboard/panel"
	RevenuePath = "/dashboard/revenue"
)

//go:embed panel/*.gohtml
var panelFS embed.FS

var panelTmpl = template.Must(template.ParseFS(panelFS, "panel/*.gohtml"))

// Render writes the panel for s. Output depends only on s.
func Render(w io.Writer, s State) error {
	return panelTmpl.ExecuteTemplate(w, "propertydash_panel", viewFor(s))
}

func viewFor(s State) panelVM {
	vm := panelVM{
		Branch:      s.Branch(),
		Err:         s.Err,
		Empty:       EmptyMessage,
		PanelURL:    PanelPath,
		RevenueBase: RevenuePath,
	}
	if vm.Branch != BranchPopulated {
		return vm
	}

	vm.Selected = s.Selected
	if s.Selected != "" {
		vm.RevenueURL = RevenuePath + "?" + url.Values{"property_id": {s.Selected}}.Encode()
	}
	vm.Options = make([]optionVM, len(s.Properties))
	for i, p := range s.Properties {
		vm.Options[i] = optionVM{ID: p.ID, Name: p.Name, Selected: p.ID == s.Selected}
	}
	return vm
}
