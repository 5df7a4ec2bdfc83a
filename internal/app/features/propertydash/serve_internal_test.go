package propertydash

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestWritePanel_ErrorStateIsSwappable(t *testing.T) {
	h := &Handler{Log: zap.NewNop()}

	rec := httptest.NewRecorder()
	h.writePanel(rec, State{Err: ErrorMessage})

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, ErrorMessage) || !strings.Contains(body, `id="property-dashboard"`) {
		t.Errorf("error panel missing: %q", body)
	}
	if strings.Contains(body, "Loading properties") {
		t.Error("error panel must replace the loading view")
	}
}

func TestWritePanel_TemplateFailureFallsBack(t *testing.T) {
	orig := panelTmpl
	panelTmpl = template.Must(template.New("broken").Parse(`{{define "propertydash_panel"}}{{.NoSuchField}}{{end}}`))
	t.Cleanup(func() { panelTmpl = orig })

	h := &Handler{Log: zap.NewNop()}
	rec := httptest.NewRecorder()
	h.writePanel(rec, State{Properties: []Property{{ID: "p1", Name: "A"}}, Selected: "p1"})

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != failedPanel {
		t.Errorf("body = %q, want fallback panel", rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
}
