package testutil

import (
	shared "github.com/dalemusser/propertyhub/internal/app/features/shared/views"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// BootTemplates compiles every template set registered by the packages the
// test binary imports and installs the engine, the way BuildHandler does.
// Call it from TestMain.
func BootTemplates() error {
	shared.LoadSharedTemplates()
	eng := templates.New(false)
	if err := eng.Boot(zap.NewNop()); err != nil {
		return err
	}
	templates.UseEngine(eng, zap.NewNop())
	return nil
}
