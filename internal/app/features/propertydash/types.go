// internal/app/features/propertydash/types.go
package propertydash

import (
	"context"
	"errors"
	"html/template"

	"github.com/dalemusser/propertyhub/internal/app/secureapi"
	"github.com/dalemusser/propertyhub/internal/app/system/viewdata"
)

// Property is one selectable property.
type Property = secureapi.Property

// PropertySource lists the properties visible to the current user.
type PropertySource interface {
	GetProperties(ctx context.Context) ([]Property, error)
}

// ErrorMessage is shown for every property fetch failure.
const ErrorMessage = "Error loading properties"

// EmptyMessage is shown when the fetch succeeds with no properties.
const EmptyMessage = "No properties found for your account."

var (
	ErrAlreadyInitialized = errors.New("propertydash: already initialized")
	ErrClosed             = errors.New("propertydash: closed")
	ErrNotReady           = errors.New("propertydash: no properties loaded")
	ErrUnknownProperty    = errors.New("propertydash: unknown property")
)

// Branch names the view a State renders.
type Branch string

const (
	BranchLoading   Branch = "loading"
	BranchError     Branch = "error"
	BranchEmpty     Branch = "empty"
	BranchPopulated Branch = "populated"
)

// State is the dashboard's view state.
type State struct {
	Loading    bool
	Err        string
	Properties []Property
	Selected   string
}

// Branch reports which view s renders. Precedence is loading, error,
// empty, populated.
func (s State) Branch() Branch {
	switch {
	case s.Loading:
		return BranchLoading
	case s.Err != "":
		return BranchError
	case len(s.Properties) == 0:
		return BranchEmpty
	default:
		return BranchPopulated
	}
}

// panelVM is the data handed to the panel template.
type panelVM struct {
	Branch      Branch
	Err         string
	Empty       string
	PanelURL    string
	RevenueBase string
	RevenueURL  string
	Selected    string
	Options     []optionVM
}

type optionVM struct {
	ID       string
	Name     string
	Selected bool
}

// pageData is the view model for the full dashboard page.
type pageData struct {
	viewdata.BaseVM
	Panel template.HTML
}
