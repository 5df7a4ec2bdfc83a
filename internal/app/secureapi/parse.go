package secureapi

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/dalemusser/propertyhub/internal/app/system/htmlsanitize"
	"github.com/go-playground/validator/v10"
)

// Property is one record of the property list.
type Property struct {
	ID       string `json:"id" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Timezone string `json:"timezone,omitempty"`
}

// RevenueSummary is the revenue total for one property.
type RevenueSummary struct {
	PropertyID        string  `json:"property_id" validate:"required"`
	TotalRevenue      float64 `json:"total_revenue"`
	Currency          string  `json:"currency"`
	ReservationsCount int64   `json:"reservations_count" validate:"gte=0"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ParseListResponse reads a {"data": [...], "total": n} body.
//
// A missing or null data field is an empty list. Any other shape
// mismatch is ErrMalformedResponse. The returned slice is never nil.
func ParseListResponse(body []byte) ([]Property, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if envelope == nil {
		// body was the literal null
		return nil, fmt.Errorf("%w: body is not an object", ErrMalformedResponse)
	}

	raw, ok := envelope["data"]
	if !ok || isNull(raw) {
		return []Property{}, nil
	}
	if t := bytes.TrimSpace(raw); len(t) == 0 || t[0] != '[' {
		return nil, fmt.Errorf("%w: data is not an array", ErrMalformedResponse)
	}

	var records []Property
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	out := make([]Property, 0, len(records))
	for i, p := range records {
		p.Name = htmlsanitize.PlainText(p.Name)
		if err := validate.Struct(p); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrMalformedResponse, i, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// ParseRevenueSummary reads a revenue summary body.
func ParseRevenueSummary(body []byte) (RevenueSummary, error) {
	var s RevenueSummary
	if err := json.Unmarshal(body, &s); err != nil {
		return RevenueSummary{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if err := validate.Struct(s); err != nil {
		return RevenueSummary{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return s, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// detail pulls the "detail" message out of an error body, if any.
func detail(body []byte) string {
	var e struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(body, &e) != nil {
		return ""
	}
	return e.Detail
}
