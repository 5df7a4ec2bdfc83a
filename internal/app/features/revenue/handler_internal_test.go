package revenue

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dalemusser/propertyhub/internal/app/secureapi"
)

func TestBuildView(t *testing.T) {
	tests := []struct {
		name string
		s    secureapi.RevenueSummary
		err  error
		want summaryVM
	}{
		{
			name: "success",
			s:    secureapi.RevenueSummary{PropertyID: "p1", TotalRevenue: 1583.333, Currency: "EUR", ReservationsCount: 2},
			want: summaryVM{PropertyID: "p1", Total: "1,583.33", Currency: "EUR", Reservations: "2 reservations"},
		},
		{
			name: "single reservation",
			s:    secureapi.RevenueSummary{PropertyID: "p1", TotalRevenue: 10, Currency: "USD", ReservationsCount: 1},
			want: summaryVM{PropertyID: "p1", Total: "10.00", Currency: "USD", Reservations: "1 reservation"},
		},
		{
			name: "not found",
			err:  fmt.Errorf("%w: p1", secureapi.ErrPropertyNotFound),
			want: summaryVM{PropertyID: "p1", Error: msgNotFound},
		},
		{
			name: "other failure",
			err:  errors.New("timeout"),
			want: summaryVM{PropertyID: "p1", Error: msgFailed},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildView("p1", tt.s, tt.err)
			if got != tt.want {
				t.Errorf("buildView = %+v, want %+v", got, tt.want)
			}
		})
	}
}
