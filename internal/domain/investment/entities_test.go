package investment

import (
	"testing"
	"time"

	"immofund-backend/internal/domain/project"
)

func TestStamp_CopiesTermsAndComputesMaturity(t *testing.T) {
	p := &project.Project{
		ProjectID:      "pppppppppppppppppppppppppppppppp",
		PromoterID:     "mmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmm",
		YieldRate:      8.5,
		DurationMonths: 18,
	}
	at := time.Date(2025, 1, 31, 12, 0, 0, 0, time.UTC)

	inv := Stamp(p, "iiiiiiiiiiiiiiiiiiiiiiiiiiiiiiii", 10_000, at)

	if inv.YieldRate != 8.5 || inv.DurationMonths != 18 {
		t.Fatalf("terms not stamped: %+v", inv)
	}
	if inv.PromoterID != p.PromoterID || inv.ProjectID != p.ProjectID {
		t.Fatalf("references not stamped: %+v", inv)
	}
	if want := at.AddDate(0, 18, 0); !inv.MaturityDate.Equal(want) {
		t.Fatalf("maturity = %s, want %s", inv.MaturityDate, want)
	}
	if inv.ExpectedYield != 850 {
		t.Fatalf("expected yield = %v, want 850", inv.ExpectedYield)
	}
	if inv.Status != StatusActive {
		t.Fatalf("status = %s", inv.Status)
	}

	// later changes to the project must not leak into the stamped record
	p.YieldRate = 12
	p.DurationMonths = 6
	if inv.YieldRate != 8.5 || inv.DurationMonths != 18 {
		t.Fatalf("stamped terms changed with project: %+v", inv)
	}
}

func TestExpectedYield_RoundsToCents(t *testing.T) {
	tests := []struct {
		amount, rate, want float64
	}{
		{1000, 7, 70},
		{333.33, 3.3, 11},
		{0.1, 10, 0.01},
		{12345.67, 0, 0},
	}
	for _, tt := range tests {
		if got := ExpectedYield(tt.amount, tt.rate); got != tt.want {
			t.Errorf("ExpectedYield(%v, %v) = %v, want %v", tt.amount, tt.rate, got, tt.want)
		}
	}
}
