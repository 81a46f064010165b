package utils

import "testing"

func f(v float64) *float64 { return &v }

func TestDeriveTotals(t *testing.T) {
	tests := []struct {
		name       string
		price      float64
		vat        *float64
		wantVat    float64
		wantTotal  float64
		wantOK     bool
	}{
		{
			name:      "standard 15 percent",
			price:     100,
			vat:       f(15),
			wantVat:   15.00,
			wantTotal: 115.00,
			wantOK:    true,
		},
		{
			name:      "zero price",
			price:     0,
			vat:       f(15),
			wantVat:   0.00,
			wantTotal: 0.00,
			wantOK:    true,
		},
		{
			name:   "missing vat percentage short-circuits",
			price:  100,
			vat:    nil,
			wantOK: false,
		},
		{
			name:      "fractional rounding",
			price:     33.33,
			vat:       f(10),
			wantVat:   3.33,
			wantTotal: 36.66,
			wantOK:    true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			vat, total, ok := DeriveTotals(tc.price, tc.vat)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if !ok {
				return
			}
			if vat != tc.wantVat || total != tc.wantTotal {
				t.Fatalf("DeriveTotals(%v, %v) = (%v, %v), want (%v, %v)",
					tc.price, *tc.vat, vat, total, tc.wantVat, tc.wantTotal)
			}
		})
	}
}

// Each output rounds independently; the sum of rounded parts is allowed to
// drift from the rounded total by one cent.
func TestDeriveTotalsIndependentRounding(t *testing.T) {
	vat, total, ok := DeriveTotals(33.33, f(10))
	if !ok {
		t.Fatal("expected ok")
	}
	if diff := Round2(33.33 + vat - total); diff != 0 && diff != 0.01 && diff != -0.01 {
		t.Fatalf("unexpected rounding drift: %v", diff)
	}
}
