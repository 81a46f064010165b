package utils

import (
	"reflect"
	"testing"
)

func TestEncodeDays(t *testing.T) {
	tests := []struct {
		name string
		days []int
		want string
	}{
		{
			name: "monday only",
			days: []int{1},
			want: "1000000",
		},
		{
			name: "sunday only",
			days: []int{7},
			want: "0000001",
		},
		{
			name: "weekdays",
			days: []int{1, 2, 3, 4, 5},
			want: "1111100",
		},
		{
			name: "empty set",
			days: []int{},
			want: "0000000",
		},
		{
			name: "out of range values ignored",
			days: []int{0, 3, 8, -1},
			want: "0010000",
		},
		{
			name: "duplicates collapse",
			days: []int{2, 2, 5},
			want: "0100100",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := EncodeDays(tc.days)
			if got != tc.want {
				t.Fatalf("EncodeDays(%v) = %q, want %q", tc.days, got, tc.want)
			}
			if len(got) != 7 {
				t.Fatalf("mask length = %d, want 7", len(got))
			}
		})
	}
}

func TestDecodeDays(t *testing.T) {
	tests := []struct {
		name string
		mask string
		want []int
	}{
		{
			name: "tuesday and friday",
			mask: "0100100",
			want: []int{2, 5},
		},
		{
			name: "all days",
			mask: "1111111",
			want: []int{1, 2, 3, 4, 5, 6, 7},
		},
		{
			name: "no days",
			mask: "0000000",
			want: []int{},
		},
		{
			name: "numeric round-trip lost leading zeros",
			mask: "1", // was "0000001" before a numeric column truncated it
			want: []int{7},
		},
		{
			name: "truncated tuesday and friday",
			mask: "100100",
			want: []int{2, 5},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := DecodeDays(tc.mask)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("DecodeDays(%q) = %v, want %v", tc.mask, got, tc.want)
			}
		})
	}
}

// Round-trip property: decoding an encoded set yields the sorted set, for
// every subset of {1..7}.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	for bits := 0; bits < 1<<7; bits++ {
		days := []int{}
		for d := 1; d <= 7; d++ {
			if bits&(1<<(d-1)) != 0 {
				days = append(days, d)
			}
		}
		got := DecodeDays(EncodeDays(days))
		if !reflect.DeepEqual(got, days) {
			t.Fatalf("round trip failed for %v: got %v", days, got)
		}
	}
}
