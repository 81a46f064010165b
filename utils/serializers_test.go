package utils

import (
	"reflect"
	"testing"
	"time"

	"clinicadmin_go/models"
)

func TestNewBannerDTOActiveWindow(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC)
	banner := models.Banner{StartAt: start, EndAt: end}

	tests := []struct {
		name   string
		now    time.Time
		active bool
	}{
		{"before window", start.Add(-time.Hour), false},
		{"at start", start, true},
		{"inside window", start.AddDate(0, 0, 10), true},
		{"at end", end, true},
		{"after window", end.Add(time.Second), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dto := NewBannerDTO(banner, tt.now)
			if dto.Active != tt.active {
				t.Errorf("active = %v, want %v", dto.Active, tt.active)
			}
		})
	}
}

func TestNewDoctorBranchDTONormalizesMask(t *testing.T) {
	// A mask stored with lost leading zeros must decode the same days as
	// its zero-padded form.
	assignment := models.DoctorBranch{
		DoctorID:         3,
		BranchID:         7,
		AvailabilityMask: "100100",
	}
	assignment.Branch = models.Branch{NameEn: "Main Branch", NameAr: "الفرع الرئيسي"}

	dto := NewDoctorBranchDTO(assignment)

	if dto.AvailabilityMask != "0100100" {
		t.Errorf("mask = %q, want %q", dto.AvailabilityMask, "0100100")
	}
	if !reflect.DeepEqual(dto.AvailableDays, []int{2, 5}) {
		t.Errorf("days = %v, want [2 5]", dto.AvailableDays)
	}
	if dto.Branch.NameEn != "Main Branch" {
		t.Errorf("branch name = %q", dto.Branch.NameEn)
	}
}
