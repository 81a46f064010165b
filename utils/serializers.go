package utils

import (
	"time"

	"clinicadmin_go/models"
)

// Compact representations used across APIs
type BranchShort struct {
	ID     uint   `json:"id"`
	NameEn string `json:"name_en,omitempty"`
	NameAr string `json:"name_ar,omitempty"`
}

// BannerDTO carries the render-time "active" state, which is never stored.
type BannerDTO struct {
	ID         uint      `json:"id"`
	Link       string    `json:"link"`
	StartAt    time.Time `json:"start_at"`
	EndAt      time.Time `json:"end_at"`
	ImageEnURL string    `json:"image_en_url"`
	ImageArURL string    `json:"image_ar_url"`
	Active     bool      `json:"active"`
}

// NewBannerDTO derives the active flag from now vs [StartAt, EndAt].
func NewBannerDTO(b models.Banner, now time.Time) BannerDTO {
	return BannerDTO{
		ID:         b.ID,
		Link:       b.Link,
		StartAt:    b.StartAt,
		EndAt:      b.EndAt,
		ImageEnURL: b.ImageEnURL,
		ImageArURL: b.ImageArURL,
		Active:     !now.Before(b.StartAt) && !now.After(b.EndAt),
	}
}

// NewBannerDTOs maps a banner list with a single shared "now".
func NewBannerDTOs(banners []models.Banner, now time.Time) []BannerDTO {
	out := make([]BannerDTO, 0, len(banners))
	for _, b := range banners {
		out = append(out, NewBannerDTO(b, now))
	}
	return out
}

// DoctorBranchDTO exposes the decoded weekday list alongside the raw mask.
type DoctorBranchDTO struct {
	ID               uint        `json:"id"`
	DoctorID         uint        `json:"doctor_id"`
	Branch           BranchShort `json:"branch"`
	AvailabilityMask string      `json:"availability_mask"`
	AvailableDays    []int       `json:"available_days"`
}

// NewDoctorBranchDTO normalizes the stored mask and decodes it.
func NewDoctorBranchDTO(db models.DoctorBranch) DoctorBranchDTO {
	mask := NormalizeMask(db.AvailabilityMask)
	return DoctorBranchDTO{
		ID:       db.ID,
		DoctorID: db.DoctorID,
		Branch: BranchShort{
			ID:     db.BranchID,
			NameEn: db.Branch.NameEn,
			NameAr: db.Branch.NameAr,
		},
		AvailabilityMask: mask,
		AvailableDays:    DecodeDays(mask),
	}
}
