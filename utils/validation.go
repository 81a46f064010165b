package utils

import (
	"clinicadmin_go/models"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ValidateBranch validates a branch payload, including geocoordinate ranges.
func ValidateBranch(branch models.Branch) error {
	return validation.ValidateStruct(&branch,
		validation.Field(&branch.NameEn, validation.Required, validation.Length(1, 255)),
		validation.Field(&branch.NameAr, validation.Required, validation.Length(1, 255)),
		validation.Field(&branch.Latitude, validation.Min(-90.0), validation.Max(90.0)),
		validation.Field(&branch.Longitude, validation.Min(-180.0), validation.Max(180.0)),
	)
}

// ValidateVatPercentage enforces the [0,100] VAT range.
func ValidateVatPercentage(percentage float64) error {
	return validation.Validate(percentage,
		validation.Min(0.0),
		validation.Max(100.0),
	)
}

// ValidateLogin validates admin login credentials.
func ValidateLogin(email, password string) error {
	return validation.Errors{
		"email":    validation.Validate(email, validation.Required, is.Email),
		"password": validation.Validate(password, validation.Required),
	}.Filter()
}

// ValidateAdminRegister validates a new admin account payload.
func ValidateAdminRegister(email, password, role string) error {
	return validation.Errors{
		"email":    validation.Validate(email, validation.Required, is.Email),
		"password": validation.Validate(password, validation.Required, validation.Length(8, 72)),
		"role":     validation.Validate(role, validation.Required, validation.In("owner", "admin", "staff")),
	}.Filter()
}

// ValidateDoctor validates the required localized doctor fields.
func ValidateDoctor(doctor models.Doctor) error {
	return validation.ValidateStruct(&doctor,
		validation.Field(&doctor.NameEn, validation.Required, validation.Length(1, 255)),
		validation.Field(&doctor.NameAr, validation.Required, validation.Length(1, 255)),
		validation.Field(&doctor.SessionFees, validation.Min(0.0)),
	)
}

// ValidateService validates the required localized service fields.
func ValidateService(service models.Service) error {
	return validation.ValidateStruct(&service,
		validation.Field(&service.NameEn, validation.Required, validation.Length(1, 255)),
		validation.Field(&service.NameAr, validation.Required, validation.Length(1, 255)),
		validation.Field(&service.CategoryID, validation.Required),
		validation.Field(&service.ActualPrice, validation.Min(0.0)),
		validation.Field(&service.DiscountedPrice, validation.Min(0.0)),
	)
}

// ValidateCategory validates a category payload.
func ValidateCategory(category models.Category) error {
	return validation.ValidateStruct(&category,
		validation.Field(&category.Type, validation.Required, validation.In(models.CategoryDentist, models.CategoryDermatologist)),
		validation.Field(&category.NameEn, validation.Required, validation.Length(1, 255)),
		validation.Field(&category.NameAr, validation.Required, validation.Length(1, 255)),
	)
}

// ValidateNotification validates a notification payload.
func ValidateNotification(n models.Notification) error {
	return validation.ValidateStruct(&n,
		validation.Field(&n.TitleEn, validation.Required, validation.Length(1, 255)),
		validation.Field(&n.MessageEn, validation.Required),
		validation.Field(&n.ScheduledAt, validation.Required),
	)
}

// ValidateBanner validates a banner payload.
func ValidateBanner(b models.Banner) error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Link, is.URL),
		validation.Field(&b.StartAt, validation.Required),
		validation.Field(&b.EndAt, validation.Required),
	)
}
