package models

import (
	"database/sql/driver"
	"time"

	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// JSON field type for GORM
type JSON []byte

func (j JSON) Value() (driver.Value, error) {
	if j.IsNull() {
		return nil, nil
	}
	return string(j), nil
}

func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	s, ok := value.([]byte)
	if !ok {
		return nil
	}
	*j = append((*j)[0:0], s...)
	return nil
}

func (j JSON) MarshalJSON() ([]byte, error) {
	if j == nil {
		return []byte("null"), nil
	}
	return j, nil
}

func (j *JSON) UnmarshalJSON(data []byte) error {
	if j == nil {
		return nil
	}
	*j = append((*j)[0:0], data...)
	return nil
}

func (j JSON) IsNull() bool {
	return len(j) == 0 || string(j) == "null"
}

// Booking status enum shared by doctor and service bookings
const (
	BookingScheduled = "SCHEDULED"
	BookingCompleted = "COMPLETED"
	BookingCanceled  = "CANCELED"
)

// Category type enum
const (
	CategoryDentist       = "DENTIST"
	CategoryDermatologist = "DERMATOLOGIST"
)

// Branch model - a physical clinic location
type Branch struct {
	BaseModel
	NameEn    string  `json:"name_en" gorm:"size:255;not null"`
	NameAr    string  `json:"name_ar" gorm:"size:255;not null"`
	CityEn    string  `json:"city_en" gorm:"size:255"`
	CityAr    string  `json:"city_ar" gorm:"size:255"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Phone     string  `json:"phone" gorm:"size:20"`
	Active    bool    `json:"active" gorm:"default:true"`

	// Relationships
	DoctorBranches  []DoctorBranch  `json:"doctor_branches,omitempty" gorm:"foreignKey:BranchID"`
	ServiceBranches []ServiceBranch `json:"service_branches,omitempty" gorm:"foreignKey:BranchID"`
}

// AdminUser model - dashboard staff account
type AdminUser struct {
	BaseModel
	Email    string `json:"email" gorm:"size:255;not null;uniqueIndex"`
	Password string `json:"-" gorm:"size:255;not null"`
	FullName string `json:"full_name" gorm:"size:255"`
	Phone    string `json:"phone" gorm:"size:20"`
	Role     string `json:"role" gorm:"size:50;not null;default:'staff';type:enum('owner','admin','staff')"` // owner, admin, staff
	Status   string `json:"status" gorm:"size:50;not null;default:'active';type:enum('active','inactive','suspended')"`
	Avatar   string `json:"avatar" gorm:"size:500"`
}

// Customer model - a clinic customer with loyalty tracking
type Customer struct {
	BaseModel
	FullName    string `json:"full_name" gorm:"size:255;not null"`
	Email       string `json:"email" gorm:"size:255;index"`
	Phone       string `json:"phone" gorm:"size:20;index"`
	Points      int    `json:"points" gorm:"default:0"`
	Redeemed    bool   `json:"redeemed" gorm:"default:false"`
	TotalVisits int    `json:"total_visits" gorm:"default:0"`

	// Relationships
	DoctorBookings  []DoctorBooking  `json:"doctor_bookings,omitempty" gorm:"foreignKey:CustomerID"`
	ServiceBookings []ServiceBooking `json:"service_bookings,omitempty" gorm:"foreignKey:CustomerID"`
}

// Category model - tags doctors and services (DENTIST, DERMATOLOGIST)
type Category struct {
	BaseModel
	Type     string `json:"type" gorm:"size:50;not null;type:enum('DENTIST','DERMATOLOGIST')"`
	NameEn   string `json:"name_en" gorm:"size:255;not null"`
	NameAr   string `json:"name_ar" gorm:"size:255;not null"`
	ImageURL string `json:"image_url" gorm:"size:500"`
}

// Doctor model
type Doctor struct {
	BaseModel
	NameEn          string  `json:"name_en" gorm:"size:255;not null"`
	NameAr          string  `json:"name_ar" gorm:"size:255;not null"`
	AboutEn         string  `json:"about_en" gorm:"type:text"`
	AboutAr         string  `json:"about_ar" gorm:"type:text"`
	Qualification   string  `json:"qualification" gorm:"size:500"`
	Languages       string  `json:"languages" gorm:"size:255"`
	SessionFees     float64 `json:"session_fees"`
	TotalExperience int     `json:"total_experience"`
	AttendedPatient int     `json:"attended_patient"`
	PhotoURL        string  `json:"photo_url" gorm:"size:500"`
	IsActive        bool    `json:"is_active" gorm:"default:true"`
	CategoryID      uint    `json:"category_id"`

	// Relationships
	Category  Category         `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Branches  []DoctorBranch   `json:"branches,omitempty" gorm:"foreignKey:DoctorID"`
	TimeSlots []DoctorTimeSlot `json:"time_slots,omitempty" gorm:"foreignKey:DoctorID"`
}

// DoctorBranch associates a doctor with a branch and a weekly availability
// mask. The mask is always persisted as a zero-padded 7-character string
// (Monday first); see utils.EncodeDays / utils.DecodeDays.
type DoctorBranch struct {
	BaseModel
	DoctorID         uint   `json:"doctor_id" gorm:"not null;index"`
	BranchID         uint   `json:"branch_id" gorm:"not null;index"`
	AvailabilityMask string `json:"availability_mask" gorm:"size:7;not null;default:'0000000'"`

	// Relationships
	Doctor Doctor `json:"doctor,omitempty" gorm:"foreignKey:DoctorID"`
	Branch Branch `json:"branch,omitempty" gorm:"foreignKey:BranchID"`
}

// DoctorTimeSlot is a fixed daily consultation window. Overlap between
// slots is not validated; the booking flow tolerates it.
type DoctorTimeSlot struct {
	BaseModel
	DoctorID  uint   `json:"doctor_id" gorm:"not null;index"`
	StartTime string `json:"start_time" gorm:"size:8;not null"` // HH:MM
	EndTime   string `json:"end_time" gorm:"size:8;not null"`   // HH:MM
}

// Service model - a bookable standalone service
type Service struct {
	BaseModel
	NameEn          string  `json:"name_en" gorm:"size:255;not null"`
	NameAr          string  `json:"name_ar" gorm:"size:255;not null"`
	AboutEn         string  `json:"about_en" gorm:"type:text"`
	AboutAr         string  `json:"about_ar" gorm:"type:text"`
	CategoryID      uint    `json:"category_id" gorm:"not null"`
	ActualPrice     float64 `json:"actual_price"`
	DiscountedPrice float64 `json:"discounted_price"`
	ImageEnURL      string  `json:"image_en_url" gorm:"size:500"`
	ImageArURL      string  `json:"image_ar_url" gorm:"size:500"`
	CanRedeem       bool    `json:"can_redeem" gorm:"default:false"`

	// Relationships
	Category Category        `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Branches []ServiceBranch `json:"branches,omitempty" gorm:"foreignKey:ServiceID"`
}

// ServiceBranch associates a service with a branch. Service availability is
// branch-wide; only the per-slot booking capacity is configured here.
type ServiceBranch struct {
	BaseModel
	ServiceID             uint `json:"service_id" gorm:"not null;index"`
	BranchID              uint `json:"branch_id" gorm:"not null;index"`
	MaximumBookingPerSlot int  `json:"maximum_booking_per_slot" gorm:"default:1"`

	// Relationships
	Service Service `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	Branch  Branch  `json:"branch,omitempty" gorm:"foreignKey:BranchID"`
}

// DoctorBooking - an appointment for a doctor consultation. Bookings are
// never deleted, only status-transitioned by admin cancel/complete actions.
type DoctorBooking struct {
	BaseModel
	CustomerID    uint   `json:"user_id" gorm:"not null;index"`
	CustomerName  string `json:"user_full_name" gorm:"size:255"`
	CustomerEmail string `json:"user_email" gorm:"size:255"`
	CustomerPhone string `json:"user_phone" gorm:"size:20"`

	DoctorID     uint    `json:"doctor_id" gorm:"not null;index"`
	DoctorNameEn string  `json:"doctor_name_en" gorm:"size:255"`
	SessionFees  float64 `json:"session_fees"`

	BranchID     uint   `json:"branch_id" gorm:"not null;index"`
	BranchNameEn string `json:"branch_name_en" gorm:"size:255"`
	BranchNameAr string `json:"branch_name_ar" gorm:"size:255"`

	BookingDate   time.Time `json:"booking_date" gorm:"not null;index"`
	BookingStatus string    `json:"booking_status" gorm:"size:50;not null;default:'SCHEDULED';type:enum('SCHEDULED','COMPLETED','CANCELED')"`

	VatPercentage *float64 `json:"vat_percentage"`
	VatAmount     *float64 `json:"vat_amount"`
	FinalTotal    *float64 `json:"final_total"`

	// Relationships
	Customer Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Doctor   Doctor   `json:"doctor,omitempty" gorm:"foreignKey:DoctorID"`
	Branch   Branch   `json:"branch,omitempty" gorm:"foreignKey:BranchID"`
}

// ServiceBooking - an appointment for a standalone service. Kept as a
// separate model from DoctorBooking on purpose: the two variants carry
// different resource fields and follow different classification rules.
type ServiceBooking struct {
	BaseModel
	CustomerID    uint   `json:"user_id" gorm:"not null;index"`
	CustomerName  string `json:"user_full_name" gorm:"size:255"`
	CustomerEmail string `json:"user_email" gorm:"size:255"`
	CustomerPhone string `json:"user_phone" gorm:"size:20"`

	ServiceID       uint    `json:"service_id" gorm:"not null;index"`
	ServiceNameEn   string  `json:"service_name_en" gorm:"size:255"`
	ActualPrice     float64 `json:"actual_price"`
	DiscountedPrice float64 `json:"discounted_price"`

	BranchID     uint   `json:"branch_id" gorm:"not null;index"`
	BranchNameEn string `json:"branch_name_en" gorm:"size:255"`
	BranchNameAr string `json:"branch_name_ar" gorm:"size:255"`

	BookingDate   time.Time `json:"booking_date" gorm:"not null;index"`
	BookingStatus string    `json:"booking_status" gorm:"size:50;not null;default:'SCHEDULED';type:enum('SCHEDULED','COMPLETED','CANCELED')"`

	VatPercentage *float64 `json:"vat_percentage"`
	VatAmount     *float64 `json:"vat_amount"`
	FinalTotal    *float64 `json:"final_total"`

	// Relationships
	Customer Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Service  Service  `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	Branch   Branch   `json:"branch,omitempty" gorm:"foreignKey:BranchID"`
}

// Banner model - marketing banner. The "active" state is never stored; it is
// derived at serialization time from now vs [StartAt, EndAt].
type Banner struct {
	BaseModel
	Link       string    `json:"link" gorm:"size:500"`
	StartAt    time.Time `json:"start_at" gorm:"not null"`
	EndAt      time.Time `json:"end_at" gorm:"not null"`
	ImageEnURL string    `json:"image_en_url" gorm:"size:500"`
	ImageArURL string    `json:"image_ar_url" gorm:"size:500"`
}

// Notification model - fire-and-forget broadcast with optional scheduling.
// The dispatcher marks Sent once ScheduledAt has passed.
type Notification struct {
	BaseModel
	TitleEn     string     `json:"title_en" gorm:"size:255;not null"`
	TitleAr     string     `json:"title_ar" gorm:"size:255"`
	MessageEn   string     `json:"message_en" gorm:"type:text;not null"`
	MessageAr   string     `json:"message_ar" gorm:"type:text"`
	ScheduledAt time.Time  `json:"scheduled_timestamp" gorm:"not null;index"`
	Sent        bool       `json:"sent" gorm:"default:false"`
	SentAt      *time.Time `json:"sent_at"`
}

// Review model - customer review with optional admin reply
type Review struct {
	BaseModel
	CustomerID   uint   `json:"user_id" gorm:"not null;index"`
	CustomerName string `json:"user_full_name" gorm:"size:255"`
	Rating       int    `json:"rating"`
	CommentEn    string `json:"comment_en" gorm:"type:text"`
	CommentAr    string `json:"comment_ar" gorm:"type:text"`
	AdminReply   string `json:"admin_reply" gorm:"type:text"`
	Approved     bool   `json:"approved" gorm:"default:false"`

	// Relationships
	Customer Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
}

// VatSetting - single-row VAT configuration applied to new bookings
type VatSetting struct {
	BaseModel
	Percentage float64 `json:"percentage" gorm:"not null;default:0"`
}

// ActivityLog model for admin audit trail
type ActivityLog struct {
	BaseModel
	AdminUserID uint   `json:"admin_user_id"`
	Action      string `json:"action" gorm:"size:100;not null"`
	Resource    string `json:"resource" gorm:"size:100;not null"`
	ResourceID  uint   `json:"resource_id"`
	Details     JSON   `json:"details" gorm:"type:json"`
	IPAddress   string `json:"ip_address" gorm:"size:45"`
	UserAgent   string `json:"user_agent" gorm:"size:500"`

	// Relationships
	AdminUser AdminUser `json:"admin_user,omitempty" gorm:"foreignKey:AdminUserID"`
}

// LogArchive model for tracking activity logs archived to S3
type LogArchive struct {
	BaseModel
	FileName    string    `json:"file_name" gorm:"size:255;not null"`
	S3Key       string    `json:"s3_key" gorm:"size:500;not null"`
	StartDate   time.Time `json:"start_date" gorm:"not null"`
	EndDate     time.Time `json:"end_date" gorm:"not null"`
	RecordCount int       `json:"record_count" gorm:"not null"`
	FileSize    int64     `json:"file_size" gorm:"not null"`
	Status      string    `json:"status" gorm:"size:50;not null;default:'pending';type:enum('pending','completed','failed')"`
	Error       string    `json:"error" gorm:"type:text"`
}
