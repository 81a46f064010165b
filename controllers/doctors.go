package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"clinicadmin_go/database"
	"clinicadmin_go/middleware"
	"clinicadmin_go/models"
	"clinicadmin_go/utils"
)

type DoctorController struct{}

type doctorRequest struct {
	NameEn          string  `json:"name_en"`
	NameAr          string  `json:"name_ar"`
	AboutEn         string  `json:"about_en"`
	AboutAr         string  `json:"about_ar"`
	Qualification   string  `json:"qualification"`
	Languages       string  `json:"languages"`
	SessionFees     float64 `json:"session_fees"`
	TotalExperience int     `json:"total_experience"`
	AttendedPatient int     `json:"attended_patient"`
	PhotoURL        string  `json:"photo_url"`
	CategoryID      uint    `json:"category_id"`
}

type doctorBranchRequest struct {
	BranchID      uint  `json:"branch_id"`
	AvailableDays []int `json:"available_days"`
}

type timeSlotRequest struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// GetDoctors returns all doctors with their category, branches, and slots.
// Supports category_id, branch_id, and active query filters.
func (dc *DoctorController) GetDoctors(c *fiber.Ctx) error {
	query := database.DB.
		Preload("Category").
		Preload("Branches.Branch").
		Preload("TimeSlots")

	if categoryID := c.QueryInt("category_id"); categoryID > 0 {
		query = query.Where("category_id = ?", categoryID)
	}
	if active := c.Query("active"); active != "" {
		query = query.Where("is_active = ?", active == "true")
	}
	if branchID := c.QueryInt("branch_id"); branchID > 0 {
		query = query.Joins("JOIN doctor_branches ON doctor_branches.doctor_id = doctors.id").
			Where("doctor_branches.branch_id = ? AND doctor_branches.deleted_at IS NULL", branchID)
	}

	var doctors []models.Doctor
	if err := query.Order("name_en ASC").Find(&doctors).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to fetch doctors")
	}

	return utils.Success(c, doctors)
}

// GetDoctor returns a single doctor by ID.
func (dc *DoctorController) GetDoctor(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, "Invalid doctor ID")
	}

	var doctor models.Doctor
	if err := database.DB.
		Preload("Category").
		Preload("Branches.Branch").
		Preload("TimeSlots").
		First(&doctor, id).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, utils.CodeNotFound, "Doctor not found")
	}

	return utils.Success(c, doctor)
}

// CreateDoctor creates a doctor together with optional branch assignments
// and time slots in one transaction.
func (dc *DoctorController) CreateDoctor(c *fiber.Ctx) error {
	var req struct {
		doctorRequest
		Branches  []doctorBranchRequest `json:"branches"`
		TimeSlots []timeSlotRequest     `json:"time_slots"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, "Invalid request body")
	}

	doctor := models.Doctor{
		NameEn:          req.NameEn,
		NameAr:          req.NameAr,
		AboutEn:         req.AboutEn,
		AboutAr:         req.AboutAr,
		Qualification:   req.Qualification,
		Languages:       req.Languages,
		SessionFees:     req.SessionFees,
		TotalExperience: req.TotalExperience,
		AttendedPatient: req.AttendedPatient,
		PhotoURL:        req.PhotoURL,
		IsActive:        true,
		CategoryID:      req.CategoryID,
	}

	if err := utils.ValidateDoctor(doctor); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, err.Error())
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&doctor).Error; err != nil {
			return err
		}
		for _, br := range req.Branches {
			db := models.DoctorBranch{
				DoctorID:         doctor.ID,
				BranchID:         br.BranchID,
				AvailabilityMask: utils.EncodeDays(br.AvailableDays),
			}
			if err := tx.Create(&db).Error; err != nil {
				return err
			}
		}
		for _, ts := range req.TimeSlots {
			slot := models.DoctorTimeSlot{
				DoctorID:  doctor.ID,
				StartTime: ts.StartTime,
				EndTime:   ts.EndTime,
			}
			if err := tx.Create(&slot).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to create doctor")
	}

	middleware.LogActivity(c, "CREATE", "doctors", doctor.ID, fiber.Map{"name_en": doctor.NameEn})

	database.DB.Preload("Category").Preload("Branches.Branch").Preload("TimeSlots").First(&doctor, doctor.ID)
	return utils.Created(c, doctor)
}

// UpdateDoctor updates a doctor's profile fields.
func (dc *DoctorController) UpdateDoctor(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, "Invalid doctor ID")
	}

	var doctor models.Doctor
	if err := database.DB.First(&doctor, id).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, utils.CodeNotFound, "Doctor not found")
	}

	var req doctorRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, "Invalid request body")
	}

	doctor.NameEn = req.NameEn
	doctor.NameAr = req.NameAr
	doctor.AboutEn = req.AboutEn
	doctor.AboutAr = req.AboutAr
	doctor.Qualification = req.Qualification
	doctor.Languages = req.Languages
	doctor.SessionFees = req.SessionFees
	doctor.TotalExperience = req.TotalExperience
	doctor.AttendedPatient = req.AttendedPatient
	if req.PhotoURL != "" {
		doctor.PhotoURL = req.PhotoURL
	}
	if req.CategoryID != 0 {
		doctor.CategoryID = req.CategoryID
	}

	if err := utils.ValidateDoctor(doctor); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, err.Error())
	}

	if err := database.DB.Save(&doctor).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to update doctor")
	}

	middleware.LogActivity(c, "UPDATE", "doctors", doctor.ID, nil)

	return utils.Success(c, doctor)
}

// ToggleDoctorActive flips or sets the is_active flag.
func (dc *DoctorController) ToggleDoctorActive(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, "Invalid doctor ID")
	}

	var doctor models.Doctor
	if err := database.DB.First(&doctor, id).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, utils.CodeNotFound, "Doctor not found")
	}

	var req struct {
		IsActive *bool `json:"is_active"`
	}
	if err := c.BodyParser(&req); err == nil && req.IsActive != nil {
		doctor.IsActive = *req.IsActive
	} else {
		doctor.IsActive = !doctor.IsActive
	}

	if err := database.DB.Model(&doctor).Update("is_active", doctor.IsActive).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to update doctor")
	}

	middleware.LogActivity(c, "UPDATE", "doctors", doctor.ID, fiber.Map{"is_active": doctor.IsActive})

	return utils.Success(c, fiber.Map{"id": doctor.ID, "is_active": doctor.IsActive})
}

// GetDoctorBranches returns a doctor's branch assignments with decoded
// availability days.
func (dc *DoctorController) GetDoctorBranches(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, "Invalid doctor ID")
	}

	var assignments []models.DoctorBranch
	if err := database.DB.Preload("Branch").Where("doctor_id = ?", id).Find(&assignments).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to fetch branches")
	}

	dtos := make([]utils.DoctorBranchDTO, 0, len(assignments))
	for _, a := range assignments {
		dtos = append(dtos, utils.NewDoctorBranchDTO(a))
	}

	return utils.Success(c, dtos)
}

// UpdateDoctorBranches replaces a doctor's branch assignments. Each entry
// carries a weekday list that is encoded into the stored availability mask.
func (dc *DoctorController) UpdateDoctorBranches(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, "Invalid doctor ID")
	}

	var doctor models.Doctor
	if err := database.DB.First(&doctor, id).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, utils.CodeNotFound, "Doctor not found")
	}

	var req struct {
		Branches []doctorBranchRequest `json:"branches"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, "Invalid request body")
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("doctor_id = ?", doctor.ID).Delete(&models.DoctorBranch{}).Error; err != nil {
			return err
		}
		for _, br := range req.Branches {
			assignment := models.DoctorBranch{
				DoctorID:         doctor.ID,
				BranchID:         br.BranchID,
				AvailabilityMask: utils.EncodeDays(br.AvailableDays),
			}
			if err := tx.Create(&assignment).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to update branches")
	}

	middleware.LogActivity(c, "UPDATE", "doctor_branches", doctor.ID, nil)

	return dc.GetDoctorBranches(c)
}

// GetDoctorTimeSlots returns a doctor's daily consultation windows.
func (dc *DoctorController) GetDoctorTimeSlots(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, "Invalid doctor ID")
	}

	var slots []models.DoctorTimeSlot
	if err := database.DB.Where("doctor_id = ?", id).Order("start_time ASC").Find(&slots).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to fetch time slots")
	}

	return utils.Success(c, slots)
}

// UpdateDoctorTimeSlots replaces a doctor's time slots. Overlapping windows
// are accepted as-is.
func (dc *DoctorController) UpdateDoctorTimeSlots(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, "Invalid doctor ID")
	}

	var doctor models.Doctor
	if err := database.DB.First(&doctor, id).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, utils.CodeNotFound, "Doctor not found")
	}

	var req struct {
		TimeSlots []timeSlotRequest `json:"time_slots"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, "Invalid request body")
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("doctor_id = ?", doctor.ID).Delete(&models.DoctorTimeSlot{}).Error; err != nil {
			return err
		}
		for _, ts := range req.TimeSlots {
			slot := models.DoctorTimeSlot{
				DoctorID:  doctor.ID,
				StartTime: ts.StartTime,
				EndTime:   ts.EndTime,
			}
			if err := tx.Create(&slot).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to update time slots")
	}

	middleware.LogActivity(c, "UPDATE", "doctor_time_slots", doctor.ID, nil)

	return dc.GetDoctorTimeSlots(c)
}
