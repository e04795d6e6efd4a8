package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"care-companion/internal/models"
)

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		sendError(c, http.StatusBadRequest, "invalid id", err)
		return 0, false
	}
	return uint(id), true
}

// updateRecord 合并更新字段并返回最新记录
func (h *Handler) updateRecord(c *gin.Context, record any, fields map[string]any, name string) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if len(fields) == 0 {
		sendError(c, http.StatusBadRequest, "no fields to update", nil)
		return
	}

	if err := h.db.First(record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendError(c, http.StatusNotFound, name+" not found", err)
			return
		}
		sendError(c, http.StatusInternalServerError, "failed to load "+name, err)
		return
	}
	if err := h.db.Model(record).Updates(fields).Error; err != nil {
		sendError(c, http.StatusInternalServerError, "failed to update "+name, err)
		return
	}
	if err := h.db.First(record, id).Error; err != nil {
		sendError(c, http.StatusInternalServerError, "failed to reload "+name, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *Handler) deleteRecord(c *gin.Context, model any, name string) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	result := h.db.Delete(model, id)
	if result.Error != nil {
		sendError(c, http.StatusInternalServerError, "failed to delete "+name, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		sendError(c, http.StatusNotFound, name+" not found", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": name + " deleted successfully"})
}

type appointmentRequest struct {
	DoctorID   string `json:"doctor_id"`
	DoctorName string `json:"doctor_name" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	Status     string `json:"status" binding:"omitempty,oneof=scheduled completed cancelled"`
}

type appointmentUpdate struct {
	DoctorID   *string `json:"doctor_id"`
	DoctorName *string `json:"doctor_name"`
	Date       *string `json:"date"`
	Time       *string `json:"time"`
	Status     *string `json:"status" binding:"omitempty,oneof=scheduled completed cancelled"`
}

func (u appointmentUpdate) fields() map[string]any {
	m := map[string]any{}
	if u.DoctorID != nil {
		m["doctor_id"] = *u.DoctorID
	}
	if u.DoctorName != nil {
		m["doctor_name"] = *u.DoctorName
	}
	if u.Date != nil {
		m["date"] = *u.Date
	}
	if u.Time != nil {
		m["time"] = *u.Time
	}
	if u.Status != nil {
		m["status"] = *u.Status
	}
	return m
}

// CreateAppointment 创建预约
func (h *Handler) CreateAppointment(c *gin.Context) {
	var req appointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	appt := models.Appointment{
		DoctorID:   req.DoctorID,
		DoctorName: req.DoctorName,
		Date:       req.Date,
		Time:       req.Time,
		Status:     req.Status,
	}
	if appt.Status == "" {
		appt.Status = models.AppointmentScheduled
	}
	if err := h.db.Create(&appt).Error; err != nil {
		sendError(c, http.StatusInternalServerError, "failed to create appointment", err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// ListAppointments 预约列表，最新的在前
func (h *Handler) ListAppointments(c *gin.Context) {
	var appts []models.Appointment
	if err := h.db.Order("created_at DESC").Order("id DESC").Find(&appts).Error; err != nil {
		sendError(c, http.StatusInternalServerError, "failed to load appointments", err)
		return
	}
	c.JSON(http.StatusOK, appts)
}

func (h *Handler) UpdateAppointment(c *gin.Context) {
	var req appointmentUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}
	h.updateRecord(c, &models.Appointment{}, req.fields(), "Appointment")
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	h.deleteRecord(c, &models.Appointment{}, "Appointment")
}

type medicationRequest struct {
	Name      string `json:"name" binding:"required"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Time      string `json:"time"`
	Taken     bool   `json:"taken"`
}

type medicationUpdate struct {
	Name      *string `json:"name"`
	Dosage    *string `json:"dosage"`
	Frequency *string `json:"frequency"`
	Time      *string `json:"time"`
	Taken     *bool   `json:"taken"`
}

func (u medicationUpdate) fields() map[string]any {
	m := map[string]any{}
	if u.Name != nil {
		m["name"] = *u.Name
	}
	if u.Dosage != nil {
		m["dosage"] = *u.Dosage
	}
	if u.Frequency != nil {
		m["frequency"] = *u.Frequency
	}
	if u.Time != nil {
		m["time"] = *u.Time
	}
	if u.Taken != nil {
		m["taken"] = *u.Taken
	}
	return m
}

// CreateMedication 添加药品
func (h *Handler) CreateMedication(c *gin.Context) {
	var req medicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	med := models.Medication{
		Name:      req.Name,
		Dosage:    req.Dosage,
		Frequency: req.Frequency,
		Time:      req.Time,
		Taken:     req.Taken,
	}
	if err := h.db.Create(&med).Error; err != nil {
		sendError(c, http.StatusInternalServerError, "failed to create medication", err)
		return
	}
	c.JSON(http.StatusCreated, med)
}

// ListMedications 药品列表，最新的在前
func (h *Handler) ListMedications(c *gin.Context) {
	var meds []models.Medication
	if err := h.db.Order("created_at DESC").Order("id DESC").Find(&meds).Error; err != nil {
		sendError(c, http.StatusInternalServerError, "failed to load medications", err)
		return
	}
	c.JSON(http.StatusOK, meds)
}

// UpdateMedication 更新药品信息，例如标记已服用
func (h *Handler) UpdateMedication(c *gin.Context) {
	var req medicationUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}
	h.updateRecord(c, &models.Medication{}, req.fields(), "Medication")
}

func (h *Handler) DeleteMedication(c *gin.Context) {
	h.deleteRecord(c, &models.Medication{}, "Medication")
}
