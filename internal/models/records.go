package models

import (
	"time"

	"gorm.io/gorm"
)

// 预约状态
const (
	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

// Appointment 远程问诊预约
type Appointment struct {
	gorm.Model
	DoctorID   string `json:"doctor_id"`
	DoctorName string `json:"doctor_name"`
	Date       string `json:"date"` // YYYY-MM-DD
	Time       string `json:"time"` // HH:MM
	Status     string `json:"status" gorm:"default:scheduled"`
}

// Medication 用药提醒
type Medication struct {
	gorm.Model
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Time      string `json:"time"`
	Taken     bool   `json:"taken" gorm:"default:false"`
}

// Article 健康资讯，来自订阅源
type Article struct {
	gorm.Model
	Source      string    `json:"source"`
	Title       string    `json:"title"`
	URL         string    `json:"url" gorm:"uniqueIndex"`
	Description string    `json:"description"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"published_at"`
}
