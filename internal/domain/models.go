// Package domain defines the persistence models for appointments and the
// seeded admin credential. These types are mapped with GORM and form the
// core data layer of the booking application.
package domain

import "time"

// Appointment represents one booked slot: a client (name/phone) reserved a
// specialist and service at a given date and time.
//
// Fields:
//   - ID: store-assigned, monotonically increasing primary key.
//   - Date: calendar date as "YYYY-MM-DD" wall-clock string.
//   - Time: time of day as "HH:MM" wall-clock string.
//   - Specialist / Service: free-text staff member and service name.
//   - StrizhkaType: optional haircut subtype; empty when not applicable.
//   - Name / Phone: client display name and contact number.
//   - CreatedAt: timestamp managed by GORM; gives listings a stable order.
//
// The composite unique index on (date, time) is the single-occupancy
// invariant: at most one appointment may exist per slot. The insert path
// relies on this constraint as the authoritative conflict arbiter under
// concurrent bookings.
type Appointment struct {
	ID           uint      `json:"id"           gorm:"primaryKey;autoIncrement"`
	Date         string    `json:"date"         gorm:"type:varchar(10);not null;uniqueIndex:ux_appointments_slot,priority:1"`
	Time         string    `json:"time"         gorm:"type:varchar(5);not null;uniqueIndex:ux_appointments_slot,priority:2"`
	Specialist   string    `json:"specialist"   gorm:"type:varchar(255);not null"`
	Service      string    `json:"service"      gorm:"type:varchar(255);not null"`
	StrizhkaType string    `json:"strizhkaType" gorm:"type:varchar(255);not null;default:''"`
	Name         string    `json:"name"         gorm:"type:varchar(255);not null"`
	Phone        string    `json:"phone"        gorm:"type:varchar(64);not null"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName returns the database table name for Appointment.
func (Appointment) TableName() string { return "appointments" }

// User holds the single admin credential pair that gates the appointment
// listing endpoint. Exactly one row is seeded at startup from configuration
// (insert-if-absent); it is never rotated or deleted by this service.
type User struct {
	ID       uint   `json:"id"       gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"type:varchar(64);not null;uniqueIndex"`
	Password string `json:"-"        gorm:"type:varchar(255);not null"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }
