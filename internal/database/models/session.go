package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the state of a session booking.
// Confirmed is terminal for the (availability, date) pair it claims.
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// SessionTemplate defines a mentor's recurring weekly availability pattern
type SessionTemplate struct {
	BaseModel
	MentorID    uuid.UUID    `json:"mentor_id" gorm:"type:uuid;not null;index" validate:"required"`
	Weekday     time.Weekday `json:"weekday" gorm:"not null" validate:"min=0,max=6"`
	StartMinute int          `json:"start_minute" gorm:"not null" validate:"min=0,max=1439"`
	EndMinute   int          `json:"end_minute" gorm:"not null" validate:"min=1,max=1440"`
}

// TableName returns the table name for SessionTemplate
func (SessionTemplate) TableName() string {
	return "session_templates"
}

// SessionAvailability is a bookable slot derived from a template
type SessionAvailability struct {
	BaseModel
	TemplateID  uuid.UUID    `json:"template_id" gorm:"type:uuid;not null;index"`
	MentorID    uuid.UUID    `json:"mentor_id" gorm:"type:uuid;not null;index"`
	Weekday     time.Weekday `json:"weekday" gorm:"not null"`
	StartMinute int          `json:"start_minute" gorm:"not null"`
	EndMinute   int          `json:"end_minute" gorm:"not null"`
}

// TableName returns the table name for SessionAvailability
func (SessionAvailability) TableName() string {
	return "session_availabilities"
}

// SessionBooking claims one (availability, date) pair exactly once.
// The unique index guarantees no two confirmed bookings share the pair;
// cancelled bookings fall out of the index via the status column check
// performed at the service boundary before insert.
type SessionBooking struct {
	BaseModel
	AvailabilityID uuid.UUID     `json:"availability_id" gorm:"type:uuid;not null;uniqueIndex:idx_booking_slot,where:status = 'confirmed'"`
	BookingDate    time.Time     `json:"booking_date" gorm:"type:date;not null;uniqueIndex:idx_booking_slot,where:status = 'confirmed'"`
	ProfileID      uuid.UUID     `json:"profile_id" gorm:"type:uuid;not null;index"`
	Status         BookingStatus `json:"status" gorm:"type:varchar(20);not null;default:'confirmed'"`
}

// TableName returns the table name for SessionBooking
func (SessionBooking) TableName() string {
	return "session_bookings"
}
