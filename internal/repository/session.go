package repository

import (
	"time"

	"hackathon-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionRepository handles database operations for session scheduling
type SessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// CreateTemplate creates a new session template
func (r *SessionRepository) CreateTemplate(template *models.SessionTemplate) error {
	return r.db.Create(template).Error
}

// GetTemplateByID retrieves a session template by ID
func (r *SessionRepository) GetTemplateByID(id uuid.UUID) (*models.SessionTemplate, error) {
	var template models.SessionTemplate
	err := r.db.First(&template, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}

// ListTemplates retrieves all templates for a mentor
func (r *SessionRepository) ListTemplates(mentorID uuid.UUID) ([]models.SessionTemplate, error) {
	var templates []models.SessionTemplate
	err := r.db.Where("mentor_id = ?", mentorID).
		Order("weekday, start_minute").
		Find(&templates).Error
	if err != nil {
		return nil, err
	}
	return templates, nil
}

// CreateAvailability creates a new bookable slot
func (r *SessionRepository) CreateAvailability(availability *models.SessionAvailability) error {
	return r.db.Create(availability).Error
}

// GetAvailabilityByID retrieves an availability by ID
func (r *SessionRepository) GetAvailabilityByID(id uuid.UUID) (*models.SessionAvailability, error) {
	var availability models.SessionAvailability
	err := r.db.First(&availability, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &availability, nil
}

// ListAvailabilities retrieves all availabilities for a mentor
func (r *SessionRepository) ListAvailabilities(mentorID uuid.UUID) ([]models.SessionAvailability, error) {
	var availabilities []models.SessionAvailability
	err := r.db.Where("mentor_id = ?", mentorID).
		Order("weekday, start_minute").
		Find(&availabilities).Error
	if err != nil {
		return nil, err
	}
	return availabilities, nil
}

// CreateBooking creates a booking. The partial unique index on
// (availability_id, booking_date) for confirmed rows rejects a
// concurrent double booking at the database level.
func (r *SessionRepository) CreateBooking(booking *models.SessionBooking) error {
	return r.db.Create(booking).Error
}

// GetBookingByID retrieves a booking by ID
func (r *SessionRepository) GetBookingByID(id uuid.UUID) (*models.SessionBooking, error) {
	var booking models.SessionBooking
	err := r.db.First(&booking, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetConfirmedBooking retrieves the confirmed booking for a slot and date
func (r *SessionRepository) GetConfirmedBooking(availabilityID uuid.UUID, date time.Time) (*models.SessionBooking, error) {
	var booking models.SessionBooking
	err := r.db.First(&booking,
		"availability_id = ? AND booking_date = ? AND status = ?",
		availabilityID, date, models.BookingStatusConfirmed).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// CancelBooking marks a booking cancelled, freeing the slot for rebooking
func (r *SessionRepository) CancelBooking(id uuid.UUID) error {
	result := r.db.Model(&models.SessionBooking{}).
		Where("id = ?", id).
		Update("status", models.BookingStatusCancelled)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListBookingsByProfile retrieves all bookings made by a profile
func (r *SessionRepository) ListBookingsByProfile(profileID uuid.UUID) ([]models.SessionBooking, error) {
	var bookings []models.SessionBooking
	err := r.db.Where("profile_id = ?", profileID).
		Order("booking_date").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// ListBookingsByMentor retrieves all bookings against a mentor's slots
func (r *SessionRepository) ListBookingsByMentor(mentorID uuid.UUID) ([]models.SessionBooking, error) {
	var bookings []models.SessionBooking
	err := r.db.
		Joins("JOIN session_availabilities ON session_availabilities.id = session_bookings.availability_id").
		Where("session_availabilities.mentor_id = ?", mentorID).
		Order("session_bookings.booking_date").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}
