package service

import (
	"errors"
	"fmt"
	"time"

	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/logger"
	"hackathon-portal-backend/internal/notify"
	"hackathon-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionService handles mentor availability and session booking
type SessionService struct {
	repo        repository.SessionRepositoryInterface
	profileRepo repository.ProfileRepositoryInterface
	notifier    notify.Notifier
	log         *logger.Logger
	validator   *validator.Validate
}

// NewSessionService creates a new session service
func NewSessionService(repo repository.SessionRepositoryInterface, profileRepo repository.ProfileRepositoryInterface, notifier notify.Notifier, validator *validator.Validate) *SessionService {
	return &SessionService{
		repo:        repo,
		profileRepo: profileRepo,
		notifier:    notifier,
		log:         logger.New(),
		validator:   validator,
	}
}

// CreateTemplateRequest represents the request to create a weekly template
type CreateTemplateRequest struct {
	MentorID    uuid.UUID    `json:"mentor_id" validate:"required"`
	Weekday     time.Weekday `json:"weekday" validate:"min=0,max=6"`
	StartMinute int          `json:"start_minute" validate:"min=0,max=1439"`
	EndMinute   int          `json:"end_minute" validate:"min=1,max=1440"`
}

// BookSessionRequest represents the request to book a slot for a date
type BookSessionRequest struct {
	AvailabilityID uuid.UUID `json:"availability_id" validate:"required"`
	ProfileID      uuid.UUID `json:"profile_id" validate:"required"`
	BookingDate    string    `json:"booking_date" validate:"required"` // YYYY-MM-DD
}

// CreateTemplate creates a weekly availability template for a mentor and
// derives its bookable slot.
func (s *SessionService) CreateTemplate(req *CreateTemplateRequest) (*models.SessionTemplate, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.EndMinute <= req.StartMinute {
		return nil, apperrors.ErrTimeRangeInvalid
	}

	role, err := s.profileRepo.GetRole(req.MentorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to resolve role: %w", err)
	}
	if role != models.RoleMentor {
		return nil, apperrors.ErrNotAMentor
	}

	template := &models.SessionTemplate{
		MentorID:    req.MentorID,
		Weekday:     req.Weekday,
		StartMinute: req.StartMinute,
		EndMinute:   req.EndMinute,
	}
	if err := s.repo.CreateTemplate(template); err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}

	availability := &models.SessionAvailability{
		TemplateID:  template.ID,
		MentorID:    template.MentorID,
		Weekday:     template.Weekday,
		StartMinute: template.StartMinute,
		EndMinute:   template.EndMinute,
	}
	if err := s.repo.CreateAvailability(availability); err != nil {
		return nil, fmt.Errorf("failed to create availability: %w", err)
	}

	return template, nil
}

// ListTemplates retrieves a mentor's templates
func (s *SessionService) ListTemplates(mentorID uuid.UUID) ([]models.SessionTemplate, error) {
	templates, err := s.repo.ListTemplates(mentorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return templates, nil
}

// ListAvailabilities retrieves a mentor's bookable slots
func (s *SessionService) ListAvailabilities(mentorID uuid.UUID) ([]models.SessionAvailability, error) {
	availabilities, err := s.repo.ListAvailabilities(mentorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list availabilities: %w", err)
	}
	return availabilities, nil
}

// Book claims a slot for a concrete date. The date must fall on the
// slot's weekday, and each (slot, date) pair can be booked once.
func (s *SessionService) Book(req *BookSessionRequest) (*models.SessionBooking, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	date, err := time.Parse("2006-01-02", req.BookingDate)
	if err != nil {
		return nil, apperrors.NewValidationError("booking_date", "must be YYYY-MM-DD")
	}

	availability, err := s.repo.GetAvailabilityByID(req.AvailabilityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAvailabilityNotFound
		}
		return nil, fmt.Errorf("failed to get availability: %w", err)
	}

	if date.Weekday() != availability.Weekday {
		return nil, apperrors.ErrWeekdayMismatch
	}

	existing, err := s.repo.GetConfirmedBooking(req.AvailabilityID, date)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing booking: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrSlotTaken
	}

	booking := &models.SessionBooking{
		AvailabilityID: req.AvailabilityID,
		BookingDate:    date,
		ProfileID:      req.ProfileID,
		Status:         models.BookingStatusConfirmed,
	}
	if err := s.repo.CreateBooking(booking); err != nil {
		// The partial unique index catches a race between the check
		// above and the insert.
		return nil, apperrors.ErrSlotTaken
	}

	s.notifyBooking("session_booked", req.ProfileID, req.BookingDate)
	return booking, nil
}

// Cancel marks a booking cancelled, freeing the slot. Only the profile
// that made the booking may cancel it.
func (s *SessionService) Cancel(bookingID, profileID uuid.UUID) error {
	booking, err := s.repo.GetBookingByID(bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBookingNotFound
		}
		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ProfileID != profileID {
		return apperrors.ErrRoleForbidden
	}
	if booking.Status == models.BookingStatusCancelled {
		return nil
	}

	if err := s.repo.CancelBooking(bookingID); err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	s.notifyBooking("session_cancelled", profileID, booking.BookingDate.Format("2006-01-02"))
	return nil
}

// ListBookings retrieves all bookings made by a profile
func (s *SessionService) ListBookings(profileID uuid.UUID) ([]models.SessionBooking, error) {
	bookings, err := s.repo.ListBookingsByProfile(profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// ListMentorBookings retrieves all bookings against a mentor's slots
func (s *SessionService) ListMentorBookings(mentorID uuid.UUID) ([]models.SessionBooking, error) {
	bookings, err := s.repo.ListBookingsByMentor(mentorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list mentor bookings: %w", err)
	}
	return bookings, nil
}

func (s *SessionService) notifyBooking(template string, profileID uuid.UUID, date string) {
	if !s.notifier.Enabled() {
		return
	}
	profile, err := s.profileRepo.GetByID(profileID)
	if err != nil {
		s.log.WithError(err).Warn("profile lookup for notification failed")
		return
	}
	data := map[string]interface{}{
		"FullName":    profile.FullName,
		"BookingDate": date,
	}
	if err := s.notifier.Send(template, profile.Email, data); err != nil {
		s.log.WithError(err).WithField("email", profile.Email).Warn("booking notification failed")
	}
}
