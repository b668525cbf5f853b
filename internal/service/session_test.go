package service_test

import (
	"testing"
	"time"

	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/mocks"
	"hackathon-portal-backend/internal/notify"
	"hackathon-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// SessionServiceTestSuite defines the test suite for SessionService
type SessionServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockSessionRepo *mocks.MockSessionRepositoryInterface
	mockProfileRepo *mocks.MockProfileRepositoryInterface
	sessionService  *service.SessionService
}

// SetupTest sets up the test suite
func (suite *SessionServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSessionRepo = mocks.NewMockSessionRepositoryInterface(suite.ctrl)
	suite.mockProfileRepo = mocks.NewMockProfileRepositoryInterface(suite.ctrl)

	notifier, err := notify.NewMailNotifier(notify.SMTPConfig{}, "")
	suite.Require().NoError(err)

	suite.sessionService = service.NewSessionService(
		suite.mockSessionRepo,
		suite.mockProfileRepo,
		notifier,
		validator.New(),
	)
}

// TearDownTest cleans up after each test
func (suite *SessionServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateTemplate tests template creation and slot derivation
func (suite *SessionServiceTestSuite) TestCreateTemplate() {
	suite.T().Run("Success derives an availability", func(t *testing.T) {
		mentorID := uuid.New()
		req := &service.CreateTemplateRequest{
			MentorID:    mentorID,
			Weekday:     time.Tuesday,
			StartMinute: 540,
			EndMinute:   600,
		}

		suite.mockProfileRepo.EXPECT().GetRole(mentorID).Return(models.RoleMentor, nil)
		suite.mockSessionRepo.EXPECT().CreateTemplate(gomock.Any()).DoAndReturn(func(template *models.SessionTemplate) error {
			template.ID = uuid.New()
			return nil
		})
		suite.mockSessionRepo.EXPECT().CreateAvailability(gomock.Any()).DoAndReturn(func(availability *models.SessionAvailability) error {
			assert.Equal(t, mentorID, availability.MentorID)
			assert.Equal(t, time.Tuesday, availability.Weekday)
			assert.Equal(t, 540, availability.StartMinute)
			assert.Equal(t, 600, availability.EndMinute)
			return nil
		})

		template, err := suite.sessionService.CreateTemplate(req)
		assert.NoError(t, err)
		assert.Equal(t, mentorID, template.MentorID)
	})

	suite.T().Run("End before start", func(t *testing.T) {
		req := &service.CreateTemplateRequest{
			MentorID:    uuid.New(),
			Weekday:     time.Tuesday,
			StartMinute: 600,
			EndMinute:   540,
		}

		_, err := suite.sessionService.CreateTemplate(req)
		assert.ErrorIs(t, err, apperrors.ErrTimeRangeInvalid)
	})

	suite.T().Run("Creator is not a mentor", func(t *testing.T) {
		mentorID := uuid.New()
		req := &service.CreateTemplateRequest{
			MentorID:    mentorID,
			Weekday:     time.Tuesday,
			StartMinute: 540,
			EndMinute:   600,
		}

		suite.mockProfileRepo.EXPECT().GetRole(mentorID).Return(models.RoleParticipant, nil)

		_, err := suite.sessionService.CreateTemplate(req)
		assert.ErrorIs(t, err, apperrors.ErrNotAMentor)
	})
}

// TestBook tests slot claiming
func (suite *SessionServiceTestSuite) TestBook() {
	suite.T().Run("Success", func(t *testing.T) {
		availabilityID := uuid.New()
		profileID := uuid.New()
		// 2026-09-02 is a Wednesday
		availability := &models.SessionAvailability{Weekday: time.Wednesday}
		availability.ID = availabilityID

		req := &service.BookSessionRequest{
			AvailabilityID: availabilityID,
			ProfileID:      profileID,
			BookingDate:    "2026-09-02",
		}

		suite.mockSessionRepo.EXPECT().GetAvailabilityByID(availabilityID).Return(availability, nil)
		suite.mockSessionRepo.EXPECT().GetConfirmedBooking(availabilityID, gomock.Any()).Return(nil, gorm.ErrRecordNotFound)
		suite.mockSessionRepo.EXPECT().CreateBooking(gomock.Any()).DoAndReturn(func(booking *models.SessionBooking) error {
			assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
			assert.Equal(t, profileID, booking.ProfileID)
			return nil
		})

		booking, err := suite.sessionService.Book(req)
		assert.NoError(t, err)
		assert.Equal(t, availabilityID, booking.AvailabilityID)
	})

	suite.T().Run("Weekday mismatch", func(t *testing.T) {
		availabilityID := uuid.New()
		availability := &models.SessionAvailability{Weekday: time.Monday}
		availability.ID = availabilityID

		req := &service.BookSessionRequest{
			AvailabilityID: availabilityID,
			ProfileID:      uuid.New(),
			BookingDate:    "2026-09-02",
		}

		suite.mockSessionRepo.EXPECT().GetAvailabilityByID(availabilityID).Return(availability, nil)

		_, err := suite.sessionService.Book(req)
		assert.ErrorIs(t, err, apperrors.ErrWeekdayMismatch)
	})

	suite.T().Run("Slot already taken", func(t *testing.T) {
		availabilityID := uuid.New()
		availability := &models.SessionAvailability{Weekday: time.Wednesday}
		availability.ID = availabilityID

		req := &service.BookSessionRequest{
			AvailabilityID: availabilityID,
			ProfileID:      uuid.New(),
			BookingDate:    "2026-09-02",
		}

		suite.mockSessionRepo.EXPECT().GetAvailabilityByID(availabilityID).Return(availability, nil)
		suite.mockSessionRepo.EXPECT().GetConfirmedBooking(availabilityID, gomock.Any()).Return(&models.SessionBooking{}, nil)

		_, err := suite.sessionService.Book(req)
		assert.ErrorIs(t, err, apperrors.ErrSlotTaken)
	})

	suite.T().Run("Insert race maps to slot taken", func(t *testing.T) {
		availabilityID := uuid.New()
		availability := &models.SessionAvailability{Weekday: time.Wednesday}
		availability.ID = availabilityID

		req := &service.BookSessionRequest{
			AvailabilityID: availabilityID,
			ProfileID:      uuid.New(),
			BookingDate:    "2026-09-02",
		}

		suite.mockSessionRepo.EXPECT().GetAvailabilityByID(availabilityID).Return(availability, nil)
		suite.mockSessionRepo.EXPECT().GetConfirmedBooking(availabilityID, gomock.Any()).Return(nil, gorm.ErrRecordNotFound)
		suite.mockSessionRepo.EXPECT().CreateBooking(gomock.Any()).Return(assert.AnError)

		_, err := suite.sessionService.Book(req)
		assert.ErrorIs(t, err, apperrors.ErrSlotTaken)
	})

	suite.T().Run("Malformed date", func(t *testing.T) {
		req := &service.BookSessionRequest{
			AvailabilityID: uuid.New(),
			ProfileID:      uuid.New(),
			BookingDate:    "02/09/2026",
		}

		_, err := suite.sessionService.Book(req)
		assert.True(t, apperrors.IsValidation(err))
	})

	suite.T().Run("Availability not found", func(t *testing.T) {
		availabilityID := uuid.New()

		req := &service.BookSessionRequest{
			AvailabilityID: availabilityID,
			ProfileID:      uuid.New(),
			BookingDate:    "2026-09-02",
		}

		suite.mockSessionRepo.EXPECT().GetAvailabilityByID(availabilityID).Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.sessionService.Book(req)
		assert.ErrorIs(t, err, apperrors.ErrAvailabilityNotFound)
	})
}

// TestCancel tests cancellation and ownership
func (suite *SessionServiceTestSuite) TestCancel() {
	suite.T().Run("Owner can cancel", func(t *testing.T) {
		bookingID := uuid.New()
		profileID := uuid.New()
		booking := &models.SessionBooking{ProfileID: profileID, Status: models.BookingStatusConfirmed}
		booking.ID = bookingID

		suite.mockSessionRepo.EXPECT().GetBookingByID(bookingID).Return(booking, nil)
		suite.mockSessionRepo.EXPECT().CancelBooking(bookingID).Return(nil)

		err := suite.sessionService.Cancel(bookingID, profileID)
		assert.NoError(t, err)
	})

	suite.T().Run("Only the owner can cancel", func(t *testing.T) {
		bookingID := uuid.New()
		booking := &models.SessionBooking{ProfileID: uuid.New(), Status: models.BookingStatusConfirmed}
		booking.ID = bookingID

		suite.mockSessionRepo.EXPECT().GetBookingByID(bookingID).Return(booking, nil)

		err := suite.sessionService.Cancel(bookingID, uuid.New())
		assert.ErrorIs(t, err, apperrors.ErrRoleForbidden)
	})

	suite.T().Run("Cancelling twice is a no-op", func(t *testing.T) {
		bookingID := uuid.New()
		profileID := uuid.New()
		booking := &models.SessionBooking{ProfileID: profileID, Status: models.BookingStatusCancelled}
		booking.ID = bookingID

		suite.mockSessionRepo.EXPECT().GetBookingByID(bookingID).Return(booking, nil)

		err := suite.sessionService.Cancel(bookingID, profileID)
		assert.NoError(t, err)
	})

	suite.T().Run("Booking not found", func(t *testing.T) {
		bookingID := uuid.New()

		suite.mockSessionRepo.EXPECT().GetBookingByID(bookingID).Return(nil, gorm.ErrRecordNotFound)

		err := suite.sessionService.Cancel(bookingID, uuid.New())
		assert.ErrorIs(t, err, apperrors.ErrBookingNotFound)
	})
}

// TestSessionServiceTestSuite runs the test suite
func TestSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}
