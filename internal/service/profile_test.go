package service_test

import (
	"testing"

	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/mocks"
	"hackathon-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ProfileServiceTestSuite defines the test suite for ProfileService
type ProfileServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockRepo            *mocks.MockProfileRepositoryInterface
	mockInstitutionRepo *mocks.MockInstitutionRepositoryInterface
	profileService      *service.ProfileService
}

// SetupTest sets up the test suite
func (suite *ProfileServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockProfileRepositoryInterface(suite.ctrl)
	suite.mockInstitutionRepo = mocks.NewMockInstitutionRepositoryInterface(suite.ctrl)

	suite.profileService = service.NewProfileService(
		suite.mockRepo,
		suite.mockInstitutionRepo,
		validator.New(),
	)
}

// TearDownTest cleans up after each test
func (suite *ProfileServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreate tests profile creation and completion-derived status
func (suite *ProfileServiceTestSuite) TestCreate() {
	suite.T().Run("Complete profile is pending approval", func(t *testing.T) {
		institutionID := uuid.New()
		req := &service.CreateProfileRequest{
			FullName:      "Alice Adams",
			Email:         "alice@test.local",
			Role:          models.RoleParticipant,
			GithubUser:    "alice",
			LinkedinID:    "alice-adams",
			InstitutionID: &institutionID,
		}

		suite.mockRepo.EXPECT().GetByEmail(req.Email).Return(nil, gorm.ErrRecordNotFound)
		suite.mockInstitutionRepo.EXPECT().GetByID(institutionID).Return(&models.Institution{}, nil)
		suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(profile *models.Profile) error {
			assert.Equal(t, models.ProfileStatusPendingApproval, profile.Status)
			profile.ID = uuid.New()
			return nil
		})
		suite.mockRepo.EXPECT().AssignRole(gomock.Any(), models.RoleParticipant).Return(nil)

		response, err := suite.profileService.Create(req)
		assert.NoError(t, err)
		assert.Equal(t, models.ProfileStatusPendingApproval, response.Status)
	})

	suite.T().Run("Missing optional fields leave it incomplete", func(t *testing.T) {
		req := &service.CreateProfileRequest{
			FullName: "Bob Brown",
			Email:    "bob@test.local",
			Role:     models.RoleParticipant,
		}

		suite.mockRepo.EXPECT().GetByEmail(req.Email).Return(nil, gorm.ErrRecordNotFound)
		suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(profile *models.Profile) error {
			assert.Equal(t, models.ProfileStatusIncomplete, profile.Status)
			profile.ID = uuid.New()
			return nil
		})
		suite.mockRepo.EXPECT().AssignRole(gomock.Any(), models.RoleParticipant).Return(nil)

		response, err := suite.profileService.Create(req)
		assert.NoError(t, err)
		assert.Equal(t, models.ProfileStatusIncomplete, response.Status)
	})

	suite.T().Run("Duplicate email", func(t *testing.T) {
		req := &service.CreateProfileRequest{
			FullName: "Copy Cat",
			Email:    "taken@test.local",
			Role:     models.RoleParticipant,
		}

		suite.mockRepo.EXPECT().GetByEmail(req.Email).Return(&models.Profile{}, nil)

		_, err := suite.profileService.Create(req)
		assert.ErrorIs(t, err, apperrors.ErrProfileExists)
	})

	suite.T().Run("Unknown institution", func(t *testing.T) {
		institutionID := uuid.New()
		req := &service.CreateProfileRequest{
			FullName:      "Campus Less",
			Email:         "campusless@test.local",
			Role:          models.RoleParticipant,
			InstitutionID: &institutionID,
		}

		suite.mockRepo.EXPECT().GetByEmail(req.Email).Return(nil, gorm.ErrRecordNotFound)
		suite.mockInstitutionRepo.EXPECT().GetByID(institutionID).Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.profileService.Create(req)
		assert.ErrorIs(t, err, apperrors.ErrInstitutionNotFound)
	})

	suite.T().Run("Validation error on bad email", func(t *testing.T) {
		req := &service.CreateProfileRequest{
			FullName: "Bad Email",
			Email:    "not-an-email",
			Role:     models.RoleParticipant,
		}

		_, err := suite.profileService.Create(req)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})
}

// TestUpdate tests field updates and status promotion
func (suite *ProfileServiceTestSuite) TestUpdate() {
	suite.T().Run("Completing the profile promotes it", func(t *testing.T) {
		profileID := uuid.New()
		institutionID := uuid.New()
		profile := &models.Profile{
			FullName:   "Alice Adams",
			Email:      "alice@test.local",
			GithubUser: "alice",
			Status:     models.ProfileStatusIncomplete,
		}
		profile.ID = profileID

		req := &service.UpdateProfileRequest{
			LinkedinID:    "alice-adams",
			InstitutionID: &institutionID,
		}

		suite.mockRepo.EXPECT().GetByID(profileID).Return(profile, nil)
		suite.mockInstitutionRepo.EXPECT().GetByID(institutionID).Return(&models.Institution{}, nil)
		suite.mockRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(updated *models.Profile) error {
			assert.Equal(t, models.ProfileStatusPendingApproval, updated.Status)
			return nil
		})

		response, err := suite.profileService.Update(profileID, req)
		assert.NoError(t, err)
		assert.Equal(t, models.ProfileStatusPendingApproval, response.Status)
	})

	suite.T().Run("Approved status is not recomputed", func(t *testing.T) {
		profileID := uuid.New()
		profile := &models.Profile{
			FullName: "Approved User",
			Email:    "approved@test.local",
			Status:   models.ProfileStatusApproved,
		}
		profile.ID = profileID

		req := &service.UpdateProfileRequest{FullName: "Approved Renamed"}

		suite.mockRepo.EXPECT().GetByID(profileID).Return(profile, nil)
		suite.mockRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(updated *models.Profile) error {
			assert.Equal(t, models.ProfileStatusApproved, updated.Status)
			assert.Equal(t, "Approved Renamed", updated.FullName)
			return nil
		})

		_, err := suite.profileService.Update(profileID, req)
		assert.NoError(t, err)
	})

	suite.T().Run("Profile not found", func(t *testing.T) {
		profileID := uuid.New()

		suite.mockRepo.EXPECT().GetByID(profileID).Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.profileService.Update(profileID, &service.UpdateProfileRequest{})
		assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
	})
}

// TestModeration tests approve and flag transitions
func (suite *ProfileServiceTestSuite) TestModeration() {
	suite.T().Run("Approve", func(t *testing.T) {
		profileID := uuid.New()

		suite.mockRepo.EXPECT().SetStatus(profileID, models.ProfileStatusApproved).Return(nil)

		err := suite.profileService.Approve(profileID)
		assert.NoError(t, err)
	})

	suite.T().Run("Flag", func(t *testing.T) {
		profileID := uuid.New()

		suite.mockRepo.EXPECT().SetStatus(profileID, models.ProfileStatusFlagged).Return(nil)

		err := suite.profileService.Flag(profileID)
		assert.NoError(t, err)
	})

	suite.T().Run("Approve unknown profile", func(t *testing.T) {
		profileID := uuid.New()

		suite.mockRepo.EXPECT().SetStatus(profileID, models.ProfileStatusApproved).Return(gorm.ErrRecordNotFound)

		err := suite.profileService.Approve(profileID)
		assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
	})
}

// TestList tests pagination and search dispatch
func (suite *ProfileServiceTestSuite) TestList() {
	suite.T().Run("Without query uses GetAll", func(t *testing.T) {
		profiles := []models.Profile{
			{FullName: "Alice Adams", Email: "alice@test.local"},
			{FullName: "Bob Brown", Email: "bob@test.local"},
		}

		suite.mockRepo.EXPECT().GetAll(20, 0).Return(profiles, int64(2), nil)

		response, err := suite.profileService.List("", 1, 20)
		assert.NoError(t, err)
		assert.Len(t, response.Profiles, 2)
		assert.Equal(t, int64(2), response.Total)
	})

	suite.T().Run("With query uses Search", func(t *testing.T) {
		profiles := []models.Profile{
			{FullName: "Alice Adams", Email: "alice@test.local"},
		}

		suite.mockRepo.EXPECT().Search("alice", 10, 10).Return(profiles, int64(1), nil)

		response, err := suite.profileService.List("alice", 2, 10)
		assert.NoError(t, err)
		assert.Len(t, response.Profiles, 1)
		assert.Equal(t, 2, response.Page)
	})

	suite.T().Run("Page size is clamped", func(t *testing.T) {
		suite.mockRepo.EXPECT().GetAll(20, 0).Return([]models.Profile{}, int64(0), nil)

		response, err := suite.profileService.List("", 0, 500)
		assert.NoError(t, err)
		assert.Equal(t, 20, response.PageSize)
		assert.Equal(t, 1, response.Page)
	})
}

// TestProfileServiceTestSuite runs the test suite
func TestProfileServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProfileServiceTestSuite))
}
