package service_test

import (
	"testing"

	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/identity"
	"hackathon-portal-backend/internal/mocks"
	"hackathon-portal-backend/internal/notify"
	"hackathon-portal-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// stubProvider is an in-memory identity provider for batch tests
type stubProvider struct {
	registered map[string]bool
}

func newStubProvider() *stubProvider {
	return &stubProvider{registered: map[string]bool{}}
}

func (p *stubProvider) Register(email, password string) error {
	if p.registered[email] {
		return apperrors.ErrEmailRegistered
	}
	p.registered[email] = true
	return nil
}

func (p *stubProvider) Authenticate(email, password string) (string, error) {
	return "", apperrors.ErrInvalidCredentials
}

func (p *stubProvider) Validate(token string) (*identity.Claims, error) {
	return nil, apperrors.ErrInvalidToken
}

// BulkUploadServiceTestSuite defines the test suite for BulkUploadService
type BulkUploadServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockJobRepo         *mocks.MockBulkUploadJobRepositoryInterface
	mockProfileRepo     *mocks.MockProfileRepositoryInterface
	mockInstitutionRepo *mocks.MockInstitutionRepositoryInterface
	mockPrefRepo        *mocks.MockMentorPreferenceRepositoryInterface
	provider            *stubProvider
	uploadService       *service.BulkUploadService
}

// SetupTest sets up the test suite
func (suite *BulkUploadServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockJobRepo = mocks.NewMockBulkUploadJobRepositoryInterface(suite.ctrl)
	suite.mockProfileRepo = mocks.NewMockProfileRepositoryInterface(suite.ctrl)
	suite.mockInstitutionRepo = mocks.NewMockInstitutionRepositoryInterface(suite.ctrl)
	suite.mockPrefRepo = mocks.NewMockMentorPreferenceRepositoryInterface(suite.ctrl)
	suite.provider = newStubProvider()

	notifier, err := notify.NewMailNotifier(notify.SMTPConfig{}, "")
	suite.Require().NoError(err)

	suite.uploadService = service.NewBulkUploadService(
		suite.mockJobRepo,
		suite.mockProfileRepo,
		suite.mockInstitutionRepo,
		suite.mockPrefRepo,
		suite.provider,
		notifier,
		&fixedRand{},
		2,
	)
}

// TearDownTest cleans up after each test
func (suite *BulkUploadServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestStart tests batch admission
func (suite *BulkUploadServiceTestSuite) TestStart() {
	suite.T().Run("Empty batch rejected", func(t *testing.T) {
		_, err := suite.uploadService.Start(models.BulkUploadParticipants, nil)
		assert.ErrorIs(t, err, apperrors.ErrEmptyBatch)
	})
}

// TestGetJob tests job retrieval
func (suite *BulkUploadServiceTestSuite) TestGetJob() {
	suite.T().Run("Not found", func(t *testing.T) {
		id := uuid.New()
		suite.mockJobRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.uploadService.GetJob(id)
		assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
	})

	suite.T().Run("Success", func(t *testing.T) {
		id := uuid.New()
		job := &models.BulkUploadJob{Status: models.JobStatusCompleted}
		job.ID = id
		suite.mockJobRepo.EXPECT().GetByID(id).Return(job, nil)

		got, err := suite.uploadService.GetJob(id)
		assert.NoError(t, err)
		assert.Equal(t, models.JobStatusCompleted, got.Status)
	})
}

// TestProcessParticipants tests per-row processing, counters and the error log.
// Process is called directly so the test stays synchronous.
func (suite *BulkUploadServiceTestSuite) TestProcessParticipants() {
	suite.T().Run("Counters always add up and failures never abort the batch", func(t *testing.T) {
		jobID := uuid.New()
		rows := []service.BulkUploadRow{
			{Email: "alice@test.local", FullName: "Alice"},
			{Email: "not-an-email", FullName: "Bob"},
			{Email: "carol@test.local", FullName: ""},
			{Email: "dave@test.local", FullName: "Dave"},
		}

		suite.mockJobRepo.EXPECT().SetStatus(jobID, models.JobStatusProcessing).Return(nil)

		// Two valid rows create profiles
		suite.mockProfileRepo.EXPECT().GetByEmail("alice@test.local").Return(nil, gorm.ErrRecordNotFound)
		suite.mockProfileRepo.EXPECT().GetByEmail("dave@test.local").Return(nil, gorm.ErrRecordNotFound)
		suite.mockProfileRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(2)
		suite.mockProfileRepo.EXPECT().AssignRole(gomock.Any(), models.RoleParticipant).Return(nil).Times(2)

		// Progress is persisted after every row; capture the counters
		type progress struct{ processed, successful, failed int }
		var seen []progress
		suite.mockJobRepo.EXPECT().
			UpdateProgress(jobID, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(id uuid.UUID, processed, successful, failed int, errorLog models.JobErrorLog) error {
				seen = append(seen, progress{processed, successful, failed})
				return nil
			}).
			Times(4)

		suite.mockJobRepo.EXPECT().
			Finish(jobID, models.JobStatusCompleted, gomock.Any()).
			DoAndReturn(func(id uuid.UUID, status models.JobStatus, errorLog models.JobErrorLog) error {
				assert.Len(t, errorLog, 2)
				assert.Equal(t, "not-an-email", errorLog[0].Email)
				assert.Equal(t, "carol@test.local", errorLog[1].Email)
				return nil
			})

		suite.uploadService.Process(jobID, models.BulkUploadParticipants, rows)

		assert.Len(t, seen, 4)
		for _, p := range seen {
			assert.Equal(t, p.processed, p.successful+p.failed)
		}
		assert.Equal(t, progress{4, 2, 2}, seen[3])
	})

	suite.T().Run("Duplicate email is a row failure", func(t *testing.T) {
		jobID := uuid.New()
		rows := []service.BulkUploadRow{
			{Email: "taken@test.local", FullName: "Taken"},
		}

		suite.mockJobRepo.EXPECT().SetStatus(jobID, models.JobStatusProcessing).Return(nil)
		suite.mockProfileRepo.EXPECT().GetByEmail("taken@test.local").Return(&models.Profile{}, nil)
		suite.mockJobRepo.EXPECT().
			UpdateProgress(jobID, 1, 0, 1, gomock.Any()).
			DoAndReturn(func(id uuid.UUID, processed, successful, failed int, errorLog models.JobErrorLog) error {
				assert.Equal(t, "email already registered", errorLog[0].Error)
				return nil
			})
		suite.mockJobRepo.EXPECT().Finish(jobID, models.JobStatusCompleted, gomock.Any()).Return(nil)

		suite.uploadService.Process(jobID, models.BulkUploadParticipants, rows)
	})

	suite.T().Run("Unknown institution name resolves to no institution", func(t *testing.T) {
		jobID := uuid.New()
		rows := []service.BulkUploadRow{
			{Email: "grace@test.local", FullName: "Grace", InstitutionName: "No Such College"},
		}

		suite.mockJobRepo.EXPECT().SetStatus(jobID, models.JobStatusProcessing).Return(nil)
		suite.mockProfileRepo.EXPECT().GetByEmail("grace@test.local").Return(nil, gorm.ErrRecordNotFound)
		suite.mockInstitutionRepo.EXPECT().GetByName("No Such College").Return(nil, gorm.ErrRecordNotFound)
		suite.mockProfileRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(profile *models.Profile) error {
			assert.Nil(t, profile.InstitutionID)
			return nil
		})
		suite.mockProfileRepo.EXPECT().AssignRole(gomock.Any(), models.RoleParticipant).Return(nil)
		suite.mockJobRepo.EXPECT().UpdateProgress(jobID, 1, 1, 0, gomock.Any()).Return(nil)
		suite.mockJobRepo.EXPECT().Finish(jobID, models.JobStatusCompleted, gomock.Any()).Return(nil)

		suite.uploadService.Process(jobID, models.BulkUploadParticipants, rows)
	})

	suite.T().Run("Credential already registered is a row failure", func(t *testing.T) {
		jobID := uuid.New()
		rows := []service.BulkUploadRow{
			{Email: "orphan@test.local", FullName: "Orphan"},
			{Email: "fresh@test.local", FullName: "Fresh"},
		}

		// A credential exists without a profile, so the profile check
		// passes but registration rejects the first row.
		suite.provider.registered["orphan@test.local"] = true

		suite.mockJobRepo.EXPECT().SetStatus(jobID, models.JobStatusProcessing).Return(nil)
		suite.mockProfileRepo.EXPECT().GetByEmail("orphan@test.local").Return(nil, gorm.ErrRecordNotFound)
		suite.mockProfileRepo.EXPECT().GetByEmail("fresh@test.local").Return(nil, gorm.ErrRecordNotFound)
		suite.mockProfileRepo.EXPECT().Create(gomock.Any()).Return(nil)
		suite.mockProfileRepo.EXPECT().AssignRole(gomock.Any(), models.RoleParticipant).Return(nil)

		var lastProcessed, lastSuccessful, lastFailed int
		suite.mockJobRepo.EXPECT().
			UpdateProgress(jobID, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(id uuid.UUID, processed, successful, failed int, errorLog models.JobErrorLog) error {
				lastProcessed, lastSuccessful, lastFailed = processed, successful, failed
				return nil
			}).
			Times(2)
		suite.mockJobRepo.EXPECT().
			Finish(jobID, models.JobStatusCompleted, gomock.Any()).
			DoAndReturn(func(id uuid.UUID, status models.JobStatus, errorLog models.JobErrorLog) error {
				assert.Len(t, errorLog, 1)
				assert.Equal(t, "orphan@test.local", errorLog[0].Email)
				assert.Equal(t, "email already registered", errorLog[0].Error)
				return nil
			})

		suite.uploadService.Process(jobID, models.BulkUploadParticipants, rows)

		assert.Equal(t, 2, lastProcessed)
		assert.Equal(t, 1, lastSuccessful)
		assert.Equal(t, 1, lastFailed)
	})

	suite.T().Run("Progress persistence failure fails the job", func(t *testing.T) {
		jobID := uuid.New()
		rows := []service.BulkUploadRow{
			{Email: "eve@test.local", FullName: "Eve"},
			{Email: "frank@test.local", FullName: "Frank"},
		}

		suite.mockJobRepo.EXPECT().SetStatus(jobID, models.JobStatusProcessing).Return(nil)
		suite.mockProfileRepo.EXPECT().GetByEmail("eve@test.local").Return(nil, gorm.ErrRecordNotFound)
		suite.mockProfileRepo.EXPECT().Create(gomock.Any()).Return(nil)
		suite.mockProfileRepo.EXPECT().AssignRole(gomock.Any(), models.RoleParticipant).Return(nil)
		suite.mockJobRepo.EXPECT().
			UpdateProgress(jobID, 1, 1, 0, gomock.Any()).
			Return(assert.AnError)
		suite.mockJobRepo.EXPECT().Finish(jobID, models.JobStatusFailed, gomock.Any()).Return(nil)

		suite.uploadService.Process(jobID, models.BulkUploadParticipants, rows)
	})
}

// TestProcessMentors tests the mentor-specific onboarding steps
func (suite *BulkUploadServiceTestSuite) TestProcessMentors() {
	suite.T().Run("Mentor rows create preferences", func(t *testing.T) {
		jobID := uuid.New()
		institutionID := uuid.New()
		rows := []service.BulkUploadRow{
			{Email: "mentor1@test.local", FullName: "Mentor One", InstitutionName: "Test University", TeamCount: 4},
			{Email: "mentor2@test.local", FullName: "Mentor Two"},
		}

		institution := &models.Institution{}
		institution.ID = institutionID

		suite.mockJobRepo.EXPECT().SetStatus(jobID, models.JobStatusProcessing).Return(nil)
		suite.mockProfileRepo.EXPECT().GetByEmail(gomock.Any()).Return(nil, gorm.ErrRecordNotFound).Times(2)
		suite.mockInstitutionRepo.EXPECT().GetByName("Test University").Return(institution, nil)
		suite.mockProfileRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(2)
		suite.mockProfileRepo.EXPECT().AssignRole(gomock.Any(), models.RoleMentor).Return(nil).Times(2)

		var capacities []int
		suite.mockPrefRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(pref *models.MentorPreference) error {
			capacities = append(capacities, pref.TeamCount)
			return nil
		}).Times(2)

		suite.mockJobRepo.EXPECT().UpdateProgress(jobID, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
		suite.mockJobRepo.EXPECT().Finish(jobID, models.JobStatusCompleted, gomock.Any()).Return(nil)

		suite.uploadService.Process(jobID, models.BulkUploadMentors, rows)

		// First row keeps its requested capacity, second falls back to the default
		assert.Equal(t, []int{4, 2}, capacities)
	})
}

// TestBulkUploadServiceTestSuite runs the test suite
func TestBulkUploadServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BulkUploadServiceTestSuite))
}
