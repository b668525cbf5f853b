package service_test

import (
	"context"
	"testing"
	"time"

	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/mocks"
	"hackathon-portal-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// JobWatcherTestSuite defines the test suite for JobWatcher
type JobWatcherTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockJobRepo *mocks.MockBulkUploadJobRepositoryInterface
	watcher     *service.JobWatcher
}

// SetupTest sets up the test suite
func (suite *JobWatcherTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockJobRepo = mocks.NewMockBulkUploadJobRepositoryInterface(suite.ctrl)
	suite.watcher = service.NewJobWatcher(suite.mockJobRepo, 10*time.Millisecond)
}

// TearDownTest cleans up after each test
func (suite *JobWatcherTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestWatchUnknownJob tests watching a job that does not exist
func (suite *JobWatcherTestSuite) TestWatchUnknownJob() {
	jobID := uuid.New()
	suite.mockJobRepo.EXPECT().GetByID(jobID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.watcher.Watch(context.Background(), jobID)
	suite.ErrorIs(err, apperrors.ErrJobNotFound)
}

// TestWatchEmitsFirstSnapshotImmediately tests that the current state is
// delivered without waiting for a poll tick
func (suite *JobWatcherTestSuite) TestWatchEmitsFirstSnapshotImmediately() {
	jobID := uuid.New()
	job := &models.BulkUploadJob{
		Status:           models.JobStatusProcessing,
		TotalRecords:     10,
		ProcessedRecords: 4,
	}
	job.ID = jobID

	done := &models.BulkUploadJob{
		Status:            models.JobStatusCompleted,
		TotalRecords:      10,
		ProcessedRecords:  10,
		SuccessfulRecords: 10,
	}
	done.ID = jobID

	gomock.InOrder(
		suite.mockJobRepo.EXPECT().GetByID(jobID).Return(job, nil),
		suite.mockJobRepo.EXPECT().GetByID(jobID).Return(done, nil),
	)

	snapshots, err := suite.watcher.Watch(context.Background(), jobID)
	suite.Require().NoError(err)

	first := <-snapshots
	suite.Equal(models.JobStatusProcessing, first.Status)
	suite.Equal(4, first.ProcessedRecords)

	second := <-snapshots
	suite.Equal(models.JobStatusCompleted, second.Status)
	suite.Equal(10, second.SuccessfulRecords)

	// The terminal snapshot closes the channel
	_, open := <-snapshots
	suite.False(open)
}

// TestWatchTerminalJobClosesImmediately tests that a finished job yields
// exactly one snapshot
func (suite *JobWatcherTestSuite) TestWatchTerminalJobClosesImmediately() {
	jobID := uuid.New()
	job := &models.BulkUploadJob{Status: models.JobStatusFailed, TotalRecords: 3}
	job.ID = jobID

	suite.mockJobRepo.EXPECT().GetByID(jobID).Return(job, nil)

	snapshots, err := suite.watcher.Watch(context.Background(), jobID)
	suite.Require().NoError(err)

	snapshot, open := <-snapshots
	suite.True(open)
	suite.Equal(models.JobStatusFailed, snapshot.Status)

	_, open = <-snapshots
	suite.False(open)
}

// TestWatchStopsOnContextCancel tests that cancellation closes the stream
func (suite *JobWatcherTestSuite) TestWatchStopsOnContextCancel() {
	jobID := uuid.New()
	job := &models.BulkUploadJob{Status: models.JobStatusProcessing, TotalRecords: 100}
	job.ID = jobID

	ctx, cancel := context.WithCancel(context.Background())

	suite.mockJobRepo.EXPECT().GetByID(jobID).Return(job, nil).MinTimes(1)

	snapshots, err := suite.watcher.Watch(ctx, jobID)
	suite.Require().NoError(err)

	<-snapshots
	cancel()

	// The channel must close shortly after cancellation
	deadline := time.After(time.Second)
	for {
		select {
		case _, open := <-snapshots:
			if !open {
				return
			}
		case <-deadline:
			suite.Fail("snapshot channel did not close after context cancellation")
			return
		}
	}
}

// TestWatchStopsOnPollError tests that a failing poll closes the stream
func (suite *JobWatcherTestSuite) TestWatchStopsOnPollError() {
	jobID := uuid.New()
	job := &models.BulkUploadJob{Status: models.JobStatusProcessing}
	job.ID = jobID

	gomock.InOrder(
		suite.mockJobRepo.EXPECT().GetByID(jobID).Return(job, nil),
		suite.mockJobRepo.EXPECT().GetByID(jobID).Return(nil, assert.AnError),
	)

	snapshots, err := suite.watcher.Watch(context.Background(), jobID)
	suite.Require().NoError(err)

	<-snapshots
	_, open := <-snapshots
	suite.False(open)
}

// TestJobWatcherTestSuite runs the test suite
func TestJobWatcherTestSuite(t *testing.T) {
	suite.Run(t, new(JobWatcherTestSuite))
}
