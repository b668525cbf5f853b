package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/logger"
	"hackathon-portal-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JobSnapshot is one observation of a job's progress
type JobSnapshot struct {
	JobID             uuid.UUID          `json:"job_id"`
	Status            models.JobStatus   `json:"status"`
	TotalRecords      int                `json:"total_records"`
	ProcessedRecords  int                `json:"processed_records"`
	SuccessfulRecords int                `json:"successful_records"`
	FailedRecords     int                `json:"failed_records"`
	ErrorLog          models.JobErrorLog `json:"error_log,omitempty"`
	ObservedAt        time.Time          `json:"observed_at"`
}

// JobWatcher polls a job on an interval and streams snapshots until the
// job reaches a terminal status or the context is cancelled.
type JobWatcher struct {
	jobRepo  repository.BulkUploadJobRepositoryInterface
	interval time.Duration
	log      *logger.Logger
}

// NewJobWatcher creates a new job watcher
func NewJobWatcher(jobRepo repository.BulkUploadJobRepositoryInterface, interval time.Duration) *JobWatcher {
	if interval <= 0 {
		interval = time.Second
	}
	return &JobWatcher{
		jobRepo:  jobRepo,
		interval: interval,
		log:      logger.New(),
	}
}

// Watch streams snapshots of the job. The first snapshot is emitted
// immediately; the channel is closed after the terminal snapshot or
// when ctx is cancelled.
func (w *JobWatcher) Watch(ctx context.Context, jobID uuid.UUID) (<-chan JobSnapshot, error) {
	job, err := w.jobRepo.GetByID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	out := make(chan JobSnapshot, 1)
	out <- snapshot(job)
	if job.Status.IsTerminal() {
		close(out)
		return out, nil
	}

	go w.run(ctx, jobID, out)
	return out, nil
}

func (w *JobWatcher) run(ctx context.Context, jobID uuid.UUID, out chan<- JobSnapshot) {
	defer close(out)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			job, err := w.jobRepo.GetByID(jobID)
			if err != nil {
				w.log.WithError(err).WithField("job_id", jobID).Error("job poll failed")
				return
			}

			select {
			case out <- snapshot(job):
			case <-ctx.Done():
				return
			}

			if job.Status.IsTerminal() {
				return
			}
		}
	}
}

func snapshot(job *models.BulkUploadJob) JobSnapshot {
	return JobSnapshot{
		JobID:             job.ID,
		Status:            job.Status,
		TotalRecords:      job.TotalRecords,
		ProcessedRecords:  job.ProcessedRecords,
		SuccessfulRecords: job.SuccessfulRecords,
		FailedRecords:     job.FailedRecords,
		ErrorLog:          job.ErrorLog,
		ObservedAt:        time.Now(),
	}
}
