package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// BulkUploadKind distinguishes participant batches from mentor batches
type BulkUploadKind string

const (
	BulkUploadParticipants BulkUploadKind = "participants"
	BulkUploadMentors      BulkUploadKind = "mentors"
)

// JobStatus represents the state of a bulk upload job.
// Completed and failed are terminal.
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// IsTerminal reports whether no further status transition can occur
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// JobError is one failed row in a bulk upload error log
type JobError struct {
	Email string `json:"email"`
	Error string `json:"error"`
}

// JobErrorLog is the jsonb-backed error log column
type JobErrorLog []JobError

// Value implements driver.Valuer for jsonb storage
func (l JobErrorLog) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for jsonb storage
func (l *JobErrorLog) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type for JobErrorLog: %T", value)
	}
}

// BulkUploadJob tracks one batch onboarding run with live progress counters
type BulkUploadJob struct {
	BaseModel
	Kind              BulkUploadKind `json:"kind" gorm:"type:varchar(20);not null"`
	Status            JobStatus      `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	TotalRecords      int            `json:"total_records" gorm:"not null;default:0"`
	ProcessedRecords  int            `json:"processed_records" gorm:"not null;default:0"`
	SuccessfulRecords int            `json:"successful_records" gorm:"not null;default:0"`
	FailedRecords     int            `json:"failed_records" gorm:"not null;default:0"`
	ErrorLog          JobErrorLog    `json:"error_log" gorm:"type:jsonb"`
}

// TableName returns the table name for BulkUploadJob
func (BulkUploadJob) TableName() string {
	return "bulk_upload_jobs"
}
