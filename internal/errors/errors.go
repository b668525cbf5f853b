package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this email"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrProfileNotFound      = &NotFoundError{Entity: "profile"}
	ErrTeamNotFound         = &NotFoundError{Entity: "team"}
	ErrInstitutionNotFound  = &NotFoundError{Entity: "institution"}
	ErrTechStackNotFound    = &NotFoundError{Entity: "technology stack"}
	ErrPreferenceNotFound   = &NotFoundError{Entity: "mentor preference"}
	ErrJobNotFound          = &NotFoundError{Entity: "bulk upload job"}
	ErrAvailabilityNotFound = &NotFoundError{Entity: "session availability"}
	ErrBookingNotFound      = &NotFoundError{Entity: "session booking"}
)

// Already Exists Errors
var (
	ErrProfileExists     = &AlreadyExistsError{Entity: "profile", Context: "with this email"}
	ErrEmailRegistered   = &AlreadyExistsError{Entity: "identity", Context: "with this email"}
	ErrTeamExists        = &AlreadyExistsError{Entity: "team", Context: "with this name"}
	ErrInstitutionExists = &AlreadyExistsError{Entity: "institution", Context: "with this name"}
	ErrTechStackExists   = &AlreadyExistsError{Entity: "technology stack", Context: "with this name"}
)

// Business Logic Errors
var (
	ErrTeamFull          = errors.New("team has reached the maximum number of members")
	ErrAlreadyInTeam     = errors.New("profile already belongs to a team")
	ErrNotTeamMember     = errors.New("profile is not a member of this team")
	ErrInvalidJoinCode   = errors.New("invalid join code")
	ErrNoEligibleMentor  = errors.New("no eligible mentor")
	ErrNotAMentor        = errors.New("profile does not have the mentor role")
	ErrSlotTaken         = errors.New("slot already booked for this date")
	ErrWeekdayMismatch   = errors.New("booking date does not fall on the availability weekday")
	ErrTimeRangeInvalid  = errors.New("availability end must be after start")
	ErrEmptyBatch        = errors.New("batch contains no records")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrRepoNotConfigured = errors.New("repository provisioning is not configured")
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid or expired token"}
	ErrRoleForbidden      = &AuthorizationError{Message: "role is not allowed to perform this action"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
