package domain

import "errors"

// Определение бизнес-ошибок
var (
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrDepartmentNotFound   = errors.New("department not found")
	ErrTeamNotFound         = errors.New("team not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrOKRNotFound          = errors.New("okr not found")

	ErrForbidden = errors.New("access denied")

	ErrNoKeyResults      = errors.New("okr requires at least one key result")
	ErrEmptyKeyResult    = errors.New("key result description is required")
	ErrInvalidAssignment = errors.New("assignment must target exactly one of user or team")
	ErrAssigneeNotFound  = errors.New("assignment target not found")
	ErrInvalidDueDate    = errors.New("due date must be a valid RFC3339 timestamp")
	ErrEmptyCommentText  = errors.New("comment text is required")
	ErrInvalidStatus     = errors.New("invalid okr status")
	ErrInvalidPriority   = errors.New("invalid okr priority")
	ErrInvalidRole       = errors.New("invalid user role")
	ErrInvalidKeyResults = errors.New("key results must be an array of valid entries")
	ErrDuplicateEmail    = errors.New("user with this email already exists")
)
