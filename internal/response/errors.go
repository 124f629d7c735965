package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrInvalidBody ErrCode = "INVALID_BODY"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound           ErrCode = "NOT_FOUND"
	ErrAssignmentNotFound ErrCode = "ASSIGNMENT_NOT_FOUND"

	// ─── Server ────────────────────────────────────────────────────────
	ErrStorageNotConfigured ErrCode = "STORAGE_NOT_CONFIGURED"
	ErrInternal             ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns the wire message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrInvalidBody:
		return "Invalid JSON body"
	case ErrNotFound:
		return "Not found"
	case ErrAssignmentNotFound:
		return "Assignment not found"
	case ErrStorageNotConfigured:
		return "Storage backend not configured: set REDIS_URL"
	case ErrInternal:
		return "Internal server error"
	default:
		return "Unexpected error"
	}
}
