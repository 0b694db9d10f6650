package participants

// Constants for error messages
const (
	ErrParticipantNotFound    = "Participant not found"
	ErrCompetitionNotFound    = "Competition not found"
	ErrUserNotFound           = "User not found"
	ErrDuplicateParticipant   = "User already has a participant entry"
	ErrRoleMismatch           = "Competition is not open to this user's role"
	ErrNoFiles                = "No files were uploaded"
	ErrNoPermissionView       = "User does not have permission to view this participant"
	ErrNoPermissionRegister   = "User does not have permission to register other users"
	ErrNoPermissionUpload     = "User does not have permission to upload for this participant"
	ErrNoPermissionScore      = "User does not have permission to score participants"
	ErrNoPermissionDelete     = "User does not have permission to delete this participant"
	ErrNoPermissionList       = "User does not have permission to list participants"
	ErrFailedFetchParticipant = "Failed to fetch participant"
	ErrFailedRegister         = "Failed to register participant"
	ErrFailedStoreUpload      = "Failed to store uploaded file"
	ErrMarksOutOfRange        = "Marks must be between 0 and 100"
)

// MaxUploadFileSize is the per-file submission limit
const MaxUploadFileSize = 20 << 20 // 20 MB

// uploadField is the multipart field carrying submission files
const uploadField = "competition_image"

// uploadDir is the relay directory for submission media
const uploadDir = "participants"

// RegisterRequest model for entering a competition. UserID lets an admin
// register somebody else; students always register themselves.
type RegisterRequest struct {
	CompetitionID string `json:"competition_id" binding:"required"`
	UserID        string `json:"user_id"`
}

// ScoreRequest model for setting a participant's total marks
type ScoreRequest struct {
	TotalMarks *float64 `json:"total_marks" binding:"required"`
}
