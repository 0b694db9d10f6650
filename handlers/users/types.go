package users

// Constants for error messages
const (
	ErrUserNotFound         = "User not found"
	ErrRoleNotFound         = "Role not found"
	ErrPhoneInUse           = "Phone already exists"
	ErrEmailInUse           = "Email already exists"
	ErrFailedToHashPassword = "Failed to hash password"
	ErrFailedCreateUser     = "Failed to create user"
	ErrFailedUpdateUser     = "Failed to update user"
	ErrFailedDeleteUser     = "Failed to delete user"
	ErrFailedFetchUsers     = "Failed to fetch users"
	ErrFailedTxCommit       = "Failed to commit transaction"
)

// CreateUserRequest model for admin user creation
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required,min=8"`
	RoleID   string `json:"role_id" binding:"required"`
}

// UpdateUserRequest model for admin user updates; password is optional
// and re-hashed when present
type UpdateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password"`
	RoleID   string `json:"role_id" binding:"required"`
}

// ProfileUpdateRequest model for self-service profile updates
type ProfileUpdateRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
}

// PasswordUpdate model for changing the current user's password
type PasswordUpdate struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}
