package auth

import (
	"net/http"
	"time"

	"api/config"

	"github.com/gin-gonic/gin"
)

// Constants for error messages
const (
	ErrInvalidCredentials  = "Invalid credentials"
	ErrUserNotFound        = "User not found"
	ErrInvalidRole         = "Invalid role"
	ErrPhoneInUse          = "Phone already exists"
	ErrEmailInUse          = "Email already exists"
	ErrIdentifierRequired  = "Email or phone is required"
	ErrTooManyAttempts     = "Too many failed login attempts. Please try again later."
	ErrHashPasswordFailed  = "Failed to hash password"
	ErrUserCreateFailed    = "Failed to create user"
	ErrTokenGenerateFailed = "Failed to generate token"
	ErrInvalidExpiredToken = "Invalid or expired token"
)

// RegisterRequest model for registration. Email is optional; phone is
// the unique login identifier.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required"`
}

// LoginRequest model for login; phone or email plus password
type LoginRequest struct {
	Phone    string `json:"phone"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required"`
}

// AuthorizeResponse is the policy decision returned to the client route
// guard so both sides consult the same table
type AuthorizeResponse struct {
	Decision string `json:"decision"`
	Redirect string `json:"redirect,omitempty"`
}

// setCookieToken sets the session token as a secure HTTP-only cookie
func setCookieToken(c *gin.Context, token string) {
	maxAge := time.Duration(config.TokenExpiryHours) * time.Hour

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(
		"auth_token",          // name
		token,                 // value
		int(maxAge.Seconds()), // max age in seconds
		"/",                   // path
		"",                    // domain
		true,                  // secure (HTTPS only)
		true,                  // httpOnly (not accessible via JavaScript)
	)
}

// clearCookieToken removes the session cookie. The token itself stays
// valid until natural expiry; there is no revocation list.
func clearCookieToken(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("auth_token", "", -1, "/", "", true, true)
}
