package auth

import (
	"api/config"
	"api/database"
	"api/middleware"
	"api/models"
	"api/utils"
	"api/utils/access"
	"api/utils/response"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var loginLimiter = middleware.NewLoginLimiter(config.DefaultLoginRateLimitConfig)

// Register creates a new user account
// @Summary Register a new user
// @Description Register a new user with a phone number, an optional email and a role
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /auth/register [post]
func Register(c *gin.Context) {
    var req RegisterRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    // Validate role name against the seeded roles
    var role models.Role
    if err := database.DB.Where("name = ?", req.Role).First(&role).Error; err != nil {
        response.Error(c, http.StatusBadRequest, ErrInvalidRole)
        return
    }

    // Phone is globally unique; email only when provided
    var count int64
    database.DB.Model(&models.User{}).Where("phone = ?", req.Phone).Count(&count)
    if count > 0 {
        response.Error(c, http.StatusBadRequest, ErrPhoneInUse)
        return
    }
    if req.Email != "" {
        database.DB.Model(&models.User{}).Where("email = ?", req.Email).Count(&count)
        if count > 0 {
            response.Error(c, http.StatusBadRequest, ErrEmailInUse)
            return
        }
    }

    hashedPassword, err := utils.HashPassword(req.Password)
    if err != nil {
        response.Error(c, http.StatusInternalServerError, ErrHashPasswordFailed)
        return
    }

    user := models.User{
        Name:     req.Name,
        Phone:    req.Phone,
        Password: hashedPassword,
        RoleID:   role.ID,
    }
    if req.Email != "" {
        user.Email = &req.Email
    }

    if err := database.DB.Create(&user).Error; err != nil {
        // The unique indexes catch concurrent duplicate registrations
        // that slipped past the checks above
        if errors.Is(err, gorm.ErrDuplicatedKey) {
            response.Error(c, http.StatusBadRequest, ErrPhoneInUse)
            return
        }
        response.Error(c, http.StatusInternalServerError, ErrUserCreateFailed)
        return
    }

    if err := database.DB.Preload("Role").First(&user, "id = ?", user.ID).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrUserCreateFailed)
        return
    }
    user.Password = ""

    c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully", "user": user})
}

// Login checks credentials and issues a session cookie
// @Summary Log in
// @Description Check credentials (phone or email plus password) and set the session cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /auth/login [post]
func Login(c *gin.Context) {
    var req LoginRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    identifier := req.Phone
    if identifier == "" {
        identifier = req.Email
    }
    if identifier == "" {
        response.Error(c, http.StatusBadRequest, ErrIdentifierRequired)
        return
    }

    if loginLimiter.Blocked(identifier) {
        response.Error(c, http.StatusTooManyRequests, ErrTooManyAttempts)
        return
    }

    query := database.DB.Preload("Role")
    if req.Phone != "" {
        query = query.Where("phone = ?", req.Phone)
    } else {
        query = query.Where("email = ?", req.Email)
    }

    var user models.User
    if err := query.First(&user).Error; err != nil {
        response.Error(c, http.StatusNotFound, ErrUserNotFound)
        return
    }

    if !utils.CheckPasswordHash(req.Password, user.Password) {
        loginLimiter.RecordFailure(identifier)
        response.Error(c, http.StatusBadRequest, ErrInvalidCredentials)
        return
    }
    loginLimiter.RecordSuccess(identifier)

    token, err := middleware.GenerateToken(user)
    if err != nil {
        response.Error(c, http.StatusInternalServerError, ErrTokenGenerateFailed)
        return
    }

    setCookieToken(c, token)
    user.Password = ""

    c.JSON(http.StatusOK, gin.H{"message": "Login successful", "user": user})
}

// Logout clears the session cookie
// @Summary Log out
// @Description Clear the session cookie. The token stays valid until expiry.
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
    clearCookieToken(c)
    c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// UserInfo returns the authenticated user with its role
// @Summary Current user info
// @Description Get the authenticated user's record including the role
// @Tags Auth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string
// @Router /auth/user-info [get]
// @Security Bearer
func UserInfo(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return // Error already handled by middleware
    }

    user.Password = ""
    c.JSON(http.StatusOK, user)
}

// Authorize evaluates the caller against a route tag
// @Summary Evaluate route access
// @Description Evaluate the caller's session against a route tag using the shared policy table. The client route guard consults this instead of keeping its own copy of the rules.
// @Tags Auth
// @Produce json
// @Param tag query string true "Route tag (public, login, or a role name)"
// @Success 200 {object} AuthorizeResponse
// @Router /auth/authorize [get]
func Authorize(c *gin.Context) {
    tag := access.Tag(c.Query("tag"))

    role := ""
    if user, err := middleware.TryGetUser(c); err == nil && user.Role != nil {
        role = user.Role.Name
    }

    decision := access.Evaluate(role, tag)

    resp := AuthorizeResponse{Decision: decision.String()}
    switch decision {
    case access.RedirectLogin:
        resp.Redirect = "/login"
    case access.RedirectDashboard:
        resp.Redirect = access.DashboardPath(role)
    }

    c.JSON(http.StatusOK, resp)
}
