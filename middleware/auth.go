package middleware

import (
	"api/config"
	"api/database"
	"api/metrics"
	"api/models"
	"api/utils/response"
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// UserCacheKeyPrefix prefixes the redis key caching the verified user
// record for a session. Profile and password handlers invalidate it.
const UserCacheKeyPrefix = "user:session:"

const userCacheTTL = 15 * time.Minute

var ErrNoSession = errors.New("no valid session")

// GenerateToken issues a signed, time-limited session token carrying the
// user id and role id.
func GenerateToken(user models.User) (string, error) {
    claims := jwt.MapClaims{
        "user_id": user.ID,
        "role_id": user.RoleID,
        "exp":     time.Now().Add(time.Duration(config.TokenExpiryHours) * time.Hour).Unix(),
    }
    token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    return token.SignedString([]byte(config.JWTSecret))
}

// extractToken reads the session token from the auth cookie, falling
// back to a bearer Authorization header.
func extractToken(c *gin.Context) string {
    if cookie, err := c.Cookie("auth_token"); err == nil && cookie != "" {
        return cookie
    }
    header := c.GetHeader("Authorization")
    if strings.HasPrefix(header, "Bearer ") {
        return strings.TrimPrefix(header, "Bearer ")
    }
    return ""
}

// parseToken validates the signature and expiry and returns the user id.
func parseToken(tokenString string) (string, error) {
    token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, errors.New("unexpected signing method")
        }
        return []byte(config.JWTSecret), nil
    })
    if err != nil || !token.Valid {
        return "", ErrNoSession
    }

    claims, ok := token.Claims.(jwt.MapClaims)
    if !ok {
        return "", ErrNoSession
    }
    userID, _ := claims["user_id"].(string)
    if userID == "" {
        return "", ErrNoSession
    }
    return userID, nil
}

// loadUser fetches the user with its role, going through the redis
// session cache when available.
func loadUser(ctx context.Context, userID string) (models.User, error) {
    var user models.User

    cacheKey := UserCacheKeyPrefix + userID
    if database.REDIS != nil {
        if cached, err := database.REDIS.Get(ctx, cacheKey).Result(); err == nil {
            if err := json.Unmarshal([]byte(cached), &user); err == nil {
                metrics.CacheHits.Inc()
                return user, nil
            }
        }
        metrics.CacheMisses.Inc()
    }

    if err := database.DB.Preload("Role").First(&user, "id = ?", userID).Error; err != nil {
        return user, err
    }

    if database.REDIS != nil {
        if payload, err := json.Marshal(user); err == nil {
            if err := database.REDIS.Set(ctx, cacheKey, payload, userCacheTTL).Err(); err != nil {
                log.Printf("Failed to cache user session: %v", err)
            }
        }
    }

    return user, nil
}

// InvalidateUserCache drops the cached session record after a profile or
// password change.
func InvalidateUserCache(ctx context.Context, userID string) {
    if database.REDIS == nil {
        return
    }
    if err := database.REDIS.Del(ctx, UserCacheKeyPrefix+userID).Err(); err != nil {
        log.Printf("Failed to invalidate user session cache: %v", err)
    }
}

// TryGetUser resolves the caller from the request without writing a
// response. Returns ErrNoSession when there is no valid token.
func TryGetUser(c *gin.Context) (models.User, error) {
    tokenString := extractToken(c)
    if tokenString == "" {
        return models.User{}, ErrNoSession
    }

    userID, err := parseToken(tokenString)
    if err != nil {
        return models.User{}, err
    }

    user, err := loadUser(c.Request.Context(), userID)
    if err != nil {
        return models.User{}, ErrNoSession
    }
    return user, nil
}

// GetUserFromRequest resolves the authenticated user or responds 401.
// Handlers just return when err != nil; the response is already written.
func GetUserFromRequest(c *gin.Context) (models.User, error) {
    user, err := TryGetUser(c)
    if err != nil {
        response.Error(c, http.StatusUnauthorized, "Invalid or expired token")
        c.Abort()
        return models.User{}, err
    }
    return user, nil
}

// IsAdmin reports whether the user carries the admin role.
func IsAdmin(user models.User) bool {
    return user.Role != nil && user.Role.Name == models.RoleAdmin
}
