package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	RedisAddr     string
	RedisPassword string

	JWTSecret        string
	TokenExpiryHours int

	ClientUrl  string
	ServerPort string

	UploadDir string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool

	MailHost     string
	MailPort     string
	MailUsername string
	MailPassword string

	DefaultPassword string
)

// Load reads the .env file if present and fills the package globals from
// the environment. Call it once before anything touches the database.
func Load() {
    if err := godotenv.Load(); err != nil {
        log.Println("No .env file found, using environment variables")
    }

    PostgresHost = getEnv("POSTGRES_HOST", "localhost")
    PostgresPort = getEnv("POSTGRES_PORT", "5432")
    PostgresUser = getEnv("POSTGRES_USER", "postgres")
    PostgresPassword = getEnv("POSTGRES_PASSWORD", "postgres")
    PostgresDB = getEnv("POSTGRES_DB", "contests")

    RedisAddr = getEnv("REDIS_ADDR", "localhost:6379")
    RedisPassword = getEnv("REDIS_PASSWORD", "")

    JWTSecret = getEnv("JWT_SECRET", "")
    TokenExpiryHours = getEnvInt("TOKEN_EXPIRY_HOURS", 24)

    ClientUrl = getEnv("CLIENT_URL", "http://localhost:5173")
    ServerPort = getEnv("PORT", "8080")

    UploadDir = getEnv("UPLOAD_DIR", "uploads")

    MinioEndpoint = getEnv("MINIO_ENDPOINT", "")
    MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "")
    MinioSecretKey = getEnv("MINIO_SECRET_KEY", "")
    MinioBucket = getEnv("MINIO_BUCKET", "submissions")
    MinioUseSSL = getEnv("MINIO_USE_SSL", "false") == "true"

    MailHost = getEnv("MAIL_HOST", "")
    MailPort = getEnv("MAIL_PORT", "587")
    MailUsername = getEnv("MAIL_USERNAME", "")
    MailPassword = getEnv("MAIL_PASSWORD", "")

    DefaultPassword = getEnv("DEFAULT_PASSWORD", "")

    if JWTSecret == "" {
        log.Fatal("JWT_SECRET is required")
    }
}

func getEnv(key, fallback string) string {
    if value, ok := os.LookupEnv(key); ok && value != "" {
        return value
    }
    return fallback
}

func getEnvInt(key string, fallback int) int {
    if value, ok := os.LookupEnv(key); ok && value != "" {
        if n, err := strconv.Atoi(value); err == nil {
            return n
        }
        log.Printf("Invalid integer for %s, using default %d", key, fallback)
    }
    return fallback
}
