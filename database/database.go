package database

import (
	"fmt"
	"log"

	"api/config"
	"api/models"
	"api/utils"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB
var REDIS *redis.Client

var AdminPhone = "9999999999"
var DefaultPassword = "admin"

// InitDB initializes the database connection, migrates the models and
// populates the database with default values if needed
func InitDB() {
    dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=disable", config.PostgresHost, config.PostgresPort, config.PostgresUser, config.PostgresDB, config.PostgresPassword)

    var err error
    // TranslateError maps driver uniqueness violations onto
    // gorm.ErrDuplicatedKey so handlers can classify conflicts
    DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
    if err != nil {
        log.Fatal("failed to connect database: ", err)
    }

    err = DB.AutoMigrate(
        &models.Role{},
        &models.User{},
        &models.Competition{},
        &models.Participant{},
        &models.Prize{},
        &models.PasswordReset{},
    )
    if err != nil {
        log.Fatal("failed to migrate database: ", err)
    }

    Populate()

    REDIS = redis.NewClient(&redis.Options{
        Addr:     config.RedisAddr,
        Password: config.RedisPassword,
    })
}

// Populate populates the database with the three static roles and a
// default admin account if the database is empty
func Populate() {
    var countRole, countUser int64

    DB.Model(&models.Role{}).Count(&countRole)
    if countRole == 0 {
        for _, name := range []string{models.RoleAdmin, models.RoleSchoolStudent, models.RoleCollegeStudent} {
            DB.Create(&models.Role{Name: name})
            log.Println("Default role created: ", name)
        }
    }

    DB.Model(&models.User{}).Count(&countUser)
    if countUser == 0 {
        var adminRole models.Role
        if err := DB.Where("name = ?", models.RoleAdmin).First(&adminRole).Error; err != nil {
            log.Fatal("admin role missing after seeding: ", err)
        }

        // Default admin password comes from the .env file or the
        // DefaultPassword constant
        password := DefaultPassword
        if config.DefaultPassword != "" {
            password = config.DefaultPassword
        }

        password, err := utils.HashPassword(password)
        if err != nil {
            panic(err)
        }

        user := models.User{
            Name:     "Admin",
            Phone:    AdminPhone,
            Password: password,
            RoleID:   adminRole.ID,
        }
        DB.Create(&user)
        log.Println("Default user admin created")
    }
}
