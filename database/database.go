package database

import (
	"errors"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"lms/config"
	"lms/models"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes a connection to PostgreSQL
func ConnectDb() {
	cfg := config.AppConfig
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	RunMigrations(db)
	seedAptitudeCourses(db)
	seedAdminUser(db)

	Database = DbInstance{Db: db}
}

// RunMigrations performs database migrations
func RunMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Question{},
		&models.Enrollment{},
		&models.Mark{},
		&models.AptitudeScore{},
		&models.Certificate{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}

// seedAptitudeCourses creates the three canonical Aptitude courses once.
// They are never created through the catalog API.
func seedAptitudeCourses(db *gorm.DB) {
	seeds := []models.Course{
		{Title: "Logical Aptitude", Description: "Develop logical reasoning skills essential for aptitude tests", VideoURL: "/static/videos/logical.mp4", Category: models.CategoryAptitude, OrderIndex: 0},
		{Title: "Quantitative Aptitude", Description: "Master quantitative and mathematical problem-solving", VideoURL: "/static/videos/quantitative.mp4", Category: models.CategoryAptitude, OrderIndex: 1},
		{Title: "Communication Aptitude", Description: "Enhance verbal and communication abilities for assessments", VideoURL: "/static/videos/communication.mp4", Category: models.CategoryAptitude, OrderIndex: 2},
	}

	for _, seed := range seeds {
		var existing models.Course
		err := db.Where("category = ? AND title = ?", models.CategoryAptitude, seed.Title).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&seed).Error; err != nil {
				log.Printf("Error seeding aptitude course %q: %v", seed.Title, err)
			}
		}
	}
}

// seedAdminUser creates the configured administrator account if missing.
func seedAdminUser(db *gorm.DB) {
	cfg := config.AppConfig
	if cfg.AdminPassword == "" {
		return
	}

	var existing models.User
	err := db.Where("email = ?", cfg.AdminEmail).First(&existing).Error
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), cfg.SaltRound)
	if err != nil {
		log.Printf("Error hashing admin password: %v", err)
		return
	}

	admin := models.User{
		Name:     cfg.AdminName,
		Email:    cfg.AdminEmail,
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Error seeding admin user: %v", err)
		return
	}
	log.Printf("Seeded admin account %s", cfg.AdminEmail)
}
