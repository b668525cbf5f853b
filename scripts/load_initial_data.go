package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"hackathon-portal-backend/internal/config"
	"hackathon-portal-backend/internal/database"
	"hackathon-portal-backend/internal/database/models"
	"hackathon-portal-backend/internal/identity"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Seed file structures
type TechStackData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type InstitutionData struct {
	Name    string `yaml:"name"`
	Website string `yaml:"website"`
}

type AdminData struct {
	FullName string `yaml:"full_name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type SeedData struct {
	TechStacks   []TechStackData   `yaml:"tech_stacks"`
	Institutions []InstitutionData `yaml:"institutions"`
	Admins       []AdminData       `yaml:"admins"`
}

func main() {
	seedPath := "config/seed_data.yaml"
	if len(os.Args) > 1 {
		seedPath = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{
		LogLevel: gormlogger.Warn,
	})
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	raw, err := os.ReadFile(seedPath)
	if err != nil {
		log.Fatalf("Failed to read seed file %s: %v", seedPath, err)
	}

	var data SeedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		log.Fatalf("Failed to parse seed file: %v", err)
	}

	if err := loadTechStacks(db, data.TechStacks); err != nil {
		log.Fatalf("Failed to load tech stacks: %v", err)
	}
	if err := loadInstitutions(db, data.Institutions); err != nil {
		log.Fatalf("Failed to load institutions: %v", err)
	}
	if err := loadAdmins(db, cfg, data.Admins); err != nil {
		log.Fatalf("Failed to load admins: %v", err)
	}

	fmt.Println("Initial data loaded")
}

func loadTechStacks(db *gorm.DB, stacks []TechStackData) error {
	for _, s := range stacks {
		var existing models.TechnologyStack
		err := db.First(&existing, "name = ?", s.Name).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		stack := models.TechnologyStack{Name: s.Name, Description: s.Description}
		if err := db.Create(&stack).Error; err != nil {
			return err
		}
		fmt.Printf("Created tech stack %s\n", s.Name)
	}
	return nil
}

func loadInstitutions(db *gorm.DB, institutions []InstitutionData) error {
	for _, i := range institutions {
		var existing models.Institution
		err := db.First(&existing, "name = ?", i.Name).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		institution := models.Institution{Name: i.Name, Website: i.Website}
		if err := db.Create(&institution).Error; err != nil {
			return err
		}
		fmt.Printf("Created institution %s\n", i.Name)
	}
	return nil
}

func loadAdmins(db *gorm.DB, cfg *config.Config, admins []AdminData) error {
	provider := identity.NewLocalProvider(db, cfg.JWTSecret, cfg.JWTTTL())

	for _, a := range admins {
		var existing models.Profile
		err := db.First(&existing, "email = ?", a.Email).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := provider.Register(a.Email, a.Password); err != nil {
			return err
		}

		profile := models.Profile{
			FullName: a.FullName,
			Email:    a.Email,
			Status:   models.ProfileStatusApproved,
		}
		if err := db.Create(&profile).Error; err != nil {
			return err
		}

		role := models.RoleAssignment{ProfileID: profile.ID, Role: models.RoleAdmin}
		if err := db.Create(&role).Error; err != nil {
			return err
		}
		fmt.Printf("Created admin %s\n", a.Email)
	}
	return nil
}
