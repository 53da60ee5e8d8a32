package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"property-portal-backend/internal/config"
	"property-portal-backend/internal/database"
	"property-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type TeamData struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
}

type UserData struct {
	TeamName  string `yaml:"team_name"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Email     string `yaml:"email"`
	Phone     string `yaml:"phone,omitempty"`
	Role      string `yaml:"role"`
	IsActive  bool   `yaml:"is_active"`
}

type BuildingData struct {
	TeamName string    `yaml:"team_name"`
	Name     string    `yaml:"name"`
	Address  string    `yaml:"address"`
	City     string    `yaml:"city,omitempty"`
	ZipCode  string    `yaml:"zip_code,omitempty"`
	Lots     []LotData `yaml:"lots,omitempty"`
}

type LotData struct {
	Reference   string `yaml:"reference"`
	Floor       int    `yaml:"floor"`
	TenantEmail string `yaml:"tenant_email,omitempty"`
}

// File structures
type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type BuildingsFile struct {
	Buildings []BuildingData `yaml:"buildings"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	teams, err := loadTeams(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}

	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	buildings, err := loadBuildings(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load buildings: %w", err)
	}

	// Create teams first
	teamMap := make(map[string]*models.Team)
	teamCreated := 0
	for _, teamData := range teams {
		team, created, err := createTeam(db, teamData)
		if err != nil {
			return fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
		}
		teamMap[teamData.Name] = team
		if created {
			teamCreated++
		}
	}
	log.Printf("📋 Teams: %d created, %d total", teamCreated, len(teams))

	// Create users
	userMap := make(map[string]*models.User)
	userCreated := 0
	for _, userData := range users {
		user, created, err := createUser(db, userData, teamMap)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		userMap[userData.Email] = user
		if created {
			userCreated++
		}
	}
	log.Printf("📋 Users: %d created, %d total", userCreated, len(users))

	// Create buildings with their lots
	buildingCreated := 0
	for _, buildingData := range buildings {
		_, created, err := createBuilding(db, buildingData, teamMap, userMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create building %s: %v", buildingData.Name, err)
			continue // Continue with other buildings
		}
		if created {
			buildingCreated++
		}
	}
	log.Printf("📋 Buildings: %d created, %d total", buildingCreated, len(buildings))

	return nil
}

func loadTeams(dataDir string) ([]TeamData, error) {
	var allTeams []TeamData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "teams") {
			var file TeamsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTeams = append(allTeams, file.Teams...)
		}
		return nil
	})

	return allTeams, err
}

func loadUsers(dataDir string) ([]UserData, error) {
	var allUsers []UserData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "users") {
			var file UsersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allUsers = append(allUsers, file.Users...)
		}
		return nil
	})

	return allUsers, err
}

func loadBuildings(dataDir string) ([]BuildingData, error) {
	var allBuildings []BuildingData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "buildings") {
			var file BuildingsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allBuildings = append(allBuildings, file.Buildings...)
		}
		return nil
	})

	return allBuildings, err
}

func createTeam(db *gorm.DB, teamData TeamData) (*models.Team, bool, error) {
	var team models.Team
	if err := db.Where("name = ?", teamData.Name).First(&team).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			team = models.Team{
				Name:    teamData.Name,
				Address: teamData.Address,
			}

			if err := db.Create(&team).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create team: %w", err)
			}
			return &team, true, nil // created = true
		}
		return nil, false, fmt.Errorf("failed to query team: %w", err)
	}

	return &team, false, nil // created = false (existing)
}

func createUser(db *gorm.DB, userData UserData, teamMap map[string]*models.Team) (*models.User, bool, error) {
	var teamID *uuid.UUID
	if userData.TeamName != "" {
		team := teamMap[userData.TeamName]
		if team == nil {
			return nil, false, fmt.Errorf("team %s not found for user %s", userData.TeamName, userData.Email)
		}
		teamID = &team.ID
	}

	role := models.UserRole(userData.Role)
	if !role.IsValid() {
		return nil, false, fmt.Errorf("unknown role %q for user %s", userData.Role, userData.Email)
	}

	var user models.User
	if err := db.Where("email = ?", userData.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			user = models.User{
				TeamID:    teamID,
				FirstName: userData.FirstName,
				LastName:  userData.LastName,
				Email:     userData.Email,
				Phone:     userData.Phone,
				Role:      role,
				IsActive:  userData.IsActive,
			}

			if err := db.Create(&user).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create user: %w", err)
			}
			return &user, true, nil // created = true
		}
		return nil, false, fmt.Errorf("failed to query user: %w", err)
	}

	return &user, false, nil // created = false (existing)
}

func createBuilding(db *gorm.DB, buildingData BuildingData, teamMap map[string]*models.Team, userMap map[string]*models.User) (*models.Building, bool, error) {
	team := teamMap[buildingData.TeamName]
	if team == nil {
		return nil, false, fmt.Errorf("team %s not found for building %s", buildingData.TeamName, buildingData.Name)
	}

	var building models.Building
	if err := db.Where("name = ? AND team_id = ?", buildingData.Name, team.ID).First(&building).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			building = models.Building{
				TeamID:  team.ID,
				Name:    buildingData.Name,
				Address: buildingData.Address,
				City:    buildingData.City,
				ZipCode: buildingData.ZipCode,
			}

			if err := db.Create(&building).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create building: %w", err)
			}

			for _, lotData := range buildingData.Lots {
				var tenantID *uuid.UUID
				if lotData.TenantEmail != "" {
					if tenant := userMap[lotData.TenantEmail]; tenant != nil {
						tenantID = &tenant.ID
					} else {
						log.Printf("⚠️  Warning: tenant %s not found for lot %s", lotData.TenantEmail, lotData.Reference)
					}
				}
				lot := models.Lot{
					BuildingID: building.ID,
					Reference:  lotData.Reference,
					Floor:      lotData.Floor,
					TenantID:   tenantID,
				}
				if err := db.Create(&lot).Error; err != nil {
					log.Printf("⚠️  Warning: failed to create lot %s: %v", lotData.Reference, err)
				}
			}

			return &building, true, nil // created = true
		}
		return nil, false, fmt.Errorf("failed to query building: %w", err)
	}

	return &building, false, nil // created = false (existing)
}
