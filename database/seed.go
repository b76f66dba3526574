package database

import (
	"log"

	"github.com/taskboard-simple/config"
	"github.com/taskboard-simple/models"
	"golang.org/x/crypto/bcrypt"
)

// SeedDemoUsers creates the demo admin and employee accounts when enabled.
// Controlled by SEED_DEMO_USERS so production deployments never get the
// well-known credentials by accident.
func SeedDemoUsers() error {
	if config.GetEnv("SEED_DEMO_USERS", "false") != "true" {
		return nil
	}

	demos := []struct {
		fullname string
		username string
		email    string
		password string
		role     models.Role
	}{
		{"Administrator", "admin", "admin@example.com", "admin123", models.RoleAdmin},
		{"Demo User", "user", "user@example.com", "user123", models.RoleUser},
	}

	for _, d := range demos {
		var count int64
		if err := DB.Model(&models.User{}).Where("username = ?", d.username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		user := models.User{
			Fullname: d.fullname,
			Username: d.username,
			Email:    d.email,
			Password: string(hash),
			Role:     d.role,
		}
		if err := DB.Create(&user).Error; err != nil {
			return err
		}
		log.Printf("Seeded demo account %q with role %s", d.username, d.role)
	}

	return nil
}
