// Command provision applies the schema migrations and seeds a set of sample
// departments for development and demos. Existing departments are left
// untouched, so the command is safe to run repeatedly.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/haroontrailblazer/College-Departments-Portal/internal/common"
	"github.com/haroontrailblazer/College-Departments-Portal/internal/server/config"
	"github.com/haroontrailblazer/College-Departments-Portal/internal/server/models"
	"github.com/haroontrailblazer/College-Departments-Portal/internal/server/repositories/repomanager"
	"github.com/haroontrailblazer/College-Departments-Portal/internal/server/services"
)

type seedDepartment struct {
	name     string
	email    string
	password string
}

// Sample credentials for local testing only.
var seedDepartments = []seedDepartment{
	{"Computer Science", "cs@college.edu", "cs_password123"},
	{"Mathematics", "math@college.edu", "math_password123"},
	{"Physics", "physics@college.edu", "physics_password123"},
	{"Chemistry", "chemistry@college.edu", "chem_password123"},
	{"Biology", "bio@college.edu", "bio_password123"},
	{"English", "english@college.edu", "eng_password123"},
	{"Engineering", "eng@college.edu", "eng_password123"},
	{"Business", "business@college.edu", "business_password123"},
}

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	manager, err := repomanager.NewPostgresRepositoryManager(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	defer manager.Close()

	if err := seed(ctx, manager); err != nil {
		log.Fatalf("seeding error: %v", err)
	}
}

func seed(ctx context.Context, manager repomanager.RepositoryManager) error {
	repo := manager.Departments()

	for _, d := range seedDepartments {
		_, err := repo.GetByEmail(ctx, d.email)
		if err == nil {
			fmt.Printf("department %s already exists\n", d.name)
			continue
		}
		if !errors.Is(err, common.ErrNotFound) {
			return err
		}

		hash, err := services.HashPassword(d.password)
		if err != nil {
			return err
		}

		created, err := repo.Create(ctx, &models.Department{
			Name:         d.name,
			Email:        d.email,
			PasswordHash: hash,
		})
		if err != nil {
			return err
		}
		fmt.Printf("added department %s (id %d)\n", created.Name, created.ID)
	}

	return nil
}
