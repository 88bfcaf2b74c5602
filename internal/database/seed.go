package database

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"org-demo-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed fixtures/sample.yaml
var sampleData []byte

// SeedData mirrors the layout of a seed file. Users and linodes refer to organizations by name.
type SeedData struct {
	Organizations []OrganizationSeed `yaml:"organizations"`
	Users         []UserSeed         `yaml:"users"`
	Linodes       []LinodeSeed       `yaml:"linodes"`
}

type OrganizationSeed struct {
	Name string `yaml:"name"`
}

type UserSeed struct {
	Email         string   `yaml:"email"`
	Organizations []string `yaml:"organizations"`
}

type LinodeSeed struct {
	Name         string `yaml:"name"`
	Organization string `yaml:"organization"`
}

// SeedSummary reports how many rows a seed run inserted
type SeedSummary struct {
	Organizations int
	Users         int
	Memberships   int
	Linodes       int
}

// LoadSeedData parses a seed file, or the built-in sample data when path is empty
func LoadSeedData(path string) (*SeedData, error) {
	raw := sampleData
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
		raw = b
	}

	var data SeedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}
	return &data, nil
}

// Seed inserts the data in a single transaction; nothing is written if any row fails.
func Seed(ctx context.Context, db *gorm.DB, data *SeedData) (*SeedSummary, error) {
	summary := &SeedSummary{}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		orgIDs := make(map[string]int64, len(data.Organizations))
		for _, o := range data.Organizations {
			org := models.Organization{Name: o.Name}
			if err := tx.Create(&org).Error; err != nil {
				return fmt.Errorf("insert organization %q: %w", o.Name, err)
			}
			orgIDs[o.Name] = org.ID
			summary.Organizations++
		}

		lookup := func(name string) (int64, error) {
			id, ok := orgIDs[name]
			if !ok {
				return 0, fmt.Errorf("unknown organization %q", name)
			}
			return id, nil
		}

		for _, u := range data.Users {
			user := models.User{Email: u.Email}
			if err := tx.Create(&user).Error; err != nil {
				return fmt.Errorf("insert user %q: %w", u.Email, err)
			}
			summary.Users++

			for _, orgName := range u.Organizations {
				orgID, err := lookup(orgName)
				if err != nil {
					return err
				}
				if err := tx.Create(&models.Membership{UserID: user.ID, OrgID: orgID}).Error; err != nil {
					return fmt.Errorf("insert membership %q -> %q: %w", u.Email, orgName, err)
				}
				summary.Memberships++
			}
		}

		for _, l := range data.Linodes {
			orgID, err := lookup(l.Organization)
			if err != nil {
				return err
			}
			if err := tx.Create(&models.Linode{Name: l.Name, OrgID: orgID}).Error; err != nil {
				return fmt.Errorf("insert linode %q: %w", l.Name, err)
			}
			summary.Linodes++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}
