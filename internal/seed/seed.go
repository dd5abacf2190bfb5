package seed

import (
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"cafe-backend/internal/domain"
	"cafe-backend/internal/service"
)

// Data is the YAML catalog loaded by cmd/seed.
type Data struct {
	Admin struct {
		Username string `yaml:"username"`
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
	} `yaml:"admin"`
	Categories []struct {
		Name         string `yaml:"name"`
		DisplayOrder int    `yaml:"display_order"`
		Menus        []struct {
			Name        string `yaml:"name"`
			Price       int    `yaml:"price"`
			Description string `yaml:"description"`
			ImageURL    string `yaml:"image_url"`
		} `yaml:"menus"`
	} `yaml:"categories"`
}

func Load(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &data, nil
}

// Apply inserts the seed catalog through the regular services so every row
// passes the same validation as API traffic. Rows that already exist are
// skipped, so running the seeder twice is safe.
func Apply(data *Data, catalog service.CatalogServiceInterface, users service.UserServiceInterface, logger *log.Logger) error {
	if logger == nil {
		logger = log.StandardLogger()
	}

	if data.Admin.Username != "" {
		_, err := users.Create(service.UserCreate{
			Username: data.Admin.Username,
			Email:    data.Admin.Email,
			Password: data.Admin.Password,
			IsAdmin:  true,
		})
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			logger.WithField("username", data.Admin.Username).Info("admin user already exists")
		case err != nil:
			return fmt.Errorf("seed admin user: %w", err)
		}
	}

	for _, c := range data.Categories {
		category, err := catalog.CreateCategory(service.CategoryCreate{
			Name:         c.Name,
			DisplayOrder: c.DisplayOrder,
		})
		if errors.Is(err, domain.ErrDuplicate) {
			logger.WithField("name", c.Name).Info("category already exists, skipping its menus")
			continue
		}
		if err != nil {
			return fmt.Errorf("seed category %q: %w", c.Name, err)
		}
		for _, m := range c.Menus {
			_, err := catalog.CreateMenu(service.MenuCreate{
				Name:        m.Name,
				CategoryID:  category.ID,
				Price:       m.Price,
				Description: m.Description,
				ImageURL:    m.ImageURL,
			})
			if err != nil {
				return fmt.Errorf("seed menu %q: %w", m.Name, err)
			}
		}
		logger.WithFields(log.Fields{"name": c.Name, "menus": len(c.Menus)}).Info("category seeded")
	}
	return nil
}
