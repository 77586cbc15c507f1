package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("auth.bcrypt_cost must be between 4 and 31 (got %d)", c.Auth.BcryptCost)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be a valid port (got %d)", c.Server.Port)
	}

	if err := c.Catalog.validate(); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	return nil
}

func (c *CatalogConfig) validate() error {
	if c.DefaultPageLimit <= 0 {
		return fmt.Errorf("default_page_limit must be > 0 (got %d)", c.DefaultPageLimit)
	}
	if c.MaxPageLimit < c.DefaultPageLimit {
		return fmt.Errorf("max_page_limit must be >= default_page_limit (got %d < %d)", c.MaxPageLimit, c.DefaultPageLimit)
	}
	if c.LatestCourses <= 0 {
		return fmt.Errorf("latest_courses must be > 0 (got %d)", c.LatestCourses)
	}
	return nil
}
