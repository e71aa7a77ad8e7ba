package config

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// maxProviderResults is the largest page the places-search API returns.
const maxProviderResults = 20

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535] (got %d)", c.Server.Port)
	}

	if c.Auth.Enabled() && len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.Enabled() {
		if c.Auth.AccessTokenTTL <= 0 {
			return fmt.Errorf("auth.access_token_ttl must be > 0 (got %s)", c.Auth.AccessTokenTTL)
		}
		if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
			return fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)",
				bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
		}
	}

	if c.Serper.APIKey == "" {
		return errors.New("serper.api_key is required")
	}
	if c.Serper.RequestsPerSecond <= 0 {
		return fmt.Errorf("serper.requests_per_second must be > 0 (got %v)", c.Serper.RequestsPerSecond)
	}

	if c.LLM.APIKey == "" {
		return errors.New("llm.api_key is required")
	}
	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("llm.max_tokens must be > 0 (got %d)", c.LLM.MaxTokens)
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 1 {
		return fmt.Errorf("llm.temperature must be in [0, 1] (got %v)", c.LLM.Temperature)
	}

	if err := c.Search.validate(); err != nil {
		return fmt.Errorf("search: %w", err)
	}

	if c.RateLimit.SearchPerMinute <= 0 || c.RateLimit.ChatPerMinute <= 0 || c.RateLimit.AuthPerMinute <= 0 {
		return errors.New("ratelimit: per-minute limits must be > 0")
	}
	if c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("ratelimit.cleanup_interval must be > 0 (got %s)", c.RateLimit.CleanupInterval)
	}

	if c.Retention.SearchResultDays <= 0 {
		return fmt.Errorf("retention.search_result_days must be > 0 (got %d)", c.Retention.SearchResultDays)
	}

	return nil
}

func (s *SearchConfig) validate() error {
	if s.MaxResults <= 0 || s.MaxResults > maxProviderResults {
		return fmt.Errorf("max_results must be in [1, %d] (got %d)", maxProviderResults, s.MaxResults)
	}
	if s.DefaultNum <= 0 || s.DefaultNum > s.MaxResults {
		return fmt.Errorf("default_num must be in [1, max_results] (got %d)", s.DefaultNum)
	}
	if s.SummaryPlaces <= 0 {
		return fmt.Errorf("summary_places must be > 0 (got %d)", s.SummaryPlaces)
	}
	if s.ResponsePlaces <= 0 {
		return fmt.Errorf("response_places must be > 0 (got %d)", s.ResponsePlaces)
	}
	if s.FacilityLimit <= 0 {
		return fmt.Errorf("facility_limit must be > 0 (got %d)", s.FacilityLimit)
	}
	if s.DefaultPriceMin < 0 || s.DefaultPriceMax < s.DefaultPriceMin {
		return fmt.Errorf("default price range invalid (%d-%d)", s.DefaultPriceMin, s.DefaultPriceMax)
	}
	return nil
}
