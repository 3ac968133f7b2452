package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/rshade/holocron/internal/pagination"
)

// ErrUnknownKey is returned by Get and Set for unsupported keys.
var ErrUnknownKey = errors.New("unknown configuration key")

// Keys lists the dotted keys accepted by Get and Set, in display order.
func Keys() []string {
	return []string{
		"api.base_url",
		"api.timeout",
		"api.user_agent",
		"search.default_page_size",
		"output.default_format",
		"logging.level",
		"logging.format",
		"logging.file",
	}
}

// Get returns the string form of the value at a dotted key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "api.base_url":
		return c.API.BaseURL, nil
	case "api.timeout":
		return c.API.Timeout.String(), nil
	case "api.user_agent":
		return c.API.UserAgent, nil
	case "search.default_page_size":
		return strconv.Itoa(c.Search.DefaultPageSize), nil
	case "output.default_format":
		return c.Output.DefaultFormat, nil
	case "logging.level":
		return c.Logging.Level, nil
	case "logging.format":
		return c.Logging.Format, nil
	case "logging.file":
		return c.Logging.File, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set parses value and stores it at a dotted key. Page sizes are checked
// here; everything else is checked by Validate before saving.
func (c *Config) Set(key, value string) error {
	switch key {
	case "api.base_url":
		c.API.BaseURL = value
	case "api.timeout":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("api.timeout: %w", err)
		}
		c.API.Timeout = d
	case "api.user_agent":
		c.API.UserAgent = value
	case "search.default_page_size":
		n, err := pagination.ParsePageSize(value)
		if err != nil {
			return fmt.Errorf("search.default_page_size: %w", err)
		}
		c.Search.DefaultPageSize = n
	case "output.default_format":
		c.Output.DefaultFormat = value
	case "logging.level":
		c.Logging.Level = value
	case "logging.format":
		c.Logging.Format = value
	case "logging.file":
		c.Logging.File = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}
