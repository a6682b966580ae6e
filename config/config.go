package config

import (
	"fmt"
	"strings"

	"solanaswap/core"

	"github.com/asaskevich/govalidator"
	"github.com/sirupsen/logrus"
)

const (
	// FormatText logrus text formatter
	FormatText = "text"
	// FormatJSON logrus json formatter
	FormatJSON = "json"
)

func defaultLog(cfg *core.Config) {
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if cfg.Log.Level == "" {
		cfg.Log.Level = logrus.InfoLevel.String()
	}

	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))
	if cfg.Log.Format == "" {
		cfg.Log.Format = FormatText
	}
}

// Validate check the config values
func Validate(cfg *core.Config) error {
	if _, err := logrus.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	if !govalidator.IsIn(cfg.Log.Format, FormatText, FormatJSON) {
		return fmt.Errorf("log.format: %q is neither %s nor %s", cfg.Log.Format, FormatText, FormatJSON)
	}

	return nil
}
