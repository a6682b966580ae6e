package config

import (
	"solanaswap/core"

	"github.com/fox-one/pkg/config"
)

// Load load config file, environment variables prefixed SOLANA_SWAP override its values
func Load(cfgFile string, cfg *core.Config) error {
	config.AutomaticLoadEnv("SOLANA_SWAP")
	config.SetDefaults(config.H{
		"log.level":  "info",
		"log.format": FormatText,
	})

	if err := config.LoadYaml(cfgFile, cfg); err != nil {
		return err
	}

	defaultLog(cfg)
	return Validate(cfg)
}
