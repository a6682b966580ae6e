package core

// Config solana swap config
type Config struct {
	Log   Log   `json:"log"`
	Skill Skill `json:"skill"`
}

// Log logging config
type Log struct {
	// Level logrus level name, debug/info/warn/error
	Level string `json:"level"`
	// Format text or json
	Format string `json:"format"`
}

// Skill overrides for the published skill manifest
type Skill struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Script      string `json:"script"`
	Runtime     string `json:"runtime"`
}
