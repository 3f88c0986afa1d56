package counter

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// AppContentReader defines the interface for reading content from the embedded file system.
type AppContentReader interface {
	ReadFile(name string) ([]byte, error)
}

// ConfigPath is the location of the counter configuration inside the asset FS.
const ConfigPath = "assets/counter_config.json"

// DefaultIntervalMillis is the auto-increment interval used when nothing else is configured.
const DefaultIntervalMillis int64 = 3000

// Config holds the static configuration of the application.
type Config struct {
	InitialIntervalMs int64   `json:"initialIntervalMs"`
	Chime             bool    `json:"chime"`
	ChimeFrequencyHz  float64 `json:"chimeFrequencyHz"`
	ChimeDurationMs   int     `json:"chimeDurationMs"`
	WindowWidth       float32 `json:"windowWidth"`
	WindowHeight      float32 `json:"windowHeight"`
}

// DefaultConfig returns the configuration used for any field the config file leaves out.
func DefaultConfig() *Config {
	return &Config{
		InitialIntervalMs: DefaultIntervalMillis,
		Chime:             true,
		ChimeFrequencyHz:  880,
		ChimeDurationMs:   60,
		WindowWidth:       360,
		WindowHeight:      440,
	}
}

// LoadConfig reads the configuration from the embedded asset FS and applies
// environment overrides.
func LoadConfig(reader AppContentReader) (*Config, error) {
	data, err := reader.ReadFile(ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("read counter config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a JSON config on top of DefaultConfig.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal counter config: %w", err)
	}
	cfg.applyEnv()
	cfg.normalize()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv("COUNTER_MUTE")); v == "1" || strings.EqualFold(v, "true") {
		c.Chime = false
	}
}

// normalize replaces values that would break an invariant with defaults.
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.InitialIntervalMs <= 0 {
		c.InitialIntervalMs = def.InitialIntervalMs
	}
	if c.ChimeFrequencyHz <= 0 {
		c.ChimeFrequencyHz = def.ChimeFrequencyHz
	}
	if c.ChimeDurationMs <= 0 {
		c.ChimeDurationMs = def.ChimeDurationMs
	}
	if c.WindowWidth <= 0 {
		c.WindowWidth = def.WindowWidth
	}
	if c.WindowHeight <= 0 {
		c.WindowHeight = def.WindowHeight
	}
}
