package update

import (
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type RuntimeConfig struct {
	DBPath          string `yaml:"db_path"`
	ServerURL       string `yaml:"server_url"`
	DayCheckMinutes int    `yaml:"day_check_minutes"`
	AutosaveDelayMS int    `yaml:"autosave_delay_ms"`
	VoiceEnabled    bool   `yaml:"voice_enabled"`
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DBPath:          defaultDBPath(),
		ServerURL:       "",
		DayCheckMinutes: 1,
		AutosaveDelayMS: 2000,
		VoiceEnabled:    false,
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "routined.db"
	}
	return home + "/.routined/routined.db"
}

// LoadRuntimeConfigFile overlays a yaml config file onto base. A missing
// file is not an error; first runs have none.
func LoadRuntimeConfigFile(base RuntimeConfig, path string) (RuntimeConfig, error) {
	cfg := base
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return base, err
	}
	return cfg, nil
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("ROUTINED_DB_PATH")); v != "" {
		cfg.DBPath = v
	}
	if v := strings.TrimSpace(os.Getenv("ROUTINED_SERVER_URL")); v != "" {
		cfg.ServerURL = v
	}
	if v, ok := getEnvInt("ROUTINED_DAY_CHECK_MINUTES"); ok && v > 0 {
		cfg.DayCheckMinutes = v
	}
	if v, ok := getEnvInt("ROUTINED_AUTOSAVE_DELAY_MS"); ok && v > 0 {
		cfg.AutosaveDelayMS = v
	}
	if v, ok := getEnvBool("ROUTINED_VOICE"); ok {
		cfg.VoiceEnabled = v
	}
	return cfg
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
