package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	// Job board credentials
	LinkedInEmail    string `mapstructure:"linkedin_email"`
	LinkedInPassword string `mapstructure:"linkedin_password"`
	JobTitle         string `mapstructure:"job_title"`

	OutputDir    string `mapstructure:"output_dir"`
	DBPath       string `mapstructure:"db_path"`
	Headless     bool   `mapstructure:"headless"`
	ScrollPasses int    `mapstructure:"scroll_passes"`
	LogLevel     string `mapstructure:"log_level"` // debug, info, warn, error
}

var AppConfig *Config

// Keys lists the settable configuration keys
var Keys = []string{
	"linkedin_email", "linkedin_password", "job_title",
	"output_dir", "db_path", "headless", "scroll_passes", "log_level",
}

// Initialize loads or creates the configuration file in the home directory
func Initialize() error {
	return InitializeFrom(GetConfigPath())
}

// InitializeFrom loads the configuration file at path, creating it with
// defaults when missing
func InitializeFrom(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Create default config if it doesn't exist
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := createDefaultConfig(path); err != nil {
			return err
		}
	}

	viper.Reset()
	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("JOBCARDS")
	viper.AutomaticEnv()

	viper.SetDefault("linkedin_email", "")
	viper.SetDefault("linkedin_password", "")
	viper.SetDefault("job_title", "")
	viper.SetDefault("output_dir", ".")
	viper.SetDefault("db_path", filepath.Join(filepath.Dir(path), "jobcards.db"))
	viper.SetDefault("headless", true)
	viper.SetDefault("scroll_passes", 3)
	viper.SetDefault("log_level", "info")

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	return load()
}

// LoadInputs overlays an inputs.json file ({"email", "password",
// "jobTitle"}) on the loaded configuration without writing it back
func LoadInputs(path string) error {
	in := viper.New()
	in.SetConfigFile(path)
	in.SetConfigType("json")
	if err := in.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read inputs: %w", err)
	}

	mapping := map[string]string{
		"email":    "linkedin_email",
		"password": "linkedin_password",
		"jobTitle": "job_title",
	}
	for from, to := range mapping {
		if in.IsSet(from) {
			viper.Set(to, in.GetString(from))
		}
	}
	return load()
}

func load() error {
	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	AppConfig = cfg
	return nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig(path string) error {
	defaultConfig := `# jobcards configuration

# Job Board Credentials (keep this file secure!)
linkedin_email: ""
linkedin_password: ""

# Default search term for 'jobcards scrape'
job_title: ""

output_dir: "."
headless: true
scroll_passes: 3
log_level: info
`
	return os.WriteFile(path, []byte(defaultConfig), 0600)
}

// Set updates a configuration value
func Set(key, value string) error {
	viper.Set(key, value)
	return viper.WriteConfig()
}

// Get retrieves a configuration value
func Get(key string) string {
	return viper.GetString(key)
}

// GetConfigPath returns the path to the default config file
func GetConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".jobcards", "config.yaml")
}
