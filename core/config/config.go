package config

import (
	"reflect"
	"strings"

	"botc-assets/core/database"
	"botc-assets/core/fetch"
	"botc-assets/core/logger"
	"botc-assets/core/paths"
	"botc-assets/core/server"
	"botc-assets/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Assets holds the local directories of a run.
	Assets paths.Config `mapstructure:"assets"`
	// Fetch holds network tuning.
	Fetch fetch.Config `mapstructure:"fetch"`
	// Sources holds the upstream locations assets are fetched from.
	Sources Sources `mapstructure:"sources"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Storage holds configuration for publishing to object storage.
	Storage storage.Config `mapstructure:"storage"`
	// Database holds configuration for the run history database.
	Database database.Config `mapstructure:"database"`
	// Server holds configuration for the serve command.
	Server server.Config `mapstructure:"server"`
}

// Sources lists the upstream endpoints.
type Sources struct {
	// CatalogURL is the base URL of the script catalog API.
	CatalogURL string `mapstructure:"catalog_url" default:"https://botc-scripts.azurewebsites.net"`
	// ScriptToolURL is the base URL of the official script tool.
	ScriptToolURL string `mapstructure:"script_tool_url" default:"https://script.bloodontheclocktower.com"`
	// DataFiles are the JSON files fetched from the script tool data directory.
	DataFiles []string `mapstructure:"data_files" default:"roles.json,nightsheet.json,jinx.json"`
	// WikiURL is the wiki page listing character icons.
	WikiURL string `mapstructure:"wiki_url" default:"https://wiki.bloodontheclocktower.com/index.php?title=Special:ListFiles&limit=500"`
	// PocketGrimoireURL is the pocket grimoire characters JSON.
	PocketGrimoireURL string `mapstructure:"pocket_grimoire_url" default:"https://raw.githubusercontent.com/Skateside/pocket-grimoire/main/assets/data/characters.json"`
	// ExtraIconsRepo is the GitHub repository (owner/name) holding extra icons.
	ExtraIconsRepo string `mapstructure:"extra_icons_repo" default:"tchajed/botc-icons"`
	// ExtraIconsPath is the directory of the repository holding the icons.
	ExtraIconsPath string `mapstructure:"extra_icons_path" default:"icons"`
	// GitHubToken authenticates GitHub API calls; optional.
	GitHubToken string `mapstructure:"github_token" default:""`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. FETCH_CONCURRENCY -> fetch.concurrency)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
