// Package config provides configuration management for botc-assets.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults live next to each partial configuration as
// `default` struct tags and are registered by reflection.
//
// # Configuration Structure
//
//   - Assets: output, extra scripts and homebrew directories
//   - Fetch: concurrency, timeouts and icon size
//   - Sources: upstream catalog, script tool, wiki, pocket grimoire and GitHub locations
//   - Log: logging level and format
//   - Storage: S3/MinIO credentials for publishing
//   - Database: run history database
//   - Server: HTTP settings for the serve command
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Fetch.Concurrency)
package config
