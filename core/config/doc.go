// Package config provides configuration management for the YASTM generator.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: record database driver and connection details
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//   - Generator: data folder, output plugin, load order and output target
//
// Keys map to environment variables by upper-casing and replacing dots, so
// generator.data_folder is read from GENERATOR_DATA_FOLDER.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Generator.Patch)
package config
