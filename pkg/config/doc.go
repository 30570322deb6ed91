// Package config loads typed configuration from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for struct-tag parsing and
// github.com/joho/godotenv for .env files. Parsed values are cached per
// type, so repeated Load calls are cheap and return the same values.
//
//	var cfg validator.PhoneConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// LoadEnv reads additional .env files before parsing. Tests that change the
// environment should call ResetCache or use Reload.
//
// Errors can be matched with errors.Is against ErrParsingConfig,
// ErrLoadingEnvFile and ErrNilPointer.
package config
