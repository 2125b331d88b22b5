// Package config handles configuration management for actionq.
// It layers embedded defaults, the user configuration file, a project
// configuration file and ACTIONQ_ environment variables using koanf.
package config
