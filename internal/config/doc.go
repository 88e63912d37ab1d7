// Package config manages user-level settings stored at ~/.aemx/config.yaml.
// Settings provide defaults for scaffold flags, the log level and the
// template override directory, and can be overridden with AEMX_* variables.
package config
