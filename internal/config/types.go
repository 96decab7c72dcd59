// SPDX-License-Identifier: MPL-2.0

package config

// Config carries interpreter and output defaults for the CLI. Zero
// values mean "not configured"; the library's own defaults apply.
type Config struct {
	// Implementation is the interpreter short code ("cp", "pp").
	Implementation string `mapstructure:"implementation"`
	// PythonVersion is the compact interpreter version ("38", "310").
	PythonVersion string `mapstructure:"python_version"`
	// ABI pins the ABI tag instead of resolving it.
	ABI string `mapstructure:"abi"`
	// Platform pins the platform instead of detecting the local one.
	Platform string `mapstructure:"platform"`
	// LogLevel selects the CLI log verbosity: debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
	// ConfigVars mirrors the interpreter's build-configuration variables
	// (SOABI, Py_DEBUG, ...) consulted during ABI resolution.
	ConfigVars map[string]string `mapstructure:"config_vars"`
}
