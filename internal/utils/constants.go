// Package utils contains general helper functions used across the ftree tool.
package utils

// Configuration file constants used across the project.
const (
	// ConfigFileName is the name of the local configuration file.
	ConfigFileName = ".ftree.yaml"
	// GlobalConfigDirectoryName is the per-user configuration directory.
	GlobalConfigDirectoryName = ".ftree"
	// GlobalConfigFileName is the configuration file inside the global directory.
	GlobalConfigFileName = "config.yaml"
)

// LoggerInitializationFailedMessageFormat reports a failed logger construction.
const LoggerInitializationFailedMessageFormat = "logger initialization failed: %w"

// ApplicationExecutionFailedMessage prefixes fatal application errors.
const ApplicationExecutionFailedMessage = "application execution failed"
