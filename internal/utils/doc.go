// Package utils exposes the ambient helpers shared by the CLI and the scanner.
//
// It houses ConfigurationLoader (Viper, embedded defaults, environment overrides, and
// mapstructure decode hooks), LoggerFactory (zap loggers in structured or console form),
// and FlushingWriter, which streams findings as they are written.
package utils
