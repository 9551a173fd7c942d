package scan

const skipUnreadableConfigurationKeySuffixConstant = ".skip_unreadable"

// Configuration captures persistent settings for the scan.
type Configuration struct {
	SkipUnreadable bool `mapstructure:"skip_unreadable"`
}

// DefaultConfiguration returns baseline configuration values for the scan.
func DefaultConfiguration() Configuration {
	return Configuration{SkipUnreadable: false}
}

// DefaultConfigurationValues returns the defaults keyed for a configuration loader under prefix.
func DefaultConfigurationValues(prefix string) map[string]any {
	defaults := DefaultConfiguration()
	return map[string]any{
		prefix + skipUnreadableConfigurationKeySuffixConstant: defaults.SkipUnreadable,
	}
}
