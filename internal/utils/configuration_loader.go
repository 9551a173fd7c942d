package utils

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

const (
	environmentKeySeparatorOldConstant              = "."
	environmentKeySeparatorNewConstant              = "_"
	configurationReadErrorTemplateConstant          = "failed to read configuration %s: %w"
	configurationUnmarshalErrorTemplateConstant     = "failed to parse configuration: %w"
	embeddedConfigurationMergeErrorTemplateConstant = "failed to merge embedded configuration: %w"
)

// ConfigurationLoader layers embedded defaults, an optional explicit configuration file, and
// prefixed environment variables. Nothing is read from disk unless a file path is given.
type ConfigurationLoader struct {
	configurationType         string
	environmentPrefix         string
	environmentKeyReplacer    *strings.Replacer
	embeddedConfiguration     []byte
	embeddedConfigurationType string
}

// LoadedConfiguration surfaces metadata about the resolved configuration.
type LoadedConfiguration struct {
	ConfigFileUsed string
}

// NewConfigurationLoader creates a loader for configurationType documents and environment
// variables named <environmentPrefix>_<SECTION>_<KEY>.
func NewConfigurationLoader(configurationType string, environmentPrefix string) *ConfigurationLoader {
	return &ConfigurationLoader{
		configurationType:      configurationType,
		environmentPrefix:      environmentPrefix,
		environmentKeyReplacer: strings.NewReplacer(environmentKeySeparatorOldConstant, environmentKeySeparatorNewConstant),
	}
}

// SetEmbeddedConfiguration stores configuration data merged before any user-provided file.
func (loader *ConfigurationLoader) SetEmbeddedConfiguration(configurationData []byte, configurationType string) {
	if loader == nil {
		return
	}

	loader.embeddedConfiguration = nil
	loader.embeddedConfigurationType = strings.TrimSpace(configurationType)

	if len(configurationData) == 0 {
		return
	}

	duplicatedData := make([]byte, len(configurationData))
	copy(duplicatedData, configurationData)
	loader.embeddedConfiguration = duplicatedData
}

// LoadConfiguration populates targetConfiguration. Precedence, lowest first: defaultValues,
// embedded configuration, configurationFilePath, environment variables. Values are decoded
// through ConfigurationDecodeHook.
func (loader *ConfigurationLoader) LoadConfiguration(configurationFilePath string, defaultValues map[string]any, targetConfiguration any) (LoadedConfiguration, error) {
	viperInstance := viper.New()

	for defaultKey, defaultValue := range defaultValues {
		viperInstance.SetDefault(defaultKey, defaultValue)
	}

	if len(loader.embeddedConfiguration) > 0 {
		configurationType := loader.configurationType
		if len(loader.embeddedConfigurationType) > 0 {
			configurationType = loader.embeddedConfigurationType
		}

		viperInstance.SetConfigType(configurationType)
		if mergeError := viperInstance.MergeConfig(bytes.NewReader(loader.embeddedConfiguration)); mergeError != nil {
			return LoadedConfiguration{}, fmt.Errorf(embeddedConfigurationMergeErrorTemplateConstant, mergeError)
		}
	}

	loadedConfiguration := LoadedConfiguration{}
	if len(configurationFilePath) > 0 {
		fileViper := viper.New()
		fileViper.SetConfigFile(configurationFilePath)
		if readError := fileViper.ReadInConfig(); readError != nil {
			return LoadedConfiguration{}, fmt.Errorf(configurationReadErrorTemplateConstant, configurationFilePath, readError)
		}
		if mergeError := viperInstance.MergeConfigMap(fileViper.AllSettings()); mergeError != nil {
			return LoadedConfiguration{}, fmt.Errorf(configurationReadErrorTemplateConstant, configurationFilePath, mergeError)
		}
		loadedConfiguration.ConfigFileUsed = fileViper.ConfigFileUsed()
	}

	viperInstance.SetEnvPrefix(loader.environmentPrefix)
	viperInstance.SetEnvKeyReplacer(loader.environmentKeyReplacer)
	viperInstance.AutomaticEnv()

	unmarshalError := viperInstance.Unmarshal(targetConfiguration, viper.DecodeHook(ConfigurationDecodeHook()))
	if unmarshalError != nil {
		return LoadedConfiguration{}, fmt.Errorf(configurationUnmarshalErrorTemplateConstant, unmarshalError)
	}

	return loadedConfiguration, nil
}

// ConfigurationDecodeHook converts configuration scalars into typed fields: text unmarshalers
// (LogLevel, LogFormat), durations, and comma-separated slices.
func ConfigurationDecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}
