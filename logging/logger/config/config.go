package config

import (
	"github.com/spf13/viper"
)

// Config configuration struct
type Config struct {
	Level           int              `json:"level" yaml:"level"`
	Format          string           `json:"format" yaml:"format"`
	Output          string           `json:"output" yaml:"output"`
	OutputFile      string           `json:"output_file" yaml:"output_file"`
	Desensitization *Desensitization `json:"desensitization" yaml:"desensitization"`
}

// Defaults: logrus.InfoLevel, JSON to stdout.
const (
	defaultLevel  = 4
	defaultFormat = "json"
	defaultOutput = "stdout"
)

// GetConfig returns the logger configuration
func GetConfig(v *viper.Viper) *Config {
	c := &Config{
		Level:           defaultLevel,
		Format:          defaultFormat,
		Output:          defaultOutput,
		Desensitization: getDesensitizationConfigs(v),
	}
	if v.IsSet("logger.level") {
		c.Level = v.GetInt("logger.level")
	}
	if f := v.GetString("logger.format"); f != "" {
		c.Format = f
	}
	if o := v.GetString("logger.output"); o != "" {
		c.Output = o
	}
	c.OutputFile = v.GetString("logger.output_file")
	return c
}
