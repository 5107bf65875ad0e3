package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	lc "github.com/stellrent/response/logging/logger/config"
)

// EnvPrefix prefixes environment overrides.
const EnvPrefix = "STELLRESP"

// Config represents the configuration implementation.
type Config struct {
	AppName  string
	RunMode  string
	Server   *Server
	Response *Response
	Logger   *lc.Config
	Viper    *viper.Viper
}

// Server holds the listen address of the demo host.
type Server struct {
	Host string
	Port int
}

// Addr returns host:port.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Response holds response rendering settings.
type Response struct {
	// Language selects validation messages when a request does not ask for
	// a supported one.
	Language string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_name", "stellresp")
	v.SetDefault("run_mode", "release")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("response.language", "en")
}

// LoadConfig loads the configuration from configPath, or from the default
// search paths when configPath is empty.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.stellresp")
		v.AddConfigPath("/etc/stellresp")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		AppName: v.GetString("app_name"),
		RunMode: v.GetString("run_mode"),
		Server: &Server{
			Host: v.GetString("server.host"),
			Port: v.GetInt("server.port"),
		},
		Response: &Response{
			Language: v.GetString("response.language"),
		},
		Logger: lc.GetConfig(v),
		Viper:  v,
	}
}

// Watch watches the configuration file and calls callback with the
// reloaded configuration whenever it changes.
func (c *Config) Watch(callback func(*Config)) {
	c.Viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		callback(fromViper(c.Viper))
	})
	c.Viper.WatchConfig()
}
