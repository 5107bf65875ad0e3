// Package config loads the demo host configuration with viper.
//
// Configuration is read from a YAML file (config.yaml in ., $HOME/.stellresp
// or /etc/stellresp unless a path is given) and may be overridden with
// STELLRESP_ prefixed environment variables, e.g. STELLRESP_SERVER_PORT.
// Every key has a default, so a missing file is not an error.
//
//	app_name: stellresp
//	run_mode: release
//	server:
//	  host: 0.0.0.0
//	  port: 8080
//	response:
//	  language: en
//	logger:
//	  level: 4
//	  format: json
//	  output: stdout
package config
