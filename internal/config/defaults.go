package config

import (
	"github.com/spf13/viper"
)

// SetDefaults registers default values. The agent section is left without
// defaults so an unconfigured agent stays detectable.
func SetDefaults() {
	viper.SetDefault("version", "1")

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "console")
	viper.SetDefault("log.file", "")

	viper.SetDefault("server.host", "127.0.0.1")
	viper.SetDefault("server.port", 8390)
}
