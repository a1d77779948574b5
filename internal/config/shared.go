package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Station struct {
		Selected  string `mapstructure:"selected"`   // acronym, e.g. "BBC"; empty = not set
		CustomURL string `mapstructure:"custom_url"` // user supplied feed or stream url
	} `mapstructure:"station"`
	Device struct {
		CountryCode string `mapstructure:"country_code"` // ISO code, e.g. "US"
		Area        string `mapstructure:"area"`         // free text fallback, e.g. "Lisbon"
	} `mapstructure:"device"`
	Server struct {
		APIPort     string `mapstructure:"api_port"`
		MetricsPort string `mapstructure:"metrics_port"`
		CacheDir    string `mapstructure:"cache_dir"`
		LogLevel    string `mapstructure:"log_level"`
	} `mapstructure:"server"`
	Playback struct {
		PlayerCommand      string   `mapstructure:"player_command"`
		SpeechCommand      string   `mapstructure:"speech_command"`
		Schemes            []string `mapstructure:"schemes"` // schemes the player handles directly
		KillTimeoutSeconds int      `mapstructure:"kill_timeout_seconds"`
	} `mapstructure:"playback"`
	Locale struct {
		Dir string `mapstructure:"dir"` // optional yaml table overrides
	} `mapstructure:"locale"`
	Auth struct {
		Secret string `mapstructure:"secret"`
	} `mapstructure:"auth"`
}

func Load() *Config {
	viper.SetEnvPrefix("NEWS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Register keys
	viper.BindEnv("station.selected")
	viper.BindEnv("station.custom_url")
	viper.BindEnv("device.country_code")
	viper.BindEnv("device.area")
	viper.BindEnv("server.api_port")
	viper.BindEnv("server.metrics_port")
	viper.BindEnv("server.cache_dir")
	viper.BindEnv("server.log_level")
	viper.BindEnv("playback.player_command")
	viper.BindEnv("playback.speech_command")
	viper.BindEnv("playback.schemes")
	viper.BindEnv("playback.kill_timeout_seconds")
	viper.BindEnv("locale.dir")
	viper.BindEnv("auth.secret")

	// Defaults
	viper.SetDefault("server.api_port", ":8080")
	viper.SetDefault("server.metrics_port", ":9091")
	viper.SetDefault("server.cache_dir", "/tmp/news-radio")
	viper.SetDefault("server.log_level", "error")
	viper.SetDefault("playback.player_command", "ffplay")
	viper.SetDefault("playback.speech_command", "")
	// No TLS in the default player pipeline; https sources get staged locally.
	viper.SetDefault("playback.schemes", []string{"http", "file"})
	viper.SetDefault("playback.kill_timeout_seconds", 5)

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("Warning: Config error: %s", err)
		} else {
			log.Println("Info: config.yaml not found, using Environment Variables only.")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		log.Fatalf("Unable to decode config: %v", err)
	}

	return &cfg
}
