package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Vocabulary VocabularyConfig `mapstructure:"vocabulary"`
	Quiz       QuizConfig       `mapstructure:"quiz"`
}

type VocabularyConfig struct {
	File string `mapstructure:"file" validate:"required,file"`
}

type QuizConfig struct {
	CaseSensitive   bool `mapstructure:"case_sensitive"`
	AccentSensitive bool `mapstructure:"accent_sensitive"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/langtool")
	}

	v.SetDefault("vocabulary.file", filepath.Join("data", "vocabulary_french.csv"))
	v.SetDefault("quiz.case_sensitive", false)
	v.SetDefault("quiz.accent_sensitive", true)

	// Allow overriding the vocabulary file without a config file
	if err := v.BindEnv("vocabulary.file", "VOCABULARY_FILE"); err != nil {
		return nil, fmt.Errorf("failed to bind VOCABULARY_FILE environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	return &cfg, nil
}
