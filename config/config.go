package config

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App AppConfig
	DB  DBConfig
}

type AppConfig struct {
	Env      string
	LogLevel string

	// TurnLogPath is the append-only text file mirroring booked appointments.
	TurnLogPath string

	// AssignWaitTimeout bounds how long the priority-assignment worker waits
	// for a patient registration outcome before giving up.
	AssignWaitTimeout time.Duration
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Environment variables alone are a valid configuration source.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	assignWait, err := time.ParseDuration(viper.GetString("ASSIGN_WAIT_TIMEOUT"))
	if err != nil {
		assignWait = 5 * time.Second
	}

	turnLogPath := viper.GetString("TURN_LOG_PATH")
	if turnLogPath == "" {
		turnLogPath = "appointments.txt"
	}

	logLevel := viper.GetString("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	config := &Config{
		App: AppConfig{
			Env:               viper.GetString("APP_ENV"),
			LogLevel:          logLevel,
			TurnLogPath:       turnLogPath,
			AssignWaitTimeout: assignWait,
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
	}

	return config, nil
}
