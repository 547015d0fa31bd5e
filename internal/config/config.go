package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel          string `yaml:"log-level" env-default:"info"`
	Redis             Redis  `yaml:"redis"`
	Gemini            Gemini `yaml:"gemini"`
	Arena             Arena  `yaml:"arena"`
	SQLiteStoragePath string `yaml:"sqlite-storage-path" env-default:"arena.db"`
	OutputDir         string `yaml:"output-dir" env-default:"output"`
}

type Redis struct {
	Host string `yaml:"host" env-default:"localhost"`
	Port string `yaml:"port" env-default:"6379"`
}

type Gemini struct {
	APIKey      string  `yaml:"api-key" env:"GEMINI_API_KEY"`
	Model       string  `yaml:"model" env-default:"gemini-1.5-flash"`
	Temperature float32 `yaml:"temperature" env-default:"0.1"`
}

type Arena struct {
	Trials    int           `yaml:"trials" env-default:"5"`
	BoardSize int           `yaml:"board-size" env-default:"3"`
	Pause     time.Duration `yaml:"pause" env-default:"10s"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
