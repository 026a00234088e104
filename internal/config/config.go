package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageFile  = "file"
	StorageRedis = "redis"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	SaveDir  string `yaml:"save-dir" env:"SAVE_DIR" env-default:"saves"`
	Storage  string `yaml:"storage" env:"STORAGE" env-default:"file"`
	Redis    Redis  `yaml:"redis"`
	Engine   Engine `yaml:"engine"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Engine struct {
	// Seed fixes the engine's random choices; zero reseeds from the clock on every move.
	Seed int64 `yaml:"seed" env:"ENGINE_SEED" env-default:"0"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	if config.Storage != StorageFile && config.Storage != StorageRedis {
		panic(fmt.Errorf("unknown storage %q", config.Storage))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
