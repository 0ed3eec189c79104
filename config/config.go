package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds every runtime setting the service needs.
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	ServerPort  string `mapstructure:"SERVER_PORT"`

	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`

	RedisHost     string `mapstructure:"REDIS_HOST"`
	RedisPort     string `mapstructure:"REDIS_PORT"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// Optional. When unset the insight endpoint falls back to the
	// deterministic summary text.
	DeepseekAPIKey      string `mapstructure:"DEEPSEEK_API_KEY"`
	DeepseekAPIEndpoint string `mapstructure:"DEEPSEEK_API_ENDPOINT"`

	JWTSecret         string `mapstructure:"JWT_SECRET"`
	InternalAuthToken string `mapstructure:"INTERNAL_AUTH_TOKEN"`
}

// LoadConfig reads configuration from a .env file or the environment.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		// A missing config file is fine, the environment takes over.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
	}

	err = viper.Unmarshal(&config)
	return
}

// GetDBConnString builds the MySQL DSN.
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// GetRedisConnString builds the Redis address.
func (c *Config) GetRedisConnString() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}
