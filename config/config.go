// config/config.go
package config

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Configuration stores all the configurations
type Configuration struct {
	Server        ServerConfiguration
	Postgres      PostgresConfiguration
	Redis         RedisConfiguration
	Elasticsearch ElasticsearchConfiguration
	JWT           JWTConfiguration
	Cache         CacheConfiguration
}

// ServerConfiguration stores the port and other web server settings
type ServerConfiguration struct {
	Port string
}

// PostgresConfiguration stores data for the system-of-record connection
type PostgresConfiguration struct {
	DSN string
}

// RedisConfiguration stores data for Redis connection
type RedisConfiguration struct {
	Addr string
}

// ElasticsearchConfiguration stores data for Elasticsearch connection
type ElasticsearchConfiguration struct {
	URL string
}

// JWTConfiguration stores the signing secret and token lifetime
type JWTConfiguration struct {
	Secret        string
	ExpiryMinutes int
}

// CacheConfiguration stores per-namespace TTLs. Department data changes
// rarely and gets long TTLs; individual employee records change often
// and get short ones.
type CacheConfiguration struct {
	DepartmentTTL     string
	DepartmentListTTL string
	EmployeeTTL       string
	EmployeeSearchTTL string
}

var config *Configuration

func InitConfig() error {
	viper.AddConfigPath("config") // path to look for the config file in
	viper.SetConfigName("config") // name of the config file (without extension)
	viper.SetConfigType("yaml")

	viper.AutomaticEnv() // read in environment variables that match

	// Set default configurations
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("postgres.dsn", "host=localhost user=ems password=ems dbname=ems port=5432 sslmode=disable")
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.dialTimeout", "5s")
	viper.SetDefault("redis.readTimeout", "3s")
	viper.SetDefault("redis.writeTimeout", "3s")
	viper.SetDefault("redis.poolSize", 10)
	viper.SetDefault("redis.poolTimeout", "4s")
	viper.SetDefault("elasticsearch.url", "http://localhost:9200")
	viper.SetDefault("jwt.expiryMinutes", 60)
	viper.SetDefault("cache.departmentTTL", "6h")
	viper.SetDefault("cache.departmentListTTL", "6h")
	viper.SetDefault("cache.employeeTTL", "10m")
	viper.SetDefault("cache.employeeSearchTTL", "6h")
	viper.SetDefault("ratelimit.requests", 100)
	viper.SetDefault("ratelimit.window", "1m")
	viper.SetDefault("log.dir", "logging")

	// Attempt to read the config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found. Using default settings and environment variables.")
		} else {
			return err
		}
	}

	// Unmarshal the configuration into the Configuration struct
	if err := viper.Unmarshal(&config); err != nil {
		return err
	}

	return validate()
}

// validate rejects configurations the auth pipeline cannot run with.
func validate() error {
	if viper.GetString("jwt.secret") == "" {
		return fmt.Errorf("jwt.secret must be set")
	}
	if len(viper.GetString("jwt.secret")) < 32 {
		return fmt.Errorf("jwt.secret must be at least 32 bytes for HS256")
	}
	if viper.GetInt("jwt.expiryMinutes") <= 0 {
		return fmt.Errorf("jwt.expiryMinutes must be > 0")
	}
	return nil
}

// GetConfig returns the loaded configuration
func GetConfig() *Configuration {
	return config
}

// GetString retrieves a string value from the configuration
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt retrieves an integer value from the configuration
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool retrieves a boolean value from the configuration
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration retrieves a duration value from the configuration
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}
