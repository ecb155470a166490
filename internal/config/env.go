package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"ecommerce/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

type Env struct {
	AppAddr  string `mapstructure:"app_addr" validate:"required"`
	AppEnv   string `mapstructure:"app_env" validate:"required,oneof=development production test"`
	GinMode  string `mapstructure:"gin_mode" validate:"omitempty,oneof=debug release test"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	DatabaseDSN     string `mapstructure:"database_dsn"`
	DBHost          string `mapstructure:"db_host"`
	DBPort          int    `mapstructure:"db_port" validate:"gt=0,lt=65536"`
	DBUser          string `mapstructure:"db_user"`
	DBPassword      string `mapstructure:"db_password"`
	DBName          string `mapstructure:"db_name"`
	DBMaxOpenConns  int    `mapstructure:"db_max_open_conns" validate:"gte=1"`
	DBMaxIdleConns  int    `mapstructure:"db_max_idle_conns" validate:"gte=0"`
	DBConnLifetimeM int    `mapstructure:"db_conn_lifetime_minutes" validate:"gte=1"`

	BcryptRounds int `mapstructure:"bcrypt_rounds" validate:"gte=4,lte=31"`

	CORSOriginsDev  string `mapstructure:"cors_origins_dev"`
	CORSOriginsProd string `mapstructure:"cors_origins_prod"`
}

func (e Env) IsProduction() bool { return e.AppEnv == EnvProduction }

func (e Env) IsDevelopment() bool { return e.AppEnv == EnvDevelopment }

// CORSOrigins returns the allowed origins for the current environment.
func (e Env) CORSOrigins() []string {
	raw := e.CORSOriginsDev
	if e.IsProduction() {
		raw = e.CORSOriginsProd
	}
	return utils.SplitList(raw)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_addr", ":3000")
	v.SetDefault("app_env", EnvDevelopment)
	v.SetDefault("gin_mode", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("database_dsn", "")
	v.SetDefault("db_host", "127.0.0.1")
	v.SetDefault("db_port", 3306)
	v.SetDefault("db_user", "root")
	v.SetDefault("db_password", "")
	v.SetDefault("db_name", "ecommerce")
	v.SetDefault("db_max_open_conns", 25)
	v.SetDefault("db_max_idle_conns", 25)
	v.SetDefault("db_conn_lifetime_minutes", 10)
	v.SetDefault("bcrypt_rounds", 12)
	v.SetDefault("cors_origins_dev", "http://localhost:4200,http://localhost:3000")
	v.SetDefault("cors_origins_prod", "https://yourdomain.com")
}

// LoadEnv reads configuration from the environment. A .env file in the working
// directory is loaded first when present; CONFIG_FILE may point at a yaml file
// whose values the environment overrides.
func LoadEnv() (Env, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Env{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Env{}, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	var env Env
	if err := v.Unmarshal(&env); err != nil {
		return Env{}, fmt.Errorf("decode config: %w", err)
	}
	env.AppEnv = strings.ToLower(strings.TrimSpace(env.AppEnv))
	env.LogLevel = strings.ToLower(strings.TrimSpace(env.LogLevel))

	if err := validator.New().Struct(env); err != nil {
		return Env{}, fmt.Errorf("invalid config: %w", err)
	}
	return env, nil
}
