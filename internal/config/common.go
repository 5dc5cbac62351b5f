package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	ErrMissingAPIKey     = errors.New("YOUTUBE_API_KEY not found: set it in the environment or in .env")
	ErrMissingDBPassword = errors.New("database password not found: set DB_PASSWORD in the environment or in .env")
)

// 环境变量与配置项的对应关系
var envBindings = map[string]string{
	"youtube.api_key":      "YOUTUBE_API_KEY",
	"database.driver":      "DB_DRIVER",
	"database.sqlite_path": "SQLITE_PATH",
	"database.user":        "DB_USER",
	"database.password":    "DB_PASSWORD",
	"database.host":        "DB_HOST",
	"database.port":        "DB_PORT",
	"database.name":        "DB_NAME",
	"log.level":            "LOG_LEVEL",
	"log.dir":              "LOG_DIR",
	"metrics.pushgateway":  "PUSHGATEWAY_URL",
}

// 命令行参数与配置项的对应关系
var flagBindings = map[string]string{
	"region":      "pipeline.region",
	"max-results": "pipeline.max_results",
	"db-driver":   "database.driver",
	"sqlite-path": "database.sqlite_path",
	"raw-dir":     "pipeline.raw_dir",
	"out-dir":     "pipeline.transformed_dir",
	"log-level":   "log.level",
	"cron":        "cron.spec",
}

var validate = validator.New()

func setDefaults(v *viper.Viper) {
	v.SetDefault("youtube.base_url", "https://www.googleapis.com/youtube/v3")
	v.SetDefault("youtube.timeout", 30*time.Second)

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.sqlite_path", "youtube_analytics.db")
	v.SetDefault("database.user", "root")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.name", "youtube_analytics")
	v.SetDefault("database.max_idle", 2)
	v.SetDefault("database.max_open", 4)
	v.SetDefault("database.max_lifetime", 30)

	v.SetDefault("pipeline.region", "US")
	v.SetDefault("pipeline.max_results", 50)
	v.SetDefault("pipeline.raw_dir", "data/raw")
	v.SetDefault("pipeline.transformed_dir", "data/transformed")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.dir", "logs")

	v.SetDefault("cron.spec", "@daily")
	v.SetDefault("metrics.job", "youtube_trending_etl")
}

// LoadConfig 依次合并默认值、configs/config.yaml、.env、环境变量和命令行参数
func LoadConfig(configPath string, flags *pflag.FlagSet) (*Config, error) {
	// .env 不存在时忽略，已设置的环境变量不会被覆盖
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) || configPath != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind env %s: %w", env, err)
		}
	}

	if flags != nil {
		for name, key := range flagBindings {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Pipeline.Region = strings.ToUpper(cfg.Pipeline.Region)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate 校验配置，返回第一个不合法字段
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			first := vErrs[0]
			return fmt.Errorf("invalid config: field [%s] failed rule [%s]", first.Namespace(), first.Tag())
		}
		return err
	}
	return nil
}

// RequireAPIKey 在发起任何网络请求之前检查 API key
func (c *Config) RequireAPIKey() (string, error) {
	if c.YouTube.APIKey == "" {
		return "", ErrMissingAPIKey
	}
	return c.YouTube.APIKey, nil
}

// DSN 返回当前驱动的连接串，MySQL 缺少密码时返回 ErrMissingDBPassword
func (c *DBConfig) DSN() (string, error) {
	switch c.Driver {
	case "mysql":
		if c.Password == "" {
			return "", ErrMissingDBPassword
		}
		mc := mysql.NewConfig()
		mc.User = c.User
		mc.Passwd = c.Password
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
		mc.DBName = c.Name
		mc.ParseTime = true
		mc.Loc = time.UTC
		mc.Params = map[string]string{"charset": "utf8mb4"}
		return mc.FormatDSN(), nil
	default:
		return c.SQLitePath + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", nil
	}
}
