package config

import "time"

// Config 配置主体
type Config struct {
	YouTube  YouTubeConfig  `mapstructure:"youtube"`
	DB       DBConfig       `mapstructure:"database"`
	Pipeline PipelineConfig `mapstructure:"pipeline"`
	Log      LogConfig      `mapstructure:"log"`
	Cron     CronConfig     `mapstructure:"cron"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

// YouTubeConfig YouTube Data API 配置
type YouTubeConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

// DBConfig 数据库配置
type DBConfig struct {
	Driver      string `mapstructure:"driver" validate:"oneof=sqlite mysql"`
	SQLitePath  string `mapstructure:"sqlite_path" validate:"required_if=Driver sqlite"`
	User        string `mapstructure:"user"`
	Password    string `mapstructure:"password"`
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port" validate:"gte=0,lte=65535"`
	Name        string `mapstructure:"name" validate:"required_if=Driver mysql"`
	MaxIdle     int    `mapstructure:"max_idle" validate:"gte=0"`
	MaxOpen     int    `mapstructure:"max_open" validate:"gte=0"`
	MaxLifetime int    `mapstructure:"max_lifetime" validate:"gte=0"`
}

// PipelineConfig 抓取与暂存目录配置
type PipelineConfig struct {
	Region         string `mapstructure:"region" validate:"len=2,alpha"`
	MaxResults     int    `mapstructure:"max_results" validate:"min=1,max=50"`
	RawDir         string `mapstructure:"raw_dir" validate:"required"`
	TransformedDir string `mapstructure:"transformed_dir" validate:"required"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Dir   string `mapstructure:"dir"`
}

type CronConfig struct {
	Spec string `mapstructure:"spec"`
}

type MetricsConfig struct {
	Pushgateway string `mapstructure:"pushgateway" validate:"omitempty,url"`
	Job         string `mapstructure:"job"`
}
