package conf

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Storage       StorageConfig       `mapstructure:"storage"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	HTTPPort        int           `mapstructure:"http_port"`
	MetricsPort     int           `mapstructure:"metrics_port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig 数据库配置
// Source 非空时作为完整 DSN 使用，否则由各字段拼装
type DatabaseConfig struct {
	Source          string        `mapstructure:"source"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// StorageConfig 每种资源的存储后端选择
type StorageConfig struct {
	Cosmetics  BackendConfig `mapstructure:"cosmetics"`
	Videogames BackendConfig `mapstructure:"videogames"`
}

// BackendConfig 单个资源的后端配置
type BackendConfig struct {
	// Backend 后端类型："postgres" 或 "csv"
	Backend string `mapstructure:"backend"`
	// CSVPath CSV 后端的文件路径
	CSVPath string `mapstructure:"csv_path"`
}

// ObservabilityConfig 可观测性配置
type ObservabilityConfig struct {
	ServiceName    string `mapstructure:"service_name"`
	ServiceVersion string `mapstructure:"service_version"`
	Environment    string `mapstructure:"environment"`
	LogLevel       string `mapstructure:"log_level"`
	LogFormat      string `mapstructure:"log_format"`
}

// Load 加载配置
// configPath 为空时仅使用默认值和环境变量
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	// 环境变量覆盖，例如 COLLAB_DATABASE_PASSWORD、COLLAB_SERVER_HTTP_PORT
	v.SetEnvPrefix("COLLAB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file failed: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config failed: %w", err)
	}

	// 部署平台直接注入完整 DSN 时优先生效
	if source := os.Getenv("DATABASE_URL"); source != "" {
		cfg.Database.Source = source
	}

	if err := cfg.Storage.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.http_port", 8080)
	v.SetDefault("server.metrics_port", 9090)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.shutdown_timeout", "10s")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.dbname", "collabs")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 20)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "1h")

	v.SetDefault("storage.cosmetics.backend", "postgres")
	v.SetDefault("storage.cosmetics.csv_path", "data/cosmetic_collab.csv")
	v.SetDefault("storage.videogames.backend", "postgres")
	v.SetDefault("storage.videogames.csv_path", "data/videogame_collab.csv")

	v.SetDefault("observability.service_name", "collab-service")
	v.SetDefault("observability.service_version", "dev")
	v.SetDefault("observability.environment", "development")
	v.SetDefault("observability.log_level", "info")
	v.SetDefault("observability.log_format", "json")
}

func (s *StorageConfig) validate() error {
	for name, b := range map[string]BackendConfig{"cosmetics": s.Cosmetics, "videogames": s.Videogames} {
		switch b.Backend {
		case "postgres", "csv":
		default:
			return fmt.Errorf("storage.%s.backend: unknown backend %q (supported: postgres, csv)", name, b.Backend)
		}
	}
	return nil
}
