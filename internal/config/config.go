package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ==================== 配置结构 ====================

// Config 应用配置，启动时加载一次，之后只读
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Log        LogConfig
	AI         AIConfig
	Storage    StorageConfig
	Generation GenerationConfig
}

type ServerConfig struct {
	Port            string
	Mode            string // gin 模式: debug | release | test
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Driver          string // sqlite | postgres
	DSN             string
	LogLevel        string // silent | error | warn | info
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

type LogConfig struct {
	Mode  string // dev | prod
	Level string
}

// AIConfig 供应商凭证与模型，凭证是否存在决定供应商选择
type AIConfig struct {
	OpenAIKey        string
	OpenAIBaseURL    string
	OpenAITextModel  string
	OpenAIImageModel string
	GeminiKey        string
	GeminiModel      string
}

type StorageConfig struct {
	Provider  string // local | s3 | 空(占位 URL)
	LocalDir  string
	PublicURL string
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	CDNDomain string
	BasePath  string
}

type GenerationConfig struct {
	Concurrency int     // 单请求内并发调用供应商的上限
	RateLimit   float64 // /api/generate 每客户端每秒请求数，0 表示不限流
	RateBurst   int
}

// ==================== 加载 ====================

// Load 读取配置：默认值 < config.yaml < .env < 环境变量
func Load(configFile string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	bindEnvs(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            v.GetString("server.port"),
			Mode:            v.GetString("server.mode"),
			ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		},
		Database: DatabaseConfig{
			Driver:          strings.ToLower(v.GetString("database.driver")),
			DSN:             v.GetString("database.dsn"),
			LogLevel:        v.GetString("database.log_level"),
			MaxIdleConns:    v.GetInt("database.max_idle_conns"),
			MaxOpenConns:    v.GetInt("database.max_open_conns"),
			ConnMaxLifetime: v.GetDuration("database.conn_max_lifetime"),
		},
		Log: LogConfig{
			Mode:  v.GetString("log.mode"),
			Level: v.GetString("log.level"),
		},
		AI: AIConfig{
			OpenAIKey:        strings.TrimSpace(v.GetString("ai.openai.api_key")),
			OpenAIBaseURL:    v.GetString("ai.openai.base_url"),
			OpenAITextModel:  v.GetString("ai.openai.text_model"),
			OpenAIImageModel: v.GetString("ai.openai.image_model"),
			GeminiKey:        strings.TrimSpace(v.GetString("ai.gemini.api_key")),
			GeminiModel:      v.GetString("ai.gemini.model"),
		},
		Storage: StorageConfig{
			Provider:  strings.ToLower(v.GetString("storage.provider")),
			LocalDir:  v.GetString("storage.local_dir"),
			PublicURL: v.GetString("storage.public_url"),
			Bucket:    v.GetString("storage.bucket"),
			Region:    v.GetString("storage.region"),
			AccessKey: v.GetString("storage.access_key"),
			SecretKey: v.GetString("storage.secret_key"),
			CDNDomain: v.GetString("storage.cdn_domain"),
			BasePath:  v.GetString("storage.base_path"),
		},
		Generation: GenerationConfig{
			Concurrency: v.GetInt("generation.concurrency"),
			RateLimit:   v.GetFloat64("generation.rate_limit_rps"),
			RateBurst:   v.GetInt("generation.rate_limit_burst"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 校验配置组合是否可用
func (c *Config) Validate() error {
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("不支持的运行模式: %s", c.Server.Mode)
	}
	switch c.Database.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("不支持的数据库驱动: %s", c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return errors.New("数据库连接串不能为空")
	}
	switch c.Storage.Provider {
	case "", "local", "s3":
	default:
		return fmt.Errorf("不支持的存储提供者: %s", c.Storage.Provider)
	}
	if c.Storage.Provider == "s3" && c.Storage.Bucket == "" {
		return errors.New("S3 存储需要配置 bucket")
	}
	if c.Generation.Concurrency <= 0 {
		c.Generation.Concurrency = 1
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8787")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.shutdown_timeout", 30*time.Second)

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "novonovo.db")
	v.SetDefault("database.log_level", "warn")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", time.Hour)

	v.SetDefault("log.mode", "dev")
	v.SetDefault("log.level", "info")

	v.SetDefault("ai.openai.text_model", "gpt-4o-mini")
	v.SetDefault("ai.openai.image_model", "dall-e-3")
	v.SetDefault("ai.gemini.model", "gemini-1.5-flash")

	v.SetDefault("storage.local_dir", "uploads")
	v.SetDefault("storage.public_url", "/uploads")
	v.SetDefault("storage.base_path", "novonovo")

	v.SetDefault("generation.concurrency", 4)
	v.SetDefault("generation.rate_limit_rps", 0)
	v.SetDefault("generation.rate_limit_burst", 5)
}

// bindEnvs 环境变量名沿用部署环境中已有的命名
func bindEnvs(v *viper.Viper) {
	binds := map[string][]string{
		"server.port": {"SERVER_PORT", "PORT"},
		"server.mode": {"GIN_MODE"},

		"database.driver":    {"DB_DRIVER"},
		"database.dsn":       {"DATABASE_URL"},
		"database.log_level": {"DB_LOG_LEVEL"},

		"log.mode":  {"LOG_MODE"},
		"log.level": {"LOG_LEVEL"},

		"ai.openai.api_key":     {"OPENAI_API_KEY"},
		"ai.openai.base_url":    {"OPENAI_BASE_URL"},
		"ai.openai.text_model":  {"OPENAI_TEXT_MODEL"},
		"ai.openai.image_model": {"OPENAI_IMAGE_MODEL"},
		"ai.gemini.api_key":     {"GOOGLE_GEMINI_API_KEY", "GEMINI_API_KEY"},
		"ai.gemini.model":       {"GEMINI_MODEL"},

		"storage.provider":   {"STORAGE_PROVIDER"},
		"storage.local_dir":  {"STORAGE_LOCAL_DIR"},
		"storage.public_url": {"STORAGE_PUBLIC_URL"},
		"storage.bucket":     {"AWS_BUCKET"},
		"storage.region":     {"AWS_REGION"},
		"storage.access_key": {"AWS_ACCESS_KEY_ID"},
		"storage.secret_key": {"AWS_SECRET_ACCESS_KEY"},
		"storage.cdn_domain": {"AWS_CDN_DOMAIN"},
		"storage.base_path":  {"STORAGE_BASE_PATH"},

		"generation.concurrency":      {"GENERATION_CONCURRENCY"},
		"generation.rate_limit_rps":   {"RATE_LIMIT_GENERATE_RPS"},
		"generation.rate_limit_burst": {"RATE_LIMIT_GENERATE_BURST"},
	}
	for key, envs := range binds {
		_ = v.BindEnv(append([]string{key}, envs...)...)
	}
}
