package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	Insights        Insights        `mapstructure:",squash"`
	RecordRetention RecordRetention `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Enabled bool   `mapstructure:"auth_enabled"`
	Secret  string `mapstructure:"auth_secret"`
}

// Insights controla o período de consulta das visões de comparação
type Insights struct {
	DefaultRangeDays int `mapstructure:"insights_default_range_days"`
	MaxRangeDays     int `mapstructure:"insights_max_range_days"`
}

type RecordRetention struct {
	CronSchedule string `mapstructure:"record_retention_cron"`
	Days         int    `mapstructure:"record_retention_days"`
	Enabled      bool   `mapstructure:"record_retention_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:4001")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/campaign_insights?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_ENABLED", true)
	viper.SetDefault("AUTH_SECRET", "your_secret_key")

	viper.SetDefault("INSIGHTS_DEFAULT_RANGE_DAYS", 30) // últimos 30 dias quando o período não é informado
	viper.SetDefault("INSIGHTS_MAX_RANGE_DAYS", 366)    // no máximo um ano por consulta

	viper.SetDefault("RECORD_RETENTION_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("RECORD_RETENTION_DAYS", 730)         // 2 anos de histórico
	viper.SetDefault("RECORD_RETENTION_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func (c *Config) validate() error {
	if c.Insights.DefaultRangeDays <= 0 {
		return fmt.Errorf("config: INSIGHTS_DEFAULT_RANGE_DAYS deve ser positivo, recebido %d", c.Insights.DefaultRangeDays)
	}
	if c.Insights.MaxRangeDays < c.Insights.DefaultRangeDays {
		return fmt.Errorf("config: INSIGHTS_MAX_RANGE_DAYS (%d) menor que INSIGHTS_DEFAULT_RANGE_DAYS (%d)",
			c.Insights.MaxRangeDays, c.Insights.DefaultRangeDays)
	}
	if c.RecordRetention.Enabled && c.RecordRetention.Days <= 0 {
		return fmt.Errorf("config: RECORD_RETENTION_DAYS deve ser positivo, recebido %d", c.RecordRetention.Days)
	}
	if c.Auth.Enabled && c.Auth.Secret == "" {
		return fmt.Errorf("config: AUTH_SECRET é obrigatório quando AUTH_ENABLED=true")
	}
	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
