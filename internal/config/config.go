package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                App                `mapstructure:",squash"`
	Server             Server             `mapstructure:",squash"`
	Database           Database           `mapstructure:",squash"`
	Leadssu            Leadssu            `mapstructure:",squash"`
	Auth               Auth               `mapstructure:",squash"`
	LeadSync           LeadSync           `mapstructure:",squash"`
	CommissionSnapshot CommissionSnapshot `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Leadssu reúne os parâmetros da API de webmaster do leads.su
type Leadssu struct {
	URL               string        `mapstructure:"leadssu_url"`
	Token             string        `mapstructure:"leadssu_token"`
	TrackingURL       string        `mapstructure:"leadssu_tracking_url"`
	PageSize          int           `mapstructure:"leadssu_page_size"`
	Timeout           time.Duration `mapstructure:"leadssu_timeout"`
	RequestsPerSecond float64       `mapstructure:"leadssu_requests_per_second"` // 0 desabilita o limitador
}

// DefaultAuthSecret só serve para desenvolvimento local
const DefaultAuthSecret = "your_secret_key"

var ErrDefaultAuthSecret = errors.New("config: AUTH_SECRET precisa ser definido quando AUTH_CLIENT_ID está configurado")

type Auth struct {
	Secret           string `mapstructure:"auth_secret"`
	ClientID         string `mapstructure:"auth_client_id"`
	ClientSecretHash string `mapstructure:"auth_client_secret_hash"` // hash bcrypt
}

type LeadSync struct {
	CronSchedule string `mapstructure:"lead_sync_cron"`
	LookbackDays int    `mapstructure:"lead_sync_lookback_days"`
	Enabled      bool   `mapstructure:"lead_sync_enabled"`
}

type CommissionSnapshot struct {
	CronSchedule string `mapstructure:"commission_snapshot_cron"`
	Enabled      bool   `mapstructure:"commission_snapshot_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/leadssu")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("LEADSSU_URL", "https://api.leads.su/webmaster/")
	viper.SetDefault("LEADSSU_TOKEN", "")
	viper.SetDefault("LEADSSU_TRACKING_URL", "https://pxl.leads.su/aff_c")
	viper.SetDefault("LEADSSU_PAGE_SIZE", 500)
	viper.SetDefault("LEADSSU_TIMEOUT", "30s")
	viper.SetDefault("LEADSSU_REQUESTS_PER_SECOND", 0)

	viper.SetDefault("AUTH_SECRET", DefaultAuthSecret)
	viper.SetDefault("AUTH_CLIENT_ID", "")
	viper.SetDefault("AUTH_CLIENT_SECRET_HASH", "")

	viper.SetDefault("LEAD_SYNC_CRON", "0 3 * * *")   // Todos os dias às 3h da manhã
	viper.SetDefault("LEAD_SYNC_LOOKBACK_DAYS", 7)    // 7 dias para buscar leads
	viper.SetDefault("LEAD_SYNC_ENABLED", false)      // Habilitar sincronização de leads

	viper.SetDefault("COMMISSION_SNAPSHOT_CRON", "0 4 * * *") // Todos os dias às 4h da manhã
	viper.SetDefault("COMMISSION_SNAPSHOT_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
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

	config.Normalize()

	if err := config.Validate(); err != nil {
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

// Normalize corrige valores que a API do leads.su exige em um formato específico
func (c *Config) Normalize() {
	// A URL base precisa terminar em "/" para que as actions sejam resolvidas abaixo dela
	if c.Leadssu.URL != "" && !strings.HasSuffix(c.Leadssu.URL, "/") {
		c.Leadssu.URL += "/"
	}

	if c.Leadssu.PageSize <= 0 {
		c.Leadssu.PageSize = 500
	}

	if c.Leadssu.Timeout <= 0 {
		c.Leadssu.Timeout = 30 * time.Second
	}

	if c.LeadSync.LookbackDays <= 0 {
		c.LeadSync.LookbackDays = 1
	}
}

// Validate recusa o secret padrão quando o login está habilitado
func (c *Config) Validate() error {
	if c.Auth.Secret != DefaultAuthSecret {
		return nil
	}

	if c.Auth.ClientID != "" {
		return ErrDefaultAuthSecret
	}

	logrus.Warn("config: AUTH_SECRET usa o valor padrão")
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
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
