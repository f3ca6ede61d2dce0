package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Políticas para texto que não é número
const (
	InvalidInputPropagate = "propagate"
	InvalidInputReject    = "reject"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Estimator   Estimator   `mapstructure:",squash"`
	Widget      Widget      `mapstructure:",squash"`
	WidgetSweep WidgetSweep `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Estimator struct {
	DisplayLocale      string  `mapstructure:"display_locale"`
	InvalidInputPolicy string  `mapstructure:"invalid_input_policy"`
	DefaultViews       float64 `mapstructure:"default_views"`
	DefaultMonetized   float64 `mapstructure:"default_monetized_percent"`
	DefaultCPMLow      float64 `mapstructure:"default_cpm_low"`
	DefaultCPMHigh     float64 `mapstructure:"default_cpm_high"`
}

type Widget struct {
	TTL time.Duration `mapstructure:"widget_ttl"`
}

type WidgetSweep struct {
	CronSchedule string `mapstructure:"widget_sweep_cron"`
	Enabled      bool   `mapstructure:"widget_sweep_enabled"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", "8000")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	v.SetDefault("LOG_LEVEL", "debug")
	v.SetDefault("APP_ENV", "development")

	// Valores iniciais do formulário
	v.SetDefault("DISPLAY_LOCALE", "en-US")
	v.SetDefault("INVALID_INPUT_POLICY", InvalidInputPropagate)
	v.SetDefault("DEFAULT_VIEWS", 1000000)
	v.SetDefault("DEFAULT_MONETIZED_PERCENT", 60)
	v.SetDefault("DEFAULT_CPM_LOW", 2)
	v.SetDefault("DEFAULT_CPM_HIGH", 10)

	v.SetDefault("WIDGET_TTL", "30m")
	v.SetDefault("WIDGET_SWEEP_CRON", "*/5 * * * *") // A cada 5 minutos
	v.SetDefault("WIDGET_SWEEP_ENABLED", true)

	v.SetDefault("AUTH_SECRET", "")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	v := viper.New()
	SetDefaults(v)

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	}

	return Load(v)
}

// Load decodifica a configuração a partir de uma instância do viper já preenchida
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	settings := make(map[string]any)
	for _, key := range v.AllKeys() {
		settings[key] = v.Get(key)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
		WeaklyTypedInput: true,
		Result:           cfg,
	})
	if err != nil {
		return nil, errors.Wrap(err, "config: creating decoder")
	}

	if err := decoder.Decode(settings); err != nil {
		return nil, errors.Wrap(err, "config: decoding settings")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	c.Estimator.InvalidInputPolicy = strings.ToLower(strings.TrimSpace(c.Estimator.InvalidInputPolicy))
	switch c.Estimator.InvalidInputPolicy {
	case InvalidInputPropagate, InvalidInputReject:
	default:
		return fmt.Errorf("config: invalid INVALID_INPUT_POLICY %q (accepted: %s, %s)",
			c.Estimator.InvalidInputPolicy, InvalidInputPropagate, InvalidInputReject)
	}

	if c.Widget.TTL <= 0 {
		return fmt.Errorf("config: WIDGET_TTL must be positive, got %s", c.Widget.TTL)
	}

	origins := c.Server.AllowedOrigins[:0]
	for _, origin := range c.Server.AllowedOrigins {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	c.Server.AllowedOrigins = origins

	return nil
}

func (c *Config) Address() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// loadEnvFile carrega o arquivo .env do diretório atual ou de um dos diretórios acima
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
