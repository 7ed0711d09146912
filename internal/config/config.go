package config

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	coreconfig "github.com/go-core-fx/config"
	"github.com/go-playground/validator/v10"
)

const (
	MailProviderSendGrid = "sendgrid"
	MailProviderSMTP     = "smtp"
)

type Config struct {
	IdoSellAPIKey   string        `koanf:"idosell_api_key" validate:"required"`
	IdoSellEndpoint string        `koanf:"idosell_endpoint" validate:"required,url"`
	ResultsLimit    int           `koanf:"results_limit" validate:"gt=0"`
	MaxPages        int           `koanf:"max_pages" validate:"gt=0"`
	RetryAttempts   int           `koanf:"retry_attempts" validate:"gt=0"`
	RetryBase       float64       `koanf:"retry_base" validate:"gt=0"`
	RequestTimeout  time.Duration `koanf:"request_timeout" validate:"gte=0"`
	RunTimeout      time.Duration `koanf:"run_timeout" validate:"gte=0"`

	TopN            int    `koanf:"top_n" validate:"gt=0"`
	Timezone        string `koanf:"tz" validate:"required,timezone"`
	RevenueEnabled  bool   `koanf:"revenue_enabled"`
	DefaultCurrency string `koanf:"default_currency" validate:"required"`

	MailProvider     string `koanf:"mail_provider" validate:"oneof=sendgrid smtp"`
	SendGridAPIKey   string `koanf:"sendgrid_api_key" validate:"required_if=MailProvider sendgrid"`
	SendGridEndpoint string `koanf:"sendgrid_endpoint" validate:"omitempty,url"`
	SMTPHost         string `koanf:"smtp_host" validate:"required_if=MailProvider smtp"`
	SMTPPort         int    `koanf:"smtp_port" validate:"gt=0"`
	SMTPUsername     string `koanf:"smtp_username"`
	SMTPPassword     string `koanf:"smtp_password"`
	MailFrom         string `koanf:"mail_from" validate:"required"`
	MailTo           string `koanf:"mail_to" validate:"required"`

	LLMBaseURL string `koanf:"llm_base_url"`
	LLMAPIKey  string `koanf:"llm_api_key"`
	LLMModel   string `koanf:"llm_model"`

	LogFile string `koanf:"log_file"`
	Debug   bool   `koanf:"debug"`
}

func Defaults() Config {
	return Config{
		IdoSellEndpoint:  "https://client5056.idosell.com/api/admin/v3/orders/orders/get",
		ResultsLimit:     100,
		MaxPages:         2000,
		RetryAttempts:    5,
		RetryBase:        1.6,
		RequestTimeout:   60 * time.Second,
		TopN:             10,
		Timezone:         "Europe/Warsaw",
		DefaultCurrency:  "PLN",
		MailProvider:     MailProviderSendGrid,
		SendGridEndpoint: "https://api.sendgrid.com/v3/mail/send",
		SMTPPort:         587,
		LogFile:          "./orders-report.log",
	}
}

func New() (Config, error) {
	cfg := Defaults()

	if err := coreconfig.Load(&cfg); err != nil {
		return Config{}, loadError(err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// loadError marks an unreadable or unparsable environment as a configuration
// problem.
func loadError(err error) error {
	return fmt.Errorf("loading config: %w: %w", ErrInvalidConfig, err)
}

// Validate reports every missing or invalid setting at once.
func (c Config) Validate() error {
	var problems []string

	if err := newValidator().Struct(c); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return fmt.Errorf("validating config: %w", err)
		}
		for _, fe := range verrs {
			problems = append(problems, fe.Field())
		}
	}

	if strings.TrimSpace(c.MailTo) != "" && len(c.Recipients()) == 0 {
		problems = append(problems, "MAIL_TO")
	}

	if len(problems) > 0 {
		return &ConfigurationError{Settings: problems}
	}
	return nil
}

// Recipients splits MAIL_TO on commas, dropping blank entries.
func (c Config) Recipients() []string {
	return ParseRecipients(c.MailTo)
}

// Location loads the report time zone. Validate guarantees it resolves.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func ParseRecipients(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if addr := strings.TrimSpace(part); addr != "" {
			out = append(out, addr)
		}
	}
	return out
}

func (c *Config) normalize() {
	c.IdoSellAPIKey = strings.TrimSpace(c.IdoSellAPIKey)
	c.IdoSellEndpoint = strings.TrimSpace(c.IdoSellEndpoint)
	c.Timezone = strings.TrimSpace(c.Timezone)
	c.DefaultCurrency = strings.ToUpper(strings.TrimSpace(c.DefaultCurrency))
	c.MailProvider = strings.ToLower(strings.TrimSpace(c.MailProvider))
	c.SendGridAPIKey = strings.TrimSpace(c.SendGridAPIKey)
	c.MailFrom = strings.TrimSpace(c.MailFrom)
	c.MailTo = strings.TrimSpace(c.MailTo)
}

// newValidator reports fields by their environment variable names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("koanf"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return strings.ToUpper(name)
	})
	return v
}
