package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// envPrefix is the prefix for environment variable overrides, e.g. LINKPULSE_ENV.
const envPrefix = "linkpulse"

type Config struct {
	Env        string `yaml:"env" envconfig:"ENV"`
	BaseURL    string `yaml:"base_url" envconfig:"BASE_URL"`
	SlugLength int    `yaml:"slug_length" envconfig:"SLUG_LENGTH"`
	TopN       int    `yaml:"top_n" envconfig:"TOP_N"`
	HTTPServer `yaml:"http_server"`
	Postgres   `yaml:"postgres"`
}

type HTTPServer struct {
	Port           int           `yaml:"port" envconfig:"HTTP_PORT"`
	ReadTimeout    time.Duration `yaml:"read_timeout" envconfig:"HTTP_READ_TIMEOUT"`
	WriteTimeout   time.Duration `yaml:"write_timeout" envconfig:"HTTP_WRITE_TIMEOUT"`
	IdleTimeout    time.Duration `yaml:"idle_timeout" envconfig:"HTTP_IDLE_TIMEOUT"`
	MaxHeaderBytes int           `yaml:"max_header_bytes" envconfig:"HTTP_MAX_HEADER_BYTES"`
	CertFile       string        `yaml:"cert_file" envconfig:"HTTP_CERT_FILE"`
	KeyFile        string        `yaml:"key_file" envconfig:"HTTP_KEY_FILE"`
}

var defaultHTTPServer = HTTPServer{
	Port:           8080,
	ReadTimeout:    5 * time.Second,
	WriteTimeout:   10 * time.Second,
	IdleTimeout:    time.Minute,
	MaxHeaderBytes: 1 << 20,
}

func (s *HTTPServer) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

type Postgres struct {
	User            string        `yaml:"user" envconfig:"PG_USER"`
	Password        string        `yaml:"password" envconfig:"PG_PASSWORD"`
	Host            string        `yaml:"host" envconfig:"PG_HOST"`
	Port            int           `yaml:"port" envconfig:"PG_PORT"`
	DB              string        `yaml:"db" envconfig:"PG_DB"`
	SSLMode         string        `yaml:"sslmode" envconfig:"PG_SSLMODE"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time" envconfig:"PG_CONN_MAX_IDLE_TIME"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" envconfig:"PG_CONN_MAX_LIFETIME"`
	MaxIdleConns    int           `yaml:"max_idle_conns" envconfig:"PG_MAX_IDLE_CONNS"`
	MaxOpenConns    int           `yaml:"max_open_conns" envconfig:"PG_MAX_OPEN_CONNS"`
}

var defaultPostgres = Postgres{
	Host:            "localhost",
	Port:            5432,
	SSLMode:         "disable",
	ConnMaxIdleTime: 5 * time.Minute,
	ConnMaxLifetime: 30 * time.Minute,
	MaxIdleConns:    5,
	MaxOpenConns:    25,
}

func (p *Postgres) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.DB, p.SSLMode)
}

// Load reads the YAML config file at path and applies environment variable
// overrides on top of it. An empty path skips the file and configures from
// defaults and the environment only.
func Load(path string) (*Config, error) {
	const op = "config.Load"

	var cfg Config
	setDefaults(&cfg)

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to open config file: %w", op, err)
		}
		defer f.Close()

		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("%s: failed to decode config file: %w", op, err)
		}
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("%s: failed to process environment overrides: %w", op, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.BaseURL == "" {
		return errors.New("base_url must be set")
	}
	if cfg.SlugLength <= 0 {
		return errors.New("slug_length must be positive")
	}
	if cfg.TopN <= 0 {
		return errors.New("top_n must be positive")
	}
	return nil
}

func setDefaults(cfg *Config) {
	cfg.Env = EnvDev
	cfg.BaseURL = "http://localhost:8080"
	cfg.SlugLength = 6
	cfg.TopN = 10
	cfg.HTTPServer = defaultHTTPServer
	cfg.Postgres = defaultPostgres
}
