// Package config carga la configuración del proceso: YAML opcional +
// overrides por variables de entorno. Los signing keys vienen SOLO de
// env y su ausencia es fatal en el arranque.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		// dev | prod
		Env string `yaml:"env"`
		// Name se usa como claim "iss" de los tokens y en los mails.
		Name string `yaml:"name"`
		// Domain es la URL base pública para armar links de email.
		Domain string `yaml:"domain"`
	} `yaml:"app"`

	Server struct {
		Addr string `yaml:"addr"`
		// UploadsDir es el directorio local para imágenes de posts,
		// servido bajo /uploads.
		UploadsDir string `yaml:"uploads_dir"`
	} `yaml:"server"`

	Storage struct {
		Driver string `yaml:"driver"` // "postgres" | "memory"
		DSN    string `yaml:"dsn"`
	} `yaml:"storage"`

	Cache struct {
		Driver string `yaml:"driver"` // "redis" | "memory"
		Redis  struct {
			Host     string `yaml:"host"`
			Port     int    `yaml:"port"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
			Prefix   string `yaml:"prefix"`
		} `yaml:"redis"`
	} `yaml:"cache"`

	SMTP struct {
		Host               string `yaml:"host"`
		Port               int    `yaml:"port"`
		Username           string `yaml:"username"`
		Password           string `yaml:"password"`
		From               string `yaml:"from"`
		TLS                string `yaml:"tls"` // auto | ssl | none
		InsecureSkipVerify bool   `yaml:"insecure_skip_verify"`
	} `yaml:"smtp"`

	// JWT signing keys; nunca en YAML, solo env.
	SigningKeys struct {
		Access  string `yaml:"-"`
		Refresh string `yaml:"-"`
	} `yaml:"-"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Load lee el YAML (si path no es vacío), aplica overrides de entorno
// y valida lo obligatorio.
func Load(path string) (*Config, error) {
	var c Config

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	c.applyEnv()
	c.applyDefaults()

	if c.SigningKeys.Access == "" || c.SigningKeys.Refresh == "" {
		return nil, fmt.Errorf("config: ACCESS_SIGNING_KEY and REFRESH_SIGNING_KEY are required")
	}
	return &c, nil
}

func (c *Config) applyEnv() {
	c.App.Env = getenv("APP_ENV", c.App.Env)
	c.App.Name = getenv("APP_NAME", c.App.Name)
	c.App.Domain = getenv("APP_DOMAIN", c.App.Domain)

	c.Server.Addr = getenv("SERVER_ADDR", c.Server.Addr)

	c.Storage.Driver = getenv("STORAGE_DRIVER", c.Storage.Driver)
	c.Storage.DSN = getenv("DATABASE_DSN", c.Storage.DSN)

	c.Cache.Driver = getenv("CACHE_DRIVER", c.Cache.Driver)
	c.Cache.Redis.Host = getenv("REDIS_HOST", c.Cache.Redis.Host)
	c.Cache.Redis.Port = getenvInt("REDIS_PORT", c.Cache.Redis.Port)
	c.Cache.Redis.Password = getenv("REDIS_PASSWORD", c.Cache.Redis.Password)

	c.SMTP.Host = getenv("SMTP_HOST", c.SMTP.Host)
	c.SMTP.Port = getenvInt("SMTP_PORT", c.SMTP.Port)
	c.SMTP.Username = getenv("SMTP_USERNAME", c.SMTP.Username)
	c.SMTP.Password = getenv("SMTP_PASSWORD", c.SMTP.Password)
	c.SMTP.From = getenv("SMTP_FROM", c.SMTP.From)

	c.SigningKeys.Access = getenv("ACCESS_SIGNING_KEY", "")
	c.SigningKeys.Refresh = getenv("REFRESH_SIGNING_KEY", "")

	c.Log.Level = getenv("LOG_LEVEL", c.Log.Level)
}

func (c *Config) applyDefaults() {
	if c.App.Env == "" {
		c.App.Env = "dev"
	}
	if c.App.Name == "" {
		c.App.Name = "Faux Facebook"
	}
	if c.App.Domain == "" {
		c.App.Domain = "http://localhost:8080"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.UploadsDir == "" {
		c.Server.UploadsDir = "public/uploads"
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = "memory"
	}
	if c.Cache.Driver == "" {
		c.Cache.Driver = "memory"
	}
	if c.Cache.Redis.Host == "" {
		c.Cache.Redis.Host = "localhost"
	}
	if c.SMTP.TLS == "" {
		c.SMTP.TLS = "auto"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
