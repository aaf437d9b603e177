package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Session SessionConfig
	Notify  NotifyConfig
	Docs    DocsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SessionConfig configuración del token de sesión por pestaña y del login simulado.
type SessionConfig struct {
	Secret       string
	TTLMinutes   int
	Issuer       string
	LoginDelayMS int // retardo artificial antes de escribir la sesión
	SweepSeconds int // cada cuánto se cierran las sesiones vencidas
}

// TTL devuelve la vida de la sesión como duración.
func (c SessionConfig) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

// SweepInterval devuelve el intervalo de limpieza de sesiones vencidas.
func (c SessionConfig) SweepInterval() time.Duration {
	return time.Duration(c.SweepSeconds) * time.Second
}

// LoginDelay devuelve el retardo del login como duración.
func (c SessionConfig) LoginDelay() time.Duration {
	return time.Duration(c.LoginDelayMS) * time.Millisecond
}

// NotifyConfig configuración de las notificaciones transitorias (toasts).
type NotifyConfig struct {
	DismissSeconds int
}

// Dismiss devuelve el tiempo de auto-descarte.
func (c NotifyConfig) Dismiss() time.Duration {
	return time.Duration(c.DismissSeconds) * time.Second
}

// DocsConfig ubicación del swagger.json servido en /docs.
type DocsConfig struct {
	SwaggerFile string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, SESSION_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "dolphnet-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Session: SessionConfig{
			Secret:       getString(v, "SESSION_SECRET", ""),
			TTLMinutes:   getInt(v, "SESSION_TTL_MINUTES", 480),
			Issuer:       getString(v, "SESSION_ISSUER", "dolphnet"),
			LoginDelayMS: getInt(v, "LOGIN_DELAY_MS", 1000),
			SweepSeconds: getInt(v, "SESSION_SWEEP_SECONDS", 60),
		},
		Notify: NotifyConfig{
			DismissSeconds: getInt(v, "NOTIFY_DISMISS_SECONDS", 5),
		},
		Docs: DocsConfig{
			SwaggerFile: getString(v, "SWAGGER_FILE", "./docs/swagger.json"),
		},
	}

	if cfg.Session.Secret == "" {
		if cfg.App.Env != "development" {
			return nil, fmt.Errorf("config: SESSION_SECRET es obligatorio fuera de development")
		}
		cfg.Session.Secret = "dolphnet-dev-secret"
	}
	if cfg.Session.TTLMinutes <= 0 {
		return nil, fmt.Errorf("config: SESSION_TTL_MINUTES debe ser positivo")
	}
	if cfg.Session.LoginDelayMS < 0 {
		cfg.Session.LoginDelayMS = 0
	}
	if cfg.Session.SweepSeconds <= 0 {
		cfg.Session.SweepSeconds = 60
	}
	if cfg.Notify.DismissSeconds <= 0 {
		cfg.Notify.DismissSeconds = 5
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
