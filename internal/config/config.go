package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Keys double as environment variable names once upper-cased.
const (
	KeyUser     = "db_user"
	KeyHost     = "db_host"
	KeyName     = "db_name"
	KeyPassword = "db_password"
	KeyPort     = "db_port"
	KeySSLMode  = "db_sslmode"
	KeyLogLevel = "log_level"
)

type Config struct {
	User     string
	Host     string
	Name     string
	Password string
	Port     int
	SSLMode  string
	LogLevel string
}

// SetDefaults registers the fallback for every key and makes viper
// consult the environment.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyUser, "postgres")
	v.SetDefault(KeyHost, "localhost")
	v.SetDefault(KeyName, "employee_db")
	v.SetDefault(KeyPassword, "postgres")
	v.SetDefault(KeyPort, 5432)
	v.SetDefault(KeySSLMode, "disable")
	v.SetDefault(KeyLogLevel, "info")
	v.AutomaticEnv()
}

func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	cfg := Config{
		User:     strings.TrimSpace(v.GetString(KeyUser)),
		Host:     strings.TrimSpace(v.GetString(KeyHost)),
		Name:     strings.TrimSpace(v.GetString(KeyName)),
		Password: v.GetString(KeyPassword),
		Port:     v.GetInt(KeyPort),
		SSLMode:  strings.TrimSpace(v.GetString(KeySSLMode)),
		LogLevel: strings.TrimSpace(v.GetString(KeyLogLevel)),
	}

	if cfg.Host == "" {
		return Config{}, fmt.Errorf("%s must not be empty", strings.ToUpper(KeyHost))
	}
	if cfg.Name == "" {
		return Config{}, fmt.Errorf("%s must not be empty", strings.ToUpper(KeyName))
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("%s must be a port number, got %q", strings.ToUpper(KeyPort), v.GetString(KeyPort))
	}

	return cfg, nil
}

// DSN renders the connection settings as a libpq keyword/value string.
func (c Config) DSN() string {
	parts := []string{
		"host=" + quote(c.Host),
		"port=" + fmt.Sprint(c.Port),
		"user=" + quote(c.User),
		"password=" + quote(c.Password),
		"dbname=" + quote(c.Name),
	}
	if c.SSLMode != "" {
		parts = append(parts, "sslmode="+quote(c.SSLMode))
	}
	return strings.Join(parts, " ")
}

func quote(value string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(value)
	return "'" + escaped + "'"
}
