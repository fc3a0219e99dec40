package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/Casper-hue/api-watchdog/internal/api"
	"github.com/Casper-hue/api-watchdog/internal/i18n"
	"github.com/Casper-hue/api-watchdog/internal/viewmodel"
)

// EnvPrefix prefixes environment overrides, e.g. API_WATCHDOG_SERVER_BASE_URL.
const EnvPrefix = "API_WATCHDOG"

type Config struct {
	Server        ServerConfig        `toml:"server" mapstructure:"server"`
	General       GeneralConfig       `toml:"general" mapstructure:"general"`
	Notifications NotificationsConfig `toml:"notifications" mapstructure:"notifications"`
	Log           LogConfig           `toml:"log" mapstructure:"log"`
	Metrics       MetricsConfig       `toml:"metrics" mapstructure:"metrics"`
}

type ServerConfig struct {
	BaseURL    string   `toml:"base_url" mapstructure:"base_url"`
	Timeout    Duration `toml:"timeout" mapstructure:"timeout"` // per attempt
	Retries    int      `toml:"retries" mapstructure:"retries"`
	RetryDelay Duration `toml:"retry_delay" mapstructure:"retry_delay"`
	RateLimit  float64  `toml:"rate_limit" mapstructure:"rate_limit"` // requests/sec, 0 = unlimited
}

type GeneralConfig struct {
	Interval   int    `toml:"interval" mapstructure:"interval"` // seconds
	Language   string `toml:"language" mapstructure:"language"`
	Period     string `toml:"period" mapstructure:"period"`
	Equivalent string `toml:"equivalent" mapstructure:"equivalent"`
}

type NotificationsConfig struct {
	Enabled bool `toml:"enabled" mapstructure:"enabled"`
	Bell    bool `toml:"bell" mapstructure:"bell"`
}

type LogConfig struct {
	Level string `toml:"level" mapstructure:"level"`
	File  string `toml:"file" mapstructure:"file"`
}

type MetricsConfig struct {
	Addr string `toml:"addr" mapstructure:"addr"` // empty disables the endpoint
}

// Duration is a time.Duration written as "5s" in the config file.
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			BaseURL:    "http://localhost:8000",
			Timeout:    Duration(5 * time.Second),
			Retries:    3,
			RetryDelay: Duration(time.Second),
		},
		General: GeneralConfig{
			Interval:   30,
			Language:   "en",
			Period:     string(viewmodel.PeriodWeek),
			Equivalent: "coffee",
		},
		Notifications: NotificationsConfig{
			Enabled: true,
			Bell:    false,
		},
		Log: LogConfig{
			Level: "info",
			File:  DefaultLogPath(),
		},
	}
}

func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "api-watchdog")
}

func DefaultPath() string {
	return filepath.Join(configDir(), "config.toml")
}

func DefaultLogPath() string {
	return filepath.Join(configDir(), "api-watchdog.log")
}

func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("server.base_url", cfg.Server.BaseURL)
	v.SetDefault("server.timeout", time.Duration(cfg.Server.Timeout).String())
	v.SetDefault("server.retries", cfg.Server.Retries)
	v.SetDefault("server.retry_delay", time.Duration(cfg.Server.RetryDelay).String())
	v.SetDefault("server.rate_limit", cfg.Server.RateLimit)
	v.SetDefault("general.interval", cfg.General.Interval)
	v.SetDefault("general.language", cfg.General.Language)
	v.SetDefault("general.period", cfg.General.Period)
	v.SetDefault("general.equivalent", cfg.General.Equivalent)
	v.SetDefault("notifications.enabled", cfg.Notifications.Enabled)
	v.SetDefault("notifications.bell", cfg.Notifications.Bell)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.file", cfg.Log.File)
	v.SetDefault("metrics.addr", cfg.Metrics.Addr)
}

// Load reads path, applies API_WATCHDOG_* environment overrides and fills
// anything unset from DefaultConfig. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, cfg)

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("decode config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return cfg, fmt.Errorf("stat config %s: %w", path, err)
	}

	hook := mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	)
	if err := v.Unmarshal(&cfg, viper.DecodeHook(hook)); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(cfg Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	// Readers and the watcher only ever see the old or the new file.
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp config: %w", err)
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	if err := f.Chmod(0600); err != nil {
		f.Close()
		return fmt.Errorf("chmod config: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		return fmt.Errorf("encode config: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace config %s: %w", path, err)
	}
	return nil
}

// Validate rejects settings the client cannot run with.
func (c Config) Validate() error {
	u, err := url.Parse(c.Server.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("server.base_url %q: must be an http(s) URL", c.Server.BaseURL)
	}
	if c.Server.Retries <= 0 {
		return fmt.Errorf("server.retries must be positive, got %d", c.Server.Retries)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout.Std())
	}
	if c.Server.RetryDelay < 0 {
		return fmt.Errorf("server.retry_delay must not be negative, got %s", c.Server.RetryDelay.Std())
	}
	if c.Server.RateLimit < 0 {
		return fmt.Errorf("server.rate_limit must not be negative, got %v", c.Server.RateLimit)
	}
	if c.General.Interval <= 0 {
		return fmt.Errorf("general.interval must be positive, got %d", c.General.Interval)
	}
	if !i18n.Language(c.General.Language).Valid() {
		return fmt.Errorf("general.language %q: want en or zh", c.General.Language)
	}
	if _, err := viewmodel.ParsePeriod(c.General.Period); err != nil {
		return fmt.Errorf("general.period: %w", err)
	}
	if _, err := viewmodel.ParseEquivalent(c.General.Equivalent); err != nil {
		return fmt.Errorf("general.equivalent: %w", err)
	}
	return nil
}

// RetryPolicy converts the server section into the client's retry policy.
func (c Config) RetryPolicy() api.RetryPolicy {
	return api.RetryPolicy{
		Retries:        c.Server.Retries,
		AttemptTimeout: c.Server.Timeout.Std(),
		BaseDelay:      c.Server.RetryDelay.Std(),
	}
}

// Period returns the configured period, defaulting to week.
func (c Config) Period() viewmodel.Period {
	p, err := viewmodel.ParsePeriod(c.General.Period)
	if err != nil {
		return viewmodel.PeriodWeek
	}
	return p
}

// Equivalent returns the configured equivalent unit, defaulting to coffee.
func (c Config) Equivalent() viewmodel.Equivalent {
	e, err := viewmodel.ParseEquivalent(c.General.Equivalent)
	if err != nil {
		return viewmodel.EquivCoffee
	}
	return e
}

func (c Config) Interval() time.Duration {
	return time.Duration(max(c.General.Interval, 1)) * time.Second
}
