package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/code-100-precent/LingCaptcha/pkg/logger"
	"github.com/creasty/defaults"
	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

// Config represents the system configuration
type Config struct {
	Addr      string `env:"ADDR" default:":7073"`
	Mode      string `env:"MODE" default:"development"`
	APIPrefix string `env:"API_PREFIX" default:"/api"`
	Log       logger.LogConfig
	Captcha   CaptchaConfig
}

// CaptchaConfig 验证码默认生成参数，HTTP 请求参数可以逐项覆盖
type CaptchaConfig struct {
	Secret      string        `env:"CAPTCHA_SECRET"`
	TTL         time.Duration `env:"CAPTCHA_TTL" default:"5m"`
	Length      int           `env:"CAPTCHA_LENGTH" default:"5"`
	Width       int           `env:"CAPTCHA_WIDTH" default:"130"`
	Height      int           `env:"CAPTCHA_HEIGHT" default:"40"`
	DarkMode    bool          `env:"CAPTCHA_DARK_MODE" default:"false"`
	Complexity  int           `env:"CAPTCHA_COMPLEXITY" default:"1"`
	Compression int           `env:"CAPTCHA_COMPRESSION" default:"40"`
	Distortion  int           `env:"CAPTCHA_DISTORTION" default:"0"`
	DropShadow  bool          `env:"CAPTCHA_DROP_SHADOW" default:"false"`
	Lines       int           `env:"CAPTCHA_LINES" default:"2"`
	Ellipses    int           `env:"CAPTCHA_ELLIPSES" default:"2"`
	Format      string        `env:"CAPTCHA_FORMAT" default:"jpeg"`
	FontFile    string        `env:"CAPTCHA_FONT_FILE"`
}

// GlobalConfig is the global configuration instance
var GlobalConfig *Config

// Load loads configuration from .env files and environment variables
func Load() error {
	// Load .env file based on APP_ENV; a missing file is not an error
	if err := LoadEnv(os.Getenv("APP_ENV")); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load env file: %w", err)
	}

	cfg, err := FromEnv()
	if err != nil {
		return err
	}
	GlobalConfig = cfg
	return nil
}

// FromEnv builds a Config from struct defaults overridden by the process environment.
func FromEnv() (*Config, error) {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply config defaults: %w", err)
	}
	if err := LoadEnvs(cfg); err != nil {
		return nil, err
	}
	if cfg.Captcha.Secret == "" {
		cfg.Captcha.Secret = generateDefaultSecret()
		GeneratedSecret = true
	}
	if cfg.Captcha.TTL <= 0 {
		return nil, fmt.Errorf("CAPTCHA_TTL must be positive, got %s", cfg.Captcha.TTL)
	}
	return cfg, nil
}

// GeneratedSecret reports whether FromEnv had to invent a signing secret.
// Tokens signed with it do not survive a restart.
var GeneratedSecret bool

// LoadEnv Load .env file based on environment
func LoadEnv(env string) error {
	envFile := ".env"
	if env != "" {
		envFile = ".env." + env
	}
	return godotenv.Load(envFile)
}

// LoadEnvs 将环境变量按 env 标签写入结构体，嵌套结构体递归处理
func LoadEnvs(objPtr any) error {
	if objPtr == nil {
		return nil
	}
	elm := reflect.ValueOf(objPtr).Elem()
	elmType := elm.Type()

	for i := 0; i < elm.NumField(); i++ {
		f := elm.Field(i)
		if !f.CanSet() {
			continue
		}
		field := elmType.Field(i)
		if f.Kind() == reflect.Struct {
			if err := LoadEnvs(f.Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		keyName := field.Tag.Get("env")
		if keyName == "" || keyName == "-" {
			continue
		}
		v, ok := os.LookupEnv(keyName)
		if !ok {
			continue
		}
		v = strings.TrimSpace(v)
		if err := setField(f, v); err != nil {
			return fmt.Errorf("invalid value %q for %s: %w", v, keyName, err)
		}
	}
	return nil
}

var durationType = reflect.TypeOf(time.Duration(0))

func setField(f reflect.Value, v string) error {
	if f.Type() == durationType {
		d, err := cast.ToDurationE(v)
		if err != nil {
			return err
		}
		f.SetInt(int64(d))
		return nil
	}
	switch f.Kind() {
	case reflect.String:
		f.SetString(v)
	case reflect.Int, reflect.Int64, reflect.Int32:
		iv, err := cast.ToInt64E(v)
		if err != nil {
			return err
		}
		f.SetInt(iv)
	case reflect.Bool:
		yes, err := cast.ToBoolE(strings.ToLower(v))
		if err != nil {
			return err
		}
		f.SetBool(yes)
	}
	return nil
}

// generateDefaultSecret generates a signing secret for development only
func generateDefaultSecret() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "default-secret-key-change-in-production"
	}
	return hex.EncodeToString(b)
}
