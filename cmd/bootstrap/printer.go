package bootstrap

import (
	"fmt"
	"os"
	"strings"

	"github.com/code-100-precent/LingCaptcha/pkg/config"
	"github.com/code-100-precent/LingCaptcha/pkg/logger"
	"go.uber.org/zap"
)

// LogConfigInfo Print global configuration information
func LogConfigInfo() {
	cfg := config.GlobalConfig
	logger.Info("system config load finished")
	logger.Info("base config",
		zap.String("addr", cfg.Addr),
		zap.String("mode", cfg.Mode),
		zap.String("api_prefix", cfg.APIPrefix),
	)

	logger.Info("captcha config",
		zap.String("secret", maskSecret(cfg.Captcha.Secret)),
		zap.Duration("ttl", cfg.Captcha.TTL),
		zap.Int("length", cfg.Captcha.Length),
		zap.Int("width", cfg.Captcha.Width),
		zap.Int("height", cfg.Captcha.Height),
		zap.Bool("dark_mode", cfg.Captcha.DarkMode),
		zap.Int("complexity", cfg.Captcha.Complexity),
		zap.Int("compression", cfg.Captcha.Compression),
		zap.Int("distortion", cfg.Captcha.Distortion),
		zap.Bool("drop_shadow", cfg.Captcha.DropShadow),
		zap.Int("lines", cfg.Captcha.Lines),
		zap.Int("ellipses", cfg.Captcha.Ellipses),
		zap.String("format", cfg.Captcha.Format),
		zap.String("font_file", cfg.Captcha.FontFile),
	)
	if config.GeneratedSecret {
		logger.Warn("CAPTCHA_SECRET not set, using a random secret; tokens will not survive a restart")
	}

	logger.Info("log config",
		zap.String("log_level", cfg.Log.Level),
		zap.String("log_filename", cfg.Log.Filename),
		zap.Int("log_max_size", cfg.Log.MaxSize),
		zap.Int("log_max_age", cfg.Log.MaxAge),
		zap.Int("log_max_backups", cfg.Log.MaxBackups),
		zap.Bool("log_daily", cfg.Log.Daily),
	)
}

// maskSecret 只保留前四位
func maskSecret(s string) string {
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return s[:4] + strings.Repeat("*", 8)
}

// PrintBannerFromFile Read file and print
func PrintBannerFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	lines := strings.Split(string(data), "\n")

	colors := []string{
		"\x1b[38;5;165m",
		"\x1b[38;5;189m",
		"\x1b[38;5;207m",
		"\x1b[38;5;219m",
		"\x1b[38;5;225m",
		"\x1b[38;5;231m",
	}

	for i, line := range lines {
		color := colors[i%len(colors)]
		fmt.Println(color + line + "\x1b[0m")
	}
	return nil
}
