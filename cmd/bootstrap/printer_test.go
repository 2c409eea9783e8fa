package bootstrap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/code-100-precent/LingCaptcha/pkg/config"
	"github.com/code-100-precent/LingCaptcha/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "", maskSecret(""))
	assert.Equal(t, "***", maskSecret("abc"))
	assert.Equal(t, "abcd********", maskSecret("abcdefghijklmnop"))
}

func TestLogConfigInfo_NeverLogsSecret(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	logger.SetLogger(zap.New(core))
	t.Cleanup(func() { logger.SetLogger(nil) })

	prev := config.GlobalConfig
	t.Cleanup(func() { config.GlobalConfig = prev })
	config.GlobalConfig = &config.Config{
		Addr:    ":7073",
		Captcha: config.CaptchaConfig{Secret: "super-secret-value"},
	}

	LogConfigInfo()

	require.NotZero(t, recorded.Len())
	for _, entry := range recorded.All() {
		for _, f := range entry.Context {
			assert.NotEqual(t, "super-secret-value", f.String)
		}
	}
	assert.Equal(t, 1, recorded.FilterMessage("captcha config").Len())
}

func TestPrintBannerFromFile(t *testing.T) {
	assert.Error(t, PrintBannerFromFile(filepath.Join(t.TempDir(), "missing.txt")))

	path := filepath.Join(t.TempDir(), "banner.txt")
	require.NoError(t, os.WriteFile(path, []byte("Ling\nCaptcha"), 0o644))
	assert.NoError(t, PrintBannerFromFile(path))
}
