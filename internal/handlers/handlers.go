package handlers

import (
	"net/http"
	"time"

	"github.com/code-100-precent/LingCaptcha/pkg/config"
	"github.com/code-100-precent/LingCaptcha/pkg/metrics"
	"github.com/code-100-precent/LingCaptcha/pkg/stateless"
	"github.com/gin-gonic/gin"
	"github.com/golang/freetype/truetype"
)

const (
	CaptchaPath      = "/captcha"
	CaptchaImagePath = "/captcha/image"
	CaptchaVerify    = "/captcha/verify"
)

type Handlers struct {
	apiPrefix string
	captcha   config.CaptchaConfig
	font      *truetype.Font
	verifier  *stateless.Verifier
}

// NewHandlers font 为 nil 时使用内置字体；字体只解析一次，由调用方完成
func NewHandlers(cfg *config.Config, font *truetype.Font) *Handlers {
	return &Handlers{
		apiPrefix: cfg.APIPrefix,
		captcha:   cfg.Captcha,
		font:      font,
		verifier:  &stateless.Verifier{},
	}
}

// ImageRoute returns the full path of the raw image endpoint.
func (h *Handlers) ImageRoute() string {
	return h.apiPrefix + CaptchaImagePath
}

func (h *Handlers) Register(engine *gin.Engine) {
	engine.GET("/health", h.handleHealth)
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	r := engine.Group(h.apiPrefix)
	r.GET(CaptchaPath, h.handleGenerate)
	r.GET(CaptchaImagePath, h.handleImage)
	r.POST(CaptchaVerify, h.handleVerify)
}

func (h *Handlers) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().Unix()})
}
