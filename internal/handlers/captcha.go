package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/code-100-precent/LingCaptcha/pkg/captcha"
	imagex "github.com/code-100-precent/LingCaptcha/pkg/image"
	"github.com/code-100-precent/LingCaptcha/pkg/logger"
	"github.com/code-100-precent/LingCaptcha/pkg/metrics"
	"github.com/code-100-precent/LingCaptcha/pkg/middleware"
	"github.com/code-100-precent/LingCaptcha/pkg/stateless"
	"github.com/code-100-precent/LingCaptcha/pkg/utils/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spf13/cast"
	"go.uber.org/zap"
)

// 单次请求允许的干扰元素与扭曲上限，避免请求放大渲染开销
const maxDecorations = 20

var errInvalidParam = errors.New("invalid parameter")

// issued 一次生成的结果
type issued struct {
	id        string
	captcha   *captcha.Captcha
	token     string
	expiresAt time.Time
	started   time.Time
}

// observe 在编码完成后记录，耗时包含渲染与编码
func (o *issued) observe() {
	metrics.ObserveGenerate(o.captcha.DarkMode, string(o.captcha.Format()), o.started)
}

// GenerateResponse is the JSON payload of GET /captcha.
type GenerateResponse struct {
	ID        string `json:"id"`
	Image     string `json:"image"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

// VerifyRequest is the body of POST /captcha/verify.
type VerifyRequest struct {
	Token  string `json:"token" binding:"required"`
	Answer string `json:"answer"`
}

// handleGenerate 生成验证码，返回 data URI 与 token
func (h *Handlers) handleGenerate(c *gin.Context) {
	out, err := h.issue(c)
	if err != nil {
		response.BadRequest(c, err.Error(), nil)
		return
	}

	image := out.captcha.ToBase64()
	out.observe()

	c.Header("Cache-Control", "no-store")
	response.Success(c, "success", GenerateResponse{
		ID:        out.id,
		Image:     image,
		Token:     out.token,
		ExpiresAt: out.expiresAt.Unix(),
	})
}

// handleImage 直接返回图片字节，token 放在响应头
func (h *Handlers) handleImage(c *gin.Context) {
	out, err := h.issue(c)
	if err != nil {
		response.BadRequest(c, err.Error(), nil)
		return
	}

	data, err := out.captcha.ToBytes()
	if err != nil {
		logger.Error("captcha encode failed",
			zap.String("id", out.id),
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err))
		response.Result(c, http.StatusInternalServerError, response.CodeError, "encode failed", nil)
		return
	}
	out.observe()

	c.Header("Cache-Control", "no-store")
	c.Header("X-Captcha-Id", out.id)
	c.Header("X-Captcha-Token", out.token)
	c.Header("X-Captcha-Expires-At", cast.ToString(out.expiresAt.Unix()))
	c.Data(http.StatusOK, out.captcha.MIMEType(), data)
}

// handleVerify 校验答案；token 无法解码时返回 400 以区分答错
func (h *Handlers) handleVerify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body", nil)
		return
	}

	ok, err := h.verifier.Verify(req.Token, req.Answer, h.captcha.Secret)
	if err != nil {
		metrics.ObserveVerify(stateless.OutcomeUndecodable.String())
		logger.Warn("captcha token undecodable",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.String("ip", c.ClientIP()),
			zap.Error(err))
		response.BadRequest(c, "captcha token undecodable", nil)
		return
	}

	outcome := stateless.OutcomeInvalid
	if ok {
		outcome = stateless.OutcomeValid
	}
	metrics.ObserveVerify(outcome.String())
	response.Success(c, "success", gin.H{"valid": ok})
}

func (h *Handlers) issue(c *gin.Context) (*issued, error) {
	builder, err := h.builderFromQuery(c)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	cpt := builder.Build()
	token, expiresAt, err := h.verifier.Issue(cpt.Text, h.captcha.TTL, h.captcha.Secret)
	if err != nil {
		logger.Error("captcha sign failed", zap.Error(err))
		return nil, fmt.Errorf("sign failed: %w", err)
	}

	return &issued{
		id:        uuid.NewString(),
		captcha:   cpt,
		token:     token,
		expiresAt: expiresAt,
		started:   started,
	}, nil
}

// builderFromQuery 以配置为默认值，查询参数逐项覆盖；数值越界由 Builder 钳制
func (h *Handlers) builderFromQuery(c *gin.Context) (*captcha.Builder, error) {
	cfg := h.captcha
	b := captcha.NewBuilder()

	ints := []struct {
		key string
		def int
		set func(int) *captcha.Builder
		max int
	}{
		{"length", cfg.Length, b.Length, 0},
		{"width", cfg.Width, b.Width, 0},
		{"height", cfg.Height, b.Height, 0},
		{"complexity", cfg.Complexity, b.Complexity, 0},
		{"compression", cfg.Compression, b.Compression, 0},
		{"lines", cfg.Lines, b.InterferenceLines, maxDecorations},
		{"ellipses", cfg.Ellipses, b.InterferenceEllipses, maxDecorations},
		{"distortion", cfg.Distortion, b.Distortion, maxDecorations},
	}
	for _, p := range ints {
		v := p.def
		if raw, ok := c.GetQuery(p.key); ok {
			// 按十进制解析，"08" 即 8
			parsed, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				return nil, fmt.Errorf("%w: %s", errInvalidParam, p.key)
			}
			v = parsed
		}
		if p.max > 0 && v > p.max {
			v = p.max
		}
		p.set(v)
	}

	bools := []struct {
		key string
		def bool
		set func(bool) *captcha.Builder
	}{
		{"dark", cfg.DarkMode, b.DarkMode},
		{"shadow", cfg.DropShadow, b.DropShadow},
	}
	for _, p := range bools {
		v := p.def
		if raw, ok := c.GetQuery(p.key); ok {
			parsed, err := cast.ToBoolE(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: %s", errInvalidParam, p.key)
			}
			v = parsed
		}
		p.set(v)
	}

	format := imagex.FormatFromExtension(cfg.Format)
	if raw, ok := c.GetQuery("format"); ok {
		parsed, valid := imagex.ParseFormat(raw)
		if !valid {
			return nil, fmt.Errorf("%w: format", errInvalidParam)
		}
		format = parsed
	}
	b.Format(format)

	if h.font != nil {
		b.TrueTypeFont(h.font)
	}
	return b, nil
}
