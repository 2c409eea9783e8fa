package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	CodeSuccess    = 200
	CodeBadRequest = 400
	CodeError      = 500
)

// Body 统一响应结构
type Body struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data"`
}

// Result 写出统一结构，httpStatus 与业务 code 分开
func Result(c *gin.Context, httpStatus, code int, msg string, data any) {
	c.JSON(httpStatus, Body{Code: code, Msg: msg, Data: data})
}

// Success 成功响应
func Success(c *gin.Context, msg string, data any) {
	Result(c, http.StatusOK, CodeSuccess, msg, data)
}

// Fail 业务失败，HTTP 状态仍为 200
func Fail(c *gin.Context, msg string, data any) {
	Result(c, http.StatusOK, CodeError, msg, data)
}

// BadRequest 请求本身无法处理（如无法解码的 token）
func BadRequest(c *gin.Context, msg string, data any) {
	Result(c, http.StatusBadRequest, CodeBadRequest, msg, data)
}

func AbortWithStatus(c *gin.Context, code int) {
	c.AbortWithStatus(code)
}

func AbortWithStatusJSON(c *gin.Context, code int, err error) {
	c.AbortWithStatusJSON(code, gin.H{"error": err.Error()})
}
