package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一成功响应
type Response struct {
	StatusCode int         `json:"status_code"`
	Data       interface{} `json:"data,omitempty"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

// ErrorResponse 统一错误响应
type ErrorResponse struct {
	StatusCode int         `json:"status_code"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
	Errors     interface{} `json:"errors,omitempty"`
}

func OK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		StatusCode: http.StatusOK,
		Data:       data,
		Message:    message,
		Success:    true,
	})
}

func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		StatusCode: http.StatusCreated,
		Data:       data,
		Message:    message,
		Success:    true,
	})
}

func Fail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorResponse{
		StatusCode: statusCode,
		Message:    message,
		Success:    false,
	})
}

// FailWithErrors 带错误详情的失败响应（参数校验等场景）
func FailWithErrors(c *gin.Context, statusCode int, message string, errs interface{}) {
	c.JSON(statusCode, ErrorResponse{
		StatusCode: statusCode,
		Message:    message,
		Success:    false,
		Errors:     errs,
	})
}

func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	Fail(c, http.StatusUnauthorized, message)
}

func NotFound(c *gin.Context, message string) {
	Fail(c, http.StatusNotFound, message)
}

func Conflict(c *gin.Context, message string) {
	Fail(c, http.StatusConflict, message)
}

func InternalError(c *gin.Context, message string) {
	Fail(c, http.StatusInternalServerError, message)
}
