package common

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 错误响应体
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// AckResponse 删除类接口的确认响应体
type AckResponse struct {
	OK bool `json:"ok"`
}

// MessageResponse 纯消息响应体
type MessageResponse struct {
	Message string `json:"message"`
}

// RespondError sends an error response with detail message.
func RespondError(c *gin.Context, httpStatus int, detail string) {
	c.JSON(httpStatus, ErrorResponse{Detail: detail})
}

// RespondNotFound sends a 404 response.
func RespondNotFound(c *gin.Context, detail string) {
	RespondError(c, http.StatusNotFound, detail)
}

// RespondAck sends a {"ok": true} acknowledgement.
func RespondAck(c *gin.Context) {
	c.JSON(http.StatusOK, AckResponse{OK: true})
}

// ParseIDParam 解析路径中的数字 ID；非法时响应 422
func ParseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		RespondError(c, http.StatusUnprocessableEntity, fmt.Sprintf("invalid %s parameter", name))
		return 0, false
	}
	return uint(id), true
}

// ListQuery 解析 skip/limit 分页参数，limit 超过 maxLimit 时截断
func ListQuery(c *gin.Context, maxLimit int) (skip, limit int) {
	skip, _ = strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "100"))
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 100
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	return skip, limit
}

// BindJSON 绑定并校验 JSON 请求体
// 校验失败时在服务端记录字段级错误和原始请求体，响应 422
func BindJSON(c *gin.Context, obj interface{}) bool {
	body, _ := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	if err := c.ShouldBindJSON(obj); err != nil {
		log.Printf("Validation error for %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		log.Printf("Request body: %s", body)
		RespondError(c, http.StatusUnprocessableEntity, err.Error())
		return false
	}
	return true
}
