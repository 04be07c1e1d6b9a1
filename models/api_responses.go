package models

import (
	"time"

	"github.com/gin-gonic/gin"
)

type ApiResponse struct {
	Message         string       `json:"message"`
	Data            any          `json:"data,omitempty"`
	Error           bool         `json:"error,omitempty"`
	Retryable       bool         `json:"retryable,omitempty"`
	Meta            *Pagination  `json:"meta"`
	Rate            *RateLimiter `json:"rate_limit,omitempty"`
	RequestedEntity string       `json:"requested_entity,omitempty"`
}

type Pagination struct {
	Page       int `json:"page" example:"1"`
	Limit      int `json:"limit" example:"10"`
	Total      int `json:"total" example:"42"`
	TotalPages int `json:"total_pages" example:"5"`
}

type RateLimiter struct {
	Limit          int       `json:"limit"`
	Remaining      int       `json:"remaining"`
	ResetAt        time.Time `json:"reset_at"`
	ResetInSeconds int       `json:"reset_in_seconds"`
}

// RateLimiterContextKey is where the rate limiter middleware leaves its state.
const RateLimiterContextKey = "rateLimiter"

func getRateFromContext(c *gin.Context) *RateLimiter {
	if c == nil {
		return nil
	}
	if rate, exists := c.Get(RateLimiterContextKey); exists {
		if rl, ok := rate.(*RateLimiter); ok {
			return rl
		}
	}
	return nil
}

func requestedEntity(c *gin.Context) string {
	if c == nil || c.Request == nil {
		return ""
	}
	return c.Request.Method + " " + c.FullPath()
}

func SuccessResponse(c *gin.Context, message string, data any) ApiResponse {
	return ApiResponse{
		Message:         message,
		Data:            data,
		Rate:            getRateFromContext(c),
		RequestedEntity: requestedEntity(c),
	}
}

func PaginatedResponse(c *gin.Context, message string, data any, meta *Pagination) ApiResponse {
	return ApiResponse{
		Message:         message,
		Data:            data,
		Meta:            meta,
		Rate:            getRateFromContext(c),
		RequestedEntity: requestedEntity(c),
	}
}

func ErrorResponse(c *gin.Context, message string) ApiResponse {
	return ApiResponse{
		Message:         message,
		Error:           true,
		Rate:            getRateFromContext(c),
		RequestedEntity: requestedEntity(c),
	}
}

// StoreErrorResponse reports a failed fetch or write against the database. The
// dashboard shows these with a retry action.
func StoreErrorResponse(c *gin.Context, message string) ApiResponse {
	res := ErrorResponse(c, message)
	res.Retryable = true
	return res
}
