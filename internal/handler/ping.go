// File: internal/handler/ping.go
package handler

import (
	"net/http"
	"time"

	"library-api/internal/cache"
	"library-api/internal/database"
	"library-api/internal/dto"

	"github.com/labstack/echo/v4"
)

// PingResponse 健康檢查回應模型
// swagger:model PingResponse
type PingResponse struct {
	// 回應訊息
	Message string `json:"message" example:"pong"`
}

// PingHandler 健康檢查（需通過認證）
// @Summary     Health Check
// @Description 回傳 pong，並檢查資料庫與快取連線是否正常
// @Tags        health
// @Accept      json
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /ping [get]
func PingHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Detail: "database unhealthy"})
		}
		if err := cch.Set(ctx, "healthcheck", "ok", time.Minute).Err(); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Detail: "cache unhealthy"})
		}
		return c.JSON(http.StatusOK, PingResponse{Message: "pong"})
	}
}
