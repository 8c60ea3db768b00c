package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fiscly/fiscly_backend/internal/core/domain"
	portssvc "github.com/fiscly/fiscly_backend/internal/core/ports/services"
	"github.com/fiscly/fiscly_backend/internal/dto"
	"github.com/fiscly/fiscly_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// fxHandler exposes the rate resolver.
type fxHandler struct {
	resolver portssvc.RateResolverSvc
	now      func() time.Time
}

// RegisterFXRoutes registers the rate lookup route.
func RegisterFXRoutes(rg *gin.RouterGroup, resolver portssvc.RateResolverSvc) {
	h := &fxHandler{resolver: resolver, now: time.Now}
	rg.GET("/fx/rates/:from", h.getRate)
}

// getRate godoc
// @Summary Resolve an exchange rate
// @Description Resolves the rate from a currency into USD (or `to`) for a date, walking the fallback chain. Never fails because a provider is down.
// @Tags fx
// @Produce json
// @Param from path string true "ISO 4217 source currency"
// @Param to query string false "ISO 4217 target currency" default(USD)
// @Param date query string false "Rate date (YYYY-MM-DD)" default(today)
// @Success 200 {object} dto.FXRateResponse
// @Failure 400 {object} map[string]string "Invalid currency or date"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /fx/rates/{from} [get]
func (h *fxHandler) getRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from := strings.ToUpper(c.Param("from"))
	if !dto.IsCurrencyCode(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid currency code: " + c.Param("from")})
		return
	}

	var params dto.FXRateParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for GetRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	to := strings.ToUpper(params.To)
	if to == "" {
		to = domain.BaseCurrency
	}
	date, err := params.RateDate(h.now())
	if err != nil {
		logger.Warn("Invalid rate date", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resolved := h.resolver.Resolve(c.Request.Context(), from, to, date)
	c.JSON(http.StatusOK, dto.ToFXRateResponse(from, to, domain.FormatFXDate(date), resolved))
}
