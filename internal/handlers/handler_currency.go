package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/belrates/currency-service/internal/apperrors"
	portssvc "github.com/belrates/currency-service/internal/core/ports/services"
	"github.com/belrates/currency-service/internal/dto"
	"github.com/belrates/currency-service/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to currency reference data.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// RegisterCurrencyRoutes registers routes related to currencies.
func RegisterCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/db", h.listCurrenciesFromDB)
		currencies.GET("/:id", h.getCurrencyByID)
		currencies.GET("/:id/rate", h.getCurrencyRate)
		currencies.POST("", h.createCurrency)
		currencies.PUT("/:id", h.updateCurrency)
		currencies.DELETE("/:id", h.deleteCurrency)
	}
}

// listCurrencies godoc
// @Summary List all currencies
// @Description Returns all currencies, seeding the local store from the provider on first run
// @Tags currencies
// @Produce json
// @Success 200 {array} dto.CurrencyResponse
// @Failure 502 {object} map[string]string "Upstream provider unavailable"
// @Failure 500 {object} map[string]string "Failed to list currencies"
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrUpstreamUnavailable) {
			logger.Error("Provider unavailable while listing currencies", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Upstream provider unavailable"})
		} else {
			logger.Error("Failed to list currencies", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list currencies"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// listCurrenciesFromDB godoc
// @Summary List locally persisted currencies
// @Description Returns currencies from the local store only, never consulting the provider
// @Tags currencies
// @Produce json
// @Success 200 {array} dto.CurrencyResponse
// @Failure 500 {object} map[string]string "Failed to list currencies"
// @Router /currencies/db [get]
func (h *currencyHandler) listCurrenciesFromDB(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.currencyService.ListCurrenciesFromDB(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list currencies from db", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list currencies"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// getCurrencyByID godoc
// @Summary Get a currency by id
// @Tags currencies
// @Produce json
// @Param id path int true "Currency ID"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 500 {object} map[string]string "Failed to retrieve currency"
// @Router /currencies/{id} [get]
func (h *currencyHandler) getCurrencyByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency id must be an integer"})
		return
	}

	currency, err := h.currencyService.GetCurrencyByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
		} else {
			logger.Error("Failed to get currency", slog.Int("currency_id", id), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve currency"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// getCurrencyRate godoc
// @Summary Get today's rate for a currency
// @Description Resolves the currency's official rate for the current date through cache, store, and provider
// @Tags currencies
// @Produce json
// @Param id path int true "Currency ID"
// @Success 200 {object} dto.RateResponse
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 404 {object} map[string]string "Rate not found"
// @Failure 502 {object} map[string]string "Upstream provider unavailable"
// @Failure 500 {object} map[string]string "Failed to resolve rate"
// @Router /currencies/{id}/rate [get]
func (h *currencyHandler) getCurrencyRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency id must be an integer"})
		return
	}

	resolved, err := h.currencyService.GetCurrencyRate(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rate not found"})
		} else if errors.Is(err, apperrors.ErrUpstreamUnavailable) {
			logger.Error("Provider unavailable while resolving rate", slog.Int("currency_id", id), slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Upstream provider unavailable"})
		} else {
			logger.Error("Failed to resolve rate", slog.Int("currency_id", id), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve rate"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRateResponse(&resolved.Rate, resolved.Persisted))
}

// createCurrency godoc
// @Summary Create a new currency
// @Description Registers a currency manually (admin operation); clears all cached entries
// @Tags currencies
// @Accept json
// @Produce json
// @Param currency body dto.CreateCurrencyRequest true "Currency details"
// @Success 201 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create currency"
// @Router /currencies [post]
func (h *currencyHandler) createCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.currencyService.CreateCurrency(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create currency", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create currency"})
		}
		return
	}

	logger.Info("Currency created", slog.Int("currency_id", created.ID), slog.String("abbreviation", created.Abbreviation))
	c.JSON(http.StatusCreated, dto.ToCurrencyResponse(created))
}

// updateCurrency godoc
// @Summary Update a currency
// @Description Overwrites a currency's attributes; clears all cached entries
// @Tags currencies
// @Accept json
// @Produce json
// @Param id path int true "Currency ID"
// @Param currency body dto.UpdateCurrencyRequest true "Currency details"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 500 {object} map[string]string "Failed to update currency"
// @Router /currencies/{id} [put]
func (h *currencyHandler) updateCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency id must be an integer"})
		return
	}

	var req dto.UpdateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.currencyService.UpdateCurrency(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update currency", slog.Int("currency_id", id), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update currency"})
		}
		return
	}

	logger.Info("Currency updated", slog.Int("currency_id", id))
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(updated))
}

// deleteCurrency godoc
// @Summary Delete a currency
// @Description Removes a currency and its rates; clears all cached entries
// @Tags currencies
// @Param id path int true "Currency ID"
// @Success 204 "Currency deleted"
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 500 {object} map[string]string "Failed to delete currency"
// @Router /currencies/{id} [delete]
func (h *currencyHandler) deleteCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency id must be an integer"})
		return
	}

	if err := h.currencyService.DeleteCurrency(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
		} else {
			logger.Error("Failed to delete currency", slog.Int("currency_id", id), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete currency"})
		}
		return
	}

	logger.Info("Currency deleted", slog.Int("currency_id", id))
	c.Status(http.StatusNoContent)
}
