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
	"github.com/shopspring/decimal"
)

// rateHandler handles HTTP requests related to rates and conversions.
type rateHandler struct {
	conversionService portssvc.ConversionSvcFacade
}

// newRateHandler creates a new rateHandler.
func newRateHandler(cs portssvc.ConversionSvcFacade) *rateHandler {
	return &rateHandler{
		conversionService: cs,
	}
}

// RegisterRateRoutes registers routes related to rates and conversions.
func RegisterRateRoutes(rg *gin.RouterGroup, conversionService portssvc.ConversionSvcFacade) {
	h := newRateHandler(conversionService)

	rates := rg.Group("/rates")
	{
		rates.GET("/convert", h.convert)
		rates.GET("", h.listRates)
		rates.GET("/by-abbreviation", h.getRatesByAbbreviationAndDate)
		rates.GET("/:id", h.getRateByID)
		rates.POST("", h.createRate)
		rates.PUT("/:id", h.updateRate)
		rates.DELETE("/:id", h.deleteRate)
	}
}

// convert godoc
// @Summary Convert currency
// @Description Converts an amount from one currency to another using today's official rates
// @Tags rates
// @Produce json
// @Param from query int true "Source currency ID"
// @Param to query int true "Target currency ID"
// @Param amount query string true "Amount to convert (decimal)"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} map[string]string "Invalid input parameters"
// @Failure 404 {object} map[string]string "Rate not found"
// @Failure 502 {object} map[string]string "Upstream provider unavailable"
// @Failure 500 {object} map[string]string "Conversion failed"
// @Router /rates/convert [get]
func (h *rateHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	fromID, err := strconv.Atoi(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'from' must be an integer"})
		return
	}
	toID, err := strconv.Atoi(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'to' must be an integer"})
		return
	}
	amount, err := decimal.NewFromString(c.Query("amount"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'amount' must be a decimal"})
		return
	}
	// Boundary guard; the engine refuses non-positive amounts as well.
	if amount.LessThanOrEqual(decimal.Zero) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be greater than zero"})
		return
	}

	result, err := h.conversionService.Convert(c.Request.Context(), fromID, toID, amount)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rate not found for requested currency pair"})
		} else if errors.Is(err, apperrors.ErrUpstreamUnavailable) {
			logger.Error("Provider unavailable during conversion", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Upstream provider unavailable"})
		} else {
			logger.Error("Conversion failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Conversion failed"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ConversionResponse{
		From:   fromID,
		To:     toID,
		Amount: amount,
		Result: result,
	})
}

// listRates godoc
// @Summary List all rates
// @Tags rates
// @Produce json
// @Success 200 {array} dto.RateResponse
// @Failure 500 {object} map[string]string "Failed to list rates"
// @Router /rates [get]
func (h *rateHandler) listRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rates, err := h.conversionService.ListRates(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rates"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListRateResponse(rates))
}

// getRateByID godoc
// @Summary Get a rate by id
// @Tags rates
// @Produce json
// @Param id path int true "Rate ID"
// @Success 200 {object} dto.RateResponse
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 404 {object} map[string]string "Rate not found"
// @Failure 500 {object} map[string]string "Failed to retrieve rate"
// @Router /rates/{id} [get]
func (h *rateHandler) getRateByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rate id must be an integer"})
		return
	}

	rate, err := h.conversionService.GetRateByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rate not found"})
		} else {
			logger.Error("Failed to get rate", slog.Int64("rate_id", id), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rate"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRateResponse(rate, true))
}

// getRatesByAbbreviationAndDate godoc
// @Summary Get rates by abbreviation and date
// @Tags rates
// @Produce json
// @Param abbreviation query string true "Currency abbreviation, e.g. USD"
// @Param date query string true "Calendar date (YYYY-MM-DD)"
// @Success 200 {array} dto.RateResponse
// @Failure 400 {object} map[string]string "Invalid abbreviation or date"
// @Failure 500 {object} map[string]string "Failed to retrieve rates"
// @Router /rates/by-abbreviation [get]
func (h *rateHandler) getRatesByAbbreviationAndDate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	abbreviation := c.Query("abbreviation")
	if abbreviation == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'abbreviation' is required"})
		return
	}
	date, err := dto.ParseRateDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'date' must be formatted as YYYY-MM-DD"})
		return
	}

	rates, err := h.conversionService.GetRatesByAbbreviationAndDate(c.Request.Context(), abbreviation, date)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to get rates", slog.String("abbreviation", abbreviation), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rates"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListRateResponse(rates))
}

// createRate godoc
// @Summary Create a rate
// @Description Records a rate manually; primes the (abbreviation, date) cache entry
// @Tags rates
// @Accept json
// @Produce json
// @Param rate body dto.CreateRateRequest true "Rate details"
// @Success 201 {object} dto.RateResponse
// @Failure 400 {object} map[string]string "Invalid rate data"
// @Failure 500 {object} map[string]string "Failed to create rate"
// @Router /rates [post]
func (h *rateHandler) createRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.conversionService.CreateRate(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create rate"})
		}
		return
	}

	logger.Info("Rate created", slog.Int64("rate_id", created.ID), slog.Int("currency_id", created.CurrencyID))
	c.JSON(http.StatusCreated, dto.ToRateResponse(created, true))
}

// updateRate godoc
// @Summary Update a rate
// @Description Overwrites a rate; invalidates its by-id and (abbreviation, date) cache entries
// @Tags rates
// @Accept json
// @Produce json
// @Param id path int true "Rate ID"
// @Param rate body dto.UpdateRateRequest true "Rate details"
// @Success 200 {object} dto.RateResponse
// @Failure 400 {object} map[string]string "Invalid rate data"
// @Failure 404 {object} map[string]string "Rate not found"
// @Failure 500 {object} map[string]string "Failed to update rate"
// @Router /rates/{id} [put]
func (h *rateHandler) updateRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rate id must be an integer"})
		return
	}

	var req dto.UpdateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.conversionService.UpdateRate(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rate not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update rate", slog.Int64("rate_id", id), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update rate"})
		}
		return
	}

	logger.Info("Rate updated", slog.Int64("rate_id", id))
	c.JSON(http.StatusOK, dto.ToRateResponse(updated, true))
}

// deleteRate godoc
// @Summary Delete a rate
// @Description Removes a rate; invalidates its by-id and (abbreviation, date) cache entries
// @Tags rates
// @Param id path int true "Rate ID"
// @Success 204 "Rate deleted"
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 404 {object} map[string]string "Rate not found"
// @Failure 500 {object} map[string]string "Failed to delete rate"
// @Router /rates/{id} [delete]
func (h *rateHandler) deleteRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rate id must be an integer"})
		return
	}

	if err := h.conversionService.DeleteRate(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rate not found"})
		} else {
			logger.Error("Failed to delete rate", slog.Int64("rate_id", id), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete rate"})
		}
		return
	}

	logger.Info("Rate deleted", slog.Int64("rate_id", id))
	c.Status(http.StatusNoContent)
}
