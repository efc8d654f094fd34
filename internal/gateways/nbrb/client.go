package nbrb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/belrates/currency-service/internal/apperrors"
	"github.com/belrates/currency-service/internal/core/domain"
	"github.com/belrates/currency-service/internal/core/ports"
	"github.com/shopspring/decimal"
)

// wireDateLayout is the timestamp format the NBRB API uses for rate dates.
const wireDateLayout = "2006-01-02T15:04:05"

// Client fetches currency reference data and official rates from the NBRB
// exchange-rate API. It implements ports.RateProvider: client-class provider
// responses (400, 404) map to apperrors.ErrNotFound, provider-side failures
// and transport errors to apperrors.ErrUpstreamUnavailable.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a provider client. timeout bounds every request so a hung
// upstream cannot block a request thread indefinitely.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

var _ ports.RateProvider = (*Client)(nil)

type wireCurrency struct {
	ID           int    `json:"Cur_ID"`
	Code         string `json:"Cur_Code"`
	Abbreviation string `json:"Cur_Abbreviation"`
	Name         string `json:"Cur_Name"`
	Scale        int    `json:"Cur_Scale"`
}

type wireRate struct {
	CurrencyID   int             `json:"Cur_ID"`
	OfficialRate decimal.Decimal `json:"Cur_OfficialRate"`
	Scale        int             `json:"Cur_Scale"`
	Date         string          `json:"Date"`
}

// FetchAllCurrencies retrieves the provider's full currency directory.
func (c *Client) FetchAllCurrencies(ctx context.Context) ([]domain.CurrencyInfo, error) {
	url := c.baseURL + "/currencies"
	c.logger.Info("Fetching all currencies from provider", slog.String("url", url))

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var wire []wireCurrency
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("%w: failed to decode currencies response: %v", apperrors.ErrUpstreamUnavailable, err)
	}

	currencies := make([]domain.CurrencyInfo, len(wire))
	for i, w := range wire {
		currencies[i] = domain.CurrencyInfo{
			ID:           w.ID,
			Code:         w.Code,
			Abbreviation: w.Abbreviation,
			Name:         w.Name,
			Scale:        w.Scale,
		}
	}

	c.logger.Info("Fetched currencies from provider", slog.Int("count", len(currencies)))
	return currencies, nil
}

// FetchRate retrieves the current official rate for one currency.
func (c *Client) FetchRate(ctx context.Context, currencyID int) (*domain.Rate, error) {
	url := fmt.Sprintf("%s/rates/%d", c.baseURL, currencyID)
	c.logger.Info("Fetching rate from provider", slog.Int("currency_id", currencyID), slog.String("url", url))

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var wire wireRate
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("%w: failed to decode rate response: %v", apperrors.ErrUpstreamUnavailable, err)
	}

	date, err := time.ParseInLocation(wireDateLayout, wire.Date, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse rate date %q: %v", apperrors.ErrUpstreamUnavailable, wire.Date, err)
	}

	// A rate is only meaningful together with a positive scale; a malformed
	// scale is treated like any other undecodable response.
	if wire.Scale <= 0 {
		return nil, fmt.Errorf("%w: provider returned invalid scale %d for currency %d", apperrors.ErrUpstreamUnavailable, wire.Scale, wire.CurrencyID)
	}

	return &domain.Rate{
		OfficialRate: wire.OfficialRate,
		Scale:        wire.Scale,
		Date:         date,
		CurrencyID:   wire.CurrencyID,
	}, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create provider request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Provider request failed", slog.String("url", url), slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read provider response: %v", apperrors.ErrUpstreamUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return body, nil
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusNotFound:
		c.logger.Warn("Provider rejected request", slog.String("url", url), slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: provider returned status %d", apperrors.ErrNotFound, resp.StatusCode)
	default:
		c.logger.Error("Provider returned error status", slog.String("url", url), slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: provider returned status %d", apperrors.ErrUpstreamUnavailable, resp.StatusCode)
	}
}
