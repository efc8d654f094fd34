package nbrb_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/belrates/currency-service/internal/apperrors"
	"github.com/belrates/currency-service/internal/gateways/nbrb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(serverURL string) *nbrb.Client {
	return nbrb.NewClient(serverURL, 2*time.Second, discardLogger())
}

func TestClient_FetchAllCurrencies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/currencies", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"Cur_ID": 431, "Cur_Code": "840", "Cur_Abbreviation": "USD", "Cur_Name": "US Dollar", "Cur_Scale": 1},
			{"Cur_ID": 451, "Cur_Code": "978", "Cur_Abbreviation": "EUR", "Cur_Name": "Euro", "Cur_Scale": 1}
		]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	currencies, err := client.FetchAllCurrencies(context.Background())

	require.NoError(t, err)
	require.Len(t, currencies, 2)
	assert.Equal(t, 431, currencies[0].ID)
	assert.Equal(t, "USD", currencies[0].Abbreviation)
	assert.Equal(t, "US Dollar", currencies[0].Name)
	assert.Equal(t, 1, currencies[0].Scale)
	assert.Equal(t, "EUR", currencies[1].Abbreviation)
}

func TestClient_FetchRate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rates/431", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Cur_ID": 431, "Cur_OfficialRate": 3.2541, "Cur_Scale": 1, "Date": "2025-08-30T00:00:00"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	rate, err := client.FetchRate(context.Background(), 431)

	require.NoError(t, err)
	assert.Equal(t, 431, rate.CurrencyID)
	assert.Equal(t, 1, rate.Scale)
	assert.Equal(t, "3.2541", rate.OfficialRate.String())
	assert.Equal(t, time.Date(2025, 8, 30, 0, 0, 0, 0, time.UTC), rate.Date)
}

func TestClient_FetchRate_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such currency", http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	rate, err := client.FetchRate(context.Background(), 9999)

	require.Error(t, err)
	assert.Nil(t, rate)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestClient_FetchRate_BadRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad id", http.StatusBadRequest)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.FetchRate(context.Background(), -1)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestClient_FetchAllCurrencies_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	currencies, err := client.FetchAllCurrencies(context.Background())

	require.Error(t, err)
	assert.Nil(t, currencies)
	assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
}

func TestClient_FetchAllCurrencies_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not": "an array"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.FetchAllCurrencies(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
}

func TestClient_FetchRate_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := nbrb.NewClient(server.URL, 50*time.Millisecond, discardLogger())
	_, err := client.FetchRate(context.Background(), 431)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
}

func TestClient_FetchRate_ZeroScaleRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Cur_ID": 431, "Cur_OfficialRate": 3.25, "Cur_Scale": 0, "Date": "2025-08-30T00:00:00"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	rate, err := client.FetchRate(context.Background(), 431)

	require.Error(t, err)
	assert.Nil(t, rate)
	assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
}

func TestClient_FetchRate_MalformedDate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Cur_ID": 431, "Cur_OfficialRate": 3.25, "Cur_Scale": 1, "Date": "30.08.2025"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.FetchRate(context.Background(), 431)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
}
