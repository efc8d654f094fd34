package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/belrates/currency-service/internal/apperrors"
	"github.com/belrates/currency-service/internal/core/domain"
	portssvc "github.com/belrates/currency-service/internal/core/ports/services"
	"github.com/belrates/currency-service/internal/dto"
	"github.com/belrates/currency-service/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ConversionService ---
type MockConversionService struct {
	mock.Mock
}

func (m *MockConversionService) Convert(ctx context.Context, fromID, toID int, amount decimal.Decimal) (decimal.Decimal, error) {
	args := m.Called(ctx, fromID, toID, amount)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockConversionService) CreateRate(ctx context.Context, req dto.CreateRateRequest) (*domain.Rate, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rate), args.Error(1)
}
func (m *MockConversionService) GetRateByID(ctx context.Context, id int64) (*domain.Rate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rate), args.Error(1)
}
func (m *MockConversionService) ListRates(ctx context.Context) ([]domain.Rate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rate), args.Error(1)
}
func (m *MockConversionService) UpdateRate(ctx context.Context, id int64, req dto.UpdateRateRequest) (*domain.Rate, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rate), args.Error(1)
}
func (m *MockConversionService) DeleteRate(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockConversionService) GetRatesByAbbreviationAndDate(ctx context.Context, abbreviation string, date time.Time) ([]domain.Rate, error) {
	args := m.Called(ctx, abbreviation, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rate), args.Error(1)
}

var _ portssvc.ConversionSvcFacade = (*MockConversionService)(nil)

// --- Test Suite ---
type RateHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockConversionService
}

func (suite *RateHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockService = new(MockConversionService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterRateRoutes(v1, suite.mockService)
}

func (suite *RateHandlerTestSuite) serve(method, url string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req, _ = http.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, url, nil)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Convert ---

func (suite *RateHandlerTestSuite) TestConvert_Success() {
	amount := decimal.NewFromInt(10)
	suite.mockService.On("Convert", mock.Anything, 431, 451, amount).
		Return(decimal.RequireFromString("13.33"), nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/rates/convert?from=431&to=451&amount=10", nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ConversionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(431, resp.From)
	suite.Equal(451, resp.To)
	suite.True(resp.Result.Equal(decimal.RequireFromString("13.33")))
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *RateHandlerTestSuite) TestConvert_NonNumericAmount() {
	w := suite.serve(http.MethodGet, "/api/v1/rates/convert?from=431&to=451&amount=ten", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "Convert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RateHandlerTestSuite) TestConvert_NonPositiveAmount() {
	w := suite.serve(http.MethodGet, "/api/v1/rates/convert?from=431&to=451&amount=0", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "Convert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RateHandlerTestSuite) TestConvert_MissingFrom() {
	w := suite.serve(http.MethodGet, "/api/v1/rates/convert?to=451&amount=10", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *RateHandlerTestSuite) TestConvert_UpstreamUnavailable() {
	suite.mockService.On("Convert", mock.Anything, 431, 451, mock.Anything).
		Return(decimal.Decimal{}, apperrors.ErrUpstreamUnavailable).Once()

	w := suite.serve(http.MethodGet, "/api/v1/rates/convert?from=431&to=451&amount=10", nil)

	suite.Equal(http.StatusBadGateway, w.Code)
}

func (suite *RateHandlerTestSuite) TestConvert_RateNotFound() {
	suite.mockService.On("Convert", mock.Anything, 431, 451, mock.Anything).
		Return(decimal.Decimal{}, apperrors.ErrNotFound).Once()

	w := suite.serve(http.MethodGet, "/api/v1/rates/convert?from=431&to=451&amount=10", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

// --- Rate CRUD ---

func (suite *RateHandlerTestSuite) TestCreateRate_Success() {
	date := time.Date(2025, 8, 30, 0, 0, 0, 0, time.UTC)
	created := &domain.Rate{
		ID:           9,
		OfficialRate: decimal.RequireFromString("3.25"),
		Scale:        1,
		Date:         date,
		CurrencyID:   431,
		Currency:     &domain.CurrencyInfo{ID: 431, Abbreviation: "USD", Scale: 1},
	}

	suite.mockService.On("CreateRate", mock.Anything, mock.MatchedBy(func(req dto.CreateRateRequest) bool {
		return req.CurrencyID == 431 && req.Date == "2025-08-30"
	})).Return(created, nil).Once()

	body := []byte(`{"officialRate": "3.25", "scale": 1, "date": "2025-08-30", "currencyId": 431}`)
	w := suite.serve(http.MethodPost, "/api/v1/rates", body)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.RateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(9), resp.ID)
	suite.Equal("2025-08-30", resp.Date)
	suite.True(resp.Persisted)
	suite.Require().NotNil(resp.Currency)
	suite.Equal("USD", resp.Currency.Abbreviation)
}

func (suite *RateHandlerTestSuite) TestCreateRate_MalformedDateFailsBinding() {
	body := []byte(`{"officialRate": "3.25", "scale": 1, "date": "30.08.2025", "currencyId": 431}`)
	w := suite.serve(http.MethodPost, "/api/v1/rates", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateRate", mock.Anything, mock.Anything)
}

func (suite *RateHandlerTestSuite) TestGetRateByID_NotFound() {
	suite.mockService.On("GetRateByID", mock.Anything, int64(404)).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.serve(http.MethodGet, "/api/v1/rates/404", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *RateHandlerTestSuite) TestGetRateByID_NonNumericID() {
	w := suite.serve(http.MethodGet, "/api/v1/rates/abc", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "GetRateByID", mock.Anything, mock.Anything)
}

func (suite *RateHandlerTestSuite) TestGetRatesByAbbreviationAndDate_Success() {
	date := time.Date(2025, 8, 30, 0, 0, 0, 0, time.UTC)
	rates := []domain.Rate{
		{ID: 9, OfficialRate: decimal.RequireFromString("3.25"), Scale: 1, Date: date, CurrencyID: 431},
	}

	suite.mockService.On("GetRatesByAbbreviationAndDate", mock.Anything, "USD", date).
		Return(rates, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/rates/by-abbreviation?abbreviation=USD&date=2025-08-30", nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.RateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal(int64(9), resp[0].ID)
}

func (suite *RateHandlerTestSuite) TestGetRatesByAbbreviationAndDate_MissingAbbreviation() {
	w := suite.serve(http.MethodGet, "/api/v1/rates/by-abbreviation?date=2025-08-30", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "GetRatesByAbbreviationAndDate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RateHandlerTestSuite) TestDeleteRate_Success() {
	suite.mockService.On("DeleteRate", mock.Anything, int64(9)).Return(nil).Once()

	w := suite.serve(http.MethodDelete, "/api/v1/rates/9", nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *RateHandlerTestSuite) TestDeleteRate_NotFound() {
	suite.mockService.On("DeleteRate", mock.Anything, int64(404)).
		Return(apperrors.ErrNotFound).Once()

	w := suite.serve(http.MethodDelete, "/api/v1/rates/404", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestRateHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RateHandlerTestSuite))
}
