//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bundlestay/internal/domain/bundle"
	"bundlestay/internal/handler/api"
	"bundlestay/internal/pkg/errs"
	"bundlestay/internal/usecase/commands"
	"bundlestay/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockBundleCommands struct {
	mock.Mock
}

func (m *MockBundleCommands) CreateBundle(ctx context.Context, customerID uuid.UUID, hotelNames []string) (*commands.CreateBundleResult, error) {
	args := m.Called(ctx, customerID, hotelNames)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commands.CreateBundleResult), args.Error(1)
}

func (m *MockBundleCommands) MarkUtilised(ctx context.Context, bundleID, packageID uuid.UUID) (*commands.MarkUtilisedResult, error) {
	args := m.Called(ctx, bundleID, packageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commands.MarkUtilisedResult), args.Error(1)
}

type MockBundleQueries struct {
	mock.Mock
}

func (m *MockBundleQueries) GetByID(ctx context.Context, id uuid.UUID) (*queries.BundleView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.BundleView), args.Error(1)
}

func (m *MockBundleQueries) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*queries.BundleView, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*queries.BundleView), args.Error(1)
}

type BundleHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCommands *MockBundleCommands
	mockQueries  *MockBundleQueries
	userID       uuid.UUID
}

func (s *BundleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCommands = new(MockBundleCommands)
	s.mockQueries = new(MockBundleQueries)
	s.userID = uuid.New()
	handler := api.NewBundleHandler(s.mockCommands, s.mockQueries)

	authStub := func(c *gin.Context) {
		c.Set("user_id", s.userID)
	}
	s.router.POST("/bundles", authStub, handler.CreateBundle)
	s.router.GET("/bundles/:id", authStub, handler.GetBundle)
	s.router.POST("/bundles/:id/utilise", authStub, handler.MarkUtilised)
}

func TestBundleHandlerSuite(t *testing.T) {
	suite.Run(t, new(BundleHandlerTestSuite))
}

func (s *BundleHandlerTestSuite) doJSON(method, url, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *BundleHandlerTestSuite) TestCreateBundle() {
	s.Run("success: returns 201 with quote and message", func() {
		result := &commands.CreateBundleResult{
			BundleID:    uuid.New(),
			PurchasedAt: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
			Quote:       bundle.Quote{ItemCount: 2, TotalCents: 50000, DiscountPercent: 10, DiscountedCents: 45000},
			Message:     "Bundle purchased with 2 packages.",
		}
		s.mockCommands.On("CreateBundle", mock.Anything, s.userID, []string{"HotelA", "HotelB"}).
			Return(result, nil).Once()

		w := s.doJSON(http.MethodPost, "/bundles", `{"hotel_names":["HotelA","HotelB"]}`)

		s.Equal(http.StatusCreated, w.Code)
		var body map[string]any
		s.NoError(json.Unmarshal(w.Body.Bytes(), &body))
		s.Equal(result.BundleID.String(), body["bundleId"])
		pricing := body["pricing"].(map[string]any)
		s.Equal(float64(45000), pricing["discountedCents"])
	})

	s.Run("empty selection: returns 400", func() {
		s.mockCommands.On("CreateBundle", mock.Anything, s.userID, mock.Anything).
			Return(nil, errs.ErrEmptyBundleSelection).Once()

		w := s.doJSON(http.MethodPost, "/bundles", `{"hotel_names":["Ghost"]}`)
		s.Equal(http.StatusBadRequest, w.Code)

		var body map[string]any
		s.NoError(json.Unmarshal(w.Body.Bytes(), &body))
		envelope := body["error"].(map[string]any)
		s.Equal("Bundle needs at least one known hotel package", envelope["message"])
	})

	s.Run("malformed body: returns 400 without touching the usecase", func() {
		w := s.doJSON(http.MethodPost, "/bundles", `{"hotel_names": "not-a-list"}`)
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *BundleHandlerTestSuite) TestGetBundle() {
	s.Run("success: returns 200 with derived fields", func() {
		view := &queries.BundleView{
			ID:          uuid.New(),
			CustomerID:  s.userID,
			PurchasedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			ExpiryDate:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			Expired:     false,
			Pricing:     queries.QuoteView{ItemCount: 1, TotalCents: 30000, DiscountedCents: 30000},
			Items: []queries.BundleItemView{
				{ItemID: uuid.New(), PackageID: uuid.New(), HotelName: "HotelA", Status: "Un-utilised"},
			},
		}
		s.mockQueries.On("GetByID", mock.Anything, view.ID).Return(view, nil).Once()

		w := s.doJSON(http.MethodGet, "/bundles/"+view.ID.String(), "")

		s.Equal(http.StatusOK, w.Code)
		var body map[string]any
		s.NoError(json.Unmarshal(w.Body.Bytes(), &body))
		items := body["items"].([]any)
		s.Len(items, 1)
		s.Equal("Un-utilised", items[0].(map[string]any)["status"])
	})

	s.Run("unknown bundle: returns 404", func() {
		id := uuid.New()
		s.mockQueries.On("GetByID", mock.Anything, id).Return(nil, errs.ErrBundleNotFound).Once()

		w := s.doJSON(http.MethodGet, "/bundles/"+id.String(), "")
		s.Equal(http.StatusNotFound, w.Code)

		var body map[string]any
		s.NoError(json.Unmarshal(w.Body.Bytes(), &body))
		envelope := body["error"].(map[string]any)
		s.Equal("Bundle not found", envelope["message"])
	})

	s.Run("bad id: returns 400", func() {
		w := s.doJSON(http.MethodGet, "/bundles/not-a-uuid", "")
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *BundleHandlerTestSuite) TestMarkUtilised() {
	s.Run("success: returns flip count", func() {
		bundleID, packageID := uuid.New(), uuid.New()
		s.mockCommands.On("MarkUtilised", mock.Anything, bundleID, packageID).
			Return(&commands.MarkUtilisedResult{BundleID: bundleID, PackageID: packageID, ItemsFlipped: 2}, nil).Once()

		w := s.doJSON(http.MethodPost, "/bundles/"+bundleID.String()+"/utilise",
			`{"package_id":"`+packageID.String()+`"}`)

		s.Equal(http.StatusOK, w.Code)
		var body map[string]any
		s.NoError(json.Unmarshal(w.Body.Bytes(), &body))
		s.Equal(float64(2), body["itemsFlipped"])
	})

	s.Run("unknown bundle: returns 404", func() {
		bundleID, packageID := uuid.New(), uuid.New()
		s.mockCommands.On("MarkUtilised", mock.Anything, bundleID, packageID).
			Return(nil, errs.ErrBundleNotFound).Once()

		w := s.doJSON(http.MethodPost, "/bundles/"+bundleID.String()+"/utilise",
			`{"package_id":"`+packageID.String()+`"}`)
		s.Equal(http.StatusNotFound, w.Code)
	})
}
