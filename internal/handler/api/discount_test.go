//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"github.com/Antonio1491/parksys-sub007/internal/domain/catalog"
	"github.com/Antonio1491/parksys-sub007/internal/handler/api"
	"github.com/Antonio1491/parksys-sub007/internal/usecase/queries"
	"github.com/Antonio1491/parksys-sub007/tests/common/httptest"
	queriesmock "github.com/Antonio1491/parksys-sub007/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DiscountHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockDiscountQueries
	handler     *api.DiscountHandler
}

func (s *DiscountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockDiscountQueries(s.mockCtrl)
	s.handler = api.NewDiscountHandler(s.mockQueries)

	s.router.GET("/discounts/:kind/:id", s.handler.ListEligible)
}

func (s *DiscountHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDiscountHandlerSuite(t *testing.T) {
	suite.Run(t, new(DiscountHandlerTestSuite))
}

func (s *DiscountHandlerTestSuite) TestListEligible() {
	itemID := uuid.New()
	url := "/discounts/spaces/" + itemID.String()

	s.Run("success: returns the options in order", func() {
		options := []queries.DiscountOptionView{
			{ID: "seniors", Label: "Seniors", Percent: 50},
			{ID: "early_bird", Label: "Early bird", Percent: 20},
		}
		s.mockQueries.EXPECT().EligibleForItem(gomock.Any(), catalog.KindSpaceReservation, itemID).
			Return(options, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Equal("seniors", body[0]["id"])
		s.Equal("early_bird", body[1]["id"])
	})

	s.Run("success: no discounts yields an empty array", func() {
		s.mockQueries.EXPECT().EligibleForItem(gomock.Any(), catalog.KindSpaceReservation, itemID).
			Return([]queries.DiscountOptionView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})

	s.Run("error: 404 when the item does not exist", func() {
		s.mockQueries.EXPECT().EligibleForItem(gomock.Any(), catalog.KindSpaceReservation, itemID).
			Return(nil, queries.ErrItemNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Item not found")
	})

	s.Run("error: 404 for an unknown kind segment", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/discounts/concerts/"+itemID.String(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Unknown item kind")
	})
}
