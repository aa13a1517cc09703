//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/Antonio1491/parksys-sub007/internal/handler/api"
	"github.com/Antonio1491/parksys-sub007/internal/pkg/errs"
	"github.com/Antonio1491/parksys-sub007/internal/usecase/commands"
	"github.com/Antonio1491/parksys-sub007/internal/usecase/queries"
	"github.com/Antonio1491/parksys-sub007/tests/common/httptest"
	"github.com/Antonio1491/parksys-sub007/tests/common/testutil"
	commandsmock "github.com/Antonio1491/parksys-sub007/tests/mock/commands"
	queriesmock "github.com/Antonio1491/parksys-sub007/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPaymentCommands
	mockQueries  *queriesmock.MockPaymentQueries
	handler      *api.PaymentHandler
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPaymentQueries(s.mockCtrl)
	s.handler = api.NewPaymentHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/payments/:kind/:id/intent", s.handler.CreateIntent)
	s.router.POST("/payments/:kind/:id/finalize", s.handler.Finalize)
	s.router.GET("/payments/transactions/:id", s.handler.GetTransaction)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func validIntentBody() map[string]any {
	return map[string]any{
		"fullName": "Ana Torres",
		"email":    "ana@example.com",
		"phone":    "5512345678",
	}
}

func validFinalizeBody() map[string]any {
	return map[string]any{
		"chargeRef": "ch_123",
		"fullName":  "Ana Torres",
		"email":     "ana@example.com",
		"phone":     "5512345678",
	}
}

type testCasePayment struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *PaymentHandlerTestSuite) TestCreateIntent() {
	itemID := uuid.New()
	url := "/payments/activities/" + itemID.String() + "/intent"

	s.Run("success: returns 201 with the client secret", func() {
		expected := &commands.CreateIntentResult{
			TransactionID: uuid.New(),
			ClientSecret:  "secret_abc",
			AmountCents:   80000,
		}
		s.mockCommands.EXPECT().CreateIntent(gomock.Any(), gomock.Any()).
			Return(expected, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validIntentBody())

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("secret_abc", body["clientSecret"])
		s.Equal(float64(80000), body["amountCents"])
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCasePayment{
			{name: "missing fullName", mutate: testutil.Field("fullName", nil), expectCode: http.StatusBadRequest},
			{name: "missing email", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
			{name: "invalid email", mutate: testutil.Field("email", "not-an-email"), expectCode: http.StatusBadRequest},
			{name: "missing phone", mutate: testutil.Field("phone", nil), expectCode: http.StatusBadRequest},
			{name: "negative custom amount", mutate: testutil.Field("customAmountCents", -100), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), validIntentBody(), tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})

	s.Run("error: 404 for an unknown kind segment", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/payments/concerts/"+itemID.String()+"/intent", validIntentBody())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Unknown item kind")
	})

	s.Run("error: 400 for a malformed item id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/payments/activities/not-a-uuid/intent", validIntentBody())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid item ID")
	})

	s.Run("error: command errors map to status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "item not found", err: commands.ErrItemNotFound, expectCode: http.StatusNotFound},
			{name: "free item", err: commands.ErrFreeItem, expectCode: http.StatusUnprocessableEntity},
			{name: "below base", err: commands.ErrAmountBelowBase, expectCode: http.StatusUnprocessableEntity},
			{name: "custom amount not allowed", err: commands.ErrCustomAmountNotAllowed, expectCode: http.StatusUnprocessableEntity},
			{name: "gateway down", err: commands.ErrGatewayUnavailable, expectCode: http.StatusBadGateway},
			// Marked sentinels carry the underlying cause; the mapping
			// must still see through the mark.
			{name: "marked gateway failure", err: errs.Mark(errs.New("connection refused"), commands.ErrGatewayUnavailable), expectCode: http.StatusBadGateway},
			{name: "marked invalid participant", err: errs.Mark(errs.New("name too long"), commands.ErrInvalidParticipant), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateIntent(gomock.Any(), gomock.Any()).
					Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validIntentBody())
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})
}

func (s *PaymentHandlerTestSuite) TestFinalize() {
	itemID := uuid.New()
	url := "/payments/events/" + itemID.String() + "/finalize"

	s.Run("success: returns 201 for a fresh finalization", func() {
		expected := &commands.FinalizeResult{
			RecordID:    uuid.New(),
			AmountCents: 80000,
			Replayed:    false,
		}
		s.mockCommands.EXPECT().Finalize(gomock.Any(), gomock.Any()).
			Return(expected, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validFinalizeBody())

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(false, body["replayed"])
	})

	s.Run("success: a replay returns 200 with the original record", func() {
		recordID := uuid.New()
		expected := &commands.FinalizeResult{
			RecordID:    recordID,
			AmountCents: 80000,
			Replayed:    true,
		}
		s.mockCommands.EXPECT().Finalize(gomock.Any(), gomock.Any()).
			Return(expected, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validFinalizeBody())

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(true, body["replayed"])
		s.Equal(recordID.String(), body["recordId"])
	})

	s.Run("error: 400 without a charge reference", func() {
		body := testutil.DtoMap(s.T(), validFinalizeBody(), testutil.Field("chargeRef", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *PaymentHandlerTestSuite) TestGetTransaction() {
	txID := uuid.New()
	url := "/payments/transactions/" + txID.String()

	s.Run("success: returns the transaction view", func() {
		view := &queries.TransactionView{
			ID:          txID,
			ItemID:      uuid.New(),
			ItemKind:    "activity",
			ItemTitle:   "Yoga in the park",
			Status:      "completed",
			AmountCents: 50000,
			DiscountID:  "none",
			Email:       "ana@example.com",
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), txID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(txID.String(), body["id"])
		s.Equal("completed", body["status"])
	})

	s.Run("error: 404 when the transaction does not exist", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), txID).
			Return(nil, queries.ErrTransactionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Transaction not found")
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments/transactions/garbage", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid transaction ID")
	})
}
