package api

import (
	"net/http"

	"github.com/Antonio1491/parksys-sub007/internal/domain/catalog"
	reqdto "github.com/Antonio1491/parksys-sub007/internal/handler/dto/request"
	resdto "github.com/Antonio1491/parksys-sub007/internal/handler/dto/response"
	"github.com/Antonio1491/parksys-sub007/internal/pkg/errs"
	"github.com/Antonio1491/parksys-sub007/internal/usecase/commands"
	"github.com/Antonio1491/parksys-sub007/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PaymentHandler struct {
	paymentCommands commands.PaymentCommands
	paymentQueries  queries.PaymentQueries
}

func NewPaymentHandler(paymentCommands commands.PaymentCommands, paymentQueries queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{
		paymentCommands: paymentCommands,
		paymentQueries:  paymentQueries,
	}
}

// kindFromSegment maps the URL path segment to the catalog kind. The
// segments double as the adapter routing key, so they must stay in sync
// with the checkout adapters.
func kindFromSegment(segment string) (catalog.Kind, bool) {
	switch segment {
	case "activities":
		return catalog.KindActivity, true
	case "events":
		return catalog.KindEvent, true
	case "spaces":
		return catalog.KindSpaceReservation, true
	default:
		return "", false
	}
}

// @Summary Create payment intent
// @Description Register the server-computed amount with the card gateway and return the client secret
// @Tags payments
// @Accept json
// @Produce json
// @Param kind path string true "Item kind segment" Enums(activities, events, spaces)
// @Param id path string true "Item ID"
// @Param request body reqdto.CreateIntentRequest true "Intent request"
// @Success 201 {object} resdto.IntentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /payments/{kind}/{id}/intent [post]
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	kind, itemID, ok := h.parseItemPath(c)
	if !ok {
		return
	}

	var req reqdto.CreateIntentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.paymentCommands.CreateIntent(c.Request.Context(), req.ToCommand(kind, itemID))
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromIntentResult(result))
}

// @Summary Finalize payment
// @Description Convert a confirmed charge into a registration or reservation record. Idempotent on charge reference.
// @Tags payments
// @Accept json
// @Produce json
// @Param kind path string true "Item kind segment" Enums(activities, events, spaces)
// @Param id path string true "Item ID"
// @Param request body reqdto.FinalizeRequest true "Finalize request"
// @Success 200 {object} resdto.FinalizeResponse
// @Success 201 {object} resdto.FinalizeResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /payments/{kind}/{id}/finalize [post]
func (h *PaymentHandler) Finalize(c *gin.Context) {
	kind, itemID, ok := h.parseItemPath(c)
	if !ok {
		return
	}

	var req reqdto.FinalizeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.paymentCommands.Finalize(c.Request.Context(), req.ToCommand(kind, itemID))
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromFinalizeResult(result))
}

// @Summary Get payment transaction
// @Description Get a payment transaction by ID
// @Tags payments
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} resdto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /payments/transactions/{id} [get]
func (h *PaymentHandler) GetTransaction(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid transaction ID format",
		})
		return
	}

	view, err := h.paymentQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrTransactionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Transaction not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromTransactionView(view))
}

func (h *PaymentHandler) parseItemPath(c *gin.Context) (catalog.Kind, uuid.UUID, bool) {
	kind, ok := kindFromSegment(c.Param("kind"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Unknown item kind",
		})
		return "", uuid.Nil, false
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid item ID format",
		})
		return "", uuid.Nil, false
	}

	return kind, itemID, true
}

func (h *PaymentHandler) respondCommandError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Item not found",
		})
	case errs.Is(err, commands.ErrFreeItem):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Item is free of charge and cannot be paid for",
		})
	case errs.Is(err, commands.ErrInvalidParticipant):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid participant data",
		})
	case errs.Is(err, commands.ErrAmountBelowBase):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Amount is below the base price",
		})
	case errs.Is(err, commands.ErrCustomAmountNotAllowed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Item does not accept a custom amount",
		})
	case errs.Is(err, commands.ErrNothingToCharge):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Computed amount is zero",
		})
	case errs.Is(err, commands.ErrChargeRefRequired):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Charge reference is required",
		})
	case errs.Is(err, commands.ErrGatewayUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Payment gateway unavailable",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
