package api

import (
	"net/http"

	"github.com/Antonio1491/parksys-sub007/internal/domain/catalog"
	resdto "github.com/Antonio1491/parksys-sub007/internal/handler/dto/response"
	"github.com/Antonio1491/parksys-sub007/internal/handler/httperr"
	"github.com/Antonio1491/parksys-sub007/internal/pkg/errs"
	"github.com/Antonio1491/parksys-sub007/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DiscountHandler struct {
	discountQueries queries.DiscountQueries
}

func NewDiscountHandler(discountQueries queries.DiscountQueries) *DiscountHandler {
	return &DiscountHandler{
		discountQueries: discountQueries,
	}
}

// @Summary List eligible discounts
// @Description List the discounts currently applicable to an item, in presentation order
// @Tags discounts
// @Produce json
// @Param kind path string true "Item kind segment" Enums(activities, events, spaces)
// @Param id path string true "Item ID"
// @Success 200 {array} resdto.DiscountOptionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /discounts/{kind}/{id} [get]
func (h *DiscountHandler) ListEligible(c *gin.Context) {
	kind, ok := kindFromSegment(c.Param("kind"))
	if !ok {
		httperr.AbortWithError(c, http.StatusNotFound, catalog.ErrUnknownKind, "Unknown item kind", nil)
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID format", nil)
		return
	}

	options, err := h.discountQueries.EligibleForItem(c.Request.Context(), kind, itemID)
	if err != nil {
		if errs.Is(err, queries.ErrItemNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	response := make([]resdto.DiscountOptionResponse, len(options))
	for i, opt := range options {
		response[i] = resdto.FromDiscountOptionView(opt)
	}

	c.JSON(http.StatusOK, response)
}
