package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orderdesk/backoffice/internal/domain/model"
	"github.com/orderdesk/backoffice/internal/server/http/dto"
)

// ScanHandler serves the public flashcode surface. No session is
// required; the flashcode token itself is the credential, and any
// mismatch reads as not found.
type ScanHandler struct {
	facade ScanFacade
}

// NewScanHandler constructs ScanHandler.
func NewScanHandler(facade ScanFacade) *ScanHandler {
	return &ScanHandler{facade: facade}
}

// Scan handles GET /api/scan/:code.
func (h *ScanHandler) Scan(c *gin.Context) {
	token := c.Param("code")
	if token == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	client, orders, err := h.facade.ScanClient(c.Request.Context(), token)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}

	c.JSON(http.StatusOK, dto.ScanResponse{
		Client: toClientResponse(*client),
		Orders: toOrderResponses(orders),
	})
}

// UpdateStatus handles POST /api/scan/:code/orders/:id/status.
func (h *ScanHandler) UpdateStatus(c *gin.Context) {
	token := c.Param("code")
	orderID, ok := pathID(c, "id")
	if token == "" || !ok {
		if token == "" {
			c.Status(http.StatusBadRequest)
		}
		return
	}

	var req dto.ScanStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	err := h.facade.UpdateOrderViaFlashcode(c.Request.Context(), token, orderID, model.OrderStatus(req.Status), req.Comment)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.Status(http.StatusOK)
}

// CreateOrder handles POST /api/scan/:code/orders.
func (h *ScanHandler) CreateOrder(c *gin.Context) {
	token := c.Param("code")
	if token == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.ScanOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	expected, err := parseDate(req.ExpectedDeliveryDate)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.CreateOrderViaFlashcode(c.Request.Context(), token, req.Description, expected)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(*order))
}
