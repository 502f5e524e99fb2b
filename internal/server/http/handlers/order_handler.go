package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/orderdesk/backoffice/internal/domain/model"
	"github.com/orderdesk/backoffice/internal/domain/repository"
	"github.com/orderdesk/backoffice/internal/server/http/dto"
	"github.com/orderdesk/backoffice/internal/usecase"
)

// OrderHandler manages the order workflow endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.OrderCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	orderDate := time.Now()
	if req.OrderDate != "" {
		parsed, err := parseDate(req.OrderDate)
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		orderDate = *parsed
	}
	expected, err := parseDate(req.ExpectedDeliveryDate)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	staffID := CurrentStaffID(c)
	in := usecase.OrderInput{
		ClientID:         req.ClientID,
		Description:      req.Description,
		Status:           model.OrderStatus(req.Status),
		OrderDate:        orderDate,
		ExpectedDelivery: expected,
		CreatedBy:        &staffID,
		Comment:          req.Comment,
	}
	if req.Status == "" {
		in.Status = model.OrderStatusPending
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), in)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// List handles GET /api/orders with optional client_id, status, from
// and to query filters.
func (h *OrderHandler) List(c *gin.Context) {
	filter, ok := orderFilter(c)
	if !ok {
		return
	}

	orders, err := h.facade.Orders(c.Request.Context(), filter)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(orders))
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	order, err := h.facade.Order(c.Request.Context(), id)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// GetByReference handles GET /api/orders/reference/:reference.
func (h *OrderHandler) GetByReference(c *gin.Context) {
	reference := c.Param("reference")
	if reference == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.OrderByReference(c.Request.Context(), reference)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// Update handles PUT /api/orders/:id. Only the submitted fields change;
// a status transition appends to the history ledger.
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.OrderUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	staffID := CurrentStaffID(c)
	in := usecase.OrderUpdate{
		ClientID:    req.ClientID,
		Description: req.Description,
		Comment:     req.Comment,
		UpdatedBy:   &staffID,
	}
	if req.Status != nil {
		status := model.OrderStatus(*req.Status)
		in.Status = &status
	}
	if req.OrderDate != nil {
		parsed, err := parseDate(*req.OrderDate)
		if err != nil || parsed == nil {
			c.Status(http.StatusBadRequest)
			return
		}
		in.OrderDate = parsed
	}
	if req.ExpectedDeliveryDate != nil {
		parsed, err := parseDate(*req.ExpectedDeliveryDate)
		if err != nil || parsed == nil {
			c.Status(http.StatusBadRequest)
			return
		}
		in.ExpectedDelivery = parsed
	}

	if err := h.facade.UpdateOrder(c.Request.Context(), id, in); err != nil {
		c.Status(statusFromError(err))
		return
	}

	order, err := h.facade.Order(c.Request.Context(), id)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// Delete handles DELETE /api/orders/:id.
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.facade.DeleteOrder(c.Request.Context(), id); err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// History handles GET /api/orders/:id/history.
func (h *OrderHandler) History(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	updates, err := h.facade.OrderHistory(c.Request.Context(), id)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}

	response := make([]dto.StatusUpdateResponse, 0, len(updates))
	for _, u := range updates {
		response = append(response, toStatusUpdateResponse(u))
	}
	c.JSON(http.StatusOK, response)
}

// Notifications handles GET /api/orders/:id/notifications.
func (h *OrderHandler) Notifications(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	notifications, err := h.facade.OrderNotifications(c.Request.Context(), id)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}

	response := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		response = append(response, toNotificationResponse(n))
	}
	c.JSON(http.StatusOK, response)
}

func orderFilter(c *gin.Context) (repository.OrderFilter, bool) {
	var filter repository.OrderFilter

	if raw := c.Query("client_id"); raw != "" {
		id, err := parseQueryID(raw)
		if err != nil {
			c.Status(http.StatusBadRequest)
			return filter, false
		}
		filter.ClientID = &id
	}
	if raw := c.Query("status"); raw != "" {
		status := model.OrderStatus(raw)
		if !usecase.ValidStatus(status) {
			c.Status(http.StatusBadRequest)
			return filter, false
		}
		filter.Status = &status
	}
	from, err := parseDate(c.Query("from"))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return filter, false
	}
	filter.From = from
	to, err := parseDate(c.Query("to"))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return filter, false
	}
	filter.To = to

	return filter, true
}
