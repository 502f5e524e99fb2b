package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/orderdesk/backoffice/internal/domain/errors"
	"github.com/orderdesk/backoffice/internal/domain/model"
	"github.com/orderdesk/backoffice/internal/server/http/dto"
	"github.com/orderdesk/backoffice/internal/server/http/middleware"
)

const dateLayout = "2006-01-02"

// CurrentStaffID extracts the authenticated staff identifier from context.
func CurrentStaffID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.StaffIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.Status(http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func parseQueryID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, strconv.ErrSyntax
	}
	return id, nil
}

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// statusFromError maps domain errors to HTTP statuses. Authorization
// mismatches read as not found so the scan surface never confirms
// existence.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, domainErrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domainErrors.ErrValidation),
		errors.Is(err, domainErrors.ErrInvalidStatus),
		errors.Is(err, domainErrors.ErrInvalidEmail):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func toClientResponse(c model.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:          c.ID,
		Name:        c.Name,
		FirstName:   c.FirstName,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		PostalCode:  c.PostalCode,
		City:        c.City,
		Country:     c.Country,
		FlashcodeID: c.FlashcodeID,
		CreatedAt:   c.CreatedAt,
	}
}

func toOrderResponse(o model.Order) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:          o.ID,
		Reference:   o.Reference,
		ClientID:    o.ClientID,
		Description: o.Description,
		Status:      string(o.Status),
		OrderDate:   o.OrderDate.Format(dateLayout),
		CreatedBy:   o.CreatedBy,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
	if o.ExpectedDelivery != nil {
		formatted := o.ExpectedDelivery.Format(dateLayout)
		resp.ExpectedDeliveryDate = &formatted
	}
	return resp
}

func toOrderResponses(orders []model.Order) []dto.OrderResponse {
	result := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		result = append(result, toOrderResponse(o))
	}
	return result
}

func toStatusUpdateResponse(u model.StatusUpdate) dto.StatusUpdateResponse {
	resp := dto.StatusUpdateResponse{
		ID:        u.ID,
		OrderID:   u.OrderID,
		NewStatus: string(u.NewStatus),
		Comment:   u.Comment,
		CreatedBy: u.CreatedBy,
		CreatedAt: u.CreatedAt,
	}
	if u.PreviousStatus != nil {
		prev := string(*u.PreviousStatus)
		resp.PreviousStatus = &prev
	}
	return resp
}

func toNotificationResponse(n model.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:             n.ID,
		OrderID:        n.OrderID,
		ClientID:       n.ClientID,
		Channel:        string(n.Channel),
		DeliveryStatus: string(n.DeliveryStatus),
		Subject:        n.Subject,
		CreatedAt:      n.CreatedAt,
	}
}
