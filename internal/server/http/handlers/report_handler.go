package handlers

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/orderdesk/backoffice/internal/server/http/dto"
)

// ReportHandler exports order listings and the dashboard statistics.
type ReportHandler struct {
	facade ReportFacade
}

// NewReportHandler constructs ReportHandler.
func NewReportHandler(facade ReportFacade) *ReportHandler {
	return &ReportHandler{facade: facade}
}

// Dashboard handles GET /api/reports/dashboard: registry counts, the
// number of delivered emails, and the five most recent orders.
func (h *ReportHandler) Dashboard(c *gin.Context) {
	stats, err := h.facade.DashboardStats(c.Request.Context())
	if err != nil {
		c.Status(statusFromError(err))
		return
	}

	resp := dto.DashboardResponse{
		Clients:      stats.Clients,
		Orders:       stats.Orders,
		EmailsSent:   stats.EmailsSent,
		RecentOrders: make([]dto.DashboardOrderEntry, 0, len(stats.Recent)),
	}
	for _, r := range stats.Recent {
		resp.RecentOrders = append(resp.RecentOrders, dto.DashboardOrderEntry{
			OrderResponse:   toOrderResponse(r.Order),
			ClientName:      r.Client.Name,
			ClientFirstName: r.Client.FirstName,
		})
	}
	c.JSON(http.StatusOK, resp)
}

// Orders handles GET /api/reports/orders. The same filters as the
// order listing apply; format=csv switches the body to CSV, anything
// else returns JSON.
func (h *ReportHandler) Orders(c *gin.Context) {
	filter, ok := orderFilter(c)
	if !ok {
		return
	}

	orders, err := h.facade.Orders(c.Request.Context(), filter)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}

	if c.Query("format") != "csv" {
		c.JSON(http.StatusOK, toOrderResponses(orders))
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="orders-`+time.Now().Format(dateLayout)+`.csv"`)
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"reference", "client_id", "status", "order_date", "expected_delivery_date", "description", "created_at"})
	for _, o := range orders {
		expected := ""
		if o.ExpectedDelivery != nil {
			expected = o.ExpectedDelivery.Format(dateLayout)
		}
		_ = w.Write([]string{
			o.Reference,
			strconv.FormatInt(o.ClientID, 10),
			string(o.Status),
			o.OrderDate.Format(dateLayout),
			expected,
			o.Description,
			o.CreatedAt.Format(time.RFC3339),
		})
	}
	w.Flush()
}
