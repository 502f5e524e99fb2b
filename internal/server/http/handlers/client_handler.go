package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orderdesk/backoffice/internal/server/http/dto"
	"github.com/orderdesk/backoffice/internal/usecase"
)

// ClientHandler manages client registry endpoints.
type ClientHandler struct {
	facade ClientFacade
}

// NewClientHandler constructs ClientHandler.
func NewClientHandler(facade ClientFacade) *ClientHandler {
	return &ClientHandler{facade: facade}
}

func clientInput(req dto.ClientRequest) usecase.ClientInput {
	return usecase.ClientInput{
		Name:       req.Name,
		FirstName:  req.FirstName,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		PostalCode: req.PostalCode,
		City:       req.City,
		Country:    req.Country,
	}
}

// Create handles POST /api/clients.
func (h *ClientHandler) Create(c *gin.Context) {
	var req dto.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	client, err := h.facade.CreateClient(c.Request.Context(), clientInput(req))
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.JSON(http.StatusCreated, toClientResponse(*client))
}

// List handles GET /api/clients.
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.facade.Clients(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.ClientResponse, 0, len(clients))
	for _, cl := range clients {
		response = append(response, toClientResponse(cl))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/clients/:id.
func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	client, err := h.facade.Client(c.Request.Context(), id)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.JSON(http.StatusOK, toClientResponse(*client))
}

// Update handles PUT /api/clients/:id.
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	client, err := h.facade.UpdateClient(c.Request.Context(), id, clientInput(req))
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.JSON(http.StatusOK, toClientResponse(*client))
}

// Delete handles DELETE /api/clients/:id. Deletion is refused while
// the client still owns orders.
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.facade.DeleteClient(c.Request.Context(), id); err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// Flashcode handles GET /api/clients/:id/flashcode.
func (h *ClientHandler) Flashcode(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	_, code, err := h.facade.ClientFlashcode(c.Request.Context(), id)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.JSON(http.StatusOK, dto.FlashcodeResponse{
		FlashcodeID: code.Token,
		ScanURL:     code.ScanURL,
		QRImageURL:  code.QRImageURL,
	})
}
