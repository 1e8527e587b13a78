package enrollment

import (
	"net/http"

	"confstay/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/enrollments", h.GetEnrollment)
	rg.POST("/enrollments", h.UpsertEnrollment)
	rg.GET("/tickets", h.GetTicket)
	rg.POST("/tickets", h.CreateTicket)
	rg.GET("/ticket-types", h.ListTicketTypes)
}

// GetEnrollment handles GET /api/v1/enrollments
func (h *Handler) GetEnrollment(c *gin.Context) {
	userID := c.GetInt64("user_id")

	e, err := h.service.GetEnrollment(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, e)
}

// UpsertEnrollment handles POST /api/v1/enrollments
func (h *Handler) UpsertEnrollment(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req UpsertEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	e, err := h.service.UpsertEnrollment(c.Request.Context(), userID, req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, e)
}

// GetTicket handles GET /api/v1/tickets
func (h *Handler) GetTicket(c *gin.Context) {
	userID := c.GetInt64("user_id")

	t, err := h.service.GetTicket(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, t)
}

// CreateTicket handles POST /api/v1/tickets
func (h *Handler) CreateTicket(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	t, err := h.service.CreateTicket(c.Request.Context(), userID, req.TicketTypeID)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, t)
}

// ListTicketTypes handles GET /api/v1/ticket-types
func (h *Handler) ListTicketTypes(c *gin.Context) {
	types, err := h.service.ListTicketTypes(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, types)
}

func handleError(c *gin.Context, err error) {
	switch err {
	case ErrNotFound, ErrNoEnrollment:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Not found")
	case ErrBadTicketType:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown ticket type")
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid enrollment data")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}
