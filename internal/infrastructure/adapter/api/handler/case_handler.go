package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerr "github.com/skylar-games/case-opener/internal/domain/error"
	coreport "github.com/skylar-games/case-opener/internal/domain/port/core"
	"github.com/skylar-games/case-opener/internal/domain/usecase/draw"
	"github.com/skylar-games/case-opener/internal/infrastructure/adapter/api/dto"
	"github.com/skylar-games/case-opener/internal/infrastructure/monitoring"
)

// CaseHandler handles case-opening HTTP requests
type CaseHandler struct {
	session *draw.Session
	logger  coreport.Logger
}

// NewCaseHandler creates a new case handler instance
func NewCaseHandler(session *draw.Session, logger coreport.Logger) *CaseHandler {
	return &CaseHandler{
		session: session,
		logger:  logger,
	}
}

// Open handles the POST /case/open endpoint. The cost is debited
// immediately; the payout lands when the spin settles.
func (h *CaseHandler) Open(c *gin.Context) {
	var req dto.OpenCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid case open request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.Validation),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	spin, err := h.session.Open(c.Request.Context(), req.Multiplier)
	if err != nil {
		writeError(c, err)
		return
	}

	monitoring.ObserveSpin(spin)
	c.JSON(http.StatusCreated, dto.NewSpinResponse(spin))
}

// GetSpin handles the GET /case/spins/:spinId endpoint
func (h *CaseHandler) GetSpin(c *gin.Context) {
	spin, err := h.session.Spin(c.Param("spinId"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSpinResponse(spin))
}
