package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skylar-games/case-opener/internal/domain/entity"
	domainerr "github.com/skylar-games/case-opener/internal/domain/error"
	coreport "github.com/skylar-games/case-opener/internal/domain/port/core"
	ledgerUseCase "github.com/skylar-games/case-opener/internal/domain/usecase/ledger"
	"github.com/skylar-games/case-opener/internal/infrastructure/adapter/api/dto"
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	ledger *ledgerUseCase.Ledger
	logger coreport.Logger
}

// NewAccountHandler creates a new account handler instance
func NewAccountHandler(ledger *ledgerUseCase.Ledger, logger coreport.Logger) *AccountHandler {
	return &AccountHandler{
		ledger: ledger,
		logger: logger,
	}
}

// Register handles the POST /account/register endpoint
func (h *AccountHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid register request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.Validation),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	acct, err := h.ledger.Register(c.Request.Context(), req.Name, req.Email, req.Avatar)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAccountResponse(acct))
}

// Login handles the POST /account/login endpoint
func (h *AccountHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid login request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.Validation),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	if err := entity.ValidateEmail(req.Email); err != nil {
		writeError(c, err)
		return
	}

	acct, err := h.ledger.Login(c.Request.Context(), req.Email)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAccountResponse(acct))
}

// Logout handles the POST /account/logout endpoint. Logging out while
// nobody is logged in succeeds.
func (h *AccountHandler) Logout(c *gin.Context) {
	if err := h.ledger.Logout(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Current handles the GET /account/current endpoint
func (h *AccountHandler) Current(c *gin.Context) {
	acct := h.ledger.Current()
	if acct == nil {
		writeError(c, domainerr.ErrNoCurrentAccount)
		return
	}

	c.JSON(http.StatusOK, dto.NewAccountResponse(acct))
}

// UpdateProfile handles the PUT /account/profile endpoint
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	var req dto.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid profile update request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.Validation),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	acct, err := h.ledger.UpdateProfile(c.Request.Context(), ledgerUseCase.ProfileUpdate{
		Name:   req.Name,
		Avatar: req.Avatar,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAccountResponse(acct))
}

// UpdateBalance handles the POST /account/balance endpoint. The delta is
// a signed decimal string; without a logged-in account the request is a
// no-op and returns 204.
func (h *AccountHandler) UpdateBalance(c *gin.Context) {
	var req dto.BalanceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid balance update request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.Validation),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	delta, err := entity.ParseAmount(req.Delta)
	if err != nil {
		writeError(c, err)
		return
	}

	acct, err := h.ledger.UpdateBalance(c.Request.Context(), delta)
	if err != nil {
		writeError(c, err)
		return
	}
	if acct == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, dto.NewAccountResponse(acct))
}

// ClearAll handles the DELETE /accounts endpoint. The confirm=true query
// parameter is required; everything else is rejected.
func (h *AccountHandler) ClearAll(c *gin.Context) {
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.Validation),
			Message: "Clearing all accounts requires confirm=true",
		})
		return
	}

	if err := h.ledger.ClearAll(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}

	h.logger.Warn("All accounts cleared", nil)
	c.Status(http.StatusNoContent)
}
