package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	domainerr "github.com/skylar-games/case-opener/internal/domain/error"
	coreport "github.com/skylar-games/case-opener/internal/domain/port/core"
	ledgerUseCase "github.com/skylar-games/case-opener/internal/domain/usecase/ledger"
	"github.com/skylar-games/case-opener/internal/infrastructure/adapter/api/dto"
)

// LeaderboardHandler handles leaderboard HTTP requests
type LeaderboardHandler struct {
	ledger       *ledgerUseCase.Ledger
	defaultLimit int
	logger       coreport.Logger
}

// NewLeaderboardHandler creates a new leaderboard handler instance
func NewLeaderboardHandler(ledger *ledgerUseCase.Ledger, defaultLimit int, logger coreport.Logger) *LeaderboardHandler {
	return &LeaderboardHandler{
		ledger:       ledger,
		defaultLimit: defaultLimit,
		logger:       logger,
	}
}

// Top handles the GET /leaderboard endpoint. An optional limit query
// parameter caps the number of rows.
func (h *LeaderboardHandler) Top(c *gin.Context) {
	limit := h.defaultLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.Validation),
				Message: "limit must be a positive integer",
			})
			return
		}
		limit = parsed
	}

	ranked := h.ledger.TopN(limit)
	entries := make([]dto.LeaderboardEntry, 0, len(ranked))
	for _, r := range ranked {
		entries = append(entries, dto.NewLeaderboardEntry(r))
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}
