package dto

import (
	"time"

	"github.com/skylar-games/case-opener/internal/domain/entity"
	"github.com/skylar-games/case-opener/internal/domain/usecase/draw"
)

// OpenCaseRequest is the body of POST /case/open
type OpenCaseRequest struct {
	Multiplier int `json:"multiplier" binding:"required"`
}

// OutcomeResponse is one drawn reward
type OutcomeResponse struct {
	Tier   string `json:"tier"`
	Payout string `json:"payout"`
}

// SpinResponse is the API shape of a spin. Reels carry tier names only;
// the winning item of every reel sits at stopIndex.
type SpinResponse struct {
	ID          string            `json:"id"`
	Phase       string            `json:"phase"`
	Multiplier  int               `json:"multiplier"`
	Cost        string            `json:"cost"`
	Outcomes    []OutcomeResponse `json:"outcomes"`
	Reels       [][]string        `json:"reels"`
	StopIndex   int               `json:"stopIndex"`
	Payout      string            `json:"payout"`
	CommittedAt string            `json:"committedAt"`
	SettlesAt   string            `json:"settlesAt"`
}

// NewSpinResponse converts a spin to its API shape
func NewSpinResponse(spin *draw.Spin) SpinResponse {
	outcomes := make([]OutcomeResponse, 0, len(spin.Outcomes))
	for _, outcome := range spin.Outcomes {
		outcomes = append(outcomes, OutcomeResponse{
			Tier:   outcome.Name,
			Payout: entity.FormatTenths(outcome.Payout),
		})
	}

	reels := make([][]string, 0, len(spin.Reels))
	for _, reel := range spin.Reels {
		names := make([]string, 0, len(reel))
		for _, item := range reel {
			names = append(names, item.Name)
		}
		reels = append(reels, names)
	}

	return SpinResponse{
		ID:          spin.ID,
		Phase:       string(spin.Phase),
		Multiplier:  spin.Multiplier,
		Cost:        entity.FormatTenths(spin.Cost),
		Outcomes:    outcomes,
		Reels:       reels,
		StopIndex:   draw.ReelStopIndex,
		Payout:      entity.FormatTenths(spin.Payout),
		CommittedAt: spin.CommittedAt.UTC().Format(time.RFC3339),
		SettlesAt:   spin.SettlesAt.UTC().Format(time.RFC3339),
	}
}
