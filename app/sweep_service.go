package app

import (
	"context"
	"errors"
	"fmt"

	"fluxion/domain/core"
	"fluxion/domain/device"
	"fluxion/internal"
)

// SweepService surveys every universe in a grid of categories and port
// counts, one run per universe.
type SweepService struct {
	surveys *SurveyService
	logger  *internal.Logger
}

// NewSweepService creates a sweep service
func NewSweepService(surveys *SurveyService, logger *internal.Logger) *SweepService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &SweepService{surveys: surveys, logger: logger}
}

// SweepRequest defines the grid to cover
type SweepRequest struct {
	MaxPorts        int
	ConserveFlux    bool
	CollectAccepted bool
	ProgressEvery   uint64
}

// SweepResult collects the per-universe survey results in grid order
type SweepResult struct {
	Surveys []*SurveyResult
}

// Sweep surveys each category at each port count from 1 to MaxPorts.
// Universes a category cannot express under the requested axioms are
// skipped, not failed.
func (s *SweepService) Sweep(ctx context.Context, req SweepRequest) (*SweepResult, error) {
	if req.MaxPorts < 1 {
		return nil, core.NewMappingError("sweep needs at least one port")
	}

	var surveys []*SurveyResult
	for _, category := range device.Categories() {
		for ports := 1; ports <= req.MaxPorts; ports++ {
			result, err := s.surveys.Survey(ctx, SurveyRequest{
				Category:        category,
				Ports:           ports,
				ConserveFlux:    req.ConserveFlux,
				CollectAccepted: req.CollectAccepted,
				ProgressEvery:   req.ProgressEvery,
			})
			if errors.Is(err, core.ErrUnsupportedCategory) {
				s.logger.Warn("Skipping %s at %d ports: %v", category, ports, err)
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("surveying %s at %d ports: %w", category, ports, err)
			}
			surveys = append(surveys, result)
		}
	}

	return &SweepResult{Surveys: surveys}, nil
}
