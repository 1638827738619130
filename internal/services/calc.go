// Package services wires the calculators, repositories and billing manager
// together for the UI layer. Each service owns the orchestration rules for
// one concern; collection invariants stay in the repositories.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/zedbuild/buildcalc/internal/calc"
	"github.com/zedbuild/buildcalc/internal/logging"
	"github.com/zedbuild/buildcalc/internal/models"
	"github.com/zedbuild/buildcalc/internal/repositories/calculations"
)

// CalcService runs calculators and appends each successful run to the
// calculation log.
type CalcService interface {
	RunCement(ctx context.Context, in calc.CementInput) ([]models.ResultLine, error)
	RunBrick(ctx context.Context, in calc.BrickInput) ([]models.ResultLine, error)
	RunArea(ctx context.Context, in calc.AreaInput) ([]models.ResultLine, error)
	RunVolume(ctx context.Context, in calc.VolumeInput) ([]models.ResultLine, error)
	RunLabor(ctx context.Context, in calc.LaborInput) ([]models.ResultLine, error)

	// History lists past runs, optionally filtered by type ("" means all).
	History(ctx context.Context, t models.CalcType) ([]models.Calculation, error)
}

type calcService struct {
	repo     calculations.Repository
	currency string
	log      logging.Logger
	now      func() time.Time
}

// NewCalcService returns a CalcService logging costs in the given currency.
func NewCalcService(repo calculations.Repository, currency string, log logging.Logger) CalcService {
	return &calcService{
		repo:     repo,
		currency: currency,
		log:      log.With("component", "calc"),
		now:      time.Now,
	}
}

func (s *calcService) RunCement(ctx context.Context, in calc.CementInput) ([]models.ResultLine, error) {
	r, err := calc.Cement(in)
	if err != nil {
		return nil, err
	}
	lines := r.Lines(s.currency)
	if err := s.append(ctx, models.CalcTypeCement, in, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *calcService) RunBrick(ctx context.Context, in calc.BrickInput) ([]models.ResultLine, error) {
	r, err := calc.Brick(in)
	if err != nil {
		return nil, err
	}
	lines := r.Lines(s.currency)
	if err := s.append(ctx, models.CalcTypeBrick, in, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *calcService) RunArea(ctx context.Context, in calc.AreaInput) ([]models.ResultLine, error) {
	r, err := calc.Area(in)
	if err != nil {
		return nil, err
	}
	lines := r.Lines()
	if err := s.append(ctx, models.CalcTypeArea, in, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *calcService) RunVolume(ctx context.Context, in calc.VolumeInput) ([]models.ResultLine, error) {
	r, err := calc.Volume(in)
	if err != nil {
		return nil, err
	}
	lines := r.Lines()
	if err := s.append(ctx, models.CalcTypeVolume, in, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *calcService) RunLabor(ctx context.Context, in calc.LaborInput) ([]models.ResultLine, error) {
	r, err := calc.Labor(in)
	if err != nil {
		return nil, err
	}
	lines := r.Lines(in, s.currency)
	if err := s.append(ctx, models.CalcTypeLabor, in, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *calcService) History(ctx context.Context, t models.CalcType) ([]models.Calculation, error) {
	if t == "" {
		return s.repo.GetAll(ctx)
	}
	return s.repo.ListByType(ctx, t)
}

func (s *calcService) append(ctx context.Context, t models.CalcType, inputs any, lines []models.ResultLine) error {
	raw, err := json.Marshal(inputs)
	if err != nil {
		return fmt.Errorf("failed to encode inputs: %w", err)
	}
	id, err := s.repo.Append(ctx, &models.Calculation{
		Type:      t,
		Timestamp: s.now(),
		Inputs:    raw,
		Results:   lines,
	})
	if err != nil {
		return fmt.Errorf("failed to log calculation: %w", err)
	}
	s.log.Debug(ctx, "calculation logged", "type", t, "id", id)
	return nil
}
