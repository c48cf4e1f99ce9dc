package household

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/hearthhq/hearth/internal/domain/health"
	"github.com/hearthhq/hearth/internal/ports/inbound"
	"github.com/hearthhq/hearth/internal/ports/outbound"
	"github.com/hearthhq/hearth/pkg/errors"
	"go.uber.org/zap"
)

// HealthService serves the health charts
type HealthService struct {
	repo   outbound.HealthRepository
	logger *zap.Logger
}

var _ inbound.HealthService = (*HealthService)(nil)

// NewHealthService creates a new health service
func NewHealthService(repo outbound.HealthRepository, logger *zap.Logger) *HealthService {
	return &HealthService{repo: repo, logger: logger.Named("health-service")}
}

// Series returns a metric's readings, narrowed to one member unless member
// is "" or "All"
func (s *HealthService) Series(ctx context.Context, metric health.Metric, member string) (*health.Series, error) {
	if !metric.IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("unknown metric %q", metric))
	}

	series, err := s.repo.Series(ctx, metric)
	if err != nil {
		if stderrors.Is(err, outbound.ErrNotFound) {
			return &health.Series{Metric: metric, Readings: []health.Reading{}}, nil
		}
		return nil, errors.NewStorageError("load health series", err)
	}

	narrowed, err := series.ForMember(member)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("Health readings for %s", member))
	}
	return &narrowed, nil
}
