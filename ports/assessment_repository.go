package ports

import (
	"context"

	"windfit/domain/core"
	"windfit/domain/wind"
)

// AssessmentRepository persists completed wind-resource assessments
type AssessmentRepository interface {
	Save(ctx context.Context, a *wind.Assessment) error
	GetByID(ctx context.Context, id core.ID) (*wind.Assessment, error)
	ListByLabel(ctx context.Context, label string, limit int) ([]*wind.Assessment, error)
	List(ctx context.Context, limit int) ([]*wind.Assessment, error)
}
