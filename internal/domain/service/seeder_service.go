package service

import (
	"context"

	"github.com/daffahilmyf/dictators-seed/internal/domain/entity"
)

type SeederService interface {
	Probe(ctx context.Context) entity.Outcome
	Bulk(ctx context.Context) (entity.Outcome, *entity.SampleDataResult)
	Fallback(ctx context.Context) (dictators, achievements []entity.Outcome)
	Verify(ctx context.Context) []entity.Outcome
	Run(ctx context.Context) (entity.Report, error)
}
