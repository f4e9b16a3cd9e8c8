package rank_cleaners

import (
	"context"

	rankCleaners "github.com/m04kA/SMC-AvailabilityService/internal/usecase/rank_cleaners"
)

type RankCleanersUseCase interface {
	Execute(ctx context.Context, req *rankCleaners.Request) (*rankCleaners.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
