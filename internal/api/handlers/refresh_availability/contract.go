package refresh_availability

import (
	"context"

	refresh "github.com/m04kA/SMC-AvailabilityService/internal/usecase/refresh_next_available"
)

type RefreshUseCase interface {
	Execute(ctx context.Context, req *refresh.Request) (*refresh.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
