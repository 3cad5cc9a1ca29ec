package assign_class

import (
	"context"

	assignClass "github.com/m04kA/SMC-PoolService/internal/usecase/assign_class"
)

type AssignClassUseCase interface {
	Execute(ctx context.Context, req *assignClass.Request) (*assignClass.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
