package export_lanes

import "context"

type LaneService interface {
	ExportCSV(ctx context.Context) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
