package performance

import (
	"context"
	"time"

	"github.com/dlshle/golodash/logging"
)

func Measure(task func()) time.Duration {
	from := time.Now()
	task()
	return time.Since(from)
}

// MeasureWithLog runs task and logs its duration at INFO under name.
func MeasureWithLog(ctx context.Context, logger logging.Logger, name string, task func()) time.Duration {
	dur := Measure(task)
	logger.Infof(logging.WrapCtx(ctx, "task", name), "%s took %s", name, dur)
	return dur
}
