package logging

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

// Middleware is the Huma equivalent of LoggingWrapper: it creates a LogData
// per request, stores it in the request context, and emits one structured
// entry per completed request.
func Middleware(log *logrus.Logger) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		logData := NewLogData(log)
		logData.AddData("operation", ctx.Operation().OperationID)
		logData.AddData("method", ctx.Method())
		logData.AddData("path", ctx.URL().Path)

		endTimer := logData.AddTiming("duration")
		next(huma.WithContext(ctx, ContextWithLogData(ctx.Context(), logData)))
		endTimer()

		logData.AddData("status", ctx.Status())
		logData.Log().Infof("Handler.%v.Complete", ctx.Operation().OperationID)
	}
}
