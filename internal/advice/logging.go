package advice

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// LoggingProvider decorates a Provider with structured request logging.
// Logging never fails the request.
type LoggingProvider struct {
	inner Provider
	log   *zap.SugaredLogger
}

// WithLogging wraps a Provider with zap logging.
func WithLogging(p Provider, log *zap.SugaredLogger) Provider {
	return &LoggingProvider{inner: p, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)
	latency := time.Since(start)

	fields := []any{
		"model", l.inner.ModelID(),
		"latency_ms", latency.Milliseconds(),
	}
	if req.Schema != nil {
		fields = append(fields, "schema", req.Schema.Name)
	}
	if resp != nil {
		fields = append(fields,
			"model_served", resp.Model,
			"input_tokens", resp.Usage.InputTokens,
			"output_tokens", resp.Usage.OutputTokens,
			"stop_reason", resp.StopReason,
		)
	}

	if err != nil {
		l.log.Warnw("model request failed", append(fields, "error", err)...)
	} else {
		l.log.Infow("model request served", fields...)
	}
	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
