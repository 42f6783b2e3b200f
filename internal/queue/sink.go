package queue

import (
	"context"
	"encoding/json"
	"time"
)

// LateSink delegates to a sink bound after construction. The registry needs
// a sink and the orchestrator needs the registry; binding after both exist
// breaks the cycle. Bind must happen before any queue starts.
type LateSink struct {
	sink Sink
}

func (l *LateSink) Bind(s Sink) { l.sink = s }

func (l *LateSink) JobStarted(ctx context.Context, job *Job) {
	l.sink.JobStarted(ctx, job)
}

func (l *LateSink) JobSucceeded(ctx context.Context, job *Job, result json.RawMessage) error {
	return l.sink.JobSucceeded(ctx, job, result)
}

func (l *LateSink) JobRetried(ctx context.Context, job *Job, failure *Failure, delay time.Duration) {
	l.sink.JobRetried(ctx, job, failure, delay)
}

func (l *LateSink) JobExhausted(ctx context.Context, job *Job, failure *Failure) error {
	return l.sink.JobExhausted(ctx, job, failure)
}

func (l *LateSink) JobProgress(ctx context.Context, job *Job, percent int, message string) {
	l.sink.JobProgress(ctx, job, percent, message)
}
