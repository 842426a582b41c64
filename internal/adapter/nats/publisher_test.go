package nats

import (
	"context"
	"testing"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestHeaderCarrier_InjectsTraceContext(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()

	header := nats.Header{}
	propagation.TraceContext{}.Inject(ctx, HeaderCarrier(header))

	traceparent := HeaderCarrier(header).Get("traceparent")
	require.NotEmpty(t, traceparent)
	assert.Contains(t, traceparent, span.SpanContext().TraceID().String())
	assert.Contains(t, HeaderCarrier(header).Keys(), "traceparent")
}

func TestNewPublisher_RejectsNilConnection(t *testing.T) {
	_, err := NewPublisher(nil, nil)
	assert.Error(t, err)
}
