package workflow

import (
	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/cfdops/caseflow/pkg/telemetry"
)

var (
	meter = otel.GetMeterProvider().Meter("workflow")

	jobsSubmitted = lo.Must(telemetry.NewCounter(meter,
		"jobs_submitted",
		"Number of jobs accepted by the scheduler"))

	submitDurationMilliseconds = lo.Must(meter.Int64Histogram(
		"submit_duration_milliseconds",
		metric.WithDescription("Time taken for one scheduler submission round trip")))
)
