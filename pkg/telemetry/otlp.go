package telemetry

// Standard OTLP exporter environment variables, see
// https://opentelemetry.io/docs/concepts/sdk-configuration/otlp-exporter-configuration/
const (
	otlpEndpoint        = "OTEL_EXPORTER_OTLP_ENDPOINT"
	otlpTracesEndpoint  = "OTEL_EXPORTER_OTLP_TRACES_ENDPOINT"
	otlpMetricsEndpoint = "OTEL_EXPORTER_OTLP_METRICS_ENDPOINT"

	otlpProtocol        = "OTEL_EXPORTER_OTLP_PROTOCOL"
	otlpTracesProtocol  = "OTEL_EXPORTER_OTLP_TRACES_PROTOCOL"
	otlpMetricsProtocol = "OTEL_EXPORTER_OTLP_METRICS_PROTOCOL"

	otlpProtocolHTTP = "http/protobuf"
	otlpProtocolGrpc = "grpc"

	disableTelemetry = "CASEFLOW_DISABLE_TELEMETRY"
)
