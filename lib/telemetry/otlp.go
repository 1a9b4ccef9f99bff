package telemetry

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/trace"
)

// endpoint describes where one otlp signal goes. When both endpoints
// are set the grpc one wins.
type endpoint struct {
	GrpcEndpoint string            `json:"grpc_endpoint"`
	HttpEndpoint string            `json:"http_endpoint"`
	Headers      map[string]string `json:"headers"`
}

// config is the shape of telemetry.json5.
type config struct {
	Otlp struct {
		Traces  endpoint `json:"traces"`
		Metrics endpoint `json:"metrics"`
	} `json:"otlp"`
}

const exporterTimeout = time.Second * 3

func (e endpoint) useGrpc() bool {
	return e.GrpcEndpoint != ""
}

func (e endpoint) url() string {
	if e.useGrpc() {
		return e.GrpcEndpoint
	}
	return e.HttpEndpoint
}

func (e endpoint) logInit(signal string) {
	protocol := "http"
	if e.useGrpc() {
		protocol = "grpc"
	}
	slog.Info(
		"otlp exporter initialized",
		"signal", signal,
		"type", protocol,
		"endpoint", e.url(),
		"headers", len(e.Headers) > 0,
	)
}

func newTraceExporter(ctx context.Context, e endpoint) (trace.SpanExporter, error) {
	ctx, cancel := context.WithTimeout(ctx, exporterTimeout)
	defer cancel()

	e.logInit("traces")
	if e.useGrpc() {
		return otlptracegrpc.New(
			ctx,
			otlptracegrpc.WithEndpointURL(e.GrpcEndpoint),
			otlptracegrpc.WithHeaders(e.Headers),
		)
	}
	return otlptracehttp.New(
		ctx,
		otlptracehttp.WithEndpointURL(e.HttpEndpoint),
		otlptracehttp.WithHeaders(e.Headers),
	)
}

func newMetricExporter(ctx context.Context, e endpoint) (metric.Exporter, error) {
	ctx, cancel := context.WithTimeout(ctx, exporterTimeout)
	defer cancel()

	e.logInit("metrics")
	if e.useGrpc() {
		return otlpmetricgrpc.New(
			ctx,
			otlpmetricgrpc.WithEndpointURL(e.GrpcEndpoint),
			otlpmetricgrpc.WithHeaders(e.Headers),
		)
	}
	return otlpmetrichttp.New(
		ctx,
		otlpmetrichttp.WithEndpointURL(e.HttpEndpoint),
		otlpmetrichttp.WithHeaders(e.Headers),
	)
}
