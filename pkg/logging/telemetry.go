package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"oldenera-wiki/pkg/config"
	"oldenera-wiki/pkg/version"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

type TelemetryConfig struct {
	EnableTelemetry  bool
	ServiceName      string
	OTLPEndpoint     string
	LogLevel         string
	EnablePrettyLogs bool
	Environment      string
}

type TelemetryManager struct {
	config        TelemetryConfig
	output        io.Writer
	shutdownFuncs []func(context.Context) error
	logger        *slog.Logger
}

// NewTelemetryManager reads telemetry settings from the environment
func NewTelemetryManager(serviceName string) *TelemetryManager {
	return NewTelemetryManagerWithConfig(TelemetryConfig{
		EnableTelemetry:  config.GetBoolEnv("ENABLE_TELEMETRY", false),
		ServiceName:      config.GetEnv("SERVICE_NAME", serviceName),
		OTLPEndpoint:     config.GetEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4318"),
		LogLevel:         config.GetEnv("LOG_LEVEL", "info"),
		EnablePrettyLogs: config.GetBoolEnv("ENABLE_PRETTY_LOGS", false),
		Environment:      config.GetEnv("APP_ENV", "development"),
	}, os.Stdout)
}

// NewTelemetryManagerWithConfig creates a manager writing console logs to output
func NewTelemetryManagerWithConfig(cfg TelemetryConfig, output io.Writer) *TelemetryManager {
	return &TelemetryManager{
		config: cfg,
		output: output,
	}
}

func (tm *TelemetryManager) Initialize(ctx context.Context) error {
	// Setup structured logging first (always needed)
	tm.setupLogger()

	// Only initialize telemetry if enabled
	if !tm.config.EnableTelemetry {
		slog.Info("Telemetry disabled",
			slog.String("service", tm.config.ServiceName),
			slog.Bool("telemetry_enabled", false),
		)
		return nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(tm.config.ServiceName),
			semconv.ServiceVersionKey.String(version.Version),
			semconv.DeploymentEnvironmentKey.String(tm.config.Environment),
		),
	)
	if err != nil {
		return err
	}

	if err := tm.initTracing(ctx, res); err != nil {
		slog.Warn("Failed to initialize tracing", "error", err)
	}

	if err := tm.initLogging(ctx, res); err != nil {
		slog.Warn("Failed to initialize OpenTelemetry logging", "error", err)
	}

	slog.Info("Telemetry initialized",
		slog.String("service", tm.config.ServiceName),
		slog.String("endpoint", tm.config.OTLPEndpoint),
		slog.String("log_level", tm.config.LogLevel),
		slog.Bool("pretty_logs", tm.config.EnablePrettyLogs),
	)

	return nil
}

func (tm *TelemetryManager) initTracing(ctx context.Context, res *resource.Resource) error {
	traceExporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(tm.config.OTLPEndpoint+"/v1/traces"),
	)
	if err != nil {
		return err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	tm.shutdownFuncs = append(tm.shutdownFuncs, tp.Shutdown)
	return nil
}

func (tm *TelemetryManager) initLogging(ctx context.Context, res *resource.Resource) error {
	logExporter, err := otlploghttp.New(ctx,
		otlploghttp.WithEndpointURL(tm.config.OTLPEndpoint+"/v1/logs"),
	)
	if err != nil {
		return err
	}

	lp := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(logExporter)),
		sdklog.WithResource(res),
	)

	global.SetLoggerProvider(lp)
	tm.shutdownFuncs = append(tm.shutdownFuncs, lp.Shutdown)
	return nil
}

func (tm *TelemetryManager) setupLogger() {
	opts := &slog.HandlerOptions{
		Level: ParseLogLevel(tm.config.LogLevel),
	}

	var handler slog.Handler
	if tm.config.EnablePrettyLogs {
		// Pretty console logging for development
		handler = slog.NewTextHandler(tm.output, opts)
	} else {
		// JSON logging for production
		handler = slog.NewJSONHandler(tm.output, opts)
	}

	// Only wrap with OTel handler if telemetry is enabled
	if tm.config.EnableTelemetry {
		handler = NewOTelHandler(handler, tm.config.ServiceName)
	}

	logger := slog.New(handler).With("service", tm.config.ServiceName)

	slog.SetDefault(logger)
	tm.logger = logger
}

func (tm *TelemetryManager) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down telemetry...")

	for _, shutdown := range tm.shutdownFuncs {
		if err := shutdown(ctx); err != nil {
			slog.Error("Error shutting down telemetry component", "error", err)
		}
	}

	return nil
}

func (tm *TelemetryManager) Logger() *slog.Logger {
	return tm.logger
}

// ParseLogLevel maps a LOG_LEVEL value to a slog level, defaulting to info
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
