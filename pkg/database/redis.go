package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"oldenera-wiki/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ErrNil is returned by Get and GetJSON when the key does not exist
var ErrNil = redis.Nil

type Redis struct {
	Client *redis.Client
	tracer trace.Tracer
}

// NewRedis connects to the server at redisURL and verifies the connection
func NewRedis(ctx context.Context, redisURL string) (*Redis, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	// Test connection
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	slog.Info("Connected to Redis", "addr", opt.Addr, "db", opt.DB)

	return NewRedisFromClient(client), nil
}

// NewRedisFromClient wraps an existing client
func NewRedisFromClient(client *redis.Client) *Redis {
	r := &Redis{Client: client}

	// Only initialize tracer if telemetry is enabled
	if config.GetBoolEnv("ENABLE_TELEMETRY", false) {
		r.tracer = otel.Tracer("redis-client")
	}

	return r
}

func (r *Redis) Close() error {
	return r.Client.Close()
}

// startSpan starts a client span when tracing is enabled
func (r *Redis) startSpan(ctx context.Context, name, operation string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if r.tracer == nil {
		return ctx, nil
	}
	attrs = append(attrs, attribute.String("redis.operation", operation))
	return r.tracer.Start(ctx, name, trace.WithAttributes(attrs...), trace.WithSpanKind(trace.SpanKindClient))
}

func endSpan(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil && err != redis.Nil {
		span.RecordError(err)
	}
	span.End()
}

func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	ctx, span := r.startSpan(ctx, "redis.get", "GET", attribute.String("redis.key", key))
	result, err := r.Client.Get(ctx, key).Result()
	endSpan(span, err)
	return result, err
}

func (r *Redis) Delete(ctx context.Context, keys ...string) error {
	ctx, span := r.startSpan(ctx, "redis.delete", "DEL", attribute.StringSlice("redis.keys", keys))
	err := r.Client.Del(ctx, keys...).Err()
	endSpan(span, err)
	return err
}

func (r *Redis) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return r.Client.Ping(ctx).Err()
}

// SetJSON stores a JSON-serializable object in Redis with expiration
func (r *Redis) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	ctx, span := r.startSpan(ctx, "redis.set_json", "SET_JSON",
		attribute.String("redis.key", key),
		attribute.Int("redis.data_size", len(jsonData)),
	)
	err = r.Client.Set(ctx, key, jsonData, expiration).Err()
	endSpan(span, err)
	return err
}

// GetJSON retrieves and unmarshals a JSON object from Redis
func (r *Redis) GetJSON(ctx context.Context, key string, dest interface{}) error {
	ctx, span := r.startSpan(ctx, "redis.get_json", "GET_JSON", attribute.String("redis.key", key))
	jsonData, err := r.Client.Get(ctx, key).Bytes()
	endSpan(span, err)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(jsonData, dest); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return nil
}
