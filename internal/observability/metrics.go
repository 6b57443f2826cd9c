package observability

import (
	"context"
	"fmt"
	"time"

	"app/internal/config"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
)

// WithEvent tags a counter add with the webhook event name.
func WithEvent(event string) metric.AddOption {
	return metric.WithAttributes(attribute.String("event", event))
}

// WithResult tags a counter add with a finalization result.
func WithResult(result string) metric.AddOption {
	return metric.WithAttributes(attribute.String("result", result))
}

// AppMetrics holds the counters the payment flow emits.
type AppMetrics struct {
	WebhookEvents        metric.Int64Counter
	OrdersFinalized      metric.Int64Counter
	WalletCredits        metric.Int64Counter
	NotificationsCreated metric.Int64Counter
}

// Init builds an OTLP HTTP exporter and MeterProvider. With no endpoint
// configured it returns no-op metrics and a nil provider.
func Init(ctx context.Context, cfg config.Config) (*AppMetrics, *sdkmetric.MeterProvider, error) {
	if cfg.OTELEndpoint == "" {
		m, err := newAppMetrics(noop.NewMeterProvider().Meter(cfg.OTELServiceName))
		return m, nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.OTELServiceName),
			attribute.String("deployment.environment", cfg.GoEnv),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("build resource: %w", err)
	}

	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(cfg.OTELEndpoint),
		otlpmetrichttp.WithURLPath("/v1/metrics"),
	}
	if cfg.OTELInsecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("build exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter,
			sdkmetric.WithInterval(10*time.Second))),
	)

	m, err := newAppMetrics(provider.Meter(cfg.OTELServiceName))
	if err != nil {
		return nil, nil, err
	}
	return m, provider, nil
}

func newAppMetrics(meter metric.Meter) (*AppMetrics, error) {
	webhookEvents, err := meter.Int64Counter("webhook_events_total",
		metric.WithDescription("Webhook events received, by event type"))
	if err != nil {
		return nil, err
	}

	ordersFinalized, err := meter.Int64Counter("orders_finalized_total",
		metric.WithDescription("Order finalizations, by result"))
	if err != nil {
		return nil, err
	}

	walletCredits, err := meter.Int64Counter("wallet_credits_total",
		metric.WithDescription("Wallet credit rows written"))
	if err != nil {
		return nil, err
	}

	notificationsCreated, err := meter.Int64Counter("notifications_created_total",
		metric.WithDescription("Notification rows written"))
	if err != nil {
		return nil, err
	}

	return &AppMetrics{
		WebhookEvents:        webhookEvents,
		OrdersFinalized:      ordersFinalized,
		WalletCredits:        walletCredits,
		NotificationsCreated: notificationsCreated,
	}, nil
}
