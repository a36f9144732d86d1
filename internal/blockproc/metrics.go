package blockproc

import (
	"context"

	"github.com/gabapcia/taowatch/internal/blockscan"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

type metrics struct {
	blocksInspected        metric.Int64Counter
	notificationsDelivered metric.Int64Counter
	notificationsFailed    metric.Int64Counter
	branchErrors           metric.Int64Counter
}

func newMetrics(meter metric.Meter) *metrics {
	return &metrics{
		blocksInspected:        counter(meter, "taowatch.blocks.inspected", "Blocks inspected for governance activity."),
		notificationsDelivered: counter(meter, "taowatch.notifications.delivered", "Notifications accepted by the sink."),
		notificationsFailed:    counter(meter, "taowatch.notifications.failed", "Notifications the sink rejected."),
		branchErrors:           counter(meter, "taowatch.branch.errors", "Report branches that failed."),
	}
}

// counter falls back to a no-op instrument when the meter rejects the definition.
func counter(meter metric.Meter, name, description string) metric.Int64Counter {
	c, err := meter.Int64Counter(name, metric.WithDescription(description))
	if err != nil {
		return noop.Int64Counter{}
	}
	return c
}

func (m *metrics) blockInspected(ctx context.Context, network string) {
	m.blocksInspected.Add(ctx, 1, metric.WithAttributes(attribute.String("block.network", network)))
}

func (m *metrics) notificationDelivered(ctx context.Context, category blockscan.Category) {
	m.notificationsDelivered.Add(ctx, 1, metric.WithAttributes(attribute.String("notification.category", string(category))))
}

func (m *metrics) notificationFailed(ctx context.Context, category blockscan.Category) {
	m.notificationsFailed.Add(ctx, 1, metric.WithAttributes(attribute.String("notification.category", string(category))))
}

func (m *metrics) branchFailed(ctx context.Context, kind blockscan.CallKind) {
	m.branchErrors.Add(ctx, 1, metric.WithAttributes(attribute.String("call.kind", kind.String())))
}
