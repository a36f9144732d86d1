package blockproc

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gabapcia/taowatch/internal/blockscan"
	"github.com/gabapcia/taowatch/internal/chainwatch"
	"github.com/gabapcia/taowatch/internal/pkg/errtrack"
	"github.com/gabapcia/taowatch/internal/pkg/logger"
	"github.com/gabapcia/taowatch/internal/pkg/x/chflow"

	"github.com/alitto/pond/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// errNotDelivered marks a notification whose delivery task never ran.
var errNotDelivered = errors.New("notification not delivered")

// handleObservedBlocks handles blocks in arrival order until blocksCh is
// closed or ctx is canceled. A failing block is logged and does not stop the loop.
func (s *service) handleObservedBlocks(ctx context.Context, blocksCh <-chan chainwatch.ObservedBlock) {
	for {
		block, ok := chflow.Receive(ctx, blocksCh)
		if !ok {
			return
		}

		if _, err := s.Handle(ctx, block); err != nil && ctx.Err() == nil {
			logger.Error(ctx, "failed to handle block",
				"block.network", block.Network,
				"block.height", block.Snapshot.Height,
				"error", err,
			)
			errtrack.Capture(ctx, err, blockTags(block.Network, block.Snapshot.Height))
		}
	}
}

func (s *service) Handle(ctx context.Context, block chainwatch.ObservedBlock) (BlockResult, error) {
	run := newBlockRun(block.Network, block.Snapshot.Height)
	ctx = logger.Derive(ctx,
		"block.network", run.network,
		"block.height", run.height,
		"block.run_id", run.id,
	)

	if err := s.guard.ClaimBlock(ctx, run.network, run.height, s.claimTTL); err != nil {
		if errors.Is(err, ErrAlreadyFinished) || errors.Is(err, ErrStillInProgress) {
			logger.Debug(ctx, "block skipped", "reason", err.Error())
			run.skipped = true
			return run.result(), nil
		}
		return run.result(), fmt.Errorf("claim block %d: %w", run.height, err)
	}

	ctx, span := s.tracer.Start(ctx, "blockproc.Handle", trace.WithAttributes(
		attribute.String("block.network", run.network),
		attribute.Int64("block.height", int64(run.height)),
		attribute.String("block.run_id", run.id),
	))
	defer span.End()

	bundle, err := s.inspector.Inspect(ctx, block.Snapshot)
	run.bundle = bundle
	s.metrics.blockInspected(ctx, run.network)
	if err != nil {
		span.RecordError(err)
		s.reportBranchErrors(ctx, run, err)
	}

	if bundle.CacheStale {
		logger.Info(ctx, "block executed a coldkey swap or subnet dissolution, refreshing enrichment cache")
		s.refresher.Trigger()
	}

	run.recordDeliveries(s.deliver(ctx, bundle.Notifications))
	span.SetAttributes(
		attribute.Int("notifications.delivered", run.delivered),
		attribute.Int("notifications.failed", run.failed),
	)

	if run.failed > 0 {
		err := fmt.Errorf("block %d: %d of %d notifications not delivered", run.height, run.failed, len(bundle.Notifications))
		span.SetStatus(codes.Error, err.Error())
		return run.result(), err
	}

	if err := s.guard.MarkBlockDelivered(ctx, run.network, run.height); err != nil {
		return run.result(), fmt.Errorf("mark block %d delivered: %w", run.height, err)
	}

	if run.delivered > 0 {
		logger.Info(ctx, "block notifications delivered", "notifications.delivered", run.delivered)
	} else {
		logger.Debug(ctx, "block inspected, nothing to report")
	}

	return run.result(), nil
}

// reportBranchErrors logs and tracks every isolated branch failure of err.
func (s *service) reportBranchErrors(ctx context.Context, run blockRun, err error) {
	for _, branchErr := range flatten(err) {
		kind := blockscan.KindUnknown
		var be *blockscan.BranchError
		if errors.As(branchErr, &be) {
			kind = be.Kind
		}

		s.metrics.branchFailed(ctx, kind)
		logger.Error(ctx, "report branch failed",
			"call.kind", kind.String(),
			"error", branchErr,
		)

		tags := blockTags(run.network, run.height)
		tags["call.kind"] = kind.String()
		errtrack.Capture(ctx, branchErr, tags)
	}
}

// deliver sends every notification through the worker pool and returns the
// outcome of each one, index aligned with notifications.
func (s *service) deliver(ctx context.Context, notifications []blockscan.Notification) []error {
	if len(notifications) == 0 {
		return nil
	}

	errs := make([]error, len(notifications))
	group := s.pool.NewGroupContext(ctx)
	groupCtx := group.Context()

	for i, n := range notifications {
		errs[i] = errNotDelivered
		group.Submit(func() {
			if err := groupCtx.Err(); err != nil {
				errs[i] = err
				return
			}
			errs[i] = s.notify(groupCtx, n)
		})
	}

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, pond.ErrGroupStopped) {
		logger.Warn(ctx, "notification delivery group encountered error", "error", err)
	}

	return errs
}

func (s *service) notify(ctx context.Context, n blockscan.Notification) error {
	if err := s.notifier.Notify(ctx, n); err != nil {
		s.metrics.notificationFailed(ctx, n.Category)
		logger.Error(ctx, "failed to deliver notification",
			"notification.category", string(n.Category),
			"error", err,
		)

		tags := blockTags("", n.Height)
		tags["notification.category"] = string(n.Category)
		errtrack.Capture(ctx, err, tags)
		return fmt.Errorf("deliver %s notification: %w", n.Category, err)
	}

	s.metrics.notificationDelivered(ctx, n.Category)
	return nil
}

// flatten splits a joined error into its parts.
func flatten(err error) []error {
	if err == nil {
		return nil
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

func blockTags(network string, height uint64) map[string]string {
	tags := map[string]string{"block.height": strconv.FormatUint(height, 10)}
	if network != "" {
		tags["block.network"] = network
	}
	return tags
}
