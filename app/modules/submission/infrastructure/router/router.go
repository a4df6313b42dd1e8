package submissionrouter

import (
	"context"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/metrics"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/prometheus/client_golang/prometheus"

	submissionhandlers "github.com/codeclash-oj/codeclash/app/modules/submission/infrastructure/handlers"
	sharedevents "github.com/codeclash-oj/codeclash/app/shared/events"
)

// SubmissionRouter wires the submission module's event handlers onto a
// watermill router.
type SubmissionRouter struct {
	logger     *slog.Logger
	Router     *message.Router
	subscriber message.Subscriber
	publisher  message.Publisher
}

// NewSubmissionRouter creates a new instance of the router.
func NewSubmissionRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber message.Subscriber,
	publisher message.Publisher,
) *SubmissionRouter {
	return &SubmissionRouter{
		logger:     logger,
		Router:     router,
		subscriber: subscriber,
		publisher:  publisher,
	}
}

// Configure sets up middleware and registers the module's handlers.
// prometheusRegistry may be nil, which disables router metrics (used by
// tests).
func (r *SubmissionRouter) Configure(ctx context.Context, handlers submissionhandlers.Handlers, prometheusRegistry *prometheus.Registry) error {
	if prometheusRegistry != nil {
		builder := metrics.NewPrometheusMetricsBuilder(prometheusRegistry, "", "")
		builder.AddPrometheusRouterMetrics(r.Router)
	}

	r.Router.AddMiddleware(
		middleware.CorrelationID,
		middleware.Retry{
			MaxRetries:      3,
			InitialInterval: 100 * time.Millisecond,
			Logger:          watermill.NewSlogLogger(r.logger),
		}.Middleware,
		middleware.Recoverer,
	)

	r.Router.AddHandler(
		"submission.judge_verdict",
		sharedevents.SubmissionJudgedV1,
		r.subscriber,
		sharedevents.StandingsInvalidatedV1,
		r.publisher,
		handlers.HandleSubmissionJudged,
	)

	r.Router.AddNoPublisherHandler(
		"submission.standings_invalidated",
		sharedevents.StandingsInvalidatedV1,
		r.subscriber,
		handlers.HandleStandingsInvalidated,
	)

	return nil
}

// Close stops the router.
func (r *SubmissionRouter) Close() error {
	return r.Router.Close()
}
