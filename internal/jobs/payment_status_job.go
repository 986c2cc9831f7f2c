package jobs

import (
	"context"
	"time"

	"github.com/straye-as/bizdesk-api/internal/domain"
	"go.uber.org/zap"
)

// PaymentStatusJobName is the name of the invoice and payable overdue check
const PaymentStatusJobName = "payment_status"

// PaymentStatusRefresher re-derives due and overdue statuses as of a day.
// *store.Store implements it.
type PaymentStatusRefresher interface {
	RefreshPaymentStatuses(ctx context.Context, today time.Time) (invoicesChanged, payablesChanged int)
}

// PaymentStatusJob flips unpaid invoices and payables to overdue once their due
// date has passed, so statuses are current even when nobody lists them
type PaymentStatusJob struct {
	refresher PaymentStatusRefresher
	logger    *zap.Logger
	timeout   time.Duration
	now       func() time.Time
}

// NewPaymentStatusJob creates the job. The timeout bounds a single run.
func NewPaymentStatusJob(refresher PaymentStatusRefresher, logger *zap.Logger, timeout time.Duration) *PaymentStatusJob {
	return &PaymentStatusJob{
		refresher: refresher,
		logger:    logger,
		timeout:   timeout,
		now:       time.Now,
	}
}

// Run refreshes the statuses once
func (j *PaymentStatusJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	today := domain.DateOf(j.now())
	invoices, payables := j.refresher.RefreshPaymentStatuses(ctx, today)

	if invoices > 0 || payables > 0 {
		j.logger.Info("payment statuses refreshed",
			zap.String("as_of", domain.FormatDate(today)),
			zap.Int("invoices_changed", invoices),
			zap.Int("payables_changed", payables))
	}
}

// RegisterPaymentStatusJob schedules the job with cronExpr. With runOnStart the
// job also runs once immediately in the background.
func RegisterPaymentStatusJob(scheduler *Scheduler, refresher PaymentStatusRefresher, logger *zap.Logger, cronExpr string, runOnStart bool) error {
	job := NewPaymentStatusJob(refresher, logger, time.Minute)

	if runOnStart {
		go job.Run()
	}

	return scheduler.AddJob(PaymentStatusJobName, cronExpr, job.Run)
}
