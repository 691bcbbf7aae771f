package worker

import (
	"context"
	"errors"
	"fmt"

	"accounts/internal/account"
	"accounts/pkg/logger"
	"accounts/pkg/mailer"
	"accounts/pkg/serrors"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// WelcomeEmailWorker is a River worker that delivers the welcome mail enqueued
// during registration. Transient delivery failures are retried by River up to
// the job's MaxAttempts; permanent failures cancel the job.
type WelcomeEmailWorker struct {
	river.WorkerDefaults[account.WelcomeEmailJobArgs]

	// mailer delivers the outgoing message.
	mailer mailer.Mailer
}

// NewWelcomeEmailWorker constructs a WelcomeEmailWorker using the provided mailer.
func NewWelcomeEmailWorker(mailer mailer.Mailer) *WelcomeEmailWorker {
	return &WelcomeEmailWorker{mailer: mailer}
}

// Work sends the welcome mail for a single job.
func (w *WelcomeEmailWorker) Work(ctx context.Context, job *river.Job[account.WelcomeEmailJobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("email", job.Args.Email))

	greeting := job.Args.FullName
	if greeting == "" {
		greeting = job.Args.Email
	}

	err := w.mailer.Send(ctx, mailer.Message{
		To:      job.Args.Email,
		Subject: "Welcome!",
		Body:    fmt.Sprintf("Hi %s,\n\nyour account has been created.\n", greeting),
	})
	if err != nil {
		// a rejected recipient address will never succeed on retry
		if errors.Is(err, serrors.ErrBadRequest) {
			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error sending welcome mail", zap.Error(err))

		return fmt.Errorf("could not send welcome mail: %w", err)
	}

	logger.Info(ctx, "welcome mail sent")

	return nil
}
