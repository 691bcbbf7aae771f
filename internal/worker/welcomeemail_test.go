package worker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"accounts/internal/account"
	"accounts/internal/worker"
	"accounts/pkg/logger"
	"accounts/pkg/mailer"
	mockmailer "accounts/pkg/mailer/mock"
	"accounts/pkg/serrors"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeJob(id int64, email, fullName string) *river.Job[account.WelcomeEmailJobArgs] {
	return &river.Job[account.WelcomeEmailJobArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   account.WelcomeEmailJobArgs{Email: email, FullName: fullName},
	}
}

func TestWelcomeEmailWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockmailer.NewMockMailer(ctrl)
	w := worker.NewWelcomeEmailWorker(mock)

	mock.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msg mailer.Message) error {
			require.Equal(t, "new@example.com", msg.To)
			require.Contains(t, msg.Body, "Jane Doe")

			return nil
		})

	require.NoError(t, w.Work(context.Background(), makeJob(1, "new@example.com", "Jane Doe")))
}

func TestWelcomeEmailWorker_Work_FallsBackToEmailGreeting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockmailer.NewMockMailer(ctrl)
	w := worker.NewWelcomeEmailWorker(mock)

	mock.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msg mailer.Message) error {
			require.Contains(t, msg.Body, "anon@example.com")

			return nil
		})

	require.NoError(t, w.Work(context.Background(), makeJob(2, "anon@example.com", "")))
}

func TestWelcomeEmailWorker_Work_TransientFailureRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockmailer.NewMockMailer(ctrl)
	w := worker.NewWelcomeEmailWorker(mock)

	mock.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	// a plain error lets River retry the job
	err := w.Work(context.Background(), makeJob(3, "down@example.com", "X"))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.False(t, errors.As(err, &cancelErr))
}

func TestWelcomeEmailWorker_Work_PermanentFailureCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockmailer.NewMockMailer(ctrl)
	w := worker.NewWelcomeEmailWorker(mock)

	mock.EXPECT().Send(gomock.Any(), gomock.Any()).
		Return(serrors.With(serrors.ErrBadRequest, "bad recipient"))

	err := w.Work(context.Background(), makeJob(4, "broken@", "X"))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}
