package account

import "github.com/riverqueue/river"

// WelcomeEmailJobArgs contains the arguments for the welcome mail job enqueued
// when a new account is registered.
type WelcomeEmailJobArgs struct {
	// Email is the recipient address of the new account.
	Email string `json:"email"`
	// FullName is used in the mail greeting.
	FullName string `json:"fullName"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the welcome
// mail worker.
func (args WelcomeEmailJobArgs) Kind() string { return "WelcomeEmailJob" }

// InsertOpts returns the River options that control how the job is enqueued.
func (args WelcomeEmailJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
	}
}
