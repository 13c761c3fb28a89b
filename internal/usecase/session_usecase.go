// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"todo/internal/domain/entity"
)

// SessionStatus is the lifecycle state of the session cell.
type SessionStatus string

const (
	SessionUninitialized SessionStatus = "uninitialized"
	SessionLoading       SessionStatus = "loading"
	SessionReady         SessionStatus = "ready"
)

// SessionState is an immutable snapshot of the session cell.
type SessionState struct {
	Status   SessionStatus    `json:"status"`
	Identity *entity.Identity `json:"identity"`
	Session  *entity.Session  `json:"-"`
}

// SignedIn reports whether the snapshot holds an identity.
func (s SessionState) SignedIn() bool {
	return s.Status == SessionReady && s.Identity != nil
}

// AuthMode selects what the auth form does.
type AuthMode string

const (
	AuthModeSignIn AuthMode = "signin"
	AuthModeSignUp AuthMode = "signup"
	AuthModeReset  AuthMode = "reset"
)

// --- Input DTOs ---

// SignInInput defines the credentials of a sign-in.
type SignInInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"notblank,min=6"`
}

// SignUpInput defines the data required to create an account.
type SignUpInput struct {
	Email           string `json:"email" validate:"required"`
	Password        string `json:"password" validate:"notblank,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"eqfield=Password"`
}

// ResetPasswordInput names the account to recover.
type ResetPasswordInput struct {
	Email string `json:"email" validate:"required"`
}

// AuthFormInput is one submission of the combined auth form.
type AuthFormInput struct {
	Mode            AuthMode `json:"mode"`
	Email           string   `json:"email"`
	Password        string   `json:"password"`
	ConfirmPassword string   `json:"confirmPassword"`
}

// --- Output DTOs ---

// SignUpOutput tells the caller what to show and which form mode comes next.
type SignUpOutput struct {
	Message string   `json:"message"`
	Mode    AuthMode `json:"mode"`
}

// ResetPasswordOutput carries the confirmation message.
type ResetPasswordOutput struct {
	Message string `json:"message"`
}

// AuthFormResult is the outcome of a successful form submission.
type AuthFormResult struct {
	Message  string           `json:"message,omitempty"`
	Mode     AuthMode         `json:"mode"`
	Identity *entity.Identity `json:"identity,omitempty"`
}

// SessionUsecase owns the current identity. It is the only writer of the
// session cell; everything else reads snapshots or subscribes.
type SessionUsecase interface {
	// Start loads the persisted session in the background and registers the
	// standing auth-change subscription. Stop releases it.
	Start(ctx context.Context) error
	Stop(ctx context.Context) error

	State() SessionState
	Subscribe(listener func(SessionState)) (unsubscribe func())
	WaitReady(ctx context.Context) error

	// RequireIdentity returns the held identity, ErrSessionLoading while the
	// persisted session is still being read, or ErrNotAuthenticated.
	RequireIdentity() (*entity.Identity, error)

	SignIn(ctx context.Context, input SignInInput) (*entity.Identity, error)
	SignUp(ctx context.Context, input SignUpInput) (*SignUpOutput, error)
	SignOut(ctx context.Context) error
	ResetPassword(ctx context.Context, input ResetPasswordInput) (*ResetPasswordOutput, error)
	SubmitAuthForm(ctx context.Context, input AuthFormInput) (*AuthFormResult, error)
}
