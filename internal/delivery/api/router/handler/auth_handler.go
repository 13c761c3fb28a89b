// Package handler contains the HTTP handlers of the local API.
package handler

import (
	"log/slog"
	"net/http"

	"todo/internal/delivery/api/response"
	"todo/internal/domain/entity"
	"todo/internal/errors"
	"todo/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// AuthHandler exposes the session store.
type AuthHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// SessionResponse is the current session snapshot. Tokens are never exposed.
type SessionResponse struct {
	Status   usecase.SessionStatus `json:"status"`
	Identity *entity.Identity      `json:"identity"`
}

// SignIn handles a password sign-in
func (h *AuthHandler) SignIn(c echo.Context) error {
	var input usecase.SignInInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-in input")
	}

	identity, err := h.sessionUC.SignIn(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, identity)
}

// SignUp handles account creation
func (h *AuthHandler) SignUp(c echo.Context) error {
	var input usecase.SignUpInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-up input")
	}

	output, err := h.sessionUC.SignUp(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output)
}

// SignOut ends the current session
func (h *AuthHandler) SignOut(c echo.Context) error {
	if err := h.sessionUC.SignOut(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c, "Signed out")
}

// ResetPassword sends the recovery email
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var input usecase.ResetPasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset input")
	}

	output, err := h.sessionUC.ResetPassword(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

// SubmitForm handles one submission of the combined auth form
func (h *AuthHandler) SubmitForm(c echo.Context) error {
	var input usecase.AuthFormInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid form input")
	}

	result, err := h.sessionUC.SubmitAuthForm(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result)
}

// GetSession returns the session snapshot without waiting for it to load.
func (h *AuthHandler) GetSession(c echo.Context) error {
	state := h.sessionUC.State()

	return response.Success(c, http.StatusOK, SessionResponse{
		Status:   state.Status,
		Identity: state.Identity,
	})
}
