package auth

import (
	"context"

	"github.com/rs/zerolog/log"

	"mutqin-client/internal/platform/httpapi"
	"mutqin-client/internal/session"
	"mutqin-client/internal/validate"
)

// Service orchestrates login, signup and the OAuth callback variants.
// The session store is injected explicitly; there is no hidden global
// auth state.
type Service struct {
	api   *httpapi.Client
	store session.Store
}

func NewService(api *httpapi.Client, store session.Store) *Service {
	return &Service{
		api:   api,
		store: store,
	}
}

// StatusOverrides is the auth resource's mapping table, wired into the
// auth HTTP client at construction.
func StatusOverrides() httpapi.Overrides {
	return statusOverrides
}

// Login validates locally first - an invalid form never produces a
// network request - then exchanges credentials for a bearer token and
// persists it scheme-prefixed.
func (s *Service) Login(ctx context.Context, sid string, req LoginRequest) (*LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, httpapi.ValidationError(validate.FirstMessage(err))
	}

	var resp LoginResponse
	payload := loginPayload{Email: req.Email, Password: req.Password}
	if err := s.api.Post(ctx, "/api/auth/login", nil, payload, &resp); err != nil {
		return nil, err
	}

	if resp.Token != "" {
		if err := s.store.SetToken(ctx, sid, session.EnsureScheme(resp.Token)); err != nil {
			return nil, err
		}
	}

	log.Info().Str("username", resp.User.Username).Msg("User logged in")
	return &resp, nil
}

// Signup registers a new account. Students must pick a memorization
// level; other roles must not send one. A token returned by the backend
// logs the new user straight in.
func (s *Service) Signup(ctx context.Context, sid string, req SignupRequest) (*LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, httpapi.ValidationError(validate.FirstMessage(err))
	}

	payload, err := req.payload()
	if err != nil {
		return nil, httpapi.ValidationError(err.Error())
	}

	var resp LoginResponse
	if err := s.api.Post(ctx, "/api/auth/signup", nil, payload, &resp); err != nil {
		return nil, translateServerMessage(err)
	}

	if resp.Token != "" {
		if err := s.store.SetToken(ctx, sid, session.EnsureScheme(resp.Token)); err != nil {
			return nil, err
		}
	}

	log.Info().Str("username", req.Username).Str("role", payload.Role).Msg("User signed up")
	return &resp, nil
}

// Logout clears the session slot. Purely local: the backend keeps no
// session state worth revoking.
func (s *Service) Logout(ctx context.Context, sid string) error {
	return s.store.Clear(ctx, sid)
}

// HandleOAuthCode completes the authorization-code callback variant by
// exchanging the code through the backend.
func (s *Service) HandleOAuthCode(ctx context.Context, sid, code, state string) (*LoginResponse, error) {
	if code == "" {
		return nil, &httpapi.Error{
			Code:    CodeOAuthMissingParams,
			Message: "معاملات OAuth مفقودة",
		}
	}

	var resp LoginResponse
	payload := map[string]string{"code": code, "state": state}
	if err := s.api.Post(ctx, "/api/auth/google/callback", nil, payload, &resp); err != nil {
		return nil, err
	}

	if resp.Token == "" {
		return nil, &httpapi.Error{
			Code:    httpapi.CodeUnknown,
			Message: "فشل في تسجيل الدخول بواسطة Google",
		}
	}
	if err := s.store.SetToken(ctx, sid, session.EnsureScheme(resp.Token)); err != nil {
		return nil, err
	}

	log.Info().Str("username", resp.User.Username).Msg("User logged in via Google (code flow)")
	return &resp, nil
}

// HandleOAuthToken completes the direct-payload callback variant, where
// the provider flow already produced a token.
func (s *Service) HandleOAuthToken(ctx context.Context, sid, token, name, email, googleID string) error {
	if token == "" || name == "" || email == "" || googleID == "" {
		return &httpapi.Error{
			Code:    CodeOAuthMissingParams,
			Message: "معاملات تسجيل الدخول مفقودة أو غير مكتملة",
		}
	}

	if err := s.store.SetToken(ctx, sid, session.EnsureScheme(token)); err != nil {
		return err
	}

	log.Info().Str("email", email).Msg("User logged in via Google (token flow)")
	return nil
}
