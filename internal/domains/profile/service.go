package profile

import (
	"context"
	"net/url"

	"github.com/rs/zerolog/log"

	"mutqin-client/internal/platform/httpapi"
	"mutqin-client/internal/session"
	"mutqin-client/internal/validate"
)

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

func StatusOverrides() httpapi.Overrides {
	return statusOverrides
}

// Get fetches the current user's profile. Always a fresh fetch; the
// backend is the single source of truth.
func (s *Service) Get(ctx context.Context) (*Profile, error) {
	var p Profile
	if err := s.api.Get(ctx, "/api/profile/user", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Update PUTs the changed fields after local format checks.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*Profile, error) {
	if err := req.Validate(); err != nil {
		return nil, httpapi.ValidationError(validate.FirstMessage(err))
	}

	var p Profile
	if err := s.api.Put(ctx, "/api/profile", nil, req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Search finds a user by email or username.
func (s *Service) Search(ctx context.Context, emailOrUsername string) (*Profile, error) {
	query := url.Values{"emailOrUsername": {emailOrUsername}}
	var p Profile
	if err := s.api.Get(ctx, "/api/profile/search", query, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CurrentUserID resolves the logged-in user's numeric id indirectly: the
// profile endpoint yields the email, the search endpoint yields the id.
func (s *Service) CurrentUserID(ctx context.Context) (int64, error) {
	p, err := s.Get(ctx)
	if err != nil {
		return 0, err
	}

	found, err := s.Search(ctx, p.Email)
	if err != nil {
		return 0, err
	}
	if found.ID == 0 {
		return 0, &httpapi.Error{
			Code:    CodeUserIDNotFound,
			Message: "لم يتم العثور على معرف المستخدم",
		}
	}
	return found.ID, nil
}

// Delete removes the account after an explicit textual confirmation. On
// success the session is cleared; the user is logged out for good.
func (s *Service) Delete(ctx context.Context, sid, confirmation string) error {
	if confirmation != DeleteConfirmationWord {
		return httpapi.ValidationError("يرجى كتابة كلمة \"" + DeleteConfirmationWord + "\" للتأكيد")
	}

	if err := s.api.Delete(ctx, "/api/profile", nil, nil); err != nil {
		return err
	}

	if err := s.store.Clear(ctx, sid); err != nil {
		log.Error().Err(err).Msg("Failed to clear session after account delete")
	}
	log.Info().Msg("Account deleted")
	return nil
}

// Role resolves the current role for the navigation guard: token claims
// first, profile fetch only for opaque tokens.
func (s *Service) Role(ctx context.Context, sid string) (string, error) {
	token, err := s.store.Token(ctx, sid)
	if err != nil {
		return "", err
	}
	if claims, ok := session.ParseClaims(token); ok && claims.Role != "" {
		return claims.Role, nil
	}

	p, err := s.Get(ctx)
	if err != nil {
		return "", err
	}
	return p.Role, nil
}
