// Package google verifies Google-issued tokens and resolves the profile
// behind them.
package google

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"

	"confusion/config"
	"confusion/internal/domain/entity"
	"confusion/internal/domain/service"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// ProfileService resolves a Google token to the external profile it belongs
// to. Two token shapes are accepted: an OAuth access token, resolved through
// the userinfo endpoint, and an ID token, verified locally against Google's
// published keys.
type ProfileService struct {
	clientID string
	client   *http.Client
	logger   *slog.Logger
}

// NewProfileService creates a new Google ProfileService.
func NewProfileService(cfg *config.Config, logger *slog.Logger) service.OAuthAuthService {
	clientID := ""
	if cfg.GoogleOAuth != nil {
		clientID = cfg.GoogleOAuth.ClientID
	}

	return &ProfileService{
		clientID: clientID,
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   logger,
	}
}

// Provider returns the provider type this service verifies against.
func (s *ProfileService) Provider() entity.ProviderType {
	return entity.ProviderTypeGoogle
}

// Exchange verifies the supplied token and returns the profile it belongs to.
// ID tokens are recognised by their three-segment JWT shape and verified
// offline; anything else is treated as an access token and resolved through
// the userinfo endpoint.
func (s *ProfileService) Exchange(ctx context.Context, accessToken string) (*service.OAuthProfile, error) {
	if accessToken == "" {
		return nil, errors.New("access token must be provided")
	}

	if strings.Count(accessToken, ".") == 2 {
		return s.verifyIDToken(ctx, accessToken)
	}

	return s.fetchUserInfo(ctx, accessToken)
}

// verifyIDToken validates an ID token's signature, expiry and audience and
// builds the profile from its claims.
func (s *ProfileService) verifyIDToken(ctx context.Context, rawToken string) (*service.OAuthProfile, error) {
	payload, err := idtoken.Validate(ctx, rawToken, s.clientID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to validate google id token")
	}

	profile := &service.OAuthProfile{
		ID:       payload.Subject,
		Provider: entity.ProviderTypeGoogle,
	}
	profile.DisplayName, _ = payload.Claims["name"].(string)
	profile.GivenName, _ = payload.Claims["given_name"].(string)
	profile.FamilyName, _ = payload.Claims["family_name"].(string)
	profile.Email, _ = payload.Claims["email"].(string)

	s.logger.Debug("verified google id token", slog.String("subject", payload.Subject))

	return profile, nil
}

// fetchUserInfo resolves an access token through Google's userinfo endpoint.
func (s *ProfileService) fetchUserInfo(ctx context.Context, accessToken string) (*service.OAuthProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, googleUserInfoURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user info request")
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user info")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return nil, errors.Errorf("user info request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var googleUser struct {
		ID         string `json:"id"`
		Email      string `json:"email"`
		Name       string `json:"name"`
		GivenName  string `json:"given_name"`
		FamilyName string `json:"family_name"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&googleUser); err != nil {
		return nil, errors.Wrap(err, "failed to decode user info response")
	}

	if googleUser.ID == "" {
		return nil, errors.New("user info response missing subject id")
	}

	return &service.OAuthProfile{
		ID:          googleUser.ID,
		DisplayName: googleUser.Name,
		GivenName:   googleUser.GivenName,
		FamilyName:  googleUser.FamilyName,
		Email:       googleUser.Email,
		Provider:    entity.ProviderTypeGoogle,
	}, nil
}
