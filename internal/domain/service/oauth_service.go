package service

import (
	"context"

	"confusion/internal/domain/entity"
)

// OAuthProfile is the verified external profile obtained from an identity provider.
type OAuthProfile struct {
	ID          string              // Provider-specific subject id (e.g. Google's 'sub' claim).
	DisplayName string              // The profile's display name.
	GivenName   string              // First name, when the provider supplies it.
	FamilyName  string              // Last name, when the provider supplies it.
	Email       string              // Email address, informational only.
	Provider    entity.ProviderType // Which provider verified the profile.
}

// OAuthAuthService defines the exchange of a provider-issued token for a
// verified external profile. Implementations talk to the provider; failures
// to do so are reported as-is and translated by the caller.
type OAuthAuthService interface {
	// Exchange verifies the provider access token and returns the profile it
	// belongs to.
	Exchange(ctx context.Context, accessToken string) (*OAuthProfile, error)

	// Provider returns the provider type this service verifies against.
	Provider() entity.ProviderType
}
