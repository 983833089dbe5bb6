package api

import (
	"context"

	"github.com/vilaca/x-affiliates/internal/domain"
)

// Client defines the X API operations the application depends on.
// Every call is authenticated with the caller's bearer token.
type Client interface {
	// GetMe returns the profile of the token owner, including the affiliation.
	GetMe(ctx context.Context, token string) (*domain.UserProfile, error)

	// GetAffiliatesPage returns one page of users affiliated with orgID.
	// An empty paginationToken requests the first page.
	GetAffiliatesPage(ctx context.Context, token, orgID, paginationToken string) (*domain.AffiliatePage, error)
}

// ClientConfig holds common configuration for API clients.
type ClientConfig struct {
	BaseURL string
}
