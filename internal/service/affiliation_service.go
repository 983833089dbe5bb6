package service

import (
	"context"
	"fmt"

	"github.com/vilaca/x-affiliates/internal/api"
	"github.com/vilaca/x-affiliates/internal/domain"
)

// AffiliationService resolves a user's organization and enumerates the
// organization's affiliated accounts. It holds no per-request state.
type AffiliationService struct {
	client   api.Client
	maxPages int // 0 means unbounded
}

// NewAffiliationService creates a new affiliation service. maxPages caps the
// affiliate pagination loop; 0 follows continuation tokens until exhausted.
func NewAffiliationService(client api.Client, maxPages int) *AffiliationService {
	return &AffiliationService{
		client:   client,
		maxPages: maxPages,
	}
}

// ResolveProfile fetches the token owner's profile and derives the
// organization ID from its affiliation. orgID is "" when the user is not
// affiliated.
func (s *AffiliationService) ResolveProfile(ctx context.Context, token string) (*domain.UserProfile, string, error) {
	user, err := s.client.GetMe(ctx, token)
	if err != nil {
		return nil, "", err
	}

	return user, user.OrganizationID(), nil
}

// ListAffiliates returns every user affiliated with orgID in upstream order.
// Pages are fetched sequentially; the first failure aborts enumeration and
// no partial result is returned.
func (s *AffiliationService) ListAffiliates(ctx context.Context, token, orgID string) ([]domain.UserProfile, error) {
	var affiliates []domain.UserProfile
	paginationToken := ""

	for pages := 0; ; pages++ {
		if s.maxPages > 0 && pages >= s.maxPages {
			return nil, fmt.Errorf("affiliates of %s: %w after %d pages", orgID, api.ErrPageLimitExceeded, pages)
		}

		page, err := s.client.GetAffiliatesPage(ctx, token, orgID, paginationToken)
		if err != nil {
			return nil, err
		}

		affiliates = append(affiliates, page.Users...)

		if page.NextToken == "" {
			break
		}
		paginationToken = page.NextToken
	}

	if affiliates == nil {
		affiliates = []domain.UserProfile{}
	}
	return affiliates, nil
}
