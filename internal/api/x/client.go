package x

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/vilaca/x-affiliates/internal/api"
	"github.com/vilaca/x-affiliates/internal/domain"
)

// DefaultBaseURL is the public X API host.
const DefaultBaseURL = "https://api.x.com"

// Client implements api.Client for the X API v2.
type Client struct {
	base *api.BaseClient
}

// NewClient creates a new X API client.
func NewClient(config api.ClientConfig, httpClient api.HTTPClient) *Client {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		base: api.NewBaseClient(baseURL, httpClient),
	}
}

// GetMe retrieves the authenticated user with affiliation details expanded.
func (c *Client) GetMe(ctx context.Context, token string) (*domain.UserProfile, error) {
	query := url.Values{}
	query.Set("user.fields", domain.UserFields)
	query.Set("expansions", domain.AffiliationExpansion)

	var response userResponse
	if err := c.base.GetJSON(ctx, "get user", token, "/2/users/me", query, &response); err != nil {
		return nil, err
	}

	// X reports some failures as a 2xx body carrying only "errors".
	if response.Data.ID == "" {
		if len(response.Errors) > 0 {
			return nil, fmt.Errorf("get user: %s", response.Errors[0])
		}
		return nil, fmt.Errorf("get user: response contains no user")
	}

	return &response.Data, nil
}

// GetAffiliatesPage retrieves one page of users affiliated with orgID.
func (c *Client) GetAffiliatesPage(ctx context.Context, token, orgID, paginationToken string) (*domain.AffiliatePage, error) {
	query := url.Values{}
	query.Set("user.fields", domain.UserFields)
	query.Set("max_results", strconv.Itoa(domain.MaxAffiliatesPageSize))
	if paginationToken != "" {
		query.Set("pagination_token", paginationToken)
	}

	path := "/2/users/" + url.PathEscape(orgID) + "/affiliates"

	var response affiliatesResponse
	if err := c.base.GetJSON(ctx, "get affiliates", token, path, query, &response); err != nil {
		return nil, err
	}

	return &domain.AffiliatePage{
		Users:     response.Data,
		NextToken: response.Meta.NextToken,
	}, nil
}

// X API response types
type userResponse struct {
	Data   domain.UserProfile `json:"data"`
	Errors []apiError         `json:"errors"`
}

type apiError struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

func (e apiError) String() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Title
}

type affiliatesResponse struct {
	Data []domain.UserProfile `json:"data"`
	Meta struct {
		ResultCount int    `json:"result_count"`
		NextToken   string `json:"next_token"`
	} `json:"meta"`
}
