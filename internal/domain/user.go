package domain

import "strings"

// UserProfile represents an X account as returned by the users endpoints.
type UserProfile struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Username        string         `json:"username"`
	ProfileImageURL string         `json:"profile_image_url,omitempty"`
	Description     string         `json:"description,omitempty"`
	Affiliation     *Affiliation   `json:"affiliation,omitempty"`
	PublicMetrics   *PublicMetrics `json:"public_metrics,omitempty"`
}

// Affiliation is the organization badge attached to a profile.
type Affiliation struct {
	BadgeURL    string   `json:"badge_url,omitempty"`
	Description string   `json:"description,omitempty"`
	URL         string   `json:"url,omitempty"`
	UserIDs     []string `json:"user_id,omitempty"` // first entry is the organization account
}

// PublicMetrics holds the engagement counters of a profile.
type PublicMetrics struct {
	FollowersCount int64 `json:"followers_count"`
	FollowingCount int64 `json:"following_count"`
	TweetCount     int64 `json:"tweet_count"`
}

// AffiliatePage is one page of the affiliates listing.
type AffiliatePage struct {
	Users     []UserProfile
	NextToken string // empty on the last page
}

// OrganizationID returns the account ID of the organization the user is
// affiliated with, or "" when there is none.
func (u UserProfile) OrganizationID() string {
	if u.Affiliation == nil || len(u.Affiliation.UserIDs) == 0 {
		return ""
	}
	return u.Affiliation.UserIDs[0]
}

// AvatarURL returns the profile image in the requested size variant.
// X serves "_normal" thumbnails by default; size is e.g. AvatarLarge.
func (u UserProfile) AvatarURL(size string) string {
	if u.ProfileImageURL == "" {
		return ""
	}
	return strings.Replace(u.ProfileImageURL, "_normal", size, 1)
}

// ProfileURL returns the public x.com page of the user.
func (u UserProfile) ProfileURL() string {
	return "https://x.com/" + u.Username
}
