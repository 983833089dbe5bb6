package domain

// Avatar size suffixes understood by the X image CDN.
const (
	AvatarLarge  = "_400x400"
	AvatarBigger = "_bigger"
)

// UserFields is the user.fields selection requested for every profile.
const UserFields = "affiliation,profile_image_url,description,public_metrics"

// AffiliationExpansion materializes the organization account IDs on the
// affiliation record.
const AffiliationExpansion = "affiliation.user_id"

// MaxAffiliatesPageSize is the largest page the affiliates endpoint accepts.
const MaxAffiliatesPageSize = 1000
