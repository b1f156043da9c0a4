// Package profile turns raw page data into the normalized records written to
// disk. Field precedence between the meta summary, the ld+json block, and the
// shared-data snapshot is fixed here and nowhere else.
package profile

// Record is the normalized profile written to profile_data.json. Field order
// matches the declaration order below.
type Record struct {
	Username           string `json:"username"`
	ProfileName        string `json:"profile_name"`
	URL                string `json:"url"`
	Followers          string `json:"followers"`
	Following          string `json:"following"`
	Posts              string `json:"posts"`
	Bio                string `json:"bio"`
	ProfilePicURL      string `json:"profile_pic_url"`
	IsBusinessAccount  bool   `json:"is_business_account"`
	ConnectedToFB      string `json:"connected_to_facebook"`
	ExternalURL        string `json:"external_url"`
	JoinedRecently     bool   `json:"joined_recently"`
	BusinessCategory   string `json:"business_category"`
	IsPrivate          bool   `json:"is_private"`
	IsVerified         bool   `json:"is_verified"`
	HasGuides          bool   `json:"has_guides"`
	HasClips           bool   `json:"has_clips"`
	HasAREffects       bool   `json:"has_ar_effects"`
	HasChannel         bool   `json:"has_channel"`
	HighlightReelCount int    `json:"highlight_reel_count"`
	ScrapedTimestamp   string `json:"scraped_timestamp"`
}

// Post is one timeline entry written to posts_metadata.json.
type Post struct {
	ID            string `json:"id"`
	Caption       string `json:"caption"`
	CommentsCount int    `json:"comments_count"`
	LikesCount    int    `json:"likes_count"`
	Timestamp     int64  `json:"timestamp"`
	Date          string `json:"date"`
	DisplayURL    string `json:"display_url"`
	IsVideo       bool   `json:"is_video"`
	VideoViews    *int   `json:"video_views,omitempty"`
	Shortcode     string `json:"shortcode"`
	PostURL       string `json:"post_url"`
}
