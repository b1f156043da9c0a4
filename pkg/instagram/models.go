package instagram

// SharedData is the window._sharedData snapshot embedded in a profile page.
// The navigation path to the user node is entry_data -> ProfilePage[0] ->
// graphql -> user; pointers distinguish absent levels from empty ones.
type SharedData struct {
	EntryData *EntryData `json:"entry_data"`
}

// EntryData wraps the per-page payloads of the snapshot.
type EntryData struct {
	ProfilePage []ProfilePage `json:"ProfilePage"`
}

// ProfilePage is one profile payload inside the snapshot.
type ProfilePage struct {
	GraphQL *GraphQL `json:"graphql"`
}

// GraphQL wraps the user node.
type GraphQL struct {
	User *User `json:"user"`
}

// User is the profile node of the snapshot graph. Fields absent from the
// payload decode to their zero values.
type User struct {
	Username             string        `json:"username"`
	FullName             string        `json:"full_name"`
	Biography            string        `json:"biography"`
	ProfilePicURL        string        `json:"profile_pic_url"`
	ProfilePicURLHD      string        `json:"profile_pic_url_hd"`
	ExternalURL          string        `json:"external_url"`
	IsBusinessAccount    bool          `json:"is_business_account"`
	BusinessCategoryName string        `json:"business_category_name"`
	ConnectedFBPage      string        `json:"connected_fb_page"`
	IsPrivate            bool          `json:"is_private"`
	IsVerified           bool          `json:"is_verified"`
	IsJoinedRecently     bool          `json:"is_joined_recently"`
	HasGuides            bool          `json:"has_guides"`
	HasClips             bool          `json:"has_clips"`
	HasAREffects         bool          `json:"has_ar_effects"`
	HasChannel           bool          `json:"has_channel"`
	HighlightReelCount   int           `json:"highlight_reel_count"`
	EdgeFollowedBy       EdgeCount     `json:"edge_followed_by"`
	EdgeFollow           EdgeCount     `json:"edge_follow"`
	TimelineMedia        TimelineMedia `json:"edge_owner_to_timeline_media"`
}

// EdgeCount is a counted edge collection with the entries elided.
type EdgeCount struct {
	Count int `json:"count"`
}

// TimelineMedia contains the user's post edges.
type TimelineMedia struct {
	Count    int      `json:"count"`
	PageInfo PageInfo `json:"page_info"`
	Edges    []Edge   `json:"edges"`
}

// PageInfo contains cursor pagination information.
type PageInfo struct {
	HasNextPage bool   `json:"has_next_page"`
	EndCursor   string `json:"end_cursor"`
}

// Edge wraps a single media node.
type Edge struct {
	Node Node `json:"node"`
}

// Node represents a single media item (photo or video).
type Node struct {
	ID                   string       `json:"id"`
	Shortcode            string       `json:"shortcode"`
	DisplayURL           string       `json:"display_url"`
	IsVideo              bool         `json:"is_video"`
	TakenAtTimestamp     int64        `json:"taken_at_timestamp"`
	CommentsDisabled     bool         `json:"comments_disabled"`
	AccessibilityCaption string       `json:"accessibility_caption"`
	VideoViewCount       *int         `json:"video_view_count"`
	Dimensions           Dimensions   `json:"dimensions"`
	EdgeMediaToCaption   CaptionEdges `json:"edge_media_to_caption"`
	EdgeMediaToComment   EdgeCount    `json:"edge_media_to_comment"`
	EdgeLikedBy          EdgeCount    `json:"edge_liked_by"`
}

// Dimensions holds media pixel dimensions.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// CaptionEdges holds the caption edge list of a media node.
type CaptionEdges struct {
	Edges []CaptionEdge `json:"edges"`
}

// CaptionEdge wraps a single caption node.
type CaptionEdge struct {
	Node CaptionNode `json:"node"`
}

// CaptionNode holds one caption text.
type CaptionNode struct {
	Text string `json:"text"`
}

// ProfileLD is the ld+json structured metadata block. It only supplies
// override values, so a missing or malformed block is never an error.
// The markup spells mainEntityofPage with a lowercase "of".
type ProfileLD struct {
	Name             string           `json:"name"`
	MainEntityOfPage MainEntityOfPage `json:"mainEntityofPage"`
}

// MainEntityOfPage carries the canonical profile URL.
type MainEntityOfPage struct {
	ID string `json:"@id"`
}
