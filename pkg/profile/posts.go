package profile

import (
	"time"

	"igosint/pkg/instagram"
	"igosint/pkg/logger"
	"igosint/pkg/parser"
)

// postDateLayout renders post timestamps without a zone offset.
const postDateLayout = "2006-01-02T15:04:05"

// ExtractPosts converts up to limit timeline edges into Posts, preserving
// their order on the page. Private profiles expose no timeline, so the
// extraction is skipped with a warning. A non-positive limit takes every
// edge the page carries.
func ExtractPosts(raw *parser.RawPageData, limit int, log logger.Logger) []Post {
	user := raw.User
	if user.IsPrivate {
		log.WithField("username", user.Username).
			Warn("Profile is private, skipping post extraction")
		return nil
	}

	edges := user.TimelineMedia.Edges
	if limit > 0 && limit < len(edges) {
		edges = edges[:limit]
	}

	posts := make([]Post, 0, len(edges))
	for _, edge := range edges {
		node := edge.Node

		post := Post{
			ID:            node.ID,
			CommentsCount: node.EdgeMediaToComment.Count,
			LikesCount:    node.EdgeLikedBy.Count,
			Timestamp:     node.TakenAtTimestamp,
			Date:          time.Unix(node.TakenAtTimestamp, 0).Format(postDateLayout),
			DisplayURL:    node.DisplayURL,
			IsVideo:       node.IsVideo,
			Shortcode:     node.Shortcode,
			PostURL:       instagram.PostURL(node.Shortcode),
		}

		if captions := node.EdgeMediaToCaption.Edges; len(captions) > 0 {
			post.Caption = captions[0].Node.Text
		}

		// View counts only mean something for videos; photos carry the
		// field as junk data on some page variants. A video missing the
		// field still records zero views so the output always carries the
		// field for videos and never for photos.
		if node.IsVideo {
			post.VideoViews = node.VideoViewCount
			if post.VideoViews == nil {
				zero := 0
				post.VideoViews = &zero
			}
		}

		posts = append(posts, post)
	}

	log.WithFields(map[string]interface{}{
		"username": user.Username,
		"count":    len(posts),
	}).Debug("Extracted post metadata")

	return posts
}
