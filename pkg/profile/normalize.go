package profile

import (
	"strconv"
	"time"

	"igosint/pkg/instagram"
	"igosint/pkg/parser"
)

// Normalize merges the page's data sources into a Record. Counts prefer the
// og:description summary tokens because the snapshot rounds large numbers;
// the display name and canonical URL prefer the ld+json block when present.
func Normalize(raw *parser.RawPageData, username string, now time.Time) *Record {
	user := raw.User

	rec := &Record{
		Username:           user.Username,
		ProfileName:        user.FullName,
		URL:                instagram.ProfileURL(username),
		Followers:          tokenOr(raw.MetaTokens, 0, user.EdgeFollowedBy.Count),
		Following:          tokenOr(raw.MetaTokens, 2, user.EdgeFollow.Count),
		Posts:              tokenOr(raw.MetaTokens, 4, user.TimelineMedia.Count),
		Bio:                user.Biography,
		ProfilePicURL:      user.ProfilePicURL,
		IsBusinessAccount:  user.IsBusinessAccount,
		ConnectedToFB:      user.ConnectedFBPage,
		ExternalURL:        user.ExternalURL,
		JoinedRecently:     user.IsJoinedRecently,
		BusinessCategory:   user.BusinessCategoryName,
		IsPrivate:          user.IsPrivate,
		IsVerified:         user.IsVerified,
		HasGuides:          user.HasGuides,
		HasClips:           user.HasClips,
		HasAREffects:       user.HasAREffects,
		HasChannel:         user.HasChannel,
		HighlightReelCount: user.HighlightReelCount,
		ScrapedTimestamp:   now.Format(time.RFC3339),
	}

	if rec.Username == "" {
		rec.Username = username
	}
	if user.ProfilePicURLHD != "" {
		rec.ProfilePicURL = user.ProfilePicURLHD
	}

	if raw.LD != nil {
		if raw.LD.Name != "" {
			rec.ProfileName = raw.LD.Name
		}
		if raw.LD.MainEntityOfPage.ID != "" {
			rec.URL = raw.LD.MainEntityOfPage.ID
		}
	}

	return rec
}

// tokenOr picks the summary token at i, falling back to the snapshot count
// when the summary is shorter than expected.
func tokenOr(tokens []string, i, count int) string {
	if i < len(tokens) {
		return tokens[i]
	}
	return strconv.Itoa(count)
}
