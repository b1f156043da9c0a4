package profile

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"igosint/pkg/instagram"
	"igosint/pkg/parser"
)

var scrapedAt = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func fullRaw() *parser.RawPageData {
	return &parser.RawPageData{
		MetaTokens: strings.Fields("1,234 Followers, 567 Following, 89 Posts - See Instagram photos"),
		LD: &instagram.ProfileLD{
			Name: "Jane Doe",
			MainEntityOfPage: instagram.MainEntityOfPage{
				ID: "https://www.instagram.com/janedoe/",
			},
		},
		User: &instagram.User{
			Username:           "janedoe",
			FullName:           "Jane D.",
			Biography:          "travel + food",
			ProfilePicURL:      "https://cdn/pic.jpg",
			ProfilePicURLHD:    "https://cdn/pic_hd.jpg",
			ExternalURL:        "https://janedoe.example",
			IsVerified:         true,
			HighlightReelCount: 4,
			EdgeFollowedBy:     instagram.EdgeCount{Count: 1200},
			EdgeFollow:         instagram.EdgeCount{Count: 560},
			TimelineMedia:      instagram.TimelineMedia{Count: 89},
		},
	}
}

func TestNormalizeSourcePrecedence(t *testing.T) {
	rec := Normalize(fullRaw(), "janedoe", scrapedAt)

	// Counts come from the summary tokens, not the snapshot edges.
	assert.Equal(t, "1,234", rec.Followers)
	assert.Equal(t, "567", rec.Following)
	assert.Equal(t, "89", rec.Posts)

	// Name and URL prefer the ld+json block.
	assert.Equal(t, "Jane Doe", rec.ProfileName)
	assert.Equal(t, "https://www.instagram.com/janedoe/", rec.URL)

	// HD picture wins over the standard one.
	assert.Equal(t, "https://cdn/pic_hd.jpg", rec.ProfilePicURL)

	assert.Equal(t, "janedoe", rec.Username)
	assert.Equal(t, "travel + food", rec.Bio)
	assert.Equal(t, "https://janedoe.example", rec.ExternalURL)
	assert.True(t, rec.IsVerified)
	assert.Equal(t, 4, rec.HighlightReelCount)
	assert.Equal(t, "2024-03-15T10:30:00Z", rec.ScrapedTimestamp)
}

func TestNormalizeWithoutLD(t *testing.T) {
	raw := fullRaw()
	raw.LD = nil

	rec := Normalize(raw, "janedoe", scrapedAt)

	assert.Equal(t, "Jane D.", rec.ProfileName)
	assert.Equal(t, "https://www.instagram.com/janedoe/", rec.URL)
}

func TestNormalizeEmptyLDFieldsFallThrough(t *testing.T) {
	raw := fullRaw()
	raw.LD = &instagram.ProfileLD{}

	rec := Normalize(raw, "janedoe", scrapedAt)

	assert.Equal(t, "Jane D.", rec.ProfileName)
	assert.Equal(t, "https://www.instagram.com/janedoe/", rec.URL)
}

func TestNormalizeShortSummaryFallsBackToSnapshot(t *testing.T) {
	raw := fullRaw()
	raw.MetaTokens = strings.Fields("1,234 Followers,")

	rec := Normalize(raw, "janedoe", scrapedAt)

	assert.Equal(t, "1,234", rec.Followers)
	assert.Equal(t, "560", rec.Following)
	assert.Equal(t, "89", rec.Posts)
}

func TestNormalizeNoHDPicture(t *testing.T) {
	raw := fullRaw()
	raw.User.ProfilePicURLHD = ""

	rec := Normalize(raw, "janedoe", scrapedAt)

	assert.Equal(t, "https://cdn/pic.jpg", rec.ProfilePicURL)
}

func TestNormalizeMissingSnapshotUsername(t *testing.T) {
	raw := fullRaw()
	raw.User.Username = ""

	rec := Normalize(raw, "janedoe", scrapedAt)

	assert.Equal(t, "janedoe", rec.Username)
}
