package parser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"igosint/pkg/errors"
)

const summaryContent = "1,234 Followers, 567 Following, 89 Posts - See Instagram photos and videos from Jane Doe (@janedoe)"

const ldBlock = `{"@context":"http://schema.org","@type":"Person","name":"Jane Doe","mainEntityofPage":{"@type":"ProfilePage","@id":"https://www.instagram.com/janedoe/"}}`

const snapshotJSON = `{"entry_data":{"ProfilePage":[{"graphql":{"user":{
	"username":"janedoe","full_name":"Jane D.","biography":"hello",
	"is_private":false,
	"edge_followed_by":{"count":1234},"edge_follow":{"count":567},
	"edge_owner_to_timeline_media":{"count":89,"edges":[
		{"node":{"id":"p1","shortcode":"AAA","display_url":"https://cdn/p1.jpg","is_video":false,
			"taken_at_timestamp":1600000000,
			"edge_media_to_caption":{"edges":[{"node":{"text":"first"}}]},
			"edge_media_to_comment":{"count":3},"edge_liked_by":{"count":10}}}
	]}}}}]}}`

// buildPage assembles a minimal profile page from the given parts. Empty
// strings omit the corresponding element.
func buildPage(meta, ld, script string) []byte {
	page := "<html><head>"
	if meta != "" {
		page += fmt.Sprintf(`<meta property="og:description" content=%q/>`, meta)
	}
	if ld != "" {
		page += `<script type="application/ld+json">` + ld + `</script>`
	}
	page += `<script type="text/javascript">var other = 1;</script>`
	if script != "" {
		page += `<script type="text/javascript">` + script + `</script>`
	}
	page += "</head><body></body></html>"
	return []byte(page)
}

func snapshotScript(literal string) string {
	return "window._sharedData = " + literal + ";"
}

func TestParseFullPage(t *testing.T) {
	raw, err := Parse(buildPage(summaryContent, ldBlock, snapshotScript(snapshotJSON)))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"1,234", "Followers,", "567", "Following,", "89", "Posts",
		"-", "See", "Instagram", "photos", "and", "videos", "from",
		"Jane", "Doe", "(@janedoe)",
	}, raw.MetaTokens)

	require.NotNil(t, raw.LD)
	assert.Equal(t, "Jane Doe", raw.LD.Name)
	assert.Equal(t, "https://www.instagram.com/janedoe/", raw.LD.MainEntityOfPage.ID)

	require.NotNil(t, raw.User)
	assert.Equal(t, "janedoe", raw.User.Username)
	assert.Equal(t, 1234, raw.User.EdgeFollowedBy.Count)
	require.Len(t, raw.User.TimelineMedia.Edges, 1)
	assert.Equal(t, "p1", raw.User.TimelineMedia.Edges[0].Node.ID)
}

func TestParseMissingSummary(t *testing.T) {
	_, err := Parse(buildPage("", ldBlock, snapshotScript(snapshotJSON)))
	require.Error(t, err)
	assert.Equal(t, errors.ParseMissingSummary, errors.ParseKindOf(err))
}

func TestParseMissingSnapshot(t *testing.T) {
	// Summary present, no _sharedData assignment anywhere.
	_, err := Parse(buildPage(summaryContent, ldBlock, ""))
	require.Error(t, err)
	assert.Equal(t, errors.ParseMissingSnapshot, errors.ParseKindOf(err))
}

func TestParseInvalidSnapshotJSON(t *testing.T) {
	_, err := Parse(buildPage(summaryContent, ldBlock, snapshotScript(`{"entry_data": not json`)))
	require.Error(t, err)
	assert.Equal(t, errors.ParseInvalidSnapshot, errors.ParseKindOf(err))
}

func TestParseSnapshotWithoutAssignment(t *testing.T) {
	_, err := Parse(buildPage(summaryContent, "", `<!-- window._sharedData -->`))
	require.Error(t, err)
	assert.Equal(t, errors.ParseInvalidSnapshot, errors.ParseKindOf(err))
}

func TestParseMissingUserNode(t *testing.T) {
	cases := []string{
		`{}`,
		`{"entry_data":{}}`,
		`{"entry_data":{"ProfilePage":[]}}`,
		`{"entry_data":{"ProfilePage":[{}]}}`,
		`{"entry_data":{"ProfilePage":[{"graphql":{}}]}}`,
	}

	for _, literal := range cases {
		_, err := Parse(buildPage(summaryContent, "", snapshotScript(literal)))
		require.Error(t, err, "literal %s", literal)
		assert.Equal(t, errors.ParseMissingUserNode, errors.ParseKindOf(err), "literal %s", literal)
	}
}

func TestParseMalformedLDIsNonFatal(t *testing.T) {
	raw, err := Parse(buildPage(summaryContent, `{"name": broken`, snapshotScript(snapshotJSON)))
	require.NoError(t, err)
	assert.Nil(t, raw.LD)
}

func TestParseAbsentLDIsNonFatal(t *testing.T) {
	raw, err := Parse(buildPage(summaryContent, "", snapshotScript(snapshotJSON)))
	require.NoError(t, err)
	assert.Nil(t, raw.LD)
}
