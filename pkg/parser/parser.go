package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"igosint/pkg/errors"
	"igosint/pkg/instagram"
)

// snapshotMarker identifies the inline script carrying the profile graph.
const snapshotMarker = "window._sharedData"

// RawPageData holds the data sources extracted from one profile page.
type RawPageData struct {
	// MetaTokens is the whitespace-split content of the og:description
	// summary tag ("N Followers, N Following, N Posts - ...").
	MetaTokens []string
	// LD is the ld+json block; nil when absent or malformed.
	LD *instagram.ProfileLD
	// Shared is the decoded window._sharedData snapshot.
	Shared *instagram.SharedData
	// User is the profile node resolved from the snapshot. Never nil on a
	// successful parse.
	User *instagram.User
}

// Parse extracts the embedded data sources from raw profile page markup.
// Each required source has its own typed failure; the ld+json block is
// optional and a malformed one is silently dropped.
func Parse(page []byte) (*RawPageData, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		// html.Parse is error tolerant; a failure means nothing can be
		// located in this payload at all.
		return nil, &errors.ParseError{
			Kind:    errors.ParseMissingSummary,
			Message: fmt.Sprintf("unreadable markup: %v", err),
		}
	}

	content, ok := doc.Find(`meta[property="og:description"]`).First().Attr("content")
	if !ok {
		return nil, &errors.ParseError{
			Kind:    errors.ParseMissingSummary,
			Message: "og:description meta tag not found",
		}
	}

	raw := &RawPageData{MetaTokens: strings.Fields(content)}

	if ldText := strings.TrimSpace(doc.Find(`script[type="application/ld+json"]`).First().Text()); ldText != "" {
		var ld instagram.ProfileLD
		if err := json.Unmarshal([]byte(ldText), &ld); err == nil {
			raw.LD = &ld
		}
	}

	var script string
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if text := s.Text(); strings.Contains(text, snapshotMarker) {
			script = text
			return false
		}
		return true
	})
	if script == "" {
		return nil, &errors.ParseError{
			Kind:    errors.ParseMissingSnapshot,
			Message: snapshotMarker + " script not found",
		}
	}

	literal, err := isolateAssignment(script)
	if err != nil {
		return nil, &errors.ParseError{
			Kind:    errors.ParseInvalidSnapshot,
			Message: err.Error(),
		}
	}

	var shared instagram.SharedData
	if err := json.Unmarshal([]byte(literal), &shared); err != nil {
		return nil, &errors.ParseError{
			Kind:    errors.ParseInvalidSnapshot,
			Message: fmt.Sprintf("malformed snapshot JSON: %v", err),
		}
	}

	user, err := resolveUser(&shared)
	if err != nil {
		return nil, &errors.ParseError{
			Kind:    errors.ParseMissingUserNode,
			Message: err.Error(),
		}
	}

	raw.Shared = &shared
	raw.User = user
	return raw, nil
}

// isolateAssignment strips the JSON literal out of the snapshot assignment
// statement ("window._sharedData = {...};").
func isolateAssignment(script string) (string, error) {
	_, literal, found := strings.Cut(strings.TrimSpace(script), " = ")
	if !found {
		return "", fmt.Errorf("no assignment in %s script", snapshotMarker)
	}
	return strings.TrimSuffix(strings.TrimSpace(literal), ";"), nil
}

// resolveUser walks the fixed path entry_data -> ProfilePage[0] -> graphql ->
// user. Absence at any step is a failure, not a default.
func resolveUser(shared *instagram.SharedData) (*instagram.User, error) {
	if shared.EntryData == nil {
		return nil, fmt.Errorf("snapshot has no entry_data")
	}
	if len(shared.EntryData.ProfilePage) == 0 {
		return nil, fmt.Errorf("snapshot has no ProfilePage entries")
	}
	page := shared.EntryData.ProfilePage[0]
	if page.GraphQL == nil {
		return nil, fmt.Errorf("profile page has no graphql payload")
	}
	if page.GraphQL.User == nil {
		return nil, fmt.Errorf("graphql payload has no user node")
	}
	return page.GraphQL.User, nil
}
