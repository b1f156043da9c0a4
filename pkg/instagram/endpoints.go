package instagram

import (
	"fmt"
	"strings"
)

const (
	// BaseURL is the base URL for Instagram.
	BaseURL = "https://www.instagram.com"
)

// ProfileURL constructs the public profile page URL for a user.
func ProfileURL(username string) string {
	if username == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s/", BaseURL, username)
}

// PostURL constructs the URL for a specific post.
func PostURL(shortcode string) string {
	if shortcode == "" {
		return ""
	}
	return fmt.Sprintf("%s/p/%s/", BaseURL, shortcode)
}

// NormalizeUsername lower-cases and trims a username before it is used in
// any network call, stripping a leading @ and trailing slashes.
func NormalizeUsername(username string) string {
	username = strings.ToLower(strings.TrimSpace(username))
	username = strings.TrimPrefix(username, "@")
	username = strings.TrimRight(username, "/")
	return username
}

// IsValidUsername checks if a username is valid according to Instagram rules.
func IsValidUsername(username string) bool {
	if username == "" || len(username) > 30 {
		return false
	}

	// Only letters, numbers, periods, and underscores
	for _, char := range username {
		if !((char >= 'a' && char <= 'z') ||
			(char >= 'A' && char <= 'Z') ||
			(char >= '0' && char <= '9') ||
			char == '.' || char == '_') {
			return false
		}
	}

	return true
}
