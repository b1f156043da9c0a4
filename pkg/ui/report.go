package ui

import (
	"fmt"

	"igosint/pkg/profile"
)

// PrintReport renders the scanned profile as a labelled terminal summary.
// The JSON on disk keeps the raw field names; capitalized labels exist only
// here.
func PrintReport(rec *profile.Record) {
	fmt.Println()
	fmt.Println(Bold(Cyan("Profile Report")))
	fmt.Println(Cyan("──────────────"))

	printField("Username", rec.Username)
	printField("Profile Name", rec.ProfileName)
	printField("URL", rec.URL)
	printField("Followers", rec.Followers)
	printField("Following", rec.Following)
	printField("Posts", rec.Posts)
	printField("Bio", rec.Bio)
	printField("External URL", rec.ExternalURL)
	printField("Private", yesNo(rec.IsPrivate))
	printField("Verified", yesNo(rec.IsVerified))
	printField("Business Account", yesNo(rec.IsBusinessAccount))
	if rec.IsBusinessAccount {
		printField("Business Category", rec.BusinessCategory)
	}
	printField("Connected to Facebook", rec.ConnectedToFB)
	printField("Joined Recently", yesNo(rec.JoinedRecently))
	printField("Has Guides", yesNo(rec.HasGuides))
	printField("Has Clips", yesNo(rec.HasClips))
	printField("Has AR Effects", yesNo(rec.HasAREffects))
	printField("Has Channel", yesNo(rec.HasChannel))
	printField("Highlight Reels", fmt.Sprintf("%d", rec.HighlightReelCount))
	printField("Scraped At", rec.ScrapedTimestamp)
	fmt.Println()
}

func printField(label, value string) {
	if value == "" {
		value = "-"
	}
	fmt.Printf("  %s %s\n", Yellow(fmt.Sprintf("%-22s", label+":")), value)
}

func yesNo(b bool) string {
	if b {
		return Green("Yes")
	}
	return "No"
}
