package instagram

import (
	"time"

	"atelier/models"
)

// SamplePosts is the fixed seed set loaded into an empty mirror so the
// dashboard has something to show before the real feed is wired up.
func SamplePosts() []models.InstagramPost {
	base := time.Date(2024, 11, 4, 9, 0, 0, 0, time.UTC)
	return []models.InstagramPost{
		{
			ID:       "ig-sample-001",
			Image:    "/static/instagram/studio-desk.jpg",
			Caption:  "Behind the scenes at the studio",
			Username: "atelier.studio",
			Likes:    248,
			Comments: 19,
			Saves:    31,
			Date:     base,
		},
		{
			ID:       "ig-sample-002",
			Image:    "/static/instagram/brand-launch.jpg",
			Caption:  "Launch day for our latest brand project",
			Username: "atelier.studio",
			Likes:    512,
			Comments: 44,
			Saves:    87,
			Date:     base.AddDate(0, 0, 3),
		},
		{
			ID:       "ig-sample-003",
			Image:    "/static/instagram/team-offsite.jpg",
			Caption:  "Team offsite, sketchbooks out",
			Username: "atelier.studio",
			Likes:    193,
			Comments: 12,
			Saves:    9,
			Date:     base.AddDate(0, 0, 7),
		},
		{
			ID:       "ig-sample-004",
			Image:    "/static/instagram/typography.jpg",
			Caption:  "Typography studies for a new identity",
			Username: "atelier.studio",
			Likes:    377,
			Comments: 28,
			Saves:    64,
			Date:     base.AddDate(0, 0, 10),
		},
	}
}
