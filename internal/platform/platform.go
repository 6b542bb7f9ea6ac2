// Package platform recognizes supported social media platforms by content URL.
package platform

import (
	"regexp"
)

// Platform is a name of a supported social network.
type Platform string

const (
	// Twitter ...
	Twitter Platform = "Twitter"
	// Instagram ...
	Instagram Platform = "Instagram"
	// YouTube ...
	YouTube Platform = "YouTube"
	// TikTok ...
	TikTok Platform = "TikTok"
	// Facebook ...
	Facebook Platform = "Facebook"
)

// nolint:gochecknoglobals
var patterns = []struct {
	p Platform
	r *regexp.Regexp
}{
	{Twitter, regexp.MustCompile(`^https?://(www\.)?(twitter\.com|x\.com)/.+`)},
	{Instagram, regexp.MustCompile(`^https?://(www\.)?(instagram\.com|instagr\.am)/.+`)},
	{YouTube, regexp.MustCompile(`^https?://(www\.)?(youtube\.com|youtu\.be)/.+`)},
	{TikTok, regexp.MustCompile(`^https?://(www\.)?(tiktok\.com)/.+`)},
	{Facebook, regexp.MustCompile(`^https?://(www\.)?(facebook\.com|fb\.me)/.+`)},
}

// Detect returns platform which url belongs to, false if url isn't recognized.
func Detect(url string) (Platform, bool) {
	for _, v := range patterns {
		if v.r.MatchString(url) {
			return v.p, true
		}
	}

	return "", false
}
