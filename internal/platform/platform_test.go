package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tt := []struct {
		url      string
		platform Platform
		ok       bool
	}{
		{"https://twitter.com/alice/status/1", Twitter, true},
		{"https://x.com/alice/status/1", Twitter, true},
		{"http://www.instagram.com/p/abc", Instagram, true},
		{"https://instagr.am/p/abc", Instagram, true},
		{"https://www.youtube.com/watch?v=abc", YouTube, true},
		{"https://youtu.be/abc", YouTube, true},
		{"https://tiktok.com/@alice/video/1", TikTok, true},
		{"https://facebook.com/alice/posts/1", Facebook, true},
		{"https://fb.me/abc", Facebook, true},
		{"https://twitter.com/", "", false},
		{"https://example.com/post/1", "", false},
		{"ftp://twitter.com/alice", "", false},
		{"", "", false},
	}

	for _, tc := range tt {
		t.Run(tc.url, func(t *testing.T) {
			p, ok := Detect(tc.url)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.platform, p)
		})
	}
}
