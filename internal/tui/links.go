package tui

import (
	"net/url"
	"strings"

	"farmatch-backend/internal/domain"
)

const warpcastBase = "https://warpcast.com/"

// Username strips a name-service suffix such as ".eth" from a match identity.
func Username(identity string) string {
	name, _, _ := strings.Cut(identity, ".")
	return name
}

// ProfileURL links to the matched builder's Warpcast profile.
func ProfileURL(identity string) string {
	return warpcastBase + url.PathEscape(Username(identity))
}

// ShareCastURL opens the Warpcast composer with a cast naming every match.
func ShareCastURL(matches []domain.Match) string {
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = "@" + Username(m.Identity)
	}
	text := "I just used FarMatch and got matched with " + strings.Join(names, ", ")
	return warpcastBase + "~/compose?text=" + url.QueryEscape(text)
}
