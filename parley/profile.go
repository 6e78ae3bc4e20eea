package parley

import (
	"fmt"
	"strings"
)

// avatarURLTemplate yields a deterministic avatar per username. It is a local
// rendering convenience and never appears on the wire.
const avatarURLTemplate = "https://avatars.dicebear.com/api/adventurer-neutral/%s.svg"

// UserProfile is the rendering view of one online user.
type UserProfile struct {
	Name      string
	AvatarURL string
}

// NewUserProfile builds the profile for a username with its derived avatar.
func NewUserProfile(name string) UserProfile {
	return UserProfile{Name: name, AvatarURL: AvatarURL(name)}
}

// AvatarURL returns the deterministic avatar location for a username.
func AvatarURL(name string) string {
	return fmt.Sprintf(avatarURLTemplate, name)
}

// ContentKind classifies how a message body should be rendered.
type ContentKind string

const (
	ContentText  ContentKind = "text"
	ContentImage ContentKind = "image"
)

// ClassifyContent reports image content only for an exact, case-sensitive
// ".gif" suffix. The text is not sanitized here; escaping an image URL built
// from untrusted input is the renderer's responsibility.
func ClassifyContent(text string) ContentKind {
	if strings.HasSuffix(text, ".gif") {
		return ContentImage
	}
	return ContentText
}
