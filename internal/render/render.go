// Package render converts user-authored markdown into HTML that is safe to
// serve back to browsers.
package render

import (
	"github.com/microcosm-cc/bluemonday"
	blackfriday "gopkg.in/russross/blackfriday.v2"
)

// MarkdownToHTML renders markdown and strips anything outside the UGC policy
func MarkdownToHTML(s string) string {
	renderer := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.Safelink |
			blackfriday.NofollowLinks |
			blackfriday.NoreferrerLinks |
			blackfriday.HrefTargetBlank,
	})
	unsafe := blackfriday.Run([]byte(s), blackfriday.WithRenderer(renderer))
	return string(bluemonday.UGCPolicy().SanitizeBytes(unsafe))
}

// StripTags removes all markup from free-text input fields
func StripTags(s string) string {
	return bluemonday.StrictPolicy().Sanitize(s)
}
