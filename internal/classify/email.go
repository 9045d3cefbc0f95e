// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import "regexp"

// emailPattern matches a standard local-part@domain address with at least
// one dot in the domain, so bare "@"-free tokens and host-only strings
// never match.
var emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

// ExtractEmail returns the first email address found in text, scanning left
// to right, with its casing preserved. It returns "" when text contains no
// address.
func ExtractEmail(text string) string {
	return emailPattern.FindString(text)
}
