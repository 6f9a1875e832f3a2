// Package validate holds the request validation helpers shared by the
// resource handlers. Required-field checks stay inline in the handlers;
// only the email format rule is common enough to live here.
package validate

import "regexp"

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email reports whether s looks like an email address: non-whitespace
// local part, "@", non-whitespace domain containing a dot.
func Email(s string) bool {
	return emailRegexp.MatchString(s)
}
