// Package sanitizer normalizes user-supplied identity fields before they are
// validated, stored or used for lookups.
//
// Emails and usernames are case-folded so uniqueness checks and logins are
// case-insensitive; phone numbers are reduced to digits with an optional
// leading plus. Sanitization happens before validation, so validators always
// see the canonical form.
package sanitizer
