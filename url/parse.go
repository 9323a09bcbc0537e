/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import "unicode/utf8"

// Parse parses raw as a URL, optionally resolved against base, and
// returns the first fatal error encountered. Non-fatal violations are
// tolerated silently; use ParseWithErrors to observe them.
func Parse(raw string, base *Url) (*Url, error) {
	u, _, err := ParseWithErrors(raw, base)
	return u, err
}

// ParseWithErrors parses raw exactly as Parse does, additionally
// returning every non-fatal ValidationError observed along the way, in
// the order they were found.
func ParseWithErrors(raw string, base *Url) (*Url, []ValidationError, error) {
	const op = "Parse"

	if !utf8.ValidString(raw) {
		return nil, nil, newParseError(op, raw, ErrInvalidUTF8, nil)
	}

	rawBytes := []byte(raw)
	filter := newInputFilter(rawBytes)
	filtered, origOff := filter.bytes()

	p := &parser{
		filtered: filtered,
		origOff:  origOff,
		end:      len(filtered),
		base:     base,
		op:       op,
		input:    raw,
	}
	if filter.trimmed {
		p.errs = append(p.errs, ValidationError{Kind: ValUnexpectedC0ControlOrSpace, Offset: 0})
	}
	if filter.hadTabOrNL {
		p.errs = append(p.errs, ValidationError{Kind: ValUnexpectedASCIITabOrNewline, Offset: 0})
	}

	p.run()
	if p.fatal != nil {
		return nil, p.errs, p.fatal
	}

	return finalize(&p.out), p.errs, nil
}

// Serialize returns u's canonical serialization, omitting the fragment
// (and its leading '#') when excludeFragment is set. This mirrors the
// entry point's serialize(url, exclude_fragment) signature: callers that
// need a fragment-stripped form (e.g. to use a URL as a base, or to
// compare two references ignoring their fragments) get it without an
// extra parse/truncate step.
func Serialize(u *Url, excludeFragment bool) []byte {
	if !excludeFragment || u.fragmentLen == 0 {
		return append([]byte(nil), u.buf...)
	}
	s, _ := u.fragmentRange()
	return append([]byte(nil), u.buf[:s]...)
}

// ValidateScheme reports whether scheme is a valid URL scheme start
// (4.5.1): an ASCII alpha followed by alphanumeric, '+', '-', or '.'
// bytes. It backs setter-mode scheme validation (the ErrInvalidSchemeStart
// "in setter mode" case in section 7); this package exposes no setter
// surface of its own; a caller building one can use this to reject a new
// scheme before splicing it into an existing Url's buffer.
func ValidateScheme(scheme string) bool {
	b := []byte(scheme)
	if len(b) == 0 || !isAlpha(b[0]) {
		return false
	}
	for _, c := range b[1:] {
		if !isAlphanumeric(c) && c != '+' && c != '-' && c != '.' {
			return false
		}
	}
	return true
}
