/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import (
	"fmt"

	"github.com/pkg/errors"
)

// ParseErrorKind is the closed set of fatal reasons Parse can fail, per
// the error handling design's fatal-error list.
type ParseErrorKind uint8

const (
	ErrMissingSchemeNonRelativeURL ParseErrorKind = iota
	ErrInvalidSchemeStart
	ErrPortOutOfRange
	ErrPortInvalid
	ErrEmptyHostSpecialScheme
	ErrHostInvalid
	ErrHostParser
	ErrMissingCredentials
	ErrInvalidUTF8
)

func (k ParseErrorKind) String() string {
	switch k {
	case ErrMissingSchemeNonRelativeURL:
		return "missing_scheme_non_relative_url"
	case ErrInvalidSchemeStart:
		return "invalid_scheme_start"
	case ErrPortOutOfRange:
		return "port_out_of_range"
	case ErrPortInvalid:
		return "port_invalid"
	case ErrEmptyHostSpecialScheme:
		return "empty_host_special_scheme"
	case ErrHostInvalid:
		return "host_invalid"
	case ErrHostParser:
		return "host_parser_error"
	case ErrMissingCredentials:
		return "missing_credentials"
	case ErrInvalidUTF8:
		return "invalid_utf8"
	default:
		return "unknown_parse_error"
	}
}

// ParseError reports a fatal parse failure: the operation, the input
// that caused it, and (when applicable) the wrapped cause. Mirrors
// net/url's Error{Op, URL, Err} shape.
type ParseError struct {
	Op    string
	Input string
	Kind  ParseErrorKind
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return e.Op + " " + quoteForError(e.Input) + ": " + e.Kind.String() + ": " + e.Err.Error()
	}
	return e.Op + " " + quoteForError(e.Input) + ": " + e.Kind.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

// Timeout and Temporary are always false: a single Parse call is bounded
// by input length and never blocks. They exist only so a caller written
// against net/url's timeout/temporary convention keeps compiling against
// this package too.
func (e *ParseError) Timeout() bool   { return false }
func (e *ParseError) Temporary() bool { return false }

func quoteForError(s string) string {
	return fmt.Sprintf("%q", s)
}

func newParseError(op, input string, kind ParseErrorKind, cause error) *ParseError {
	return &ParseError{Op: op, Input: input, Kind: kind, Err: cause}
}

// ValidationErrorKind is the closed set of non-fatal violations collected
// by ParseWithErrors. Parsing continues after each of these.
type ValidationErrorKind uint8

const (
	ValUnexpectedC0ControlOrSpace ValidationErrorKind = iota
	ValUnexpectedASCIITabOrNewline
	ValFileSchemeMissingFollowingSolidus
	ValInvalidScheme
	ValRelativeURLMissingBeginningSolidus
	ValUnexpectedReverseSolidus
	ValMissingSolidusBeforeAuthority
	ValUnexpectedCommercialAt
	ValUnexpectedPortWithoutHost
	ValUnexpectedWindowsDriveLetter
	ValUnexpectedWindowsDriveLetterHost
	ValUnexpectedHostFileScheme
	ValUnexpectedEmptyPath
	ValInvalidURLCodePoint
	ValUnescapedPercentSign
)

func (k ValidationErrorKind) String() string {
	switch k {
	case ValUnexpectedC0ControlOrSpace:
		return "unexpected_c0_control_or_space"
	case ValUnexpectedASCIITabOrNewline:
		return "unexpected_ascii_tab_or_newline"
	case ValFileSchemeMissingFollowingSolidus:
		return "file_scheme_missing_following_solidus"
	case ValInvalidScheme:
		return "invalid_scheme"
	case ValRelativeURLMissingBeginningSolidus:
		return "relative_url_missing_beginning_solidus"
	case ValUnexpectedReverseSolidus:
		return "unexpected_reverse_solidus"
	case ValMissingSolidusBeforeAuthority:
		return "missing_solidus_before_authority"
	case ValUnexpectedCommercialAt:
		return "unexpected_commercial_at"
	case ValUnexpectedPortWithoutHost:
		return "unexpected_port_without_host"
	case ValUnexpectedWindowsDriveLetter:
		return "unexpected_windows_drive_letter"
	case ValUnexpectedWindowsDriveLetterHost:
		return "unexpected_windows_drive_letter_host"
	case ValUnexpectedHostFileScheme:
		return "unexpected_host_file_scheme"
	case ValUnexpectedEmptyPath:
		return "unexpected_empty_path"
	case ValInvalidURLCodePoint:
		return "invalid_url_code_point"
	case ValUnescapedPercentSign:
		return "unescaped_percent_sign"
	default:
		return "unknown_validation_error"
	}
}

// ValidationError is one non-fatal violation observed at Offset, a byte
// offset into the original (unfiltered) input.
type ValidationError struct {
	Kind   ValidationErrorKind
	Offset int
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Kind, e.Offset)
}

// IPv4ErrorKind is the closed set of reasons the lenient (4.3.1) or
// strict (4.3.2 tail) IPv4 parser can fail.
type IPv4ErrorKind uint8

const (
	IPv4TooManyPieces IPv4ErrorKind = iota
	IPv4PieceOverflows
	IPv4PieceInvalidRadix
	IPv4InvalidCharacter
	IPv4PieceBeginsWithInvalidCharacter
	IPv4UnsupportedRadix
	IPv4EmptyInput
)

func (k IPv4ErrorKind) String() string {
	switch k {
	case IPv4TooManyPieces:
		return "too_many_pieces"
	case IPv4PieceOverflows:
		return "piece_overflows"
	case IPv4PieceInvalidRadix:
		return "piece_invalid_radix"
	case IPv4InvalidCharacter:
		return "invalid_character"
	case IPv4PieceBeginsWithInvalidCharacter:
		return "piece_begins_with_invalid_character"
	case IPv4UnsupportedRadix:
		return "unsupported_radix"
	case IPv4EmptyInput:
		return "empty_input"
	default:
		return "unknown_ipv4_error"
	}
}

// IPv4Error reports an IPv4 literal parse failure.
type IPv4Error struct {
	Kind IPv4ErrorKind
}

func (e *IPv4Error) Error() string { return "ipv4: " + e.Kind.String() }

// IPv6ErrorKind is the closed set of reasons the IPv6 literal parser
// (4.3.2) can fail.
type IPv6ErrorKind uint8

const (
	IPv6UnexpectedLeadingColon IPv6ErrorKind = iota
	IPv6UnexpectedTrailingColon
	IPv6UnexpectedCharacter
	IPv6MultipleCompressedPieces
	IPv6InvalidPositionForIPv4Address
	IPv6NotEnoughPieces
	IPv6TooManyPieces
	IPv6InvalidIPv4Address
	IPv6EmptyInput
)

func (k IPv6ErrorKind) String() string {
	switch k {
	case IPv6UnexpectedLeadingColon:
		return "unexpected_leading_colon"
	case IPv6UnexpectedTrailingColon:
		return "unexpected_trailing_colon"
	case IPv6UnexpectedCharacter:
		return "unexpected_character"
	case IPv6MultipleCompressedPieces:
		return "multiple_compressed_pieces"
	case IPv6InvalidPositionForIPv4Address:
		return "invalid_position_for_ipv4_address"
	case IPv6NotEnoughPieces:
		return "not_enough_pieces"
	case IPv6TooManyPieces:
		return "too_many_pieces"
	case IPv6InvalidIPv4Address:
		return "invalid_ipv4_address"
	case IPv6EmptyInput:
		return "empty_input"
	default:
		return "unknown_ipv6_error"
	}
}

// IPv6Error reports an IPv6 literal parse failure. Cause is set and
// non-nil only when Kind is IPv6InvalidIPv4Address.
type IPv6Error struct {
	Kind  IPv6ErrorKind
	Cause *IPv4Error
}

func (e *IPv6Error) Error() string {
	if e.Cause != nil {
		return "ipv6: " + e.Kind.String() + ": " + e.Cause.Error()
	}
	return "ipv6: " + e.Kind.String()
}

func (e *IPv6Error) Unwrap() error {
	if e.Cause == nil {
		return nil
	}
	return e.Cause
}

// HostError reports a host parser failure, wrapping the IPv4/IPv6
// sub-error with github.com/pkg/errors so callers can walk Cause() back
// to the innermost typed error.
type HostError struct {
	cause error
}

func newHostError(cause error) *HostError {
	return &HostError{cause: errors.WithStack(cause)}
}

func (e *HostError) Error() string  { return "host_parser_error: " + e.cause.Error() }
func (e *HostError) Unwrap() error  { return e.cause }
func (e *HostError) Cause() error   { return errors.Cause(e.cause) }
