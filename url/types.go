/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

// SchemeKind classifies a URL's scheme. Special schemes (every kind other
// than SchemeOther) enable backslash-as-separator; all of them except
// SchemeFile also require a non-empty host and carry a default port.
type SchemeKind uint8

const (
	SchemeOther SchemeKind = iota
	SchemeHTTP
	SchemeHTTPS
	SchemeFTP
	SchemeWS
	SchemeWSS
	SchemeFile
)

// IsSpecial reports whether k is one of the six special schemes.
func (k SchemeKind) IsSpecial() bool { return k != SchemeOther }

// DefaultPort returns the scheme's default port and true, or (0, false)
// if the scheme has none.
func (k SchemeKind) DefaultPort() (uint16, bool) {
	switch k {
	case SchemeFTP:
		return 21, true
	case SchemeHTTP, SchemeWS:
		return 80, true
	case SchemeHTTPS, SchemeWSS:
		return 443, true
	default:
		return 0, false
	}
}

func schemeKindOf(scheme []byte) SchemeKind {
	switch string(scheme) {
	case "http":
		return SchemeHTTP
	case "https":
		return SchemeHTTPS
	case "ftp":
		return SchemeFTP
	case "ws":
		return SchemeWS
	case "wss":
		return SchemeWSS
	case "file":
		return SchemeFile
	default:
		return SchemeOther
	}
}

// componentSet is the bitset of top-level components present in a Url,
// per the data model's "present components" header field.
type componentSet uint8

const (
	compScheme componentSet = 1 << iota
	compAuthority
	compPath
	compQuery
	compFragment
)

func (c componentSet) has(bit componentSet) bool { return c&bit != 0 }

// Component identifies a slice of a Url's canonical serialization for use
// with ComponentBytes.
type Component uint8

const (
	ComponentScheme Component = iota
	ComponentUsername
	ComponentPassword
	ComponentHostname
	ComponentPort
	ComponentPath
	ComponentQuery
	ComponentFragment
	ComponentAuthority
)

// Url is an immutable, contiguously-stored parsed URL: a single byte
// buffer holding the canonical serialized form, plus a small header
// locating each component within it. Values are produced only by Parse
// and ParseWithErrors and are safe for concurrent read access from
// multiple goroutines, since nothing about parsing or accessing a Url
// mutates shared state.
type Url struct {
	buf []byte

	schemeKind        SchemeKind
	cannotBeABaseURL  bool
	present           componentSet
	schemeLen         int
	usernameLen       int
	passwordLen       int // 0 (absent) or >=2 (":" + >=1 byte)
	hostLen           int
	portLen           int // 0 (absent) or >=2 (":" + >=1 digit)
	pathLen           int
	queryLen          int // 0 (absent) or >=1 ("?" + >=0 bytes)
	fragmentLen       int // 0 (absent) or >=1 ("#" + >=0 bytes)

	// host and port mirror what's already encoded into buf's authority
	// region, kept structurally so a Url can serve as the base for
	// resolving a relative reference without re-parsing its own output.
	host Host
	port uint16
}

// HostKind classifies a parsed Host value.
type HostKind uint8

const (
	HostDomain HostKind = iota
	HostIPv4
	HostIPv6
	HostOpaque
	HostEmpty
)

// Host is the result of the host sub-parser (section 4.3): a domain, an IPv4 or
// IPv6 literal, an opaque host (for non-special schemes), or empty (valid
// only for non-special schemes, and for file URLs after localhost
// normalization). Hosts are constructed by parseHost, except the empty
// host, which the scanner also sets directly for file URLs; they are
// immutable thereafter.
type Host struct {
	kind   HostKind
	domain []byte // HostDomain: lowercased, non-empty
	opaque []byte // HostOpaque: percent-encoded
	ipv4   uint32
	ipv6   [8]uint16
}

// Kind reports which alternative h holds.
func (h Host) Kind() HostKind { return h.kind }

// IsEmpty reports whether h is the empty host.
func (h Host) IsEmpty() bool { return h.kind == HostEmpty }

// IPv4 returns the address and true if h holds an IPv4 literal.
func (h Host) IPv4() (uint32, bool) { return h.ipv4, h.kind == HostIPv4 }

// IPv6 returns the eight 16-bit groups and true if h holds an IPv6 literal.
func (h Host) IPv6() ([8]uint16, bool) { return h.ipv6, h.kind == HostIPv6 }

// Serialize returns h's canonical byte representation: the domain or
// opaque bytes verbatim, dotted-decimal for IPv4, bracketed compressed
// hex groups for IPv6 (section 4.3.3), or nil for the empty host.
func (h Host) Serialize() []byte {
	switch h.kind {
	case HostDomain:
		return append([]byte(nil), h.domain...)
	case HostOpaque:
		return append([]byte(nil), h.opaque...)
	case HostIPv4:
		return serializeIPv4(h.ipv4)
	case HostIPv6:
		b := make([]byte, 0, 41)
		b = append(b, '[')
		b = appendIPv6(b, h.ipv6)
		b = append(b, ']')
		return b
	default:
		return nil
	}
}
