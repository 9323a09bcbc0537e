/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

// finalize replays a completed builder into the Url's single contiguous
// buffer, in the wire order 4.5.3 and 6.2 describe: scheme, authority
// (username, password, host, port), path, query, fragment. It is the
// construction pass's only job: every byte already went through the
// right escape set during scanning, so finalize does no further
// transformation beyond assembling the header and laying out the buffer.
func finalize(b *builder) *Url {
	authorityPresent := b.hostSet

	path := b.path
	if authorityPresent && !b.cannotBeABase && len(path) == 0 {
		path = [][]byte{{}}
	}

	var portBytes []byte
	if b.port != nil {
		portBytes = appendUint([]byte{':'}, uint64(*b.port))
	}
	hostBytes := b.host.Serialize()

	buf := make([]byte, 0, estimateSize(b, hostBytes, portBytes, path))

	buf = append(buf, b.scheme...)
	buf = append(buf, ':')
	schemeLen := len(b.scheme)

	present := compScheme | compPath
	var usernameLen, passwordLen, hostLen, portLen int

	if authorityPresent {
		present |= compAuthority
		buf = append(buf, '/', '/')

		usernameStart := len(buf)
		buf = append(buf, b.username...)
		usernameLen = len(buf) - usernameStart

		if len(b.password) > 0 {
			passwordStart := len(buf)
			buf = append(buf, ':')
			buf = append(buf, b.password...)
			passwordLen = len(buf) - passwordStart
		}

		if usernameLen > 0 || passwordLen > 0 {
			buf = append(buf, '@')
		}

		hostStart := len(buf)
		buf = append(buf, hostBytes...)
		hostLen = len(buf) - hostStart

		if portBytes != nil {
			portStart := len(buf)
			buf = append(buf, portBytes...)
			portLen = len(buf) - portStart
		}
	}

	pathStart := len(buf)
	if b.cannotBeABase {
		if len(path) > 0 {
			buf = append(buf, path[0]...)
		}
	} else {
		for _, seg := range path {
			buf = append(buf, '/')
			buf = append(buf, seg...)
		}
	}
	pathLen := len(buf) - pathStart

	var queryLen int
	if b.hasQuery {
		present |= compQuery
		qStart := len(buf)
		buf = append(buf, '?')
		buf = append(buf, b.query...)
		queryLen = len(buf) - qStart
	}

	var fragmentLen int
	if b.hasFragment {
		present |= compFragment
		fStart := len(buf)
		buf = append(buf, '#')
		buf = append(buf, b.fragment...)
		fragmentLen = len(buf) - fStart
	}

	u := &Url{
		buf:              buf,
		schemeKind:       b.schemeKind,
		cannotBeABaseURL: b.cannotBeABase,
		present:          present,
		schemeLen:        schemeLen,
		usernameLen:      usernameLen,
		passwordLen:      passwordLen,
		hostLen:          hostLen,
		portLen:          portLen,
		pathLen:          pathLen,
		queryLen:         queryLen,
		fragmentLen:      fragmentLen,
		host:             b.host,
	}
	if b.port != nil {
		u.port = *b.port
	}
	return u
}

func estimateSize(b *builder, hostBytes, portBytes []byte, path [][]byte) int {
	n := len(b.scheme) + 1 + len(b.username) + len(b.password) + len(hostBytes) + len(portBytes) + 4
	for _, seg := range path {
		n += len(seg) + 1
	}
	n += len(b.query) + len(b.fragment) + 2
	return n
}
