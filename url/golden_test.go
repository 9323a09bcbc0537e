/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestGoldenEndToEnd encodes spec section 8.3's input/base/expected-serialization
// table directly.
func TestGoldenEndToEnd(t *testing.T) {
	cases := []struct {
		name string
		in   string
		base string
		want string
	}{
		{
			name: "query preserved verbatim",
			in:   "http://example.com/foo/bar/baz?a=b&c=d&e=f",
			want: "http://example.com/foo/bar/baz?a=b&c=d&e=f",
		},
		{
			name: "tab and newline filtered from scheme and host",
			in:   "htt\tps://exa\nmple.com/p",
			want: "https://example.com/p",
		},
		{
			name: "ipv6 literal compresses canonically",
			in:   "http://[2001:0db8:85a3:0000:0000:8a2e:0370:7334]/",
			want: "http://[2001:db8:85a3::8a2e:370:7334]/",
		},
		{
			name: "hex ipv4 shorthand expands to dotted decimal",
			in:   "http://0xbadf00d/",
			want: "http://11.173.240.13/",
		},
		{
			name: "windows drive letter path normalizes",
			in:   "file:c:/x/./y/../z",
			want: "file:///c:/x/z",
		},
		{
			name: "embedded ipv4-in-ipv6 never re-emits dotted form",
			in:   "http://[::ffff:192.168.0.1]/",
			want: "http://[::ffff:c0a8:1]/",
		},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			u, err := Parse(c.in, nil)
			require.NoError(t, err)
			require.Equal(t, c.want, u.String())
		})
	}

	t.Run("relative dot-dot against a base path", func(t *testing.T) {
		base, err := Parse("http://a.com/x/y/z", nil)
		require.NoError(t, err)
		u, err := Parse("../baz", base)
		require.NoError(t, err)
		require.Equal(t, "http://a.com/x/baz", u.String())
	})

	t.Run("fragment against a cannot-be-a-base mailto reference", func(t *testing.T) {
		base, err := Parse("mailto:a@b", nil)
		require.NoError(t, err)
		u, err := Parse("#frag", base)
		require.NoError(t, err)
		require.Equal(t, "mailto:a@b#frag", u.String())
	})
}

// TestGoldenNegative encodes spec section 8.4's must-fail inputs.
func TestGoldenNegative(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"bare colon has no scheme body", ":"},
		{"ipv6 too many pieces", "http://[12345::]"},
		{"ipv6 all colons", "http://[:::]"},
		{"ipv6 nine groups", "http://[0:1:2:3:0001:0002:0003:0004:0005]"},
		{"port with no host", "http://:443"},
		{"port overflows uint16", "http://example.com:70000"},
		{"port has non-digit", "http://example.com:7z"},
		{"embedded ipv4 tail overflows a byte", "http://[::ffff:555.168.0.1]"},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse(c.in, nil)
			require.Error(t, err)
		})
	}
}

// TestBoundaryPorts encodes spec section 8.2's port boundary behaviors:
// 0 and 65535 parse, 65536 overflows.
func TestBoundaryPorts(t *testing.T) {
	u, err := Parse("http://example.com:0/", nil)
	require.NoError(t, err)
	port, ok := u.Port()
	require.True(t, ok)
	require.EqualValues(t, 0, port)

	u, err = Parse("http://example.com:65535/", nil)
	require.NoError(t, err)
	port, ok = u.Port()
	require.True(t, ok)
	require.EqualValues(t, 65535, port)

	_, err = Parse("http://example.com:65536/", nil)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, ErrPortOutOfRange, pe.Kind)
}

// TestBoundaryEmptyInput encodes spec section 8.2's empty/C0-only input
// behaviors.
func TestBoundaryEmptyInput(t *testing.T) {
	_, err := Parse("", nil)
	require.Error(t, err)

	_, err = Parse("\x00\x01 \t", nil)
	require.Error(t, err)
}

// TestIPv6RoundTrip is the section 8.1 host round-trip property, spot-checked
// rather than run over an arbitrary generator (no fuzzing harness is in
// scope here): serializing and re-parsing an IPv6 literal yields the same
// eight groups.
func TestIPv6RoundTrip(t *testing.T) {
	groups := [][8]uint16{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0x2001, 0x0db8, 0, 0, 0, 0, 0x8a2e, 0x0370},
		{1, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0xffff, 0xc0a8, 1},
	}
	for _, g := range groups {
		serialized := string(appendIPv6([]byte{'['}, g)) + "]"
		u, err := Parse("http://"+serialized+"/", nil)
		require.NoError(t, err)
		got, ok := u.Host().IPv6()
		require.True(t, ok)
		require.Equal(t, g, got)
	}
}

// TestSerializeExcludeFragment covers the exclude_fragment entry-point
// parameter from section 6.1.
func TestSerializeExcludeFragment(t *testing.T) {
	u, err := Parse("http://example.com/a?b=c#frag", nil)
	require.NoError(t, err)
	require.Equal(t, "http://example.com/a?b=c#frag", string(Serialize(u, false)))
	require.Equal(t, "http://example.com/a?b=c", string(Serialize(u, true)))

	noFrag, err := Parse("http://example.com/a", nil)
	require.NoError(t, err)
	require.Equal(t, "http://example.com/a", string(Serialize(noFrag, true)))
}
