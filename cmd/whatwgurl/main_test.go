/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCmdPrintsHostname(t *testing.T) {
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{"parse", "https://example.com/a/b"})
	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "hostname:   example.com")
}

func TestParseCmdJSON(t *testing.T) {
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{"parse", "--json", "https://example.com/a"})
	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), `"hostname": "example.com"`)
}

func TestParseCmdWithBase(t *testing.T) {
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{"parse", "--base", "https://example.com/a/b/c", "../d"})
	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "serialized: https://example.com/a/d")
}

func TestHostCmd(t *testing.T) {
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{"host", "192.168.0.1"})
	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "kind=")
}
