/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Command whatwgurl is a thin CLI over the url package: it parses a URL
// (optionally against a base) and prints its components, or validates a
// bare host literal.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/badu/whatwgurl/url"
)

var (
	flagBase string
	flagJSON bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "whatwgurl",
		Short: "Parse and inspect URLs using the WHATWG URL state machine",
	}
	root.AddCommand(newParseCmd(), newHostCmd())
	return root
}

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <url>",
		Short: "Parse a URL and print its components",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var base *url.Url
			if flagBase != "" {
				b, err := url.Parse(flagBase, nil)
				if err != nil {
					return fmt.Errorf("parsing --base: %w", err)
				}
				base = b
			}
			u, errs, err := url.ParseWithErrors(args[0], base)
			if err != nil {
				return err
			}
			for _, e := range errs {
				log.Printf("validation: %s", e.Error())
			}
			if flagJSON {
				return printJSON(cmd, u)
			}
			printComponents(cmd, u)
			return nil
		},
	}
	cmd.Flags().StringVar(&flagBase, "base", "", "resolve the URL against this base")
	cmd.Flags().BoolVar(&flagJSON, "json", false, "print components as JSON")
	return cmd
}

func newHostCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "host <host>",
		Short: "Parse a bare host literal (no scheme context assumed special)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := url.Parse("http://" + args[0] + "/", nil)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "kind=%v value=%s\n", u.Host().Kind(), u.Hostname())
			return nil
		},
	}
	return cmd
}

type componentView struct {
	Scheme        string `json:"scheme"`
	Username      string `json:"username,omitempty"`
	HasPassword   bool   `json:"hasPassword,omitempty"`
	Password      string `json:"password,omitempty"`
	Hostname      string `json:"hostname,omitempty"`
	Port          uint16 `json:"port,omitempty"`
	Path          string `json:"path"`
	Query         string `json:"query,omitempty"`
	Fragment      string `json:"fragment,omitempty"`
	CannotBeABase bool   `json:"cannotBeABase,omitempty"`
	Serialization string `json:"serialization"`
}

func toView(u *url.Url) componentView {
	v := componentView{
		Scheme:        u.Scheme(),
		Username:      u.Username(),
		HasPassword:   u.HasPassword(),
		Password:      u.Password(),
		Hostname:      u.Hostname(),
		Path:          string(u.Path()),
		CannotBeABase: u.CannotBeABase(),
		Serialization: u.String(),
	}
	if port, ok := u.Port(); ok {
		v.Port = port
	}
	if u.HasQuery() {
		v.Query = u.Query()
	}
	if u.HasFragment() {
		v.Fragment = u.Fragment()
	}
	return v
}

func printJSON(cmd *cobra.Command, u *url.Url) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(toView(u))
}

func printComponents(cmd *cobra.Command, u *url.Url) {
	out := cmd.OutOrStdout()
	v := toView(u)
	fmt.Fprintf(out, "scheme:     %s\n", v.Scheme)
	if v.Username != "" {
		fmt.Fprintf(out, "username:   %s\n", v.Username)
	}
	if v.HasPassword {
		fmt.Fprintf(out, "password:   %s\n", v.Password)
	}
	if v.Hostname != "" || u.HasAuthority() {
		fmt.Fprintf(out, "hostname:   %s\n", v.Hostname)
	}
	if v.Port != 0 {
		fmt.Fprintf(out, "port:       %d\n", v.Port)
	}
	fmt.Fprintf(out, "path:       %s\n", v.Path)
	if u.HasQuery() {
		fmt.Fprintf(out, "query:      %s\n", v.Query)
	}
	if u.HasFragment() {
		fmt.Fprintf(out, "fragment:   %s\n", v.Fragment)
	}
	fmt.Fprintf(out, "serialized: %s\n", v.Serialization)
}
