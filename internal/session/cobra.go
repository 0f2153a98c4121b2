// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package session

import (
	"errors"

	"github.com/spf13/cobra"
)

// FromCommand extracts the session Context from a cobra.Command's context.
// Returns nil if no Context is stored.
func FromCommand(cmd *cobra.Command) *Context {
	return From(cmd.Context())
}

// RequireFromCommand extracts the session Context from a cobra.Command's context,
// returning an error if not found.
func RequireFromCommand(cmd *cobra.Command) (*Context, error) {
	ctx := FromCommand(cmd)
	if ctx == nil {
		return nil, errors.New("session not loaded")
	}
	return ctx, nil
}

// PreRunLoad returns a PersistentPreRunE function that loads the session
// described by opts and stores it in the command's context.
// opts is read when the command runs, after flags are parsed.
func PreRunLoad(opts *Options) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		o := *opts
		if o.LogOutput == nil {
			o.LogOutput = cmd.ErrOrStderr()
		}
		ctx, err := Load(cmd.Context(), o)
		if err != nil {
			return err
		}
		cmd.SetContext(ctx)
		return nil
	}
}
