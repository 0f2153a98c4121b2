// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package session

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dacolabs/bqschema/internal/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	abs, err := filepath.Abs(dir)
	require.NoError(t, err)
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(abs))
	t.Cleanup(func() { _ = os.Chdir(origDir) })
}

func TestLoad_FromWorkingDirectory(t *testing.T) {
	chdir(t, "testdata/valid")

	ctx, err := Load(context.Background(), Options{})
	require.NoError(t, err)

	s := From(ctx)
	require.NotNil(t, s)
	assert.Equal(t, config.FileName, s.ConfigPath)
	assert.Equal(t, "yaml", s.Config.Format)
	assert.Equal(t, "info", s.Config.Log.Level)
	assert.Equal(t, config.DefaultLogFormat, s.Config.Log.Format)
	assert.Equal(t, zerolog.InfoLevel, s.Log.GetLevel())
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	ctx, err := Load(context.Background(), Options{})
	require.NoError(t, err)

	s := From(ctx)
	require.NotNil(t, s)
	assert.Empty(t, s.ConfigPath)
	assert.Equal(t, config.Default(), s.Config)
}

func TestLoad_FlagsOverrideConfig(t *testing.T) {
	buf := &bytes.Buffer{}
	ctx, err := Load(context.Background(), Options{
		ConfigPath: "testdata/valid/bqschema.yaml",
		LogLevel:   "debug",
		LogFormat:  "json",
		LogOutput:  buf,
	})
	require.NoError(t, err)

	s := From(ctx)
	require.NotNil(t, s)
	assert.Equal(t, "debug", s.Config.Log.Level)
	assert.Equal(t, "json", s.Config.Log.Format)
	assert.Contains(t, buf.String(), "loaded configuration")

	// The logger is also reachable through zerolog's context helpers.
	assert.Equal(t, zerolog.DebugLevel, zerolog.Ctx(ctx).GetLevel())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr error
	}{
		{
			name:    "missing explicit config",
			opts:    Options{ConfigPath: "testdata/nope.yaml"},
			wantErr: ErrConfigNotFound,
		},
		{
			name:    "unsupported version",
			opts:    Options{ConfigPath: "testdata/invalid/bqschema.yaml"},
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "bad log level flag",
			opts:    Options{ConfigPath: "testdata/valid/bqschema.yaml", LogLevel: "loud"},
			wantErr: ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(context.Background(), tt.opts)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRequireFromCommand(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	_, err := RequireFromCommand(cmd)
	require.Error(t, err)
	assert.Nil(t, FromCommand(cmd))

	opts := &Options{ConfigPath: "testdata/valid/bqschema.yaml"}
	require.NoError(t, PreRunLoad(opts)(cmd, nil))

	s, err := RequireFromCommand(cmd)
	require.NoError(t, err)
	assert.Equal(t, "yaml", s.Config.Format)
}

func TestFrom_NilContext(t *testing.T) {
	//nolint:staticcheck // nil context is what cobra reports before execution
	assert.Nil(t, From(nil))
}
