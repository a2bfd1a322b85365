package cmdutil

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/bundler/internal/errors"
	"github.com/opmodel/bundler/internal/output"
)

func TestOutputFlags_AddTo(t *testing.T) {
	var of OutputFlags
	cmd := &cobra.Command{Use: "test"}
	of.AddTo(cmd)

	flag := cmd.Flags().Lookup("output")
	require.NotNil(t, flag)
	assert.Equal(t, "o", flag.Shorthand)
	assert.Equal(t, "table", flag.DefValue)
}

func TestOutputFlags_Parse(t *testing.T) {
	of := OutputFlags{Format: "json"}
	format, err := of.Parse()
	require.NoError(t, err)
	assert.Equal(t, output.FormatJSON, format)

	of.Format = "xml"
	_, err = of.Parse()
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrValidation)
	assert.Contains(t, err.Error(), "table, yaml, json")
}
