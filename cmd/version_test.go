package cmd

import (
	"testing"

	"github.com/mouse-blink/dirdoc/internal/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd(t *testing.T) {
	t.Run("full", func(t *testing.T) {
		stdout, _, err := executeRoot(t, "version")
		require.NoError(t, err)
		assert.Equal(t, version.Get().String()+"\n", stdout)
	})

	t.Run("short", func(t *testing.T) {
		stdout, _, err := executeRoot(t, "version", "--short")
		require.NoError(t, err)
		assert.Equal(t, version.Version+"\n", stdout)
	})
}
