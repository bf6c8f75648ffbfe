package theme

import (
	"bytes"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marckohlbrugge/tempmail-cli/internal/cmdutil"
	"github.com/marckohlbrugge/tempmail-cli/internal/config"
	"github.com/marckohlbrugge/tempmail-cli/internal/iostreams"
)

func setupTest(t *testing.T) (*cmdutil.Factory, *bytes.Buffer) {
	t.Helper()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	ios, _, stdout, _ := iostreams.Test()
	return &cmdutil.Factory{IOStreams: ios}, stdout
}

func TestThemeCommand(t *testing.T) {
	t.Run("toggles", func(t *testing.T) {
		f, stdout := setupTest(t)

		cmd := NewCmdTheme(f)
		cmd.SetArgs([]string{})
		cmd.SetErr(&bytes.Buffer{})

		require.NoError(t, cmd.Execute())
		assert.Equal(t, "Theme set to dark.\n", stdout.String())

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.True(t, cfg.DarkTheme)

		stdout.Reset()
		cmd = NewCmdTheme(f)
		cmd.SetArgs([]string{})
		require.NoError(t, cmd.Execute())
		assert.Equal(t, "Theme set to light.\n", stdout.String())
	})

	t.Run("keeps the server", func(t *testing.T) {
		f, _ := setupTest(t)
		require.NoError(t, config.Save(&config.Config{Server: "https://tmp.test.com"}))

		cmd := NewCmdTheme(f)
		cmd.SetArgs([]string{"dark"})
		require.NoError(t, cmd.Execute())

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, "https://tmp.test.com", cfg.Server)
		assert.True(t, cfg.DarkTheme)
	})

	t.Run("invalid theme", func(t *testing.T) {
		f, _ := setupTest(t)

		cmd := NewCmdTheme(f)
		cmd.SetArgs([]string{"purple"})
		cmd.SetErr(&bytes.Buffer{})

		err := cmd.Execute()

		var flagErr *cmdutil.FlagError
		require.ErrorAs(t, err, &flagErr)
	})

	t.Run("too many arguments", func(t *testing.T) {
		f, _ := setupTest(t)

		cmd := NewCmdTheme(f)
		cmd.SetArgs([]string{"dark", "light"})
		cmd.SetErr(&bytes.Buffer{})

		err := cmd.Execute()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "too many arguments")
	})
}
