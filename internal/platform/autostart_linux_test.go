//go:build linux

package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutostartDesktopEntryLifecycle(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	autostart := &Autostart{AppName: "Pomodoro", ExecPath: "/opt/my apps/pomodoro", Args: []string{"--minutes", "25"}}

	enabled, err := autostart.Enabled()
	require.NoError(t, err)
	assert.False(t, enabled)

	require.NoError(t, autostart.Enable())
	content, err := os.ReadFile(filepath.Join(configHome, "autostart", "pomodoro.desktop"))
	require.NoError(t, err)
	assert.Contains(t, string(content), `Exec="/opt/my apps/pomodoro" --minutes 25`)
	assert.Contains(t, string(content), "Name=Pomodoro")

	enabled, err = autostart.Enabled()
	require.NoError(t, err)
	assert.True(t, enabled)

	require.NoError(t, autostart.Disable())
	require.NoError(t, autostart.Disable())
	enabled, err = autostart.Enabled()
	require.NoError(t, err)
	assert.False(t, enabled)
}
