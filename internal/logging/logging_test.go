package logging

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestSetupWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flexheader.log")
	closer, err := Setup(path)
	require.NoError(t, err)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	log.WithField("section", "Table").Info("updating content")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `msg="updating content"`)
	require.Contains(t, string(data), "section=Table")
}

func TestSetupDiscard(t *testing.T) {
	closer, err := Setup("")
	require.NoError(t, err)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	require.NoError(t, closer.Close())
}

func TestSetupBadPath(t *testing.T) {
	_, err := Setup(filepath.Join(t.TempDir(), "missing", "dir", "x.log"))
	require.ErrorContains(t, err, "opening log file")
}
