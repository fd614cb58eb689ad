package server

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"labtycoon/internal/ops"
	"labtycoon/internal/persistence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The backup endpoint must yield an archive whose database restores
// and loads cleanly even though the save store keeps writing the live
// lab.db in WAL mode. A raw file copy cannot promise that; the
// snapshot-based flow can.
func TestAdminBackup_ArchivesRestorableSave(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "data")
	require.NoError(t, os.MkdirAll(dataDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "config.yaml"),
		[]byte("addr: \":0\"\n"), 0o644))

	store, err := persistence.Open(filepath.Join(dataDir, ops.SaveFileName))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	ta := newTestAppWith(t, store, dataDir)

	// Mutate state so the backup has something worth restoring.
	resp := ta.post(t, "/api/cmd/buy-equipment", map[string]any{"slot": 0, "kind": "microscope"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = ta.post(t, "/api/admin/backup", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody[map[string]any](t, resp)
	archive, _ := body["archive"].(string)
	require.NotEmpty(t, archive)

	restoreDir := filepath.Join(t.TempDir(), "restored")
	require.NoError(t, ops.RestoreLab(archive, restoreDir))

	// No WAL companions in the restore: the archived db is a
	// self-contained snapshot.
	_, err = os.Stat(filepath.Join(restoreDir, ops.SaveFileName+"-wal"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(restoreDir, "config.yaml"))
	assert.NoError(t, err)

	restored, err := persistence.Open(filepath.Join(restoreDir, ops.SaveFileName))
	require.NoError(t, err)
	t.Cleanup(func() { restored.Close() })

	st, found, err := restored.Load(context.Background())
	require.NoError(t, err)
	require.True(t, found, "the endpoint flushes state before snapshotting")
	assert.Equal(t, 45000.0, st.Funding)
	require.Len(t, st.Equipment, 1)
	assert.Equal(t, "microscope", st.Equipment[0].Kind)
}

func TestAdminBackup_RequiresSnapshotCapableStore(t *testing.T) {
	ta := newTestAppWith(t, &stubStore{}, t.TempDir())

	resp := ta.post(t, "/api/admin/backup", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}
