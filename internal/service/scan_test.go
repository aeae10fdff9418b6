// internal/service/scan_test.go
package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/svs/internal/status"
)

func TestAggregate_MixedDirectory(t *testing.T) {
	root := t.TempDir()

	writeService(t, filepath.Join(root, "web"), healthy(1234))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "broken"), 0o755))
	writeService(t, filepath.Join(root, "cron"), healthy(88))
	writeService(t, filepath.Join(root, "cron", "log"), healthy(89))

	l, err := Aggregate(root)
	require.NoError(t, err)
	require.Len(t, l.Services, 3)

	assert.Equal(t, "broken", l.Services[0].Name)
	assert.Equal(t, "cron", l.Services[1].Name)
	assert.Equal(t, "web", l.Services[2].Name)

	broken := l.Services[0]
	assert.Equal(t, status.StateErrored, broken.State())
	assert.Nil(t, broken.Record)
	assert.True(t, errors.Is(broken.Err, status.ErrUnreadable), "err=%v", broken.Err)

	cron := l.Services[1]
	require.NotNil(t, cron.Log)
	assert.Equal(t, "log", cron.Log.Name)
	assert.Equal(t, status.StateHealthy, cron.Log.State())
	assert.Nil(t, cron.Log.Log)

	web := l.Services[2]
	require.NotNil(t, web.Record)
	assert.Equal(t, uint32(1234), web.Record.PID)
	assert.True(t, web.NormallyUp)
	assert.Equal(t, status.StateHealthy, web.State())
	assert.Nil(t, web.Log)

	assert.Equal(t, len("broken"), l.MaxNameLen)
}

func TestAggregate_DownFileFlipsNormallyUp(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "getty")
	writeService(t, dir, status.Record{State: status.RawDown})
	require.NoError(t, os.WriteFile(filepath.Join(dir, status.DownFile), nil, 0o644))

	l, err := Aggregate(root)
	require.NoError(t, err)
	require.Len(t, l.Services, 1)

	svc := l.Services[0]
	require.NoError(t, svc.Err)
	assert.False(t, svc.NormallyUp)
	assert.Equal(t, status.StateDownExpected, svc.State())
}

func TestAggregate_IgnoresPlainFiles(t *testing.T) {
	root := t.TempDir()
	writeService(t, filepath.Join(root, "a"), healthy(1))
	require.NoError(t, os.WriteFile(filepath.Join(root, "README"), []byte("x"), 0o644))

	l, err := Aggregate(root)
	require.NoError(t, err)
	require.Len(t, l.Services, 1)
	assert.Equal(t, "a", l.Services[0].Name)
}

func TestAggregate_FollowsSymlinks(t *testing.T) {
	root := t.TempDir()
	avail := t.TempDir()
	writeService(t, filepath.Join(avail, "sshd"), healthy(22))
	require.NoError(t, os.Symlink(filepath.Join(avail, "sshd"), filepath.Join(root, "sshd")))
	require.NoError(t, os.Symlink(filepath.Join(avail, "gone"), filepath.Join(root, "dangling")))

	l, err := Aggregate(root)
	require.NoError(t, err)
	require.Len(t, l.Services, 2)

	assert.Equal(t, "dangling", l.Services[0].Name)
	assert.Equal(t, status.StateErrored, l.Services[0].State())

	assert.Equal(t, "sshd", l.Services[1].Name)
	assert.Equal(t, status.StateHealthy, l.Services[1].State())
}

func TestAggregate_ByteWiseOrder(t *testing.T) {
	root := t.TempDir()
	for _, n := range []string{"b", "B", "a", "_x"} {
		writeService(t, filepath.Join(root, n), healthy(1))
	}

	l, err := Aggregate(root)
	require.NoError(t, err)

	var names []string
	for _, s := range l.Services {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"B", "_x", "a", "b"}, names)
}

func TestAggregate_EmptyRoot(t *testing.T) {
	l, err := Aggregate(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, l.Services)
	assert.Zero(t, l.MaxNameLen)
}

func TestAggregate_MissingRoot(t *testing.T) {
	_, err := Aggregate(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRootUnlistable), "err=%v", err)
}

func TestAggregate_WrongSizeStatus(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "torn")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "supervise"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, status.StatusFile), make([]byte, 7), 0o644))

	l, err := Aggregate(root)
	require.NoError(t, err)
	require.Len(t, l.Services, 1)
	assert.True(t, errors.Is(l.Services[0].Err, status.ErrWrongSize))
}

func TestAggregate_SentinelCheckFailure(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "odd")
	writeService(t, dir, healthy(5))
	// Stat of notdir/down fails with ENOTDIR, which is not absence.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notdir"), nil, 0o644))

	_, err := normallyUp(filepath.Join(dir, "notdir"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSentinelCheck), "err=%v", err)
}

func TestAggregate_SentinelCheckFailureErrorsEntry(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "loop")
	writeService(t, dir, healthy(5))
	writeService(t, filepath.Join(root, "ok"), healthy(6))

	// A self-referencing down symlink makes stat fail with ELOOP, which is not absence.
	down := filepath.Join(dir, status.DownFile)
	require.NoError(t, os.Symlink(down, down))

	l, err := Aggregate(root)
	require.NoError(t, err)
	require.Len(t, l.Services, 2)

	loop := l.Services[0]
	assert.Equal(t, "loop", loop.Name)
	assert.Nil(t, loop.Record)
	require.Error(t, loop.Err)
	assert.True(t, errors.Is(loop.Err, ErrSentinelCheck), "err=%v", loop.Err)
	assert.Equal(t, status.StateErrored, loop.State())

	ok := l.Services[1]
	assert.NoError(t, ok.Err)
	assert.Equal(t, status.StateHealthy, ok.State())
}
