// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/audmix"
	"github.com/ik5/audmix/formats/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeClick(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "click.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	samples := make([]float32, 2*800)
	samples[0], samples[1] = 1, 1
	require.NoError(t, wav.Encode(f, 8000, 2, samples))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestRender_WritesMixdown(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := writeClick(t, dir)
	out := filepath.Join(dir, "out.wav")

	cfg := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("sample_rate: 8000\nblock_size: 256\n"), 0o600))

	stdout, err := execute(t, "render", "--config", cfg, "--delay", "0.25", "--feedback", "0.5", "--cutoff", "2000", "--tail", "1s", "-o", out, in)
	require.NoError(t, err)
	assert.Contains(t, stdout, "wrote "+out+": 1 sounds")

	mix, err := audmix.LoadSound(out)
	require.NoError(t, err)
	assert.Equal(t, uint32(8000), mix.SampleRate())
	// the click lasts 0.1s, then one more block and the tail
	assert.GreaterOrEqual(t, mix.Duration().Seconds(), 1.1)
}

func TestRender_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := execute(t, "render")
	assert.Error(t, err)

	_, err = execute(t, "render", "-o", filepath.Join(dir, "out.wav"), filepath.Join(dir, "missing.wav"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = execute(t, "render", "--config", filepath.Join(dir, "missing.yaml"), writeClick(t, dir))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPlay_UnknownBackend(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := execute(t, "play", "--backend", "carrier-pigeon", writeClick(t, dir))
	assert.ErrorContains(t, err, "unknown backend")
}
