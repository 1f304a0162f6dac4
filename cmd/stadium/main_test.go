package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/solarlune/stadium3d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptions(t *testing.T) {

	opt, err := parseOptions(nil)
	require.NoError(t, err)
	assert.Equal(t, options{textures: ".", view: true}, opt)

	opt, err = parseOptions([]string{"-config", "stadium.yaml", "-export", "out.glb", "-view=false", "-v"})
	require.NoError(t, err)
	assert.Equal(t, "stadium.yaml", opt.config)
	assert.Equal(t, "out.glb", opt.export)
	assert.False(t, opt.view)
	assert.True(t, opt.verbose)

	_, err = parseOptions([]string{"-nonsense"})
	assert.Error(t, err)
	assert.Equal(t, 2, usageExitCode(err))

	_, err = parseOptions([]string{"-h"})
	assert.ErrorIs(t, err, flag.ErrHelp)
	assert.Equal(t, 0, usageExitCode(err))

	_, err = parseOptions([]string{"-watch"})
	assert.ErrorContains(t, err, "-config")

	home, err := homedir.Dir()
	require.NoError(t, err)
	opt, err = parseOptions([]string{"-config", "~/stadium.toml", "-watch"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "stadium.toml"), opt.config)
	assert.True(t, opt.watch)

}

func TestRunHeadless(t *testing.T) {

	dir := t.TempDir()

	paths := stadium3d.DefaultTexturePaths()
	for _, name := range []string{paths.Ground, paths.Terrace, paths.Wall} {
		buf := &bytes.Buffer{}
		require.NoError(t, png.Encode(buf, image.NewGray(image.Rect(0, 0, 2, 2))))
		// The decoder goes by content, not by extension.
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), buf.Bytes(), 0o644))
	}

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logs, nil))

	opt := options{
		textures: dir,
		export:   filepath.Join(dir, "out", "stadium.glb"),
		dump:     filepath.Join(dir, "stadium.toml"),
	}

	require.NoError(t, run(opt, logger))

	mesh, err := stadium3d.LoadGLTFFile(opt.export)
	require.NoError(t, err)
	assert.NotZero(t, mesh.TriangleCount())

	cfg, err := stadium3d.LoadConfigFile(opt.dump)
	require.NoError(t, err)
	assert.Equal(t, stadium3d.DefaultConfig(), cfg)

	assert.Contains(t, logs.String(), "stadium exported")
	built, err := stadium3d.Build(stadium3d.DefaultLayout())
	require.NoError(t, err)
	assert.Contains(t, logs.String(), fmt.Sprintf("extent=%v", built.Dimensions.Max()))

	// Missing textures stop the run before anything is exported.
	opt.textures = t.TempDir()
	opt.export = filepath.Join(opt.textures, "never.glb")
	assert.ErrorIs(t, run(opt, logger), stadium3d.ErrResourceUnavailable)
	_, err = os.Stat(opt.export)
	assert.True(t, os.IsNotExist(err))

}
