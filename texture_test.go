package stadium3d

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writePNG saves img to dir/name and returns the full path.
func writePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

// gradient is 2 pixels wide and 3 tall: red on the top row, green in the middle, blue at the bottom.
func gradient(alpha uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 3))
	rows := []color.NRGBA{{255, 0, 0, alpha}, {0, 255, 0, alpha}, {0, 0, 255, alpha}}
	for y, c := range rows {
		for x := 0; x < 2; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestTextureFormats(t *testing.T) {

	dir := t.TempDir()

	gray := image.NewGray(image.Rect(0, 0, 4, 4))

	cases := map[string]struct {
		img    image.Image
		format PixelFormat
	}{
		"opaque.png":      {gradient(255), FormatRGB},
		"translucent.png": {gradient(128), FormatRGBA},
		"gray.png":        {gray, FormatLuminance},
	}

	provider := FileTextureProvider{Root: dir}

	for name, c := range cases {
		writePNG(t, dir, name, c.img)
		tex, err := provider.Load(name)
		require.NoError(t, err, name)
		assert.Equal(t, c.format, tex.Format, name)
		assert.Equal(t, filepath.Join(dir, name), tex.Path)
	}

	assert.Equal(t, 1, FormatLuminance.Channels())
	assert.Equal(t, 3, FormatRGB.Channels())
	assert.Equal(t, 4, FormatRGBA.Channels())

}

func TestTextureFlipped(t *testing.T) {

	tex := NewTexture("mem", gradient(255))

	w, h := tex.Size()
	assert.Equal(t, 2, w)
	assert.Equal(t, 3, h)

	// Row 0 holds the bottom of the picture.
	assert.Equal(t, color.NRGBA{0, 0, 255, 255}, tex.Image.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{0, 255, 0, 255}, tex.Image.NRGBAAt(1, 1))
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, tex.Image.NRGBAAt(1, 2))

	upright := tex.Upright()
	assert.Equal(t, gradient(255).Pix, upright.Pix)

}

func TestTextureUnavailable(t *testing.T) {

	dir := t.TempDir()
	provider := FileTextureProvider{Root: dir}

	_, err := provider.Load("missing.png")
	assert.ErrorIs(t, err, ErrResourceUnavailable)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "garbage.png"), []byte("not a picture"), 0o644))
	_, err = provider.Load("garbage.png")
	assert.ErrorIs(t, err, ErrResourceUnavailable)

}

func TestLoadTextureSet(t *testing.T) {

	dir := t.TempDir()
	paths := TexturePaths{Ground: "ground.png", Terrace: "terrace.png", Wall: "wall.png"}

	writePNG(t, dir, paths.Ground, gradient(255))
	writePNG(t, dir, paths.Terrace, gradient(255))

	_, err := LoadTextureSet(FileTextureProvider{Root: dir}, paths)
	assert.ErrorIs(t, err, ErrResourceUnavailable)
	assert.ErrorContains(t, err, "wall")

	writePNG(t, dir, paths.Wall, image.NewGray(image.Rect(0, 0, 8, 8)))

	set, err := LoadTextureSet(FileTextureProvider{Root: dir}, paths)
	require.NoError(t, err)
	require.Len(t, set, len(Surfaces))
	assert.Equal(t, FormatLuminance, set[SurfaceWall].Format)
	assert.Equal(t, FormatRGB, set[SurfaceGround].Format)

}
