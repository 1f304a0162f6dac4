package stadium3d

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// PixelFormat is the channel layout of a Texture.
type PixelFormat int

const (
	FormatRGB       PixelFormat = iota // 3 channels
	FormatLuminance                    // 1 channel
	FormatRGBA                         // 4 channels
)

// Channels returns the channel count of the PixelFormat.
func (f PixelFormat) Channels() int {
	switch f {
	case FormatLuminance:
		return 1
	case FormatRGBA:
		return 4
	}
	return 3
}

func (f PixelFormat) String() string {
	switch f {
	case FormatLuminance:
		return "luminance"
	case FormatRGBA:
		return "rgba"
	}
	return "rgb"
}

// formatOf derives a PixelFormat from the color model an image decoded to.
func formatOf(img image.Image) PixelFormat {
	switch img.ColorModel() {
	case color.GrayModel, color.Gray16Model:
		return FormatLuminance
	case color.YCbCrModel, color.CMYKModel:
		return FormatRGB
	}
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return FormatRGB
	}
	return FormatRGBA
}

// Texture is a decoded image, ready to be handed to a MeshSink.
type Texture struct {
	Path   string
	Image  *image.NRGBA // Flipped so that row 0 is the bottom of the picture, matching T = 0 at a surface's base
	Format PixelFormat  // The channel layout of the source file
}

// Size returns the Texture's width and height in pixels.
func (tex *Texture) Size() (int, int) {
	b := tex.Image.Bounds()
	return b.Dx(), b.Dy()
}

// NewTexture creates a Texture from an already decoded image, flipping it vertically.
func NewTexture(path string, img image.Image) *Texture {

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	upright := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(upright, upright.Bounds(), img, bounds.Min, draw.Src)

	flipped := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		copy(flipped.Pix[y*flipped.Stride:y*flipped.Stride+w*4], upright.Pix[(h-1-y)*upright.Stride:(h-1-y)*upright.Stride+w*4])
	}

	return &Texture{
		Path:   path,
		Image:  flipped,
		Format: formatOf(img),
	}

}

// TextureProvider produces Textures from paths.
type TextureProvider interface {
	Load(path string) (*Texture, error)
}

// FileTextureProvider loads Textures from files, relative to Root (if set). PNG, JPEG, GIF, BMP, TIFF and WebP
// files are understood.
type FileTextureProvider struct {
	Root string
}

// Load opens and decodes the given file. Missing or undecodable files return an error wrapping ErrResourceUnavailable.
func (p FileTextureProvider) Load(path string) (*Texture, error) {

	full := path
	if p.Root != "" && !filepath.IsAbs(path) {
		full = filepath.Join(p.Root, path)
	}

	f, err := os.Open(full)
	if err != nil {
		return nil, fmt.Errorf("%w: open texture %q: %w", ErrResourceUnavailable, full, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: decode texture %q: %w", ErrResourceUnavailable, full, err)
	}

	return NewTexture(full, img), nil

}

// TextureSet is the texture bound to each Surface.
type TextureSet map[Surface]*Texture

// TexturePaths names the file to load for each Surface.
type TexturePaths struct {
	Ground  string `toml:"ground" yaml:"ground"`
	Terrace string `toml:"terrace" yaml:"terrace"`
	Wall    string `toml:"wall" yaml:"wall"`
}

// DefaultTexturePaths returns the texture file names the stadium ships with.
func DefaultTexturePaths() TexturePaths {
	return TexturePaths{
		Ground:  "terra.jpeg",
		Terrace: "concreto.jpg",
		Wall:    "concreto_externo.jpg",
	}
}

func (paths TexturePaths) bySurface() map[Surface]string {
	return map[Surface]string{
		SurfaceGround:  paths.Ground,
		SurfaceTerrace: paths.Terrace,
		SurfaceWall:    paths.Wall,
	}
}

// LoadTextureSet loads a Texture for every Surface, failing on the first one that can't be produced.
func LoadTextureSet(provider TextureProvider, paths TexturePaths) (TextureSet, error) {

	set := TextureSet{}
	byPath := paths.bySurface()

	for _, surface := range Surfaces {
		tex, err := provider.Load(byPath[surface])
		if err != nil {
			return nil, fmt.Errorf("%s texture: %w", surface, err)
		}
		set[surface] = tex
	}

	return set, nil

}

// Upright returns a copy of the Texture's image the right way up (row 0 at the top of the picture), which is how
// image files and glTF expect it.
func (tex *Texture) Upright() *image.NRGBA {
	w, h := tex.Size()
	upright := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		copy(upright.Pix[y*upright.Stride:y*upright.Stride+w*4], tex.Image.Pix[(h-1-y)*tex.Image.Stride:(h-1-y)*tex.Image.Stride+w*4])
	}
	return upright
}
