package stadium3d

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func BenchmarkEncodeGLTF(b *testing.B) {

	mesh, err := Build(DefaultLayout())
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := EncodeGLTF(mesh, nil); err != nil {
			b.Fatal(err)
		}
	}

}

func TestGLTFSpaceConversion(t *testing.T) {

	v := NewVector(1, 2, 3)
	assert.Equal(t, [3]float32{1, 3, -2}, toGLTFSpace(v))
	assert.True(t, fromGLTFSpace(toGLTFSpace(v)).Equals(v))

}

func TestEncodeGLTF(t *testing.T) {

	mesh, err := Build(DefaultLayout())
	require.NoError(t, err)

	textures := TextureSet{SurfaceTerrace: NewTexture("terrace", image.NewGray(image.Rect(0, 0, 4, 4)))}

	doc, err := EncodeGLTF(mesh, textures)
	require.NoError(t, err)

	require.Len(t, doc.Meshes, 1)
	assert.Equal(t, "stadium", doc.Meshes[0].Name)
	require.Len(t, doc.Meshes[0].Primitives, len(Surfaces))
	require.Len(t, doc.Materials, len(Surfaces))

	for i, surface := range Surfaces {
		material := doc.Materials[i]
		assert.Equal(t, surface.String(), material.Name)
		assert.True(t, material.DoubleSided)
		assert.Equal(t, SurfaceTint(surface).Floats(), *material.PBRMetallicRoughness.BaseColorFactor)
	}

	// Only the terrace was given a texture.
	require.Len(t, doc.Images, 1)
	require.Len(t, doc.Textures, 1)
	assert.Nil(t, doc.Materials[0].PBRMetallicRoughness.BaseColorTexture)
	assert.NotNil(t, doc.Materials[1].PBRMetallicRoughness.BaseColorTexture)

	require.Len(t, doc.Scenes, 1)
	assert.Equal(t, []int{0}, doc.Scenes[0].Nodes)

	buf := &bytes.Buffer{}
	enc := gltf.NewEncoder(buf)
	enc.AsBinary = true
	require.NoError(t, enc.Encode(doc))

	loaded, err := LoadGLTFData(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, mesh.TriangleCount(), loaded.TriangleCount())

}

func TestGLTFExporterRoundTrip(t *testing.T) {

	mesh, err := Build(DefaultLayout())
	require.NoError(t, err)

	dir := t.TempDir()

	for _, name := range []string{"stadium.glb", filepath.Join("nested", "stadium.gltf")} {

		path := filepath.Join(dir, name)

		require.NoError(t, GLTFExporter{Path: path}.Submit(mesh, nil), name)

		_, err := os.Stat(path)
		require.NoError(t, err, name)

		loaded, err := LoadGLTFFile(path)
		require.NoError(t, err, name)

		assert.Equal(t, mesh.Name, loaded.Name)
		assert.Equal(t, mesh.TriangleCount(), loaded.TriangleCount(), name)

		for _, surface := range Surfaces {
			assert.Len(t, loaded.PrimitivesBySurface(surface), 1, "%s: %s", name, surface)
		}

		// Positions only go through float32, so the bounds come back nearly unchanged.
		for i := range mesh.Dimensions {
			assert.InDelta(t, mesh.Dimensions[i].X, loaded.Dimensions[i].X, 1e-5, name)
			assert.InDelta(t, mesh.Dimensions[i].Y, loaded.Dimensions[i].Y, 1e-5, name)
			assert.InDelta(t, mesh.Dimensions[i].Z, loaded.Dimensions[i].Z, 1e-5, name)
		}

		// UVs are flipped on the way out and back on the way in.
		ground := loaded.PrimitivesBySurface(SurfaceGround)[0]
		hasOrigin := false
		for _, v := range ground.Vertices {
			if v.UV.X == 0 && v.UV.Y == 0 {
				hasOrigin = true
			}
		}
		assert.True(t, hasOrigin, name)

	}

}

func TestLoadGLTFFileMissing(t *testing.T) {
	_, err := LoadGLTFFile(filepath.Join(t.TempDir(), "nothing.glb"))
	assert.Error(t, err)
}
