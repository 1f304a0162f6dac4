package stadium3d

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// glTF is +Y up; stadium space is +Z up. Converting swaps the axes such that stadium +Z is glTF +Y and stadium +Y is glTF -Z.
func toGLTFSpace(v Vector) [3]float32 {
	return NewVector(v.X, v.Z, -v.Y).Floats()
}

func fromGLTFSpace(v [3]float32) Vector {
	return NewVector(float64(v[0]), -float64(v[2]), float64(v[1]))
}

// GLTFExporter is a MeshSink that writes the Mesh to a .gltf or .glb file. Each Surface becomes one glTF primitive with
// its own material; textures are embedded.
type GLTFExporter struct {
	Path string // Destination file; a .glb extension writes the binary container, anything else writes JSON
}

// Submit encodes the Mesh and writes it to the exporter's Path.
func (exporter GLTFExporter) Submit(mesh *Mesh, textures TextureSet) error {

	doc, err := EncodeGLTF(mesh, textures)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(exporter.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	if strings.EqualFold(filepath.Ext(exporter.Path), ".glb") {
		return gltf.SaveBinary(doc, exporter.Path)
	}

	// A .gltf file carries no binary chunk, so the geometry goes inline.
	for _, b := range doc.Buffers {
		if b.URI == "" {
			b.EmbeddedResource()
		}
	}

	return gltf.Save(doc, exporter.Path)

}

// EncodeGLTF converts a Mesh into a glTF document. Strips and quads are expanded into indexed triangle lists, one glTF
// primitive per Surface that has any geometry. textures may be nil or partial; Surfaces without a Texture get an
// untextured material carrying just their tint.
func EncodeGLTF(mesh *Mesh, textures TextureSet) (*gltf.Document, error) {

	doc := gltf.NewDocument()

	gltfMesh := &gltf.Mesh{Name: mesh.Name}

	for _, surface := range Surfaces {

		prims := mesh.PrimitivesBySurface(surface)
		if len(prims) == 0 {
			continue
		}

		positions := [][3]float32{}
		normals := [][3]float32{}
		uvs := [][2]float32{}
		indices := []uint32{}

		for _, p := range prims {

			offset := uint32(len(positions))

			for _, v := range p.Vertices {
				positions = append(positions, toGLTFSpace(v.Position))
				normals = append(normals, toGLTFSpace(v.Normal))
				// glTF's V runs downwards from the top of the image; T runs upwards from its bottom.
				uvs = append(uvs, [2]float32{float32(v.UV.X), float32(1 - v.UV.Y)})
			}

			for _, tri := range p.Triangles() {
				indices = append(indices, offset+uint32(tri[0]), offset+uint32(tri[1]), offset+uint32(tri[2]))
			}

		}

		material, err := encodeMaterial(doc, surface, textures[surface])
		if err != nil {
			return nil, err
		}

		gltfMesh.Primitives = append(gltfMesh.Primitives, &gltf.Primitive{
			Indices: gltf.Index(modeler.WriteIndices(doc, indices)),
			Attributes: map[string]int{
				gltf.POSITION:   modeler.WritePosition(doc, positions),
				gltf.NORMAL:     modeler.WriteNormal(doc, normals),
				gltf.TEXCOORD_0: modeler.WriteTextureCoord(doc, uvs),
			},
			Material: gltf.Index(material),
		})

	}

	doc.Meshes = append(doc.Meshes, gltfMesh)
	doc.Nodes = append(doc.Nodes, &gltf.Node{Name: mesh.Name, Mesh: gltf.Index(len(doc.Meshes) - 1)})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)

	return doc, nil

}

func encodeMaterial(doc *gltf.Document, surface Surface, tex *Texture) (int, error) {

	material := &gltf.Material{
		Name:        surface.String(),
		DoubleSided: true,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float64{},
			MetallicFactor:  gltf.Float(0),
			RoughnessFactor: gltf.Float(1),
		},
	}
	*material.PBRMetallicRoughness.BaseColorFactor = SurfaceTint(surface).Floats()

	if tex != nil {

		buf := &bytes.Buffer{}
		if err := png.Encode(buf, tex.Upright()); err != nil {
			return 0, fmt.Errorf("encode %s texture: %w", surface, err)
		}

		img, err := modeler.WriteImage(doc, surface.String()+".png", "image/png", buf)
		if err != nil {
			return 0, fmt.Errorf("embed %s texture: %w", surface, err)
		}

		doc.Samplers = append(doc.Samplers, &gltf.Sampler{WrapS: gltf.WrapRepeat, WrapT: gltf.WrapRepeat})
		doc.Textures = append(doc.Textures, &gltf.Texture{
			Sampler: gltf.Index(len(doc.Samplers) - 1),
			Source:  gltf.Index(img),
		})

		material.PBRMetallicRoughness.BaseColorTexture = &gltf.TextureInfo{Index: len(doc.Textures) - 1}

	}

	doc.Materials = append(doc.Materials, material)
	return len(doc.Materials) - 1, nil

}

// LoadGLTFFile loads a .gltf or .glb file from the filepath given; see LoadGLTFData.
func LoadGLTFFile(path string) (*Mesh, error) {

	fileData, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	return LoadGLTFData(fileData)

}

// LoadGLTFData reads every mesh primitive of a glTF document back into a single Mesh of triangle lists. Primitives
// whose material is named after a Surface are given that Surface; the rest are treated as walls. This is mainly for
// checking exports, so nodes, transforms and textures are ignored.
func LoadGLTFData(data []byte) (*Mesh, error) {

	decoder := gltf.NewDecoder(bytes.NewReader(data))

	doc := gltf.NewDocument()

	if err := decoder.Decode(doc); err != nil {
		return nil, err
	}

	surfaceByName := map[string]Surface{}
	for _, s := range Surfaces {
		surfaceByName[s.String()] = s
	}

	out := NewMesh("")

	for _, mesh := range doc.Meshes {

		if out.Name == "" {
			out.Name = mesh.Name
		}

		for pi, v := range mesh.Primitives {

			posBuffer := [][3]float32{}
			vertPos, err := modeler.ReadPosition(doc, doc.Accessors[v.Attributes[gltf.POSITION]], posBuffer)
			if err != nil {
				return nil, err
			}

			verts := make([]Vertex, len(vertPos))
			for i, p := range vertPos {
				verts[i].Position = fromGLTFSpace(p)
			}

			if texCoordAccessor, texCoordExists := v.Attributes[gltf.TEXCOORD_0]; texCoordExists {
				uvBuffer := [][2]float32{}
				texCoords, err := modeler.ReadTextureCoord(doc, doc.Accessors[texCoordAccessor], uvBuffer)
				if err != nil {
					return nil, err
				}
				for i, uv := range texCoords {
					verts[i].UV = NewVector2(float64(uv[0]), 1-float64(uv[1]))
				}
			}

			if normalAccessor, normalExists := v.Attributes[gltf.NORMAL]; normalExists {
				normalBuffer := [][3]float32{}
				normals, err := modeler.ReadNormal(doc, doc.Accessors[normalAccessor], normalBuffer)
				if err != nil {
					return nil, err
				}
				for i, n := range normals {
					verts[i].Normal = fromGLTFSpace(n)
				}
			}

			if v.Indices == nil {
				return nil, fmt.Errorf("mesh %q primitive %d has no indices", mesh.Name, pi)
			}

			indexBuffer := []uint32{}
			indices, err := modeler.ReadIndices(doc, doc.Accessors[*v.Indices], indexBuffer)
			if err != nil {
				return nil, err
			}

			surface := SurfaceWall
			if v.Material != nil {
				if s, ok := surfaceByName[doc.Materials[*v.Material].Name]; ok {
					surface = s
				}
			}

			triVerts := make([]Vertex, 0, len(indices))
			for _, index := range indices {
				triVerts = append(triVerts, verts[index])
			}

			if len(triVerts) > 0 {
				out.Add(NewTriangles(fmt.Sprintf("%s/%d", mesh.Name, pi), surface, triVerts...))
			}

		}

	}

	out.UpdateBounds()

	return out, nil

}
