package asset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/achilleasa/vega/geometry"
	"github.com/achilleasa/vega/types"
)

// Triangular face referencing the mesh vertex buffers.
type face struct {
	positionIndices [3]int
	normalIndices   [3]int
	texCoordIndices [3]int
}

// Mesh is an immutable triangle soup with per-vertex normals and an eagerly
// built bounding volume hierarchy over the triangle bounds.
type Mesh struct {
	vertexPositions []types.Vec3
	vertexNormals   []types.Vec3
	vertexTexCoords []types.Vec2
	faces           []face
	bvh             *geometry.Bvh
}

// Load a mesh from a wavefront obj file.
func LoadMesh(path string, bvhMaxChildren, bvhMaxDepth int) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	mesh, err := ReadMesh(f, bvhMaxChildren, bvhMaxDepth)
	if err != nil {
		return nil, fmt.Errorf("%s: %s", path, err)
	}
	return mesh, nil
}

// Read a mesh in wavefront obj format. Supported statements are v, vn, vt
// and triangular f entries; everything else is skipped. Face vertices may be
// given as "pos", "pos/tex", "pos//norm" or "pos/tex/norm" with 1-based
// indices.
func ReadMesh(r io.Reader, bvhMaxChildren, bvhMaxDepth int) (*Mesh, error) {
	mesh := &Mesh{}

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}

		var err error
		switch tokens[0] {
		case "v":
			err = mesh.parseVertex(tokens[1:])
		case "vn":
			err = mesh.parseNormal(tokens[1:])
		case "vt":
			err = mesh.parseTexCoord(tokens[1:])
		case "f":
			err = mesh.parseFace(tokens[1:])
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %s", lineNum, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(mesh.faces) == 0 {
		return nil, fmt.Errorf("mesh defines no faces")
	}

	mesh.bvh = geometry.NewBvhBuilder().Build(mesh, bvhMaxChildren, bvhMaxDepth)
	return mesh, nil
}

func (m *Mesh) parseVertex(tokens []string) error {
	v, err := parseVec3(tokens)
	if err != nil {
		return fmt.Errorf("invalid vertex: %s", err)
	}
	m.vertexPositions = append(m.vertexPositions, v)
	return nil
}

func (m *Mesh) parseNormal(tokens []string) error {
	v, err := parseVec3(tokens)
	if err != nil {
		return fmt.Errorf("invalid normal: %s", err)
	}
	m.vertexNormals = append(m.vertexNormals, v.Normalize())
	return nil
}

func (m *Mesh) parseTexCoord(tokens []string) error {
	if len(tokens) < 2 {
		return fmt.Errorf("invalid texture coordinate: expected 2 components; got %d", len(tokens))
	}
	u, err := strconv.ParseFloat(tokens[0], 64)
	if err != nil {
		return err
	}
	v, err := strconv.ParseFloat(tokens[1], 64)
	if err != nil {
		return err
	}
	m.vertexTexCoords = append(m.vertexTexCoords, types.Vec2{u, v})
	return nil
}

func (m *Mesh) parseFace(tokens []string) error {
	if len(tokens) != 3 {
		return fmt.Errorf("only triangular faces are supported; got %d vertices", len(tokens))
	}

	var f face
	for i, token := range tokens {
		indices := strings.Split(token, "/")

		posIndex, err := m.resolveIndex(indices[0], len(m.vertexPositions))
		if err != nil {
			return fmt.Errorf("invalid face position index %q: %s", token, err)
		}
		f.positionIndices[i] = posIndex

		// Without explicit normals the face falls back to indexing the
		// position entry; meshes exported without vn statements get
		// their normals synthesized below.
		f.normalIndices[i] = posIndex
		if len(indices) == 3 && indices[2] != "" {
			normIndex, err := m.resolveIndex(indices[2], len(m.vertexNormals))
			if err != nil {
				return fmt.Errorf("invalid face normal index %q: %s", token, err)
			}
			f.normalIndices[i] = normIndex
		}

		if len(indices) >= 2 && indices[1] != "" {
			texIndex, err := m.resolveIndex(indices[1], len(m.vertexTexCoords))
			if err != nil {
				return fmt.Errorf("invalid face texture index %q: %s", token, err)
			}
			f.texCoordIndices[i] = texIndex
		}
	}

	m.faces = append(m.faces, f)
	return nil
}

func parseVec3(tokens []string) (types.Vec3, error) {
	if len(tokens) < 3 {
		return types.Vec3{}, fmt.Errorf("expected 3 components; got %d", len(tokens))
	}

	var v types.Vec3
	for i := 0; i < 3; i++ {
		value, err := strconv.ParseFloat(tokens[i], 64)
		if err != nil {
			return types.Vec3{}, err
		}
		v[i] = value
	}
	return v, nil
}

func (m *Mesh) resolveIndex(token string, limit int) (int, error) {
	index, err := strconv.Atoi(token)
	if err != nil {
		return 0, err
	}
	if index < 1 || index > limit {
		return 0, fmt.Errorf("index %d out of range [1, %d]", index, limit)
	}
	return index - 1, nil
}

// Get the number of triangles; part of the geometry.AabbSet interface.
func (m *Mesh) Len() int {
	return len(m.faces)
}

// Get the bounding box of a single triangle; part of the geometry.AabbSet
// interface.
func (m *Mesh) IndexedAabb(index int) geometry.Aabb {
	tri := m.Triangle(index)
	return tri.Aabb()
}

// Assemble the triangle for a face index from the vertex buffers.
func (m *Mesh) Triangle(index int) geometry.Triangle {
	f := m.faces[index]

	var normals [3]types.Vec3
	if len(m.vertexNormals) > 0 {
		normals = [3]types.Vec3{
			m.vertexNormals[f.normalIndices[0]],
			m.vertexNormals[f.normalIndices[1]],
			m.vertexNormals[f.normalIndices[2]],
		}
	} else {
		// Flat shading fallback for meshes without vertex normals.
		flat := flatNormal(
			m.vertexPositions[f.positionIndices[0]],
			m.vertexPositions[f.positionIndices[1]],
			m.vertexPositions[f.positionIndices[2]],
		)
		normals = [3]types.Vec3{flat, flat, flat}
	}

	var texCoords [3]types.Vec2
	if len(m.vertexTexCoords) > 0 {
		texCoords = [3]types.Vec2{
			m.vertexTexCoords[f.texCoordIndices[0]],
			m.vertexTexCoords[f.texCoordIndices[1]],
			m.vertexTexCoords[f.texCoordIndices[2]],
		}
	}

	return geometry.NewTriangle(
		[3]types.Vec3{
			m.vertexPositions[f.positionIndices[0]],
			m.vertexPositions[f.positionIndices[1]],
			m.vertexPositions[f.positionIndices[2]],
		},
		normals,
		texCoords,
	)
}

func flatNormal(v0, v1, v2 types.Vec3) types.Vec3 {
	return v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
}

// Get the bounding box enclosing the whole mesh.
func (m *Mesh) Aabb() geometry.Aabb {
	return m.bvh.Aabb()
}

// Iterate the vertex positions of every face. Entities use this to compute
// their world-space bounds under a transformation.
func (m *Mesh) EachFaceVertex(fn func(position types.Vec3)) {
	for _, f := range m.faces {
		for _, index := range f.positionIndices {
			fn(m.vertexPositions[index])
		}
	}
}

// Test for an intersection with a ray in mesh-local space.
func (m *Mesh) RayIntersect(ray *geometry.Ray) bool {
	for _, candidate := range m.bvh.RayIntersections(ray, m) {
		tri := m.Triangle(candidate.Index)
		if tri.RayIntersect(ray) {
			return true
		}
	}
	return false
}

// Test for an intersection with a ray, returning the distance to the nearest
// intersection point. Every BVH candidate is tested exactly: box entry order
// does not guarantee hit order when bounds overlap.
func (m *Mesh) RayIntersectDistance(ray *geometry.Ray) (float64, bool) {
	nearest := 0.0
	found := false
	for _, candidate := range m.bvh.RayIntersections(ray, m) {
		tri := m.Triangle(candidate.Index)
		if distance, ok := tri.RayIntersectDistance(ray); ok && (!found || distance < nearest) {
			nearest = distance
			found = true
		}
	}
	return nearest, found
}

// Test for an intersection with a ray, returning the distance, flat normal
// and smoothed normal of the nearest intersection point.
func (m *Mesh) RayIntersectDistanceNormals(ray *geometry.Ray) (float64, types.Vec3, types.Vec3, bool) {
	var nearest float64
	var normal, smoothNormal types.Vec3
	found := false
	for _, candidate := range m.bvh.RayIntersections(ray, m) {
		tri := m.Triangle(candidate.Index)
		distance, flat, smooth, ok := tri.RayIntersectDistanceNormals(ray)
		if ok && (!found || distance < nearest) {
			nearest = distance
			normal = flat
			smoothNormal = smooth
			found = true
		}
	}
	return nearest, normal, smoothNormal, found
}
