// Package analysis computes summary statistics of a cube scene.
package analysis

import (
	"fmt"
	"sort"

	"github.com/philipparndt/gocube/pkg/geometry"
	"github.com/philipparndt/gocube/pkg/scene"
	"github.com/philipparndt/gocube/pkg/stl"
)

// CubeInfo describes one cube of the scene
type CubeInfo struct {
	Index    int
	Position geometry.Vector3
	Volume   float64
	Material string
}

// SceneStats summarizes a scene
type SceneStats struct {
	CubeCount     int
	TriangleCount int
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	Volume        float64 // sum of the cube volumes, overlaps counted twice
	SurfaceArea   float64
	Materials     map[string]int
	Cubes         []CubeInfo
}

// AnalyzeScene tessellates the objects and collects their statistics
func AnalyzeScene(objects []scene.Object) *SceneStats {
	model := stl.FromObjects("", objects)

	result := &SceneStats{
		CubeCount:     len(objects),
		TriangleCount: model.TriangleCount(),
		BoundingBox:   model.BoundingBox(),
		SurfaceArea:   model.SurfaceArea(),
		Materials:     make(map[string]int),
		Cubes:         make([]CubeInfo, 0, len(objects)),
	}
	if !result.BoundingBox.Empty() {
		result.Dimensions = result.BoundingBox.Size()
	}

	for i, obj := range objects {
		volume := obj.Scale.X * obj.Scale.Y * obj.Scale.Z
		result.Volume += volume
		if obj.Material != "" {
			result.Materials[obj.Material]++
		}
		result.Cubes = append(result.Cubes, CubeInfo{
			Index:    i,
			Position: obj.Position,
			Volume:   volume,
			Material: obj.Material,
		})
	}

	return result
}

// AnalyzeRecords is AnalyzeScene for persisted records
func AnalyzeRecords(records []scene.Record) *SceneStats {
	objects := make([]scene.Object, len(records))
	for i, r := range records {
		objects[i] = r.Object()
	}
	return AnalyzeScene(objects)
}

// LargestCubes returns the count cubes with the largest volume
func LargestCubes(result *SceneStats, count int) []CubeInfo {
	cubes := make([]CubeInfo, len(result.Cubes))
	copy(cubes, result.Cubes)

	sort.SliceStable(cubes, func(i, j int) bool {
		return cubes[i].Volume > cubes[j].Volume
	})

	if count > len(cubes) {
		count = len(cubes)
	}
	return cubes[:count]
}

// SortedMaterials returns the material references in lexical order
func SortedMaterials(result *SceneStats) []string {
	names := make([]string, 0, len(result.Materials))
	for name := range result.Materials {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
