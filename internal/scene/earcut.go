package scene

import (
	"fmt"

	"github.com/rclancey/earcut"

	"github.com/irfansharif/tinted/internal/geom"
)

// earClip triangulates a simple polygon using the earcut algorithm and
// returns its triangles.
func earClip(polygonPoints []geom.Point) ([][3]geom.Point, error) {
	if len(polygonPoints) < 3 {
		return nil, fmt.Errorf("degenerate polygon (%d vertices < 3)", len(polygonPoints))
	}

	// Format: [x0, y0, x1, y1, ..., xn, yn]
	vertexCoords := make([]float64, len(polygonPoints)*2)
	for i, point := range polygonPoints {
		vertexCoords[i*2] = point.X
		vertexCoords[i*2+1] = point.Y
	}

	triangleIndices, err := earcut.Earcut(vertexCoords, nil /* holeIndices */, 2 /* dim */)
	if err != nil {
		return nil, fmt.Errorf("triangulation failed for %d-vertex polygon: %w", len(polygonPoints), err)
	}
	if len(triangleIndices)%3 != 0 {
		return nil, fmt.Errorf("invalid triangle count (indices: %d, not divisible by 3)", len(triangleIndices))
	}

	vertex := func(i int) geom.Point {
		return geom.Point{X: vertexCoords[i*2], Y: vertexCoords[i*2+1]}
	}
	triangles := make([][3]geom.Point, len(triangleIndices)/3)
	for t := range triangles {
		base := t * 3
		triangles[t] = [3]geom.Point{
			vertex(triangleIndices[base]),
			vertex(triangleIndices[base+1]),
			vertex(triangleIndices[base+2]),
		}
	}
	return triangles, nil
}
