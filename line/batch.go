package line

import (
	"fmt"
	"runtime"

	polyclip "github.com/akavel/polyclip-go"
	"golang.org/x/sync/errgroup"
)

// BuildAll builds independent lines concurrently, using at most workers
// goroutines (workers < 1 selects GOMAXPROCS). Results are in the order of
// specs. If any line fails, BuildAll returns the first error and no results.
func BuildAll(specs []Spec, workers int) ([]Result, error) {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	results := make([]Result, len(specs))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, spec := range specs {
		i, spec := i, spec // per-iteration copies (pre-Go 1.22 loop semantics)
		g.Go(func() error {
			res, err := Build(spec)
			if err != nil {
				return fmt.Errorf("line %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Bounds returns the bounding box of all lines, e.g. for the renderer's axis
// limits. It returns the zero rectangle for no lines.
func Bounds(results []Result) polyclip.Rectangle {
	var poly polyclip.Polygon
	for _, r := range results {
		if r.Line.N() > 0 {
			poly.Add(r.Line.Contour())
		}
	}
	if len(poly) == 0 {
		return polyclip.Rectangle{}
	}
	return poly.BoundingBox()
}
