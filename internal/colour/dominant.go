package colour

import (
	"fmt"
	"image"
	"math"
	"math/rand"
	"sort"
)

// Dominant-colour extraction settings. Sampling and convergence are
// deliberately coarse: anchors only need to land in the right hue
// region, not reproduce the image.
const (
	kmeansMaxIterations = 20
	kmeansConvergence   = 2.0
	kmeansMaxSamples    = 2000
)

// DominantColours extracts the count most dominant colours from an image
// using k-means clustering over sampled pixels, ordered by cluster
// weight (largest first). The result is intended as palette anchors.
func DominantColours(img image.Image, count int) ([]RGB, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if count < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}

	points := samplePixels(img)
	if len(points) == 0 {
		return nil, fmt.Errorf("no pixels found in image")
	}

	// Fewer distinct pixels than requested clusters: return the distinct
	// colours as-is.
	distinct := distinctColours(points)
	if count >= len(distinct) {
		return distinct, nil
	}

	centroids, weights := kmeans(points, count)

	type weighted struct {
		rgb    RGB
		weight float64
	}
	ranked := make([]weighted, len(centroids))
	for i, c := range centroids {
		ranked[i] = weighted{
			rgb: RGB{
				R: clampChannel(c.r),
				G: clampChannel(c.g),
				B: clampChannel(c.b),
			},
			weight: weights[i],
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].weight > ranked[j].weight
	})

	anchors := make([]RGB, len(ranked))
	for i, w := range ranked {
		anchors[i] = w.rgb
	}
	return anchors, nil
}

// point3 is a point in RGB space.
type point3 struct {
	r, g, b float64
}

func (p point3) distance(other point3) float64 {
	dr := p.r - other.r
	dg := p.g - other.g
	db := p.b - other.b
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// samplePixels grid-samples the image down to at most kmeansMaxSamples
// points.
func samplePixels(img image.Image) []point3 {
	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()

	step := 1
	if total > kmeansMaxSamples {
		step = max(int(math.Sqrt(float64(total)/float64(kmeansMaxSamples))), 1)
	}

	points := make([]point3, 0, min(total, kmeansMaxSamples))
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, _ := img.At(x, y).RGBA()
			points = append(points, point3{
				r: float64(r >> 8),
				g: float64(g >> 8),
				b: float64(b >> 8),
			})
			if len(points) >= kmeansMaxSamples {
				return points
			}
		}
	}
	return points
}

// distinctColours returns the unique quantized colours among the points.
func distinctColours(points []point3) []RGB {
	seen := make(map[RGB]bool)
	out := make([]RGB, 0)
	for _, p := range points {
		rgb := RGB{R: clampChannel(p.r), G: clampChannel(p.g), B: clampChannel(p.b)}
		if !seen[rgb] {
			seen[rgb] = true
			out = append(out, rgb)
		}
	}
	return out
}

// kmeans clusters the points into k groups and returns the centroids
// with their normalized cluster weights.
func kmeans(points []point3, k int) ([]point3, []float64) {
	centroids := initCentroids(points, k)
	assignments := make([]int, len(points))

	for iter := 0; iter < kmeansMaxIterations; iter++ {
		changed := 0
		for i, p := range points {
			nearest := nearestCentroid(p, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}

		// Under 1% reassignment counts as converged.
		if float64(changed)/float64(len(points)) < 0.01 {
			break
		}

		next := recalcCentroids(points, assignments, k)

		movement := 0.0
		for i := range centroids {
			movement += centroids[i].distance(next[i])
		}
		centroids = next

		if movement/float64(k) < kmeansConvergence {
			break
		}
	}

	weights := make([]float64, k)
	for _, a := range assignments {
		weights[a]++
	}
	for i := range weights {
		weights[i] /= float64(len(assignments))
	}

	return centroids, weights
}

// initCentroids seeds the clusters with k-means++ (each new centroid is
// picked with probability proportional to its squared distance from the
// nearest existing centroid).
func initCentroids(points []point3, k int) []point3 {
	centroids := make([]point3, 0, k)
	centroids = append(centroids, points[rand.Intn(len(points))])

	for len(centroids) < k {
		distances := make([]float64, len(points))
		total := 0.0
		for i, p := range points {
			minDist := math.MaxFloat64
			for _, c := range centroids {
				if d := p.distance(c); d < minDist {
					minDist = d
				}
			}
			distances[i] = minDist * minDist
			total += distances[i]
		}

		if total == 0 {
			// Remaining points coincide with existing centroids; perturb
			// the last one to keep the cluster count.
			last := centroids[len(centroids)-1]
			centroids = append(centroids, point3{r: last.r + 0.1, g: last.g + 0.1, b: last.b + 0.1})
			continue
		}

		target := rand.Float64() * total
		cumulative := 0.0
		for i, d := range distances {
			cumulative += d
			if cumulative >= target {
				centroids = append(centroids, points[i])
				break
			}
		}
	}

	return centroids
}

func nearestCentroid(p point3, centroids []point3) int {
	minDist := math.MaxFloat64
	nearest := 0
	for i, c := range centroids {
		if d := p.distance(c); d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest
}

func recalcCentroids(points []point3, assignments []int, k int) []point3 {
	sums := make([]point3, k)
	counts := make([]int, k)
	for i, p := range points {
		c := assignments[i]
		sums[c].r += p.r
		sums[c].g += p.g
		sums[c].b += p.b
		counts[c]++
	}

	centroids := make([]point3, k)
	for i := 0; i < k; i++ {
		if counts[i] > 0 {
			centroids[i] = point3{
				r: sums[i].r / float64(counts[i]),
				g: sums[i].g / float64(counts[i]),
				b: sums[i].b / float64(counts[i]),
			}
		} else {
			centroids[i] = points[rand.Intn(len(points))]
		}
	}
	return centroids
}
