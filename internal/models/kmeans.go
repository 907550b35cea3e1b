package models

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// silhouetteSampleCap bounds the pairwise-distance work for the silhouette
// score, which is quadratic in the number of points.
const silhouetteSampleCap = 2000

// KMeansResult holds the clustering outcome and its quality metrics
type KMeansResult struct {
	K             int         `json:"k"`
	Labels        []int       `json:"-"`
	Sizes         []int       `json:"sizes"`
	Centroids     [][]float64 `json:"centroids"` // scaled space
	ClusterMeans  [][]float64 `json:"cluster_means"` // original units, per feature
	Inertia       float64     `json:"inertia"`
	Silhouette    float64     `json:"silhouette"`
	DaviesBouldin float64     `json:"davies_bouldin"`
}

// ElbowPoint records the inertia observed for one candidate k
type ElbowPoint struct {
	K       int     `json:"k"`
	Inertia float64 `json:"inertia"`
}

// KMeans clusters the scaled feature matrix with Lloyd's algorithm and
// k-means++ seeding, keeping the best of nInit restarts by inertia.
func KMeans(scaled *mat.Dense, k, nInit, maxIter int, rng *rand.Rand) (KMeansResult, error) {
	n, _ := scaled.Dims()
	if k < 1 || k > n {
		return KMeansResult{}, fmt.Errorf("invalid cluster count %d for %d points", k, n)
	}
	if nInit < 1 {
		nInit = 1
	}

	best := KMeansResult{Inertia: math.Inf(1)}
	for run := 0; run < nInit; run++ {
		centroids := seedCentroids(scaled, k, rng)
		labels, inertia := lloyd(scaled, centroids, maxIter)
		if inertia < best.Inertia {
			best = KMeansResult{
				K:         k,
				Labels:    labels,
				Centroids: centroids,
				Inertia:   inertia,
			}
		}
	}

	best.Sizes = make([]int, k)
	for _, label := range best.Labels {
		best.Sizes[label]++
	}
	best.Silhouette = silhouette(scaled, best.Labels, k, rng)
	best.DaviesBouldin = daviesBouldin(scaled, best.Labels, best.Centroids)
	return best, nil
}

// Elbow runs the inertia sweep for k = 1..maxK
func Elbow(scaled *mat.Dense, maxK, nInit, maxIter int, rng *rand.Rand) []ElbowPoint {
	n, _ := scaled.Dims()
	points := make([]ElbowPoint, 0, maxK)
	for k := 1; k <= maxK && k <= n; k++ {
		best := math.Inf(1)
		for run := 0; run < nInit; run++ {
			centroids := seedCentroids(scaled, k, rng)
			_, inertia := lloyd(scaled, centroids, maxIter)
			if inertia < best {
				best = inertia
			}
		}
		points = append(points, ElbowPoint{K: k, Inertia: best})
	}
	return points
}

// seedCentroids picks initial centroids with the k-means++ strategy:
// each subsequent centroid is sampled proportionally to its squared
// distance from the nearest already-chosen one.
func seedCentroids(m *mat.Dense, k int, rng *rand.Rand) [][]float64 {
	n, cols := m.Dims()

	centroids := make([][]float64, 0, k)
	first := make([]float64, cols)
	copy(first, m.RawRowView(rng.Intn(n)))
	centroids = append(centroids, first)

	dist2 := make([]float64, n)
	for len(centroids) < k {
		var total float64
		for i := 0; i < n; i++ {
			d := nearestDistance(m.RawRowView(i), centroids)
			dist2[i] = d * d
			total += dist2[i]
		}

		target := rng.Float64() * total
		chosen := n - 1
		var cum float64
		for i := 0; i < n; i++ {
			cum += dist2[i]
			if cum >= target {
				chosen = i
				break
			}
		}

		next := make([]float64, cols)
		copy(next, m.RawRowView(chosen))
		centroids = append(centroids, next)
	}
	return centroids
}

// lloyd iterates assignment and centroid update until convergence or the
// iteration cap, returning final labels and inertia.
func lloyd(m *mat.Dense, centroids [][]float64, maxIter int) ([]int, float64) {
	n, cols := m.Dims()
	k := len(centroids)
	labels := make([]int, n)

	var inertia float64
	for iter := 0; iter < maxIter; iter++ {
		changed := false
		inertia = 0
		for i := 0; i < n; i++ {
			row := m.RawRowView(i)
			bestLabel, bestDist := 0, math.Inf(1)
			for c := 0; c < k; c++ {
				if d := floats.Distance(row, centroids[c], 2); d < bestDist {
					bestLabel, bestDist = c, d
				}
			}
			if labels[i] != bestLabel {
				labels[i] = bestLabel
				changed = true
			}
			inertia += bestDist * bestDist
		}

		if !changed && iter > 0 {
			break
		}

		sums := make([][]float64, k)
		counts := make([]int, k)
		for c := range sums {
			sums[c] = make([]float64, cols)
		}
		for i := 0; i < n; i++ {
			floats.Add(sums[labels[i]], m.RawRowView(i))
			counts[labels[i]]++
		}
		for c := 0; c < k; c++ {
			if counts[c] == 0 {
				continue // empty cluster keeps its previous centroid
			}
			floats.Scale(1/float64(counts[c]), sums[c])
			centroids[c] = sums[c]
		}
	}

	return labels, inertia
}

func nearestDistance(row []float64, centroids [][]float64) float64 {
	best := math.Inf(1)
	for _, c := range centroids {
		if d := floats.Distance(row, c, 2); d < best {
			best = d
		}
	}
	return best
}

// silhouette computes the mean silhouette coefficient over a bounded
// random sample of points.
func silhouette(m *mat.Dense, labels []int, k int, rng *rand.Rand) float64 {
	n, _ := m.Dims()
	if k < 2 || n < 3 {
		return 0
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	if n > silhouetteSampleCap {
		rng.Shuffle(n, func(a, b int) { idx[a], idx[b] = idx[b], idx[a] })
		idx = idx[:silhouetteSampleCap]
	}

	var total float64
	counted := 0
	for _, i := range idx {
		sumByCluster := make([]float64, k)
		countByCluster := make([]int, k)
		for _, j := range idx {
			if i == j {
				continue
			}
			d := floats.Distance(m.RawRowView(i), m.RawRowView(j), 2)
			sumByCluster[labels[j]] += d
			countByCluster[labels[j]]++
		}

		own := labels[i]
		if countByCluster[own] == 0 {
			continue
		}
		a := sumByCluster[own] / float64(countByCluster[own])

		b := math.Inf(1)
		for c := 0; c < k; c++ {
			if c == own || countByCluster[c] == 0 {
				continue
			}
			if mean := sumByCluster[c] / float64(countByCluster[c]); mean < b {
				b = mean
			}
		}
		if math.IsInf(b, 1) {
			continue
		}

		if max := math.Max(a, b); max > 0 {
			total += (b - a) / max
		}
		counted++
	}

	if counted == 0 {
		return 0
	}
	return total / float64(counted)
}

// daviesBouldin computes the Davies-Bouldin index; lower is better
func daviesBouldin(m *mat.Dense, labels []int, centroids [][]float64) float64 {
	n, _ := m.Dims()
	k := len(centroids)
	if k < 2 {
		return 0
	}

	// Mean intra-cluster distance to centroid
	scatter := make([]float64, k)
	counts := make([]int, k)
	for i := 0; i < n; i++ {
		c := labels[i]
		scatter[c] += floats.Distance(m.RawRowView(i), centroids[c], 2)
		counts[c]++
	}
	for c := 0; c < k; c++ {
		if counts[c] > 0 {
			scatter[c] /= float64(counts[c])
		}
	}

	var sum float64
	for i := 0; i < k; i++ {
		var worst float64
		for j := 0; j < k; j++ {
			if i == j {
				continue
			}
			sep := floats.Distance(centroids[i], centroids[j], 2)
			if sep == 0 {
				continue
			}
			if ratio := (scatter[i] + scatter[j]) / sep; ratio > worst {
				worst = ratio
			}
		}
		sum += worst
	}
	return sum / float64(k)
}
