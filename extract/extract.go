// Package extract pulls dominant-color candidates out of a wallpaper.
// The image is squashed onto a small fixed canvas, near-black and
// near-white pixels are filtered away, and the survivors are clustered
// into k representative colors with population counts.
package extract

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"sort"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
	xdraw "golang.org/x/image/draw"
	"gonum.org/v1/gonum/floats"

	"github.com/setanarut/themegen"
)

// Method selects the clustering backend.
type Method int

const (
	// MethodLloyd is the default: deterministic Lloyd k-means with
	// evenly spaced seeds, so the same image always yields the same
	// candidates.
	MethodLloyd Method = iota
	// MethodKMeans uses muesli/kmeans' randomized partitioning.
	MethodKMeans
	// MethodDominantColor uses cenkalti/dominantcolor's fast
	// histogram-based extraction.
	MethodDominantColor
)

func (m Method) String() string {
	switch m {
	case MethodKMeans:
		return "kmeans"
	case MethodDominantColor:
		return "dominantcolor"
	default:
		return "lloyd"
	}
}

// ParseMethod resolves a method name from the CLI.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "", "lloyd":
		return MethodLloyd, nil
	case "kmeans":
		return MethodKMeans, nil
	case "dominantcolor":
		return MethodDominantColor, nil
	default:
		return MethodLloyd, fmt.Errorf("unknown extraction method %q", s)
	}
}

// FromPath decodes the image at path and extracts candidates from it.
// Open and decode failures wrap themegen.ErrImageDecode.
func FromPath(path string, cfg themegen.Config, method Method) ([]themegen.Candidate, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %v: %w", path, err, themegen.ErrImageDecode)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %v: %w", path, err, themegen.ErrImageDecode)
	}
	return FromImage(img, cfg, method), nil
}

// FromImage extracts candidates from a decoded image. Degenerate
// content (all-black, all-white, fewer distinct colors than k) is
// handled by falling back to the unfiltered sample set or a reduced
// effective k; non-default methods fall back to Lloyd on empty output,
// so any image with at least one opaque pixel yields candidates.
func FromImage(img image.Image, cfg themegen.Config, method Method) []themegen.Candidate {
	sampled := downscale(img, cfg.CanvasSize)

	switch method {
	case MethodDominantColor:
		if cands := dominantCandidates(sampled, cfg); len(cands) > 0 {
			return cands
		}
		log.Println("extract warning: dominantcolor returned no candidates, falling back to lloyd")
	case MethodKMeans:
		if cands := partitionCandidates(sampled, cfg); len(cands) > 0 {
			return cands
		}
		log.Println("extract warning: kmeans partition failed, falling back to lloyd")
	}
	return lloydCandidates(sampled, cfg)
}

// downscale squashes img onto the fixed square canvas that bounds
// clustering cost. Images already within the canvas are used as-is.
func downscale(img image.Image, size int) image.Image {
	b := img.Bounds()
	if b.Dx() <= size && b.Dy() <= size {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// observations collects RGB samples in [0,255]³. Pixels whose
// lightness falls outside the configured band are dropped so shadow
// and highlight mass cannot swamp the real dominant hues; when too few
// survive, the unfiltered set is used instead.
func observations(img image.Image, cfg themegen.Config) clusters.Observations {
	b := img.Bounds()
	all := make(clusters.Observations, 0, b.Dx()*b.Dy())
	filtered := make(clusters.Observations, 0, b.Dx()*b.Dy())

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r16, g16, b16, a16 := img.At(x, y).RGBA()
			if a16 == 0 {
				continue
			}
			obs := clusters.Coordinates{
				float64(r16 >> 8),
				float64(g16 >> 8),
				float64(b16 >> 8),
			}
			all = append(all, obs)
			_, _, l := themegen.HSL(colorful.Color{
				R: obs[0] / 255, G: obs[1] / 255, B: obs[2] / 255,
			})
			if l >= cfg.MinLightness && l <= cfg.MaxLightness {
				filtered = append(filtered, obs)
			}
		}
	}

	if len(filtered) > cfg.MinFilteredSamples {
		return filtered
	}
	return all
}

// lloydCandidates runs deterministic Lloyd k-means: seeds are evenly
// spaced over the distinct colors in first-seen order, iteration stops
// at the configured cap or once no centroid moves more than the
// convergence shift.
func lloydCandidates(img image.Image, cfg themegen.Config) []themegen.Candidate {
	samples := observations(img, cfg)
	if len(samples) == 0 {
		return nil
	}

	distinct, counts := distinctColors(samples)
	if len(distinct) <= cfg.Clusters {
		// Fewer distinct colors than k: the distinct set is already the
		// exact clustering.
		cands := make([]themegen.Candidate, 0, len(distinct))
		for i, obs := range distinct {
			cands = append(cands, candidate(obs, counts[i]))
		}
		sortCandidates(cands)
		return cands
	}

	k := cfg.Clusters
	centroids := make([]clusters.Coordinates, k)
	for i := range centroids {
		idx := 0
		if k > 1 {
			idx = i * (len(distinct) - 1) / (k - 1)
		}
		centroids[i] = append(clusters.Coordinates(nil), distinct[idx]...)
	}

	pops := make([]int, k)
	for iter := 0; iter < cfg.MaxIterations; iter++ {
		sums := make([][3]float64, k)
		for i := range pops {
			pops[i] = 0
		}
		for _, obs := range samples {
			coords := obs.Coordinates()
			best, bestDist := 0, floats.Distance(coords, centroids[0], 2)
			for ci := 1; ci < k; ci++ {
				if d := floats.Distance(coords, centroids[ci], 2); d < bestDist {
					best, bestDist = ci, d
				}
			}
			sums[best][0] += coords[0]
			sums[best][1] += coords[1]
			sums[best][2] += coords[2]
			pops[best]++
		}

		maxShift := 0.0
		for ci := range centroids {
			if pops[ci] == 0 {
				continue // empty cluster keeps its centroid
			}
			n := float64(pops[ci])
			next := clusters.Coordinates{sums[ci][0] / n, sums[ci][1] / n, sums[ci][2] / n}
			if shift := floats.Distance(centroids[ci], next, 2); shift > maxShift {
				maxShift = shift
			}
			centroids[ci] = next
		}
		if maxShift < cfg.ConvergenceShift {
			break
		}
	}

	cands := make([]themegen.Candidate, 0, k)
	for ci, c := range centroids {
		if pops[ci] == 0 {
			continue
		}
		cands = append(cands, candidate(c, pops[ci]))
	}
	sortCandidates(cands)
	return cands
}

// partitionCandidates is the muesli/kmeans path.
func partitionCandidates(img image.Image, cfg themegen.Config) []themegen.Candidate {
	samples := observations(img, cfg)
	if len(samples) < cfg.Clusters {
		return nil
	}

	km := kmeans.New()
	cc, err := km.Partition(samples, cfg.Clusters)
	if err != nil || len(cc) == 0 {
		return nil
	}

	cands := make([]themegen.Candidate, 0, len(cc))
	for _, c := range cc {
		if len(c.Center) < 3 || len(c.Observations) == 0 {
			continue
		}
		cands = append(cands, candidate(c.Center, len(c.Observations)))
	}
	sortCandidates(cands)
	return cands
}

// dominantCandidates is the histogram-based fast path.
func dominantCandidates(img image.Image, cfg themegen.Config) []themegen.Candidate {
	found := dominantcolor.FindWeight(img, cfg.Clusters*3)
	if len(found) == 0 {
		return nil
	}
	if len(found) > cfg.Clusters {
		found = found[:cfg.Clusters]
	}

	cands := make([]themegen.Candidate, 0, len(found))
	for _, fc := range found {
		col, ok := colorful.MakeColor(fc.RGBA)
		if !ok {
			continue
		}
		w := fc.Weight
		if w < 0 {
			w = 0
		}
		cands = append(cands, themegen.Candidate{
			Color:      col.Clamped(),
			Population: int(w*10000) + 1,
		})
	}
	sortCandidates(cands)
	return cands
}

// distinctColors reduces samples to unique 8-bit colors in first-seen
// order, with member counts.
func distinctColors(samples clusters.Observations) ([]clusters.Coordinates, []int) {
	index := make(map[[3]uint8]int, 64)
	var distinct []clusters.Coordinates
	var counts []int
	for _, obs := range samples {
		c := obs.Coordinates()
		key := [3]uint8{uint8(c[0]), uint8(c[1]), uint8(c[2])}
		if i, ok := index[key]; ok {
			counts[i]++
			continue
		}
		index[key] = len(distinct)
		distinct = append(distinct, c)
		counts = append(counts, 1)
	}
	return distinct, counts
}

func candidate(c clusters.Coordinates, population int) themegen.Candidate {
	return themegen.Candidate{
		Color: colorful.Color{
			R: c[0] / 255, G: c[1] / 255, B: c[2] / 255,
		}.Clamped(),
		Population: population,
	}
}

// sortCandidates orders by population, most dominant first, with RGB
// tiebreaks for determinism.
func sortCandidates(cands []themegen.Candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Population != cands[j].Population {
			return cands[i].Population > cands[j].Population
		}
		a, b := cands[i].Color, cands[j].Color
		if a.R != b.R {
			return a.R < b.R
		}
		if a.G != b.G {
			return a.G < b.G
		}
		return a.B < b.B
	})
}
