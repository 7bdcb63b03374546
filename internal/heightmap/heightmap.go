// Package heightmap derives extrusion heights from a binary mask.
//
// Every cell scans the disc of the capture radius around it. Content neighbours add the inverse
// of their squared distance to a score, background and out of image neighbours subtract it. The
// score is then clamped to a floor and a ceiling plateau with a linear slope in between.
package heightmap

import (
	"math"
	"sync"

	"github.com/ecopia-map/engrave_stl/internal/converters"
	"github.com/ecopia-map/engrave_stl/internal/data"
	"github.com/ecopia-map/engrave_stl/internal/io"
	"github.com/pkg/errors"
)

// Vertical scale applied to every normalized height
const VerticalScale = 8.0

// Score computes the signed inverse distance weighted score of the cell at (x, y).
func Score(mask *data.BinaryMask, x, y, radius int) float64 {
	var score float64
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			d := dx*dx + dy*dy
			if d > r2 {
				continue
			}
			// anything outside of the picture is background
			if mask.Content(x+dx, y+dy) {
				score += 1.0 / float64(d)
			} else {
				score -= 1.0 / float64(d)
			}
		}
	}
	return score
}

// Area is the normalization constant of the slope for the given radius.
func Area(radius int) float64 {
	return 2 * math.Pi * float64(radius-1)
}

// Level maps a score to a normalized height in [0, radius].
func Level(score float64, radius int) float64 {
	area := Area(radius)
	if score < 0 {
		// bottom plateau
		return 0
	} else if score > area {
		// top plateau
		return float64(radius)
	} else if area == 0 {
		return 0
	}
	// slope
	return score / area
}

// Height computes the scaled height of the cell at (x, y), without any offset.
func Height(mask *data.BinaryMask, x, y, radius int) float64 {
	return Level(Score(mask, x, y, radius), radius) * VerticalScale
}

// Compute builds the full height field of the mask. Rows are distributed over the given number of
// goroutines; the result does not depend on it. The corrector is applied to every height.
func Compute(mask *data.BinaryMask, radius int, corrector converters.ElevationCorrector, workers int) (*data.HeightField, error) {
	if radius < 0 {
		return nil, errors.Errorf("negative capture radius %d", radius)
	}
	if workers < 1 {
		workers = 1
	}

	field := data.NewHeightField(mask.Width, mask.Height)
	cell := func(x, y int) float64 {
		return corrector.CorrectElevation(x, y, Height(mask, x, y, radius))
	}

	// init channel where to submit work with a buffer 5 times greater than the number of consumers
	workChannel := make(chan *io.WorkUnit, workers*5)

	// every consumer reports at most one error
	errorChannel := make(chan error, workers)

	var waitGroup sync.WaitGroup

	waitGroup.Add(1)
	var producer io.Producer = io.NewStandardProducer(mask.Height)
	go producer.Produce(workChannel, &waitGroup)

	for i := 0; i < workers; i++ {
		waitGroup.Add(1)
		var consumer io.Consumer = io.NewStandardConsumer(field, cell)
		go consumer.Consume(workChannel, errorChannel, &waitGroup)
	}

	waitGroup.Wait()
	close(errorChannel)

	if err, ok := <-errorChannel; ok {
		return nil, errors.Wrap(err, "compute height field")
	}
	return field, nil
}
