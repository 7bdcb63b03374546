package io

import (
	"math"
	"sync"
	"testing"

	"github.com/ecopia-map/engrave_stl/internal/data"
)

func run(field *data.HeightField, cell CellFunc, workers int) []error {
	workChannel := make(chan *WorkUnit, workers)
	errorChannel := make(chan error, workers)

	var waitGroup sync.WaitGroup
	waitGroup.Add(1)
	go NewStandardProducer(field.Height).Produce(workChannel, &waitGroup)
	for i := 0; i < workers; i++ {
		waitGroup.Add(1)
		go NewStandardConsumer(field, cell).Consume(workChannel, errorChannel, &waitGroup)
	}
	waitGroup.Wait()
	close(errorChannel)

	var errs []error
	for err := range errorChannel {
		errs = append(errs, err)
	}
	return errs
}

func TestConsumeFillsRows(t *testing.T) {
	field := data.NewHeightField(5, 7)
	errs := run(field, func(x, y int) float64 { return float64(x + 10*y) }, 3)
	if len(errs) != 0 {
		t.Fatal(errs)
	}
	for y := 0; y < field.Height; y++ {
		for x := 0; x < field.Width; x++ {
			if field.At(x, y) != float64(x+10*y) {
				t.Fatalf("(%d, %d): got %v", x, y, field.At(x, y))
			}
		}
	}
}

func TestConsumeReportsNonFinite(t *testing.T) {
	field := data.NewHeightField(4, 50)
	errs := run(field, func(x, y int) float64 {
		if y%10 == 3 {
			return math.NaN()
		}
		return 1
	}, 2)
	if len(errs) == 0 || len(errs) > 2 {
		t.Fatalf("expected one error per failing worker, got %v", errs)
	}
}
