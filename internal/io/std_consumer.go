package io

import (
	"math"
	"sync"

	"github.com/ecopia-map/engrave_stl/internal/data"
	"github.com/pkg/errors"
)

// Computes the height of a single cell
type CellFunc func(x, y int) float64

type StandardConsumer struct {
	field *data.HeightField
	cell  CellFunc
}

func NewStandardConsumer(field *data.HeightField, cell CellFunc) *StandardConsumer {
	return &StandardConsumer{
		field: field,
		cell:  cell,
	}
}

// Continually consumes WorkUnits submitted to a work channel filling the corresponding rows of
// the height field. Continues working until the work channel is closed or an error is raised, in
// which case the error is submitted to the error channel and the remaining work is drained.
func (c *StandardConsumer) Consume(workchan chan *WorkUnit, errchan chan error, waitGroup *sync.WaitGroup) {
	defer waitGroup.Done()

	failed := false
	for work := range workchan {
		// keep receiving after a failure so the producer never blocks
		if failed {
			continue
		}
		if err := c.doWork(work); err != nil {
			errchan <- err
			failed = true
		}
	}
}

func (c *StandardConsumer) doWork(workUnit *WorkUnit) error {
	y := workUnit.Row
	row := make([]float64, c.field.Width)
	for x := range row {
		h := c.cell(x, y)
		if math.IsNaN(h) || math.IsInf(h, 0) {
			return errors.Errorf("non finite height %v at (%d, %d)", h, x, y)
		}
		row[x] = h
	}
	c.field.SetRow(y, row)
	return nil
}
