package io

import "sync"

type StandardProducer struct {
	rows int
}

func NewStandardProducer(rows int) *StandardProducer {
	return &StandardProducer{
		rows: rows,
	}
}

// Submits a WorkUnit per row to the provided workchannel, top row first.
// Closes the channel when all work is submitted.
func (p *StandardProducer) Produce(work chan *WorkUnit, wg *sync.WaitGroup) {
	for y := 0; y < p.rows; y++ {
		work <- &WorkUnit{Row: y}
	}
	close(work)
	wg.Done()
}
