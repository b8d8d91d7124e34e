package event

import (
	"sync/atomic"

	"github.com/lixenwraith/chainburst/constant"
)

// slot holds one event; seq is position+1 once the event is fully written, 0 while writing
type slot struct {
	seq atomic.Uint64
	ev  GameEvent
}

// EventQueue is a bounded ring for game events
// Any goroutine may Push (input, systems); only the scheduler Consumes
// A full ring drops its oldest unread events
type EventQueue struct {
	slots [constant.EventQueueSize]slot
	read  atomic.Uint64 // Next position to consume
	write atomic.Uint64 // Next position to claim
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push claims the next position and publishes ev into it
func (q *EventQueue) Push(ev GameEvent) {
	pos := q.write.Add(1) - 1
	s := &q.slots[pos&constant.EventBufferMask]

	s.seq.Store(0)
	s.ev = ev
	s.seq.Store(pos + 1)

	// Drag the reader past positions this lap overwrote
	for {
		r := q.read.Load()
		if pos+1-r <= constant.EventQueueSize || q.read.CompareAndSwap(r, pos+1-constant.EventQueueSize) {
			return
		}
	}
}

// Consume drains published events in FIFO order
// Stops early at a position whose producer has not finished writing
func (q *EventQueue) Consume() []GameEvent {
	for {
		start := q.read.Load()
		end := q.write.Load()
		from := start
		if end-from > constant.EventQueueSize {
			from = end - constant.EventQueueSize
		}
		if from >= end {
			return nil
		}

		batch := make([]GameEvent, 0, end-from)
		for pos := from; pos < end; pos++ {
			s := &q.slots[pos&constant.EventBufferMask]
			if s.seq.Load() != pos+1 {
				break
			}
			ev := s.ev
			// Overwritten by a later lap while copying
			if s.seq.Load() != pos+1 {
				break
			}
			batch = append(batch, ev)
		}

		if q.read.CompareAndSwap(start, from+uint64(len(batch))) {
			if len(batch) == 0 {
				return nil
			}
			return batch
		}
	}
}

// Len is the pending count, approximate under concurrent Push
func (q *EventQueue) Len() int {
	r, w := q.read.Load(), q.write.Load()
	if w <= r {
		return 0
	}
	return int(min(w-r, constant.EventQueueSize))
}
