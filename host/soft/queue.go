// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package soft

import "github.com/gogpu/ggui/host"

// queue is a FIFO event queue fed by tests or a headless driver.
type queue struct {
	events []host.Event
	polls  int
}

// Push appends events to the queue.
func (q *queue) Push(events ...host.Event) {
	q.events = append(q.events, events...)
}

// PollEvent implements host.EventQueue.
func (q *queue) PollEvent() (host.Event, bool) {
	q.polls++
	if len(q.events) == 0 {
		return nil, false
	}
	ev := q.events[0]
	q.events[0] = nil
	q.events = q.events[1:]
	return ev, true
}

// Pending returns the number of queued events.
func (q *queue) Pending() int {
	return len(q.events)
}

// Polls returns how many times PollEvent was called.
func (q *queue) Polls() int {
	return q.polls
}
