package state

import "github.com/google/uuid"

// clock stamps commits with a session-unique site id and a monotonic
// sequence number.
type clock struct {
	site string
	seq  uint64
}

func newClock() clock {
	return clock{site: uuid.NewString()}
}

func (c *clock) tick() uint64 {
	c.seq++
	return c.seq
}

func newAnnotationID() string {
	return uuid.NewString()
}
