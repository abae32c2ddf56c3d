// Package debuglog collects log records in a bounded in-memory buffer.
//
// It is meant for applications that display their own logs, such as a debug
// console or an overlay view. A [Buffer] is constructed explicitly and passed
// to whatever component needs it; there is no package-level state. Records
// can enter the buffer directly through [Buffer.Push], or through standard
// structured logging by installing a [Handler]:
//
//	buf := debuglog.New(1000)
//	logger := slog.New(debuglog.NewHandler(buf, slog.LevelDebug))
//	logger.Info("adapter selected", "name", name)
//
// When the buffer is full, pushing a new record evicts the oldest one.
package debuglog

import (
	"log/slog"
	"sync"
	"time"
)

// Record is a single captured log record.
type Record struct {
	// Time the record was logged.
	Time time.Time
	// Level of the record.
	Level slog.Level
	// Message content, with any attributes rendered inline.
	Message string
}

// Buffer is a bounded circular buffer of log records.
// It is safe for concurrent use.
type Buffer struct {
	mu   sync.Mutex
	recs []Record // ring storage, len(recs) is the capacity
	head int      // index of the oldest record
	n    int      // number of stored records
}

// New creates a buffer holding at most capacity records.
// A capacity below 1 is treated as 1.
func New(capacity int) *Buffer {
	if capacity < 1 {
		capacity = 1
	}
	return &Buffer{recs: make([]Record, capacity)}
}

// Reserve grows the buffer capacity by room for n more records.
// Records already stored are kept.
func (b *Buffer) Reserve(n int) {
	if n <= 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	grown := make([]Record, len(b.recs)+n)
	b.copyLocked(grown)
	b.recs = grown
	b.head = 0
}

// Push appends a record. When the buffer is full, the oldest record is
// evicted to make room.
func (b *Buffer) Push(r Record) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.n == len(b.recs) {
		b.recs[b.head] = r
		b.head = (b.head + 1) % len(b.recs)
		return
	}
	b.recs[(b.head+b.n)%len(b.recs)] = r
	b.n++
}

// Records returns a snapshot of the buffered records, oldest first.
func (b *Buffer) Records() []Record {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Record, b.n)
	b.copyLocked(out)
	return out
}

// Len returns the number of records currently stored.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.n
}

// Cap returns the buffer capacity.
func (b *Buffer) Cap() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.recs)
}

// copyLocked copies the stored records into dst in order, oldest first.
// dst must hold at least b.n records. Callers must hold b.mu.
func (b *Buffer) copyLocked(dst []Record) {
	for i := 0; i < b.n; i++ {
		dst[i] = b.recs[(b.head+i)%len(b.recs)]
	}
}
