// locker/locker.go
package locker

import "sync"

type Locker struct {
	mu           sync.Mutex
	inProcessMap map[int64]bool
}

func New() *Locker {
	return &Locker{
		inProcessMap: make(map[int64]bool),
	}
}

// MarkAsProcessing adds a job ID to the in-memory map.
func (l *Locker) MarkAsProcessing(jobID int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.inProcessMap[jobID] = true
}

// IsProcessing checks if a job ID is already being processed.
func (l *Locker) IsProcessing(jobID int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inProcessMap[jobID]
}

func (l *Locker) Unlock(jobID int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.inProcessMap, jobID)
}
