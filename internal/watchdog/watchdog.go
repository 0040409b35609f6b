// Package watchdog classifies the control-interface daemon's IPC lock.
//
// The daemon holds .ddd/run/ipc.lock while it is mid-operation. A lock whose
// modification time is older than the threshold means the daemon is probably
// stuck rather than busy.
package watchdog

import "time"

// DefaultStaleAfter is the default age after which a held lock is considered stale.
const DefaultStaleAfter = 300 * time.Second

// LockState is the classification of a single lock observation.
type LockState string

const (
	LockAbsent LockState = "absent"
	LockBusy   LockState = "busy"
	LockStale  LockState = "stale"
)

// LockSignals is one point-in-time observation of the lock artifact.
type LockSignals struct {
	// ModTime is the lock's modification time. Nil if the lock does not exist.
	ModTime *time.Time

	// Now is the wall-clock time of the observation.
	Now time.Time
}

// LockResult contains the result of a lock check.
type LockResult struct {
	State LockState

	// Age is Now - ModTime. Zero when the lock is absent. A modification time
	// in the future yields a negative age, which classifies as busy.
	Age time.Duration
}

// CheckLock classifies a lock observation.
//
// A lock is stale only when its age is strictly greater than threshold, so an
// age of exactly threshold is still busy.
func CheckLock(signals LockSignals, threshold time.Duration) LockResult {
	if signals.ModTime == nil {
		return LockResult{State: LockAbsent}
	}

	age := signals.Now.Sub(*signals.ModTime)
	if age > threshold {
		return LockResult{State: LockStale, Age: age}
	}
	return LockResult{State: LockBusy, Age: age}
}
