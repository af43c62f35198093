package game

import (
	"fmt"

	"github.com/google/uuid"
)

// RunLog accumulates per-session statistics. The map fingerprint ties the
// log to the exact dungeon the run happened in.
type RunLog struct {
	RunID          string
	MapFingerprint uint64
	Turns          int
	Kills          int
	DamageDealt    int
	DamageTaken    int
	CorpsesEaten   int
	Teleports      int
	CauseOfDeath   string
}

// NewRunLog starts a run log for a dungeon with the given fingerprint.
func NewRunLog(fingerprint uint64) RunLog {
	return RunLog{
		RunID:          uuid.NewString(),
		MapFingerprint: fingerprint,
	}
}

// Summary renders the log for an end-of-session printout.
func (l RunLog) Summary() string {
	outcome := "escaped"
	if l.CauseOfDeath != "" {
		outcome = "slain by " + l.CauseOfDeath
	}
	return fmt.Sprintf(
		"run %s (map %016x): %d turns, %d kills, %d dealt / %d taken, %d corpses eaten, %d teleports, %s",
		l.RunID, l.MapFingerprint, l.Turns, l.Kills,
		l.DamageDealt, l.DamageTaken, l.CorpsesEaten, l.Teleports, outcome,
	)
}
