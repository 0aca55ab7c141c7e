package trace

import (
	"encoding/gob"
	"os"

	"github.com/retrostack/z80core/pkg/z80"
)

func init() {
	gob.Register(z80.Snapshot{})
}

// SaveSnapshot writes a CPU register snapshot to path, gob-encoded —
// adapted from the teacher's result.SaveCheckpoint, substituting a
// register Snapshot for a search Checkpoint.
func SaveSnapshot(path string, snap z80.Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gob.NewEncoder(f).Encode(snap)
}

// LoadSnapshot reads back a snapshot written by SaveSnapshot.
func LoadSnapshot(path string) (z80.Snapshot, error) {
	var snap z80.Snapshot
	f, err := os.Open(path)
	if err != nil {
		return snap, err
	}
	defer f.Close()
	err = gob.NewDecoder(f).Decode(&snap)
	return snap, err
}
