// Package record holds the optional write-only sinks: a compressed
// per-tick log and a sqlite store of match summaries. Nothing in the
// control path depends on either; a failed write is reported to the
// caller and otherwise ignored.
package record

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/Garsondee/Rocket-Sense/internal/pilot"
)

// TickEntry is one recorded tick: what the pilot saw and what it answered.
type TickEntry struct {
	Tick    int                `json:"tick"`
	Elapsed float64            `json:"elapsed"`
	Action  string             `json:"action"`
	CarPos  pilot.Vec3         `json:"car_pos"`
	Speed   float64            `json:"speed"`
	BallPos pilot.Vec3         `json:"ball_pos"`
	Frame   pilot.ControlFrame `json:"frame"`
}

// TickLog writes zstd-compressed JSON lines, one per tick. Single-writer;
// the match loop is single-threaded so no locking is needed.
type TickLog struct {
	f   *os.File
	enc *zstd.Encoder
	w   *bufio.Writer
}

// NewTickLog creates (or truncates) path and prepares the compressed
// stream.
func NewTickLog(path string) (*TickLog, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create tick log: %w", err)
	}
	enc, err := zstd.NewWriter(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("zstd writer: %w", err)
	}
	return &TickLog{f: f, enc: enc, w: bufio.NewWriter(enc)}, nil
}

// Write appends one entry.
func (l *TickLog) Write(e TickEntry) error {
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	if _, err := l.w.Write(b); err != nil {
		return err
	}
	return l.w.WriteByte('\n')
}

// Close flushes and finalises the stream.
func (l *TickLog) Close() error {
	if err := l.w.Flush(); err != nil {
		l.enc.Close()
		l.f.Close()
		return err
	}
	if err := l.enc.Close(); err != nil {
		l.f.Close()
		return err
	}
	return l.f.Close()
}

// ReadTickLog decodes a file written by TickLog, mostly for tests and
// offline analysis.
func ReadTickLog(path string) ([]TickEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("zstd reader: %w", err)
	}
	defer dec.Close()

	var entries []TickEntry
	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		var e TickEntry
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			return nil, fmt.Errorf("line %d: %w", len(entries)+1, err)
		}
		entries = append(entries, e)
	}
	return entries, sc.Err()
}
