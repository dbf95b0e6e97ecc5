// Package replay records the input stream of a session and plays it back.
// A recording is the seed plus one entry per tick, so a deterministic game
// reproduces the run exactly.
package replay

import (
	"fmt"
	"os"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Version of the recording format.
const Version = 1

// FrameInput is one tick of input. Actions are a bit set indexed by
// core.Action.
type FrameInput struct {
	Actions uint32 `msgpack:"a"`
	AimX    int    `msgpack:"x,omitempty"`
	AimY    int    `msgpack:"y,omitempty"`
	Aiming  bool   `msgpack:"m,omitempty"`
}

// Data is a complete recording.
type Data struct {
	Version    int          `msgpack:"version"`
	GameID     string       `msgpack:"game_id"`
	Seed       int64        `msgpack:"seed"`
	StartStage int          `msgpack:"start_stage"`
	Preset     string       `msgpack:"preset"`
	StartTime  time.Time    `msgpack:"start_time"`
	Frames     []FrameInput `msgpack:"frames"`
}

// Duration returns the recorded play time at the given tick rate.
func (d Data) Duration(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Duration(len(d.Frames)) * time.Second / time.Duration(tickRate)
}

// EncodeFrame packs an input frame.
func EncodeFrame(in core.InputFrame) FrameInput {
	var f FrameInput
	for a, on := range in.Actions {
		if on && a > core.ActionNone && a < 32 {
			f.Actions |= 1 << uint(a)
		}
	}
	if in.Aiming {
		f.AimX, f.AimY, f.Aiming = in.AimX, in.AimY, true
	}
	return f
}

// Frame unpacks the input frame.
func (f FrameInput) Frame() core.InputFrame {
	in := core.NewInputFrame()
	for a := core.Action(1); a < 32; a++ {
		if f.Actions&(1<<uint(a)) != 0 {
			in.Set(a)
		}
	}
	if f.Aiming {
		in.SetAim(f.AimX, f.AimY)
	}
	return in
}

// Recorder accumulates frames of a running session.
type Recorder struct {
	data Data
}

// NewRecorder starts an empty recording.
func NewRecorder(gameID string, seed int64, startStage int, preset string) *Recorder {
	return &Recorder{data: Data{
		Version:    Version,
		GameID:     gameID,
		Seed:       seed,
		StartStage: startStage,
		Preset:     preset,
		StartTime:  time.Now().UTC(),
	}}
}

// Record appends one tick of input.
func (r *Recorder) Record(in core.InputFrame) {
	r.data.Frames = append(r.data.Frames, EncodeFrame(in))
}

// Len returns the number of recorded frames.
func (r *Recorder) Len() int { return len(r.data.Frames) }

// Data returns the recording so far.
func (r *Recorder) Data() Data { return r.data }

// Save writes the recording to path.
func (r *Recorder) Save(path string) error {
	b, err := msgpack.Marshal(&r.data)
	if err != nil {
		return fmt.Errorf("replay: cannot encode recording: %w", err)
	}
	if err := os.WriteFile(path, b, 0o600); err != nil {
		return fmt.Errorf("replay: cannot write %s: %w", path, err)
	}
	return nil
}

// Load reads a recording from path.
func Load(path string) (Data, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("replay: cannot read %s: %w", path, err)
	}

	var d Data
	if err := msgpack.Unmarshal(b, &d); err != nil {
		return Data{}, fmt.Errorf("replay: cannot decode %s: %w", path, err)
	}
	if d.Version != Version {
		return Data{}, fmt.Errorf("replay: unsupported version %d (want %d)", d.Version, Version)
	}
	return d, nil
}

// Replayer yields the frames of a recording in order.
type Replayer struct {
	frames []FrameInput
	pos    int
}

// NewReplayer starts playback at the first frame.
func NewReplayer(d Data) *Replayer {
	return &Replayer{frames: d.Frames}
}

// Next returns the next frame, or false when the recording is exhausted.
func (p *Replayer) Next() (core.InputFrame, bool) {
	if p.pos >= len(p.frames) {
		return core.InputFrame{}, false
	}
	f := p.frames[p.pos]
	p.pos++
	return f.Frame(), true
}

// Remaining returns the number of frames not yet played.
func (p *Replayer) Remaining() int { return len(p.frames) - p.pos }
