package audio

import (
	"fmt"
	"io"
	"os/exec"
	"sync"
)

// Cue identifies a feedback sound.
type Cue int

const (
	CueNone Cue = iota
	CueCorrect
	CueWrong
)

func (c Cue) String() string {
	switch c {
	case CueCorrect:
		return "correct"
	case CueWrong:
		return "wrong"
	default:
		return "none"
	}
}

// Player plays feedback cues. Play must not block: overlapping cues are
// allowed to overlap.
type Player interface {
	Play(cue Cue)
}

// Assets maps cues to sound files.
type Assets struct {
	Correct string
	Wrong   string
}

func (a Assets) path(cue Cue) string {
	switch cue {
	case CueCorrect:
		return a.Correct
	case CueWrong:
		return a.Wrong
	default:
		return ""
	}
}

// CommandPlayer runs an external player (paplay, afplay, mpv ...) with the
// cue's asset path appended to its arguments.
type CommandPlayer struct {
	command []string
	assets  Assets

	// OnError receives start failures. Optional.
	OnError func(cue Cue, err error)

	// start is swapped out in tests.
	start func(name string, args ...string) error
}

// NewCommandPlayer creates a CommandPlayer. command must be non-empty.
func NewCommandPlayer(command []string, assets Assets) *CommandPlayer {
	return &CommandPlayer{command: command, assets: assets, start: startDetached}
}

func (p *CommandPlayer) Play(cue Cue) {
	path := p.assets.path(cue)
	if path == "" || len(p.command) == 0 {
		return
	}
	args := append(append([]string{}, p.command[1:]...), path)
	if err := p.start(p.command[0], args...); err != nil && p.OnError != nil {
		p.OnError(cue, err)
	}
}

// startDetached starts the process and reaps it in the background.
func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// BellPlayer rings the terminal bell once for a wrong answer and twice for
// a correct one. It is the fallback when no player command is configured.
type BellPlayer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBellPlayer creates a BellPlayer writing to w.
func NewBellPlayer(w io.Writer) *BellPlayer {
	return &BellPlayer{w: w}
}

func (b *BellPlayer) Play(cue Cue) {
	var seq string
	switch cue {
	case CueCorrect:
		seq = "\a\a"
	case CueWrong:
		seq = "\a"
	default:
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	_, _ = io.WriteString(b.w, seq)
}

// Nop discards every cue.
type Nop struct{}

func (Nop) Play(Cue) {}
