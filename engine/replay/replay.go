package replay

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/1siamBot/feg-tactics/engine/core"
)

// Replay records and plays back game commands
type Replay struct {
	Commands []GameCommand
	file     *os.File
	writer   *bufio.Writer
}

// NewReplayRecorder creates a replay file for recording
func NewReplayRecorder(path string) (*Replay, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &Replay{
		file:   f,
		writer: bufio.NewWriter(f),
	}, nil
}

// NewRecorder records to w
func NewRecorder(w io.Writer) *Replay {
	return &Replay{writer: bufio.NewWriter(w)}
}

// Record writes a command to the replay
func (r *Replay) Record(cmd GameCommand) error {
	r.Commands = append(r.Commands, cmd)
	if r.writer == nil {
		return nil
	}
	return cmd.Encode(r.writer)
}

// Flush writes buffered commands through
func (r *Replay) Flush() error {
	if r.writer == nil {
		return nil
	}
	return r.writer.Flush()
}

// Close flushes and closes the replay file
func (r *Replay) Close() error {
	err := r.Flush()
	if r.file != nil {
		if cerr := r.file.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// LoadReplay loads a replay file
func LoadReplay(path string) (*Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadReplay(f)
}

// ReadReplay decodes commands until the end of r
func ReadReplay(r io.Reader) (*Replay, error) {
	replay := &Replay{}
	reader := bufio.NewReader(r)
	for {
		var cmd GameCommand
		if err := cmd.Decode(reader); err != nil {
			if errors.Is(err, io.EOF) {
				return replay, nil
			}
			return replay, fmt.Errorf("command %d: %w", len(replay.Commands), err)
		}
		replay.Commands = append(replay.Commands, cmd)
	}
}

// Play applies every command in order and stops at the first failure
func (r *Replay) Play(gl *core.GameLoop) error {
	for i := range r.Commands {
		if err := r.Commands[i].Apply(gl); err != nil {
			return fmt.Errorf("replay command %d: %w", i, err)
		}
	}
	return nil
}

// CommandsForRound returns all commands recorded during a round
func (r *Replay) CommandsForRound(round int) []GameCommand {
	var result []GameCommand
	for _, c := range r.Commands {
		if int(c.Round) == round {
			result = append(result, c)
		}
	}
	return result
}
