package replay

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/1siamBot/feg-tactics/engine/core"
	"github.com/1siamBot/feg-tactics/engine/maplib"
)

// CmdType identifies a recorded command
type CmdType uint8

const (
	CmdMoveUnit CmdType = iota
	CmdEndTurn
	CmdSetBudget
)

// GameCommand is a deterministic command that modifies game state
type GameCommand struct {
	Round   int32
	Team    int32
	Type    CmdType
	UnitID  uint64
	TargetX int32
	TargetY int32
	Param   string // unit name, for readable dumps
}

// MoveCommand records a unit move
func MoveCommand(gl *core.GameLoop, u *core.Unit, dest maplib.Coord) GameCommand {
	return GameCommand{
		Round:   int32(gl.Round),
		Team:    int32(gl.Team),
		Type:    CmdMoveUnit,
		UnitID:  uint64(u.ID),
		TargetX: int32(dest.X),
		TargetY: int32(dest.Y),
		Param:   u.Name,
	}
}

// EndTurnCommand records the end of the current team's turn
func EndTurnCommand(gl *core.GameLoop) GameCommand {
	return GameCommand{Round: int32(gl.Round), Team: int32(gl.Team), Type: CmdEndTurn}
}

// SetBudgetCommand records a budget change, stored in TargetX
func SetBudgetCommand(gl *core.GameLoop, u *core.Unit, budget int) GameCommand {
	return GameCommand{
		Round:   int32(gl.Round),
		Team:    int32(gl.Team),
		Type:    CmdSetBudget,
		UnitID:  uint64(u.ID),
		TargetX: int32(budget),
		Param:   u.Name,
	}
}

// Apply executes the command against a running game
func (c *GameCommand) Apply(gl *core.GameLoop) error {
	switch c.Type {
	case CmdMoveUnit:
		dest := maplib.Coord{X: int(c.TargetX), Y: int(c.TargetY)}
		_, err := gl.Roster.Move(core.UnitID(c.UnitID), dest)
		return err
	case CmdEndTurn:
		gl.EndTurn()
		return nil
	case CmdSetBudget:
		return gl.Roster.SetBudget(core.UnitID(c.UnitID), int(c.TargetX))
	default:
		return fmt.Errorf("unknown command type %d", c.Type)
	}
}

// Encode writes a command to binary
func (c *GameCommand) Encode(w io.Writer) error {
	fields := []interface{}{c.Round, c.Team, c.Type, c.UnitID, c.TargetX, c.TargetY}
	for _, f := range fields {
		if err := binary.Write(w, binary.LittleEndian, f); err != nil {
			return err
		}
	}
	paramBytes := []byte(c.Param)
	if err := binary.Write(w, binary.LittleEndian, uint16(len(paramBytes))); err != nil {
		return err
	}
	_, err := w.Write(paramBytes)
	return err
}

// Decode reads a command from binary. A clean end of input returns io.EOF.
func (c *GameCommand) Decode(r io.Reader) error {
	if err := binary.Read(r, binary.LittleEndian, &c.Round); err != nil {
		return err
	}
	fields := []interface{}{&c.Team, &c.Type, &c.UnitID, &c.TargetX, &c.TargetY}
	for _, f := range fields {
		if err := binary.Read(r, binary.LittleEndian, f); err != nil {
			return noEOF(err)
		}
	}
	var plen uint16
	if err := binary.Read(r, binary.LittleEndian, &plen); err != nil {
		return noEOF(err)
	}
	c.Param = ""
	if plen > 0 {
		buf := make([]byte, plen)
		if _, err := io.ReadFull(r, buf); err != nil {
			return noEOF(err)
		}
		c.Param = string(buf)
	}
	return nil
}

// noEOF reports a command cut short as a truncated stream
func noEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
