package core

import (
	"fmt"
	"strings"

	"github.com/vskvj3/sequences/internal/datastructures"
)

// Supported command names.
const (
	PushBack  = "PUSHBACK"
	PushFront = "PUSHFRONT"
	Insert    = "INSERT"
	Middle    = "INSERTMIDDLE"
	Erase     = "ERASE"
)

// Command is one operation applied to a container. Index is ignored by
// the push commands and by INSERTMIDDLE, which targets Size()/2.
type Command struct {
	Name  string
	Index int
	Value int
}

func (c Command) String() string {
	switch strings.ToUpper(c.Name) {
	case PushBack, PushFront, Middle:
		return fmt.Sprintf("%s %d", c.Name, c.Value)
	case Erase:
		return fmt.Sprintf("%s %d", c.Name, c.Index)
	default:
		return fmt.Sprintf("%s %d %d", c.Name, c.Index, c.Value)
	}
}

// HandleCommand applies cmd to seq.
func HandleCommand(seq datastructures.Sequence[int], cmd Command) error {
	switch strings.ToUpper(cmd.Name) {
	case PushBack:
		seq.PushBack(cmd.Value)
	case PushFront:
		seq.PushFront(cmd.Value)
	case Insert:
		return seq.Insert(cmd.Index, cmd.Value)
	case Middle:
		return seq.Insert(seq.Size()/2, cmd.Value)
	case Erase:
		return seq.Erase(cmd.Index)
	default:
		return fmt.Errorf("unknown command: %s", cmd.Name)
	}
	return nil
}
