package core

import (
	"errors"
	"fmt"

	"github.com/vskvj3/sequences/internal/datastructures"
	"github.com/vskvj3/sequences/internal/utils"
)

// Step is a snapshot of a container after one phase of the script.
type Step struct {
	Name   string
	Values []int
	Size   int
}

// Report collects the steps of one Run.
type Report struct {
	Container string
	Steps     []Step
}

// MoveReport describes a move demonstration.
type MoveReport struct {
	Container   string
	Before      []int
	Moved       []int
	SourceSize  int
	SourceAfter []int
}

// Phase is a named group of commands; a snapshot is taken after each.
type Phase struct {
	Name     string
	Commands []Command
}

// Movable is a sequence that can hand its contents to a new container.
type Movable[S any] interface {
	datastructures.Sequence[int]
	Move() S
}

// Runner plays the configured script against containers.
type Runner struct {
	config *utils.Config
	logger *utils.Logger
}

// NewRunner creates a runner that logs through logger.
func NewRunner(config *utils.Config, logger *utils.Logger) *Runner {
	return &Runner{config: config, logger: logger}
}

// Script turns the config into the fill / erase / front / middle / back
// phases.
func (r *Runner) Script() []Phase {
	fill := Phase{Name: "fill"}
	for i := 0; i < r.config.Count; i++ {
		fill.Commands = append(fill.Commands, Command{Name: PushBack, Value: i})
	}
	erase := Phase{Name: "erase"}
	for _, index := range r.config.EraseIndices {
		erase.Commands = append(erase.Commands, Command{Name: Erase, Index: index})
	}
	return []Phase{
		fill,
		erase,
		{Name: "push front", Commands: []Command{{Name: PushFront, Value: r.config.FrontValue}}},
		{Name: "insert middle", Commands: []Command{{Name: Middle, Value: r.config.MiddleValue}}},
		{Name: "push back", Commands: []Command{{Name: PushBack, Value: r.config.BackValue}}},
	}
}

// Run executes the script against seq, which must start empty.
func (r *Runner) Run(name string, seq datastructures.Sequence[int]) (*Report, error) {
	if !seq.Empty() {
		return nil, fmt.Errorf("%s: container must start empty, has %d elements", name, seq.Size())
	}
	logger := r.logger.With("container", name)
	report := &Report{Container: name}

	for _, phase := range r.Script() {
		for _, cmd := range phase.Commands {
			if err := HandleCommand(seq, cmd); err != nil {
				return report, fmt.Errorf("%s: %s: %w", name, cmd, err)
			}
		}
		step := Step{Name: phase.Name, Values: seq.Slice(), Size: seq.Size()}
		report.Steps = append(report.Steps, step)
		logger.Debug(fmt.Sprintf("%s: %s (size %d)", phase.Name, seq, step.Size))
	}
	return report, nil
}

// RunMove fills src with the configured sample, moves it and checks the
// source was left empty.
func RunMove[S Movable[S]](r *Runner, name string, src S) (*MoveReport, error) {
	for _, v := range r.config.MoveSample {
		src.PushBack(v)
	}
	report := &MoveReport{Container: name, Before: src.Slice()}

	dst := src.Move()
	report.Moved = dst.Slice()
	report.SourceSize = src.Size()
	report.SourceAfter = src.Slice()

	logger := r.logger.With("container", name)
	if report.SourceSize != 0 {
		logger.Error(fmt.Sprintf("source still holds %d elements after move", report.SourceSize))
		return report, fmt.Errorf("%s: source not empty after move", name)
	}
	if _, err := src.At(0); !errors.Is(err, datastructures.ErrOutOfRange) {
		return report, fmt.Errorf("%s: moved-from container still readable", name)
	}
	logger.Debug(fmt.Sprintf("moved %d elements", dst.Size()))
	return report, nil
}
