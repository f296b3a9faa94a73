package model

import (
	"bufio"
	"fmt"
	"io"
)

const (
	gridPosAlive = "█"
	gridPosDead  = "·"

	// ANSI cursor-home followed by clear-screen
	ansiClear = "\x1b[H\x1b[2J"
)

// TerminalRenderer draws grids as text frames
type TerminalRenderer struct{}

// Display renders the grid, one text row per grid row
func (r *TerminalRenderer) Display(w io.Writer, g Reader) error {
	bw := bufio.NewWriter(w)
	for y := range g.Height() {
		for x := range g.Width() {
			if g.Get(x, y).IsAlive() {
				bw.WriteString(gridPosAlive)
			} else {
				bw.WriteString(gridPosDead)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// RenderStatus writes the generation counter and run state line
func (r *TerminalRenderer) RenderStatus(w io.Writer, generation uint64, alive int, paused bool) error {
	status := "RUNNING"
	if paused {
		status = "PAUSED"
	}
	_, err := fmt.Fprintf(w, "\nGeneration: %d | Alive: %d | Status: %s\n", generation, alive, status)
	return err
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear(w io.Writer) error {
	_, err := io.WriteString(w, ansiClear)
	return err
}
