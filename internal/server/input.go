package server

import "unicode/utf8"

// Action is a session command decoded from keyboard input.
type Action int

const (
	ActionNone Action = iota
	ActionGenerate
	ActionPrevious
	ActionCollection
	ActionQuit
)

// parseInput converts raw bytes into session actions.
// Handles G/space/enter, C, arrow keys for history, Q, and Ctrl-C.
func parseInput(data []byte) []Action {
	var actions []Action
	i := 0
	for i < len(data) {
		// Check for escape sequences (arrow keys)
		if i+2 < len(data) && data[i] == 0x1b && data[i+1] == '[' {
			switch data[i+2] {
			case 'C':
				actions = append(actions, ActionGenerate)
			case 'D':
				actions = append(actions, ActionPrevious)
			}
			i += 3
			continue
		}

		// Single byte inputs
		r, size := utf8.DecodeRune(data[i:])
		switch r {
		case 'g', 'G', ' ', '\r':
			actions = append(actions, ActionGenerate)
		case 'b', 'B':
			actions = append(actions, ActionPrevious)
		case 'c', 'C':
			actions = append(actions, ActionCollection)
		case 'q', 'Q':
			actions = append(actions, ActionQuit)
		case 3: // Ctrl-C
			actions = append(actions, ActionQuit)
		}
		i += size
	}
	return actions
}
