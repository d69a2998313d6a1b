package tui

import (
	"darkvale/pkg/engine/input"
)

// holdWindow is how long a terminal key press counts as held, in milliseconds.
// Terminals send no key releases, only repeats while the key stays down.
const holdWindow = 200

// keyHolds turns terminal key codes into the press and hold state map mode expects
type keyHolds struct {
	until map[input.Action]int64
}

func newKeyHolds() *keyHolds {
	return &keyHolds{until: make(map[input.Action]int64)}
}

// apply resets in and fills it with the codes read since the last tick.
// A code presses its action; the action stays held for holdWindow after its last code.
func (k *keyHolds) apply(in *input.State, codes []string, now int64) {
	in.Reset()
	for _, code := range codes {
		a := in.PressCode(input.RawInput{Device: input.DeviceTerminal, Code: code})
		if a != input.ActionNone {
			k.until[a] = now + holdWindow
		}
	}
	for a, until := range k.until {
		if until <= now {
			delete(k.until, a)
			continue
		}
		in.Hold(a)
	}
}

// drain returns the codes waiting on a channel without blocking
func drain(keys <-chan string) []string {
	var codes []string
	for {
		select {
		case code, ok := <-keys:
			if !ok {
				return append(codes, "q")
			}
			codes = append(codes, code)
		default:
			return codes
		}
	}
}
