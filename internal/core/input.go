package core

// Action is a semantic game action, decoupled from the physical key that
// produced it. Games react to actions; the platform owns the key bindings.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // Up arrow, K
	ActionDown             // Down arrow, J
	ActionLeft             // Left arrow
	ActionRight            // Right arrow, L
	ActionSelect           // Space: toggle the cell under the cursor
	ActionConfirm          // Enter: submit or check
	ActionBack             // Esc, B: return to menu
	ActionRestart          // R: restart after game over
	ActionQuit             // Q, Ctrl+C
	ActionPause            // P
	ActionStart            // S: start a timed round
	ActionHint             // H: show a hint
	ActionClear            // C: clear selection, input or frame
	ActionNew              // N: new problem, card or random fill
	ActionRepeat           // V: show the current card again
	ActionMore             // +: increase (weight, size)
	ActionLess             // -: decrease (weight, size)
	ActionBackspace        // Backspace: delete the last digit
	ActionDigit0           // 0-9 follow in order
	ActionDigit1
	ActionDigit2
	ActionDigit3
	ActionDigit4
	ActionDigit5
	ActionDigit6
	ActionDigit7
	ActionDigit8
	ActionDigit9
)

var actionNames = map[Action]string{
	ActionNone:      "None",
	ActionUp:        "Up",
	ActionDown:      "Down",
	ActionLeft:      "Left",
	ActionRight:     "Right",
	ActionSelect:    "Select",
	ActionConfirm:   "Confirm",
	ActionBack:      "Back",
	ActionRestart:   "Restart",
	ActionQuit:      "Quit",
	ActionPause:     "Pause",
	ActionStart:     "Start",
	ActionHint:      "Hint",
	ActionClear:     "Clear",
	ActionNew:       "New",
	ActionRepeat:    "Repeat",
	ActionMore:      "More",
	ActionLess:      "Less",
	ActionBackspace: "Backspace",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if d, ok := a.Digit(); ok {
		return "Digit" + string(rune('0'+d))
	}
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// DigitAction returns the action for digit d (0-9).
func DigitAction(d int) Action {
	if d < 0 || d > 9 {
		return ActionNone
	}
	return ActionDigit0 + Action(d)
}

// Digit returns the digit carried by a digit action.
func (a Action) Digit() (int, bool) {
	if a < ActionDigit0 || a > ActionDigit9 {
		return 0, false
	}
	return int(a - ActionDigit0), true
}

// InputFrame holds the actions triggered during one simulation tick.
// Digits are additionally kept in arrival order so fast typing between
// two ticks is not reordered.
type InputFrame struct {
	Actions map[Action]bool
	Digits  []int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
	if d, ok := a.Digit(); ok {
		f.Digits = append(f.Digits, d)
	}
}

// Has returns true if the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Digits = f.Digits[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Digits = append([]int(nil), f.Digits...)
	return clone
}

// Frame builds an input frame from a list of actions. Handy for tests and
// scripted play.
func Frame(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}
