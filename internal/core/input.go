package core

// Action represents a semantic scene action, abstracted from physical key presses.
// The platform maps keys to actions; scenes never see terminal key names.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - walk left while held
	ActionRight          // D, Right arrow - walk right while held
	ActionJump           // Space, W, Up - jump when grounded
	ActionTalk           // Tab - enter dialogue mode
	ActionLeave          // Esc - leave dialogue mode
	ActionCommit         // Enter - commit the typed line
	ActionErase          // Backspace - delete last typed character
	ActionHistory        // H - print dialogue history
	ActionQuit           // Q - leave the scene (outside dialogue)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionTalk:
		return "Talk"
	case ActionLeave:
		return "Leave"
	case ActionCommit:
		return "Commit"
	case ActionErase:
		return "Erase"
	case ActionHistory:
		return "History"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// EventKind tags an input event.
type EventKind int

const (
	EventQuit    EventKind = iota // quit signal from the input source
	EventKeyDown                  // key pressed, Action is set
	EventKeyUp                    // key released, Action is set
	EventText                     // decoded text input, Text is set
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "Quit"
	case EventKeyDown:
		return "KeyDown"
	case EventKeyUp:
		return "KeyUp"
	case EventText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Event is a single tagged input event.
type Event struct {
	Kind   EventKind
	Action Action
	Text   string
}

// QuitEvent returns a quit signal.
func QuitEvent() Event {
	return Event{Kind: EventQuit}
}

// KeyDown returns a key-down event for the action.
func KeyDown(a Action) Event {
	return Event{Kind: EventKeyDown, Action: a}
}

// KeyUp returns a key-up event for the action.
func KeyUp(a Action) Event {
	return Event{Kind: EventKeyUp, Action: a}
}

// TextInput returns a text-input event.
func TextInput(text string) Event {
	return Event{Kind: EventText, Text: text}
}

// Frame is the ordered batch of input events polled for one frame.
type Frame struct {
	Events []Event
}

// NewFrame creates a frame from the given events.
func NewFrame(events ...Event) Frame {
	return Frame{Events: events}
}

// Push appends an event to the frame.
func (f *Frame) Push(e Event) {
	f.Events = append(f.Events, e)
}

// Len returns the number of queued events.
func (f Frame) Len() int {
	return len(f.Events)
}

// Clear drops all events, keeping the backing storage for the next frame.
func (f *Frame) Clear() {
	f.Events = f.Events[:0]
}

// Clone creates a copy of this frame.
func (f Frame) Clone() Frame {
	events := make([]Event, len(f.Events))
	copy(events, f.Events)
	return Frame{Events: events}
}
