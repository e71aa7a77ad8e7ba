// Package assistant models the conversational assistant widget: its
// display states, persona selection and message log.
package assistant

import (
	"context"
	"errors"
	"sync"
)

// State is the display state of the widget.
type State int

const (
	DockedCollapsed State = iota
	DockedMinimized
	FullScreenChat
)

func (s State) String() string {
	switch s {
	case DockedCollapsed:
		return "docked_collapsed"
	case DockedMinimized:
		return "docked_minimized"
	case FullScreenChat:
		return "full_screen_chat"
	}
	return "unknown"
}

// ScrollThreshold is the vertical page offset, in pixels, that opens the
// chat automatically.
const ScrollThreshold = 200

// Entry is one line of the message log.
type Entry struct {
	Text     string
	FromUser bool
	Persona  Persona
}

// Token identifies the most recent user turn. A reply is accepted only for
// the current token.
type Token uint64

// Widget is the assistant widget state machine. It is safe for concurrent use.
type Widget struct {
	mu       sync.Mutex
	state    State
	latched  bool
	persona  Persona
	messages []Entry
	inFlight Token
}

// NewWidget returns a docked widget showing the greeter.
func NewWidget() *Widget {
	return &Widget{state: DockedCollapsed, persona: PersonaGreeter}
}

func (w *Widget) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

func (w *Widget) Persona() Persona {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.persona
}

// Messages returns a copy of the log, oldest first.
func (w *Widget) Messages() []Entry {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]Entry, len(w.messages))
	copy(out, w.messages)
	return out
}

// Scroll reports a page offset. The first offset at or past ScrollThreshold
// latches; if the widget is docked-collapsed at that moment it opens the chat.
// Reports whether the chat was opened.
func (w *Widget) Scroll(y int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.latched || y < ScrollThreshold {
		return false
	}
	w.latched = true
	if w.state != DockedCollapsed {
		return false
	}
	w.state = FullScreenChat
	return true
}

// Minimize docks the widget as a small button.
func (w *Widget) Minimize() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state = DockedMinimized
}

// Maximize restores a minimized widget to the docked card.
func (w *Widget) Maximize() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == DockedMinimized {
		w.state = DockedCollapsed
	}
}

// OpenChat switches to the full-screen chat.
func (w *Widget) OpenChat() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state = FullScreenChat
}

// Close leaves the full-screen chat.
func (w *Widget) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == FullScreenChat {
		w.state = DockedCollapsed
	}
}

// Say appends a typed user message, selects the persona from it and returns
// the token the reply must carry.
func (w *Widget) Say(text string) Token {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.persona = SelectPersona(text)
	w.messages = append(w.messages, Entry{Text: text, FromUser: true, Persona: w.persona})
	w.inFlight++
	return w.inFlight
}

// Reply appends an assistant reply if tok is still current. Replies to
// superseded turns are dropped.
func (w *Widget) Reply(tok Token, text string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if tok != w.inFlight {
		return false
	}
	w.messages = append(w.messages, Entry{Text: text, Persona: w.persona})
	return true
}

// Recognizer turns speech into text.
type Recognizer interface {
	Recognize(ctx context.Context) (string, error)
}

// ErrRecognitionUnsupported is returned by a Recognizer when speech capture
// is not available.
var ErrRecognitionUnsupported = errors.New("speech recognition is not supported")

// AlertError is a failure to show to the user as an alert.
type AlertError struct {
	Message string
	Err     error
}

func (e *AlertError) Error() string { return e.Message }

func (e *AlertError) Unwrap() error { return e.Err }

// Listen captures one utterance and treats it like a typed message. On any
// failure the widget is left unchanged and an *AlertError is returned.
func (w *Widget) Listen(ctx context.Context, r Recognizer) (Token, error) {
	if r == nil {
		return 0, &AlertError{
			Message: "Speech recognition is not supported on this device.",
			Err:     ErrRecognitionUnsupported,
		}
	}

	text, err := r.Recognize(ctx)
	if err != nil {
		msg := "Sorry, I couldn't hear that. Please try again."
		if errors.Is(err, ErrRecognitionUnsupported) {
			msg = "Speech recognition is not supported on this device."
		}
		return 0, &AlertError{Message: msg, Err: err}
	}
	if text == "" {
		return 0, &AlertError{Message: "Sorry, I couldn't hear that. Please try again."}
	}

	return w.Say(text), nil
}
