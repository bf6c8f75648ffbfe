// Package notify carries short user-visible messages from the state store
// and the push client to whatever front-end is showing them.
package notify

import "sync"

// Level is the severity of a notification.
type Level int

const (
	Primary Level = iota
	Success
	Danger
)

func (l Level) String() string {
	switch l {
	case Success:
		return "success"
	case Danger:
		return "danger"
	default:
		return "primary"
	}
}

// Notification is a transient message for the user. Err is set when the
// message reports a rejected request, such as a *store.ValidationError.
type Notification struct {
	Level   Level
	Message string
	Err     error
}

// Notifier shows notifications to the user.
type Notifier interface {
	Notify(n Notification)
}

// Func adapts a function to the Notifier interface.
type Func func(n Notification)

func (f Func) Notify(n Notification) { f(n) }

// Discard drops every notification.
var Discard Notifier = Func(func(Notification) {})

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Always answers every question with the given value.
func Always(answer bool) Confirmer {
	return ConfirmFunc(func(string) bool { return answer })
}

// Recorder keeps every notification it receives.
type Recorder struct {
	mu   sync.Mutex
	list []Notification
}

func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.list = append(r.list, n)
}

// All returns the notifications received so far.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.list...)
}

// Messages returns the text of the notifications received so far.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	msgs := make([]string, len(r.list))
	for i, n := range r.list {
		msgs[i] = n.Message
	}
	return msgs
}
