package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up            key.Binding
	Down          key.Binding
	Open          key.Binding
	Back          key.Binding
	New           key.Binding
	Edit          key.Binding
	Lock          key.Binding
	Delete        key.Binding
	Check         key.Binding
	DeleteChecked key.Binding
	Headers       key.Binding
	Copy          key.Binding
	Refresh       key.Binding
	Quit          key.Binding
	ForceQuit     key.Binding
}

type formKeyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Randomize key.Binding
	Never     key.Binding
	Submit    key.Binding
	Cancel    key.Binding
}

func binding(desc string, keys ...string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keys[0], desc),
	)
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:            binding("up", "k", "up"),
		Down:          binding("down", "j", "down"),
		Open:          binding("open", "enter"),
		Back:          binding("back", "esc", "backspace"),
		New:           binding("new", "n"),
		Edit:          binding("edit", "e"),
		Lock:          binding("lock", "l"),
		Delete:        binding("delete", "d"),
		Check:         binding("select", "x", " "),
		DeleteChecked: binding("delete selected", "D"),
		Headers:       binding("headers", "h"),
		Copy:          binding("copy address", "c"),
		Refresh:       binding("refresh", "r"),
		Quit:          binding("quit", "q"),
		ForceQuit:     binding("quit", "ctrl+c"),
	}
}

func defaultFormKeyMap() formKeyMap {
	return formKeyMap{
		Next:      binding("next", "tab", "down"),
		Prev:      binding("prev", "shift+tab", "up"),
		Randomize: binding("random address", "ctrl+r"),
		Never:     binding("never expires", "ctrl+n"),
		Submit:    binding("save", "enter"),
		Cancel:    binding("cancel", "esc"),
	}
}

func (k keyMap) mailboxListHelp() []key.Binding {
	return []key.Binding{k.Open, k.New, k.Edit, k.Lock, k.Delete, k.Copy, k.Refresh, k.Quit}
}

func (k keyMap) emailListHelp() []key.Binding {
	return []key.Binding{k.Open, k.Check, k.DeleteChecked, k.Delete, k.Lock, k.Copy, k.Back, k.Quit}
}

func (k keyMap) emailHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Headers, k.Delete, k.Back, k.Quit}
}

func (k formKeyMap) help() []key.Binding {
	return []key.Binding{k.Next, k.Randomize, k.Never, k.Submit, k.Cancel}
}
