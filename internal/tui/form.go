package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marckohlbrugge/tempmail-cli/internal/api"
	"github.com/marckohlbrugge/tempmail-cli/internal/store"
)

const (
	fieldName = iota
	fieldAddress
	fieldExpires
	fieldCount
)

// draftForm edits a store.Draft. The draft itself is only written on
// submit, so the form owns its values while the user types.
type draftForm struct {
	draft  *store.Draft
	inputs []textinput.Model
	focus  int
	saving bool
	keys   formKeyMap
}

type draftSavedMsg struct {
	draft *store.Draft
	ok    bool
}

func newDraftForm(d *store.Draft) *draftForm {
	f := &draftForm{
		draft:  d,
		inputs: make([]textinput.Model, fieldCount),
		keys:   defaultFormKeyMap(),
	}

	values := []string{d.Name, d.Address, d.Expiration}
	placeholders := []string{"Shopping", "random", "YYYY-MM-DD or never"}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 128
		ti.SetValue(values[i])
		f.inputs[i] = ti
	}
	f.inputs[fieldName].Focus()
	return f
}

func (f *draftForm) title() string {
	if f.draft.Mode == store.DraftEdit {
		return "Edit mailbox"
	}
	return "New mailbox"
}

func (f *draftForm) setFocus(i int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (i + fieldCount) % fieldCount
	return f.inputs[f.focus].Focus()
}

// apply copies the input values into the draft.
func (f *draftForm) apply() {
	f.draft.Name = strings.TrimSpace(f.inputs[fieldName].Value())
	f.draft.Address = strings.TrimSpace(f.inputs[fieldAddress].Value())
	f.draft.Expiration = strings.TrimSpace(f.inputs[fieldExpires].Value())
	if f.draft.Address == "" {
		f.draft.RandomizeAddress()
	}
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	f := m.form

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, f.keys.Cancel):
			m.form = nil
			return m, nil
		case f.saving:
			return m, nil
		case key.Matches(keyMsg, f.keys.Submit):
			f.apply()
			f.saving = true
			d, s := f.draft, m.store
			return m, func() tea.Msg {
				return draftSavedMsg{draft: d, ok: s.SaveDraft(d)}
			}
		case key.Matches(keyMsg, f.keys.Next):
			return m, f.setFocus(f.focus + 1)
		case key.Matches(keyMsg, f.keys.Prev):
			return m, f.setFocus(f.focus - 1)
		case key.Matches(keyMsg, f.keys.Randomize):
			f.draft.RandomizeAddress()
			f.inputs[fieldAddress].SetValue(f.draft.Address)
			return m, nil
		case key.Matches(keyMsg, f.keys.Never):
			f.inputs[fieldExpires].SetValue(api.NeverExpires)
			return m, nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return m, cmd
}

// handleDraftSaved closes the form after a successful save. Results for a
// form that was cancelled in the meantime are dropped.
func (m Model) handleDraftSaved(msg draftSavedMsg) (tea.Model, tea.Cmd) {
	if m.form == nil || m.form.draft != msg.draft {
		return m, nil
	}
	if msg.ok {
		m.form = nil
		return m, nil
	}
	m.form.saving = false
	return m, nil
}

func (m Model) renderForm() string {
	f := m.form
	labels := []string{"Name", "Address", "Expires"}

	var b strings.Builder
	b.WriteString(m.styles.title.Render(f.title()))
	b.WriteString("\n\n")
	for i, ti := range f.inputs {
		b.WriteString(m.styles.label.Render(labels[i]))
		b.WriteString(ti.View())
		if i == fieldAddress && m.store.Connection().ServerName != "" {
			b.WriteString(m.styles.dim.Render(" @" + m.store.Connection().ServerName))
		}
		b.WriteString("\n")
	}
	if f.saving {
		b.WriteString("\n")
		b.WriteString(m.styles.dim.Render("Saving..."))
	}
	return b.String()
}
