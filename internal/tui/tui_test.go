package tui

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marckohlbrugge/tempmail-cli/internal/api"
	"github.com/marckohlbrugge/tempmail-cli/internal/notify"
	"github.com/marckohlbrugge/tempmail-cli/internal/store"
)

const testServer = "https://tmp.test.com"

func setupModel(t *testing.T) (Model, *store.Store) {
	t.Helper()

	httpmock.Activate()
	t.Cleanup(httpmock.DeactivateAndReset)

	httpmock.RegisterResponder("GET", testServer+"/status",
		httpmock.NewJsonResponderOrPanic(200, map[string]interface{}{
			"success":     true,
			"server_name": "tmp.test.com",
		}))
	httpmock.RegisterResponder("GET", testServer+"/mailboxes",
		httpmock.NewJsonResponderOrPanic(200, map[string]interface{}{
			"success": true,
			"mailboxes": []map[string]interface{}{
				{"id": 1, "name": "Shop", "address": "shop", "expires_at": "never"},
				{"id": 2, "name": "News", "address": "news", "expires_at": "never", "unread_count": 1},
			},
		}))
	httpmock.RegisterResponder("GET", testServer+"/mailboxes/2",
		httpmock.NewJsonResponderOrPanic(200, map[string]interface{}{
			"success": true,
			"mailbox": map[string]interface{}{
				"id": 2,
				"emails": []map[string]interface{}{
					{
						"id":      345,
						"read":    false,
						"headers": "From: a@example.org\r\nSubject: Weekly digest",
						"body":    "<p>Thanks for reading</p>",
					},
				},
			},
		}))

	s := store.New(notify.Discard, notify.Always(true), store.WithoutPush())
	m := newModel(context.Background(), s, Options{Server: testServer, Key: "key"})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = send(t, next.(Model), m.Init())
	return m, s
}

// send runs cmd once and feeds its message back into the model.
func send(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	next, _ := m.Update(cmd())
	return next.(Model)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_Connect(t *testing.T) {
	m, s := setupModel(t)

	assert.False(t, m.connecting)
	assert.Equal(t, store.ViewMailboxList, s.View())
	view := m.View()
	assert.Contains(t, view, "tmp.test.com")
	assert.Contains(t, view, "shop@tmp.test.com")
	assert.Contains(t, view, "news@tmp.test.com")
}

func TestModel_OpenMailboxAndEmail(t *testing.T) {
	m, s := setupModel(t)
	httpmock.RegisterResponder("PUT", testServer+"/mailboxes/2/345/read",
		httpmock.NewJsonResponderOrPanic(200, map[string]interface{}{"success": true}))

	m, _ = press(t, m, runes("j"))
	assert.Equal(t, 1, m.mailboxCursor)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, cmd)
	require.Equal(t, store.ViewMailboxOpen, s.View())
	assert.Contains(t, m.View(), "Weekly digest")

	m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, cmd)
	require.Equal(t, store.ViewEmailOpen, s.View())
	view := m.View()
	assert.Contains(t, view, "a@example.org")
	assert.Contains(t, view, "Thanks for reading")

	m, cmd = press(t, m, runes("h"))
	m = send(t, m, cmd)
	assert.True(t, s.ViewHeaders())

	m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	send(t, m, cmd)
	assert.Equal(t, store.ViewMailboxOpen, s.View())
}

func TestModel_DeleteCheckedEmails(t *testing.T) {
	m, s := setupModel(t)

	var sent []string
	httpmock.RegisterResponder("DELETE", testServer+"/mailboxes/2/mails",
		func(req *http.Request) (*http.Response, error) {
			body, _ := io.ReadAll(req.Body)
			require.NoError(t, json.Unmarshal(body, &sent))
			return httpmock.NewJsonResponse(200, map[string]interface{}{"success": true})
		})

	m, _ = press(t, m, runes("j"))
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, cmd)

	m, cmd = press(t, m, runes("x"))
	m = send(t, m, cmd)
	assert.Equal(t, 1, s.CheckedCount())
	assert.Contains(t, m.View(), "1 selected")

	m, cmd = press(t, m, runes("D"))
	m = send(t, m, cmd)

	assert.Equal(t, []string{"345"}, sent)
	assert.Empty(t, s.Emails())
	assert.Contains(t, m.View(), "No emails.")
}

func TestModel_CreateMailbox(t *testing.T) {
	m, _ := setupModel(t)

	var created api.Mailbox
	httpmock.RegisterResponder("POST", testServer+"/mailboxes",
		func(req *http.Request) (*http.Response, error) {
			require.NoError(t, json.NewDecoder(req.Body).Decode(&created))
			return httpmock.NewJsonResponse(200, map[string]interface{}{"success": true})
		})

	m, _ = press(t, m, runes("n"))
	require.NotNil(t, m.form)
	assert.Contains(t, m.View(), "New mailbox")

	m.form.inputs[fieldName].SetValue("")
	m, _ = press(t, m, runes("Travel"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = press(t, m, runes("trip"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.form.saving)
	m = send(t, m, cmd)

	assert.Nil(t, m.form)
	assert.Equal(t, "Travel", created.Name)
	assert.Equal(t, "trip", created.Address)
	assert.True(t, created.ExpiresAt.Never)
}

func TestModel_CreateMailboxInvalidExpiration(t *testing.T) {
	m, _ := setupModel(t)

	m, _ = press(t, m, runes("n"))
	m.form.inputs[fieldExpires].SetValue("soon")

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, cmd)

	require.NotNil(t, m.form, "form stays open")
	assert.False(t, m.form.saving)
	assert.Equal(t, 0, httpmock.GetCallCountInfo()["POST "+testServer+"/mailboxes"])
}

func TestModel_FormCancel(t *testing.T) {
	m, _ := setupModel(t)

	m, _ = press(t, m, runes("n"))
	require.NotNil(t, m.form)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.form)
}

func TestModel_SaveResultAfterCancelKeepsNewForm(t *testing.T) {
	m, _ := setupModel(t)
	httpmock.RegisterResponder("POST", testServer+"/mailboxes",
		httpmock.NewJsonResponderOrPanic(200, map[string]interface{}{"success": true}))

	m, _ = press(t, m, runes("n"))
	m, save := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, save)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.Nil(t, m.form)
	m, _ = press(t, m, runes("n"))
	second := m.form
	require.NotNil(t, second)

	m = send(t, m, save)

	assert.Same(t, second, m.form)
	assert.False(t, second.saving)
}

func TestModel_Notifications(t *testing.T) {
	m, _ := setupModel(t)

	next, cmd := m.Update(notificationMsg{notify.Notification{Level: notify.Danger, Message: "Error deleting mailbox!"}})
	m = next.(Model)
	assert.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Error deleting mailbox!")

	next, _ = m.Update(clearStatusMsg{seq: m.statusSeq - 1})
	m = next.(Model)
	assert.Contains(t, m.View(), "Error deleting mailbox!", "stale clear is ignored")

	next, _ = m.Update(clearStatusMsg{seq: m.statusSeq})
	m = next.(Model)
	assert.NotContains(t, m.View(), "Error deleting mailbox!")
}

func TestModel_Confirm(t *testing.T) {
	for _, tt := range []struct {
		key  string
		want bool
	}{
		{"y", true},
		{"n", false},
		{"q", false},
	} {
		t.Run(tt.key, func(t *testing.T) {
			m, _ := setupModel(t)
			reply := make(chan bool, 1)

			next, _ := m.Update(confirmMsg{prompt: "Do you really want to delete this Mailbox?\n\nShop", reply: reply})
			m = next.(Model)
			assert.Contains(t, m.View(), "Do you really want to delete this Mailbox? Shop [y/N]")

			m, cmd := press(t, m, runes(tt.key))
			assert.Nil(t, cmd)
			assert.Nil(t, m.confirm)
			assert.Equal(t, tt.want, <-reply)
		})
	}
}

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		name               string
		cursor, n, height  int
		wantStart, wantEnd int
	}{
		{"no height", 5, 10, 0, 0, 10},
		{"fits", 2, 3, 5, 0, 3},
		{"cursor at top", 0, 10, 4, 0, 4},
		{"cursor past window", 6, 10, 4, 3, 7},
		{"cursor at end", 9, 10, 4, 6, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := visibleRange(tt.cursor, tt.n, tt.height)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}
