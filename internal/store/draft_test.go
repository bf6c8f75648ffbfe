package store

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marckohlbrugge/tempmail-cli/internal/api"
)

func TestNewDraft(t *testing.T) {
	s := New(nil, nil, WithoutPush(), WithClock(func() time.Time { return testNow }))

	t.Run("create defaults", func(t *testing.T) {
		d := s.NewDraft(nil)

		assert.Equal(t, DraftCreate, d.Mode)
		assert.Equal(t, "2026-06-02", d.Expiration)
		assert.Nil(t, d.Mailbox)
		assert.Empty(t, d.Name)
	})

	t.Run("edit copies mailbox", func(t *testing.T) {
		mb := &api.Mailbox{
			ID:        "4",
			Name:      "shop",
			Address:   "shop",
			ExpiresAt: api.ExpiresNever(),
			Emails:    []api.Email{{ID: "1"}},
		}
		d := s.NewDraft(mb)

		assert.Equal(t, DraftEdit, d.Mode)
		assert.Equal(t, "shop", d.Name)
		assert.Equal(t, api.NeverExpires, d.Expiration)
		require.NotNil(t, d.Mailbox)
		assert.Nil(t, d.Mailbox.Emails)

		d.Mailbox.Name = "changed"
		assert.Equal(t, "shop", mb.Name, "draft does not alias the mailbox")
	})

	t.Run("edit leaves unset expiration empty", func(t *testing.T) {
		d := s.NewDraft(&api.Mailbox{ID: "5", Name: "old", Address: "old"})

		assert.Empty(t, d.Expiration)

		mb, err := d.Build(time.UTC)
		require.NoError(t, err)
		assert.Equal(t, api.Expiry{}, mb.ExpiresAt)
	})
}

func TestDraft_RandomizeAddress(t *testing.T) {
	d := &Draft{}
	d.RandomizeAddress()

	assert.Len(t, d.Address, 16)
	assert.Regexp(t, "^[0-9a-f]+$", d.Address)
}

func TestDraft_Build(t *testing.T) {
	d := &Draft{Name: "  news ", Address: " news ", Expiration: "2026-07-01"}

	mb, err := d.Build(time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "news", mb.Name)
	assert.Equal(t, "news", mb.Address)
	assert.False(t, mb.ExpiresAt.Never)
	assert.Equal(t, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), mb.ExpiresAt.At)

	d.Expiration = "next week"
	_, err = d.Build(time.UTC)
	assert.Error(t, err)

	d.Expiration = ""
	_, err = d.Build(time.UTC)
	assert.Error(t, err, "new mailboxes need an expiration")
}

func TestSaveDraft(t *testing.T) {
	t.Run("create posts mailbox", func(t *testing.T) {
		s, rec := setupStore(t)

		var sent map[string]interface{}
		httpmock.RegisterResponder("POST", testServer+"/mailboxes",
			func(req *http.Request) (*http.Response, error) {
				body, _ := io.ReadAll(req.Body)
				require.NoError(t, json.Unmarshal(body, &sent))
				return httpmock.NewJsonResponse(200, map[string]interface{}{"success": true})
			})

		d := s.NewDraft(nil)
		d.Name = "news"
		d.Address = "news"
		d.Expiration = api.NeverExpires

		require.True(t, s.SaveDraft(d))
		assert.Equal(t, "news", sent["name"])
		assert.Equal(t, "never", sent["expires_at"])
		assert.Contains(t, rec.Messages(), "Mailbox created successfully!")
	})

	t.Run("edit puts mailbox", func(t *testing.T) {
		s, rec := setupStore(t, mailboxJSON("3", "old", 0))
		httpmock.RegisterResponder("PUT", testServer+"/mailboxes/3", successJSON())

		mb, _ := s.Mailbox("3")
		d := s.NewDraft(&mb)
		d.Name = "new"

		require.True(t, s.SaveDraft(d))
		assert.Equal(t, 1, httpmock.GetCallCountInfo()["PUT "+testServer+"/mailboxes/3"])
		assert.Contains(t, rec.Messages(), "Mailbox edited successfully!")
	})

	t.Run("server error reports message", func(t *testing.T) {
		s, rec := setupStore(t)
		httpmock.RegisterResponder("POST", testServer+"/mailboxes",
			httpmock.NewJsonResponderOrPanic(400, map[string]interface{}{"success": false, "error": "address taken"}))

		d := s.NewDraft(nil)
		d.Address = "taken"

		assert.False(t, s.SaveDraft(d))
		assert.False(t, d.Saving, "draft can be resubmitted")
		assert.Contains(t, rec.Messages(), "Error creating mailbox: address taken")
	})

	t.Run("in-flight draft is not resubmitted", func(t *testing.T) {
		s, _ := setupStore(t)
		httpmock.RegisterResponder("POST", testServer+"/mailboxes", successJSON())

		d := s.NewDraft(nil)
		d.Saving = true

		assert.False(t, s.SaveDraft(d))
		assert.Equal(t, 0, httpmock.GetCallCountInfo()["POST "+testServer+"/mailboxes"])
	})

	t.Run("invalid expiration", func(t *testing.T) {
		s, rec := setupStore(t)

		d := s.NewDraft(nil)
		d.Expiration = "soon"

		assert.False(t, s.SaveDraft(d))
		assert.Equal(t, 0, httpmock.GetCallCountInfo()["POST "+testServer+"/mailboxes"])
		assert.Contains(t, rec.Messages(), `Error creating mailbox: invalid expiration "soon"`)
	})
}
