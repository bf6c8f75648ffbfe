package api

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want ID
	}{
		{"string", `"abc"`, "abc"},
		{"number", `42`, "42"},
		{"null", `null`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ID
			require.NoError(t, json.Unmarshal([]byte(tt.in), &id))
			assert.Equal(t, tt.want, id)
		})
	}

	t.Run("rejects objects", func(t *testing.T) {
		var id ID
		assert.Error(t, json.Unmarshal([]byte(`{}`), &id))
	})
}

func TestExpiry(t *testing.T) {
	t.Run("never round trips as sentinel", func(t *testing.T) {
		data, err := json.Marshal(ExpiresNever())
		require.NoError(t, err)
		assert.Equal(t, `"never"`, string(data))
	})

	t.Run("timestamp is encoded in UTC", func(t *testing.T) {
		at := time.Date(2031, 5, 6, 7, 8, 9, 0, time.FixedZone("X", 3600))
		data, err := json.Marshal(ExpiresAt(at))
		require.NoError(t, err)
		assert.Equal(t, `"2031-05-06T06:08:09Z"`, string(data))
	})

	t.Run("unset is encoded as null", func(t *testing.T) {
		data, err := json.Marshal(Expiry{})
		require.NoError(t, err)
		assert.Equal(t, "null", string(data))

		var e Expiry
		require.NoError(t, json.Unmarshal(data, &e))
		assert.Equal(t, Expiry{}, e)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		var e Expiry
		assert.Error(t, json.Unmarshal([]byte(`"tomorrow"`), &e))
	})

	t.Run("string form", func(t *testing.T) {
		assert.Equal(t, "never", ExpiresNever().String())
		assert.Equal(t, "", Expiry{}.String())
	})
}

func TestMailbox_FullAddress(t *testing.T) {
	mb := Mailbox{Address: "shop"}

	assert.Equal(t, "shop@tmp.example.org", mb.FullAddress("tmp.example.org"))
	assert.Equal(t, "shop", mb.FullAddress(""))
}

func TestEmail_Envelope(t *testing.T) {
	t.Run("parses common headers", func(t *testing.T) {
		email := Email{Headers: "From: Alice Example <alice@example.com>\n" +
			"To: shop@tmp.example.org\n" +
			"Subject: =?utf-8?q?Hello_there?=\n" +
			"Date: Mon, 02 Jan 2006 15:04:05 +0000\n"}

		env := email.Envelope()

		assert.Equal(t, "Hello there", env.Subject)
		assert.Equal(t, "Alice Example <alice@example.com>", env.From)
		assert.Equal(t, "shop@tmp.example.org", env.To)
		assert.Equal(t, 2006, env.Date.Year())
	})

	t.Run("empty headers", func(t *testing.T) {
		email := Email{}
		assert.Equal(t, Envelope{}, email.Envelope())
	})
}

func TestParseID(t *testing.T) {
	id, err := ParseID(" 12 ")
	require.NoError(t, err)
	assert.Equal(t, ID("12"), id)

	_, err = ParseID("")
	assert.Error(t, err)
}
