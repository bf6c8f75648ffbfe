package email

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marckohlbrugge/tempmail-cli/internal/auth"
	"github.com/marckohlbrugge/tempmail-cli/internal/cmdutil"
	"github.com/marckohlbrugge/tempmail-cli/internal/iostreams"
)

const testServer = "https://tmp.test.com"

func setupTest(t *testing.T) (*cmdutil.Factory, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	httpmock.Activate()
	t.Cleanup(httpmock.DeactivateAndReset)
	t.Setenv("TM_UNSAFE", "")

	httpmock.RegisterResponder("GET", testServer+"/status",
		httpmock.NewJsonResponderOrPanic(200, map[string]interface{}{
			"success":     true,
			"server_name": "tmp.test.com",
		}))
	httpmock.RegisterResponder("GET", testServer+"/mailboxes",
		httpmock.NewJsonResponderOrPanic(200, map[string]interface{}{
			"success": true,
			"mailboxes": []map[string]interface{}{
				{"id": 12, "name": "Shop", "address": "shop", "expires_at": "never", "unread_count": 1},
			},
		}))
	httpmock.RegisterResponder("GET", testServer+"/mailboxes/12",
		httpmock.NewJsonResponderOrPanic(200, map[string]interface{}{
			"success": true,
			"mailbox": map[string]interface{}{
				"id": 12,
				"emails": []map[string]interface{}{
					{
						"id":      345,
						"read":    false,
						"headers": "From: Shop <orders@shop.example>\r\nTo: shop@tmp.test.com\r\nSubject: Your order\r\nDate: Mon, 01 Jun 2026 09:30:00 +0000\r\n",
						"body":    `<h1>Thanks!</h1><p>Order <b>#42</b> shipped.</p><script>alert(1)</script>`,
					},
					{
						"id":      346,
						"read":    true,
						"headers": "From: news@example.org\r\nSubject: Weekly",
						"body":    "<p>hi</p>",
					},
				},
			},
		}))

	ios, _, stdout, stderr := iostreams.Test()
	f := &cmdutil.Factory{IOStreams: ios}
	f.SetCredentials(auth.Credentials{Server: testServer, Key: "test-key"})

	return f, stdout, stderr
}

// List command tests

func TestListCommand(t *testing.T) {
	t.Run("lists emails", func(t *testing.T) {
		f, stdout, _ := setupTest(t)

		cmd := NewCmdList(f)
		cmd.SetArgs([]string{"12"})
		cmd.SetOut(stdout)
		cmd.SetErr(&bytes.Buffer{})

		require.NoError(t, cmd.Execute())

		lines := bytes.Split(bytes.TrimSpace(stdout.Bytes()), []byte("\n"))
		require.Len(t, lines, 2)
		assert.Contains(t, string(lines[0]), "*  345")
		assert.Contains(t, string(lines[0]), "Shop <orders@shop.example>")
		assert.Contains(t, string(lines[0]), "Your order")
		assert.Contains(t, string(lines[1]), "  346")
		assert.Contains(t, string(lines[1]), "Weekly")
	})

	t.Run("outputs JSON format", func(t *testing.T) {
		f, stdout, _ := setupTest(t)

		cmd := NewCmdList(f)
		cmd.SetArgs([]string{"12", "--json"})
		cmd.SetOut(stdout)
		cmd.SetErr(&bytes.Buffer{})

		require.NoError(t, cmd.Execute())

		var result []map[string]interface{}
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &result))
		require.Len(t, result, 2)
		assert.Equal(t, "345", result[0]["id"])
		assert.Equal(t, false, result[0]["read"])
	})

	t.Run("unknown mailbox", func(t *testing.T) {
		f, _, _ := setupTest(t)

		cmd := NewCmdList(f)
		cmd.SetArgs([]string{"99"})
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})

		err := cmd.Execute()

		var notFound *cmdutil.NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "mailbox", notFound.Resource)
	})

	t.Run("mailbox load failure", func(t *testing.T) {
		f, _, stderr := setupTest(t)
		httpmock.RegisterResponder("GET", testServer+"/mailboxes/12",
			httpmock.NewStringResponder(500, "boom"))

		cmd := NewCmdList(f)
		cmd.SetArgs([]string{"12"})
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})

		assert.Equal(t, cmdutil.SilentError, cmd.Execute())
		assert.Contains(t, stderr.String(), "Error loading Mailbox!")
	})
}

// Read command tests

func TestReadCommand(t *testing.T) {
	t.Run("prints sanitized body and marks read", func(t *testing.T) {
		f, stdout, _ := setupTest(t)
		httpmock.RegisterResponder("PUT", testServer+"/mailboxes/12/345/read",
			httpmock.NewJsonResponderOrPanic(200, map[string]interface{}{"success": true}))

		cmd := NewCmdRead(f)
		cmd.SetArgs([]string{"12", "345"})
		cmd.SetOut(stdout)
		cmd.SetErr(&bytes.Buffer{})

		require.NoError(t, cmd.Execute())

		output := stdout.String()
		assert.Contains(t, output, "From:    Shop <orders@shop.example>")
		assert.Contains(t, output, "Subject: Your order")
		assert.Contains(t, output, "Thanks!")
		assert.Contains(t, output, "#42")
		assert.NotContains(t, output, "alert")
		assert.Equal(t, 1, httpmock.GetCallCountInfo()["PUT "+testServer+"/mailboxes/12/345/read"])
	})

	t.Run("read email is not marked again", func(t *testing.T) {
		f, stdout, _ := setupTest(t)

		cmd := NewCmdRead(f)
		cmd.SetArgs([]string{"12", "346"})
		cmd.SetOut(stdout)
		cmd.SetErr(&bytes.Buffer{})

		require.NoError(t, cmd.Execute())
		assert.Contains(t, stdout.String(), "Subject: Weekly")
		assert.Equal(t, 0, httpmock.GetCallCountInfo()["PUT "+testServer+"/mailboxes/12/346/read"])
	})

	t.Run("raw headers", func(t *testing.T) {
		f, stdout, _ := setupTest(t)

		cmd := NewCmdRead(f)
		cmd.SetArgs([]string{"12", "346", "--headers"})
		cmd.SetOut(stdout)
		cmd.SetErr(&bytes.Buffer{})

		require.NoError(t, cmd.Execute())
		assert.Equal(t, "From: news@example.org\r\nSubject: Weekly\n", stdout.String())
	})

	t.Run("unknown email", func(t *testing.T) {
		f, _, _ := setupTest(t)

		cmd := NewCmdRead(f)
		cmd.SetArgs([]string{"12", "999"})
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})

		err := cmd.Execute()

		var notFound *cmdutil.NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "email", notFound.Resource)
		assert.Equal(t, "999", notFound.ID)
	})

	t.Run("requires both IDs", func(t *testing.T) {
		f, _, _ := setupTest(t)

		cmd := NewCmdRead(f)
		cmd.SetArgs([]string{"12"})
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})

		err := cmd.Execute()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "mailbox ID and email ID required")
	})
}

// Delete command tests

func TestDeleteCommand(t *testing.T) {
	t.Run("blocked in safe mode", func(t *testing.T) {
		f, _, _ := setupTest(t)

		cmd := NewCmdDelete(f)
		cmd.SetArgs([]string{"12", "345", "--yes"})
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})

		err := cmd.Execute()

		var safeErr *cmdutil.SafeModeError
		require.ErrorAs(t, err, &safeErr)
		assert.Contains(t, err.Error(), "tm email delete")
	})

	t.Run("deletes batch", func(t *testing.T) {
		f, stdout, _ := setupTest(t)
		t.Setenv("TM_UNSAFE", "1")

		var sent []string
		httpmock.RegisterResponder("DELETE", testServer+"/mailboxes/12/mails",
			func(req *http.Request) (*http.Response, error) {
				body, _ := io.ReadAll(req.Body)
				require.NoError(t, json.Unmarshal(body, &sent))
				return httpmock.NewJsonResponse(200, map[string]interface{}{"success": true})
			})

		cmd := NewCmdDelete(f)
		cmd.SetArgs([]string{"12", "345", "346"})
		cmd.SetOut(stdout)
		cmd.SetErr(&bytes.Buffer{})

		require.NoError(t, cmd.Execute())
		assert.Equal(t, []string{"345", "346"}, sent)
		assert.Equal(t, "Deleted 2 email(s).\n", stdout.String())
	})

	t.Run("over the batch limit", func(t *testing.T) {
		f, _, stderr := setupTest(t)

		args := []string{"12", "--unsafe"}
		for i := 0; i < 51; i++ {
			args = append(args, fmt.Sprint(1000+i))
		}

		cmd := NewCmdDelete(f)
		cmd.SetArgs(args)
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})

		assert.Equal(t, cmdutil.SilentError, cmd.Execute())
		assert.Contains(t, stderr.String(), "Can't delete more than 50 emails at once!")
		assert.Equal(t, 0, httpmock.GetCallCountInfo()["DELETE "+testServer+"/mailboxes/12/mails"])
	})

	t.Run("requires an email ID", func(t *testing.T) {
		f, _, _ := setupTest(t)

		cmd := NewCmdDelete(f)
		cmd.SetArgs([]string{"12"})
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})

		err := cmd.Execute()

		var flagErr *cmdutil.FlagError
		require.ErrorAs(t, err, &flagErr)
	})
}
