package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	r := &Recorder{}

	r.Notify(Notification{Level: Danger, Message: "boom"})
	r.Notify(Notification{Message: "hello"})

	assert.Equal(t, []string{"boom", "hello"}, r.Messages())
	assert.Equal(t, Danger, r.All()[0].Level)
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "primary", Primary.String())
	assert.Equal(t, "success", Success.String())
	assert.Equal(t, "danger", Danger.String())
}

func TestAlways(t *testing.T) {
	assert.True(t, Always(true).Confirm("sure?"))
	assert.False(t, Always(false).Confirm("sure?"))
}
