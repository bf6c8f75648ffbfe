package mailbox

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/marckohlbrugge/tempmail-cli/internal/api"
	"github.com/marckohlbrugge/tempmail-cli/internal/cmdutil"
	"github.com/marckohlbrugge/tempmail-cli/internal/store"
	"github.com/marckohlbrugge/tempmail-cli/internal/textutil"
)

func validateExpiration(value string) error {
	value = strings.TrimSpace(value)
	if value == api.NeverExpires {
		return nil
	}
	if _, err := textutil.ParseInputDate(value, time.Local); err != nil {
		return errors.New("use YYYY-MM-DD, YYYY-MM-DDTHH:MM or never")
	}
	return nil
}

// runDraftForm lets the user fill in a draft interactively.
func runDraftForm(d *store.Draft) error {
	title := "New mailbox"
	if d.Mode == store.DraftEdit {
		title = "Edit mailbox"
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title(title),
			huh.NewInput().
				Title("Name").
				Placeholder("Shopping").
				Value(&d.Name),
			huh.NewInput().
				Title("Address").
				Description("Local part. Leave empty for a random one.").
				Value(&d.Address),
			huh.NewInput().
				Title("Expires").
				Description("YYYY-MM-DD, YYYY-MM-DDTHH:MM or never").
				Validate(validateExpiration).
				Value(&d.Expiration),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return cmdutil.CancelError
		}
		return err
	}
	return nil
}
