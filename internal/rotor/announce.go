package rotor

import "github.com/atomicstack/formatting-rotor/internal/settings"

// Announcements the rotor emits besides item, category and value descriptions.
const (
	MsgNoMatches       = "No items match"
	MsgNothingToDelete = "Nothing to delete"
	MsgConfigSaved     = "Config saved"
)

// Help describes how to operate the rotor.
const Help = "Press left/right to cycle through categories, then press up/down to select the " +
	"formatting setting you want. You can also type part of the setting, then press " +
	"up/down to search the settings. Backspace to remove typed characters. Press space " +
	"to cycle through the available settings. Press enter to save, or escape to cancel."

// Announcer receives text the user should be told about. The rotor decides
// what to say; the announcer decides how.
type Announcer interface {
	Announce(text string)
}

// AnnouncerFunc adapts a function to the Announcer interface.
type AnnouncerFunc func(text string)

func (f AnnouncerFunc) Announce(text string) { f(text) }

// Labeler renders a setting value for announcement.
type Labeler interface {
	Describe(key string, v settings.Value) string
}

func deletedMessage(r rune) string {
	return string(r) + " deleted"
}
