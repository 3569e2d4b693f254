// Package ui hosts a formatting rotor in a Bubble Tea program.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Key presses are decoded into rotor events (internal/ui/input.go) and
//     dispatched to the rotor. The rotor owns cursor, search and edit session
//     state; the model only keeps what is needed to draw it.
//   - Announcements produced by the rotor are captured through an
//     AnnouncerFunc and shown on the status line above the search prompt.
//   - Saving or cancelling finishes the rotor and the model returns tea.Quit.
//
// Rendering (internal/ui/view.go) shows the current category, its settings
// with their working values and a marker on edited ones, or every match while
// a search is active.
package ui
