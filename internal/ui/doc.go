// Package ui contains the Bubble Tea program that hosts the select field.
// The Model owns message routing; the interaction logic lives in the
// selector, popup and state packages and is driven from here.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Host bindings for focus movement and submit are matched first. Other
//     key presses are translated to state.Key values (keys.go) and handed to
//     the select field, which resolves them to menu actions; escape on a
//     closed menu cancels the program.
//   - Mouse events are hit-tested against bubblezone marks placed by View and
//     become hover, click and click-away calls (mouse.go).
//   - Open and close animations finish with a popover.SettledMsg; the first
//     render may schedule a selector.RetryMsg. Both are forwarded to the
//     select so post-animation focus effects and the deferred recompute run
//     inside Update.
//
// State ownership:
//   - Options live in a state.OptionStore. A backend.Watcher reloads the items
//     file and the dispatcher merges new entries into the store, keeping
//     option identity so selection and focus survive a reload.
//   - Notifications (select, change, input) arrive on the command bus shared
//     with the select; the model listens for them to decide when to submit.
package ui
