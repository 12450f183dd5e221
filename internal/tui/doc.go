// Package tui implements the interactive plant browser using Bubble Tea.
//
// # Screen
//
//	┌──────────────────────────────────────────────┐
//	│ PLANTDECK v0.1.0  house plant catalog        │
//	├──────────────────────────────────────────────┤
//	│ Categories                                   │
//	│ ╭──────────╮ ╭──────╮ ╭──────╮               │
//	│ │ Succulent│ │✓ Fern│ │ Palm │               │
//	│ ╰──────────╯ ╰──────╯ ╰──────╯               │
//	│                                              │
//	│ Fern 12 plants                               │
//	│ ╭─────────────────────╮ ╭────────────────────╮
//	│ │ Boston fern         │ │ Maidenhair fern    │
//	│ ...                                          │
//	├──────────────────────────────────────────────┤
//	│ ←/h prev • →/l next • enter show • q quit    │
//	└──────────────────────────────────────────────┘
//
// The category list is read once when the program starts. Each category
// pick starts a new read and cancels the one in flight; the browser state
// machine drops any response that arrives for an older pick.
//
// # Messages
//
//   - categoriesLoadedMsg: the category read settled
//   - itemsLoadedMsg: a plant read settled, tagged with its ticket
//
// Logging goes through internal/logging; the command only enables it with
// a log file so the screen is never written to.
package tui
