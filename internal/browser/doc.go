// Package browser implements the category/plant browsing state machine.
//
// A Browser owns two flows:
//
//   - the category loader, read exactly once (BeginCategories, CompleteCategories)
//   - the item browser, re-entered on every SelectCategory call
//
// Each item read moves idle -> loading -> success|error, and any state may
// go back to loading on a new selection. SelectCategory returns a Ticket;
// CompleteItems ignores tickets superseded by a later selection, so a slow
// response can never overwrite a newer one.
//
// The browser does no I/O. Fetch wraps a read so failures come back as
// *LoadError carrying the static message of their kind.
package browser
