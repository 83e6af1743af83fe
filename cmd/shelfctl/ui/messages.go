package ui

import "shelfctl/internal/catalog"

// Messages flowing between the async commands, the pages and the root
// model. Every fetch-shaped message carries the page index it belongs to;
// itemsMsg additionally carries the fetch sequence number so a page can
// discard responses it no longer cares about.

type itemsMsg struct {
	page  int
	seq   int
	items []catalog.Item
	err   error
}

// fieldsMsg delivers a loaded form schema; optErr flags option lists that
// failed to load while the form still opens.
type fieldsMsg struct {
	page   int
	id     int64
	fields []catalog.Field
	optErr error
}

// openFormMsg asks the root model to load the form for the given item
// (nil for create mode).
type openFormMsg struct {
	page int
	item *catalog.Item
}

// confirmRequestMsg asks the root model to pose a yes/no question before
// deleting.
type confirmRequestMsg struct {
	page   int
	id     int64
	prompt string
}

// confirmAnsweredMsg resolves a confirmation dialog. The token ties the
// answer to the dialog that produced it; answers from a replaced dialog
// are ignored.
type confirmAnsweredMsg struct {
	token     int
	confirmed bool
}

type deleteDoneMsg struct {
	page int
	id   int64
	err  error
}

type saveDoneMsg struct {
	page int
	id   int64
	err  error
}

// formDismissedMsg tells the owning page the form went away without a
// save, so selection state can be cleared.
type formDismissedMsg struct {
	page int
}

type toastExpiredMsg struct {
	id int
}
