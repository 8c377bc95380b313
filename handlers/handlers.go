package handlers

import (
	"chorsu-feast-api/notify"
	"chorsu-feast-api/stream"
)

// Notifier delivers courier and restaurant notifications. Wired in
// main; tests swap in a recording fake.
var Notifier notify.Notifier = notify.Discard{}

// Events carries order lifecycle events to SSE subscribers.
var Events = stream.NewHub()
