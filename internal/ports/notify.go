package ports

// Notifier defines the interface for catalog change notifications.
// Implementations must tolerate being called from any catalog method;
// the catalog never calls concurrently with itself.
type Notifier interface {
	// RangeChanged signals that the records at positions first through
	// last inclusive may have new tags. The envelope can cover records
	// that did not change; receivers refresh the whole range.
	RangeChanged(first, last int)

	// Reset signals that the whole catalog was replaced and any
	// derived state (selections, caches) is stale.
	Reset()

	// HistoryChanged signals that the undo or redo stack changed
	// shape. Receivers re-query the catalog for the current stack
	// tops.
	HistoryChanged()
}
