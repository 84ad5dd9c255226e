package commands

import (
	"fmt"

	"tagvault/internal/application"
)

// withWriteWarnings appends a sidecar-write failure note to a result
// message. Write failures do not fail the command; the in-memory state
// is already updated and the failing paths ride on the change.
func withWriteWarnings(message string, change application.Change) string {
	if len(change.Errors) == 0 {
		return message
	}
	return fmt.Sprintf("%s (%d sidecar writes failed)", message, len(change.Errors))
}
