package ports

// Confirmer defines the interface for asking the user a yes/no question
// before a destructive restore proceeds. A nil Confirmer means every
// question is answered yes without asking.
type Confirmer interface {
	// Confirm presents the question under the given title and reports
	// the user's answer. False means the operation must become a
	// complete no-op. Dismissing the prompt counts as false.
	Confirm(title, question string) (bool, error)
}
