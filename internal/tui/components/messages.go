package components

// FormSubmittedMsg carries the validated values of an AddForm.
type FormSubmittedMsg struct {
	Values map[string]string
	Kind   FormKind
}

// FormCancelledMsg is sent when an AddForm is dismissed.
type FormCancelledMsg struct {
	Kind FormKind
}
