package domain

// Mailer is the mail-delivery collaborator. Failures are reported as false
// and never retried.
type Mailer interface {
	Send(to, subject, body string) bool
}
