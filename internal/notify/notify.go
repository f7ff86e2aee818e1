// Package notify models the transient on-screen messages shown to
// the user.  Handlers attach notifications to their JSON responses;
// the client renders and dismisses them.
package notify

// Severity of a notification, mapped to a colour client-side.
const (
	Success = "success"
	Error   = "error"
	Warning = "warning"
	Info    = "info"
)

// DismissAfterMS is how long a non-sticky notification stays on
// screen before auto-dismissing.
const DismissAfterMS = 3000

// Notification is one transient message.  Sticky notifications stay
// until manually dismissed or the page is left; everything else
// auto-dismisses after DismissAfterMS.
type Notification struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Sticky  bool   `json:"sticky,omitempty"`
}

// New returns an auto-dismissing notification.
func New(severity, message string) Notification {
	return Notification{Message: message, Type: severity}
}

// StickySuccess returns a success notification that persists until
// the user dismisses it, as on the public booking page.
func StickySuccess(message string) Notification {
	return Notification{Message: message, Type: Success, Sticky: true}
}
