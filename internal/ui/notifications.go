package ui

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Casper-hue/api-watchdog/internal/theme"
)

const notificationTTL = 5 * time.Second

type Notification struct {
	Message   string
	Error     bool
	Bell      bool
	CreatedAt time.Time
}

type NotificationManager struct {
	active  *Notification
	enabled bool
	bell    bool
	now     func() time.Time
}

func NewNotificationManager(enabled, bell bool) *NotificationManager {
	return &NotificationManager{enabled: enabled, bell: bell, now: time.Now}
}

// Configure applies the notification settings from a reloaded config.
func (nm *NotificationManager) Configure(enabled, bell bool) {
	nm.enabled, nm.bell = enabled, bell
	if !enabled {
		nm.active = nil
	}
}

// SetMessage shows a transient informational notification.
func (nm *NotificationManager) SetMessage(msg string) {
	nm.set(msg, false)
}

// Error shows a transient error notification, with the terminal bell when
// enabled.
func (nm *NotificationManager) Error(msg string) {
	nm.set(msg, true)
}

func (nm *NotificationManager) set(msg string, isErr bool) {
	if !nm.enabled {
		return
	}
	nm.active = &Notification{Message: msg, Error: isErr, Bell: isErr && nm.bell, CreatedAt: nm.now()}
}

// Active returns the current notification if it has not expired.
func (nm *NotificationManager) Active() *Notification {
	if nm.active == nil {
		return nil
	}
	if nm.now().Sub(nm.active.CreatedAt) > notificationTTL {
		return nil
	}
	return nm.active
}

// Expire clears expired notifications. Call from Update(), not View().
func (nm *NotificationManager) Expire() {
	if nm.active != nil && nm.now().Sub(nm.active.CreatedAt) > notificationTTL {
		nm.active = nil
	}
}

// Render returns the styled message for the status bar, or "". A ringing
// notification carries the bell character in front of the text so it reaches
// the terminal through the renderer with the frame that shows it.
func (nm *NotificationManager) Render(width int) string {
	n := nm.Active()
	if n == nil {
		return ""
	}
	color := theme.ColorAmber
	if n.Error {
		color = theme.ColorRed
	}
	bell := ""
	if n.Bell {
		bell = "\a"
	}
	return bell + lipgloss.NewStyle().
		Foreground(color).
		MaxWidth(max(width, 0)).
		Render(n.Message)
}
