package models

// Settings is the app-wide preferences record. The core only ever reads
// ReminderHour and EnableNotifications; the rest is carried for the
// presentation layer and the sync collaborator.
type Settings struct {
	UseCloudSync        bool   `json:"use_cloud_sync"`
	PreferredTheme      string `json:"preferred_theme"`
	ReminderHour        int    `json:"reminder_hour"`
	EnableNotifications bool   `json:"enable_notifications"`
}
