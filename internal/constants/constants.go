package constants

// AppName is used for config paths, the keyring service name, and the
// Postgres search_path schema.
const AppName = "yakusoku"

// DayKeyZone is the single time zone used to derive day keys. The
// interactive CLI, the TUI, and any snapshot/widget host process must all
// key days in this zone; deriving day keys from the ambient local zone
// makes two processes disagree about "today" near midnight.
const DayKeyZone = "Asia/Tokyo"

// Rating score weights for the weekly score (0-100 scale).
const (
	ScoreGood = 100
	ScoreMeh  = 50
	ScorePoor = 20
)

// Insight thresholds applied to the weekly score.
const (
	InsightGreatScore = 80
	InsightGoodScore  = 60
)

// Default settings written on first init.
const (
	DefaultTheme                = "creamGreen"
	DefaultReminderHour         = 11
	DefaultNotificationsEnabled = true
	DefaultCloudSync            = false
)

// DefaultKeyringUser is the account name under which the database
// connection string is stored in the OS keyring.
const DefaultKeyringUser = "default"

// Tray notifier integration. The desktop tray app writes a lockfile with
// its webhook port and shared secret; the CLI posts reminders to it.
const (
	TrayAppIdentifier      = "yakusoku-tray"
	NotifierLockfileName   = "yakusoku-tray.lock"
	NotificationDurationMs = 8000
)
