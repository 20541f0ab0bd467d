package config

// Application settings.
const (
	AppName          = "attain"
	ConfigFileName   = "config.toml"
	SnapshotFileName = "achievements.json"
	DBFileName       = "attain.db"
)

// Store backends.
const (
	StoreSnapshot = "snapshot"
	StoreSQLite   = "sqlite"
)

// StatsWindowDays is the trailing window the dashboard's statistics
// footer covers.
const StatsWindowDays = 30

// UpcomingLimit is how many future occurrences the dashboard previews.
const UpcomingLimit = 5
