package sqlite

// Config holds SQLite storage settings
type Config struct {
	// Path is the database file path (e.g. ~/.local/share/commons/commons.db)
	Path string
}
