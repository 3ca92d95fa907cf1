package ports

// Watcher monitors a dataset file for changes so the app layer can
// rebuild its engine. Only one Watch call should be active at a time.
type Watcher interface {
	// Watch starts monitoring path. onChange is called after each write
	// to the file, possibly from another goroutine. Returns an error if
	// the file's directory cannot be watched.
	Watch(path string, onChange func()) error

	// Stop ends monitoring and releases all resources. After Stop
	// returns, no further onChange calls fire. Safe to call twice.
	Stop() error
}
