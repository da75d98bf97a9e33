package storage

// FileStore persists uploaded file bytes under a name and returns the URL
// the file can later be fetched from.
type FileStore interface {
	Save(name string, data []byte) (string, error)
}
