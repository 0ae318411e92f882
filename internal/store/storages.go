package store

// Storages bundles the persistence backends the HTTP handlers depend on.
type Storages struct {
	Tables TableRepository
	Files  FileStore
}

func NewStorages(tables TableRepository, files FileStore) *Storages {
	return &Storages{Tables: tables, Files: files}
}
