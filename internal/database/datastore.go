package database

// DataStore defines the unified interface for all data operations needed by
// the request layer. Consumers can depend on the smaller ProjectReader and
// ProjectWriter interfaces instead.
type DataStore interface {
	ProjectRepository
}

var _ DataStore = (*ProjectRepo)(nil)
