package repository

// Repository defines the interface for cursor persistence. The cursor is the
// id of the most recently delivered feed entry and is the only state that
// survives process restarts.
type Repository interface {
	Load() (string, error)
	Save(id string) error
}
