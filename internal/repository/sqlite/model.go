package sqlite

// Task represents a task row in the tasks table. Description is a
// nullable column; the mapper translates NULL to the domain's
// empty-string "absent" convention.
type Task struct {
	ID          int64
	Title       string
	Description *string
	Completed   bool
}
