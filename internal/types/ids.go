package types

// ID type aliases document what each integer key represents in the domain model.

// ProjectID identifies a project row. The zero value means "not yet assigned".
type ProjectID int

// MaterialID identifies a material owned by a project
type MaterialID int

// StepID identifies a step owned by a project
type StepID int

// CategoryID identifies a category shared between projects
type CategoryID int

// ToInt converts type alias back to int
func (id ProjectID) ToInt() int {
	return int(id)
}

// IsAssigned reports whether the store has assigned this id
func (id ProjectID) IsAssigned() bool {
	return id > 0
}

func (id MaterialID) ToInt() int {
	return int(id)
}

func (id StepID) ToInt() int {
	return int(id)
}

func (id CategoryID) ToInt() int {
	return int(id)
}

// ProjectIDFromInt creates a ProjectID from an int value
func ProjectIDFromInt(i int) ProjectID {
	return ProjectID(i)
}
