package domain

// Status is the lifecycle state of a planning item or todo.
// For phases, works and tasks it is derived from actual dates and never
// stored; for todos it is a freely settable stored value.
type Status string

const (
	StatusNotStarted Status = "NOT_STARTED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
)

// ValidStatuses is the canonical set of accepted status strings.
var ValidStatuses = map[string]bool{
	string(StatusNotStarted): true,
	string(StatusInProgress): true,
	string(StatusDone):       true,
}

// ScopeType identifies one reorderable sibling scope in the hierarchy.
type ScopeType string

const (
	ScopePhase ScopeType = "phase"
	ScopeWork  ScopeType = "work"
	ScopeTask  ScopeType = "task"
	ScopeTodo  ScopeType = "todo"
)

// ValidScopeTypes is the canonical set of accepted reorder scope strings.
var ValidScopeTypes = map[string]bool{
	string(ScopePhase): true,
	string(ScopeWork):  true,
	string(ScopeTask):  true,
	string(ScopeTodo):  true,
}
