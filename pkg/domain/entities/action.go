package entities

// Action tells the validator whether input describes a new record or edits an existing one
type Action int

const (
	ActionAdd Action = iota
	ActionModify
)

// String method for Action enum
func (a Action) String() string {
	switch a {
	case ActionAdd:
		return "ADD"
	case ActionModify:
		return "MODIFY"
	default:
		return "Unknown"
	}
}
