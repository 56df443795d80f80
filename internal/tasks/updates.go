package tasks

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	FetchProfile Phase = iota
	FetchWords
	FetchHistory
	FetchLists
	ExportList
)

func (p Phase) String() string {
	switch p {
	case FetchProfile:
		return "fetch_profile"
	case FetchWords:
		return "fetch_words"
	case FetchHistory:
		return "fetch_history"
	case FetchLists:
		return "fetch_lists"
	case ExportList:
		return "export_list"
	default:
		return ""
	}
}
