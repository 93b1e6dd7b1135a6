// Package factory holds the workflow-phase logic behind the voice hooks:
// classifying todo items into factory phases, deciding when a phase change
// deserves an announcement, and generating the spoken messages.
package factory

// Event is the hook payload the agent writes to stdin. Tool events carry
// tool_name/tool_input; simple notification events carry message.
type Event struct {
	ToolName  string    `json:"tool_name"`
	ToolInput ToolInput `json:"tool_input"`
	Message   string    `json:"message"`
}

type ToolInput struct {
	Todos []Todo `json:"todos"`
}

// Todo is a single item of a TodoWrite update. The hook never creates or
// mutates these; they arrive fully formed from the agent.
type Todo struct {
	Content string `json:"content"`
	Status  string `json:"status"`
}

// Todo statuses as the agent reports them.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)
