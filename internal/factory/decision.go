package factory

import "strings"

// Broader keyword set gating which todos count as factory work at all. This
// overlaps the phase trigger lists on purpose; the phase detection runs as a
// second, narrower check on items that pass this filter.
var factoryKeywords = []string{
	"phase 1", "phase 2", "phase 3", "phase 4", "phase 5",
	"context engineering factory", "project discovery", "automated research",
	"generate project files", "voice celebration", "🏁", "🤔", "🧠", "📝", "🎉",
}

// Announcement describes a phase announcement that should be spoken.
type Announcement struct {
	Phase     Phase
	Completed bool
}

// ShouldAnnounce inspects a tool event and decides whether it represents
// factory progress worth announcing. Only TodoWrite updates qualify. Items
// are scanned in list order and the first announceable one wins: phase 5
// announces on completion, phases 1-4 announce when they start.
func ShouldAnnounce(ev Event) (Announcement, bool) {
	if ev.ToolName != "TodoWrite" {
		return Announcement{}, false
	}

	for _, todo := range ev.ToolInput.Todos {
		if !isFactoryTodo(todo.Content) {
			continue
		}

		phase, ok := DetectPhase(todo.Content)
		if !ok {
			continue
		}

		switch {
		case todo.Status == StatusCompleted && phase == PhaseCelebration:
			return Announcement{Phase: phase, Completed: true}, true
		case todo.Status == StatusInProgress && phase < PhaseCelebration:
			return Announcement{Phase: phase, Completed: false}, true
		}
	}

	return Announcement{}, false
}

func isFactoryTodo(content string) bool {
	lower := strings.ToLower(content)
	for _, kw := range factoryKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
