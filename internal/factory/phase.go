package factory

import "strings"

// Phase is one of the five fixed stages of a factory run.
type Phase int

const (
	PhaseVerification Phase = iota + 1 // system checks and greeting
	PhaseDiscovery                     // interactive interview
	PhaseResearch                      // context assembly and analysis
	PhaseGeneration                    // project file generation
	PhaseCelebration                   // completion
)

// Trigger patterns per phase, matched in ascending phase order. The lists are
// deliberately loose substring matches; the downstream message selection
// depends on this exact trigger set, so don't tighten them.
var phasePatterns = []struct {
	phase    Phase
	patterns []string
}{
	{PhaseVerification, []string{"🏁 phase 1", "system verification", "voice greeting", "welcome message"}},
	{PhaseDiscovery, []string{"🤔 phase 2", "question engine", "project discovery", "interactive interview"}},
	{PhaseResearch, []string{"🧠 phase 3", "context assembly", "automated research", "tech stack analysis"}},
	{PhaseGeneration, []string{"📝 phase 4", "generate project files", "claude.md", "prd.md", "tasks.md"}},
	{PhaseCelebration, []string{"🎉 phase 5", "voice celebration", "project completion", "final success"}},
}

// DetectPhase classifies free-text todo content into a factory phase.
// Matching is case-insensitive and first-match-wins.
func DetectPhase(content string) (Phase, bool) {
	if content == "" {
		return 0, false
	}

	lower := strings.ToLower(content)
	for _, pp := range phasePatterns {
		for _, pattern := range pp.patterns {
			if strings.Contains(lower, pattern) {
				return pp.phase, true
			}
		}
	}
	return 0, false
}
