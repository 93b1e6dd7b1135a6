package factory

import (
	"fmt"
	"math/rand"
	"time"
)

// Share of announcements that use the personalized pool when an engineer
// name is available.
const nameUsageRate = 0.7

// Completion messages, spoken when phase 5 finishes. Personal templates take
// the engineer name as their single %s argument.
var (
	CompletionMessages = []string{
		"EchoContext Factory operation complete! Your project is ready for acceleration!",
		"Quantum context assembly successful! Speed enhances understanding - ready to build!",
		"Factory mission accomplished! Your AI amplifier is now supercharged!",
		"Context engineering complete! Time to transform ideas into reality!",
		"Factory optimization finished! Your consciousness catalyst awaits deployment!",
	}

	PersonalCompletionMessages = []string{
		"Amazing work, %s! Your EchoContext Factory has created the perfect setup!",
		"Brilliant, %s! Your project context is now optimized for maximum acceleration!",
		"Outstanding, %s! The factory has generated a comprehensive development blueprint!",
		"Exceptional results, %s! Your AI collaborator is now fully contextualized!",
		"Perfect execution, %s! Your Scientific Mediator approach has created excellence!",
	}
)

// MessagePool holds the generic and personalized variants for one phase.
type MessagePool struct {
	Generic  []string
	Personal []string
}

var phaseMessages = map[Phase]MessagePool{
	PhaseVerification: {
		Generic: []string{
			"EchoContext Factory activated - preparing quantum setup",
			"Factory systems online - initializing consciousness bridge",
			"Welcome to acceleration mode - factory components verified",
			"Quantum context assembly initiated - all systems operational",
		},
		Personal: []string{
			"Hey %s, EchoContext Factory is spinning up for maximum speed!",
			"%s, your consciousness catalyst is activating - let's accelerate!",
			"Speed mode engaged, %s - factory ready for your brilliance!",
			"%s, your AI amplifier is online and ready to optimize!",
		},
	},
	PhaseDiscovery: {
		Generic: []string{
			"Interview engine online - ready for intelligence gathering",
			"Question framework activated - preparing comprehensive analysis",
			"Project discovery mode engaged - optimizing context collection",
			"Smart interview system ready - initiating knowledge extraction",
		},
		Personal: []string{
			"%s, interview mode activated - time to gather your project vision!",
			"Ready for your input, %s - let's build the perfect context!",
			"%s, question engine online - your Scientific Mediator skills needed!",
			"Speed up the discovery, %s - factory is ready for your requirements!",
		},
	},
	PhaseResearch: {
		Generic: []string{
			"Tech stack analysis in progress - optimizing architecture",
			"Context assembly engaged - building comprehensive framework",
			"Pattern matching active - identifying optimal solutions",
			"Technology optimization running - crafting perfect setup",
		},
		Personal: []string{
			"%s, tech stack optimization in progress - creating your ideal setup!",
			"Analyzing patterns for you, %s - building the perfect architecture!",
			"%s, context assembly engaged - your vision is taking shape!",
			"Speed optimization active, %s - crafting your development blueprint!",
		},
	},
	PhaseGeneration: {
		Generic: []string{
			"File generation commencing - creating comprehensive context",
			"Template processing active - building project foundation",
			"Document assembly in progress - generating development blueprint",
			"Context materialization engaged - creating your project framework",
		},
		Personal: []string{
			"%s, file generation in progress - your comprehensive context is materializing!",
			"Creating your project foundation, %s - documents are being optimized!",
			"%s, context assembly nearly complete - your blueprint is taking form!",
			"Almost there, %s - generating your perfect development framework!",
		},
	},
	PhaseCelebration: {
		Generic: []string{
			"Final optimizations in progress - preparing project completion",
			"Quality assurance active - verifying context completeness",
			"Project finalization engaged - ensuring excellence standards",
			"Completion protocols running - validating factory output",
		},
		Personal: []string{
			"%s, final touches in progress - your project setup is almost perfect!",
			"Quality checks running, %s - ensuring your context meets excellence standards!",
			"%s, completion protocols active - your factory output is being validated!",
			"Almost finished, %s - your AI collaborator is being finalized!",
		},
	},
}

// Plain "input needed" announcements, independent of any phase.
var (
	NotificationMessages = []string{
		"Your cognitive enhancement system needs direction",
		"Claude requires your brilliant mind's input",
		"Time to bridge the gap - input needed",
		"Your AI collaborator seeks your wisdom",
		"Pattern recognition pause - guidance required",
	}

	PersonalNotificationMessages = []string{
		"%s, your AI amplifier needs guidance",
		"Hey %s, time to sync minds",
		"%s, your digital collaborator requires input",
		"Speed check, %s - Claude needs direction",
		"%s, your consciousness catalyst awaits",
		"Bridge mode activated, %s - input required",
		"%s, your pattern-matching partner needs you",
		"Quantum sync needed, %s",
		"%s, your Scientific Mediator skills required",
		"Hey %s, let's accelerate this process",
	}
)

// Messages returns the generic and personalized pools for a (phase,
// completed) combination, or nils for an unknown phase.
func Messages(phase Phase, completed bool) (generic, personal []string) {
	if completed && phase == PhaseCelebration {
		return CompletionMessages, PersonalCompletionMessages
	}
	pool, ok := phaseMessages[phase]
	if !ok {
		return nil, nil
	}
	return pool.Generic, pool.Personal
}

// Generator picks announcement messages. The random source is injectable so
// tests can pin selection.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator() *Generator {
	return NewGeneratorWithSource(rand.New(rand.NewSource(time.Now().UnixNano())))
}

func NewGeneratorWithSource(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Message selects a phase announcement. An unknown phase yields "", which
// callers treat as "do not announce".
func (g *Generator) Message(phase Phase, name string, completed bool) string {
	generic, personal := Messages(phase, completed)
	if generic == nil {
		return ""
	}
	return g.pick(generic, personal, name)
}

// Notification selects a plain "input needed" message.
func (g *Generator) Notification(name string) string {
	return g.pick(NotificationMessages, PersonalNotificationMessages, name)
}

func (g *Generator) pick(generic, personal []string, name string) string {
	if name != "" && g.rng.Float64() < nameUsageRate {
		return fmt.Sprintf(personal[g.rng.Intn(len(personal))], name)
	}
	return generic[g.rng.Intn(len(generic))]
}
