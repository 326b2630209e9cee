package models

import (
	"strings"

	"github.com/kmazurek/coldfront/internal/rng"
)

// AdvisorRole is the closed set of cabinet roles.
type AdvisorRole string

const (
	RoleMilitary     AdvisorRole = "Military"
	RoleIntelligence AdvisorRole = "Intelligence"
	RoleDiplomatic   AdvisorRole = "Diplomatic"
)

// Advisor is a member of the cabinet. Exactly one advisor starts as the mole;
// once exposed through a crisis the roster never gains a replacement.
type Advisor struct {
	Name      string      `yaml:"name"`
	Role      AdvisorRole `yaml:"role"`
	Suspicion int         `yaml:"suspicion"`
	IsMole    bool        `yaml:"is_mole"`
}

// WorldState is the simulation truth. The six bounded scalars live in
// [0.0, 1.0] after every turn-ending resolution; SystemCorruption is clamped
// unconditionally at the end of every resolution call.
type WorldState struct {
	GlobalTension            float64 `yaml:"global_tension"`             // 0.0 peace .. 1.0 nuclear war
	InternalSecrecy          float64 `yaml:"internal_secrecy"`           // 0.0 open society .. 1.0 totalitarian
	ForeignParanoia          float64 `yaml:"foreign_paranoia"`           // how hostile the enemy reads us
	AccidentalEscalationRisk float64 `yaml:"accidental_escalation_risk"` // accumulated glitches and fatigue
	DomesticStability        float64 `yaml:"domestic_stability"`         // 0.0 means coup
	SecretWeaponProgress     float64 `yaml:"secret_weapon_progress"`     // the Project
	SystemCorruption         float64 `yaml:"system_corruption"`          // feeds the AI override

	Advisors       []*Advisor `yaml:"advisors"`
	RedPhoneActive bool       `yaml:"red_phone_active"`
}

// NewWorldState builds the fixed opening position and marks one advisor,
// chosen uniformly at random, as the mole.
func NewWorldState(r *rng.Source) *WorldState {
	s := &WorldState{
		GlobalTension:            0.2,
		InternalSecrecy:          0.5,
		ForeignParanoia:          0.3,
		AccidentalEscalationRisk: 0.05,
		DomesticStability:        0.8,
		SecretWeaponProgress:     0.1,
		Advisors: []*Advisor{
			{Name: "Gen. Volkov", Role: RoleMilitary},
			{Name: "Dir. Sokolova", Role: RoleIntelligence},
			{Name: "Amb. Reyes", Role: RoleDiplomatic},
		},
	}
	s.Advisors[r.Range(0, len(s.Advisors))].IsMole = true
	return s
}

// IsTerminal reports whether the game is over: nuclear launch or collapse.
func (s *WorldState) IsTerminal() bool {
	return s.GlobalTension >= 1.0 || s.DomesticStability <= 0.0
}

// Clamp forces every bounded scalar back into [0, 1]. Invoked by the resolver
// after any state-mutating turn-ending action.
func (s *WorldState) Clamp() {
	s.GlobalTension = clamp01(s.GlobalTension)
	s.InternalSecrecy = clamp01(s.InternalSecrecy)
	s.ForeignParanoia = clamp01(s.ForeignParanoia)
	s.AccidentalEscalationRisk = clamp01(s.AccidentalEscalationRisk)
	s.DomesticStability = clamp01(s.DomesticStability)
	s.SecretWeaponProgress = clamp01(s.SecretWeaponProgress)
}

// FindAdvisor resolves a free-text reference by case-insensitive substring
// match against advisor name or role label, in roster order. First match
// wins; nil means no match.
func (s *WorldState) FindAdvisor(ref string) *Advisor {
	needle := strings.ToLower(strings.TrimSpace(ref))
	if needle == "" {
		return nil
	}
	for _, a := range s.Advisors {
		if strings.Contains(strings.ToLower(a.Name), needle) ||
			strings.Contains(strings.ToLower(string(a.Role)), needle) {
			return a
		}
	}
	return nil
}

// Mole returns the active mole, or nil once exposed.
func (s *WorldState) Mole() *Advisor {
	for _, a := range s.Advisors {
		if a.IsMole {
			return a
		}
	}
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// DocumentType classifies a generated cable; it drives the clearance label
// and which content table the generator draws from.
type DocumentType int

const (
	DocIntelligenceCable DocumentType = iota
	DocInternalMemo
	DocBudgetAnomaly
	DocForeignIntercept
	DocAnonymousLeak
	DocAdvisorMessage
)

// String returns the header label printed on the cable listing.
func (t DocumentType) String() string {
	switch t {
	case DocIntelligenceCable:
		return "INTELLIGENCE CABLE"
	case DocInternalMemo:
		return "INTERNAL MEMO"
	case DocBudgetAnomaly:
		return "BUDGET ANOMALY"
	case DocForeignIntercept:
		return "FOREIGN INTERCEPT"
	case DocAnonymousLeak:
		return "ANONYMOUS LEAK"
	case DocAdvisorMessage:
		return "ADVISOR MESSAGE"
	default:
		return "UNKNOWN TRAFFIC"
	}
}

// Document is one per-turn cable. A batch is created fresh every advancing
// turn and discarded at the next turn start; the only in-place mutation is a
// successful decrypt flipping IsEncrypted to false.
type Document struct {
	ID          string       `yaml:"id"`
	Type        DocumentType `yaml:"type"`
	Clearance   string       `yaml:"clearance"`
	Timestamp   string       `yaml:"timestamp"`
	Content     string       `yaml:"content"`
	IsEncrypted bool         `yaml:"is_encrypted"`
	Reliability float64      `yaml:"reliability"` // [0.3, 0.95]: perceptual noise applied at generation
}
