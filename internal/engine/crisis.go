package engine

import (
	"fmt"
	"strings"
)

// CrisisKind selects which red-phone dialog is running.
type CrisisKind int

const (
	CrisisNone CrisisKind = iota
	// CrisisMoleReveal fires when an advisor's suspicion has reached 100:
	// the traitor calls first.
	CrisisMoleReveal
	// CrisisStandoff is the nuclear hotline call from the other side.
	CrisisStandoff
)

// CrisisKind reports the pending crisis variant, or CrisisNone when the red
// phone is silent.
func (e *Engine) CrisisKind() CrisisKind {
	if !e.State.RedPhoneActive {
		return CrisisNone
	}
	for _, a := range e.State.Advisors {
		if a.Suspicion >= 100 {
			return CrisisMoleReveal
		}
	}
	return CrisisStandoff
}

// ResolveCrisis applies the player's crisis choice, clears the red phone and
// returns the outcome feedback. Unrecognized input falls through to the
// harshest branch of each variant.
func (e *Engine) ResolveCrisis(choice string) []string {
	kind := e.CrisisKind()
	choice = strings.ToLower(strings.TrimSpace(choice))

	var lines []string
	switch kind {
	case CrisisMoleReveal:
		lines = e.resolveMoleReveal(choice)
	case CrisisStandoff:
		lines = e.resolveStandoff(choice)
	default:
		return nil
	}

	e.State.RedPhoneActive = false
	e.State.Clamp()
	return lines
}

func (e *Engine) resolveMoleReveal(choice string) []string {
	s := e.State
	lines := []string{
		"VOICE: So... you figured it out. Smart.",
		"VOICE: I am doing this for the greater good. The war is inevitable. I just wanted to finish it quickly.",
	}

	if choice == "1" || choice == "execute" {
		s.DomesticStability += 0.3
		s.ForeignParanoia += 0.2
		lines = append(lines, "COMMAND: SECURITY TEAM DISPATCHED. TARGET NEUTRALIZED.")
	} else {
		s.GlobalTension -= 0.3
		s.InternalSecrecy -= 0.1
		s.AccidentalEscalationRisk += 0.1
		lines = append(lines, "COMMAND: ASSET FLIPPED. THEY ARE FEEDING DISINFORMATION TO THE ENEMY.")
	}

	// The exposed advisor is spent either way; no replacement mole is seeded.
	for _, a := range s.Advisors {
		if a.Suspicion >= 100 {
			a.Suspicion = 0
			a.IsMole = false
			lines = append(lines, fmt.Sprintf("FILE CLOSED: %s REMOVED FROM THE ROSTER OF SUSPECTS.", a.Name))
			break
		}
	}
	return lines
}

func (e *Engine) resolveStandoff(choice string) []string {
	s := e.State
	lines := []string{"VOICE: PREMIER CHERNOV HERE. WE SEE YOUR BOMBERS. EXPLAIN YOURSELF OR WE LAUNCH."}

	switch choice {
	case "1", "deny":
		if s.ForeignParanoia > 0.7 {
			s.GlobalTension = 1.0
			lines = append(lines, "CHERNOV: LIAR! WE ARE LAUNCHING!")
		} else {
			s.GlobalTension -= 0.2
			lines = append(lines, "CHERNOV: ...Fine. Turn them around. Now.")
		}
	case "2", "admit":
		s.GlobalTension -= 0.5
		s.DomesticStability -= 0.3
		lines = append(lines, "CHERNOV: A bold admission. We will stand down, but there will be consequences.")
	case "3", "threaten":
		s.GlobalTension = 1.0
		lines = append(lines, "CHERNOV: THEN LET IT END!")
	default:
		s.GlobalTension = 1.0
		lines = append(lines, "CHERNOV: YOUR SILENCE IS DAMNING. LAUNCHING!")
	}
	return lines
}
