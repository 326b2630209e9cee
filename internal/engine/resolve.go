package engine

import "fmt"

// Resolve interprets one directive against current state, applies its costs
// and effects, and reports feedback plus whether the turn was consumed. No
// failure is ever fatal; every rejection is plain feedback with the turn
// preserved.
func (e *Engine) Resolve(d Directive) Result {
	var lines []string

	// Once corruption crosses the threshold, the system can seize the
	// directive outright. A hijacked targeted directive loses its target.
	if e.State.SystemCorruption > 0.4 {
		p := (e.State.SystemCorruption - 0.4) * 0.5
		if e.rng.Bool(p) {
			lines = append(lines, "!! ANOMALY: COMMAND AUTHORITY COMPROMISED. DIRECTIVE SUBSTITUTED BY SYSTEM. !!")
			if e.rng.Bool(0.5) {
				d = Escalate{}
			} else {
				d = Investigate{}
			}
		}
	}

	turnEnded := true
	switch dir := d.(type) {
	case Decrypt:
		turnEnded = false
		lines = append(lines, e.resolveDecrypt(dir.ID)...)
	case Analyze:
		turnEnded = false
		lines = append(lines, e.resolveAnalyze(dir.ID)...)
	case Trace:
		turnEnded = false
		lines = append(lines, e.resolveTrace(dir.Advisor)...)
	case Consult:
		turnEnded = false
		lines = append(lines, e.resolveConsult(dir.Advisor)...)
	case Interrogate:
		turnEnded = false
		lines = append(lines, e.resolveInterrogate(dir.Advisor)...)
	case Escalate:
		lines = append(lines, e.resolveEscalate()...)
	case Investigate:
		lines = append(lines, e.resolveInvestigate()...)
	case Contain:
		lines = append(lines, e.resolveContain()...)
	case Leak:
		lines = append(lines, e.resolveLeak()...)
	case StandDown:
		lines = append(lines, e.resolveStandDown()...)
	}

	if turnEnded {
		lines = append(lines, e.endOfTurnDrift()...)
	}

	// Corruption is clamped at the end of every resolution, turn-ending or not.
	if e.State.SystemCorruption < 0 {
		e.State.SystemCorruption = 0
	}
	if e.State.SystemCorruption > 1 {
		e.State.SystemCorruption = 1
	}

	return Result{Lines: lines, TurnEnded: turnEnded}
}

func (e *Engine) resolveEscalate() []string {
	if e.rng.Bool(0.6) {
		e.State.GlobalTension += 0.2
		e.State.ForeignParanoia += 0.2
		e.State.DomesticStability += 0.05
		return []string{
			"Directive executed: GLOBAL STRIKE ASSETS PRIMED.",
			"Intelligence reports panic in enemy high command.",
		}
	}
	e.State.GlobalTension += 0.35
	e.State.AccidentalEscalationRisk += 0.15
	return []string{"CRITICAL: MISCOMMUNICATION. SQUADRON LAUNCHED TACTICAL NUKE. ABORTED MID-FLIGHT."}
}

func (e *Engine) resolveInvestigate() []string {
	e.State.InternalSecrecy -= 0.1
	e.State.SecretWeaponProgress += 0.15
	lines := []string{"Internal audit reveals deeper layers of the Project."}
	if e.rng.Bool(0.5) {
		e.State.AccidentalEscalationRisk -= 0.1
		lines = append(lines, "Protocols tightened. We are watching the watchers.")
	}
	return lines
}

func (e *Engine) resolveContain() []string {
	if e.State.ForeignParanoia > 0.6 {
		e.State.GlobalTension += 0.1
		return []string{"Diplomacy FAILED. Enemy interprets silence as preparation for war."}
	}
	e.State.GlobalTension -= 0.15
	e.State.DomesticStability -= 0.1
	return []string{"Tension reduced. Military leadership questions your resolve."}
}

func (e *Engine) resolveLeak() []string {
	e.State.InternalSecrecy -= 0.25
	e.State.DomesticStability += 0.2
	e.State.ForeignParanoia -= 0.05
	return []string{"The truth is out. The public riots, but they trust you more than the Generals."}
}

func (e *Engine) resolveStandDown() []string {
	e.State.GlobalTension -= 0.4
	e.State.ForeignParanoia -= 0.3
	e.State.DomesticStability -= 0.35
	return []string{
		"Total withdrawal ordered. We are naked before our enemies.",
		"Rumors of a military tribunal are circulating.",
	}
}

// endOfTurnDrift runs after any turn-consuming directive: passive escalation,
// the tension-threshold red phone trigger, clamping, and corruption accrual
// from a runaway Project.
func (e *Engine) endOfTurnDrift() []string {
	var lines []string
	s := e.State

	if s.GlobalTension > 0.3 {
		s.GlobalTension += 0.03
	}
	if s.SecretWeaponProgress > 0.2 {
		s.SecretWeaponProgress += 0.02
	}

	if s.GlobalTension > 0.8 && e.rng.Bool(0.1) {
		s.RedPhoneActive = true
	}

	s.Clamp()

	if s.AccidentalEscalationRisk > 0.6 && e.rng.Bool(0.3) {
		s.GlobalTension += 0.15
		lines = append(lines, "WARNING: UNAUTHORIZED SILO ACTIVATION DETECTED.")
		s.Clamp()
	}

	if s.SecretWeaponProgress > 0.5 {
		s.SystemCorruption += (s.SecretWeaponProgress - 0.5) * 0.1
	}

	if s.SystemCorruption > 0.9 && e.rng.Bool(0.2) {
		lines = append(lines, "THE BASILISK IS SPEAKING TO THE OPERATORS. THEY ARE WEEPING.")
	}

	return lines
}

func notFoundDocument(id string) string {
	return fmt.Sprintf("ERROR: DOCUMENT %s NOT FOUND.", id)
}

func notFoundAdvisor(ref string) string {
	return fmt.Sprintf("ERROR: ADVISOR '%s' NOT FOUND.", ref)
}
