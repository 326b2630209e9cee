package engine

import (
	"fmt"
	"strings"

	"github.com/kmazurek/coldfront/internal/models"
)

const (
	// Per-turn cap on the rate-limited investigative actions.
	traceLimit       = 2
	interrogateLimit = 2
	interrogateCost  = 2
)

const insufficientIntel = "FAILURE: INSUFFICIENT INTEL ASSETS."

// resolveDecrypt charges one intel point up front and refunds it only if the
// document id does not resolve. Decrypting an already-clear document still
// costs the point.
func (e *Engine) resolveDecrypt(id string) []string {
	if e.IntelPoints == 0 {
		return []string{insufficientIntel + " YOU MUST ACT NOW."}
	}
	e.IntelPoints--

	doc := e.findDocument(id)
	if doc == nil {
		e.IntelPoints++
		return []string{notFoundDocument(id)}
	}
	if !doc.IsEncrypted {
		return []string{fmt.Sprintf("NOTICE: DOCUMENT %s WAS NOT ENCRYPTED. (Intel Asset Wasted)", id)}
	}
	doc.IsEncrypted = false
	return []string{
		fmt.Sprintf("SUCCESS: DOCUMENT %s DECRYPTED.", id),
		ContentMarker + doc.Content,
	}
}

func (e *Engine) resolveAnalyze(id string) []string {
	if e.IntelPoints == 0 {
		return []string{insufficientIntel + " YOU MUST ACT NOW."}
	}
	e.IntelPoints--

	doc := e.findDocument(id)
	if doc == nil {
		e.IntelPoints++
		return []string{notFoundDocument(id)}
	}

	integrity := int(doc.Reliability * 100)
	var assessment string
	switch {
	case doc.Reliability > 0.80:
		assessment = "HIGH (VERIFIED)"
	case doc.Reliability > 0.50:
		assessment = "MODERATE (UNCERTAIN)"
	default:
		assessment = "LOW (POSSIBLE DISINFORMATION)"
	}
	return []string{
		fmt.Sprintf("ANALYSIS COMPLETE: DOCUMENT %s", id),
		fmt.Sprintf("SOURCE RELIABILITY: %d%% - %s", integrity, assessment),
	}
}

// resolveTrace locks onto an active signal interruption and checks whether
// the referenced advisor is its origin. A confirmed mole is burned on the
// spot: suspicion pegs to 100 and the red phone rings.
func (e *Engine) resolveTrace(ref string) []string {
	if e.traceCount >= traceLimit {
		return []string{"FAILURE: TRACE NETWORK EXHAUSTED FOR TODAY."}
	}
	if e.IntelPoints == 0 {
		return []string{insufficientIntel}
	}
	if !e.InterruptionActive {
		return []string{"TRACE FAILED: NO ACTIVE SIGNAL INTERRUPTION TO LOCK ONTO."}
	}

	e.IntelPoints--
	adv := e.State.FindAdvisor(ref)
	if adv == nil {
		e.IntelPoints++
		return []string{notFoundAdvisor(ref)}
	}
	if e.traced[adv.Name] {
		e.IntelPoints++
		return []string{fmt.Sprintf("FAILURE: %s HAS ALREADY BEEN TRACED THIS CYCLE.", adv.Name)}
	}

	e.traceCount++
	e.traced[adv.Name] = true

	lines := []string{
		"TRACE INITIATED... SIGNAL LOCK ESTABLISHED.",
		fmt.Sprintf("ORIGIN POINT TRIANGULATED AGAINST %s.", adv.Name),
	}
	if adv.IsMole {
		adv.Suspicion = 100
		e.State.RedPhoneActive = true
		lines = append(lines, ">> DEVICE REGISTERED TO TARGET. MATCH CONFIRMED.")
		lines = append(lines, "!!! MOLE IDENTITY CONFIRMED. THEY KNOW WE KNOW. !!!")
	} else {
		lines = append(lines, ">> NO CORRELATION. CHANNEL TRAFFIC IS CLEAN.")
	}
	return lines
}

// resolveConsult is free the first time each turn; every later consult costs
// a point, refunded only when the reference resolves to nobody. A failed
// lookup does not count as the free consult.
func (e *Engine) resolveConsult(ref string) []string {
	paid := false
	if e.consultCount > 0 {
		if e.IntelPoints == 0 {
			return []string{"FAILURE: INSUFFICIENT INTEL ASSETS FOR ADDITIONAL CONSULTATION."}
		}
		e.IntelPoints--
		paid = true
	}

	adv := e.State.FindAdvisor(ref)
	if adv == nil {
		if paid {
			e.IntelPoints++
		}
		return []string{notFoundAdvisor(ref)}
	}
	e.consultCount++

	costMsg := "(STANDARD PROTOCOL)"
	if paid {
		costMsg = "(INTEL COST: 1)"
	}
	return []string{
		fmt.Sprintf("CONSULTING WITH %s... %s", strings.ToUpper(adv.Name), costMsg),
		fmt.Sprintf("%q", e.adviceFor(adv)),
	}
}

// resolveInterrogate always raises the target's suspicion; a cornered mole
// may slip, a loyal advisor takes offense and the world pays for it.
func (e *Engine) resolveInterrogate(ref string) []string {
	if e.interrogateCount >= interrogateLimit {
		return []string{"FAILURE: INTERROGATION ROOMS AT CAPACITY FOR TODAY."}
	}
	if e.IntelPoints < interrogateCost {
		return []string{insufficientIntel + " INTERROGATION REQUIRES 2 ASSETS."}
	}

	e.IntelPoints -= interrogateCost
	adv := e.State.FindAdvisor(ref)
	if adv == nil {
		e.IntelPoints += interrogateCost
		return []string{notFoundAdvisor(ref)}
	}
	if e.interrogated[adv.Name] {
		e.IntelPoints += interrogateCost
		return []string{fmt.Sprintf("FAILURE: %s IS STILL RECOVERING FROM QUESTIONING.", adv.Name)}
	}

	e.interrogateCount++
	e.interrogated[adv.Name] = true
	adv.Suspicion += 20

	lines := []string{fmt.Sprintf("SUBJECT %s TAKEN TO THE BASEMENT LEVEL.", strings.ToUpper(adv.Name))}

	if adv.IsMole {
		if e.rng.Bool(0.5) {
			adv.Suspicion += 15
			lines = append(lines,
				"POLYGRAPH: RESPONSES INCONSISTENT. DECEPTION INDICATED.",
				fmt.Sprintf(">> SUSPICION RISES SHARPLY. (%d)", adv.Suspicion))
		} else {
			lines = append(lines,
				fmt.Sprintf("SUBJECT DEFLECTS: \"You waste time on me while %s runs free?\"", e.deflectionTarget(adv)))
		}
	} else {
		lines = append(lines, e.loyalDistress(adv))
	}

	if adv.IsMole && adv.Suspicion >= 100 {
		e.State.RedPhoneActive = true
		lines = append(lines, "!!! MOLE IDENTITY CONFIRMED. THEY KNOW WE KNOW. !!!")
	}
	return lines
}

// loyalDistress fires when a loyal advisor is interrogated: each role lashes
// back at the metric it stewards.
func (e *Engine) loyalDistress(adv *models.Advisor) string {
	switch adv.Role {
	case models.RoleMilitary:
		e.State.DomesticStability -= 0.05
		return "SUBJECT FURIOUS: \"Thirty years of service for THIS?\" WORD SPREADS THROUGH THE OFFICER CORPS."
	case models.RoleIntelligence:
		e.State.InternalSecrecy -= 0.05
		return "SUBJECT SHAKEN: \"If you doubt me, doubt everything I've classified.\" FILES BEGIN CIRCULATING."
	default:
		e.State.ForeignParanoia += 0.05
		return "SUBJECT RESIGNED: \"The other side will hear of this paranoia.\" EMBASSIES TAKE NOTE."
	}
}

// deflectionTarget picks another advisor for the mole to throw shade at.
func (e *Engine) deflectionTarget(mole *models.Advisor) string {
	others := make([]*models.Advisor, 0, len(e.State.Advisors))
	for _, a := range e.State.Advisors {
		if a != mole {
			others = append(others, a)
		}
	}
	if len(others) == 0 {
		return "the rest of the cabinet"
	}
	return others[e.rng.Range(0, len(others))].Name
}
