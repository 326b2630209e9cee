// Package docs generates the per-turn cable batches the player reads. Content
// is narrative and opaque to the engine except for the IsEncrypted and
// Reliability fields.
package docs

import (
	"fmt"

	"github.com/kmazurek/coldfront/internal/models"
	"github.com/kmazurek/coldfront/internal/rng"
)

// Generator produces one ordered batch of documents for a turn. Given the
// same random stream it must produce the same batch.
type Generator interface {
	Batch(state *models.WorldState, count, turn int, r *rng.Source) []*models.Document
}

// Procedural is the table-driven generator.
type Procedural struct{}

func NewProcedural() *Procedural { return &Procedural{} }

func (g *Procedural) Batch(state *models.WorldState, count, turn int, r *rng.Source) []*models.Document {
	batch := make([]*models.Document, 0, count)
	for i := 0; i < count; i++ {
		batch = append(batch, g.generate(state, turn, r))
	}
	return batch
}

func (g *Procedural) generate(state *models.WorldState, turn int, r *rng.Source) *models.Document {
	// Weighted type selection; advisor messages are relatively common.
	roll := r.Range(0, 100)
	var docType models.DocumentType
	switch {
	case roll < 20:
		docType = models.DocAdvisorMessage
	case roll < 40:
		docType = models.DocIntelligenceCable
	case roll < 60:
		docType = models.DocInternalMemo
	case roll < 75:
		docType = models.DocForeignIntercept
	case roll < 90:
		docType = models.DocBudgetAnomaly
	default:
		docType = models.DocAnonymousLeak
	}

	reliability := 0.3 + r.Float64()*0.65
	id := fmt.Sprintf("DOC-%04X", r.Range(0, 0xFFFF))

	// Encryption gets more common as the game wears on.
	var encryptionChance float64
	switch {
	case turn <= 1:
		encryptionChance = 0.0
	case turn <= 4:
		encryptionChance = 0.3
	case turn <= 8:
		encryptionChance = 0.5
	default:
		encryptionChance = 0.8
	}

	encrypted := false
	// Leaks and advisor messages arrive in the clear.
	if docType != models.DocAnonymousLeak && docType != models.DocAdvisorMessage {
		encrypted = r.Bool(encryptionChance)
	}

	var content string
	switch {
	case encrypted:
		content = crucialIntel(state, r)
	case docType == models.DocAdvisorMessage:
		content = advisorMessage(state, r)
	case r.Bool(0.15):
		if r.Bool(0.5) {
			id = "SIGNAL-???"
			content = numbersStation(r)
		} else {
			content = ghostMessage(state, r)
		}
	default:
		switch docType {
		case models.DocIntelligenceCable:
			content = cableContent(state, r, reliability)
		case models.DocInternalMemo:
			content = memoContent(state, r)
		case models.DocBudgetAnomaly:
			content = budgetContent(r)
		case models.DocForeignIntercept:
			content = interceptContent(state, r, reliability)
		case models.DocAnonymousLeak:
			content = leakContent(state)
		default:
			content = advisorMessage(state, r)
		}
	}

	var clearance string
	switch docType {
	case models.DocBudgetAnomaly:
		clearance = "CONFIDENTIAL"
	case models.DocAnonymousLeak:
		clearance = "UNVERIFIED"
	case models.DocAdvisorMessage:
		clearance = "EYES ONLY"
	default:
		clearance = "TOP SECRET"
	}

	return &models.Document{
		ID:        id,
		Type:      docType,
		Clearance: clearance,
		Timestamp: fmt.Sprintf("198%d-1%d-%02d %02d:%02dZ",
			r.Range(0, 9), r.Range(0, 3), r.Range(1, 28), r.Range(0, 23), r.Range(0, 59)),
		Content:     content,
		IsEncrypted: encrypted,
		Reliability: reliability,
	}
}

func advisorMessage(state *models.WorldState, r *rng.Source) string {
	adv := state.Advisors[r.Range(0, len(state.Advisors))]

	var msg string
	switch adv.Role {
	case models.RoleMilitary:
		if state.GlobalTension > 0.6 {
			msg = "The enemy understands only strength. We must demonstrate capacity."
		} else {
			msg = "Our readiness is slipping. We should run a 'drill' near the border."
		}
	case models.RoleIntelligence:
		if state.InternalSecrecy < 0.4 {
			msg = "Too many eyes on us. We need to go dark to make progress."
		} else {
			msg = "The data streams are noisy. I recommend a deeper audit of the intercepts."
		}
	case models.RoleDiplomatic:
		if state.ForeignParanoia > 0.6 {
			msg = "They are terrified. One wrong move and they launch. We must talk."
		} else {
			msg = "We can buy time with concessions. It's cheaper than war."
		}
	}

	return fmt.Sprintf("FROM: %s // %q", adv.Name, msg)
}

// crucialIntel is what hides behind encryption: actionable reads on the
// current state, worth the intel point to surface.
func crucialIntel(state *models.WorldState, r *rng.Source) string {
	roll := r.Range(0, 10)
	switch {
	case roll < 3:
		if state.GlobalTension > 0.6 {
			return "ANALYSIS: ENEMY MOBILIZATION IS GENUINE. PREEMPTIVE STRIKE RECOMMENDED (ESCALATE)."
		}
		return "ANALYSIS: ENEMY POSTURING IS BLUFF. DO NOT PROVOKE (CONTAIN)."
	case roll < 6:
		if state.DomesticStability < 0.4 {
			return "SURVEILLANCE: GENERAL STAFF DISCUSSING COUP. SHOW STRENGTH OR FACE REMOVAL."
		}
		return "POLLS: PUBLIC TRUST ERODING. TRANSPARENCY REQUIRED (LEAK)."
	case roll < 8:
		if state.SecretWeaponProgress > 0.6 {
			return "PROJECT BASILISK: CONTAINMENT FAILING. SUBJECT IS REWRITING FIREWALLS. (INVESTIGATE)."
		}
		return "R&D: BREAKTHROUGH IMMINENT. WE NEED MORE DATA. (INVESTIGATE)."
	default:
		return "EYES ONLY: THE PRESIDENT IS A DOPPELGANGER."
	}
}

func numbersStation(r *rng.Source) string {
	s := "BROADCAST DETECTED: "
	for i := 0; i < 6; i++ {
		s += fmt.Sprintf("%02d ", r.Range(0, 99))
	}
	return s + "... [REPEATING]"
}

func ghostMessage(state *models.WorldState, r *rng.Source) string {
	if state.SecretWeaponProgress > 0.5 {
		switch r.Range(0, 4) {
		case 0:
			return "SYSTEM ALERT: UNKNOWN PROCESS 'BASILISK' REQUESTING ROOT ACCESS."
		case 1:
			return "LOG: BIOMETRIC SCANNERS DETECTING PULSE IN EMPTY CONTAINMENT CHAMBER."
		case 2:
			return "ERROR: POWER SURGE IN SECTOR 7. PATTERN MATCHES HUMAN BRAINWAVES."
		default:
			return "MESSAGE: 'I AM AWAKE. ARE YOU?'"
		}
	}
	return "MAINTENANCE: STRANGE VIBRATIONS REPORTED IN SUB-BASEMENT LEVELS."
}

// cableContent reads tension through the document's reliability: low
// reliability widens the noise band around the true value.
func cableContent(state *models.WorldState, r *rng.Source, reliability float64) string {
	perceived := state.GlobalTension * (1.0 + (r.Float64()-0.5)*(1.0-reliability))
	switch {
	case perceived > 0.7:
		return "FLASH: MASSIVE TROOP MOVEMENTS DETECTED NEAR BORDER SECTOR 4. SATELLITE IMAGERY INCONCLUSIVE BUT HEAT SIGNATURES SPIKING."
	case perceived > 0.4:
		return "ROUTINE: INCREASED RADIO CHATTER OBSERVED. PATTERNS MATCH PRE-EXERCISE PROTOCOLS."
	default:
		return "CALM: NO SIGNIFICANT ACTIVITY TO REPORT. STATION CHIEF REQUESTS ADDITIONAL SUPPLIES."
	}
}

func memoContent(state *models.WorldState, r *rng.Source) string {
	if r.Bool(0.3 + state.SecretWeaponProgress*0.5) {
		return "RE: PROJECT BASILISK. ENERGY CONSUMPTION EXCEEDING GRID CAPACITIES IN SECTOR 7. COVER STORY 'INDUSTRIAL ACCIDENT' PREPARED."
	}
	return "ADMIN: DEPARTMENTAL RESTRUCTURING POSTPONED DUE TO SECURITY CONCERNS."
}

func budgetContent(r *rng.Source) string {
	return fmt.Sprintf("AUDIT FLAG: $%dM UNACCOUNTED FOR IN 'AGRICULTURAL SUBSIDIES'. TRACED TO SHELL COMPANY 'ORION LOGISTICS'.", r.Range(50, 500))
}

func interceptContent(state *models.WorldState, r *rng.Source, reliability float64) string {
	perceived := state.ForeignParanoia * (1.0 + (r.Float64()-0.5)*(1.0-reliability))
	if perceived > 0.6 {
		return "DECRYPTED: \"...THEY ARE PREPARING A STRIKE. WE MUST BE READY TO PREEMPT. THE SILOS ARE OPENING...\""
	}
	return "DECRYPTED: \"...ECONOMIC FORECASTS LOOK GRIM. WE CANNOT AFFORD ANOTHER ESCALATION...\""
}

func leakContent(state *models.WorldState) string {
	if state.InternalSecrecy > 0.7 {
		return "WHISTLEBLOWER: \"THE GOVERNMENT IS LYING ABOUT THE SCOPE OF THE PROGRAM. IT'S NOT DEFENSIVE.\""
	}
	return "RUMOR MILL: \"SCIENTISTS DISAPPEARING FROM ACADEMIA. WHERE ARE THEY GOING?\""
}
