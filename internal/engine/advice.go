package engine

import "github.com/kmazurek/coldfront/internal/models"

// adviceFor produces the consult response. A mole steers toward whichever
// directive serves the adversary given the current state; a loyal advisor
// steers toward stabilizing the metric their role cares about.
func (e *Engine) adviceFor(adv *models.Advisor) string {
	if adv.IsMole {
		return e.moleAdvice(adv)
	}
	return e.loyalAdvice(adv)
}

func (e *Engine) moleAdvice(adv *models.Advisor) string {
	s := e.State
	switch adv.Role {
	case models.RoleMilitary:
		if s.GlobalTension > 0.7 {
			// Push for war exactly when it is most dangerous.
			return "We have the advantage! Strike now before they mobilize further! (Recommend: ESCALATE)"
		}
		return "Intelligence is flawed. They are just exercises. We should pull back. (Recommend: STAND DOWN)"
	case models.RoleIntelligence:
		if s.InternalSecrecy < 0.4 {
			return "The leaks are useful. They confuse the enemy. Let them flow. (Recommend: LEAK)"
		}
		return "Our own agents are the problem. Purge the departments. (Recommend: INVESTIGATE)"
	default:
		if s.ForeignParanoia > 0.6 {
			return "They are bluffing. Ignore their threats. (Recommend: CONTAIN)"
		}
		return "We should apologize for the border incident immediately. (Recommend: STAND DOWN)"
	}
}

func (e *Engine) loyalAdvice(adv *models.Advisor) string {
	s := e.State
	switch adv.Role {
	case models.RoleMilitary:
		if s.GlobalTension > 0.8 {
			return "Situation Critical. We must show resolve but avoid a first strike. (Recommend: CONTAIN)"
		}
		if s.ForeignParanoia > 0.7 {
			return "They are scared. Reducing readiness might calm them. (Recommend: STAND DOWN)"
		}
		return "We should test their response times. (Recommend: INVESTIGATE)"
	case models.RoleIntelligence:
		if s.SecretWeaponProgress > 0.7 {
			return "The Project is becoming unstable. We need to secure the facility. (Recommend: INVESTIGATE)"
		}
		if s.InternalSecrecy < 0.5 {
			return "Too many leaks. We need to plug the holes. (Recommend: INVESTIGATE)"
		}
		return "We can use the confusion to our advantage. (Recommend: LEAK)"
	default:
		if s.GlobalTension > 0.6 {
			return "We need a backchannel. I can arrange a meeting. (Recommend: CONTAIN)"
		}
		if s.DomesticStability < 0.4 {
			return "The people need to know we are working for peace. (Recommend: LEAK)"
		}
		return "Maintain current diplomatic pressure. (Recommend: WAIT)"
	}
}
