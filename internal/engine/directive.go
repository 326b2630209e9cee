package engine

// Directive is the closed set of commands the resolver accepts, one value per
// decision point. Targeted kinds carry only the opaque reference string; the
// upstream parser guarantees a targeted directive never arrives without one.
type Directive interface {
	directive()
}

// Turn-consuming directives.
type (
	// Escalate primes strike assets; a show of force with a miscommunication risk.
	Escalate struct{}
	// Investigate audits the Project, trading secrecy for weapon progress.
	Investigate struct{}
	// Contain attempts de-escalation through diplomacy.
	Contain struct{}
	// Leak releases classified material to the public.
	Leak struct{}
	// StandDown is a full capitulation.
	StandDown struct{}
)

// Minor (turn-preserving) directives, gated by intel points.
type (
	// Decrypt unlocks an encrypted document by id.
	Decrypt struct{ ID string }
	// Analyze reports a document's source reliability tier.
	Analyze struct{ ID string }
	// Trace hunts the mole through an active signal interruption.
	Trace struct{ Advisor string }
	// Consult asks an advisor for a recommendation.
	Consult struct{ Advisor string }
	// Interrogate pressures an advisor, raising their suspicion.
	Interrogate struct{ Advisor string }
)

func (Escalate) directive()    {}
func (Investigate) directive() {}
func (Contain) directive()     {}
func (Leak) directive()        {}
func (StandDown) directive()   {}
func (Decrypt) directive()     {}
func (Analyze) directive()     {}
func (Trace) directive()       {}
func (Consult) directive()     {}
func (Interrogate) directive() {}
