package metrics

// Attribute keys shared between the otel instruments and tests.
const (
	AttrMethod     = "method"
	AttrPath       = "path"
	AttrStatus     = "status"
	AttrCollection = "collection"
	AttrOp         = "op"
	AttrOutcome    = "outcome"
)

// Score update outcomes.
const (
	OutcomeApplied = "applied"
	OutcomeDropped = "dropped"
	OutcomeFailed  = "failed"
)
