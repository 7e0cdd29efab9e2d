package models

// Outcome is the terminal state of one check run.
type Outcome string

const (
	// OutcomeFound: slots were returned and the found message was sent.
	OutcomeFound Outcome = "found"
	// OutcomeHeartbeat: no slots, heartbeat message sent.
	OutcomeHeartbeat Outcome = "heartbeat"
	// OutcomeSkipped: no slots and nothing to send.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeFailed: a step failed; an error notification was attempted.
	OutcomeFailed Outcome = "failed"
)

func (o Outcome) String() string {
	return string(o)
}
