package game

import "fmt"

// RejectReason names the rule an action violated. The reason travels in
// the error envelope so clients can react without parsing message text.
type RejectReason string

const (
	ReasonGameOver            RejectReason = "GameOver"
	ReasonNotYourTurn         RejectReason = "NotYourTurn"
	ReasonEliminated          RejectReason = "Eliminated"
	ReasonAlreadyMoved        RejectReason = "AlreadyMoved"
	ReasonMustMoveFirst       RejectReason = "MustMoveFirst"
	ReasonAlreadySuggested    RejectReason = "AlreadySuggested"
	ReasonNotInRoom           RejectReason = "NotInRoom"
	ReasonIllegalDestination  RejectReason = "IllegalDestination"
	ReasonDisproofInProgress  RejectReason = "DisproofInProgress"
	ReasonNoPendingSuggestion RejectReason = "NoPendingSuggestion"
	ReasonNotYourPrompt       RejectReason = "NotYourPrompt"
	ReasonCardNotMatching     RejectReason = "CardNotMatching"
	ReasonUnknownPlayer       RejectReason = "UnknownPlayer"
	ReasonUnknownCard         RejectReason = "UnknownCard"
)

// RuleError is a protocol violation: the action is rejected, no state is
// mutated and nothing is retried.
type RuleError struct {
	Reason  RejectReason
	Message string
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Message)
}

func reject(reason RejectReason, format string, args ...interface{}) *RuleError {
	return &RuleError{Reason: reason, Message: fmt.Sprintf(format, args...)}
}
