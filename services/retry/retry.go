package retry

import (
	"errors"
	"log"
	"time"
)

// Kind is the explicit failure classification carried by errors instead
// of matching on message text. Only transient failures are ever retried.
type Kind string

const (
	KindTransient Kind = "transient"
	KindFatal     Kind = "fatal"
)

// Error tags an underlying failure with its retry classification.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string { return e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }

// Transient wraps an error as retryable (lock contention, zero rows
// affected on a concurrent update, and the like).
func Transient(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindTransient, Err: err}
}

// Fatal wraps an error as non-retryable.
func Fatal(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindFatal, Err: err}
}

// Classify returns the kind tag of an error; untagged errors are fatal.
func Classify(err error) Kind {
	var tagged *Error
	if errors.As(err, &tagged) {
		return tagged.Kind
	}
	return KindFatal
}

// Attempts is the total number of tries for a transient-classified
// mutation: the initial attempt plus two retries.
const Attempts = 3

// Delay is the fixed pause between retries.
const Delay = 200 * time.Millisecond

// Do runs fn up to Attempts times, pausing Delay between tries, but
// only while the failure stays classified transient. Turn actions must
// never go through here: a blind retry could duplicate a move.
func Do(operation string, fn func() error) error {
	var err error
	for attempt := 1; attempt <= Attempts; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}
		if Classify(err) != KindTransient {
			return err
		}
		if attempt < Attempts {
			log.Printf("[RETRY] %s failed (attempt %d/%d), retrying: %v", operation, attempt, Attempts, err)
			time.Sleep(Delay)
		}
	}
	log.Printf("[RETRY-ERROR] %s exhausted %d attempts: %v", operation, Attempts, err)
	return err
}
