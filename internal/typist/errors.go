package typist

import "fmt"

// InvalidConfigError reports configuration rejected before a session starts.
type InvalidConfigError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidConfigError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid configuration: %s=%q: %s", e.Field, e.Value, e.Reason)
}

// SinkUnavailableError reports a sink failure that aborted a session. The
// transcript and timing accumulated before the failure remain valid.
type SinkUnavailableError struct {
	Op  string
	Err error
}

func (e *SinkUnavailableError) Error() string {
	return fmt.Sprintf("sink unavailable during %s: %v", e.Op, e.Err)
}

func (e *SinkUnavailableError) Unwrap() error { return e.Err }
