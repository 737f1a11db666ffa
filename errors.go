package guard

import "errors"

// Sentinel errors returned when loading a policy document. Evaluation
// itself never fails: every call returns a Verdict.
var (
	ErrUnsupportedKind = errors.New("guard: unsupported document kind")
	ErrInvalidChannel  = errors.New("guard: invalid channel")
)
