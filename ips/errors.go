package ips

// ErrorKind classifies a patch error.
type ErrorKind int

const (
	// ParsingError indicates malformed or truncated patch bytes.
	ParsingError ErrorKind = iota
	// PatchingError indicates a target I/O failure while applying a hunk
	// or truncating the target.
	PatchingError
)

func (k ErrorKind) String() string {
	switch k {
	case ParsingError:
		return "ParsingError"
	case PatchingError:
		return "PatchingError"
	default:
		return "Unknown"
	}
}

// Error represents a parsing or patching error. Msg identifies the exact
// field or step that failed; Err, when non-nil, is the underlying I/O
// failure and is reachable via errors.Unwrap.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func parseErr(msg string, cause error) *Error {
	return &Error{Kind: ParsingError, Msg: msg, Err: cause}
}

func patchErr(msg string, cause error) *Error {
	return &Error{Kind: PatchingError, Msg: msg, Err: cause}
}
