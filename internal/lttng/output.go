package lttng

// SessionOutput designates where a session writes its trace data. A nil
// SessionOutput means the session records to no output.
type SessionOutput interface {
	sessionOutput()
}

// LocalOutput writes trace data to a local filesystem path. The path is
// passed through to the client unvalidated.
type LocalOutput struct {
	Path string
}

func (LocalOutput) sessionOutput() {}
