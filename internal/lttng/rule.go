package lttng

// LogLevelRule constrains an event rule to instrumentation points of a
// given severity. Variants: LogLevelAsSevereAs, LogLevelExactly.
type LogLevelRule interface {
	logLevelRule()
}

// LogLevelAsSevereAs matches events at least as severe as Level.
type LogLevelAsSevereAs struct {
	Level int
}

// LogLevelExactly matches events of exactly Level.
type LogLevelExactly struct {
	Level int
}

func (LogLevelAsSevereAs) logLevelRule() {}
func (LogLevelExactly) logLevelRule()    {}

// EventRule describes which instrumentation points a channel should record.
// Only tracepoint rules are translatable by the command-line client.
type EventRule interface {
	eventRule()
}

// TracepointEventRule matches tracepoint instrumentation by name pattern,
// filter expression, and log level.
//
// An empty NamePattern matches all tracepoints. NamePatternExclusions are
// only meaningful when NamePattern uses glob wildcards; the client rejects
// them otherwise.
type TracepointEventRule struct {
	NamePattern           string
	FilterExpression      string
	LogLevel              LogLevelRule
	NamePatternExclusions []string
}

// UserTracepointEventRule is a tracepoint rule in the user space domain.
type UserTracepointEventRule struct {
	TracepointEventRule
}

// KernelTracepointEventRule is a tracepoint rule in the kernel domain.
type KernelTracepointEventRule struct {
	TracepointEventRule
}

func (UserTracepointEventRule) eventRule()   {}
func (KernelTracepointEventRule) eventRule() {}
