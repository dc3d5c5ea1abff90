package control

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/majorcontext/tracectl/internal/command"
	"github.com/majorcontext/tracectl/internal/lttng"
)

// fakeRunner records every argument line instead of spawning the client.
type fakeRunner struct {
	lines []string
	err   error
}

func (f *fakeRunner) Run(_ context.Context, argLine string) error {
	if f.err != nil {
		return f.err
	}
	f.lines = append(f.lines, argLine)
	return nil
}

func newSession(t *testing.T, runner *fakeRunner) *Session {
	t.Helper()
	session, err := NewClient(runner).CreateSession(context.Background(), "sess", nil)
	require.NoError(t, err)
	runner.lines = nil
	return session
}

func TestCreateSessionNoOutput(t *testing.T) {
	runner := &fakeRunner{}
	session, err := NewClient(runner).CreateSession(context.Background(), "sess", nil)
	require.NoError(t, err)
	assert.Equal(t, "sess", session.Name())
	require.Len(t, runner.lines, 1)
	assert.Equal(t, "create sess --no-output", runner.lines[0])
}

func TestCreateSessionLocalOutput(t *testing.T) {
	runner := &fakeRunner{}
	session, err := NewClient(runner).CreateSession(context.Background(), "sess", lttng.LocalOutput{Path: "/x"})
	require.NoError(t, err)
	assert.Equal(t, lttng.LocalOutput{Path: "/x"}, session.Output())
	require.Len(t, runner.lines, 1)
	assert.Equal(t, "create sess --output /x", runner.lines[0])
}

func TestCreateSessionGeneratedName(t *testing.T) {
	runner := &fakeRunner{}
	session, err := NewClient(runner).CreateSession(context.Background(), "", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, session.Name())
	assert.Contains(t, runner.lines[0], "create "+session.Name())
}

func TestCreateSessionCommandFailure(t *testing.T) {
	cmdErr := &command.CommandError{Args: "create sess --no-output", Output: "Error: session already exists\n"}
	runner := &fakeRunner{err: cmdErr}
	session, err := NewClient(runner).CreateSession(context.Background(), "sess", nil)
	assert.Nil(t, session)

	var got *command.CommandError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, "create sess --no-output", got.Args)
	assert.Contains(t, got.Output, "already exists")
}

func TestSessionLifecycle(t *testing.T) {
	runner := &fakeRunner{}
	session := newSession(t, runner)

	require.NoError(t, session.Start(context.Background()))
	require.NoError(t, session.Stop(context.Background()))
	require.NoError(t, session.Destroy(context.Background()))
	assert.Equal(t, []string{"start sess", "stop sess", "destroy sess"}, runner.lines)
}

func TestAddChannel(t *testing.T) {
	runner := &fakeRunner{}
	session := newSession(t, runner)

	channel, err := session.AddChannel(context.Background(), lttng.DomainUser, "chan")
	require.NoError(t, err)
	assert.Equal(t, "chan", channel.Name())
	assert.Equal(t, lttng.DomainUser, channel.Domain())
	assert.Equal(t, []string{"enable-channel --session sess --userspace chan"}, runner.lines)
}

func TestAddChannelGeneratedName(t *testing.T) {
	runner := &fakeRunner{}
	session := newSession(t, runner)

	channel, err := session.AddChannel(context.Background(), lttng.DomainKernel, "")
	require.NoError(t, err)
	assert.NotEmpty(t, channel.Name())
	assert.Contains(t, runner.lines[0], "--kernel "+channel.Name())
}

func TestAddChannelUnsupportedDomain(t *testing.T) {
	runner := &fakeRunner{}
	session := newSession(t, runner)

	_, err := session.AddChannel(context.Background(), lttng.TracingDomain(42), "chan")
	var unsupported *lttng.UnsupportedError
	require.ErrorAs(t, err, &unsupported)
	assert.Empty(t, runner.lines, "no command may be issued for an unsupported domain")
}

func TestSessionAddContextIssuesNoCommand(t *testing.T) {
	runner := &fakeRunner{}
	session := newSession(t, runner)

	require.NoError(t, session.AddContext(context.Background(), lttng.VpidContext{}))
	assert.Empty(t, runner.lines)

	err := session.AddContext(context.Background(), nil)
	var unsupported *lttng.UnsupportedError
	assert.ErrorAs(t, err, &unsupported)
}

func TestChannelAddContext(t *testing.T) {
	runner := &fakeRunner{}
	session := newSession(t, runner)
	channel, err := session.AddChannel(context.Background(), lttng.DomainUser, "chan")
	require.NoError(t, err)
	runner.lines = nil

	require.NoError(t, channel.AddContext(context.Background(), lttng.VgidContext{}))
	assert.Equal(t,
		[]string{"add-context --session sess --channel chan --userspace --type vgid"},
		runner.lines)
}

func TestChannelAddContextJavaApplication(t *testing.T) {
	runner := &fakeRunner{}
	session := newSession(t, runner)
	channel, err := session.AddChannel(context.Background(), lttng.DomainJUL, "chan")
	require.NoError(t, err)
	runner.lines = nil

	appCtx := lttng.JavaApplicationContext{RetrieverName: "myRetriever", FieldName: "myField"}
	require.NoError(t, channel.AddContext(context.Background(), appCtx))
	assert.Contains(t, runner.lines[0], "--type $app.myRetriever:myField")
}

func testChannel(t *testing.T, runner *fakeRunner) *Channel {
	t.Helper()
	session := newSession(t, runner)
	channel, err := session.AddChannel(context.Background(), lttng.DomainUser, "chan")
	require.NoError(t, err)
	runner.lines = nil
	return channel
}

func TestAddRecordingRuleMatchAll(t *testing.T) {
	runner := &fakeRunner{}
	channel := testChannel(t, runner)

	rule := lttng.UserTracepointEventRule{}
	require.NoError(t, channel.AddRecordingRule(context.Background(), rule))
	require.Len(t, runner.lines, 1)
	assert.Equal(t, "enable-event --session sess --channel chan --userspace --all", runner.lines[0])
}

func TestAddRecordingRuleFull(t *testing.T) {
	runner := &fakeRunner{}
	channel := testChannel(t, runner)

	rule := lttng.KernelTracepointEventRule{
		TracepointEventRule: lttng.TracepointEventRule{
			NamePattern:           "sched_*",
			FilterExpression:      "'$ctx.vpid == 1'",
			LogLevel:              lttng.LogLevelAsSevereAs{Level: 6},
			NamePatternExclusions: []string{"a", "b", "c"},
		},
	}
	require.NoError(t, channel.AddRecordingRule(context.Background(), rule))
	require.Len(t, runner.lines, 1)
	assert.Equal(t,
		"enable-event --session sess --channel chan --kernel sched_* '$ctx.vpid == 1' --loglevel 6 --exclude a,b,c",
		runner.lines[0])
}

func TestAddRecordingRuleExactLogLevel(t *testing.T) {
	runner := &fakeRunner{}
	channel := testChannel(t, runner)

	rule := lttng.UserTracepointEventRule{
		TracepointEventRule: lttng.TracepointEventRule{
			NamePattern: "app:*",
			LogLevel:    lttng.LogLevelExactly{Level: 4},
		},
	}
	require.NoError(t, channel.AddRecordingRule(context.Background(), rule))
	assert.Contains(t, runner.lines[0], "--loglevel-only 4")
	assert.NotContains(t, runner.lines[0], "--all")
}

func TestAddRecordingRuleUnsupported(t *testing.T) {
	runner := &fakeRunner{}
	channel := testChannel(t, runner)

	err := channel.AddRecordingRule(context.Background(), nil)
	var unsupported *lttng.UnsupportedError
	require.ErrorAs(t, err, &unsupported)
	assert.Empty(t, runner.lines, "no command may be issued for an unsupported rule")
}

func TestAttachIssuesNoCommand(t *testing.T) {
	runner := &fakeRunner{}
	client := NewClient(runner)

	session := client.Session("existing")
	channel := session.Channel(lttng.DomainKernel, "chan")
	assert.Empty(t, runner.lines)

	require.NoError(t, channel.AddContext(context.Background(), lttng.VuidContext{}))
	assert.Equal(t,
		[]string{"add-context --session existing --channel chan --kernel --type vuid"},
		runner.lines)
}

func TestTrackerTrackInteger(t *testing.T) {
	runner := &fakeRunner{}
	session := newSession(t, runner)

	tracker := session.KernelVgidTracker()
	require.NoError(t, tracker.Track(context.Background(), lttng.IntegerValue(1000)))
	require.NoError(t, tracker.Untrack(context.Background(), lttng.IntegerValue(1000)))
	assert.Equal(t, []string{
		"track --session sess --kernel --vgid 1000",
		"untrack --session sess --kernel --vgid 1000",
	}, runner.lines)
}

func TestTrackerPidAcceptsName(t *testing.T) {
	runner := &fakeRunner{}
	session := newSession(t, runner)

	require.NoError(t, session.KernelPidTracker().Track(context.Background(), lttng.NameValue("bash")))
	require.NoError(t, session.UserVpidTracker().Track(context.Background(), lttng.NameValue("bash")))
	assert.Equal(t, []string{
		"track --session sess --kernel --pid bash",
		"track --session sess --userspace --vpid bash",
	}, runner.lines)
}

func TestTrackerRejectsNameForNonPid(t *testing.T) {
	runner := &fakeRunner{}
	session := newSession(t, runner)

	trackers := []*ProcessAttributeTracker{
		session.KernelUidTracker(),
		session.KernelVuidTracker(),
		session.UserVuidTracker(),
		session.KernelGidTracker(),
		session.KernelVgidTracker(),
		session.UserVgidTracker(),
	}
	for _, tracker := range trackers {
		err := tracker.Track(context.Background(), lttng.NameValue("bash"))
		var typeErr *ValueTypeError
		require.ErrorAs(t, err, &typeErr, "attribute %s", tracker.Attribute())
		assert.Equal(t, tracker.Attribute(), typeErr.Attribute)

		err = tracker.Untrack(context.Background(), lttng.NameValue("bash"))
		assert.True(t, errors.As(err, &typeErr))
	}
	assert.Empty(t, runner.lines, "no command may be issued for a rejected value")
}
