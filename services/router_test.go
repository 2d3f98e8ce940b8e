package services

import (
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"chat-core/domain"
	"chat-core/errors"
	"chat-core/mocks"
	"chat-core/observability"
	"chat-core/runtime"
)

// recordingSink captures every line delivered to one fake session.
type recordingSink struct {
	lines []string
}

func (s *recordingSink) Deliver(line string) error {
	s.lines = append(s.lines, line)
	return nil
}

type fixture struct {
	clients *runtime.ClientRegistry
	groups  *runtime.GroupRegistry
	router  *Router
	stats   *observability.Stats
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	stats := observability.NewStats()
	clients := runtime.NewClientRegistry()
	groups := runtime.NewGroupRegistry()
	return &fixture{
		clients: clients,
		groups:  groups,
		router:  NewRouter(slog.Default(), clients, groups, nil, stats),
		stats:   stats,
	}
}

func (f *fixture) connect(t *testing.T, username string) (domain.ClientID, *recordingSink) {
	t.Helper()
	id := domain.NewClientID()
	sink := &recordingSink{}
	require.NoError(t, f.clients.Register(id, username, sink))
	return id, sink
}

func TestRouter_Direct(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	alice, aliceSink := f.connect(t, "alice")
	_, bobSink := f.connect(t, "bob")

	// When alice messages bob
	req.NoError(f.router.Direct(alice, "alice", "bob", "hello"))

	// Then only bob receives it, formatted with the sender's name
	req.Equal([]string{"[alice]: hello\n"}, bobSink.lines)
	req.Empty(aliceSink.lines)
}

func TestRouter_Direct_UserNotFound(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	alice, _ := f.connect(t, "alice")

	err := f.router.Direct(alice, "alice", "ghost", "hi")

	req.ErrorIs(err, errors.ErrUserNotFound)
}

func TestRouter_Direct_SelfMessage(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	alice, aliceSink := f.connect(t, "alice")

	// Messaging your own username is always rejected, never delivered
	err := f.router.Direct(alice, "alice", "alice", "hi me")

	req.ErrorIs(err, errors.ErrSelfMessage)
	req.Empty(aliceSink.lines)
}

func TestRouter_Broadcast_ExcludesSender(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	alice, aliceSink := f.connect(t, "alice")
	_, bobSink := f.connect(t, "bob")
	_, carolSink := f.connect(t, "carol")

	f.router.Broadcast(alice, "alice", "hi all")

	want := "[alice] (Broadcast): hi all\n"
	req.Equal([]string{want}, bobSink.lines)
	req.Equal([]string{want}, carolSink.lines)
	req.Empty(aliceSink.lines)
}

func TestRouter_Broadcast_FailedRecipientDoesNotAbortFanout(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t)
	alice, _ := f.connect(t, "alice")
	_, bobSink := f.connect(t, "bob")

	// Given carol's connection is already gone
	deadSink := mocks.NewMockSink(ctrl)
	deadSink.EXPECT().Deliver(gomock.Any()).Return(fmt.Errorf("broken pipe")).Times(1)
	req.NoError(f.clients.Register(domain.NewClientID(), "carol", deadSink))

	f.router.Broadcast(alice, "alice", "hi all")

	// Then bob still got the message and the failure was only counted
	req.Equal([]string{"[alice] (Broadcast): hi all\n"}, bobSink.lines)
	req.Equal(uint64(1), f.stats.Snapshot().Dropped)
	req.Equal(uint64(1), f.stats.Snapshot().Delivered)
}

func TestRouter_GroupSend(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	alice, aliceSink := f.connect(t, "alice")
	bob, bobSink := f.connect(t, "bob")
	_, carolSink := f.connect(t, "carol")

	req.NoError(f.groups.Create("team", alice))
	req.NoError(f.groups.Join("team", bob))

	// When alice messages the group
	req.NoError(f.router.GroupSend(alice, "team", "hello"))

	// Then members receive it, the sender and non-members do not
	req.Equal([]string{"[Group team]: hello\n"}, bobSink.lines)
	req.Empty(aliceSink.lines)
	req.Empty(carolSink.lines)
}

func TestRouter_GroupSend_NotMember(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	alice, _ := f.connect(t, "alice")
	bob, bobSink := f.connect(t, "bob")
	req.NoError(f.groups.Create("team", alice))

	// A non-member sender gets an error and nothing is delivered
	err := f.router.GroupSend(bob, "team", "hello")

	req.ErrorIs(err, errors.ErrNotMember)
	req.Empty(bobSink.lines)
}

func TestRouter_GroupSend_NoSuchGroup(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	alice, _ := f.connect(t, "alice")

	req.ErrorIs(f.router.GroupSend(alice, "ghost", "hello"), errors.ErrNoSuchGroup)
}

func TestRouter_GroupSend_SkipsDisconnectedMembers(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	alice, _ := f.connect(t, "alice")
	bob, bobSink := f.connect(t, "bob")

	req.NoError(f.groups.Create("team", alice))
	req.NoError(f.groups.Join("team", bob))

	// Given bob disconnected but his stale membership remains
	f.clients.Unregister(bob)

	// Then the fan-out simply skips him
	req.NoError(f.router.GroupSend(alice, "team", "hello"))
	req.Empty(bobSink.lines)
}

func TestRouter_Announcements(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	alice, aliceSink := f.connect(t, "alice")
	_, bobSink := f.connect(t, "bob")

	f.router.AnnounceJoin(alice, "alice")
	f.router.AnnounceLeave(alice, "alice")

	req.Equal([]string{
		"alice has joined the chat.\n",
		"alice has left the chat.\n",
	}, bobSink.lines)
	req.Empty(aliceSink.lines)
}
