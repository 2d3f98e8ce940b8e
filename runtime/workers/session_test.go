package workers

import (
	"context"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"chat-core/domain"
	"chat-core/mocks"
	"chat-core/observability"
	"chat-core/runtime"
)

type sessionFixture struct {
	creds   *mocks.MockICredentialStore
	router  *mocks.MockIRouter
	clients *runtime.ClientRegistry
	groups  *runtime.GroupRegistry
	worker  *SessionWorker
	client  net.Conn
	done    chan struct{}
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	serverSide, clientSide := net.Pipe()
	f := &sessionFixture{
		creds:   mocks.NewMockICredentialStore(ctrl),
		router:  mocks.NewMockIRouter(ctrl),
		clients: runtime.NewClientRegistry(),
		groups:  runtime.NewGroupRegistry(),
		client:  clientSide,
		done:    make(chan struct{}),
	}
	f.worker = NewSessionWorker(
		serverSide, f.creds, f.clients, f.groups, f.router,
		observability.NewStats(), slog.Default(),
	)

	go func() {
		_ = f.worker.Run(context.Background())
		close(f.done)
	}()
	t.Cleanup(func() { _ = clientSide.Close() })
	return f
}

// expect reads exactly the given string from the client side of the pipe.
func (f *sessionFixture) expect(t *testing.T, want string) {
	t.Helper()
	buf := make([]byte, len(want))
	require.NoError(t, f.client.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, err := io.ReadFull(f.client, buf)
	require.NoError(t, err)
	require.Equal(t, want, string(buf))
}

func (f *sessionFixture) send(t *testing.T, line string) {
	t.Helper()
	require.NoError(t, f.client.SetWriteDeadline(time.Now().Add(2*time.Second)))
	_, err := f.client.Write([]byte(line + "\n"))
	require.NoError(t, err)
}

func (f *sessionFixture) waitClosed(t *testing.T) {
	t.Helper()
	select {
	case <-f.done:
	case <-time.After(2 * time.Second):
		require.Fail(t, "session worker did not finish")
	}
}

func (f *sessionFixture) authenticate(t *testing.T, username, password string) {
	t.Helper()
	f.creds.EXPECT().Validate(username, password).Return(true).Times(1)
	f.router.EXPECT().AnnounceJoin(f.worker.ID(), username).Times(1)

	f.expect(t, domain.PromptUsername)
	f.send(t, username)
	f.expect(t, domain.PromptPassword)
	f.send(t, password)
	f.expect(t, domain.ReplyWelcome)
}

func TestSessionWorker_AuthenticatedExit(t *testing.T) {
	req := require.New(t)
	f := newSessionFixture(t)

	// Given an authenticated session
	f.authenticate(t, "alice", "pw1")
	req.Equal(1, f.clients.Count())
	req.Equal(domain.StateAuthenticated, f.worker.State())

	// When the client types exit
	f.router.EXPECT().AnnounceLeave(f.worker.ID(), "alice").Times(1)
	f.send(t, "exit")

	// Then it gets a goodbye and the session is fully torn down
	f.expect(t, domain.ReplyGoodbye)
	f.waitClosed(t)
	req.Equal(0, f.clients.Count())
	req.Equal(domain.StateClosed, f.worker.State())
}

func TestSessionWorker_AuthFailure(t *testing.T) {
	req := require.New(t)
	f := newSessionFixture(t)
	f.creds.EXPECT().Validate("alice", "wrong").Return(false).Times(1)

	f.expect(t, domain.PromptUsername)
	f.send(t, "alice")
	f.expect(t, domain.PromptPassword)
	f.send(t, "wrong")

	// The session is reported the failure, then closed; never registered
	f.expect(t, domain.ReplyAuthFailed)
	f.waitClosed(t)
	req.Equal(0, f.clients.Count())
}

func TestSessionWorker_DuplicateLogin(t *testing.T) {
	req := require.New(t)
	f := newSessionFixture(t)

	// Given alice is already connected elsewhere
	other := domain.NewClientID()
	req.NoError(f.clients.Register(other, "alice", nopSink{}))

	f.creds.EXPECT().Validate("alice", "pw2").Return(true).Times(1)
	// No join announcement may be sent for the rejected session

	f.expect(t, domain.PromptUsername)
	f.send(t, "alice")
	f.expect(t, domain.PromptPassword)
	f.send(t, "pw2")

	f.expect(t, domain.FormatAlreadyConnected("alice"))
	f.waitClosed(t)

	// The original session is untouched
	found, ok := f.clients.LookupByUsername("alice")
	req.True(ok)
	req.Equal(other, found)
}

func TestSessionWorker_PeerCloseDuringAuthentication(t *testing.T) {
	req := require.New(t)
	f := newSessionFixture(t)

	f.expect(t, domain.PromptUsername)

	// Peer goes away before answering: no reply owed, straight to closed
	req.NoError(f.client.Close())
	f.waitClosed(t)
	req.Equal(0, f.clients.Count())
	req.Equal(domain.StateClosed, f.worker.State())
}

func TestSessionWorker_UnknownCommand(t *testing.T) {
	f := newSessionFixture(t)
	f.authenticate(t, "alice", "pw1")

	f.send(t, "/whisper bob hi")
	f.expect(t, domain.ReplyUnknownCommand)

	// Session survives protocol errors
	f.router.EXPECT().AnnounceLeave(f.worker.ID(), "alice").Times(1)
	f.send(t, "exit")
	f.expect(t, domain.ReplyGoodbye)
	f.waitClosed(t)
}

func TestSessionWorker_GroupCommands(t *testing.T) {
	req := require.New(t)
	f := newSessionFixture(t)
	f.authenticate(t, "alice", "pw1")

	// Create auto-joins, a second create fails, leaving twice degrades
	f.send(t, "/create_group team")
	f.expect(t, domain.FormatGroupCreated("team"))
	req.True(f.groups.IsMember("team", f.worker.ID()))

	f.send(t, "/create_group team")
	f.expect(t, domain.FormatGroupExists("team"))

	f.send(t, "/join_group team")
	f.expect(t, domain.FormatAlreadyMember("team"))

	f.send(t, "/leave_group team")
	f.expect(t, domain.FormatGroupLeft("team"))

	f.send(t, "/leave_group team")
	f.expect(t, domain.FormatNotMember("team"))

	f.send(t, "/join_group ghost")
	f.expect(t, domain.FormatNoSuchGroup("ghost"))

	f.router.EXPECT().AnnounceLeave(f.worker.ID(), "alice").Times(1)
	f.send(t, "exit")
	f.expect(t, domain.ReplyGoodbye)
	f.waitClosed(t)
}

func TestSessionWorker_DisconnectLeavesGroupMembership(t *testing.T) {
	req := require.New(t)
	f := newSessionFixture(t)
	f.authenticate(t, "alice", "pw1")

	f.send(t, "/create_group team")
	f.expect(t, domain.FormatGroupCreated("team"))

	// When the peer disconnects without leaving the group
	f.router.EXPECT().AnnounceLeave(f.worker.ID(), "alice").Times(1)
	req.NoError(f.client.Close())
	f.waitClosed(t)

	// Then the registry entry is gone but the stale membership remains
	req.Equal(0, f.clients.Count())
	req.True(f.groups.IsMember("team", f.worker.ID()))
}

func TestSessionWorker_ShutdownCancelsSession(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)

	serverSide, clientSide := net.Pipe()
	defer clientSide.Close()

	creds := mocks.NewMockICredentialStore(ctrl)
	router := mocks.NewMockIRouter(ctrl)
	clients := runtime.NewClientRegistry()
	worker := NewSessionWorker(
		serverSide, creds, clients, runtime.NewGroupRegistry(), router,
		observability.NewStats(), slog.Default(),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = worker.Run(ctx)
		close(done)
	}()

	// Drain the first prompt, then leave the worker blocked on a read
	buf := make([]byte, len(domain.PromptUsername))
	_, err := io.ReadFull(clientSide, buf)
	req.NoError(err)

	// When the server shuts down, the blocked read is released
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		req.Fail("session worker did not stop on cancellation")
	}
}

type nopSink struct{}

func (nopSink) Deliver(string) error { return nil }
