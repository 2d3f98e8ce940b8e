package workers

import (
	"bufio"
	"context"
	"log/slog"
	"net"
	"strings"
	"sync"

	goerrors "errors"

	"chat-core/contract"
	"chat-core/domain"
	"chat-core/errors"
	"chat-core/observability"
)

// SessionWorker drives one client connection through its protocol lifecycle:
// Connected -> Authenticating -> Authenticated -> Closed. It owns the Session
// exclusively; registries only ever see its ClientID. Each received line is
// fully processed, fan-out included, before the next line is read, so
// per-connection command handling is strictly sequential.
type SessionWorker struct {
	id       domain.ClientID
	conn     net.Conn
	creds    contract.ICredentialStore
	clients  contract.IClientRegistry
	groups   contract.IGroupRegistry
	router   contract.IRouter
	stats    *observability.Stats
	log      *slog.Logger
	username string

	mu    sync.Mutex
	state domain.SessionState
}

func NewSessionWorker(
	conn net.Conn,
	creds contract.ICredentialStore,
	clients contract.IClientRegistry,
	groups contract.IGroupRegistry,
	router contract.IRouter,
	stats *observability.Stats,
	log *slog.Logger,
) *SessionWorker {
	return &SessionWorker{
		id:      domain.NewClientID(),
		conn:    conn,
		creds:   creds,
		clients: clients,
		groups:  groups,
		router:  router,
		stats:   stats,
		log:     log,
		state:   domain.StateConnected,
	}
}

func (w *SessionWorker) ID() domain.ClientID { return w.id }

// Run executes the session until the peer disconnects, sends "exit", or the
// server shuts down. It always returns nil: a session that ends is finished,
// not restartable.
func (w *SessionWorker) Run(ctx context.Context) error {
	if w.State() == domain.StateClosed {
		return nil
	}

	w.stats.IncrSessionsOpened()
	defer w.stats.IncrSessionsClosed()
	defer func() { _ = w.conn.Close() }()

	// Reads block on the socket, not on ctx. Closing the connection on
	// cancellation is what unblocks them during shutdown.
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			_ = w.conn.Close()
		case <-stop:
		}
	}()

	reader := bufio.NewScanner(w.conn)

	if !w.authenticate(reader) {
		w.setState(domain.StateClosed)
		return nil
	}

	w.setState(domain.StateAuthenticated)
	w.log.Info("Client connected", "user", w.username, "remote", w.conn.RemoteAddr())

	w.commandLoop(reader)

	w.clients.Unregister(w.id)
	w.router.AnnounceLeave(w.id, w.username)
	w.setState(domain.StateClosed)
	w.log.Info("Client disconnected", "user", w.username)
	return nil
}

// authenticate prompts for the two credential lines, validates them against
// the store and registers the session. It reports whether the session reached
// the authenticated state; every failure path has already replied (or the
// peer is gone) and the caller only has to close.
func (w *SessionWorker) authenticate(reader *bufio.Scanner) bool {
	w.setState(domain.StateAuthenticating)

	if err := w.write(domain.PromptUsername); err != nil {
		return false
	}
	username, ok := w.readLine(reader)
	if !ok {
		return false
	}

	if err := w.write(domain.PromptPassword); err != nil {
		return false
	}
	password, ok := w.readLine(reader)
	if !ok {
		return false
	}

	if !w.creds.Validate(username, password) {
		w.stats.IncrAuthFailures()
		_ = w.write(domain.ReplyAuthFailed)
		return false
	}

	if err := w.clients.Register(w.id, username, connSink{conn: w.conn}); err != nil {
		// Duplicate login: reply and close without a join announcement.
		w.stats.IncrAuthFailures()
		_ = w.write(domain.FormatAlreadyConnected(username))
		return false
	}

	w.username = username
	if err := w.write(domain.ReplyWelcome); err != nil {
		return true // registered; normal teardown will clean up
	}
	w.router.AnnounceJoin(w.id, username)
	return true
}

// commandLoop reads one line per command until EOF, a read error, or "exit".
func (w *SessionWorker) commandLoop(reader *bufio.Scanner) {
	for {
		line, ok := w.readLine(reader)
		if !ok {
			return
		}

		cmd, err := domain.Parse(line)
		if err != nil {
			var parseErr *domain.ParseError
			if goerrors.As(err, &parseErr) {
				_ = w.write(parseErr.Reply)
			}
			continue
		}

		if _, isExit := cmd.(domain.ExitCommand); isExit {
			_ = w.write(domain.ReplyGoodbye)
			return
		}
		w.dispatch(cmd)
	}
}

// dispatch routes one parsed command and writes back the reply, if any.
// Protocol errors are reported to the sender and the session continues.
func (w *SessionWorker) dispatch(cmd domain.Command) {
	switch c := cmd.(type) {
	case domain.DirectMessageCommand:
		switch err := w.router.Direct(w.id, w.username, c.To, c.Body); {
		case goerrors.Is(err, errors.ErrUserNotFound):
			_ = w.write(domain.FormatUserNotFound(c.To))
		case goerrors.Is(err, errors.ErrSelfMessage):
			_ = w.write(domain.ReplySelfMessage)
		}

	case domain.BroadcastCommand:
		w.router.Broadcast(w.id, w.username, c.Body)

	case domain.CreateGroupCommand:
		if err := w.groups.Create(c.Name, w.id); err != nil {
			_ = w.write(domain.FormatGroupExists(c.Name))
			return
		}
		_ = w.write(domain.FormatGroupCreated(c.Name))

	case domain.JoinGroupCommand:
		switch err := w.groups.Join(c.Name, w.id); {
		case goerrors.Is(err, errors.ErrNoSuchGroup):
			_ = w.write(domain.FormatNoSuchGroup(c.Name))
		case goerrors.Is(err, errors.ErrAlreadyMember):
			_ = w.write(domain.FormatAlreadyMember(c.Name))
		default:
			_ = w.write(domain.FormatGroupJoined(c.Name))
		}

	case domain.GroupMessageCommand:
		switch err := w.router.GroupSend(w.id, c.Group, c.Body); {
		case goerrors.Is(err, errors.ErrNoSuchGroup):
			_ = w.write(domain.FormatNoSuchGroup(c.Group))
		case goerrors.Is(err, errors.ErrNotMember):
			_ = w.write(domain.FormatNotMember(c.Group))
		}

	case domain.LeaveGroupCommand:
		switch err := w.groups.Leave(c.Name, w.id); {
		case goerrors.Is(err, errors.ErrNoSuchGroup):
			_ = w.write(domain.FormatNoSuchGroup(c.Name))
		case goerrors.Is(err, errors.ErrNotMember):
			_ = w.write(domain.FormatNotMember(c.Name))
		default:
			_ = w.write(domain.FormatGroupLeft(c.Name))
		}
	}
}

// readLine returns the next line with any trailing carriage return stripped.
// ok is false on EOF or read failure, both terminal for the session.
func (w *SessionWorker) readLine(reader *bufio.Scanner) (string, bool) {
	if !reader.Scan() {
		return "", false
	}
	return strings.TrimSuffix(reader.Text(), "\r"), true
}

func (w *SessionWorker) write(line string) error {
	_, err := w.conn.Write([]byte(line))
	return err
}

func (w *SessionWorker) State() domain.SessionState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

func (w *SessionWorker) setState(state domain.SessionState) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state = state
}

// connSink adapts the session's connection to the delivery interface handed
// to the registry. net.Conn serializes concurrent writes internally.
type connSink struct {
	conn net.Conn
}

func (s connSink) Deliver(line string) error {
	_, err := s.conn.Write([]byte(line))
	return err
}
