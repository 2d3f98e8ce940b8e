// Package server binds the listener, spawns one supervised session worker per
// accepted connection, and runs the operator console.
package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"chat-core/contract"
	"chat-core/observability"
	"chat-core/runtime/workers"
)

// ControlLoop accepts connections and hands each one to the supervisor as an
// independent session worker. There is no cap on concurrent sessions and no
// idle timeout: an accepted connection occupies its worker until it closes.
type ControlLoop struct {
	log     *slog.Logger
	sup     contract.ISupervisor
	creds   contract.ICredentialStore
	clients contract.IClientRegistry
	groups  contract.IGroupRegistry
	router  contract.IRouter
	stats   *observability.Stats

	// quit terminates the process; replaced in tests.
	quit func()
}

func NewControlLoop(
	log *slog.Logger,
	sup contract.ISupervisor,
	creds contract.ICredentialStore,
	clients contract.IClientRegistry,
	groups contract.IGroupRegistry,
	router contract.IRouter,
	stats *observability.Stats,
) *ControlLoop {
	return &ControlLoop{
		log:     log,
		sup:     sup,
		creds:   creds,
		clients: clients,
		groups:  groups,
		router:  router,
		stats:   stats,
		quit:    func() { os.Exit(0) },
	}
}

// Serve accepts until the listener closes or ctx is canceled. A single failed
// accept is logged and the loop continues; only listener closure ends it.
func (c *ControlLoop) Serve(ctx context.Context, listener net.Listener) error {
	c.log.Info("Server is now listening", "addr", listener.Addr())

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil || isClosed(err) {
				return nil
			}
			c.log.Error("Failed to accept client connection", "err", err)
			continue
		}
		worker := workers.NewSessionWorker(conn, c.creds, c.clients, c.groups, c.router, c.stats, c.log)
		c.sup.Start(ctx, worker)
	}
}

// RunConsole reads operator commands from in. The literal "exit" closes the
// listener and terminates the process immediately, with no client
// notification or drain. "sessions" and "groups" print live registry tables.
func (c *ControlLoop) RunConsole(listener net.Listener, in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		switch scanner.Text() {
		case "exit":
			c.log.Info("Server shutting down...")
			_ = listener.Close()
			c.quit()
			return
		case "sessions":
			c.printSessions(out)
		case "groups":
			c.printGroups(out)
		case "":
		default:
			c.log.Info("Unknown console command", "hint", "exit | sessions | groups")
		}
	}
}

func (c *ControlLoop) printSessions(out io.Writer) {
	snap := c.stats.Snapshot()
	fmt.Fprintf(out, "sessions opened=%d closed=%d delivered=%d dropped=%d\n",
		snap.SessionsOpened, snap.SessionsClosed, snap.Delivered, snap.Dropped)

	table := newTable(out, []string{"Username", "Client ID"})
	for _, entry := range c.clients.Snapshot() {
		table.Append([]string{entry.Username, string(entry.ID)})
	}
	table.Render()
}

func (c *ControlLoop) printGroups(out io.Writer) {
	table := newTable(out, []string{"Group", "Members"})
	for _, name := range c.groups.Names() {
		members, err := c.groups.Members(name)
		if err != nil {
			continue
		}
		table.Append([]string{name, strconv.Itoa(len(members))})
	}
	table.Render()
}

func newTable(out io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	return table
}

func isClosed(err error) bool {
	return errors.Is(err, net.ErrClosed)
}
