//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-core/domain"
	"context"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Sink is the delivery end of one client connection. Deliver writes a single
// protocol line; callers tolerate failures, a gone peer is not fatal.
type Sink interface {
	Deliver(line string) error
}

// ClientEntry is one registered session as seen in a registry snapshot.
type ClientEntry struct {
	ID       domain.ClientID
	Username string
	Sink     Sink
}

type ICredentialStore interface {
	Validate(username, password string) bool
}

type IClientRegistry interface {
	Register(id domain.ClientID, username string, sink Sink) error
	Unregister(id domain.ClientID)
	LookupByUsername(username string) (domain.ClientID, bool)
	SinkFor(id domain.ClientID) (Sink, bool)
	Snapshot() []ClientEntry
	Count() int
}

type IGroupRegistry interface {
	Create(name string, creator domain.ClientID) error
	Join(name string, id domain.ClientID) error
	Leave(name string, id domain.ClientID) error
	IsMember(name string, id domain.ClientID) bool
	Members(name string) ([]domain.ClientID, error)
	Names() []string
	Count() int
}

type IRouter interface {
	Direct(from domain.ClientID, fromUser, toUser, body string) error
	Broadcast(from domain.ClientID, fromUser, body string)
	GroupSend(from domain.ClientID, group, body string) error
	AnnounceJoin(except domain.ClientID, username string)
	AnnounceLeave(except domain.ClientID, username string)
}
