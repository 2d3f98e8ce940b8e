package services

import (
	"log/slog"

	"github.com/abadojack/whatlanggo"
	"github.com/samber/lo"

	"chat-core/contract"
	"chat-core/domain"
	"chat-core/errors"
	"chat-core/moderation"
	"chat-core/observability"
)

// Router delivers direct, broadcast and group messages over the two
// registries. Registry access is a snapshot or lookup; the actual writes to
// peer connections happen outside any registry lock, so a stalled peer never
// blocks registration or membership changes. A failed write to one recipient
// is counted and skipped, never propagated to the sender.
type Router struct {
	log     *slog.Logger
	clients contract.IClientRegistry
	groups  contract.IGroupRegistry
	censor  *moderation.Censor // nil disables moderation
	stats   *observability.Stats
}

func NewRouter(
	log *slog.Logger,
	clients contract.IClientRegistry,
	groups contract.IGroupRegistry,
	censor *moderation.Censor,
	stats *observability.Stats,
) *Router {
	return &Router{log: log, clients: clients, groups: groups, censor: censor, stats: stats}
}

// Direct sends to exactly one recipient resolved by username. The sender gets
// no acknowledgment on success.
func (r *Router) Direct(from domain.ClientID, fromUser, toUser, body string) error {
	id, ok := r.clients.LookupByUsername(toUser)
	if !ok {
		return errors.ErrUserNotFound
	}
	if id == from {
		return errors.ErrSelfMessage
	}
	sink, ok := r.clients.SinkFor(id)
	if !ok {
		// Recipient disconnected between lookup and send.
		return errors.ErrUserNotFound
	}
	r.deliver(id, sink, domain.FormatDirect(fromUser, r.sanitize(body)))
	return nil
}

// Broadcast fans out to every registered session except the sender.
func (r *Router) Broadcast(from domain.ClientID, fromUser, body string) {
	r.fanout(from, domain.FormatBroadcast(fromUser, r.sanitize(body)))
}

// GroupSend delivers to every member of the group except the sender.
// Membership is checked against a fresh snapshot immediately before fan-out,
// never cached. Members whose session is already gone are skipped: group
// membership is not purged on disconnect.
func (r *Router) GroupSend(from domain.ClientID, group, body string) error {
	members, err := r.groups.Members(group)
	if err != nil {
		return err
	}
	if !lo.Contains(members, from) {
		return errors.ErrNotMember
	}

	line := domain.FormatGroup(group, r.sanitize(body))
	for _, id := range members {
		if id == from {
			continue
		}
		sink, ok := r.clients.SinkFor(id)
		if !ok {
			continue
		}
		r.deliver(id, sink, line)
	}
	return nil
}

// AnnounceJoin notifies all other sessions that a user authenticated.
func (r *Router) AnnounceJoin(except domain.ClientID, username string) {
	r.fanout(except, domain.FormatJoined(username))
}

// AnnounceLeave notifies all other sessions that a user disconnected.
func (r *Router) AnnounceLeave(except domain.ClientID, username string) {
	r.fanout(except, domain.FormatLeft(username))
}

func (r *Router) fanout(except domain.ClientID, line string) {
	for _, entry := range r.clients.Snapshot() {
		if entry.ID == except {
			continue
		}
		r.deliver(entry.ID, entry.Sink, line)
	}
}

func (r *Router) deliver(to domain.ClientID, sink contract.Sink, line string) {
	if err := sink.Deliver(line); err != nil {
		r.stats.IncrDropped()
		r.log.Debug("Delivery failed", "to", to, "err", err)
		return
	}
	r.stats.IncrDelivered()
}

func (r *Router) sanitize(body string) string {
	if r.censor == nil {
		return body
	}
	cleaned, hit := r.censor.Apply(body)
	if hit {
		info := whatlanggo.Detect(body)
		r.log.Warn("Censored message content", "lang", info.Lang.Iso6391())
	}
	return cleaned
}
