// Package extension implements packet extensions attached to message
// stanzas.
// This file defines the jabber:x:roster roster item exchange.
package extension

import (
	"fmt"
	"strings"
	"sync"

	"github.com/samber/lo"

	"roster-lab/contract"
	"roster-lab/domain"
	"roster-lab/xmlutil"
)

const (
	// ElementName is the local name of the fragment root element.
	ElementName = "x"
	// Namespace scopes the fragment. Not to be confused with
	// jabber:iq:roster, which addresses the user's own roster.
	Namespace = "jabber:x:roster"
)

// RosterExchange collects roster entries to send to another entity as
// an <x/> child of a message stanza, scoped by jabber:x:roster. It
// copies data out of the caller's roster and never mutates it.
//
// RosterExchange is safe for concurrent use by multiple goroutines:
// appends and snapshot reads share one mutex. Entries are immutable,
// so they are read unguarded once snapshotted.
type RosterExchange struct {
	mu      sync.Mutex // protects entries
	entries []domain.RemoteRosterEntry
}

var _ contract.PacketExtension = (*RosterExchange)(nil)

// NewRosterExchange creates an empty exchange; entries are added
// incrementally.
func NewRosterExchange() *RosterExchange {
	return &RosterExchange{}
}

// NewRosterExchangeFromRoster copies every entry of the source, in
// iteration order, into a new exchange. Later changes to the source
// are not observed. It fails only when the source yields an entry
// without a user address, and returns no partial exchange then.
func NewRosterExchangeFromRoster(source contract.RosterSource) (*RosterExchange, error) {
	exchange := NewRosterExchange()
	for _, entry := range source.Entries() {
		if err := exchange.AddRosterEntry(entry); err != nil {
			return nil, err
		}
	}
	return exchange, nil
}

// AddRosterEntry copies a roster entry (address, display name,
// flattened group names) into the exchange.
func (x *RosterExchange) AddRosterEntry(entry contract.RosterEntry) error {
	groupNames := lo.Map(entry.Groups(), func(g contract.RosterGroup, _ int) string {
		return g.Name()
	})
	remote, err := domain.NewRemoteRosterEntry(entry.User(), entry.Name(), groupNames)
	if err != nil {
		return fmt.Errorf("add roster entry: %w", err)
	}
	x.Add(remote)
	return nil
}

// Add appends an entry. Duplicates are permitted; entries are never
// removed.
func (x *RosterExchange) Add(entry domain.RemoteRosterEntry) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.entries = append(x.entries, entry)
}

// EntryCount returns the current number of entries.
func (x *RosterExchange) EntryCount() int {
	x.mu.Lock()
	defer x.mu.Unlock()
	return len(x.entries)
}

// Entries returns the entries present at the moment of the call.
// Later appends do not affect the returned slice.
func (x *RosterExchange) Entries() []domain.RemoteRosterEntry {
	x.mu.Lock()
	defer x.mu.Unlock()
	snapshot := make([]domain.RemoteRosterEntry, len(x.entries))
	copy(snapshot, x.entries)
	return snapshot
}

// ElementName returns "x".
func (x *RosterExchange) ElementName() string {
	return ElementName
}

// Namespace returns "jabber:x:roster".
func (x *RosterExchange) Namespace() string {
	return Namespace
}

// ToXML renders the fragment on a single line, entries in snapshot
// order:
//
//	<x xmlns="jabber:x:roster"><item jid="gato1@gato.home"></item></x>
//
// The lock is held only while the snapshot is copied, not while the
// entries serialize.
func (x *RosterExchange) ToXML() string {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(ElementName)
	xmlutil.WriteAttr(&b, "xmlns", Namespace)
	b.WriteString(">")
	for _, entry := range x.Entries() {
		b.WriteString(entry.ToXML())
	}
	b.WriteString("</")
	b.WriteString(ElementName)
	b.WriteString(">")
	return b.String()
}
