// Package domain contains core concepts of the roster exchange.
// This file defines the remote roster entry record.
// Entries are immutable and validated at construction.
package domain

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"roster-lab/errors"
	"roster-lab/xmlutil"
)

var validate = validator.New()

type entryInput struct {
	User string `validate:"required"`
}

// RemoteRosterEntry is a point-in-time copy of one contact: user
// address, optional display name, and the groups the contact belonged
// to when the copy was taken. It never reflects later roster changes.
type RemoteRosterEntry struct {
	user   string
	name   string
	groups []string
}

// NewRemoteRosterEntry builds an entry record. The user address is
// required; name may be empty. The groups slice is copied, so the
// caller keeps ownership of its own slice.
func NewRemoteRosterEntry(user, name string, groups []string) (RemoteRosterEntry, error) {
	if err := validate.Struct(entryInput{User: user}); err != nil {
		return RemoteRosterEntry{}, fmt.Errorf("%w: %v", errors.ErrEmptyUser, err)
	}
	copied := make([]string, len(groups))
	copy(copied, groups)
	return RemoteRosterEntry{user: user, name: name, groups: copied}, nil
}

// User returns the contact address.
func (e RemoteRosterEntry) User() string { return e.user }

// Name returns the display name, or "" when the contact has none.
func (e RemoteRosterEntry) Name() string { return e.name }

// GroupNames returns a copy of the group names in stored order.
func (e RemoteRosterEntry) GroupNames() []string {
	copied := make([]string, len(e.groups))
	copy(copied, e.groups)
	return copied
}

// ToXML renders the entry as an <item/> element:
//
//	<item jid="gato1@gato.home" name="Gato Uno"><group>Friends</group></item>
//
// The name attribute is omitted when the display name is empty. Group
// children keep stored order and are not deduplicated. Attribute
// values and text are always escaped.
func (e RemoteRosterEntry) ToXML() string {
	var b strings.Builder
	b.WriteString("<item")
	xmlutil.WriteAttr(&b, "jid", e.user)
	if e.name != "" {
		xmlutil.WriteAttr(&b, "name", e.name)
	}
	b.WriteString(">")
	for _, group := range e.groups {
		xmlutil.WriteTextElement(&b, "group", group)
	}
	b.WriteString("</item>")
	return b.String()
}
