//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

// RosterGroup is a read-only view of one group a contact belongs to.
type RosterGroup interface {
	Name() string
}

// RosterEntry is a read-only view of one contact in the caller's
// roster. Name returns "" when the contact has no display name.
type RosterEntry interface {
	User() string
	Name() string
	Groups() []RosterGroup
}

// RosterSource supplies the current roster entries in iteration order.
// The exchange only reads from it at construction or add time; it
// never calls back into the roster afterwards.
type RosterSource interface {
	Entries() []RosterEntry
}

// PacketExtension is a namespaced XML fragment attachable to a message
// stanza, extending its semantics beyond the base schema. Every
// extension type implements these three operations.
type PacketExtension interface {
	ElementName() string
	Namespace() string
	ToXML() string
}
