package domain

import (
	"encoding/xml"
	"roster-lab/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRemoteRosterEntry_RequiresUser(t *testing.T) {
	req := require.New(t)

	_, err := NewRemoteRosterEntry("", "Gato Uno", nil)

	req.ErrorIs(err, errors.ErrEmptyUser)
}

func TestNewRemoteRosterEntry_CopiesGroups(t *testing.T) {
	req := require.New(t)
	groups := []string{"Friends", "Work"}

	entry, err := NewRemoteRosterEntry("gato1@gato.home", "", groups)
	req.NoError(err)

	// Mutating the caller's slice must not reach the entry
	groups[0] = "Enemies"
	req.Equal([]string{"Friends", "Work"}, entry.GroupNames())

	// Mutating a returned copy must not reach the entry either
	returned := entry.GroupNames()
	returned[1] = "Home"
	req.Equal([]string{"Friends", "Work"}, entry.GroupNames())
}

func TestRemoteRosterEntry_ToXML_NoNameNoGroups(t *testing.T) {
	req := require.New(t)

	entry, err := NewRemoteRosterEntry("gato1@gato.home", "", nil)
	req.NoError(err)

	req.Equal(`<item jid="gato1@gato.home"></item>`, entry.ToXML())
}

func TestRemoteRosterEntry_ToXML_NameAndGroups(t *testing.T) {
	req := require.New(t)

	entry, err := NewRemoteRosterEntry("gato2@gato.home", "Gato Uno", []string{"Friends", "Work"})
	req.NoError(err)

	req.Equal(
		`<item jid="gato2@gato.home" name="Gato Uno"><group>Friends</group><group>Work</group></item>`,
		entry.ToXML(),
	)
}

func TestRemoteRosterEntry_ToXML_KeepsDuplicateGroups(t *testing.T) {
	req := require.New(t)

	entry, err := NewRemoteRosterEntry("gato1@gato.home", "", []string{"Friends", "Friends"})
	req.NoError(err)

	req.Equal(
		`<item jid="gato1@gato.home"><group>Friends</group><group>Friends</group></item>`,
		entry.ToXML(),
	)
}

func TestRemoteRosterEntry_ToXML_EscapesUnsafeValues(t *testing.T) {
	req := require.New(t)

	entry, err := NewRemoteRosterEntry(
		`gato&uno@gato.home`,
		`Gato "Uno" <el>`,
		[]string{`R&D <internal>`},
	)
	req.NoError(err)

	var item struct {
		JID    string   `xml:"jid,attr"`
		Name   string   `xml:"name,attr"`
		Groups []string `xml:"group"`
	}
	// A well-formed escaped fragment parses back to the original values
	req.NoError(xml.Unmarshal([]byte(entry.ToXML()), &item))
	req.Equal(`gato&uno@gato.home`, item.JID)
	req.Equal(`Gato "Uno" <el>`, item.Name)
	req.Equal([]string{`R&D <internal>`}, item.Groups)
}
