package list

import (
	"time"

	"github.com/chordrgo/chordr/internal/converter"
)

// SongID is the opaque identifier shared by catalog songs and setlist
// entries.
type SongID string

// SongSettings holds a setlist entry's per-user overrides for one song:
// a transposition and rendering preference, plus a free-text note.
type SongSettings struct {
	TransposeSemitones int
	Formatting         converter.Formatting
	Note               string
}

// SetlistEntry is one song placement within a Setlist.
type SetlistEntry struct {
	SongID   SongID
	FileType string
	Title    string
	Settings *SongSettings
}

// EntryID satisfies list.Entry[SongID].
func (e SetlistEntry) EntryID() SongID { return e.SongID }

// RecordID satisfies rsm.Record[SongID], letting a SetlistEntry log be
// replayed through the command-log RSM.
func (e SetlistEntry) RecordID() SongID { return e.SongID }

// User is the opaque owner reference a Setlist carries; authentication
// and profile data live in the persistence layer, out of scope here.
type User struct {
	ID   string
	Name string
}

// Team is the opaque team reference a Setlist may belong to.
type Team struct {
	ID   string
	Name string
}

// Setlist is an ordered, id-unique collection of songs curated by a
// user, with ownership and timestamp metadata.
type Setlist struct {
	Name             string
	ID               int32
	Owner            User
	Team             *Team
	Songs            *List[SongID, SetlistEntry]
	GigDate          *time.Time
	CreationDate     time.Time
	ModificationDate time.Time
}

// NewSetlist builds a Setlist from a pre-ordered slice of entries.
func NewSetlist(name string, id int32, owner User, team *Team, songs []SetlistEntry, creationDate time.Time) *Setlist {
	return &Setlist{
		Name:             name,
		ID:               id,
		Owner:            owner,
		Team:             team,
		Songs:            FromSlice[SongID, SetlistEntry](songs),
		CreationDate:     creationDate,
		ModificationDate: creationDate,
	}
}

// Replace updates a single song's entry (typically its SongSettings)
// without reordering the setlist.
func (s *Setlist) Replace(entry SetlistEntry) error {
	return s.Songs.Replace(entry)
}
