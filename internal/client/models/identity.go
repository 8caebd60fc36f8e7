package models

// Identity tells whether a note has ever been stored on the server.
//
// The zero value is Unsaved. A saved note carries the id the server assigned;
// that id is independent from the note's local UUID.
type Identity struct {
	serverID string
}

// Unsaved is the identity of a note the server has never seen.
func Unsaved() Identity { return Identity{} }

// Saved is the identity of a note stored on the server under id.
// An empty id yields Unsaved.
func Saved(id string) Identity { return Identity{serverID: id} }

// IsSaved reports whether the note exists on the server.
func (i Identity) IsSaved() bool { return i.serverID != "" }

// ServerID returns the server-side id and whether there is one.
func (i Identity) ServerID() (string, bool) { return i.serverID, i.serverID != "" }

func (i Identity) String() string {
	if !i.IsSaved() {
		return "unsaved"
	}
	return "saved(" + i.serverID + ")"
}
