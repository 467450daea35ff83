package models

// Snapshot is the full shared state: the unit of persistence and of change
// notification. Mutations read the whole snapshot, modify it and commit it
// back; consumers that receive a change signal must re-load.
type Snapshot struct {
	Users       []UserRecord       `json:"users"`
	Teams       []TeamRecord       `json:"teams"`
	Invitations []InvitationRecord `json:"invitations"`
	Messages    []ChatMessage      `json:"messages"`
}

// FindUserByEmail returns a pointer into the snapshot, or nil.
func (s *Snapshot) FindUserByEmail(email string) *UserRecord {
	for i := range s.Users {
		if s.Users[i].Email == email {
			return &s.Users[i]
		}
	}
	return nil
}

// FindUserByID returns a pointer into the snapshot, or nil.
func (s *Snapshot) FindUserByID(id string) *UserRecord {
	for i := range s.Users {
		if s.Users[i].ID == id {
			return &s.Users[i]
		}
	}
	return nil
}

// FindTeam returns a pointer into the snapshot, or nil.
func (s *Snapshot) FindTeam(id string) *TeamRecord {
	for i := range s.Teams {
		if s.Teams[i].ID == id {
			return &s.Teams[i]
		}
	}
	return nil
}

// FindInvitation returns a pointer into the snapshot, or nil.
func (s *Snapshot) FindInvitation(id string) *InvitationRecord {
	for i := range s.Invitations {
		if s.Invitations[i].ID == id {
			return &s.Invitations[i]
		}
	}
	return nil
}
