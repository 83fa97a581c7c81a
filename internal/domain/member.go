package domain

// ClanMember is a roster entry keyed by RSN (case-insensitive). Members
// are provisioned externally; this API only reads them for authorization.
type ClanMember struct {
	ID         int64  `json:"id"`
	RSN        string `json:"rsn"`
	Rank       int    `json:"rank"`
	JoinedDate int64  `json:"joinedDate"`
	LastSeen   int64  `json:"lastSeen"`
}

// IsOwner reports whether the member holds the owner sentinel rank.
func (m ClanMember) IsOwner() bool {
	return m.Rank == RankOwner
}
