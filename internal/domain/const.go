package domain

// Context keys populated by the authentication middleware.
const (
	RequesterKeyCtxKey      = "dd-requesterKey"
	RequesterIdentityCtxKey = "dd-requesterIdentity"
)

// Clan rank values, mirroring the in-game rank ladder.
const (
	RankGuest       = -1
	RankFriend      = 0
	RankRecruit     = 10
	RankCorporal    = 20
	RankSergeant    = 30
	RankLieutenant  = 40
	RankCaptain     = 50
	RankGeneral     = 60
	RankAdmin       = 100
	RankDeputyOwner = 125
	RankOwner       = 127
)

// MotdConfigKey is the config-table key holding the message of the day.
const MotdConfigKey = "motd"

// MotdMaxLength bounds the message of the day, inclusive.
const MotdMaxLength = 500
