package broker

// Service version. Clients refuse to talk to a broker whose major differs
// from theirs; minor and revision changes are wire compatible.
const (
	VersionMajor    = 4
	VersionMinor    = 17
	VersionRevision = 0
)
