package console

// ConnectionState is the outcome of the health check run at mount.
type ConnectionState int

const (
	ConnUnknown ConnectionState = iota
	ConnChecking
	ConnConnected
	ConnFailed
)

func (s ConnectionState) String() string {
	switch s {
	case ConnChecking:
		return "checking"
	case ConnConnected:
		return "connected"
	case ConnFailed:
		return "failed"
	default:
		return "unknown"
	}
}
