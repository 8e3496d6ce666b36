// Package protocol defines the MPD text protocol: reply types, the reply
// parser, the connection greeting and outbound command quoting.
package protocol

// Wire tokens
const (
	TerminatorOK = "OK"
	AckPrefix    = "ACK"
	GreetingTag  = "OK MPD "
	BinaryKey    = "binary"
)

// Command names used by the session engine and the shell.
const (
	CmdPing         = "ping"
	CmdQuit         = "quit"
	CmdPassword     = "password"
	CmdStatus       = "status"
	CmdListFiles    = "listfiles"
	CmdLsInfo       = "lsinfo"
	CmdPlaylistInfo = "playlistinfo"
	CmdAdd          = "add"
	CmdAddID        = "addid"
)

// Field is one "key: value" line of a reply.
type Field struct {
	Key   string
	Value string
}

// Reply is the successful outcome of one command.
// Fields keep the order in which the daemon emitted them; duplicate keys are allowed.
type Reply struct {
	Fields []Field
	Binary []byte
}

// Get returns the value of the first field with the given key.
func (r *Reply) Get(key string) (string, bool) {
	for _, f := range r.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// Values returns the values of every field with the given key, in order.
func (r *Reply) Values(key string) []string {
	var out []string
	for _, f := range r.Fields {
		if f.Key == key {
			out = append(out, f.Value)
		}
	}
	return out
}

// Map collapses the fields into a map. Later duplicates win.
func (r *Reply) Map() map[string]string {
	m := make(map[string]string, len(r.Fields))
	for _, f := range r.Fields {
		m[f.Key] = f.Value
	}
	return m
}
