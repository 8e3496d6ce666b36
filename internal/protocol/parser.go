package protocol

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// LineKind classifies one reply line.
type LineKind int

const (
	LineIgnored LineKind = iota // matches no known pattern
	LineField                   // key: value
	LineBinary                  // binary: <N>, N raw bytes follow
	LineOK                      // success terminator
	LineAck                     // failure terminator
)

// Line is a classified reply line.
type Line struct {
	Kind  LineKind
	Field Field     // LineField
	Size  int       // LineBinary
	Ack   *AckError // LineAck
}

// ErrBadGreeting is wrapped in a ProtocolError when the first line sent by the
// daemon is not "OK MPD <version>".
var ErrBadGreeting = errors.New("unexpected greeting")

// MaxBinarySize caps the payload length accepted from a "binary: N" line.
// Daemons send album art and similar chunks well below it.
const MaxBinarySize = 16 << 20

var ackPattern = regexp.MustCompile(`^ACK\s*\[(\d+)@(\d+)\]\s+\{([^}]*)\}\s*(.*)$`)

// ParseLine classifies a single reply line. The trailing newline must already
// be stripped.
func ParseLine(line string) (Line, error) {
	if line == TerminatorOK {
		return Line{Kind: LineOK}, nil
	}
	if strings.HasPrefix(line, AckPrefix+" ") || strings.HasPrefix(line, AckPrefix+"[") {
		ack, err := ParseAck(line)
		if err != nil {
			return Line{}, err
		}
		return Line{Kind: LineAck, Ack: ack}, nil
	}

	key, value, ok := strings.Cut(line, ":")
	if !ok {
		return Line{Kind: LineIgnored}, nil
	}
	f := Field{Key: strings.TrimSpace(key), Value: strings.TrimSpace(value)}
	if f.Key != BinaryKey {
		return Line{Kind: LineField, Field: f}, nil
	}

	n, err := strconv.Atoi(f.Value)
	if err != nil {
		return Line{}, &ProtocolError{Line: line, Err: fmt.Errorf("binary length: %w", err)}
	}
	if n < 0 {
		return Line{}, &ProtocolError{Line: line, Err: fmt.Errorf("negative binary length %d", n)}
	}
	if n > MaxBinarySize {
		return Line{}, &ProtocolError{Line: line, Err: fmt.Errorf("binary length %d exceeds %d", n, MaxBinarySize)}
	}
	return Line{Kind: LineBinary, Size: n}, nil
}

// ParseAck parses "ACK [<code>@<index>] {<command>} <message>".
func ParseAck(line string) (*AckError, error) {
	m := ackPattern.FindStringSubmatch(line)
	if m == nil {
		return nil, &ProtocolError{Line: line, Err: errors.New("malformed ACK")}
	}
	code, err := strconv.Atoi(m[1])
	if err != nil {
		return nil, &ProtocolError{Line: line, Err: fmt.Errorf("ACK code: %w", err)}
	}
	index, err := strconv.Atoi(m[2])
	if err != nil {
		return nil, &ProtocolError{Line: line, Err: fmt.Errorf("ACK index: %w", err)}
	}
	return &AckError{
		Code:    AckCode(code),
		Index:   index,
		Command: m[3],
		Message: m[4],
	}, nil
}

// ParseGreeting validates the first line sent by the daemon and returns the
// announced protocol version.
func ParseGreeting(line string) (string, error) {
	line = strings.TrimRight(line, "\r\n")
	if !strings.HasPrefix(line, GreetingTag) {
		return "", &ProtocolError{Line: line, Err: ErrBadGreeting}
	}
	version := strings.TrimSpace(line[len(GreetingTag):])
	if version == "" {
		return "", &ProtocolError{Line: line, Err: ErrBadGreeting}
	}
	return version, nil
}

// Reader reads replies from a daemon connection.
type Reader struct {
	r *bufio.Reader

	// Trace, when set, receives every line read as "< line".
	Trace io.Writer
}

// NewReader wraps r for reply parsing.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// ReadGreeting reads and validates the connection greeting.
func (rd *Reader) ReadGreeting() (string, error) {
	line, err := rd.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", io.ErrUnexpectedEOF
		}
		return "", err
	}
	return ParseGreeting(line)
}

// ReadReply reads lines until a terminator and returns the reply.
//
// An ACK terminator is returned as a *AckError. io.EOF is returned only when
// the stream ended before any byte of the reply; a stream that ends in the
// middle of a reply yields io.ErrUnexpectedEOF.
func (rd *Reader) ReadReply() (*Reply, error) {
	reply := &Reply{}
	started := false

	for {
		raw, err := rd.r.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				if !started && raw == "" {
					return nil, io.EOF
				}
				return nil, io.ErrUnexpectedEOF
			}
			return nil, err
		}
		started = true
		rd.trace("< %s", raw)

		l, err := ParseLine(strings.TrimSuffix(raw, "\n"))
		if err != nil {
			return nil, err
		}

		switch l.Kind {
		case LineOK:
			return reply, nil
		case LineAck:
			return nil, l.Ack
		case LineField:
			reply.Fields = append(reply.Fields, l.Field)
		case LineBinary:
			buf := make([]byte, l.Size)
			if _, err := io.ReadFull(rd.r, buf); err != nil {
				if errors.Is(err, io.EOF) {
					err = io.ErrUnexpectedEOF
				}
				return nil, fmt.Errorf("read binary payload: %w", err)
			}
			rd.trace("< [%d bytes]\n", l.Size)
			reply.Binary = buf
		}
	}
}

func (rd *Reader) trace(format string, args ...any) {
	if rd.Trace != nil {
		fmt.Fprintf(rd.Trace, format, args...)
	}
}
