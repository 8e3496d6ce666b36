package shell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mpdsh/mpdsh/internal/protocol"
)

// formatDuration renders a seconds value such as "185.041" as HH:MM:SS.
func formatDuration(sec string) (string, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(sec), 64)
	if err != nil || f < 0 {
		return "", false
	}
	n := int(f)
	return fmt.Sprintf("%02d:%02d:%02d", n/3600, n%3600/60, n%60), true
}

// displayFields returns a copy of fields with durations made readable.
func displayFields(fields []protocol.Field) []protocol.Field {
	out := make([]protocol.Field, len(fields))
	for i, f := range fields {
		if f.Key == "duration" {
			if d, ok := formatDuration(f.Value); ok {
				f.Value = d
			}
		}
		out[i] = f
	}
	return out
}
