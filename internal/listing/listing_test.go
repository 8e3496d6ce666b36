package listing

import (
	"testing"

	"github.com/mpdsh/mpdsh/internal/protocol"
)

func fields(kv ...string) []protocol.Field {
	out := make([]protocol.Field, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, protocol.Field{Key: kv[i], Value: kv[i+1]})
	}
	return out
}

func TestAssemble(t *testing.T) {
	t.Run("marker introduces its metadata", func(t *testing.T) {
		got := Assemble(fields(
			"file", "a.mp3",
			"Title", "Song A",
			"file", "b.mp3",
			"Title", "Song B",
		))

		if len(got) != 2 {
			t.Fatalf("got %d entries, want 2", len(got))
		}
		if got[0].Name != "a.mp3" || got[0].Type != TypeFile {
			t.Errorf("entry 0 = %+v", got[0])
		}
		if v, _ := got[0].Get("Title"); v != "Song A" || len(got[0].Fields) != 1 {
			t.Errorf("entry 0 fields = %+v", got[0].Fields)
		}
		if got[1].Name != "b.mp3" || got[1].Type != TypeFile {
			t.Errorf("entry 1 = %+v", got[1])
		}
		if v, _ := got[1].Get("Title"); v != "Song B" || len(got[1].Fields) != 1 {
			t.Errorf("entry 1 fields = %+v", got[1].Fields)
		}
	})

	t.Run("metadata order is preserved", func(t *testing.T) {
		got := Assemble(fields(
			"file", "x.flac",
			"Artist", "X",
			"Album", "Y",
			"Time", "180",
		))

		if len(got) != 1 {
			t.Fatalf("got %d entries, want 1", len(got))
		}
		want := []string{"Artist", "Album", "Time"}
		for i, k := range want {
			if got[0].Fields[i].Key != k {
				t.Errorf("Fields[%d].Key = %q, want %q", i, got[0].Fields[i].Key, k)
			}
		}
	})

	t.Run("mixed types", func(t *testing.T) {
		got := Assemble(fields(
			"directory", "Music/Jazz",
			"Last-Modified", "2024-01-01",
			"playlist", "favorites",
			"file", "Music/intro.mp3",
			"Title", "Intro",
		))

		wantTypes := []Type{TypeDirectory, TypePlaylist, TypeFile}
		if len(got) != len(wantTypes) {
			t.Fatalf("got %d entries, want %d", len(got), len(wantTypes))
		}
		for i, typ := range wantTypes {
			if got[i].Type != typ {
				t.Errorf("entry %d type = %q, want %q", i, got[i].Type, typ)
			}
		}
		if len(got[1].Fields) != 0 {
			t.Errorf("playlist fields = %+v, want none", got[1].Fields)
		}
	})

	t.Run("metadata before the first marker is dropped", func(t *testing.T) {
		got := Assemble(fields(
			"Title", "orphan",
			"file", "a.mp3",
		))

		if len(got) != 1 {
			t.Fatalf("got %d entries, want 1", len(got))
		}
		if len(got[0].Fields) != 0 {
			t.Errorf("fields = %+v, want none", got[0].Fields)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := Assemble(nil); len(got) != 0 {
			t.Errorf("Assemble(nil) = %+v, want empty", got)
		}
	})
}

func TestNames(t *testing.T) {
	in := fields(
		"directory", "Jazz",
		"size", "10",
		"file", "a.mp3",
		"playlist", "p",
	)

	got := Names(in, TypeDirectory, TypeFile)
	if len(got) != 2 || got[0].Value != "Jazz" || got[1].Value != "a.mp3" {
		t.Errorf("Names() = %+v", got)
	}
}

func TestFilter(t *testing.T) {
	entries := []Entry{
		{Name: "Music/Jazz/take five.mp3", Type: TypeFile},
		{Name: "Music/Jazz/so what.flac", Type: TypeFile},
		{Name: "Music/Jazz/Live", Type: TypeDirectory},
		{Name: "Music/Jazz/Live[1999] Paris", Type: TypeDirectory},
		{Name: `Music/Jazz/a\b.mp3`, Type: TypeFile},
	}

	tests := []struct {
		pattern string
		want    int
	}{
		{"*.mp3", 2},
		{"*", 5},
		{"L?ve", 1},
		{"[", 0},
		{"Live[1999]*", 1},
		{"Live[19]*", 0},
		{`a\*`, 1},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			if got := Filter(entries, tt.pattern); len(got) != tt.want {
				t.Errorf("Filter(%q) returned %d entries, want %d", tt.pattern, len(got), tt.want)
			}
		})
	}
}

func TestHasWildcard(t *testing.T) {
	if !HasWildcard("*.mp3") || !HasWildcard("a?c") {
		t.Error("HasWildcard() = false for pattern")
	}
	if HasWildcard("plain name") {
		t.Error("HasWildcard() = true for plain name")
	}
}
