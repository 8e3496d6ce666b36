package pathutil

import "testing"

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/a/./b/../c", "a/c"},
		{"/../..", ""},
		{"//x//y/", "x/y"},
		{"", ""},
		{"/", ""},
		{"Music/Jazz", "Music/Jazz"},
		{"a/b/../../../c", "c"},
		{"./.", ""},
		{"a/..b/c.", "a/..b/c."},
		{"My Music/Live ...", "My Music/Live ..."},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := Canonicalize(tt.path); got != tt.want {
				t.Errorf("Canonicalize(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestCanonicalize_Idempotent(t *testing.T) {
	inputs := []string{
		"/a/./b/../c", "/../..", "//x//y/", "", "..", "a/../../b/./c//d/",
		"/x/y/z/../../../..", "single", "trailing/", "./a/./b/.", "../../a",
	}

	for _, p := range inputs {
		once := Canonicalize(p)
		if twice := Canonicalize(once); twice != once {
			t.Errorf("Canonicalize(Canonicalize(%q)) = %q, want %q", p, twice, once)
		}
	}
}

func TestSplitParent(t *testing.T) {
	tests := []struct {
		path       string
		wantParent string
		wantLeaf   string
	}{
		{"a/b/c", "a/b", "c"},
		{"x", "", "x"},
		{"", "", ""},
		{"/a/b", "a", "b"},
		{"a/b/", "a", "b"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			parent, leaf := SplitParent(tt.path)
			if parent != tt.wantParent || leaf != tt.wantLeaf {
				t.Errorf("SplitParent(%q) = (%q, %q), want (%q, %q)",
					tt.path, parent, leaf, tt.wantParent, tt.wantLeaf)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		cwd  string
		arg  string
		want string
	}{
		{"relative to cwd", "Music", "Jazz", "Music/Jazz"},
		{"absolute ignores cwd", "Music", "/Podcasts", "Podcasts"},
		{"parent of cwd", "Music/Jazz", "..", "Music"},
		{"relative from root", "", "Music", "Music"},
		{"above root stays at root", "Music", "../../..", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.cwd, tt.arg); got != tt.want {
				t.Errorf("Resolve(%q, %q) = %q, want %q", tt.cwd, tt.arg, got, tt.want)
			}
		})
	}
}

func TestDisplay(t *testing.T) {
	if got := Display(""); got != "/" {
		t.Errorf("Display(root) = %q, want %q", got, "/")
	}
	if got := Display("Music/Jazz"); got != "/Music/Jazz" {
		t.Errorf("Display() = %q, want %q", got, "/Music/Jazz")
	}
}
