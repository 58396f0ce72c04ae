package layout

import "testing"

func TestPath(t *testing.T) {
	p := Path("/work/mypkg")

	if got := p.Join("build", "meta"); got != "/work/mypkg/build/meta" {
		t.Errorf("Join() = %q", got)
	}
	if got := p.Dir(); got != "/work" {
		t.Errorf("Dir() = %q", got)
	}
	if got := p.Base(); got != "mypkg" {
		t.Errorf("Base() = %q", got)
	}
	if p.IsZero() {
		t.Error("IsZero() = true for non-empty path")
	}
	if !Path("").IsZero() {
		t.Error("IsZero() = false for empty path")
	}
}

func TestPath_Rel(t *testing.T) {
	tests := []struct {
		name string
		p    Path
		base Path
		want string
	}{
		{name: "self", p: "/work/mypkg", base: "/work/mypkg", want: "."},
		{name: "child", p: "/work/mypkg/build/docs", base: "/work/mypkg", want: "build/docs"},
		{name: "parent", p: "/work", base: "/work/mypkg", want: ".."},
		{name: "sibling tree", p: "/tmp/out", base: "/work/mypkg", want: "../../tmp/out"},
		{name: "relative against absolute", p: "frontend", base: "/work/mypkg", want: "frontend"},
		{name: "zero", p: "", base: "/work/mypkg", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Rel(tt.base); got != tt.want {
				t.Errorf("Rel(%q) = %q, want %q", tt.base, got, tt.want)
			}
		})
	}
}
