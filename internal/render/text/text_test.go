package text

import (
	"reflect"
	"strings"
	"testing"
)

func TestPlain_LeavesPlainBodiesUntouched(t *testing.T) {
	body := "  In the name of God,\nthe Most Gracious.  "
	if got := Plain(body); got != body {
		t.Fatalf("expected plain body unchanged, got %q", got)
	}
}

func TestPlain_StripsInlineMarkup(t *testing.T) {
	got := Plain("<p>One <em>two</em></p><p>Three<br>four</p>")
	want := "One two\n\nThree\nfour"
	if got != want {
		t.Fatalf("Plain() = %q, want %q", got, want)
	}
}

func TestPlain_DecodesEntities(t *testing.T) {
	if got := Plain("mercy &amp; justice"); got != "mercy & justice" {
		t.Fatalf("unexpected entity decoding: %q", got)
	}
}

func TestPlain_DropsScript(t *testing.T) {
	got := Plain("<p>kept</p><script>alert(1)</script>")
	if got != "kept" {
		t.Fatalf("expected script dropped, got %q", got)
	}
}

func TestLength_CountsGraphemes(t *testing.T) {
	if got := Length("é"); got != 1 {
		t.Fatalf("expected combining sequence to count once, got %d", got)
	}
	if got := Length(strings.Repeat("a", 350)); got != 350 {
		t.Fatalf("expected 350, got %d", got)
	}
	if got := Length("<p>abc</p>"); got != 3 {
		t.Fatalf("expected markup excluded from length, got %d", got)
	}
}

func TestWrap(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  []string
	}{
		{"alpha beta gamma", 10, []string{"alpha beta", "gamma"}},
		{"abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"a\n\nb", 10, []string{"a", "", "b"}},
		{"unchanged", 0, []string{"unchanged"}},
	}
	for _, tc := range cases {
		if got := Wrap(tc.in, tc.width); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("Wrap(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}

func TestHead(t *testing.T) {
	lines := []string{"1", "2", "3"}
	got, cut := Head(lines, 2)
	if !cut || !reflect.DeepEqual(got, []string{"1", "2"}) {
		t.Fatalf("unexpected head: %q cut=%v", got, cut)
	}
	got, cut = Head(lines, 3)
	if cut || len(got) != 3 {
		t.Fatalf("expected all lines kept, got %q cut=%v", got, cut)
	}
}

func FuzzLines(f *testing.F) {
	seeds := []string{
		"",
		"plain words only",
		"<p>para</p><p>two<br>lines</p>",
		"بِسْمِ ٱللَّهِ ٱلرَّحْمَٰنِ ٱلرَّحِيمِ",
		"<<<<<<",
		"\x00\x01<script>x</script>",
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, body string) {
		if len(body) > 4096 {
			body = body[:4096]
		}
		for _, width := range []int{1, 7, 40} {
			for _, line := range Lines(body, width) {
				if strings.Contains(line, "\n") {
					t.Fatalf("wrapped line contains newline: %q", line)
				}
			}
		}
	})
}
