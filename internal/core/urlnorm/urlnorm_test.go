package urlnorm

import "testing"

func TestNormalize_EquivalenceClasses(t *testing.T) {
	t.Parallel()

	classes := map[string][]string{
		"example.com": {
			"example.com",
			"https://example.com",
			"http://example.com/",
			"https://www.example.com",
			"  HTTPS://WWW.Example.COM/  ",
		},
		"example.com/my-app": {
			"example.com/my-app",
			"https://example.com/my-app/",
			"http://www.example.com/my-app",
		},
		"example.com/a?ref=home": {
			"https://example.com/a?ref=home",
			"www.example.com/a/?ref=home",
		},
	}

	for want, inputs := range classes {
		for _, in := range inputs {
			if got := Normalize(in); got != want {
				t.Fatalf("Normalize(%q) = %q want %q", in, got, want)
			}
		}
	}
}

func TestNormalize_Empty(t *testing.T) {
	t.Parallel()

	if got := Normalize(""); got != "" {
		t.Fatalf("Normalize(\"\") = %q want empty", got)
	}
	if got := Normalize("   "); got != "" {
		t.Fatalf("Normalize(whitespace) = %q want empty", got)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"https://www.example.com/path/",
		"example.com",
		"sub.domain.example.org/deep/path?x=1",
		"HTTP://Example.com/Path#frag",
	}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Fatalf("not idempotent for %q: first %q then %q", in, once, twice)
		}
	}
}

func TestNormalize_DropsFragment(t *testing.T) {
	t.Parallel()

	if got := Normalize("https://example.com/page#section"); got != "example.com/page" {
		t.Fatalf("got %q want example.com/page", got)
	}
}

func TestNormalize_UnparseableFallsBack(t *testing.T) {
	t.Parallel()

	// control bytes make url.Parse fail; cleanup still applies
	in := "https://www.example.com/pa\x7fth/"
	got := Normalize(in)
	if got == "" {
		t.Fatalf("expected best-effort output for unparseable input")
	}
	if got != Normalize(got) {
		t.Fatalf("fallback output not stable: %q vs %q", got, Normalize(got))
	}
}
