package util

import (
	"testing"
)

func TestDeriveIdentifierLetterLeading(t *testing.T) {
	name := DeriveIdentifier("circle.svg")
	if name != "CircleIcon" {
		t.Errorf("Expected CircleIcon, got %s", name)
	}
}

func TestDeriveIdentifierDigitLeading(t *testing.T) {
	name := DeriveIdentifier("1-circle.svg")
	if name != "Icon1Circle" {
		t.Errorf("Expected Icon1Circle, got %s", name)
	}

	name = DeriveIdentifier("2-circles.svg")
	if name != "Icon2Circles" {
		t.Errorf("Expected Icon2Circles, got %s", name)
	}
}

func TestDeriveIdentifierSeparatorCollapse(t *testing.T) {
	// Every separator run collapses identically
	dash := DeriveIdentifier("a-b.svg")
	underscore := DeriveIdentifier("a_b.svg")
	dot := DeriveIdentifier("a.b.svg")

	if dash != "ABIcon" {
		t.Errorf("Expected ABIcon, got %s", dash)
	}
	if underscore != dash || dot != dash {
		t.Errorf("Expected identical derivations, got %s / %s / %s", dash, underscore, dot)
	}

	multi := DeriveIdentifier("arrow--up__left.svg")
	if multi != "ArrowUpLeftIcon" {
		t.Errorf("Expected ArrowUpLeftIcon, got %s", multi)
	}
}

func TestDeriveIdentifierFallback(t *testing.T) {
	for _, fileName := range []string{".svg", "___.svg", "", "...", "---"} {
		name := DeriveIdentifier(fileName)
		if name != IdentToken {
			t.Errorf("Expected fallback %s for %q, got %s", IdentToken, fileName, name)
		}
	}
}

func TestDeriveIdentifierCaseInsensitiveExtension(t *testing.T) {
	if DeriveIdentifier("icon.SVG") != DeriveIdentifier("icon.svg") {
		t.Error("Expected extension strip to be case-insensitive")
	}
	if DeriveIdentifier("icon.Svg") != "IconIcon" {
		t.Errorf("Expected IconIcon, got %s", DeriveIdentifier("icon.Svg"))
	}
}

func TestDeriveIdentifierPreservesSegmentCase(t *testing.T) {
	// Only the first character of a segment is uppercased, the rest is untouched
	name := DeriveIdentifier("arrowUp-BIG.svg")
	if name != "ArrowUpBIGIcon" {
		t.Errorf("Expected ArrowUpBIGIcon, got %s", name)
	}
}

func TestDeriveIdentifierTotal(t *testing.T) {
	inputs := []string{
		"", ".svg", "a.svg", "Z.SVG", "ー漢字.svg", "  .svg", "a b c.svg",
		"9.svg", "@#$%.svg", "svg", ".hidden.svg", "noextension",
	}
	for _, fileName := range inputs {
		name := DeriveIdentifier(fileName)
		if name == "" {
			t.Fatalf("Expected non-empty identifier for %q", fileName)
		}
		if !isAsciiLetter(name[0]) {
			t.Fatalf("Expected identifier for %q to start with a letter, got %s", fileName, name)
		}
		for i := 0; i < len(name); i++ {
			if !isAsciiLetter(name[i]) && !isAsciiDigit(name[i]) {
				t.Fatalf("Expected alphanumeric identifier for %q, got %s", fileName, name)
			}
		}
	}
}

func TestDeriveIdentifierDeterministic(t *testing.T) {
	first := DeriveIdentifier("circle.svg")
	for range 10 {
		if DeriveIdentifier("circle.svg") != first {
			t.Fatal("Expected repeated derivations to be identical")
		}
	}
}
