package fonts

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(14, 28); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	for _, name := range []FontName{HUD, Title} {
		if name.Get() == nil {
			t.Errorf("%s face is nil", name)
		}
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFont("broken", []byte("not a font")); err == nil {
		t.Error("expected an error for invalid font data")
	}
	if err := LoadFont("small", goregular.TTF); err != nil {
		t.Errorf("LoadFont: %v", err)
	}
}

func TestGetUnknownFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an unregistered font")
		}
	}()
	FontName("missing").Get()
}
