package i18n

import "testing"

func TestTranslationsCoverSameKeys(t *testing.T) {
	for k := range koreanTranslations {
		if _, ok := englishTranslations[k]; !ok {
			t.Errorf("English lacks %q", k)
		}
	}
	for k := range englishTranslations {
		if _, ok := koreanTranslations[k]; !ok {
			t.Errorf("Korean lacks %q", k)
		}
	}
}

func TestTranslate(t *testing.T) {
	tr := GetTranslator()
	defer tr.SetLanguage(Korean)

	tr.SetLanguage(Korean)
	if got := tr.T("build.done", "a.pptx", 17); got != "✓ PPT 완성! (a.pptx, 슬라이드 17장)" {
		t.Errorf("Korean: %q", got)
	}
	tr.SetLanguage(English)
	if got := tr.T("build.done", "a.pptx", 17); got != "✓ Deck complete! (a.pptx, 17 slides)" {
		t.Errorf("English: %q", got)
	}
	if got := tr.T("no.such.key"); got != "no.such.key" {
		t.Errorf("missing key should echo, got %q", got)
	}
}

func TestParseLanguage(t *testing.T) {
	cases := map[string]Language{"English": English, "en": English, "한국어": Korean, "": Korean, "français": Korean}
	for in, want := range cases {
		if got := ParseLanguage(in); got != want {
			t.Errorf("ParseLanguage(%q) = %q, want %q", in, got, want)
		}
	}
}
