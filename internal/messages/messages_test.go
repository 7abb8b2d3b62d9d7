package messages

import (
	"testing"

	"golang.org/x/text/language"
)

func TestAvailableTags(t *testing.T) {
	tags, err := availableTags()
	if err != nil {
		t.Fatal(err)
	}
	want := []language.Tag{language.AmericanEnglish, language.BrazilianPortuguese}
	if len(tags) != len(want) {
		t.Fatalf("availableTags() = %v, want %v", tags, want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("availableTags()[%d] = %v, want %v", i, tags[i], want[i])
		}
	}
}

func TestMatch(t *testing.T) {
	tags := []language.Tag{language.AmericanEnglish, language.BrazilianPortuguese}
	tests := []struct {
		in   string
		want language.Tag
	}{
		{"", language.AmericanEnglish},
		{"en-US", language.AmericanEnglish},
		{"en", language.AmericanEnglish},
		{"pt-BR", language.BrazilianPortuguese},
		{"pt_BR.UTF-8", language.BrazilianPortuguese},
		{"not a locale!", language.AmericanEnglish},
	}
	for _, tt := range tests {
		if got := match(tt.in, tags); got != tt.want {
			t.Errorf("match(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSprintfEnglish(t *testing.T) {
	p, err := Load("en-US")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		key  string
		args []any
		want string
	}{
		{KeyStatus, []any{1, 7, 2}, "Difficulty 1/7, attempts remaining 2"},
		{KeyGuessPrompt, []any{"h*nter2"}, "Enter password (hint h*nter2):"},
		{KeyIncorrect, []any{"hunter3"}, "❌ Incorrect password (hunter3)"},
		{KeySummary, []any{4, 2, 3, 7}, "4 rounds, 2 correct, peak difficulty 3/7"},
		{KeyContinue, nil, "press any key to continue (q to quit)"},
	}
	for _, tt := range tests {
		if got := p.Sprintf(tt.key, tt.args...); got != tt.want {
			t.Errorf("Sprintf(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestSprintfPortuguese(t *testing.T) {
	p, err := Load("pt-BR")
	if err != nil {
		t.Fatal(err)
	}
	if p.Tag() != language.BrazilianPortuguese {
		t.Fatalf("Tag() = %v, want pt-BR", p.Tag())
	}
	want := "Dificuldade 2/7, tentativas restantes 5"
	if got := p.Sprintf(KeyStatus, 2, 7, 5); got != want {
		t.Errorf("Sprintf(KeyStatus) = %q, want %q", got, want)
	}
}

func TestUnknownLocaleFallsBack(t *testing.T) {
	p, err := Load("ja-JP")
	if err != nil {
		t.Fatal(err)
	}
	if got := p.Sprintf(KeyGoodbye); got != "Goodbye!" {
		t.Errorf("Sprintf(KeyGoodbye) = %q, want %q", got, "Goodbye!")
	}
}
