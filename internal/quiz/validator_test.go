package quiz

import (
	"strings"
	"testing"
)

func goodQuestion() Question {
	return Question{
		Text:         "Which number comes next: 1, 1, 2, 3, 5, ?",
		Options:      []string{"7", "8", "9", "10"},
		CorrectIndex: 1,
		Category:     CategoryPattern,
	}
}

func TestStructuralValidator(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Question)
		want   string
	}{
		{"valid", func(*Question) {}, ""},
		{"empty text", func(q *Question) { q.Text = "  " }, "questionText is empty"},
		{"long text", func(q *Question) { q.Text = strings.Repeat("x", 501) }, "exceeds 500"},
		{"five options", func(q *Question) { q.Options = append(q.Options, "11") }, "expected 4 options, got 5"},
		{"blank option", func(q *Question) { q.Options[2] = "" }, "option 2 is empty"},
		{"negative index", func(q *Question) { q.CorrectIndex = -1 }, "out of range"},
		{"index too high", func(q *Question) { q.CorrectIndex = 4 }, "out of range"},
		{"no category", func(q *Question) { q.Category = "" }, "questionType is empty"},
	}

	v := &StructuralValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := goodQuestion()
			tt.mutate(&q)
			verr := v.Validate(q)
			if tt.want == "" {
				if verr != nil {
					t.Fatalf("unexpected error: %v", verr)
				}
				return
			}
			if verr == nil {
				t.Fatalf("expected error containing %q", tt.want)
			}
			if !strings.Contains(verr.Message, tt.want) {
				t.Errorf("expected %q in %q", tt.want, verr.Message)
			}
		})
	}
}

func TestImageValidator(t *testing.T) {
	v := &ImageValidator{}
	tests := []struct {
		url string
		ok  bool
	}{
		{"", true},
		{"https://picsum.photos/400/200?random=3", true},
		{"http://example.com/a.png", true},
		{"ftp://example.com/a.png", false},
		{"/tmp/a.png", false},
		{"https://", false},
	}
	for _, tt := range tests {
		url, ok := tt.url, tt.ok
		q := goodQuestion()
		q.ImageURL = url
		if got := v.Validate(q) == nil; got != ok {
			t.Errorf("url %q: expected ok=%v, got %v", url, ok, got)
		}
	}
}

func TestValidationError_Format(t *testing.T) {
	err := validateAll([]Question{goodQuestion(), {Text: ""}}, DefaultConfig().Validators)
	if err == nil {
		t.Fatal("expected an error")
	}
	want := `validator "structural": question 2: questionText is empty`
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestDefaultConfig_ValidatorChain(t *testing.T) {
	cfg := DefaultConfig()
	names := []string{}
	for _, v := range cfg.Validators {
		names = append(names, v.Name())
	}
	if strings.Join(names, ",") != "structural,image-url" {
		t.Errorf("unexpected chain %v", names)
	}
}
