package help

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/brainydate/internal/router"
)

func TestView(t *testing.T) {
	view := New(15, 5).View(80, 24)
	if !strings.Contains(view, "15 question IQ test") || !strings.Contains(view, "5 minutes") {
		t.Errorf("unexpected view:\n%s", view)
	}
}

func TestEscPops(t *testing.T) {
	for _, k := range []tea.KeyPressMsg{{Code: tea.KeyEscape}, {Code: '?', Text: "?"}} {
		_, cmd := New(15, 5).Update(k)
		if cmd == nil {
			t.Fatalf("key %q should close help", k.String())
		}
		if _, ok := cmd().(router.PopScreenMsg); !ok {
			t.Errorf("key %q: expected PopScreenMsg", k.String())
		}
	}
}
