package canvasview

import (
	"image"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"japmic/store"
	"japmic/ui/canvas"
)

func newModel(t *testing.T, mode canvas.Mode) Model {
	t.Helper()
	m, err := New(Config{Background: mode, CellWidth: 8, CellHeight: 16})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = m.Close() })
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestNewRejectsBadCellSize(t *testing.T) {
	if _, err := New(Config{Background: canvas.ModeIPhone, CellWidth: 0, CellHeight: 16}); err == nil {
		t.Fatal("expected error for zero cell width")
	}
}

func TestBeforeFirstSizeNothingIsDrawn(t *testing.T) {
	m := newModel(t, canvas.ModeIPhone)
	if w, h := m.surface.Size(); w != 0 || h != 0 {
		t.Fatalf("surface drawn before attach: %dx%d", w, h)
	}
}

func TestWindowSizeDrivesCanvasSize(t *testing.T) {
	m := newModel(t, canvas.ModeIPhone)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	// 38 canvas rows once header and footer take theirs.
	want := store.CanvasSize{Width: 800, Height: 38 * 16}
	if got := m.CanvasSize(); got != want {
		t.Fatalf("CanvasSize() = %+v, want %+v", got, want)
	}
	if w, h := m.surface.Size(); w != want.Width || h != want.Height {
		t.Fatalf("surface = %dx%d, want %dx%d", w, h, want.Width, want.Height)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 50, Height: 12})
	want = store.CanvasSize{Width: 400, Height: 10 * 16}
	if got := m.CanvasSize(); got != want {
		t.Fatalf("after shrink CanvasSize() = %+v, want %+v", got, want)
	}
}

func TestBackgroundKeyRemounts(t *testing.T) {
	m := newModel(t, canvas.ModeJapmic)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})
	old := m.widget

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})
	if m.Background() != canvas.ModeIPhone {
		t.Fatalf("Background() = %s, want iphone", m.Background())
	}
	if old.Mounted() {
		t.Fatal("previous widget still mounted")
	}
	if n := m.window.Listeners(); n != 1 {
		t.Fatalf("window has %d resize listeners, want 1", n)
	}
	if n := m.store.Subscribers(); n != 1 {
		t.Fatalf("store has %d subscribers, want 1", n)
	}
}

func TestQuit(t *testing.T) {
	m := newModel(t, canvas.ModeIPhone)
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q did not quit")
	}
}

func TestViewLayout(t *testing.T) {
	m := newModel(t, canvas.ModeIPhone)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})

	out := m.View()
	lines := strings.Split(out, "\n")
	if len(lines) != 10 {
		t.Fatalf("view has %d lines, want 10", len(lines))
	}
	if !strings.Contains(lines[0], "iphone") {
		t.Errorf("header %q does not name the background", lines[0])
	}
	if !strings.Contains(lines[len(lines)-1], "240x128") {
		t.Errorf("footer %q does not show the canvas size", lines[len(lines)-1])
	}
	if !strings.Contains(out, upperHalf) {
		t.Error("canvas cells missing")
	}
}

type fakeRaster struct {
	calls int
	gen   uint64
}

func (f *fakeRaster) Image() *image.RGBA {
	f.calls++
	return image.NewRGBA(image.Rect(0, 0, 16, 16))
}

func (f *fakeRaster) Generation() uint64 { return f.gen }

func TestRasterViewCachesByGeneration(t *testing.T) {
	v := newRasterView()
	src := &fakeRaster{gen: 1}

	first := v.render(src, 4, 2)
	second := v.render(src, 4, 2)
	if first != second || src.calls != 1 {
		t.Fatalf("expected cached render, got %d image reads", src.calls)
	}

	src.gen++
	v.render(src, 4, 2)
	v.render(src, 5, 2)
	if src.calls != 3 {
		t.Fatalf("image reads = %d, want 3", src.calls)
	}

	if out := v.render(src, 0, 2); out != "" {
		t.Fatalf("zero-width render = %q", out)
	}
}
