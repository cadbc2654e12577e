package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/input"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

var testScaler = input.Scaler{Cols: 80, Rows: 23, Width: 480, Height: 272}

func TestCanvasRetainsSprites(t *testing.T) {
	c := NewCanvas()
	a := core.NewRect(100, 100, 50, 50)
	b := core.NewRect(300, 100, 50, 50)

	c.Draw(a, "burger")
	c.Draw(b, "taco")
	c.Clear(a)

	if len(c.sprites) != 1 || c.sprites[b] != "taco" {
		t.Errorf("sprites = %v, expected only the taco", c.sprites)
	}
}

func TestCanvasRender(t *testing.T) {
	c := NewCanvas()
	c.Countdown(30, core.ColorDefault)
	c.ScoreChanged(130, core.ColorGreen)
	c.Draw(core.NewRect(240, 120, 50, 50), "burger")

	s := core.NewScreen(80, 23)
	c.Render(s, testScaler)
	out := s.String()

	for _, want := range []string{"SCORE 00130", "TIME 30", "BURGER"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
	if got := s.GetCell(0, 0).Color; got != core.ColorGreen {
		t.Errorf("score color = %v, expected green", got)
	}

	// The sprite's top-left pixel lands in its box corner.
	col, row := testScaler.Cell(core.Pt(240, 120))
	if got := s.Get(col, row); got != '┌' {
		t.Errorf("cell (%d, %d) = %q, expected a box corner", col, row, got)
	}
}

func TestCanvasBannerAndGameOver(t *testing.T) {
	c := NewCanvas()
	left := registry.Skin{ID: "burger", Title: "Burger"}
	right := registry.Skin{ID: "taco", Title: "Taco"}

	c.StartBanner(left, right)
	s := core.NewScreen(80, 23)
	c.Render(s, testScaler)
	if out := s.String(); !strings.Contains(out, "< BURGER") || !strings.Contains(out, "TACO >") {
		t.Errorf("banner missing:\n%s", out)
	}

	c.GameOver(130, 200)
	c.StartBanner(left, right)
	if !c.ShowingGameOver() {
		t.Fatal("game-over panel dismissed by the banner")
	}
	if score, high := c.Result(); score != 130 || high != 200 {
		t.Errorf("Result() = %d, %d", score, high)
	}

	c.Countdown(30, core.ColorDefault)
	if c.ShowingGameOver() || c.banner {
		t.Error("round start did not dismiss the banner and panel")
	}
}

func TestGlyphFor(t *testing.T) {
	if g := glyphFor(core.ImageSilentOn); g.label != "MUTED" || g.color != core.ColorRed {
		t.Errorf("glyphFor(silent-on) = %+v", g)
	}
	if g := glyphFor("pizza"); g.label != "PIZZA" {
		t.Errorf("glyphFor(pizza) = %+v", g)
	}
}
