package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/input"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

// glyph is how an image handle looks on a terminal.
type glyph struct {
	label string
	color core.Color
}

var imageGlyphs = map[core.ImageID]glyph{
	"burger":            {"BURGER", core.ColorOrange},
	"taco":              {"TACO", core.ColorYellow},
	"super-burger":      {"$BURGER$", core.ColorMagenta},
	"super-taco":        {"$TACO$", core.ColorMagenta},
	core.ImageSilentOn:  {"MUTED", core.ColorRed},
	core.ImageSilentOff: {"MIC", core.ColorGreen},
}

func glyphFor(img core.ImageID) glyph {
	if g, ok := imageGlyphs[img]; ok {
		return g
	}
	return glyph{label: strings.ToUpper(string(img)), color: core.ColorWhite}
}

// Canvas is a retained-mode renderer. The session pushes draw and clear
// commands in display pixels; Render rasterizes the current state into
// terminal cells.
type Canvas struct {
	sprites map[core.Rect]core.ImageID

	score      uint32
	scoreColor core.Color
	countdown  uint32
	cdColor    core.Color
	running    bool

	banner      bool
	left, right registry.Skin

	over      bool
	lastScore uint32
	highscore uint32
}

// NewCanvas creates an empty canvas.
func NewCanvas() *Canvas {
	return &Canvas{sprites: make(map[core.Rect]core.ImageID)}
}

// Draw places img over r.
func (c *Canvas) Draw(r core.Rect, img core.ImageID) {
	c.sprites[r] = img
}

// Clear removes whatever was drawn over r.
func (c *Canvas) Clear(r core.Rect) {
	delete(c.sprites, r)
}

// ScoreChanged updates the score display.
func (c *Canvas) ScoreChanged(score uint32, col core.Color) {
	c.score = score
	c.scoreColor = col
}

// Countdown updates the countdown display. The first countdown of a round
// also dismisses the start banner and the game-over panel.
func (c *Canvas) Countdown(secs uint32, col core.Color) {
	c.countdown = secs
	c.cdColor = col
	c.running = secs > 0
	c.banner = false
	c.over = false
}

// StartBanner shows the two start buttons.
func (c *Canvas) StartBanner(left, right registry.Skin) {
	c.banner = true
	c.running = false
	c.left, c.right = left, right
}

// GameOver shows the final score until the next round starts.
func (c *Canvas) GameOver(score, highscore uint32) {
	c.over = true
	c.running = false
	c.lastScore = score
	c.highscore = highscore
}

// ShowingGameOver reports whether the game-over panel is up.
func (c *Canvas) ShowingGameOver() bool {
	return c.over
}

// Result returns the last final score and highscore.
func (c *Canvas) Result() (score, highscore uint32) {
	return c.lastScore, c.highscore
}

// Render draws the canvas onto s using sc to map display pixels to cells.
func (c *Canvas) Render(s *core.Screen, sc input.Scaler) {
	s.Clear()

	// Stable order keeps overlapping labels from flickering.
	rects := make([]core.Rect, 0, len(c.sprites))
	for r := range c.sprites {
		rects = append(rects, r)
	}
	sort.Slice(rects, func(i, j int) bool {
		if rects[i].Y != rects[j].Y {
			return rects[i].Y < rects[j].Y
		}
		return rects[i].X < rects[j].X
	})
	for _, r := range rects {
		c.drawSprite(s, sc, r, glyphFor(c.sprites[r]))
	}

	if c.running {
		s.DrawTextColored(0, 0, fmt.Sprintf("SCORE %05d", c.score), c.scoreColor)
		cd := fmt.Sprintf("TIME %02d", c.countdown)
		s.DrawTextColored(s.Width()-len(cd), 0, cd, c.cdColor)
	}

	if c.banner {
		mid := sc.Rows / 2
		left := fmt.Sprintf("< %s", strings.ToUpper(c.left.Title))
		right := fmt.Sprintf("%s >", strings.ToUpper(c.right.Title))
		s.DrawTextColored(max(0, s.Width()/4-len(left)/2), mid, left, core.ColorCyan)
		s.DrawTextColored(max(0, 3*s.Width()/4-len(right)/2), mid, right, core.ColorCyan)
		s.DrawTextCentered(mid+2, "click a side to start", core.ColorGray)
	}
}

func (c *Canvas) drawSprite(s *core.Screen, sc input.Scaler, r core.Rect, g glyph) {
	x0, y0 := sc.Cell(r.Min())
	x1, y1 := sc.Cell(core.Pt(r.Right()-1, r.Bottom()-1))
	cells := core.NewRect(x0, y0, x1-x0+1, y1-y0+1)

	if cells.W >= 3 && cells.H >= 3 {
		s.DrawBox(cells, g.color)
	} else {
		s.DrawRect(cells, '#', g.color)
	}

	label := g.label
	if len(label) > cells.W {
		label = label[:cells.W]
	}
	s.DrawTextColored(cells.X+(cells.W-len(label))/2, cells.Y+cells.H/2, label, g.color)
}
