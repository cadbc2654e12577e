package shooter

import (
	"math"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// ScoreListener receives a notification on every score change.
type ScoreListener interface {
	ScoreChanged(score uint32, c core.Color)
}

// ScoreKeeper tracks the running score and the session highscore.
type ScoreKeeper struct {
	score     uint32
	highscore uint32
	listener  ScoreListener
}

// NewScoreKeeper creates a keeper that notifies l. l may be nil.
func NewScoreKeeper(l ScoreListener) *ScoreKeeper {
	return &ScoreKeeper{listener: l}
}

// Score returns the running score.
func (k *ScoreKeeper) Score() uint32 {
	return k.score
}

// Highscore returns the best finalized score.
func (k *ScoreKeeper) Highscore() uint32 {
	return k.highscore
}

// ApplyEvilHit adds bounty, saturating at the maximum score.
func (k *ScoreKeeper) ApplyEvilHit(bounty uint32) {
	if bounty > math.MaxUint32-k.score {
		k.score = math.MaxUint32
	} else {
		k.score += bounty
	}
	k.notify(core.ColorGreen)
}

// ApplyHeroHit subtracts bounty, flooring at zero.
func (k *ScoreKeeper) ApplyHeroHit(bounty uint32) {
	k.score -= min(k.score, bounty)
	k.notify(core.ColorRed)
}

// Finalize closes the round: the highscore is raised if beaten and the
// running score resets to zero. It returns the round score and the highscore.
func (k *ScoreKeeper) Finalize() (score, highscore uint32) {
	score = k.score
	if score > k.highscore {
		k.highscore = score
	}
	k.score = 0
	return score, k.highscore
}

// Discard drops the running score without touching the highscore.
func (k *ScoreKeeper) Discard() {
	k.score = 0
}

func (k *ScoreKeeper) notify(c core.Color) {
	if k.listener != nil {
		k.listener.ScoreChanged(k.score, c)
	}
}
