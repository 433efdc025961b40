package game

// aiActDelay is how many update ticks a computer player pauses before
// acting, so its turns remain readable.
const aiActDelay = 45

// aiController drives computer players in local games. Networked matches
// run their computer players server side.
type aiController struct {
	wait int
}

func (a *aiController) update(g *Game) {
	l := g.logic
	if l.GameOver || g.anim.PlayerMoving {
		a.wait = 0
		return
	}
	p := l.current()
	if !p.IsAI {
		a.wait = 0
		return
	}

	a.wait++
	if a.wait < aiActDelay {
		return
	}
	a.wait = 0

	if l.WaitingForEffectDice {
		l.RollEffectDice(g.rng)
		return
	}
	from := p.Position
	if steps := l.RollDice(g.rng); steps > 0 {
		g.anim.StartMove(p.ID, from, steps, g.board)
	}
}
