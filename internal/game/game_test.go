package game

import (
	"math"
	"slices"
	"testing"
	"time"

	"github.com/vovakirdan/fruit-catcher/internal/audio"
	"github.com/vovakirdan/fruit-catcher/internal/config"
	"github.com/vovakirdan/fruit-catcher/internal/core"
	"github.com/vovakirdan/fruit-catcher/internal/entity"
	"github.com/vovakirdan/fruit-catcher/internal/particles"
)

// fakeAudio records what the controller asked for.
type fakeAudio struct {
	played []string
	muted  bool
	fades  int
	ticks  int
}

func (a *fakeAudio) Play(name string)          { a.played = append(a.played, name) }
func (a *fakeAudio) SetMuted(m bool)           { a.muted = m }
func (a *fakeAudio) FadeInMusic(time.Duration) { a.fades++ }
func (a *fakeAudio) Tick(time.Duration)        { a.ticks++ }

func (a *fakeAudio) count(name string) (n int) {
	for _, p := range a.played {
		if p == name {
			n++
		}
	}
	return n
}

var testRuntime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}

func newTestGame(t *testing.T, cfg config.CatcherConfig) (*Game, *fakeAudio) {
	t.Helper()
	fa := &fakeAudio{}
	g := New(Options{Config: cfg, Audio: fa})
	g.Reset(testRuntime)
	return g, fa
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func click(x, y float64) core.InputFrame {
	in := core.NewInputFrame()
	in.ClickAt(core.Vec{X: x, Y: y})
	return in
}

// start opens a session and returns it.
func start(t *testing.T, g *Game, mode Mode) *Session {
	t.Helper()
	action := core.ActionStartNormal
	if mode == ModeUnlimited {
		action = core.ActionStartUnlimited
	}
	g.Step(press(action))
	if g.Screen() != ScreenGame || g.Session() == nil {
		t.Fatalf("expected a running session, screen = %v", g.Screen())
	}
	return g.Session()
}

// dropOnBasket places an object right on the basket.
func dropOnBasket(g *Game, kind entity.Kind) *entity.Falling {
	b := g.Session().Basket()
	f := g.addEntity(kind, b.X, 1)
	f.Pos.Y = b.Y
	f.Wobble = 0
	return f
}

// dropBelow places an object already past the bottom edge, away from the basket.
func dropBelow(g *Game, kind entity.Kind) *entity.Falling {
	f := g.addEntity(kind, 50, 1)
	f.Pos.Y = g.cfg.Playfield.Height + 100
	return f
}

func hasEvent(g *Game, kind EventKind) bool {
	return slices.ContainsFunc(g.Events(), func(e Event) bool { return e.Kind == kind })
}

func TestStartsOnHomeWithMusic(t *testing.T) {
	g, fa := newTestGame(t, config.DefaultCatcherConfig())

	if g.Screen() != ScreenHome {
		t.Errorf("Screen() = %v, expected home", g.Screen())
	}
	if fa.fades != 1 {
		t.Errorf("music fade-ins = %d, expected 1", fa.fades)
	}

	g.Step(idle())
	if fa.ticks != 1 {
		t.Errorf("audio ticks = %d, expected 1", fa.ticks)
	}
}

func TestStartNormalSession(t *testing.T) {
	g, fa := newTestGame(t, config.DefaultCatcherConfig())
	s := start(t, g, ModeNormal)

	if s.Lives() != 3 {
		t.Errorf("Lives() = %d, expected 3", s.Lives())
	}
	if s.Speed() != 2.5 {
		t.Errorf("Speed() = %v, expected 2.5", s.Speed())
	}
	if s.Delay() != 2000*time.Millisecond {
		t.Errorf("Delay() = %v, expected 2s", s.Delay())
	}
	if s.FruitsPerDrop() != 1 || s.Pattern() != PatternSingle {
		t.Errorf("drop = %d %v, expected 1 single", s.FruitsPerDrop(), s.Pattern())
	}
	if fa.count(audio.SoundCorrect) != 1 {
		t.Errorf("starting should play the button sound, played %v", fa.played)
	}
	if st := g.State(); st.Screen != "game" || st.Mode != "normal" {
		t.Errorf("State() = %+v", st)
	}
}

func TestStartUnlimitedSession(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultCatcherConfig())
	s := start(t, g, ModeUnlimited)

	if !s.Timed() || s.Lives() != 0 {
		t.Errorf("unlimited should be timed without lives, got timed=%v lives=%d", s.Timed(), s.Lives())
	}
	if s.Delay() != 1200*time.Millisecond || s.FruitsPerDrop() != 8 {
		t.Errorf("unlimited drop = %v x%d, expected 1.2s x8", s.Delay(), s.FruitsPerDrop())
	}
}

func TestNormalThreeMissesEndSession(t *testing.T) {
	g, fa := newTestGame(t, config.DefaultCatcherConfig())
	s := start(t, g, ModeNormal)

	for i := 1; i <= 3; i++ {
		dropBelow(g, entity.Fruit{Variant: entity.Apple})
		res := g.Step(idle())

		if !hasEvent(g, EventMiss) {
			t.Fatalf("miss %d: no miss event", i)
		}
		if s.Lives() != 3-i {
			t.Errorf("miss %d: lives = %d, expected %d", i, s.Lives(), 3-i)
		}
		if i < 3 && res.Finished {
			t.Fatalf("session ended after %d misses", i)
		}
		if i == 3 {
			if !res.Finished || !res.State.GameOver {
				t.Fatalf("third miss should end the session, result %+v", res)
			}
		}
	}

	if fa.count(audio.SoundMiss) != 3 || fa.count(audio.SoundGameOver) != 1 {
		t.Errorf("sounds = %v", fa.played)
	}
	if g.Screen() != ScreenGameOver {
		t.Errorf("Screen() = %v, expected gameover", g.Screen())
	}
}

func TestMissedBombCostsNothing(t *testing.T) {
	g, fa := newTestGame(t, config.DefaultCatcherConfig())
	s := start(t, g, ModeNormal)
	fa.played = nil

	dropBelow(g, entity.Bomb{})
	g.Step(idle())

	if s.Lives() != 3 || len(g.Events()) != 0 || len(fa.played) != 0 {
		t.Errorf("missed bomb: lives=%d events=%v sounds=%v", s.Lives(), g.Events(), fa.played)
	}
	if len(s.Entities()) != 0 {
		t.Error("missed bomb should leave the set")
	}
}

func TestNormalBombEndsSessionImmediately(t *testing.T) {
	g, fa := newTestGame(t, config.DefaultCatcherConfig())
	s := start(t, g, ModeNormal)
	s.score = 700

	bomb := dropOnBasket(g, entity.Bomb{})
	res := g.Step(idle())

	if bomb.State != entity.StateCaught {
		t.Errorf("bomb state = %v, expected caught", bomb.State)
	}
	if s.Lives() != 0 || !res.Finished || g.Screen() != ScreenGameOver {
		t.Fatalf("bomb should end the session: lives=%d result=%+v", s.Lives(), res)
	}
	if fa.count(audio.SoundBomb) != 1 || fa.count(audio.SoundGameOver) != 1 {
		t.Errorf("sounds = %v", fa.played)
	}
	if g.Best(ModeNormal) != 700 || res.State.Best != 700 {
		t.Errorf("best = %d, state best = %d, expected 700", g.Best(ModeNormal), res.State.Best)
	}
	if res.State.Score != 700 || res.State.Mode != "normal" {
		t.Errorf("final state = %+v", res.State)
	}
}

func TestCatchFruitScores(t *testing.T) {
	g, fa := newTestGame(t, config.DefaultCatcherConfig())
	s := start(t, g, ModeNormal)
	fa.played = nil
	before := g.fx.Len()

	dropOnBasket(g, entity.Fruit{Variant: entity.Orange})
	g.Step(idle())

	if s.Score() != 100 {
		t.Errorf("Score() = %d, expected 100", s.Score())
	}
	if !slices.Equal(fa.played, []string{audio.SoundCorrect}) {
		t.Errorf("sounds = %v, expected one correct", fa.played)
	}
	if !hasEvent(g, EventCatch) {
		t.Error("no catch event")
	}
	orange := 0
	for _, p := range g.Particles() {
		if p.Color == core.ColorOrange {
			orange++
		}
	}
	if orange != 20 || g.fx.Len() < before+20 {
		t.Errorf("catch burst: %d orange particles", orange)
	}
}

func TestUnlimitedBombFloorsAtZero(t *testing.T) {
	g, fa := newTestGame(t, config.DefaultCatcherConfig())
	s := start(t, g, ModeUnlimited)
	s.score = 30

	dropOnBasket(g, entity.Bomb{})
	res := g.Step(idle())

	if s.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", s.Score())
	}
	if res.Finished || g.Screen() != ScreenGame {
		t.Error("a bomb must not end an unlimited session")
	}
	if fa.count(audio.SoundWrong) != 1 || !hasEvent(g, EventPenalty) {
		t.Errorf("penalty not reported: sounds=%v events=%v", fa.played, g.Events())
	}
}

func TestUnlimitedMissIsSilent(t *testing.T) {
	g, fa := newTestGame(t, config.DefaultCatcherConfig())
	s := start(t, g, ModeUnlimited)
	fa.played = nil

	f := dropBelow(g, entity.Fruit{Variant: entity.Banana})
	g.Step(idle())

	if f.State != entity.StateMissed {
		t.Errorf("fruit state = %v, expected missed", f.State)
	}
	if len(g.Events()) != 0 || len(fa.played) != 0 || s.Score() != 0 {
		t.Errorf("unlimited miss should be silent: events=%v sounds=%v", g.Events(), fa.played)
	}
}

func TestUnlimitedEndsAfterCountdown(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultCatcherConfig())
	s := start(t, g, ModeUnlimited)
	dropOnBasket(g, entity.PowerUp{Variant: entity.PowerUpTime})

	limit := 55 * time.Second
	for i := 0; i < 4000; i++ {
		res := g.Step(idle())
		if res.Finished {
			if s.Elapsed() < limit {
				t.Fatalf("ended early at %v", s.Elapsed())
			}
			if s.Elapsed()-g.tick >= limit {
				t.Fatalf("ended late at %v", s.Elapsed())
			}
			if g.Screen() != ScreenGameOver {
				t.Errorf("Screen() = %v, expected gameover", g.Screen())
			}
			return
		}
		if s.Elapsed() >= limit {
			t.Fatalf("still running at %v", s.Elapsed())
		}
	}
	t.Fatal("unlimited session never ended")
}

func TestMilestoneRaisesDifficulty(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultCatcherConfig())
	s := start(t, g, ModeNormal)
	s.score = 1000

	g.Step(idle())

	if math.Abs(s.Speed()-2.7) > 1e-9 {
		t.Errorf("Speed() = %v, expected 2.7", s.Speed())
	}
	if s.Delay() != 1900*time.Millisecond {
		t.Errorf("Delay() = %v, expected 1.9s", s.Delay())
	}
	if s.LastMilestone() != 1000 || s.FruitsPerDrop() != 1 || s.Pattern() != PatternSingle {
		t.Errorf("milestone=%d fruits=%d pattern=%v", s.LastMilestone(), s.FruitsPerDrop(), s.Pattern())
	}
	if !hasEvent(g, EventMilestone) || s.Banner() == "" {
		t.Error("milestone should be celebrated")
	}
	if s.Boosted() {
		t.Error("boost should wait for 2000")
	}

	// The same score does not trigger again.
	g.Step(idle())
	if math.Abs(s.Speed()-2.7) > 1e-9 {
		t.Errorf("Speed() = %v after a second tick, expected 2.7", s.Speed())
	}
}

func TestMilestoneDelayFloor(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultCatcherConfig())
	s := start(t, g, ModeNormal)
	s.delay = 850 * time.Millisecond
	s.boosted = true
	s.score = 1000

	g.Step(idle())
	if s.Delay() != 800*time.Millisecond {
		t.Errorf("Delay() = %v, expected the 800ms floor", s.Delay())
	}
}

func TestSpeedBoostFiresOnce(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultCatcherConfig())
	s := start(t, g, ModeNormal)
	s.score = 2000

	g.Step(idle())

	if !s.Boosted() || !hasEvent(g, EventBoost) {
		t.Fatal("boost should fire at 2000")
	}
	if math.Abs(s.Speed()-3.2) > 1e-9 {
		t.Errorf("Speed() = %v, expected 2.5 + 0.2 + 0.5", s.Speed())
	}
	if s.Delay() != 1700*time.Millisecond {
		t.Errorf("Delay() = %v, expected 1.7s", s.Delay())
	}
	if s.FruitsPerDrop() != 2 {
		t.Errorf("FruitsPerDrop() = %d, expected 2", s.FruitsPerDrop())
	}
	if p := s.Pattern(); p != PatternRandom && p != PatternCluster {
		t.Errorf("Pattern() = %v, expected random or cluster for two fruit", p)
	}

	s.score = 3000
	g.Step(idle())
	if math.Abs(s.Speed()-3.4) > 1e-9 {
		t.Errorf("Speed() = %v after the next milestone, expected 3.4", s.Speed())
	}
}

func TestUnlimitedFruitsPerDropGrowFromBase(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultCatcherConfig())
	s := start(t, g, ModeUnlimited)
	s.score = 4000

	g.Step(idle())
	if s.FruitsPerDrop() != 10 {
		t.Errorf("FruitsPerDrop() = %d, expected 8 + 4/2", s.FruitsPerDrop())
	}

	s.score = 100000
	g.Step(idle())
	if s.FruitsPerDrop() != 15 {
		t.Errorf("FruitsPerDrop() = %d, expected the cap of 15", s.FruitsPerDrop())
	}
}

func TestFixedDifficulty(t *testing.T) {
	cfg := config.DefaultCatcherConfig()
	config.ApplyPreset(&cfg, config.DifficultyFixed)
	g, _ := newTestGame(t, cfg)
	s := start(t, g, ModeNormal)
	s.score = 5000

	g.Step(idle())
	if s.Speed() != 2.5 || s.LastMilestone() != 0 {
		t.Errorf("fixed preset changed difficulty: speed=%v milestone=%d", s.Speed(), s.LastMilestone())
	}
}

func TestLevelCounterIsIndependent(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultCatcherConfig())
	s := start(t, g, ModeNormal)

	s.score = 1000
	g.Step(idle())
	if s.Level() != 1 {
		t.Errorf("Level() = %d at exactly 1000, expected 1", s.Level())
	}

	s.score = 1100
	g.Step(idle())
	if s.Level() != 2 || !hasEvent(g, EventLevel) {
		t.Errorf("Level() = %d at 1100, expected 2", s.Level())
	}

	s.score = 5000
	g.Step(idle())
	if s.Level() != 3 {
		t.Errorf("Level() = %d, expected one level per tick", s.Level())
	}
}

func TestGameOverReturnsHomeAfterDelay(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultCatcherConfig())
	start(t, g, ModeNormal)
	dropOnBasket(g, entity.Bomb{})
	g.Step(idle())

	steps := 0
	for g.Screen() == ScreenGameOver && steps < 500 {
		g.Step(idle())
		steps++
	}
	if g.Screen() != ScreenHome {
		t.Fatalf("Screen() = %v, expected home", g.Screen())
	}
	if steps < 120 || steps > 121 {
		t.Errorf("returned home after %d ticks, expected 2s", steps)
	}
	if g.Session() != nil {
		t.Error("session should be discarded")
	}
}

func TestBackNavigation(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultCatcherConfig())
	start(t, g, ModeNormal)

	res := g.Step(press(core.ActionBack))
	if g.Screen() != ScreenHome || g.Session() != nil {
		t.Fatalf("Back should leave the session, screen = %v", g.Screen())
	}
	if res.Finished || res.State.Quit {
		t.Errorf("abandoning is not finishing: %+v", res)
	}

	g.Step(press(core.ActionInfo))
	if g.Screen() != ScreenInfo {
		t.Fatalf("Screen() = %v, expected info", g.Screen())
	}
	g.Step(press(core.ActionBack))
	if g.Screen() != ScreenHome {
		t.Fatalf("Back from info: Screen() = %v", g.Screen())
	}

	res = g.Step(press(core.ActionBack))
	if !res.State.Quit {
		t.Error("Back on home should quit")
	}
}

func TestQuitFromAnyScreen(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultCatcherConfig())
	start(t, g, ModeUnlimited)
	if res := g.Step(press(core.ActionQuit)); !res.State.Quit {
		t.Error("Quit should be reported")
	}
}

func TestMuteToggle(t *testing.T) {
	g, fa := newTestGame(t, config.DefaultCatcherConfig())

	res := g.Step(press(core.ActionMute))
	if !fa.muted || !res.State.Muted {
		t.Fatal("M should mute")
	}

	mute, ok := g.button(ButtonMute)
	if !ok {
		t.Fatal("home screen should have a mute button")
	}
	c := mute.Box.Center()
	res = g.Step(click(c.X, c.Y))
	if fa.muted || res.State.Muted {
		t.Error("clicking the mute button should unmute")
	}
}

func TestClickSpawnsCrackle(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultCatcherConfig())
	g.Step(click(20, 580))

	if g.Screen() != ScreenHome {
		t.Fatalf("empty click changed screen to %v", g.Screen())
	}
	crackles := 0
	for _, p := range g.Particles() {
		if p.Variant == particles.Crackle {
			crackles++
		}
	}
	if crackles != 20 {
		t.Errorf("crackle particles = %d, expected 20", crackles)
	}
}

func TestClickButtons(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultCatcherConfig())

	b, ok := g.button(ButtonUnlimited)
	if !ok {
		t.Fatal("no unlimited button on home")
	}
	c := b.Box.Center()
	g.Step(click(c.X, c.Y))
	if g.Session() == nil || g.Session().Mode() != ModeUnlimited {
		t.Fatal("clicking unlimited should start an unlimited session")
	}

	if _, ok := g.button(ButtonNormal); ok {
		t.Error("mode buttons should not be active during play")
	}

	g.Step(press(core.ActionBack))
	info, _ := g.button(ButtonInfo)
	c = info.Box.Center()
	g.Step(click(c.X, c.Y))
	if g.Screen() != ScreenInfo {
		t.Fatalf("Screen() = %v, expected info", g.Screen())
	}
	g.Step(click(400, 300))
	if g.Screen() != ScreenHome {
		t.Errorf("any click on info should return home, got %v", g.Screen())
	}
}

func TestPauseFreezesSession(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultCatcherConfig())
	s := start(t, g, ModeUnlimited)

	g.Step(press(core.ActionPause))
	frozen := s.Elapsed()
	for i := 0; i < 30; i++ {
		g.Step(press(core.ActionRight))
	}
	if s.Elapsed() != frozen || !g.State().Paused {
		t.Errorf("paused session advanced from %v to %v", frozen, s.Elapsed())
	}

	g.Step(press(core.ActionPause))
	g.Step(idle())
	if s.Elapsed() <= frozen {
		t.Error("unpaused session should advance")
	}
}

func TestBasketFollowsInput(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultCatcherConfig())
	s := start(t, g, ModeUnlimited)
	x := s.Basket().X

	for i := 0; i < 200; i++ {
		g.Step(press(core.ActionRight))
	}
	b := s.Basket()
	if b.X <= x {
		t.Errorf("basket did not move right: %v -> %v", x, b.X)
	}
	if b.X+b.Width/2 > g.cfg.Playfield.Width+1e-9 {
		t.Errorf("basket left the playfield: x = %v", b.X)
	}
}

func TestPowerUps(t *testing.T) {
	g, fa := newTestGame(t, config.DefaultCatcherConfig())
	s := start(t, g, ModeUnlimited)

	before := s.Remaining()
	dropOnBasket(g, entity.PowerUp{Variant: entity.PowerUpTime})
	g.Step(idle())
	if got := s.Remaining(); got > before {
		t.Errorf("time power-up changed the countdown: remaining %v -> %v", before, got)
	}
	if s.Score() != g.cfg.Difficulty.BonusPoints {
		t.Errorf("score = %d, expected %d bonus points", s.Score(), g.cfg.Difficulty.BonusPoints)
	}
	if fa.count(audio.SoundPowerUp) != 1 || !hasEvent(g, EventPowerUp) {
		t.Errorf("power-up not reported: %v", fa.played)
	}

	dropOnBasket(g, entity.PowerUp{Variant: entity.PowerUpSpeed})
	g.Step(idle())
	if s.basketBoost() != 2 {
		t.Fatal("speed power-up should double the basket speed")
	}
	target := s.Basket().TargetX
	g.Step(press(core.ActionLeft))
	if d := target - s.Basket().TargetX; math.Abs(d-20) > 1e-9 {
		t.Errorf("boosted move = %v, expected 20", d)
	}

	for i := 0; i < 5*60+1; i++ {
		g.Step(idle())
	}
	if s.basketBoost() != 1 || len(s.Effects()) != 0 {
		t.Error("speed effect should expire after 5s")
	}
}

func TestSpawningFillsThePlayfield(t *testing.T) {
	cfg := config.DefaultCatcherConfig()
	cfg.Difficulty.Enabled = false
	g, fa := newTestGame(t, cfg)
	s := start(t, g, ModeUnlimited)

	seen := map[entity.ID]bool{}
	kinds := map[string]int{}
	singleFruit, largest := 0, 0
	for i := 0; i < 45*60 && g.Screen() == ScreenGame; i++ {
		g.Step(idle())
		fresh := 0
		for _, f := range s.Entities() {
			if !seen[f.ID] {
				seen[f.ID] = true
				switch f.Kind.(type) {
				case entity.Fruit:
					kinds["fruit"]++
					fresh++
				case entity.Bomb:
					kinds["bomb"]++
				case entity.PowerUp:
					kinds["powerup"]++
				}
			}
			if f.Pos.X < -60 || f.Pos.X > g.cfg.Playfield.Width+60 {
				t.Fatalf("entity %d at x = %v", f.ID, f.Pos.X)
			}
		}
		if s.Pattern() == PatternSingle {
			if fresh > 1 {
				t.Fatalf("single pattern dropped %d fruit at %v", fresh, s.Elapsed())
			}
			singleFruit += fresh
		}
		largest = max(largest, fresh)
	}

	// Single until the first rotation at 15s, one fruit every 1.0-1.4s.
	if singleFruit < 8 || singleFruit > 16 {
		t.Errorf("%d fruit before the first rotation, expected 8-16", singleFruit)
	}
	if largest < 2 {
		t.Errorf("largest drop after rotation was %d fruit, expected a batch", largest)
	}
	if kinds["bomb"] == 0 {
		t.Error("no bombs spawned")
	}
	if kinds["powerup"] > 0 && fa.count(audio.SoundPowerUp) > kinds["powerup"] {
		t.Error("more power-up sounds than power-ups")
	}
}

func TestPatternRotates(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultCatcherConfig())
	s := start(t, g, ModeUnlimited)

	rotated := false
	for i := 0; i < 16*60 && !rotated && g.Screen() == ScreenGame; i++ {
		g.Step(idle())
		rotated = hasEvent(g, EventPattern)
	}
	if !rotated {
		t.Fatal("pattern did not rotate within 16s")
	}
	if s.Pattern() == PatternSingle {
		t.Error("rotation never picks single")
	}
}

func TestDropSize(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultCatcherConfig())
	s := start(t, g, ModeUnlimited)

	for i := 0; i < 500; i++ {
		n := g.dropSize()
		if n < 8 || n > 11 {
			t.Fatalf("unlimited drop size %d outside [8, 11]", n)
		}
	}
	s.fruitsPerDrop = 15
	for i := 0; i < 500; i++ {
		if n := g.dropSize(); n != 15 {
			t.Fatalf("drop size %d above the cap", n)
		}
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 3000)
	for i := range inputs {
		switch {
		case i == 0:
			inputs[i] = press(core.ActionStartUnlimited)
		case i%90 < 45:
			inputs[i] = press(core.ActionLeft)
		default:
			inputs[i] = press(core.ActionRight)
		}
	}

	run := func() Snapshot {
		g, _ := newTestGame(t, config.DefaultCatcherConfig())
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if a.Hash() != b.Hash() {
		t.Errorf("determinism failed: %d != %d", a.Hash(), b.Hash())
	}
	if a.Score != b.Score || a.EntityCount != b.EntityCount || a.BasketX != b.BasketX {
		t.Errorf("snapshots differ: %+v vs %+v", a, b)
	}
	if a.Tick != 3000 {
		t.Errorf("Tick = %d, expected 3000", a.Tick)
	}
}

func TestResetKeepsAppContext(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultCatcherConfig())
	s := start(t, g, ModeNormal)
	s.score = 300
	dropOnBasket(g, entity.Bomb{})
	g.Step(idle())
	g.Step(press(core.ActionMute))

	g.Reset(testRuntime)
	if g.Screen() != ScreenHome || g.Session() != nil || g.Ticks() != 0 {
		t.Error("Reset should return to a fresh home screen")
	}
	if g.Best(ModeNormal) != 300 || !g.Muted() {
		t.Error("Reset should keep best scores and mute")
	}
}

func TestSeededBestScores(t *testing.T) {
	g := New(Options{Config: config.DefaultCatcherConfig(), Best: map[Mode]int{ModeUnlimited: 4200}})
	g.Reset(testRuntime)
	if g.Best(ModeUnlimited) != 4200 {
		t.Errorf("Best(unlimited) = %d, expected 4200", g.Best(ModeUnlimited))
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m, got, err)
		}
	}
	if _, err := ParseMode("endless"); err == nil {
		t.Error("ParseMode should reject unknown modes")
	}
}
