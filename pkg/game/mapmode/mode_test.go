package mapmode

import (
	"math"
	"strings"
	"testing"

	"darkvale/pkg/engine/input"
	"darkvale/pkg/engine/world"
	"darkvale/pkg/game/global"
)

func TestNewStartsInExplore(t *testing.T) {
	m, _ := newTestMap(t)
	if got := m.CurrentState(); got != StateExplore {
		t.Errorf("CurrentState() = %v, want explore", got)
	}
	if m.states.Size() != 2 {
		t.Errorf("state stack size = %d, want 2 (sentinel + explore)", m.states.Size())
	}
	if m.GUIAlpha() != 0 {
		t.Errorf("GUIAlpha() = %v, want 0", m.GUIAlpha())
	}
	if m.RunStamina() != MaxStamina {
		t.Errorf("RunStamina() = %d, want %d", m.RunStamina(), MaxStamina)
	}
}

func TestUpdateRequests(t *testing.T) {
	tests := []struct {
		name   string
		action input.Action
		want   Request
	}{
		{"quit", input.ActionQuit, RequestQuit},
		{"pause", input.ActionPause, RequestPause},
		{"menu", input.ActionMenu, RequestMenu},
		{"nothing", input.ActionNone, RequestNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestMap(t)
			if got := m.Update(16, press(tt.action)); got != tt.want {
				t.Errorf("Update() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQuitShortCircuitsTick(t *testing.T) {
	m, hero := newTestMap(t)

	in := press(input.ActionQuit)
	in.Hold(input.ActionDown)
	m.Update(100, in)

	if hero.Moving {
		t.Error("explore update ran on a quit tick")
	}
	if m.GUIAlpha() != 0 {
		t.Errorf("GUIAlpha() = %v, want 0 on a quit tick", m.GUIAlpha())
	}
	if got := m.Frame().Edges.Left; got != hero.X-HalfScreenGridXLength {
		t.Errorf("frame was not computed before the quit: Edges.Left = %v", got)
	}
}

func TestMinimapToggle(t *testing.T) {
	m, _ := newTestMap(t)
	m.Update(16, nil)
	if !m.MinimapShown() {
		t.Fatal("MinimapShown() = false on a map with a minimap")
	}

	m.Update(16, press(input.ActionMinimap))
	if m.MinimapShown() {
		t.Error("MinimapShown() = true after the toggle")
	}
	m.Update(16, press(input.ActionMinimap))
	if !m.MinimapShown() {
		t.Error("MinimapShown() = false after toggling back")
	}
}

func TestMinimapFollowsCamera(t *testing.T) {
	m, hero := newTestMap(t)
	hero.SetDirection(world.West)
	m.Update(16, nil)

	mm := m.Minimap()
	if mm.PositionX != hero.X || mm.PositionY != hero.Y {
		t.Errorf("minimap position = (%v, %v), want (%v, %v)", mm.PositionX, mm.PositionY, hero.X, hero.Y)
	}
	if mm.MarkerFrame != MarkerWest {
		t.Errorf("MarkerFrame = %d, want %d", mm.MarkerFrame, MarkerWest)
	}

	m.PushState(StateScene)
	hero.SetDirection(world.North)
	m.Update(16, nil)
	if mm.MarkerFrame != MarkerWest {
		t.Error("minimap updated outside of explore")
	}
}

func TestUnknownStateResets(t *testing.T) {
	buf := captureLog(t)
	m, _ := newTestMap(t)

	m.PushState(State(42))
	m.Update(16, nil)

	if !strings.Contains(buf.String(), "map was set in an unknown state") {
		t.Errorf("log = %q, want unknown state warning", buf.String())
	}
	if got := m.CurrentState(); got != StateInvalid {
		t.Errorf("CurrentState() = %v, want invalid", got)
	}
	if m.states.Size() != 1 {
		t.Errorf("state stack size = %d, want 1", m.states.Size())
	}
}

func TestGUIAlpha(t *testing.T) {
	m, _ := newTestMap(t)

	m.Update(100, nil)
	if !approx(m.GUIAlpha(), 0.5) {
		t.Errorf("GUIAlpha() = %v, want 0.5", m.GUIAlpha())
	}
	m.Update(200, nil)
	if m.GUIAlpha() != 1 {
		t.Errorf("GUIAlpha() = %v, want 1", m.GUIAlpha())
	}

	m.PushState(StateDialogue)
	m.Update(100, nil)
	if !approx(m.GUIAlpha(), 0.5) {
		t.Errorf("GUIAlpha() in dialogue = %v, want 0.5", m.GUIAlpha())
	}
	m.Update(500, nil)
	if m.GUIAlpha() != 0 {
		t.Errorf("GUIAlpha() in dialogue = %v, want 0", m.GUIAlpha())
	}
}

func TestExploreMovement(t *testing.T) {
	m, hero := newTestMap(t)

	m.Update(150, hold(input.ActionUp, input.ActionLeft))
	if !hero.Moving {
		t.Fatal("hero should be moving with directions held")
	}
	if hero.Direction() != world.NorthWestWest {
		t.Errorf("Direction() = %v (%d), want NorthWestWest", hero.Direction(), hero.Direction())
	}
	if hero.X != 50 || hero.Y != 40 {
		t.Errorf("hero moved on the tick the direction was set: (%v, %v)", hero.X, hero.Y)
	}

	m.Update(150, hold(input.ActionUp, input.ActionLeft))
	if !hero.HasMoved() {
		t.Fatal("HasMoved() = false after walking")
	}
	if !approx(hero.X, 50-math.Sqrt2/2) || !approx(hero.Y, 40-math.Sqrt2/2) {
		t.Errorf("hero at (%v, %v), want one grid unit north-west", hero.X, hero.Y)
	}

	m.Update(150, nil)
	if hero.Moving {
		t.Error("hero still moving with no direction held")
	}
}

func TestExploreDirectionPriority(t *testing.T) {
	tests := []struct {
		held []input.Action
		want world.Direction
	}{
		{[]input.Action{input.ActionUp}, world.North},
		{[]input.Action{input.ActionDown}, world.South},
		{[]input.Action{input.ActionLeft}, world.West},
		{[]input.Action{input.ActionRight}, world.East},
		{[]input.Action{input.ActionLeft, input.ActionRight}, world.West},
		{[]input.Action{input.ActionDown, input.ActionRight}, world.SouthEastSouth},
		{[]input.Action{input.ActionUp, input.ActionDown}, world.North},
	}
	for _, tt := range tests {
		m, hero := newTestMap(t)
		m.Update(16, hold(tt.held...))
		if hero.Direction() != tt.want {
			t.Errorf("held %v: Direction() = %v (%d), want %d", tt.held, hero.Direction(), hero.Direction(), tt.want)
		}
	}
}

func TestRunningConsumesStamina(t *testing.T) {
	m, hero := newTestMap(t)
	in := hold(input.ActionRight, input.ActionCancel)

	m.Update(100, in)
	if hero.Running {
		t.Error("hero ran before having moved")
	}
	m.Update(100, in)
	if !hero.Running {
		t.Fatal("hero should run once moving with cancel held")
	}
	if m.RunStamina() != MaxStamina-200 {
		t.Errorf("RunStamina() = %d, want %d", m.RunStamina(), MaxStamina-200)
	}
	m.Update(100, in)

	// 100ms walking then 100ms running at 150ms per grid unit
	if !approx(hero.X, 52) {
		t.Errorf("hero.X = %v, want 52", hero.X)
	}
	if m.RunStamina() != MaxStamina-400 {
		t.Errorf("RunStamina() = %d, want %d", m.RunStamina(), MaxStamina-400)
	}
}

func TestRunningExhausted(t *testing.T) {
	m, hero := newTestMap(t)
	in := hold(input.ActionRight, input.ActionCancel)
	m.Update(100, in)
	m.Update(100, in)

	m.SetRunStamina(150)
	m.Update(100, in)
	if hero.Running {
		t.Error("hero ran without enough stamina")
	}
	if m.RunStamina() != 0 {
		t.Errorf("RunStamina() = %d, want 0", m.RunStamina())
	}
}

func TestRunningUnlimitedAndDisabled(t *testing.T) {
	m, hero := newTestMap(t)
	m.SetUnlimitedStamina(true)
	in := hold(input.ActionRight, input.ActionCancel)
	m.Update(100, in)
	m.Update(100, in)
	if !hero.Running || m.RunStamina() != MaxStamina {
		t.Errorf("unlimited: Running = %v stamina = %d, want true and %d", hero.Running, m.RunStamina(), MaxStamina)
	}

	m.SetRunningDisabled(true)
	m.Update(100, in)
	if hero.Running {
		t.Error("hero ran with running disabled")
	}
	if m.StaminaBarAlpha() != 0 {
		t.Errorf("StaminaBarAlpha() = %v, want 0 with running disabled", m.StaminaBarAlpha())
	}
}

func TestStaminaRegenerates(t *testing.T) {
	m, _ := newTestMap(t)
	m.SetRunStamina(5000)
	m.Update(100, nil)
	if m.RunStamina() != 5100 {
		t.Errorf("RunStamina() = %d, want 5100", m.RunStamina())
	}
	if got := m.StaminaHiddenWidth(); !approx(got, 98) {
		t.Errorf("StaminaHiddenWidth() = %v, want 98", got)
	}

	m.SetRunStamina(MaxStamina - 10)
	m.Update(100, nil)
	if m.RunStamina() != MaxStamina {
		t.Errorf("RunStamina() = %d, want capped at %d", m.RunStamina(), MaxStamina)
	}
}

func TestTalkEventPlaysScene(t *testing.T) {
	m, hero := newTestMap(t)
	sign := NewPhysicalObject(2, 50, 44, 1, 2)
	sign.TalkEvent = "read_sign"
	m.Objects().AddGroundObject(sign)
	m.Events().RegisterEvent(&Event{Name: "read_sign", Duration: 500})

	in := press(input.ActionConfirm)
	in.Hold(input.ActionDown)
	m.Update(100, in)

	if got := m.CurrentState(); got != StateScene {
		t.Fatalf("CurrentState() = %v, want scene", got)
	}
	if hero.Moving {
		t.Error("hero should stop when talking")
	}
	if !m.Events().IsEventActive("read_sign") {
		t.Error("event not active")
	}
	if m.AttackAllowed() {
		t.Error("AttackAllowed() = true during a scene")
	}

	for i := 0; i < 4; i++ {
		m.Update(100, nil)
	}
	if got := m.CurrentState(); got != StateExplore {
		t.Errorf("CurrentState() = %v after the event, want explore", got)
	}
}

func TestDialogueWithSprite(t *testing.T) {
	m, _ := newTestMap(t)
	npc := NewVirtualSprite(3, 50, 44)
	npc.DialogueID = "greeting"
	m.Objects().AddGroundObject(npc)
	m.Dialogue().RegisterDialogue(&Dialogue{
		ID: "greeting",
		Lines: []DialogueLine{
			{Speaker: "Guard", Text: "Halt!"},
			{Speaker: "Guard", Text: "Move along."},
		},
	})

	m.Update(16, press(input.ActionConfirm))
	if got := m.CurrentState(); got != StateDialogue {
		t.Fatalf("CurrentState() = %v, want dialogue", got)
	}
	if npc.Direction() != world.North {
		t.Errorf("npc.Direction() = %v, want North (facing the hero)", npc.Direction())
	}
	if _, text, ok := m.Dialogue().CurrentLine(); !ok || text != "Halt!" {
		t.Errorf("CurrentLine() = %q, %v, want \"Halt!\"", text, ok)
	}

	m.Update(16, press(input.ActionConfirm))
	if _, text, _ := m.Dialogue().CurrentLine(); text != "Move along." {
		t.Errorf("CurrentLine() = %q, want second line", text)
	}
	m.Update(16, press(input.ActionConfirm))
	if got := m.CurrentState(); got != StateExplore {
		t.Errorf("CurrentState() = %v after the last line, want explore", got)
	}
}

func TestTreasureOpensOnce(t *testing.T) {
	m, hero := newTestMap(t)
	chest := NewTreasureObject(4, 50, 44, global.NewItem(1, "Potion", 2))
	m.Objects().AddGroundObject(chest)

	m.Update(16, press(input.ActionConfirm))
	if got := m.CurrentState(); got != StateTreasure {
		t.Fatalf("CurrentState() = %v, want treasure", got)
	}
	if !m.Treasure().IsTaken(chest.ID) {
		t.Error("treasure not marked taken")
	}
	if m.Indicators().Len() != 1 {
		t.Errorf("Indicators().Len() = %d, want 1 item indicator", m.Indicators().Len())
	}

	in := press(input.ActionConfirm)
	in.Hold(input.ActionDown)
	m.Update(16, in)
	if got := m.CurrentState(); got != StateExplore {
		t.Errorf("CurrentState() = %v after closing, want explore", got)
	}
	if hero.Moving {
		t.Error("hero moved while the treasure was shown")
	}

	m.Update(16, press(input.ActionConfirm))
	if got := m.CurrentState(); got != StateExplore {
		t.Errorf("an opened treasure was shown again: state %v", got)
	}
	inv := m.Treasure().Inventory()
	if len(inv) != 1 || inv[0].Count != 2 {
		t.Errorf("Inventory() = %v, want one stack of 2 potions", inv)
	}
}

func TestSavePointRequest(t *testing.T) {
	m, _ := newTestMap(t)
	m.Objects().AddSavePoint(NewSavePoint(5, 50, 40))

	if got := m.Update(16, press(input.ActionConfirm)); got != RequestSave {
		t.Fatalf("Update() = %v, want save", got)
	}
	x, y := m.SavePosition()
	if x != 50 || y != 39 {
		t.Errorf("SavePosition() = (%v, %v), want (50, 39)", x, y)
	}
}

func TestUpdateHookAndDebugText(t *testing.T) {
	m, _ := newTestMap(t)
	calls := 0
	m.SetUpdateHook(func(mm *MapMode, elapsed int) {
		calls++
		if elapsed != 16 {
			t.Errorf("hook elapsed = %d, want 16", elapsed)
		}
	})
	m.SetDebugInfo(true)

	m.Update(16, nil)
	if calls != 1 {
		t.Errorf("hook called %d times, want 1", calls)
	}
	if got := m.DebugText(); got != "Camera position: 50.00, 40.00" {
		t.Errorf("DebugText() = %q", got)
	}

	m.SetDebugInfo(false)
	if m.DebugText() != "" {
		t.Error("DebugText() should be empty with debug info off")
	}
}

func TestIntroBlend(t *testing.T) {
	m, _ := newTestMap(t)
	if m.IntroBlend() != 0 {
		t.Errorf("IntroBlend() before Reset = %v, want 0", m.IntroBlend())
	}

	m.Reset()
	steps := []struct {
		elapsed int
		want    float64
	}{
		{500, 0.5},
		{1000, 1},
		{1000, 0.5},
		{1500, 0},
	}
	for _, s := range steps {
		m.Update(s.elapsed, nil)
		if got := m.IntroBlend(); !approx(got, s.want) {
			t.Errorf("IntroBlend() at %dms = %v, want %v", m.introTimer.TimeExpired(), got, s.want)
		}
	}
	if m.IntroShown() {
		t.Error("IntroShown() = true after the intro")
	}
}
