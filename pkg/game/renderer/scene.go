package renderer

import (
	"fmt"
	"image/color"

	"github.com/leonelquinteros/gotext"

	"darkvale/pkg/engine/video"
	"darkvale/pkg/game/mapmode"
	"darkvale/pkg/game/menu"
	"darkvale/pkg/game/state"
)

// Standard resolution pixels per grid unit
const (
	PixelsPerGridX = video.StandardResWidth / mapmode.ScreenGridXLength
	PixelsPerGridY = video.StandardResHeight / mapmode.ScreenGridYLength
)

// Minimap window in standard resolution pixels
const (
	MinimapWidth  = 225.0
	MinimapHeight = 150.0
)

// Dialogue and message boxes
const (
	dialogueBoxX = 64.0
	dialogueBoxY = 560.0
	dialogueBoxW = 896.0
	dialogueBoxH = 160.0
	lineHeight   = 20.0
)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check.
var dynamicGet = gotext.Get

var (
	styleText    = video.NewTextStyle("sans", 16, ColorText)
	styleTitle   = video.NewTextStyle("sans-bold", 24, ColorText)
	styleSpeaker = video.NewTextStyle("sans-bold", 16, ColorAction)
	styleDebug   = video.TextStyle{Font: "mono", Size: 13, Color: ColorSubtle}
)

// DrawSession draws the map of a session with its message log, the open menu and the pause overlay
func DrawSession(s video.Surface, sess *state.Session) {
	DrawMap(s, sess.Map)
	drawMessages(s, sess.Messages)
	if mn := sess.Menu(); mn != nil {
		drawMenu(s, mn.Top())
	}
	if sess.Paused() {
		s.FillRect(0, 0, video.StandardResWidth, video.StandardResHeight, color.RGBA{0, 0, 0, 255}, 0.5)
		drawCentered(s, dynamicGet("PAUSED"), video.StandardResHeight/2-12, styleTitle, 1)
	}
}

// DrawMap draws one frame of a map in standard resolution pixels
func DrawMap(s video.Surface, m *mapmode.MapMode) {
	f := m.Frame()
	s.FillRect(0, 0, video.StandardResWidth, video.StandardResHeight, ColorBackground, 1)

	drawTiles(s, m, mapmode.GroundLayer, 1)
	layers := m.Objects().Layers()
	for _, layer := range layers[:len(layers)-1] {
		drawObjects(s, m, f, layer)
	}
	drawTiles(s, m, mapmode.SkyLayer, 0.6)
	drawObjects(s, m, f, layers[len(layers)-1])

	if m.DebugInfo() {
		drawCollisionGrid(s, m, f)
	}

	if m.MinimapShown() {
		drawMinimap(s, m)
	}
	drawStaminaBar(s, m)
	drawIntro(s, m)
	drawEvents(s, m)
	drawDialogue(s, m)
	drawTreasure(s, m)

	m.Indicators().Draw(s)

	if m.DebugInfo() {
		s.DrawText(m.DebugText(), 8, 8, styleDebug, 1)
	}
}

func drawTiles(s video.Surface, m *mapmode.MapMode, t mapmode.LayerType, alpha float64) {
	f := m.Frame()
	for _, l := range m.Tiles().Layers(t) {
		m.Tiles().VisibleTiles(l, f, func(tile int, gx, gy float64) {
			s.FillRect(gx*PixelsPerGridX, gy*PixelsPerGridY, 2*PixelsPerGridX, 2*PixelsPerGridY, TileColor(tile), alpha)
		})
	}
}

func objectColor(m *mapmode.MapMode, o mapmode.MapObject) color.RGBA {
	b := o.Base()
	switch b.Kind {
	case mapmode.KindSprite:
		if s, ok := o.(*mapmode.VirtualSprite); ok && s == m.Camera() {
			return ColorCamera
		}
		return ColorSprite
	case mapmode.KindTreasure:
		if m.Treasure().IsTaken(b.ID) {
			return ColorTreasureOff
		}
		return ColorTreasure
	case mapmode.KindSavePoint:
		return ColorSavePoint
	}
	return ColorPhysical
}

func drawObjects(s video.Surface, m *mapmode.MapMode, f mapmode.Frame, layer []mapmode.MapObject) {
	for _, o := range layer {
		b := o.Base()
		if !b.Visible {
			continue
		}
		box := b.Box()
		if box.Right < f.Edges.Left || box.Left > f.Edges.Right || box.Bottom < f.Edges.Top || box.Top > f.Edges.Bottom {
			continue
		}
		x, y := f.ScreenXCoordinate(box.Left), f.ScreenYCoordinate(box.Top)
		w, h := (box.Right-box.Left)*PixelsPerGridX, (box.Bottom-box.Top)*PixelsPerGridY

		alpha := 1.0
		if b.Kind == mapmode.KindSavePoint {
			alpha = 0.5
		}
		s.FillRect(x, y, w, h, objectColor(m, o), alpha)

		if sp, ok := o.(*mapmode.VirtualSprite); ok && sp.DialogueID != "" && m.CurrentState() == mapmode.StateExplore {
			iconY := y - 12 + m.Dialogue().IconOffset()*PixelsPerGridY
			s.FillRect(x+w/2-3, iconY, 6, 6, ColorAction, 1)
		}
	}
}

func drawCollisionGrid(s video.Surface, m *mapmode.MapMode, f mapmode.Frame) {
	grid := m.Objects().Grid()
	row0, row1 := int(f.Edges.Top), int(f.Edges.Bottom)
	col0, col1 := int(f.Edges.Left), int(f.Edges.Right)
	for row := max(row0, 0); row <= min(row1, grid.Rows()-1); row++ {
		for col := max(col0, 0); col <= min(col1, grid.Cols()-1); col++ {
			if !grid.IsBlocked(row, col) {
				continue
			}
			s.FillRect(f.ScreenXCoordinate(float64(col)), f.ScreenYCoordinate(float64(row)), PixelsPerGridX, PixelsPerGridY, ColorBlocked, 0.35)
		}
	}
}

func drawMinimap(s video.Surface, m *mapmode.MapMode) {
	mm := m.Minimap()
	alpha := mm.DrawOpacity()
	if alpha <= 0 {
		return
	}

	halfX, halfY := mm.HalfLengths()
	scaleX := MinimapWidth / (2 * halfX)
	scaleY := MinimapHeight / (2 * halfY)
	left, top := mm.CenterX-halfX, mm.CenterY-halfY

	s.FillRect(mapmode.MinimapPosX, mapmode.MinimapPosY, MinimapWidth, MinimapHeight, ColorFloor, alpha)

	grid := m.Objects().Grid()
	col0 := max(int(left/mapmode.MinimapBoxXLength), 0)
	col1 := min(int((left+2*halfX)/mapmode.MinimapBoxXLength), grid.Cols()-1)
	row0 := max(int(top/mapmode.MinimapBoxYLength), 0)
	row1 := min(int((top+2*halfY)/mapmode.MinimapBoxYLength), grid.Rows()-1)
	cellW := mapmode.MinimapBoxXLength * scaleX
	cellH := mapmode.MinimapBoxYLength * scaleY
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			if !grid.IsBlocked(row, col) {
				continue
			}
			x := mapmode.MinimapPosX + (float64(col)*mapmode.MinimapBoxXLength-left)*scaleX
			y := mapmode.MinimapPosY + (float64(row)*mapmode.MinimapBoxYLength-top)*scaleY
			if x < mapmode.MinimapPosX || y < mapmode.MinimapPosY {
				continue
			}
			s.FillRect(x, y, cellW, cellH, ColorWall, alpha)
		}
	}

	mx := mapmode.MinimapPosX + (mm.PositionX*mapmode.MinimapBoxXLength-left)*scaleX
	my := mapmode.MinimapPosY + (mm.PositionY*mapmode.MinimapBoxYLength-top)*scaleY
	s.FillRect(mx-3, my-3, 6, 6, ColorMarker, alpha)
}

func drawStaminaBar(s video.Surface, m *mapmode.MapMode) {
	alpha := m.StaminaBarAlpha()
	if alpha <= 0 {
		return
	}
	const height = 8.0
	s.FillRect(mapmode.StaminaBarX-1, mapmode.StaminaBarY-1, mapmode.StaminaBarWidth+2, height+2, ColorBorder, alpha)
	filled := mapmode.StaminaBarWidth - m.StaminaHiddenWidth()
	if filled > 0 {
		s.FillRect(mapmode.StaminaBarX, mapmode.StaminaBarY, filled, height, ColorStamina, alpha)
	}
	s.DrawText(dynamicGet("STAMINA"), mapmode.StaminaBarX-80, mapmode.StaminaBarY-5, styleText, alpha)
}

func drawIntro(s video.Surface, m *mapmode.MapMode) {
	if !m.IntroShown() || !m.ShowHudName() {
		return
	}
	blend := m.IntroBlend()
	if blend <= 0 {
		return
	}
	x := video.StandardResWidth/2 - textWidth(m.Name(), styleTitle)/2 + m.IntroNameShift()
	s.DrawText(m.Name(), x, 200, styleTitle, blend)
	if m.Subname() != "" {
		drawCentered(s, m.Subname(), 236, styleText, blend)
	}
}

func drawEvents(s video.Surface, m *mapmode.MapMode) {
	y := dialogueBoxY
	for _, e := range m.Events().ActiveEvents() {
		if e.Text == "" {
			continue
		}
		drawPanel(s, dialogueBoxX, y, dialogueBoxW, 2*lineHeight)
		s.DrawText(dynamicGet(e.Text), dialogueBoxX+16, y+10, styleText, 1)
		y -= 2*lineHeight + 8
	}
}

func drawDialogue(s video.Surface, m *mapmode.MapMode) {
	speaker, text, ok := m.Dialogue().CurrentLine()
	if !ok {
		return
	}
	drawPanel(s, dialogueBoxX, dialogueBoxY, dialogueBoxW, dialogueBoxH)
	if speaker != "" {
		s.DrawText(speaker, dialogueBoxX+16, dialogueBoxY+12, styleSpeaker, 1)
	}
	s.DrawText(text, dialogueBoxX+16, dialogueBoxY+12+1.5*lineHeight, styleText, 1)

	bob := m.Dialogue().IconOffset() * PixelsPerGridY
	s.FillRect(dialogueBoxX+dialogueBoxW-28, dialogueBoxY+dialogueBoxH-24+bob, 8, 8, ColorAction, 1)
}

func drawTreasure(s video.Surface, m *mapmode.MapMode) {
	t := m.Treasure().Current()
	if t == nil {
		return
	}
	const w = 360.0
	h := 56 + float64(len(t.Items))*lineHeight
	x, y := (video.StandardResWidth-w)/2, 180.0
	drawPanel(s, x, y, w, h)
	drawCentered(s, dynamicGet("TREASURE_FOUND"), y+12, styleSpeaker, 1)
	for i, item := range t.Items {
		line := fmt.Sprintf("%s x%d", dynamicGet(item.Name), item.Count)
		s.DrawText(line, x+24, y+40+float64(i)*lineHeight, video.NewTextStyle("sans", 16, ColorItem), 1)
	}
}

// drawMenu draws a menu as a full-screen overlay on top of the map
func drawMenu(s video.Surface, mn *menu.Menu) {
	const w = 480.0
	items := mn.Items()
	h := 120 + float64(len(items))*lineHeight*1.5
	x, y := (video.StandardResWidth-w)/2, (video.StandardResHeight-h)/2

	s.FillRect(0, 0, video.StandardResWidth, video.StandardResHeight, color.RGBA{0, 0, 0, 255}, 0.6)
	drawPanel(s, x, y, w, h)
	drawCentered(s, mn.Title(), y+16, styleTitle, 1)
	if instructions := mn.Instructions(); instructions != "" {
		drawCentered(s, instructions, y+52, video.NewTextStyle("sans", 13, ColorSubtle), 1)
	}

	for i, item := range items {
		iy := y + 84 + float64(i)*lineHeight*1.5
		style := styleText
		prefix := "  "
		switch {
		case i == mn.Selected():
			style = video.NewTextStyle("sans-bold", 16, ColorAction)
			prefix = "> "
			s.FillRect(x+12, iy-4, w-24, lineHeight+8, ColorBorder, 0.5)
		case !item.IsSelectable():
			style = video.NewTextStyle("sans", 16, ColorSubtle)
		}
		s.DrawText(prefix+item.GetLabel(), x+24, iy, style, 1)
	}

	if help := mn.HelpText(); help != "" {
		drawCentered(s, help, y+h-28, video.NewTextStyle("sans", 14, ColorItem), 1)
	}
}

func drawMessages(s video.Surface, messages []string) {
	for i, msg := range messages {
		y := video.StandardResHeight - 24 - float64(len(messages)-i)*lineHeight
		s.DrawText(msg, 16, y, styleText, 1)
	}
}

func drawPanel(s video.Surface, x, y, w, h float64) {
	s.FillRect(x-1, y-1, w+2, h+2, ColorBorder, 1)
	s.FillRect(x, y, w, h, ColorPanel, 1)
}

func drawCentered(s video.Surface, text string, y float64, style video.TextStyle, alpha float64) {
	s.DrawText(text, video.StandardResWidth/2-textWidth(text, style)/2, y, style, alpha)
}

// textWidth estimates the width of a text in standard resolution pixels
func textWidth(text string, style video.TextStyle) float64 {
	size := style.Size
	if size <= 0 {
		size = 16
	}
	return float64(len([]rune(text))) * size * 0.55
}
