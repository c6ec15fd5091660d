// Package view is the windowed debug viewer: a top-down render of the
// match with the pilot's aim point, decision log and tick HUD. The render
// path never feeds back into the control path.
package view

import (
	"fmt"
	"image/color"
	"math"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Rocket-Sense/internal/arena"
	"github.com/Garsondee/Rocket-Sense/internal/pilot"
)

const (
	worldScale  = 0.065 // uu to pixels
	border      = 24
	logPanelW   = 320
	logLineH    = 11
	statusTicks = 120 // how long transient HUD messages linger
)

var (
	colField    = color.RGBA{R: 24, G: 60, B: 30, A: 255}
	colLines    = color.RGBA{R: 70, G: 120, B: 80, A: 255}
	colBall     = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	colCar      = color.RGBA{R: 220, G: 140, B: 30, A: 255}
	colAim      = color.RGBA{R: 80, G: 200, B: 255, A: 255}
	colPadUp    = color.RGBA{R: 240, G: 200, B: 60, A: 255}
	colPadDown  = color.RGBA{R: 80, G: 70, B: 40, A: 255}
	colPanelBG  = color.RGBA{R: 10, G: 12, B: 10, A: 248}
	colPanelSep = color.RGBA{R: 50, G: 70, B: 50, A: 255}
)

// View runs a match inside an ebiten window.
type View struct {
	match *arena.Match
	pilot *pilot.Pilot

	fieldW int // scaled field pixels
	fieldH int
	width  int
	height int

	paused   bool
	prevKeys map[ebiten.Key]bool

	status     string // transient message, e.g. "report copied"
	statusLeft int
}

// New wraps an already-wired match and pilot.
func New(m *arena.Match, p *pilot.Pilot) *View {
	scale := float64(worldScale)
	fieldW := int(2 * arena.FieldHalfWidth * scale)
	fieldH := int(2 * arena.FieldHalfLength * scale)
	return &View{
		match:    m,
		pilot:    p,
		fieldW:   fieldW,
		fieldH:   fieldH,
		width:    border + fieldW + border + logPanelW,
		height:   border + fieldH + border,
		prevKeys: make(map[ebiten.Key]bool),
	}
}

// Size returns the window dimensions in pixels.
func (v *View) Size() (int, int) {
	return v.width, v.height
}

func (v *View) keyPressed(k ebiten.Key) bool {
	down := ebiten.IsKeyPressed(k)
	was := v.prevKeys[k]
	v.prevKeys[k] = down
	return down && !was
}

func (v *View) Update() error {
	if v.keyPressed(ebiten.KeySpace) {
		v.paused = !v.paused
	}
	if v.keyPressed(ebiten.KeyR) {
		report := v.pilot.DebugReport(v.match.LastSnapshot())
		if err := clipboard.WriteAll(report); err != nil {
			v.setStatus("clipboard unavailable")
		} else {
			v.setStatus("report copied to clipboard")
		}
	}

	if v.statusLeft > 0 {
		v.statusLeft--
	}
	if !v.paused {
		v.match.Step()
	}
	return nil
}

func (v *View) setStatus(msg string) {
	v.status = msg
	v.statusLeft = statusTicks
}

// worldToScreen maps arena coordinates (Y north) to pixels (Y down).
func (v *View) worldToScreen(p pilot.Vec3) (float32, float32) {
	x := border + (p.X+arena.FieldHalfWidth)*worldScale
	y := border + (arena.FieldHalfLength-p.Y)*worldScale
	return float32(x), float32(y)
}

func (v *View) Draw(screen *ebiten.Image) {
	// Field.
	vector.FillRect(screen, border, border, float32(v.fieldW), float32(v.fieldH), colField, false)
	vector.StrokeRect(screen, border, border, float32(v.fieldW), float32(v.fieldH), 1, colLines, false)

	// Centre line and goal mouths.
	_, cy := v.worldToScreen(pilot.Vec3{})
	vector.StrokeLine(screen, border, cy, border+float32(v.fieldW), cy, 1, colLines, false)
	for _, gy := range []float64{arena.FieldHalfLength, -arena.FieldHalfLength} {
		gx1, gyy := v.worldToScreen(pilot.Vec3{X: -893, Y: gy})
		gx2, _ := v.worldToScreen(pilot.Vec3{X: 893, Y: gy})
		vector.StrokeLine(screen, gx1, gyy, gx2, gyy, 3, colAim, false)
	}

	// Boost pads.
	for _, pad := range v.match.Pads() {
		px, py := v.worldToScreen(pad.Pos)
		c := colPadDown
		if pad.Active {
			c = colPadUp
		}
		size := float32(3)
		if pad.IsBig {
			size = 5
		}
		vector.FillRect(screen, px-size/2, py-size/2, size, size, c, false)
	}

	car := v.match.CarState()
	ball := v.match.BallState()
	aim := v.pilot.LastTarget()

	// Aim point and the line the pilot is steering along.
	carX, carY := v.worldToScreen(car.Pos)
	aimX, aimY := v.worldToScreen(aim)
	vector.StrokeLine(screen, carX, carY, aimX, aimY, 1, colAim, false)
	vector.StrokeCircle(screen, aimX, aimY, 4, 1, colAim, false)

	// Ball, with its velocity tail.
	ballX, ballY := v.worldToScreen(ball.Pos)
	vector.FillCircle(screen, ballX, ballY, float32(arena.BallRadius*worldScale), colBall, true)
	tailX, tailY := v.worldToScreen(ball.Pos.Add(ball.Vel.Scale(0.5)))
	vector.StrokeLine(screen, ballX, ballY, tailX, tailY, 1, colBall, false)

	// Car with a heading indicator.
	vector.FillCircle(screen, carX, carY, 6, colCar, true)
	nose := car.Pos.Add(pilot.Vec3{X: 250 * math.Cos(car.Rot.Yaw), Y: 250 * math.Sin(car.Rot.Yaw)})
	hx, hy := v.worldToScreen(nose)
	vector.StrokeLine(screen, carX, carY, hx, hy, 2, colCar, false)

	v.drawHUD(screen)
	v.drawThoughtPanel(screen)
}

func (v *View) drawHUD(screen *ebiten.Image) {
	car := v.match.CarState()
	lines := []string{
		fmt.Sprintf("tick: %d  t=%.1fs  live=%v", v.match.Tick(), v.match.Elapsed(), v.match.Live()),
		fmt.Sprintf("action: %s  sequencing=%v", v.pilot.LastAction(), v.pilot.Sequencing()),
		fmt.Sprintf("speed: %.0f  boost: %.0f", car.Vel.Length(), car.Boost),
		fmt.Sprintf("touches: %d  goals: %d  flips: %d", v.match.Stats().Touches, v.match.Stats().Goals, v.pilot.FlipsStarted()),
		"[space] pause  [r] copy report",
	}
	if v.paused {
		lines = append(lines, "PAUSED")
	}
	if v.statusLeft > 0 {
		lines = append(lines, v.status)
	}
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, border+6, border+6+i*14)
	}
}

func (v *View) drawThoughtPanel(screen *ebiten.Image) {
	panelX := border + v.fieldW + border
	vector.FillRect(screen, float32(panelX), 0, logPanelW, float32(v.height), colPanelBG, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(v.height), 1, colPanelSep, false)
	ebitenutil.DebugPrintAt(screen, "DECISION LOG", panelX+8, 2)

	entries := v.pilot.Thoughts().Recent()
	maxVisible := (v.height - 24) / logLineH
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}
	y := 20
	for _, e := range entries {
		ebitenutil.DebugPrintAt(screen, e.String(), panelX+8, y)
		y += logLineH
	}
}

func (v *View) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.width, v.height
}
