package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/kelvane/dragpop/events"
	"github.com/kelvane/dragpop/gesture"
	"github.com/kelvane/dragpop/present"
	"github.com/kelvane/dragpop/scrollregion"
	"github.com/kelvane/dragpop/vmath"
)

const (
	frameInterval = 16 * time.Millisecond // ~60 FPS
	wheelIdleMs   = 250
	respawnMs     = 1200
	wheelStep     = 3
)

// App hosts one dismissible panel over a backdrop. Dragging the title bar is
// the raw-drag source; dragging or wheeling the list body scrolls it, and
// pushing past an edge feeds overscroll into the gesture machine
type App struct {
	screen        tcell.Screen
	width, height int

	cfg demoConfig

	machine  *gesture.Machine
	queue    *events.Queue
	router   *events.Router[*App]
	region   *scrollregion.Region
	smoother *present.Smoother

	gestureCfg gesture.Config
	enabled    bool

	// Panel geometry
	panelX, panelY int
	panelW, panelH int

	// Pointer tracking
	prevButtons tcell.ButtonMask
	chromeDrag  bool
	bodyDrag    bool
	dragOrigin  vmath.Vec2
	lastPos     vmath.Vec2
	lastMove    time.Time
	velocity    vmath.Vec2

	// Wheel scrolling has no release event; a virtual pointer walks with the
	// overshoot and an idle timeout synthesizes the end
	wheelActive  bool
	wheelPointer vmath.Vec2
	lastWheel    time.Time

	popped    bool
	respawnAt time.Time

	status    string
	lastFrame time.Time

	audioInit bool
}

// Size exposes the panel dimensions as the gesture viewport
func (a *App) Size() (w, h float64) {
	return float64(a.panelW), float64(a.panelH)
}

func NewApp(cfg demoConfig, gestureCfg gesture.Config) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}

	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	a := &App{
		screen:     screen,
		cfg:        cfg,
		gestureCfg: gestureCfg,
		enabled:    true,
		queue:      events.NewQueue(),
		smoother:   present.NewSmoother(60),
		status:     "drag the title bar, or scroll the list past its top edge",
		lastFrame:  time.Now(),
	}

	a.width, a.height = screen.Size()
	a.layout()

	a.region = scrollregion.New(cfg.Items, a.bodyHeight())
	a.machine = gesture.NewMachine(gestureCfg, a, a.queue)

	a.router = events.NewRouter[*App](a.queue)
	a.router.Register(&panelHandler{})

	if cfg.Sound {
		if err := a.initAudio(); err != nil {
			// Non-fatal, demo can run without sound
			fmt.Fprintf(os.Stderr, "Audio initialization failed: %v\n", err)
		}
	}

	return a, nil
}

func (a *App) initAudio() error {
	sampleRate := beep.SampleRate(44100)
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		a.audioInit = true
	}
	return err
}

func (a *App) playCue(freq float64, dur time.Duration) {
	if !a.audioInit {
		return
	}

	sampleRate := beep.SampleRate(44100)
	sine, _ := generators.SineTone(sampleRate, freq)
	speaker.Play(beep.Take(sampleRate.N(dur), sine))
}

// layout centers the panel at two thirds of the screen
func (a *App) layout() {
	a.panelW = a.width * 2 / 3
	a.panelH = a.height * 2 / 3
	if a.panelW < 20 {
		a.panelW = a.width
	}
	if a.panelH < 6 {
		a.panelH = a.height
	}
	a.panelX = (a.width - a.panelW) / 2
	a.panelY = (a.height - a.panelH) / 2
}

// bodyHeight is the list viewport inside the panel, below the title row
func (a *App) bodyHeight() int {
	h := a.panelH - 2
	if h < 1 {
		h = 1
	}
	return h
}

func (a *App) inTitleBar(x, y int) bool {
	return y == a.panelY && x >= a.panelX && x < a.panelX+a.panelW
}

func (a *App) inBody(x, y int) bool {
	return x >= a.panelX && x < a.panelX+a.panelW &&
		y > a.panelY && y < a.panelY+a.panelH
}

// projectWired drops the axes the configured direction does not wire, the
// demo's stand-in for installing only the matching-axis drag recognizer.
// origin supplies the held value for an unwired axis
func (a *App) projectWired(v, origin vmath.Vec2) vmath.Vec2 {
	if !a.gestureCfg.Direction.WiresHorizontal() {
		v.X = origin.X
	}
	if !a.gestureCfg.Direction.WiresVertical() {
		v.Y = origin.Y
	}
	return v
}

// trackVelocity folds the latest pointer movement into a smoothed
// cells-per-second estimate
func (a *App) trackVelocity(pos vmath.Vec2, now time.Time) {
	dt := now.Sub(a.lastMove).Seconds()
	if dt > 0 {
		inst := pos.Sub(a.lastPos).Scale(1 / dt)
		a.velocity = vmath.Lerp(a.velocity, inst, 0.6)
	}
	a.lastPos = pos
	a.lastMove = now
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pos := vmath.Vec2{X: float64(x), Y: float64(y)}
	btn := ev.Buttons()
	now := time.Now()

	switch {
	case btn&tcell.WheelUp != 0:
		a.handleWheel(-wheelStep, pos, now)
	case btn&tcell.WheelDown != 0:
		a.handleWheel(wheelStep, pos, now)
	}

	pressed := btn&tcell.Button1 != 0 && a.prevButtons&tcell.Button1 == 0
	released := btn&tcell.Button1 == 0 && a.prevButtons&tcell.Button1 != 0
	held := btn&tcell.Button1 != 0 && a.prevButtons&tcell.Button1 != 0
	a.prevButtons = btn

	switch {
	case pressed && !a.popped:
		a.velocity = vmath.Vec2{}
		a.lastPos = pos
		a.lastMove = now
		if a.inTitleBar(x, y) {
			a.chromeDrag = true
			a.dragOrigin = pos
			a.machine.HandleDragStart(gesture.PointerEvent{
				Kind:     gesture.PointerDragStart,
				Position: pos,
			})
		} else if a.inBody(x, y) {
			a.bodyDrag = true
		}

	case held && a.chromeDrag:
		proj := a.projectWired(pos, a.dragOrigin)
		a.trackVelocity(proj, now)
		a.machine.HandleDragUpdate(gesture.PointerEvent{
			Kind:     gesture.PointerDragUpdate,
			Position: proj,
		})

	case held && a.bodyDrag:
		rowDelta := int(a.lastPos.Y) - y
		a.trackVelocity(pos, now)
		overshoot := a.region.ScrollBy(rowDelta)
		if overshoot != 0 {
			a.machine.HandleScroll(gesture.Notification{
				Kind:       gesture.NotificationOverscroll,
				Overscroll: float64(overshoot),
				Drag:       &gesture.DragDetails{Position: pos},
			})
		} else {
			a.machine.HandleScroll(gesture.Notification{
				Kind: gesture.NotificationScroll,
				Drag: &gesture.DragDetails{Position: pos},
			})
		}

	case released && a.chromeDrag:
		a.chromeDrag = false
		a.machine.HandleDragEnd(gesture.PointerEvent{
			Kind:        gesture.PointerDragEnd,
			Velocity:    a.projectWired(a.velocity, vmath.Vec2{}),
			HasVelocity: true,
		})

	case released && a.bodyDrag:
		a.bodyDrag = false
		a.machine.HandleScroll(gesture.Notification{
			Kind: gesture.NotificationScrollEnd,
			Drag: &gesture.DragDetails{
				Velocity:    a.velocity,
				HasVelocity: true,
			},
		})
	}
}

// handleWheel scrolls the list and, past an edge, walks a virtual pointer by
// the overshoot so the machine sees overscroll deltas it can accumulate
func (a *App) handleWheel(delta int, pos vmath.Vec2, now time.Time) {
	if a.popped {
		return
	}

	if !a.wheelActive {
		a.wheelActive = true
		a.wheelPointer = pos
	}
	a.lastWheel = now

	overshoot := a.region.ScrollBy(delta)
	if overshoot == 0 {
		a.machine.HandleScroll(gesture.Notification{
			Kind: gesture.NotificationScroll,
			Drag: &gesture.DragDetails{Position: a.wheelPointer},
		})
		return
	}

	a.wheelPointer.Y -= float64(overshoot)
	a.machine.HandleScroll(gesture.Notification{
		Kind:       gesture.NotificationOverscroll,
		Overscroll: float64(overshoot),
		Drag:       &gesture.DragDetails{Position: a.wheelPointer},
	})
}

// endWheelIfIdle synthesizes the missing wheel release after a quiet gap
// A wheel has no fling, so the release carries zero velocity
func (a *App) endWheelIfIdle(now time.Time) {
	if !a.wheelActive || now.Sub(a.lastWheel).Milliseconds() < wheelIdleMs {
		return
	}
	a.wheelActive = false
	a.machine.HandleScroll(gesture.Notification{
		Kind: gesture.NotificationScrollEnd,
		Drag: &gesture.DragDetails{HasVelocity: true},
	})
}

func (a *App) handleResize() {
	newWidth, newHeight := a.screen.Size()
	if newWidth != a.width || newHeight != a.height {
		a.width = newWidth
		a.height = newHeight
		a.layout()
		a.region.SetVisible(a.bodyHeight())
	}
}

// respawn brings the panel back with a fresh machine and scroll position,
// as a navigator would on pushing the page again
func (a *App) respawn() {
	a.machine = gesture.NewMachine(a.gestureCfg, a, a.queue)
	a.machine.SetEnabled(a.enabled)
	a.region.ScrollTo(0)
	a.smoother.Reset()
	a.popped = false
	a.chromeDrag = false
	a.bodyDrag = false
	a.wheelActive = false
	a.status = "panel restored"
}

func (a *App) draw() {
	a.screen.Clear()

	// Backdrop dots
	dim := tcell.StyleDefault.Foreground(tcell.NewRGBColor(60, 60, 60))
	for y := 0; y < a.height-1; y += 2 {
		for x := y % 4; x < a.width; x += 4 {
			a.screen.SetContent(x, y, '·', nil, dim)
		}
	}

	if !a.popped {
		a.drawPanel()
	}

	a.drawStatus()
	a.screen.Show()
}

func (a *App) drawPanel() {
	offset, ok := a.machine.Offset()
	target := present.Rest()
	if ok {
		target = present.Map(offset, float64(a.panelW), float64(a.panelH))
	}
	t := a.smoother.Step(target)

	w := int(float64(a.panelW)*t.Scale + 0.5)
	h := int(float64(a.panelH)*t.Scale + 0.5)
	if w < 2 || h < 2 {
		return
	}
	px := a.panelX + (a.panelW-w)/2 + int(t.TranslateX+0.5)
	py := a.panelY + (a.panelH-h)/2 + int(t.TranslateY+0.5)

	level := int32(255 * t.Opacity)
	fg := tcell.NewRGBColor(level, level, level)
	body := tcell.StyleDefault.Foreground(fg)
	title := body.Reverse(true)

	// Title bar
	label := fmt.Sprintf(" popdemo  friction=%.1f direction=%s scroll=%s ",
		a.cfg.Friction, a.cfg.Direction, a.cfg.ScrollOption)
	for i := 0; i < w; i++ {
		ch := ' '
		if i < len(label) {
			ch = rune(label[i])
		}
		a.drawCell(px+i, py, ch, title)
	}

	// List body
	visible := h - 2
	if visible < 0 {
		visible = 0
	}
	thumbRow := 0
	if maxOff := a.region.Total - a.region.Visible; maxOff > 0 && visible > 1 {
		thumbRow = a.region.Offset * (visible - 1) / maxOff
	}
	for row := 0; row < visible; row++ {
		idx := a.region.Offset + row
		line := ""
		if idx < a.region.Total {
			line = fmt.Sprintf("  Entry %02d", idx+1)
		}
		for i := 0; i < w; i++ {
			ch := ' '
			if i < len(line) {
				ch = rune(line[i])
			}
			a.drawCell(px+i, py+1+row, ch, body)
		}
		mark := '│'
		if row == thumbRow {
			mark = '█'
		}
		a.drawCell(px+w-1, py+1+row, mark, body)
	}

	// Bottom edge
	for i := 0; i < w; i++ {
		a.drawCell(px+i, py+h-1, '─', body)
	}
}

func (a *App) drawStatus() {
	offset, ok := a.machine.Offset()
	off := "(none)"
	if ok {
		off = fmt.Sprintf("(%.1f, %.1f)", offset.X, offset.Y)
	}
	enabled := "on"
	if !a.enabled {
		enabled = "off"
	}
	line := fmt.Sprintf(" %s  offset=%s  gesture=%s | %s | q quit, e toggle, r restore",
		a.machine.Phase(), off, enabled, a.status)
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	for i := 0; i < a.width; i++ {
		ch := ' '
		if i < len(line) {
			ch = rune(line[i])
		}
		a.screen.SetContent(i, a.height-1, ch, nil, style)
	}
}

func (a *App) drawCell(x, y int, ch rune, style tcell.Style) {
	if x >= 0 && x < a.width && y >= 0 && y < a.height-1 {
		a.screen.SetContent(x, y, ch, nil, style)
	}
}

func (a *App) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case 'e':
				a.enabled = !a.enabled
				a.machine.SetEnabled(a.enabled)
				if a.enabled {
					a.status = "gesture enabled"
				} else {
					a.status = "gesture disabled, state kept as is"
				}
			case 'r':
				a.respawn()
			}
		}

	case *tcell.EventMouse:
		a.handleMouse(ev)

	case *tcell.EventResize:
		a.handleResize()
	}

	return true
}

func (a *App) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- a.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleInput(ev) {
				return
			}

		case <-ticker.C:
			now := time.Now()
			dt := now.Sub(a.lastFrame)
			a.lastFrame = now

			a.machine.Advance(dt)
			a.endWheelIfIdle(now)
			if a.popped && now.After(a.respawnAt) {
				a.respawn()
			}

			a.router.DispatchAll(a)
			a.draw()
		}
	}
}

func (a *App) cleanup() {
	if a.audioInit {
		speaker.Close()
	}
	a.screen.Fini()
}

// panelHandler reacts to the machine's lifecycle events
type panelHandler struct{}

func (h *panelHandler) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventDragStarted,
		events.EventSpringBackStarted,
		events.EventDragStopped,
		events.EventDismissed,
		events.EventPopRequested,
	}
}

func (h *panelHandler) HandleEvent(a *App, ev events.GestureEvent) {
	switch ev.Type {
	case events.EventDragStarted:
		if p, ok := ev.Payload.(*events.DragStartedPayload); ok {
			if p.Source == events.SourceScroll {
				a.status = "pop attempt from overscroll"
			} else {
				a.status = "pop attempt from raw drag"
			}
		}

	case events.EventSpringBackStarted:
		a.status = "springing back"

	case events.EventDragStopped:
		a.smoother.Reset()
		a.status = "settled"
		a.playCue(440, 40*time.Millisecond)

	case events.EventDismissed:
		a.playCue(660, 80*time.Millisecond)

	case events.EventPopRequested:
		a.popped = true
		a.respawnAt = time.Now().Add(respawnMs * time.Millisecond)
		a.status = "panel popped"
	}
}

func main() {
	configFlag := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	gestureCfg, err := cfg.gestureConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	app, err := NewApp(cfg, gestureCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer app.cleanup()

	// Panic recovery: restore the terminal before the stack trace prints
	defer func() {
		if r := recover(); r != nil {
			app.cleanup()
			fmt.Fprintf(os.Stderr, "\nPOPDEMO CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	app.run()
}
