// Command strummer runs the strumming arm core with a terminal
// visualizer: the arm skeleton is drawn from live state snapshots while
// the playback scheduler ticks in the background, with an optional
// audible click per stroke.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/strummer/audio"
	"github.com/lixenwraith/strummer/engine"
	"github.com/lixenwraith/strummer/kinematics"
	"github.com/lixenwraith/strummer/parameter"
	"github.com/lixenwraith/strummer/pattern"
	"github.com/lixenwraith/strummer/trajectory"
)

const (
	targetFPS   = 30
	framePeriod = time.Second / targetFPS

	// World-to-screen projection: side view of the strum plane,
	// horizontal = planar reach, vertical = height
	scaleX = 90.0 // cells per meter
	scaleY = 40.0 // rows per meter
)

var patternKeys = []string{
	"basic_down", "basic_alternating", "folk", "rock",
	"reggae", "flamenco", "slow_ballad",
}

func main() {
	var (
		patternID = flag.String("pattern", "basic_alternating", "strumming pattern ID")
		bpm       = flag.Float64("bpm", 0, "tempo override (0 = pattern default)")
		chordList = flag.String("chords", "G,C,D,Em", "comma-separated chord progression")
		mute      = flag.Bool("mute", false, "disable strum clicks")
	)
	flag.Parse()

	pattern.InitDefaultPatterns()

	arm, err := kinematics.New(kinematics.DefaultConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "arm configuration: %v\n", err)
		os.Exit(1)
	}
	gen, err := trajectory.NewGenerator(arm)
	if err != nil {
		fmt.Fprintf(os.Stderr, "trajectory generator: %v\n", err)
		os.Exit(1)
	}

	sched := engine.NewScheduler(gen, parameter.DefaultTickInterval, nil)
	sched.Start()
	defer sched.Shutdown()

	var player *audio.Player
	if !*mute {
		player = audio.NewPlayer()
		if err := player.Initialize(); err != nil {
			// Audio is optional; run silent
			player = nil
		} else {
			defer player.Cleanup()
		}
	}

	chords := strings.Split(*chordList, ",")
	for i := range chords {
		chords[i] = strings.TrimSpace(chords[i])
	}

	startBPM := *bpm
	if startBPM == 0 {
		if p := pattern.Get(*patternID); p != nil {
			startBPM = p.BPM
		} else {
			startBPM = parameter.DefaultBPM
		}
	}
	if err := sched.Play(*patternID, chords, startBPM); err != nil {
		fmt.Fprintf(os.Stderr, "play: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal init: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "terminal init: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(framePeriod)
	defer ticker.Stop()

	currentPattern := *patternID
	lastPhase := 0.0
	running := true

	for running {
		select {
		case ev, ok := <-events:
			if !ok {
				running = false
				break
			}
			switch tev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				switch {
				case tev.Key() == tcell.KeyEscape || tev.Rune() == 'q':
					running = false
				case tev.Rune() == ' ':
					snap := sched.State()
					if snap.Active() {
						sched.Stop()
					} else {
						_ = sched.Play(currentPattern, chords, snap.TempoBPM)
					}
				case tev.Rune() >= '1' && tev.Rune() <= '7':
					id := patternKeys[tev.Rune()-'1']
					snap := sched.State()
					if err := sched.Play(id, chords, snap.TempoBPM); err == nil {
						currentPattern = id
					}
				case tev.Rune() == '+' || tev.Rune() == '=':
					_ = sched.SetTempo(sched.State().TempoBPM + 5)
				case tev.Rune() == '-':
					_ = sched.SetTempo(sched.State().TempoBPM - 5)
				}
			}

		case <-ticker.C:
			snap := sched.State()

			if player != nil && snap.Active() {
				if p := pattern.Get(snap.PatternID); p != nil {
					for _, s := range p.Strikes {
						if phaseCrossed(lastPhase, snap.Phase, s.Offset) {
							player.Strum(s.Direction, s.Intensity)
						}
					}
				}
			}
			lastPhase = snap.Phase

			drawFrame(screen, arm, snap)
		}
	}
}

// phaseCrossed reports whether the phase passed offset between the two
// samples, treating the cycle as circular
func phaseCrossed(from, to, offset float64) bool {
	if from == to {
		return false
	}
	if from < to {
		return offset > from && offset <= to
	}
	// Wrapped around the seam
	return offset > from || offset <= to
}

func drawFrame(screen tcell.Screen, arm *kinematics.Arm, snap engine.Snapshot) {
	screen.Clear()
	w, h := screen.Size()

	originX := w / 4
	originY := h - 6

	drawGuitar(screen, originX, originY)
	drawArm(screen, arm, snap.Joints, originX, originY)
	drawHUD(screen, snap, w, h)

	screen.Show()
}

// project maps a base-frame point onto screen cells: horizontal is the
// signed planar reach, vertical is height
func project(x, y, z float64, originX, originY int) (int, int) {
	r := math.Hypot(x, y)
	if x < 0 {
		r = -r
	}
	return originX + int(r*scaleX), originY - int(z*scaleY)
}

func drawArm(screen tcell.Screen, arm *kinematics.Arm, joints kinematics.JointVector, originX, originY int) {
	linkStyle := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	jointStyle := tcell.StyleDefault.Foreground(tcell.ColorRed)
	pickStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)

	pts := arm.JointPositions(joints)
	screenPts := make([][2]int, len(pts))
	for i, p := range pts {
		sx, sy := project(p.X, p.Y, p.Z, originX, originY)
		screenPts[i] = [2]int{sx, sy}
	}

	for i := 1; i < len(screenPts); i++ {
		drawLine(screen, screenPts[i-1][0], screenPts[i-1][1], screenPts[i][0], screenPts[i][1], linkStyle)
	}
	for i, p := range screenPts {
		style := jointStyle
		ch := 'o'
		if i == len(screenPts)-1 {
			style = pickStyle
			ch = '@'
		}
		screen.SetContent(p[0], p[1], ch, nil, style)
	}
}

func drawGuitar(screen tcell.Screen, originX, originY int) {
	bodyStyle := tcell.StyleDefault.Foreground(tcell.ColorRosyBrown)
	stringStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)

	// Guitar body: a box around the strum point, strings across it
	lx, ty := project(parameter.StrumRestX-0.05, 0, parameter.StrumRestZ+0.12, originX, originY)
	rx, by := project(parameter.StrumRestX+0.05, 0, parameter.StrumRestZ-0.12, originX, originY)

	for x := lx; x <= rx; x++ {
		screen.SetContent(x, ty, '─', nil, bodyStyle)
		screen.SetContent(x, by, '─', nil, bodyStyle)
	}
	for y := ty; y <= by; y++ {
		screen.SetContent(lx, y, '│', nil, bodyStyle)
		screen.SetContent(rx, y, '│', nil, bodyStyle)
	}

	for i := 0; i < 6; i++ {
		z := parameter.StrumRestZ - 0.10 + float64(i)*0.04
		_, sy := project(parameter.StrumRestX, 0, z, originX, originY)
		for x := lx + 1; x < rx; x++ {
			screen.SetContent(x, sy, '·', nil, stringStyle)
		}
	}
}

func drawHUD(screen tcell.Screen, snap engine.Snapshot, w, h int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)

	name := snap.PatternID
	if p := pattern.Get(snap.PatternID); p != nil {
		name = p.Name
	}

	drawText(screen, 1, 0, style, fmt.Sprintf("strummer  [%s]", snap.State))
	drawText(screen, 1, 1, style, fmt.Sprintf("pattern: %-34s chord: %-3s tempo: %3.0f BPM",
		name, snap.Chord, snap.TempoBPM))

	// Phase bar across one cycle
	barWidth := w - 20
	if barWidth > 8 {
		filled := int(snap.Phase * float64(barWidth))
		var b strings.Builder
		b.WriteString("phase [")
		for i := 0; i < barWidth; i++ {
			if i == filled {
				b.WriteByte('|')
			} else {
				b.WriteByte('-')
			}
		}
		b.WriteByte(']')
		drawText(screen, 1, 2, dim, b.String())
	}

	drawText(screen, 1, h-1, dim, "1-7 pattern  space play/stop  +/- tempo  q quit")
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

// drawLine draws a cell line with Bresenham's algorithm
func drawLine(screen tcell.Screen, x0, y0, x1, y1 int, style tcell.Style) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy

	for {
		screen.SetContent(x0, y0, '█', nil, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}
