package debugui

import (
	"fmt"
	"strings"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/game"
)

// SessionPanel shows progression, timers, the board and scheduler timings of
// one session.
type SessionPanel struct {
	session *game.Session
	frames  *History
	clock   *FrameTimer
}

func NewSessionPanel(session *game.Session, historyFrames int) *SessionPanel {
	return &SessionPanel{
		session: session,
		frames:  NewHistory(historyFrames),
		clock:   NewFrameTimer(),
	}
}

func (p *SessionPanel) Render() {
	p.frames.Push(float32(p.clock.Delta().Seconds() * 1000.0))

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 420), imgui.CondOnce)
	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	s := p.session
	progress := s.Progress()
	stats := s.Stats()

	imgui.Text(fmt.Sprintf("Score: %d  High: %d", progress.Score, progress.HighScore))
	imgui.Text(fmt.Sprintf("Level: %d  Speed: %d  Lines: %d", progress.Level, progress.Speed, progress.Lines))
	imgui.Text(fmt.Sprintf("State: %s", stateLabel(s)))

	if imgui.Button("Pause") {
		s.Send(game.PauseToggle)
	}
	imgui.SameLine()
	if imgui.Button("Restart") {
		s.Send(game.Restart)
	}

	imgui.Separator()
	avg := p.frames.Average()
	fps := float32(0)
	if avg > 0 {
		fps = 1000.0 / avg
	}
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, fps))
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &p.frames.Values()[0], int32(len(p.frames.Values())))

	if imgui.TreeNodeStr("Timers") {
		imgui.BulletText(fmt.Sprintf("Clock: %s", stats.Now))
		imgui.BulletText(fmt.Sprintf("Pending: %d", stats.Timers))
		imgui.BulletText(fmt.Sprintf("Gravity: %s", stats.GravityInterval))
		imgui.BulletText(fmt.Sprintf("Held: x=%+d y=%+d", stats.HeldX, stats.HeldY))
		if stats.Cascading {
			imgui.BulletText(fmt.Sprintf("Clearing rows %v", stats.Clearing))
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Piece") {
		if piece := s.Piece(); piece != nil {
			pos := piece.Position()
			imgui.Text(fmt.Sprintf("%s at (%d, %d), %s", piece.Kind(), pos.Col, pos.Row, piece.State()))
			imgui.Text(piece.Shape().String())
		} else {
			imgui.Text("none")
		}
		imgui.Text(fmt.Sprintf("Next: %s", s.Next()))
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Board") {
		imgui.Text(BoardText(s.Snapshot()))
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Systems") {
		renderSystemTable(s)
		imgui.TreePop()
	}

	imgui.End()
}

func renderSystemTable(s *game.Session) {
	stats := s.SchedulerStats()
	imgui.Text(fmt.Sprintf("Frames: %d  Executions: %d", stats.Frames, stats.TotalExecutions))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Avg")
		imgui.TableSetupColumn("Max")
		imgui.TableSetupColumn("Last")
		imgui.TableHeadersRow()

		for _, sys := range stats.Systems {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(sys.Name)
			imgui.TableNextColumn()
			imgui.Text(sys.AvgDuration.String())
			imgui.TableNextColumn()
			imgui.Text(sys.MaxDuration.String())
			imgui.TableNextColumn()
			imgui.Text(sys.LastDuration.String())
		}

		imgui.EndTable()
	}
}

func stateLabel(s *game.Session) string {
	switch {
	case s.IsGameOver():
		return "game over"
	case s.IsPaused():
		return "paused"
	case s.IsClearing():
		return "clearing"
	default:
		return "playing"
	}
}

// BoardText renders a snapshot as rows of characters: '#' for settled blocks,
// '@' for the active piece, '=' for rows being cleared and '.' for empty cells.
func BoardText(snap game.Snapshot) string {
	var b strings.Builder
	for row := range snap.Height {
		for col := range snap.Width {
			switch {
			case snap.IsClearing(row):
				b.WriteByte('=')
			case snap.PieceAt(col, row):
				b.WriteByte('@')
			case snap.Occupied(col, row):
				b.WriteByte('#')
			default:
				b.WriteByte('.')
			}
		}
		if row < snap.Height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// FrameTimer measures wall time between panel renders.
type FrameTimer struct {
	last time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{last: time.Now()}
}

func (ft *FrameTimer) Delta() time.Duration {
	now := time.Now()
	d := now.Sub(ft.last)
	ft.last = now
	return d
}
