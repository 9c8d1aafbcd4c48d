// Package play implements the interactive terminal player. It runs the
// program on a background goroutine and animates board snapshots delivered
// by the executor's observer callback.
package play

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Reader10/Interprete-QDraw/board"
	"github.com/Reader10/Interprete-QDraw/cli/cmd"
	"github.com/Reader10/Interprete-QDraw/exec"
	"github.com/Reader10/Interprete-QDraw/lang"
	"github.com/Reader10/Interprete-QDraw/log"
)

// Play animates a program in an interactive terminal UI.
type Play struct {
	Source string `arg:"" help:"Program source file or '-' for stdin" name:"source" default:"-"`

	Width  int    `help:"Board width in cells"               default:"8" short:"W"`
	Height int    `help:"Board height in cells"              default:"8" short:"H"`
	Speed  string `help:"Pacing between commands (${enum})"  default:"normal" enum:"instant,fast,normal,slow"`
}

// Run executes the play command.
func (p *Play) Run(ctx context.Context) error {
	source, err := cmd.LoadSource(p.Source)
	if err != nil {
		return err
	}

	prog, err := lang.ParseString(source)
	if err != nil {
		fmt.Println(lang.Annotate(err, source))
		return err
	}

	// Catch duplicate procedure names before entering the UI
	if _, err := exec.ProcedureTable(prog); err != nil {
		fmt.Println(lang.Annotate(err, source))
		return err
	}

	b, err := board.New(p.Width, p.Height)
	if err != nil {
		return err
	}

	m := model{
		ctx:     ctx,
		program: prog,
		source:  source,
		live:    b,
		view:    b.Clone(),
		speed:   exec.ParseSpeed(p.Speed),
		keys:    newKeyMap(),
		help:    help.New(),
	}

	log.DebugContext(ctx, "player start",
		slog.Int("width", p.Width),
		slog.Int("height", p.Height),
		slog.String("speed", m.speed.String()),
	)

	final, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	if m, ok := final.(model); ok && m.runErr != nil {
		if errors.Is(m.runErr, exec.ErrCancelled) {
			return nil
		}
		fmt.Println(lang.Annotate(m.runErr, source))
		return m.runErr
	}

	return nil
}

// frameMsg carries a board snapshot taken after one applied command.
type frameMsg struct{ snapshot *board.Board }

// doneMsg is sent when the background run finishes.
type doneMsg struct {
	result exec.Result
	err    error
}

// Styles.
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// model is the Bubble Tea model for the player.
//
// The live board is owned by the executor goroutine while a run is in
// flight; the view only ever renders snapshots received over frames.
type model struct {
	ctx     context.Context
	cancel  context.CancelFunc
	program *lang.Program
	source  string
	live    *board.Board
	view    *board.Board
	speed   exec.Speed
	frames  chan *board.Board
	done    chan doneMsg
	drawn   uint64
	result  exec.Result
	runErr  error
	running bool
	started bool
	keys    keyMap
	help    help.Model
}

// startMsg kicks off the first run once the program is on screen.
type startMsg struct{}

func (m model) Init() tea.Cmd {
	return func() tea.Msg { return startMsg{} }
}

// startRun resets the board and launches the executor on its own
// goroutine. Snapshots arrive on a fresh frames channel; the channel is
// closed once the run completes so the frame pump can wind down.
func (m model) startRun() (model, tea.Cmd) {
	runCtx, cancel := context.WithCancel(m.ctx)
	m.cancel = cancel

	m.live.Reset()
	_ = m.live.SetState(board.Running)
	m.view = m.live.Clone()
	m.drawn = 0
	m.runErr = nil
	m.running = true
	m.started = true

	frames := make(chan *board.Board, 32)
	done := make(chan doneMsg, 1)
	m.frames, m.done = frames, done

	live := m.live
	x, err := exec.New(live, m.program,
		exec.WithSpeed(m.speed),
		exec.WithObserver(func() {
			// Runs on the executor goroutine; drop the frame rather
			// than stall execution when the UI falls behind.
			select {
			case frames <- live.Clone():
			default:
			}
		}),
		exec.WithLogger(log.Default()),
	)
	if err != nil {
		m.running = false
		m.runErr = err
		cancel()
		return m, nil
	}

	go func() {
		result, err := x.Execute(runCtx)
		done <- doneMsg{result: result, err: err}
		close(frames)
	}()

	return m, tea.Batch(waitFrame(frames), waitDone(done))
}

func waitFrame(frames chan *board.Board) tea.Cmd {
	return func() tea.Msg {
		snapshot, ok := <-frames
		if !ok {
			return nil
		}
		return frameMsg{snapshot: snapshot}
	}
}

func waitDone(done chan doneMsg) tea.Cmd {
	return func() tea.Msg {
		return <-done
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case startMsg:
		return m.startRun()

	case frameMsg:
		m.view = msg.snapshot
		m.drawn++
		return m, waitFrame(m.frames)

	case doneMsg:
		m.running = false
		m.result = msg.result
		m.runErr = msg.err
		if msg.err != nil {
			_ = m.live.SetState(board.Failed)
		} else {
			_ = m.live.SetState(board.Finished)
		}
		m.view = m.live.Clone()
		m.cancel()
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.running {
			m.cancel()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Cancel):
		if m.running {
			m.cancel()
		}
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		if m.running {
			return m, nil
		}
		return m.startRun()

	case key.Matches(msg, m.keys.Speed):
		switch msg.String() {
		case "1":
			m.speed = exec.Instant
		case "2":
			m.speed = exec.Fast
		case "3":
			m.speed = exec.Normal
		case "4":
			m.speed = exec.Slow
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

func (m model) View() string {
	var status string
	switch {
	case m.running:
		status = statusStyle.Render(
			fmt.Sprintf("running · %s · %d frames", m.speed, m.drawn),
		)
	case m.runErr != nil && errors.Is(m.runErr, exec.ErrCancelled):
		status = statusStyle.Render(
			fmt.Sprintf("cancelled after %d steps · r to restart", m.result.Steps),
		)
	case m.runErr != nil:
		status = errorStyle.Render(lang.Annotate(m.runErr, m.source))
	case m.started:
		status = okStyle.Render(
			fmt.Sprintf("finished · %d steps · r to restart", m.result.Steps),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("qdraw"),
		cmd.RenderBoard(m.view),
		status,
		m.help.View(m.keys),
	) + "\n"
}
