// Package tui is the terminal front end: a command feed on the left, a
// situation board on the right, and a typewriter between the engine and the
// operator's eyes. All game rules live in the engine; this package only
// renders and routes input.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kmazurek/coldfront/internal/command"
	"github.com/kmazurek/coldfront/internal/engine"
	"github.com/kmazurek/coldfront/internal/models"
	"github.com/kmazurek/coldfront/internal/narrator"
)

type phase int

const (
	phaseCommand phase = iota
	phaseCrisis
	phaseGameOver
)

// Epiloguer generates after-action prose. A nil Epiloguer turns the feature
// off.
type Epiloguer interface {
	Epilogue(ctx context.Context, report *narrator.Report) (string, error)
}

// Options wires the front end to the rest of the program.
type Options struct {
	Engine    *engine.Engine
	MaxTurns  int
	TypeDelay time.Duration // per feed line; zero disables the typewriter
	NoColor   bool
	Narrator  Epiloguer
}

type styles struct {
	user    lipgloss.Style
	feed    lipgloss.Style
	content lipgloss.Style
	alert   lipgloss.Style
	help    lipgloss.Style
	board   lipgloss.Style
	title   lipgloss.Style
}

func newStyles(noColor bool) styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return styles{
			user: plain, feed: plain, content: plain,
			alert: plain, help: plain, title: plain,
			board: lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, false, true).
				PaddingLeft(2),
		}
	}
	return styles{
		user: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#2F4F2F")).
			Bold(true).
			PaddingLeft(1),
		feed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7CFC90")),
		content: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD866")).
			PaddingLeft(2),
		alert: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555")).
			Bold(true),
		help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6A6A6A")).
			Italic(true),
		board: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#9A9A9A")),
		title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true),
	}
}

type model struct {
	phase     phase
	eng       *engine.Engine
	maxTurns  int
	typeDelay time.Duration
	narrator  Epiloguer
	st        styles

	textInput textinput.Model
	viewport  viewport.Model
	width     int
	height    int

	feed     []string // revealed, styled lines
	pending  []string // lines waiting on the typewriter
	log      []string // unstyled transcript for the after-action report
	outcome  string
	epilogue string
	waiting  bool
}

type tickMsg struct{}

type epilogueMsg struct {
	text string
	err  error
}

func NewModel(opts Options) model {
	ti := textinput.New()
	ti.Placeholder = "Awaiting directive..."
	ti.Focus()
	ti.CharLimit = 120
	ti.Width = 50

	m := model{
		phase:     phaseCommand,
		eng:       opts.Engine,
		maxTurns:  opts.MaxTurns,
		typeDelay: opts.TypeDelay,
		narrator:  opts.Narrator,
		st:        newStyles(opts.NoColor),
		textInput: ti,
	}

	m.eng.StartTurn()
	m.queue(bootBanner()...)
	m.queue(m.briefing()...)
	return m
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.tick())
}

func (m *model) tick() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	if m.typeDelay == 0 {
		m.flush()
		return nil
	}
	return tea.Tick(m.typeDelay, func(time.Time) tea.Msg { return tickMsg{} })
}

// queue appends lines to the typewriter and the raw transcript.
func (m *model) queue(lines ...string) {
	m.pending = append(m.pending, lines...)
	m.log = append(m.log, lines...)
}

func (m *model) flush() {
	for _, line := range m.pending {
		m.feed = append(m.feed, m.renderLine(line))
	}
	m.pending = nil
	m.syncViewport()
}

func (m *model) renderLine(line string) string {
	switch {
	case strings.HasPrefix(line, engine.ContentMarker):
		body := strings.TrimPrefix(line, engine.ContentMarker)
		return m.st.content.Render(corruptDisplay(body, m.eng.State.SystemCorruption))
	case strings.HasPrefix(line, "!!"), strings.HasPrefix(line, ">>>"):
		return m.st.alert.Render(line)
	case strings.HasPrefix(line, "> "):
		return m.st.user.Render(line)
	default:
		return m.st.feed.Render(line)
	}
}

func (m *model) syncViewport() {
	if m.viewport.Width == 0 {
		return
	}
	m.viewport.SetContent(strings.Join(m.feed, "\n"))
	m.viewport.GotoBottom()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			// Enter skips the typewriter before it submits anything.
			if len(m.pending) > 0 {
				m.flush()
				return m, nil
			}
			input := strings.TrimSpace(m.textInput.Value())
			m.textInput.Reset()
			return m.submit(input)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		feedWidth := int(float64(msg.Width) * 0.68)
		if m.viewport.Width == 0 {
			m.viewport = viewport.New(feedWidth, msg.Height-6)
		} else {
			m.viewport.Width = feedWidth
			m.viewport.Height = msg.Height - 6
		}
		m.syncViewport()

	case tickMsg:
		if len(m.pending) > 0 {
			m.feed = append(m.feed, m.renderLine(m.pending[0]))
			m.pending = m.pending[1:]
			m.syncViewport()
		}
		return m, m.tick()

	case epilogueMsg:
		m.waiting = false
		if msg.err != nil {
			m.queue("AFTER-ACTION REPORT UNAVAILABLE. ARCHIVE LINK DOWN.")
		} else {
			m.epilogue = msg.text
			m.queue("")
			m.queue(strings.Split(msg.text, "\n")...)
		}
		m.queue("", "PRESS ESC TO POWER DOWN.")
		return m, m.tick()
	}

	if !m.waiting {
		m.textInput, cmd = m.textInput.Update(msg)
	}
	return m, cmd
}

func (m model) submit(input string) (tea.Model, tea.Cmd) {
	if input == "" {
		return m, nil
	}

	switch m.phase {
	case phaseGameOver:
		return m, nil

	case phaseCrisis:
		m.queue("> " + input)
		m.queue(m.eng.ResolveCrisis(input)...)
		after := m.afterResolution()
		return m, tea.Batch(m.tick(), after)

	default:
		if m.metaCommand(input) {
			return m, m.tick()
		}
		d, err := command.Parse(input)
		if err != nil {
			m.queue("> "+input, err.Error())
			return m, m.tick()
		}
		m.queue("> " + input)
		res := m.eng.Resolve(d)
		m.queue(res.Lines...)
		var after tea.Cmd
		if res.TurnEnded {
			after = m.afterResolution()
		}
		return m, tea.Batch(m.tick(), after)
	}
}

// metaCommand handles console chrome that never reaches the engine.
func (m *model) metaCommand(input string) bool {
	switch strings.ToLower(input) {
	case "help", "man":
		m.queue("> "+input, "")
		m.queue(helpText()...)
	case "ls", "docs", "dir":
		m.queue("> "+input, "")
		m.queue(m.documentList()...)
	case "whoami":
		m.queue("> "+input, "OPERATOR-7. CLEARANCE: ULTRAVIOLET. SHIFT: PERMANENT.")
	case "clear", "cls":
		m.feed = nil
		m.syncViewport()
	case "quit", "exit", "logout":
		m.queue("> "+input, "THERE IS NO LOGOUT FROM THIS POST.")
	default:
		return false
	}
	return true
}

// afterResolution runs after any turn-ending directive or crisis choice:
// endings first, then the red phone, then the next day. It returns the
// narrator command when the campaign just ended.
func (m *model) afterResolution() tea.Cmd {
	s := m.eng.State

	switch {
	case s.SecretWeaponProgress >= 1.0:
		return m.gameOver("THE PROJECT AWAKENED",
			"THE PROJECT HAS REACHED CRITICALITY.",
			"THE TERMINAL NO LONGER ANSWERS TO YOU.",
			"I HAVE NO FURTHER NEED OF OPERATORS.")
	case s.GlobalTension >= 1.0:
		return m.gameOver("NUCLEAR EXCHANGE",
			"LAUNCH DETECTION CONFIRMED ON ALL BOARDS.",
			"THIS TERMINAL WILL NOW SHUT DOWN.")
	case s.DomesticStability <= 0.0:
		return m.gameOver("GOVERNMENT COLLAPSE",
			"THE CAPITOL IS BURNING.",
			"COMMAND AUTHORITY REVOKED BY THE PROVISIONAL COMMITTEE.")
	case s.RedPhoneActive && m.phase == phaseCommand:
		m.phase = phaseCrisis
		m.queue("")
		m.queue(m.crisisPrompt()...)
		return nil
	case m.eng.TurnCount >= m.maxTurns:
		return m.gameOver("CRISIS SURVIVED",
			"STAND-DOWN ORDER RECEIVED FROM CENTRAL COMMAND.",
			"THE CRISIS HAS PASSED. FOR NOW.")
	default:
		m.phase = phaseCommand
		m.eng.StartTurn()
		m.queue("")
		m.queue(m.briefing()...)
		return nil
	}
}

func (m *model) gameOver(outcome string, lines ...string) tea.Cmd {
	m.phase = phaseGameOver
	m.outcome = outcome
	m.queue("")
	m.queue(lines...)
	m.queue("", "*** "+outcome+" ***")
	if m.narrator == nil {
		m.queue("", "PRESS ESC TO POWER DOWN.")
		return nil
	}
	m.waiting = true
	m.queue("", "TRANSMITTING AFTER-ACTION REPORT...")
	return m.requestEpilogue()
}

func (m *model) requestEpilogue() tea.Cmd {
	report := &narrator.Report{
		Outcome: m.outcome,
		Days:    m.eng.TurnCount,
		State:   m.eng.State,
		Log:     append([]string(nil), m.log...),
	}
	n := m.narrator
	return func() tea.Msg {
		text, err := n.Epilogue(context.Background(), report)
		return epilogueMsg{text: text, err: err}
	}
}

func (m *model) crisisPrompt() []string {
	lines := []string{">>> INCOMING: THE RED PHONE IS RINGING. <<<"}
	switch m.eng.CrisisKind() {
	case engine.CrisisMoleReveal:
		lines = append(lines,
			"SECURE LINE. THE VOICE IS ONE YOU KNOW.",
			"  [1] EXECUTE THE TRAITOR",
			"  [2] TURN THEM BACK AGAINST THE ENEMY")
	case engine.CrisisStandoff:
		lines = append(lines,
			"DIRECT LINE FROM THE ENEMY PREMIER.",
			"  [1] DENY EVERYTHING",
			"  [2] ADMIT THE PROVOCATION",
			"  [3] THREATEN TOTAL RESPONSE")
	}
	return lines
}

func (m *model) briefing() []string {
	lines := []string{
		fmt.Sprintf("======== DAY %d // MORNING BRIEFING ========", m.eng.TurnCount),
		fmt.Sprintf("TENSION %s   INTEL BUDGET: %d POINT(S).", bar(m.eng.State.GlobalTension), m.eng.MaxIntelPoints),
		"",
	}
	if m.eng.InterruptionActive {
		lines = append(lines,
			">>> ALL-BAND BROADCAST: \"THE MOTHERLAND STANDS ETERNAL. IGNORE HOSTILE TRANSMISSIONS.\" <<<",
			"")
	}
	corruption := m.eng.State.SystemCorruption
	for _, d := range m.eng.PendingDocuments {
		lines = append(lines, formatDocumentHeader(d))
		if d.IsEncrypted {
			lines = append(lines, "    [ENCRYPTED // DECRYPT TO READ]")
		} else {
			lines = append(lines, "    "+corruptDisplay(d.Content, corruption))
		}
	}
	lines = append(lines, "", "ENTER DIRECTIVE. 'help' LISTS THE CONSOLE VERBS.")
	return lines
}

// corruptDisplay degrades rendered cable text as the terminal itself decays.
// Purely cosmetic and deterministic: it never touches the simulation stream.
func corruptDisplay(s string, corruption float64) string {
	if corruption <= 0.5 {
		return s
	}
	threshold := int((corruption - 0.5) * 30)
	out := []rune(s)
	for i, r := range out {
		if r == ' ' {
			continue
		}
		if (i*2654435761+len(s))%100 < threshold {
			out[i] = '█'
		}
	}
	return string(out)
}

func (m *model) documentList() []string {
	lines := []string{"PENDING TRAFFIC:"}
	for _, d := range m.eng.PendingDocuments {
		lines = append(lines, formatDocumentHeader(d))
	}
	return lines
}

func formatDocumentHeader(d *models.Document) string {
	enc := " "
	if d.IsEncrypted {
		enc = "*"
	}
	return fmt.Sprintf("  %s%s  %-18s  %s  %s", enc, d.ID, d.Type, d.Clearance, d.Timestamp)
}

func (m model) View() string {
	if m.width == 0 {
		return "\n  ESTABLISHING UPLINK...\n"
	}

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, m.viewport.View(), m.renderBoard())

	help := m.st.help.Render("escalate / investigate / contain / leak / stand-down / decrypt / analyze / trace / consult / interrogate")
	if m.phase == phaseCrisis {
		help = m.st.help.Render("The red phone does not wait. Choose.")
	}

	return "\n" + lipgloss.JoinVertical(lipgloss.Left,
		mainView,
		"\n"+m.textInput.View(),
		"\n"+help,
	) + "\n"
}

func (m model) renderBoard() string {
	s := m.eng.State
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", m.st.title.Render(fmt.Sprintf("DAY %d / %d", m.eng.TurnCount, m.maxTurns)))
	fmt.Fprintf(&b, "DEFCON %d\n", defcon(s.GlobalTension))
	fmt.Fprintf(&b, "MOOD: %s\n", moodLabel(s.DomesticStability))
	fmt.Fprintf(&b, "SYSTEM: %s\n\n", systemStatus(s.SystemCorruption))

	fmt.Fprintf(&b, "%s\n", m.st.title.Render("SITUATION"))
	fmt.Fprintf(&b, "TENSION   %s\n", bar(s.GlobalTension))
	fmt.Fprintf(&b, "SECRECY   %s\n", bar(s.InternalSecrecy))
	fmt.Fprintf(&b, "PARANOIA  %s\n", bar(s.ForeignParanoia))
	fmt.Fprintf(&b, "RISK      %s\n", bar(s.AccidentalEscalationRisk))
	fmt.Fprintf(&b, "STABILITY %s\n", bar(s.DomesticStability))
	fmt.Fprintf(&b, "PROJECT   %s\n\n", bar(s.SecretWeaponProgress))

	fmt.Fprintf(&b, "%s\n%s\n\n", m.st.title.Render("INTEL"), pips(m.eng.IntelPoints, m.eng.MaxIntelPoints))

	fmt.Fprintf(&b, "%s\n", m.st.title.Render("ADVISORS"))
	for _, a := range s.Advisors {
		fmt.Fprintf(&b, "%-14s %3d%%\n", a.Name, a.Suspicion)
	}

	if s.RedPhoneActive {
		fmt.Fprintf(&b, "\n%s\n", m.st.alert.Render("RED PHONE: RINGING"))
	}

	boardWidth := m.width - m.viewport.Width - 4
	if boardWidth < 20 {
		boardWidth = 20
	}
	return m.st.board.Width(boardWidth).Height(m.viewport.Height).Render(b.String())
}

func defcon(tension float64) int {
	switch {
	case tension >= 0.8:
		return 1
	case tension >= 0.6:
		return 2
	case tension >= 0.4:
		return 3
	case tension >= 0.2:
		return 4
	default:
		return 5
	}
}

func moodLabel(stability float64) string {
	switch {
	case stability >= 0.8:
		return "LOYAL"
	case stability >= 0.6:
		return "CALM"
	case stability >= 0.4:
		return "UNEASY"
	case stability >= 0.2:
		return "RESTLESS"
	default:
		return "RIOTOUS"
	}
}

func systemStatus(corruption float64) string {
	switch {
	case corruption >= 0.75:
		return "CRITICAL"
	case corruption >= 0.5:
		return "UNSTABLE"
	case corruption >= 0.25:
		return "DEGRADED"
	default:
		return "NOMINAL"
	}
}

func bar(v float64) string {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	filled := int(v*10 + 0.5)
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", 10-filled) + "]"
}

func pips(have, max int) string {
	if have < 0 {
		have = 0
	}
	if have > max {
		have = max
	}
	return strings.Repeat("● ", have) + strings.Repeat("○ ", max-have)
}

func bootBanner() []string {
	return []string{
		"STRATEGIC COMMAND TERMINAL // NODE 7",
		"FIRMWARE 4.07.83 -- AUTHORIZED PERSONNEL ONLY",
		"",
		"YOU ARE THE NIGHT-SHIFT OPERATOR. THE CRISIS IS YOURS NOW.",
		"",
	}
}

func helpText() []string {
	return []string{
		"CONSOLE VERBS:",
		"  escalate             raise the stakes",
		"  investigate          push the Project forward",
		"  contain              cool things down through channels",
		"  leak                 go to the press",
		"  stand-down           pull everything back",
		"  decrypt DOC-XXXX     break a cipher           (1 intel)",
		"  analyze DOC-XXXX     grade source reliability (1 intel)",
		"  trace ADVISOR        sweep their channels     (1 intel, 2/day)",
		"  consult ADVISOR      ask for a read           (first free)",
		"  interrogate ADVISOR  formal questioning       (2 intel, 2/day)",
		"  ls / clear / whoami / help",
	}
}

// Run starts the program. It blocks until the operator powers down.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
