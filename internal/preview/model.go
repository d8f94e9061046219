package preview

import (
	_ "embed"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/provislabs/provis/internal/dataset"
	"github.com/provislabs/provis/masthead"
)

//go:embed guide.md
var guideSource string

// headerBox stands in for the homepage masthead: brand and tagline in a
// bordered, padded box. Its rendered height moves with padding and with
// text wrapping at narrow widths, which gives the synchronizer layout
// changes worth measuring.
type headerBox struct {
	siteName string
	tagline  string
	width    int
	padding  int
	style    lipgloss.Style
}

var _ masthead.Element = (*headerBox)(nil)

func (h *headerBox) render() string {
	return h.style.
		Padding(h.padding, 2).
		Width(max(h.width, 24)).
		Render(h.siteName + "\n" + h.tagline)
}

// BoxHeight reports the rendered border-box height in terminal rows.
func (h *headerBox) BoxHeight() int {
	return lipgloss.Height(h.render())
}

// termDoc is the one-page document of a preview session. The header box is
// the only element it can locate, and only while attached.
type termDoc struct {
	header  *headerBox
	present bool
}

var _ masthead.Document = (*termDoc)(nil)

func (d *termDoc) Find(selector string) (masthead.Element, bool) {
	if !d.present || selector != masthead.Selector {
		return nil, false
	}
	return d.header, true
}

type view int

const (
	viewFoods view = iota
	viewRankings
	viewGuide
	viewCount
)

func (v view) title() string {
	switch v {
	case viewFoods:
		return "Input data"
	case viewRankings:
		return "Rankings"
	default:
		return "Guide"
	}
}

type styles struct {
	header    lipgloss.Style
	title     lipgloss.Style
	tableHead lipgloss.Style
	status    lipgloss.Style
}

func newStyles() styles {
	return styles{
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("24")).
			Border(lipgloss.NormalBorder()),
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginTop(1),
		tableHead: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("245")),
		status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}

// Model is a preview session: the cleaned dataset's views rendered under
// the same header-height plumbing the generated site ships to browsers.
// The status bar tracks the published variable and its revision live.
type Model struct {
	table *dataset.Table

	doc  *termDoc
	env  *termEnv
	root *masthead.StyleRoot

	view   view
	width  int
	height int
	sized  bool
	guide  string

	styles styles
}

var _ tea.Model = (*Model)(nil)

// NewModel assembles the session and binds the synchronizer to it. Nothing
// is published until the first window size arrives.
func NewModel(table *dataset.Table, siteName string) (*Model, error) {
	st := newStyles()
	doc := &termDoc{
		header: &headerBox{
			siteName: siteName,
			tagline:  "Compare protein sources by calories, cost, and weight",
			padding:  1,
			style:    st.header,
		},
		present: true,
	}

	root := masthead.NewStyleRoot()
	env := newTermEnv()
	masthead.New(doc, masthead.VarPublisher{Root: root, Name: masthead.HeightVar}).Bind(env)

	guide, err := renderGuide()
	if err != nil {
		return nil, fmt.Errorf("rendering guide: %w", err)
	}

	return &Model{
		table:  table,
		doc:    doc,
		env:    env,
		root:   root,
		guide:  guide,
		styles: st,
	}, nil
}

func renderGuide() (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(72),
	)
	if err != nil {
		return "", err
	}
	return r.Render(guideSource)
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.doc.header.width = msg.Width
		if !m.sized {
			// first size report doubles as document-ready
			m.sized = true
			m.env.signalReady()
		} else {
			m.env.signalResize()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab":
		m.view = (m.view + 1) % viewCount

	case "h":
		// Detaching or restoring the header does not republish by itself;
		// the stale value stands until the next trigger fires.
		m.doc.present = !m.doc.present

	case "r":
		m.env.signalResize()

	case "+", "=":
		m.doc.header.padding++
		m.env.signalSizeChange(masthead.Selector)

	case "-":
		if m.doc.header.padding > 0 {
			m.doc.header.padding--
			m.env.signalSizeChange(masthead.Selector)
		}
	}
	return m, nil
}

func (m *Model) View() string {
	if !m.sized {
		return "Measuring terminal..."
	}

	var sections []string
	if m.doc.present {
		sections = append(sections, m.doc.header.render())
	}

	switch m.view {
	case viewFoods:
		sections = append(sections, m.foodsView())
	case viewRankings:
		sections = append(sections, m.rankingsView())
	case viewGuide:
		sections = append(sections, m.guide)
	}

	sections = append(sections, m.statusView())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) foodsView() string {
	rows := []string{m.styles.tableHead.Render(fmt.Sprintf(
		"%-20s %-18s %10s %8s %11s", "Food", "Category", "Calories", "Cost", "Weight (g)"))}
	for _, f := range m.table.Foods {
		rows = append(rows, fmt.Sprintf("%-20s %-18s %10.2f %8s %11.2f",
			truncate(f.Name, 20), truncate(f.Category, 18),
			f.CaloriesFor10g, fmt.Sprintf("$%.2f", f.CostFor10g), f.GramsFor10g))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.title.Render(m.view.title()+" (per 10g protein)"),
		strings.Join(rows, "\n"),
	)
}

func (m *Model) rankingsView() string {
	const show = 8
	var b strings.Builder

	b.WriteString(m.styles.title.Render("Best cost-efficient proteins") + "\n")
	for i, f := range m.table.RankByCost(show) {
		b.WriteString(fmt.Sprintf("%2d. %-20s $%.2f\n", i+1, truncate(f.Name, 20), f.CostFor10g))
	}

	b.WriteString(m.styles.title.Render("Low-calorie protein picks") + "\n")
	for i, f := range m.table.RankByCalories(show) {
		b.WriteString(fmt.Sprintf("%2d. %-20s %.2f kcal\n", i+1, truncate(f.Name, 20), f.CaloriesFor10g))
	}
	return b.String()
}

func (m *Model) statusView() string {
	value, ok := m.root.Var(masthead.HeightVar)
	if !ok {
		value = "unset"
	}
	headerState := "shown"
	if !m.doc.present {
		headerState = "removed"
	}

	line := fmt.Sprintf("%s: %s · rev %d · header %s · view %s",
		masthead.HeightVar, value, m.root.Revision(), headerState, m.view.title())
	keys := "[tab] view  [h] header  [+/-] padding  [r] resize  [q] quit"
	return m.styles.status.Render(line + "\n" + keys)
}

// truncate shortens s to n cells, ellipsis included. Rune-based so
// multibyte names never get cut mid-character.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
