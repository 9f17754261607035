package tui

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/atotto/clipboard"
	"github.com/evanschultz/kanlite/internal/app"
	"github.com/evanschultz/kanlite/internal/domain"
	"github.com/evanschultz/kanlite/internal/i18n"
)

// columnCount is the number of board columns, one per status.
const columnCount = 3

// boardTop is the first screen row of the column boxes: header line plus spacer.
const boardTop = 2

// inputMode identifies the active full-screen interaction.
type inputMode int

const (
	modeBoard inputMode = iota
	modeTaskInfo
)

// Model renders one board and turns user input into board intents.
type Model struct {
	board   *app.Board
	catalog i18n.Catalog

	keys       keyMap
	dialogKeys dialogKeyMap
	help       help.Model

	width  int
	height int
	ready  bool

	mode           inputMode
	selectedColumn int
	selectedTask   int
	scroll         [columnCount]int
	dialog         taskDialog
	infoTaskID     int
	status         string
	initCmd        tea.Cmd

	md             *markdownRenderer
	onIntent       IntentHook
	writeClipboard ClipboardWriter
}

// clipboardMsg reports the outcome of one clipboard write.
type clipboardMsg struct {
	title string
	err   error
}

// NewModel constructs a model over board. The board must outlive the model.
func NewModel(board *app.Board, opts ...Option) Model {
	h := help.New()
	h.ShowAll = false
	m := Model{
		board:          board,
		catalog:        i18n.MustLoad(i18n.DefaultLocale),
		help:           h,
		md:             &markdownRenderer{},
		writeClipboard: clipboard.WriteAll,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&m)
		}
	}
	m.keys = newKeyMap(m.catalog)
	m.dialogKeys = newDialogKeyMap(m.catalog)
	m.status = m.catalog.T("status_ready")
	m.dialog = newTaskDialog(m.catalog)
	if board.DialogVisible() {
		m.initCmd = m.dialog.setFocus(focusTitle)
	}
	return m
}

// Init starts the title cursor when the board opens with the dialog already visible.
func (m Model) Init() tea.Cmd {
	return m.initCmd
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		m.width = msg.Width
		m.height = msg.Height
		m.clampSelections()
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			m.status = m.catalog.T("status_copy_failed") + ": " + msg.err.Error()
			return m, nil
		}
		m.status = m.catalog.T("status_copied") + ": " + truncate(msg.title, 40)
		return m, nil

	case tea.KeyPressMsg:
		switch {
		case m.board.DialogVisible():
			return m.handleDialogKey(msg)
		case m.mode == modeTaskInfo:
			return m.handleTaskInfoKey(msg)
		case m.help.ShowAll:
			return m.handleHelpKey(msg)
		}
		return m.handleBoardKey(msg)

	case tea.MouseWheelMsg:
		return m.handleMouseWheel(msg)

	case tea.MouseClickMsg:
		return m.handleMouseClick(msg)

	default:
		if m.board.DialogVisible() {
			var cmd tea.Cmd
			m.dialog.title, cmd = m.dialog.title.Update(msg)
			return m, cmd
		}
		return m, nil
	}
}

// dispatch applies one intent to the board. It is the only place the model mutates board state.
func (m *Model) dispatch(in app.Intent) tea.Cmd {
	res := m.board.Apply(in)
	if m.onIntent != nil {
		m.onIntent(in, res)
	}
	if !res.Changed {
		return nil
	}
	switch in := in.(type) {
	case app.MoveIntent:
		m.focusTaskByID(res.Task.ID)
		m.status = fmt.Sprintf("%s: %s", m.catalog.T(moveLabelKey(in.Status)), truncate(res.Task.Title, 40))
	case app.CreateIntent:
		m.mode = modeBoard
		m.focusTaskByID(res.Task.ID)
		m.status = m.catalog.T("status_created") + ": " + truncate(res.Task.Title, 40)
	case app.OpenDialogIntent:
		m.dialog = newTaskDialog(m.catalog)
		return m.dialog.setFocus(focusTitle)
	case app.CloseDialogIntent:
		m.dialog.title.Blur()
		m.status = m.catalog.T("status_ready")
	}
	return nil
}

// handleDialogKey routes keys to the creation dialog while it is visible.
func (m Model) handleDialogKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.dialogKeys.forceQuit) {
		return m, tea.Quit
	}
	dialog, in, cmd := m.dialog.handleKey(msg, m.dialogKeys)
	m.dialog = dialog
	if in == nil {
		return m, cmd
	}
	dispatchCmd := m.dispatch(in)
	return m, tea.Batch(cmd, dispatchCmd)
}

func (m Model) handleTaskInfoKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	task, ok := m.board.TaskByID(m.infoTaskID)
	if !ok {
		m.mode = modeBoard
		return m, nil
	}
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.closeOverlay), key.Matches(msg, m.keys.taskInfo), key.Matches(msg, m.keys.quit):
		m.mode = modeBoard
		return m, nil
	case key.Matches(msg, m.keys.moveTaskBack):
		cmd := m.moveTask(task, false)
		return m, cmd
	case key.Matches(msg, m.keys.moveTaskForward):
		cmd := m.moveTask(task, true)
		return m, cmd
	case key.Matches(msg, m.keys.copyTitle):
		return m, m.copyTitleCmd(task)
	}
	return m, nil
}

func (m Model) handleHelpKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.toggleHelp), key.Matches(msg, m.keys.closeOverlay):
		m.help.ShowAll = false
	}
	return m, nil
}

func (m Model) handleBoardKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.toggleHelp):
		m.help.ShowAll = true
		return m, nil
	case key.Matches(msg, m.keys.moveLeft):
		m.selectedColumn = wrapIndex(m.selectedColumn, -1, columnCount)
		m.clampSelections()
		return m, nil
	case key.Matches(msg, m.keys.moveRight):
		m.selectedColumn = wrapIndex(m.selectedColumn, 1, columnCount)
		m.clampSelections()
		return m, nil
	case key.Matches(msg, m.keys.moveUp):
		m.selectedTask--
		m.clampSelections()
		return m, nil
	case key.Matches(msg, m.keys.moveDown):
		m.selectedTask++
		m.clampSelections()
		return m, nil
	case key.Matches(msg, m.keys.addTask):
		cmd := m.dispatch(app.OpenDialogIntent{})
		return m, cmd
	}

	task, ok := m.selectedTaskInCurrentColumn()
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.taskInfo):
		m.mode = modeTaskInfo
		m.infoTaskID = task.ID
		return m, nil
	case key.Matches(msg, m.keys.moveTaskBack):
		cmd := m.moveTask(task, false)
		return m, cmd
	case key.Matches(msg, m.keys.moveTaskForward):
		cmd := m.moveTask(task, true)
		return m, cmd
	case key.Matches(msg, m.keys.copyTitle):
		return m, m.copyTitleCmd(task)
	}
	return m, nil
}

// moveTask fires the card control in the requested direction, when the card shows one.
func (m *Model) moveTask(task domain.Task, forward bool) tea.Cmd {
	control, ok := controlFor(task, forward)
	if !ok {
		m.status = m.catalog.T("status_no_move")
		return nil
	}
	return m.dispatch(control.intent(task))
}

func (m Model) copyTitleCmd(task domain.Task) tea.Cmd {
	write := m.writeClipboard
	title := task.Title
	return func() tea.Msg {
		return clipboardMsg{title: title, err: write(title)}
	}
}

// handleMouseWheel moves the selection in the column under the pointer.
func (m Model) handleMouseWheel(msg tea.MouseWheelMsg) (tea.Model, tea.Cmd) {
	if m.board.DialogVisible() || m.mode != modeBoard || m.help.ShowAll {
		return m, nil
	}
	if col, ok := m.columnAt(msg.X); ok {
		m.selectedColumn = col
	}
	switch msg.Button {
	case tea.MouseWheelUp:
		m.selectedTask--
	case tea.MouseWheelDown:
		m.selectedTask++
	}
	m.clampSelections()
	return m, nil
}

// handleMouseClick maps a click onto the header button or a card, using the same geometry View renders.
func (m Model) handleMouseClick(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseLeft {
		return m, nil
	}
	if m.board.DialogVisible() || m.mode != modeBoard || m.help.ShowAll {
		return m, nil
	}
	if msg.Y == 0 {
		start, end := m.addButtonSpan()
		if msg.X >= start && msg.X < end {
			cmd := m.dispatch(app.OpenDialogIntent{})
			return m, cmd
		}
		return m, nil
	}

	col, ok := m.columnAt(msg.X)
	if !ok {
		return m, nil
	}
	m.selectedColumn = col
	geo := m.layout()
	rel := msg.Y - boardTop - 1 - columnHeaderLines
	if rel < 0 || rel >= geo.innerHeight-columnHeaderLines {
		m.clampSelections()
		return m, nil
	}
	slot, line := rel/cardStride, rel%cardStride
	tasks := m.columnTasks(col)
	idx := m.scroll[col] + slot
	if line >= cardHeight || idx >= len(tasks) {
		m.clampSelections()
		return m, nil
	}
	m.selectedTask = idx
	m.clampSelections()
	if line != cardHeight-1 {
		return m, nil
	}
	contentX := col*geo.stride + 2
	forward := msg.X-contentX >= geo.cardWidth/2
	if _, ok := controlFor(tasks[idx], forward); !ok {
		return m, nil
	}
	cmd := m.moveTask(tasks[idx], forward)
	return m, cmd
}

// columnHeaderLines is the column title line plus its spacer.
const columnHeaderLines = 2

// boardLayout holds the measured board geometry shared by View and mouse hit testing.
type boardLayout struct {
	colWidth    int
	stride      int
	cardWidth   int
	innerHeight int
	slots       int
}

func (m Model) columnStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("239")).
		Padding(0, 1).
		MarginRight(1)
}

func (m Model) layout() boardLayout {
	colWidth := 26
	if m.width > 0 {
		// per-column overhead: border (2) + margin-right (1)
		colWidth = max(22, (m.width-columnCount*3)/columnCount)
	}
	outerHeight := 14
	if m.height > 0 {
		// header (2) + status line (1) + help line (2)
		outerHeight = max(10, m.height-5)
	}
	innerHeight := outerHeight - 2
	stride := lipgloss.Width(m.columnStyle().Width(colWidth).Render(""))
	return boardLayout{
		colWidth:    colWidth,
		stride:      stride,
		cardWidth:   max(8, colWidth-4),
		innerHeight: innerHeight,
		slots:       max(1, (innerHeight-columnHeaderLines+1)/cardStride),
	}
}

func (m Model) columnAt(x int) (int, bool) {
	geo := m.layout()
	if x < 0 || geo.stride <= 0 {
		return 0, false
	}
	col := x / geo.stride
	if col >= columnCount {
		return 0, false
	}
	return col, true
}

func (m Model) addButtonLabel() string {
	return "[+ " + m.catalog.T("cd_add_task") + "]"
}

// addButtonSpan returns the half-open column range of the header add button.
func (m Model) addButtonSpan() (int, int) {
	start := lipgloss.Width(m.catalog.T("app_title")) + 2
	return start, start + lipgloss.Width(m.addButtonLabel())
}

func (m Model) columnTasks(col int) []domain.Task {
	return app.Partition(m.board.Tasks()).For(domain.Statuses[clamp(col, 0, columnCount-1)])
}

func (m Model) selectedTaskInCurrentColumn() (domain.Task, bool) {
	tasks := m.columnTasks(m.selectedColumn)
	if len(tasks) == 0 {
		return domain.Task{}, false
	}
	return tasks[clamp(m.selectedTask, 0, len(tasks)-1)], true
}

// focusTaskByID selects the card for taskID wherever it currently lives.
func (m *Model) focusTaskByID(taskID int) {
	cols := app.Partition(m.board.Tasks())
	for col, status := range domain.Statuses {
		for idx, task := range cols.For(status) {
			if task.ID == taskID {
				m.selectedColumn = col
				m.selectedTask = idx
				m.clampSelections()
				return
			}
		}
	}
}

// clampSelections clamps selections and keeps the selected card scrolled into view.
func (m *Model) clampSelections() {
	m.selectedColumn = clamp(m.selectedColumn, 0, columnCount-1)
	slots := m.layout().slots
	for col := range columnCount {
		total := len(m.columnTasks(col))
		m.scroll[col] = clamp(m.scroll[col], 0, max(0, total-slots))
	}
	tasks := m.columnTasks(m.selectedColumn)
	if len(tasks) == 0 {
		m.selectedTask = 0
		return
	}
	m.selectedTask = clamp(m.selectedTask, 0, len(tasks)-1)
	offset := m.scroll[m.selectedColumn]
	switch {
	case m.selectedTask < offset:
		offset = m.selectedTask
	case m.selectedTask >= offset+slots:
		offset = m.selectedTask - slots + 1
	}
	m.scroll[m.selectedColumn] = offset
}

// View renders the board in the alternate screen with mouse reporting on.
func (m Model) View() tea.View {
	v := tea.NewView(m.render())
	v.MouseMode = tea.MouseModeCellMotion
	v.AltScreen = true
	return v
}

// render returns the full screen: header, columns, status, help line, and the active overlay.
func (m Model) render() string {
	if !m.ready {
		return m.catalog.T("status_loading")
	}
	accent := lipgloss.Color("62")
	muted := lipgloss.Color("241")
	dim := lipgloss.Color("239")
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	statusStyle := lipgloss.NewStyle().Foreground(dim)
	buttonStyle := lipgloss.NewStyle().Bold(true).Foreground(accent)

	header := titleStyle.Render(m.catalog.T("app_title")) + "  " + buttonStyle.Render(m.addButtonLabel())
	header += statusStyle.Render(fmt.Sprintf("  %d %s", m.board.Len(), m.catalog.T("header_task_count")))

	body := m.renderColumns(accent, muted, dim)
	sections := []string{header, "", body, statusStyle.Render(truncate(m.status, max(1, m.width)))}
	content := strings.Join(sections, "\n")

	helpBubble := m.help
	helpBubble.ShowAll = false
	helpBubble.SetWidth(max(0, m.width-2))
	helpLine := lipgloss.NewStyle().
		Foreground(muted).
		BorderTop(true).
		BorderForeground(dim).
		Padding(0, 1).
		Width(max(0, m.width)).
		Render(helpBubble.View(m.keys))
	if m.height > 0 {
		content = fitLines(content, max(0, m.height-lipgloss.Height(helpLine)))
	}
	fullContent := content + "\n" + helpLine

	if overlay := m.renderOverlay(accent, muted, dim); overlay != "" {
		overlayHeight := lipgloss.Height(fullContent)
		if m.height > 0 {
			overlayHeight = m.height
		}
		fullContent = overlayOnContent(fullContent, overlay, max(1, m.width), max(1, overlayHeight))
	}
	return fullContent
}

// renderColumns renders the three status columns side by side.
func (m Model) renderColumns(accent, muted, dim color.Color) string {
	geo := m.layout()
	cols := app.Partition(m.board.Tasks())
	colTitle := lipgloss.NewStyle().Bold(true).Foreground(accent)
	emptyStyle := lipgloss.NewStyle().Foreground(muted).Italic(true)
	base := m.columnStyle().Width(geo.colWidth)

	views := make([]string, 0, columnCount)
	for col, status := range domain.Statuses {
		tasks := cols.For(status)
		offset := clamp(m.scroll[col], 0, max(0, len(tasks)-1))
		end := min(len(tasks), offset+geo.slots)

		title := fmt.Sprintf("%s (%d)", m.catalog.T(columnTitleKey(status)), len(tasks))
		if offset > 0 {
			title += " ↑"
		}
		if end < len(tasks) {
			title += " ↓"
		}
		lines := []string{colTitle.Render(truncate(title, geo.cardWidth)), ""}
		if len(tasks) == 0 {
			lines = append(lines, emptyStyle.Render(m.catalog.T("column_empty")))
		}
		for idx := offset; idx < end; idx++ {
			selected := col == m.selectedColumn && idx == m.selectedTask
			lines = append(lines, renderCard(tasks[idx], m.catalog, geo.cardWidth, selected, accent))
			if idx < end-1 {
				lines = append(lines, "")
			}
		}

		style := base
		if col == m.selectedColumn {
			style = style.BorderForeground(accent)
		} else {
			style = style.BorderForeground(dim)
		}
		views = append(views, style.Render(fitLines(strings.Join(lines, "\n"), geo.innerHeight)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}

// renderOverlay returns the topmost overlay, if any: dialog, then task info, then help.
func (m Model) renderOverlay(accent, muted, dim color.Color) string {
	switch {
	case m.board.DialogVisible():
		return m.dialog.view(m.catalog, m.dialogKeys, accent, muted, m.width-8)
	case m.mode == modeTaskInfo:
		return m.renderTaskInfo(accent, muted)
	case m.help.ShowAll:
		return m.renderHelpOverlay(accent, muted, dim)
	}
	return ""
}

func (m Model) renderTaskInfo(accent, muted color.Color) string {
	task, ok := m.board.TaskByID(m.infoTaskID)
	if !ok {
		return ""
	}
	width := clamp(m.width-8, 36, 72)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(accent)
	hintStyle := lipgloss.NewStyle().Foreground(muted)
	body := m.md.render(taskMarkdown(task, m.catalog), width-4)
	lines := []string{
		titleStyle.Render(m.catalog.T("task_info_title")) + " " + categorySwatch(task.Category),
		body,
		hintStyle.Render(hintLine(m.keys.moveTaskBack, m.keys.moveTaskForward, m.keys.copyTitle, m.keys.closeOverlay)),
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1).
		Width(width).
		Render(strings.Join(lines, "\n"))
}

func (m Model) renderHelpOverlay(accent, muted, dim color.Color) string {
	width := clamp(m.width-8, 36, 96)
	h := m.help
	h.ShowAll = true
	h.SetWidth(width - 4)
	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(accent).Render(m.catalog.T("help_title")),
		"",
		h.View(m.keys),
		"",
		lipgloss.NewStyle().Foreground(muted).Render(m.catalog.T("help_mouse") + " • " + m.addButtonLabel()),
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(dim).
		Padding(0, 1).
		Width(width).
		Render(strings.Join(lines, "\n"))
}
