package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// Buffer is one board being edited: its committed history plus the
// in-flight gesture state.
type Buffer struct {
	history  *History
	tool     ToolState
	filename string
}

type model struct {
	width  int
	height int

	// boardRect is where the rendered board sits in terminal cells; pointer
	// events are mapped through it into board-pixel space.
	boardRect Rect

	buffers            []Buffer
	currentBufferIndex int

	// preview overrides the committed position while a drag is in flight.
	preview *Position

	mode        Mode
	fromStartup bool

	cursorTile Tile

	help       bool
	helpScroll int

	filename          string
	fileList          []string
	selectedFileIndex int
	fileOp            FileOperation

	confirmAction ConfirmAction
	startingSetup bool

	errorMessage   string
	successMessage string

	config *Config
}

func initialModel() model {
	return model{
		mode: ModeStartup,
		boardRect: Rect{
			X: boardLeft,
			Y: boardTop,
			W: 8 * tileCellWidth,
			H: 8 * tileCellHeight,
		},
		cursorTile: Tile{X: 4, Y: 0},
		config:     loadConfig(),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		m.errorMessage = ""
		m.successMessage = ""

		if m.help {
			return m.handleHelpKeys(msg)
		}

		switch m.mode {
		case ModeStartup:
			return m.handleStartupKeys(msg)
		case ModeAddWhite:
			return m.handleAddPieceKeys(msg, White)
		case ModeAddBlack:
			return m.handleAddPieceKeys(msg, Black)
		case ModeFileInput:
			return m.handleFileInputKeys(msg)
		case ModeConfirm:
			return m.handleConfirmKeys(msg)
		default:
			return m.handleNormalKeys(msg)
		}
	}
	return m, nil
}

// applyOutcome routes a gesture outcome into the buffer: commits go to the
// history, previews replace the displayed position, rollbacks drop it.
func (m *model) applyOutcome(out Outcome) {
	buf := m.getCurrentBuffer()
	if buf == nil {
		return
	}
	switch out.Kind {
	case OutcomeCommit:
		buf.history.Commit(out.Position)
		m.preview = nil
	case OutcomePreview:
		p := out.Position
		m.preview = &p
	case OutcomeRollback:
		m.preview = nil
	}
}

// displayPosition is what the board renders: the drag preview when one is
// active, the committed position otherwise.
func (m *model) displayPosition() Position {
	if m.preview != nil {
		return *m.preview
	}
	buf := m.getCurrentBuffer()
	if buf == nil {
		return Position{}
	}
	return buf.history.Current()
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != ModeNormal || m.help {
		return m, nil
	}
	buf := m.getCurrentBuffer()
	if buf == nil {
		return m, nil
	}

	at := ToBoardCoord(m.boardRect, ScreenCoord{X: float64(msg.X), Y: float64(msg.Y)})
	pos := buf.history.Current()

	switch msg.Type {
	case tea.MouseLeft:
		var out Outcome
		if buf.tool.dragging() {
			buf.tool, out = continueDrag(buf.tool, at)
		} else {
			m.errorMessage = ""
			m.successMessage = ""
			buf.tool, out = startDrag(pos, buf.tool, at)
		}
		m.applyOutcome(out)
	case tea.MouseMotion:
		var out Outcome
		buf.tool, out = hover(pos, buf.tool, at)
		m.applyOutcome(out)
	case tea.MouseRelease:
		var out Outcome
		buf.tool, out = stopOrClick(pos, buf.tool, at)
		m.applyOutcome(out)
	}
	return m, nil
}

func (m model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "?", "q":
		m.help = false
		m.helpScroll = 0
	case "j", "down":
		if m.helpScroll < len(helpLines)-1 {
			m.helpScroll++
		}
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	}
	return m, nil
}

func (m model) handleStartupKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "n":
		pos := NewPosition()
		if m.config.StartingSetup {
			pos = StartingPosition()
		}
		m.addNewBuffer(pos, "")
		m.mode = ModeNormal
	case "e":
		m.addNewBuffer(NewPosition(), "")
		m.mode = ModeNormal
	case "o":
		m.fromStartup = true
		m.beginFileOperation(FileOpOpen)
	case "?":
		m.help = true
	}
	return m, nil
}

func (m model) handleAddPieceKeys(msg tea.KeyMsg, side Side) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "esc" {
		m.mode = ModeNormal
		return m, nil
	}
	if len(key) != 1 {
		return m, nil
	}
	kind, ok := kindFromLetter(key[0])
	if !ok {
		return m, nil
	}
	buf := m.getCurrentBuffer()
	if buf != nil {
		// Without a selection the piece goes on the cursor tile.
		if buf.tool.Selection == nil {
			buf.tool.Selection = &Selection{Tile: m.cursorTile, Highlight: HighlightBoth}
		}
		var out Outcome
		buf.tool, out = addPiece(buf.history.Current(), buf.tool, side, kind)
		m.applyOutcome(out)
	}
	m.mode = ModeNormal
	return m, nil
}

func (m model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	buf := m.getCurrentBuffer()
	key := msg.String()

	switch key {
	case "ctrl+c":
		return m, tea.Quit
	case "q":
		if m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmQuit
			return m, nil
		}
		return m, tea.Quit

	case "?":
		m.help = true
		m.helpScroll = 0
		return m, nil

	case "esc":
		if buf != nil {
			buf.tool = ToolState{}
		}
		m.preview = nil
		return m, nil

	case "h", "left", "H", "shift+left",
		"l", "right", "L", "shift+right",
		"k", "up", "K", "shift+up",
		"j", "down", "J", "shift+down":
		m.handleNavigation(key, m.getMoveSpeed(key))
		return m, nil

	case "enter", " ":
		m.clickTile(m.cursorTile)
		return m, nil

	case "d", "backspace", "delete":
		if buf != nil {
			var out Outcome
			buf.tool, out = deleteSelected(buf.history.Current(), buf.tool)
			m.applyOutcome(out)
		}
		return m, nil

	case "u":
		if buf != nil {
			buf.history.Undo()
			buf.tool = ToolState{}
			m.preview = nil
		}
		return m, nil
	case "U":
		if buf != nil {
			buf.history.Redo()
			buf.tool = ToolState{}
			m.preview = nil
		}
		return m, nil

	case "w":
		m.mode = ModeAddWhite
		return m, nil
	case "b":
		m.mode = ModeAddBlack
		return m, nil

	case "+", "=":
		if buf != nil {
			pos := buf.history.Current()
			pos.MoveNumber++
			buf.history.Commit(pos)
		}
		return m, nil
	case "-":
		if buf != nil {
			pos := buf.history.Current()
			if pos.MoveNumber > 0 {
				pos.MoveNumber--
				buf.history.Commit(pos)
			}
		}
		return m, nil

	case "c":
		if buf != nil {
			text := PrintPosition(buf.history.Current())
			if err := clipboard.WriteAll(text); err != nil {
				m.errorMessage = fmt.Sprintf("clipboard: %v", err)
			} else {
				m.successMessage = "position copied to clipboard"
			}
		}
		return m, nil
	case "v":
		m.pasteFromClipboard()
		return m, nil

	case "s":
		m.beginFileOperation(FileOpSave)
		return m, nil
	case "o":
		m.beginFileOperation(FileOpOpen)
		return m, nil
	case "S":
		m.beginFileOperation(FileOpSavePNG)
		return m, nil
	case "D":
		m.beginFileOperation(FileOpSavePDF)
		return m, nil

	case "n":
		m.startingSetup = true
		if m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmNewBoard
		} else {
			m.replaceBoard()
		}
		return m, nil
	case "i":
		m.startingSetup = false
		if m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmNewBoard
		} else {
			m.replaceBoard()
		}
		return m, nil
	case "N":
		pos := NewPosition()
		if m.config.StartingSetup {
			pos = StartingPosition()
		}
		m.addNewBuffer(pos, "")
		return m, nil

	case "{":
		if len(m.buffers) > 1 {
			m.currentBufferIndex = (m.currentBufferIndex - 1 + len(m.buffers)) % len(m.buffers)
			m.preview = nil
		}
		return m, nil
	case "}":
		if len(m.buffers) > 1 {
			m.currentBufferIndex = (m.currentBufferIndex + 1) % len(m.buffers)
			m.preview = nil
		}
		return m, nil
	case "x":
		if m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmCloseBuffer
		} else {
			m.closeCurrentBuffer()
		}
		return m, nil
	}
	return m, nil
}

func (m *model) pasteFromClipboard() {
	buf := m.getCurrentBuffer()
	if buf == nil {
		return
	}
	text, err := readClipboardText()
	if err != nil {
		m.errorMessage = fmt.Sprintf("clipboard: %v", err)
		return
	}
	pos, err := ParsePosition(cleanClipboardText(text))
	if err != nil {
		m.errorMessage = fmt.Sprintf("paste: %v", err)
		return
	}
	pos.MoveNumber = buf.history.Current().MoveNumber
	buf.history.Commit(pos)
	buf.tool = ToolState{}
	m.preview = nil
	m.successMessage = "position pasted"
}

func (m *model) replaceBoard() {
	pos := NewPosition()
	if m.startingSetup {
		pos = StartingPosition()
	}
	m.resetBuffer(pos, "")
	m.mode = ModeNormal
}

func (m *model) closeCurrentBuffer() {
	if len(m.buffers) <= 1 {
		m.buffers = nil
		m.preview = nil
		m.mode = ModeStartup
		return
	}
	m.buffers = append(m.buffers[:m.currentBufferIndex], m.buffers[m.currentBufferIndex+1:]...)
	if m.currentBufferIndex >= len(m.buffers) {
		m.currentBufferIndex = len(m.buffers) - 1
	}
	m.preview = nil
	m.mode = ModeNormal
}

func (m *model) beginFileOperation(op FileOperation) {
	m.fileOp = op
	m.mode = ModeFileInput
	m.filename = ""
	if buf := m.getCurrentBuffer(); buf != nil && op != FileOpOpen {
		m.filename = strings.TrimSuffix(buf.filename, positionFileExt)
	}
	if op == FileOpOpen {
		m.scanPositionFiles()
		m.selectedFileIndex = 0
		if len(m.fileList) > 0 {
			m.filename = m.fileList[0]
		}
	}
}

// scanPositionFiles lists the saved positions in the configured directory.
func (m *model) scanPositionFiles() {
	dir := m.config.SaveDirectory
	if dir == "" {
		dir = "."
	}
	m.fileList = nil
	entries, err := os.ReadDir(dir)
	if err != nil {
		m.errorMessage = fmt.Sprintf("read directory: %v", err)
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), positionFileExt) {
			m.fileList = append(m.fileList, entry.Name())
		}
	}
	sort.Strings(m.fileList)
}

func (m model) handleFileInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filename = ""
		if m.fromStartup {
			m.fromStartup = false
			m.mode = ModeStartup
		} else {
			m.mode = ModeNormal
		}
		return m, nil

	case "enter":
		return m.confirmFileOperation()

	case "up":
		if m.fileOp == FileOpOpen && m.selectedFileIndex > 0 {
			m.selectedFileIndex--
			m.filename = m.fileList[m.selectedFileIndex]
		}
		return m, nil
	case "down":
		if m.fileOp == FileOpOpen && m.selectedFileIndex < len(m.fileList)-1 {
			m.selectedFileIndex++
			m.filename = m.fileList[m.selectedFileIndex]
		}
		return m, nil

	case "backspace":
		if m.fileOp != FileOpOpen && len(m.filename) > 0 {
			m.filename = m.filename[:len(m.filename)-1]
		}
		return m, nil
	}

	if m.fileOp != FileOpOpen && msg.Type == tea.KeyRunes {
		m.filename += string(msg.Runes)
	}
	return m, nil
}

func (m model) confirmFileOperation() (tea.Model, tea.Cmd) {
	if m.filename == "" {
		m.errorMessage = "filename is empty"
		return m, nil
	}

	if m.fileOp == FileOpOpen {
		m.openPositionFile(m.filename)
		return m, nil
	}

	path := m.config.GetSavePath(m.targetFilename())
	if m.config.Confirmations {
		if _, err := os.Stat(path); err == nil {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmOverwriteFile
			return m, nil
		}
	}
	m.writeCurrentFile()
	return m, nil
}

// targetFilename is the entered name with the extension the pending
// operation requires.
func (m *model) targetFilename() string {
	name := m.filename
	var ext string
	switch m.fileOp {
	case FileOpSavePNG:
		ext = ".png"
	case FileOpSavePDF:
		ext = ".pdf"
	default:
		ext = positionFileExt
	}
	if !strings.HasSuffix(name, ext) {
		name += ext
	}
	return name
}

func (m *model) writeCurrentFile() {
	buf := m.getCurrentBuffer()
	if buf == nil {
		m.mode = ModeNormal
		return
	}
	name := m.targetFilename()
	path := m.config.GetSavePath(name)
	pos := buf.history.Current()

	var err error
	switch m.fileOp {
	case FileOpSave:
		err = SavePositionFile(path, pos)
	case FileOpSavePNG:
		err = ExportToPNG(path, pos)
	case FileOpSavePDF:
		err = ExportToPDF(path, pos)
	}
	if err != nil {
		m.errorMessage = fmt.Sprintf("save: %v", err)
		m.mode = ModeNormal
		return
	}
	if m.fileOp == FileOpSave {
		buf.filename = name
	}
	m.successMessage = fmt.Sprintf("saved %s", filepath.Base(path))
	m.filename = ""
	m.mode = ModeNormal
}

func (m *model) openPositionFile(name string) {
	path := m.config.GetSavePath(name)
	pos, err := LoadPositionFile(path)
	if err != nil {
		m.errorMessage = fmt.Sprintf("open: %v", err)
		return
	}
	if m.getCurrentBuffer() == nil {
		m.addNewBuffer(pos, name)
	} else {
		m.resetBuffer(pos, name)
	}
	m.fromStartup = false
	m.filename = ""
	m.successMessage = fmt.Sprintf("opened %s", name)
	m.mode = ModeNormal
}

func (m model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		switch m.confirmAction {
		case ConfirmQuit:
			return m, tea.Quit
		case ConfirmNewBoard:
			m.replaceBoard()
		case ConfirmCloseBuffer:
			m.closeCurrentBuffer()
		case ConfirmOverwriteFile:
			m.writeCurrentFile()
		}
		return m, nil
	case "n", "N", "esc":
		if m.confirmAction == ConfirmOverwriteFile {
			m.mode = ModeFileInput
		} else {
			m.mode = ModeNormal
		}
		return m, nil
	}
	return m, nil
}

func (m model) View() string {
	if m.width == 0 {
		return "loading..."
	}
	if m.help {
		return m.helpView()
	}
	if m.mode == ModeStartup {
		return m.startupView()
	}
	if m.mode == ModeFileInput && m.fileOp == FileOpOpen {
		return m.fileListView()
	}

	var b strings.Builder
	b.WriteString(m.renderTitleBar())
	b.WriteByte('\n')
	b.WriteString(m.renderBoard())
	b.WriteString("\n\n")
	b.WriteString(m.renderStatusLine())
	return b.String()
}

func (m model) startupView() string {
	lines := []string{
		"",
		"  PacoSako position editor",
		"",
		"  n  new board",
		"  e  empty board",
		"  o  open a position file",
		"  ?  help",
		"  q  quit",
		"",
	}
	if m.errorMessage != "" {
		lines = append(lines, "  "+errorStyle.Render("ERROR: "+m.errorMessage))
	}
	return strings.Join(lines, "\n")
}

func (m model) fileListView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(" Open position file"))
	b.WriteString("\n\n")
	if len(m.fileList) == 0 {
		b.WriteString("  no " + positionFileExt + " files found\n")
	}
	for i, name := range m.fileList {
		if i == m.selectedFileIndex {
			b.WriteString(" > " + name + "\n")
		} else {
			b.WriteString("   " + name + "\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(m.renderStatusLine())
	return b.String()
}

func main() {
	p := tea.NewProgram(initialModel(), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
