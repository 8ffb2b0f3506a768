// Package tui implements the auction price predictor terminal interface: the
// player entry form, the async operation coordinator, and all rendering.
package tui

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/auctionlens/auctionlens/internal/api"
	"github.com/auctionlens/auctionlens/internal/form"
	"github.com/auctionlens/auctionlens/internal/logger"
	"github.com/auctionlens/auctionlens/internal/state"
)

const inputWidth = 22

// App is the root model. It owns the form state, the notice board, the modal
// stack, and the lifecycle of every service call. Each operation kind keeps
// its own state and sequence number; a response whose sequence is no longer
// current is dropped, so only the latest request of a kind can change state.
type App struct {
	ctx context.Context
	svc Service

	form     *form.State
	inputs   map[string]textinput.Model
	focus    string
	nav      *Navigator
	notices  *Notices
	dialog   *Dialog
	csvModal *CSVModal
	spinner  Spinner

	statsState   opState
	predictState opState
	demoState    opState
	importState  opState

	statsSeq   int
	predictSeq int
	demoSeq    int
	importSeq  int

	errors     form.Result
	stats      *api.Stats
	prediction *api.Prediction
	showResult bool

	awaitingPrefixKey bool
	dataDir           string // draft persistence, empty disables
	width             int
	height            int
}

// NewApp builds the app around a prediction service.
func NewApp(ctx context.Context, svc Service) *App {
	a := &App{
		ctx:      ctx,
		svc:      svc,
		form:     form.NewState(),
		inputs:   make(map[string]textinput.Model),
		nav:      NewNavigator(),
		notices:  NewNotices(),
		dialog:   NewDialog(),
		csvModal: NewCSVModal(),
		spinner:  NewDefaultSpinner(),
		errors:   form.Result{},
	}

	for _, f := range form.Fields() {
		if f.Kind == form.KindEnum {
			continue
		}
		input := textinput.New()
		input.Prompt = ""
		input.Placeholder = placeholderFor(f)
		input.SetStyles(inputStyles())
		input.SetWidth(inputWidth)
		input.SetValue(a.form.Get(f.Name))
		a.inputs[f.Name] = input
	}

	return a
}

func placeholderFor(f form.Field) string {
	switch {
	case f.Kind == form.KindText:
		return "optional"
	case f.HasMax:
		return fmt.Sprintf("%g-%g", f.Min, f.Max)
	default:
		return "0"
	}
}

// Init fetches dataset statistics and focuses the first field.
func (a *App) Init() tea.Cmd {
	a.statsSeq++
	a.statsState = opInFlight

	return tea.Batch(
		fetchStatsCmd(a.ctx, a.svc, a.statsSeq),
		a.focusField(form.Fields()[0].Name),
		a.spinner.Tick(),
	)
}

// Update routes messages to the operation handlers and the focused component.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case NoticeExpireMsg:
		a.notices.Update(msg)
		return a, nil

	case revealResultMsg:
		if a.predictState == opSucceeded {
			a.showResult = true
		}
		return a, nil

	case statsFetchedMsg:
		return a, a.handleStats(msg)

	case predictDoneMsg:
		return a, a.handlePredict(msg)

	case demoDoneMsg:
		return a, a.handleDemo(msg)

	case importDoneMsg:
		return a, a.handleImport(msg)

	case CSVSubmitMsg:
		return a, a.handleCSVSubmit(msg.Path)

	case tea.KeyPressMsg:
		return a, a.handleKey(msg)

	case tea.PasteMsg:
		return a, a.handlePaste(msg)
	}

	// Spinner frames and other component ticks.
	var cmds []tea.Cmd
	if cmd := a.spinner.Update(msg); cmd != nil && a.anyInFlight() {
		cmds = append(cmds, cmd)
	}
	if input, ok := a.inputs[a.focus]; ok {
		updated, cmd := input.Update(msg)
		a.inputs[a.focus] = updated
		cmds = append(cmds, cmd)
	}
	return a, tea.Batch(cmds...)
}

func (a *App) anyInFlight() bool {
	return a.statsState == opInFlight ||
		a.predictState == opInFlight ||
		a.demoState == opInFlight ||
		a.importState == opInFlight
}

// handleKey dispatches key input. Modals get first refusal; the prefix key
// state is resolved next; then the global bindings; anything left reaches the
// focused field.
func (a *App) handleKey(key tea.KeyPressMsg) tea.Cmd {
	if key.String() == "ctrl+c" {
		a.saveDraft()
		return tea.Quit
	}
	if a.dialog.IsVisible() {
		return a.dialog.Update(key)
	}
	if a.csvModal.IsVisible() {
		return a.csvModal.Update(key)
	}

	if a.awaitingPrefixKey {
		a.awaitingPrefixKey = false
		switch key.String() {
		case "1":
			a.nav.Set(form.SectionBatting)
		case "2":
			a.nav.Set(form.SectionBowling)
		case "3":
			a.nav.Set(form.SectionFielding)
		case "r":
			a.resetForm()
		}
		return a.ensureFocusVisible()
	}

	switch key.String() {
	case "ctrl+x":
		a.awaitingPrefixKey = true
		return nil
	case "enter":
		return a.submitPredict()
	case "ctrl+g":
		return a.startDemo()
	case "ctrl+u":
		return a.csvModal.Show()
	case "ctrl+n":
		a.nav.Next()
		return a.ensureFocusVisible()
	case "tab":
		return a.moveFocus(1)
	case "shift+tab":
		return a.moveFocus(-1)
	}

	if f, ok := form.Lookup(a.focus); ok && f.Kind == form.KindEnum {
		switch key.String() {
		case "left":
			a.cycleEnum(f, -1)
			return nil
		case "right":
			a.cycleEnum(f, 1)
			return nil
		}
		return nil
	}

	return a.editFocused(key)
}

// handlePaste routes pasted text through the same guard as keystrokes, so a
// pasted value can never put the widget and the form state out of sync.
func (a *App) handlePaste(msg tea.PasteMsg) tea.Cmd {
	if a.dialog.IsVisible() {
		return nil
	}
	if a.csvModal.IsVisible() {
		return a.csvModal.Update(msg)
	}
	if f, ok := form.Lookup(a.focus); ok && f.Kind == form.KindEnum {
		return nil
	}
	return a.editFocused(msg)
}

// editFocused forwards a keystroke to the focused text input, then runs the
// result through the input guard. A rejected change reverts the input to the
// last accepted value, so the widget never displays what the state refused.
func (a *App) editFocused(msg tea.Msg) tea.Cmd {
	input, ok := a.inputs[a.focus]
	if !ok {
		return nil
	}

	updated, cmd := input.Update(msg)
	if !a.form.Apply(a.focus, updated.Value()) {
		updated.SetValue(a.form.Get(a.focus))
		updated.CursorEnd()
	}
	a.inputs[a.focus] = updated
	return cmd
}

func (a *App) cycleEnum(f form.Field, delta int) {
	current := a.form.Get(f.Name)
	idx := 0
	for i, opt := range f.Options {
		if opt == current {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(f.Options)) % len(f.Options)
	a.form.Apply(f.Name, f.Options[idx])
}

// visibleFields lists the focusable fields: the basic section plus whichever
// stat section is active.
func (a *App) visibleFields() []string {
	names := form.SectionFields(form.SectionBasic)
	return append(names, form.SectionFields(a.nav.Active())...)
}

func (a *App) moveFocus(delta int) tea.Cmd {
	fields := a.visibleFields()
	idx := 0
	for i, name := range fields {
		if name == a.focus {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(fields)) % len(fields)
	return a.focusField(fields[idx])
}

func (a *App) focusField(name string) tea.Cmd {
	if input, ok := a.inputs[a.focus]; ok {
		input.Blur()
		a.inputs[a.focus] = input
	}
	a.focus = name
	if input, ok := a.inputs[name]; ok {
		cmd := input.Focus()
		a.inputs[name] = input
		return cmd
	}
	return nil
}

// ensureFocusVisible pulls focus back on screen after a section switch.
func (a *App) ensureFocusVisible() tea.Cmd {
	for _, name := range a.visibleFields() {
		if name == a.focus {
			return nil
		}
	}
	return a.focusField(a.visibleFields()[0])
}

// refreshInputs re-seeds every text input from form state after a wholesale
// replace or reset.
func (a *App) refreshInputs() {
	for name, input := range a.inputs {
		input.SetValue(a.form.Get(name))
		input.CursorEnd()
		a.inputs[name] = input
	}
}

func (a *App) resetForm() {
	a.form.Reset()
	a.refreshInputs()
	a.errors = form.Result{}
	a.prediction = nil
	a.showResult = false
	a.notices.Clear()
	if a.dataDir != "" {
		if err := state.Clear(a.dataDir); err != nil {
			logger.Warn("clearing draft: %v", err)
		}
	}
}

// restoreDraft loads a previously saved form snapshot, if any.
func (a *App) restoreDraft() {
	if a.dataDir == "" {
		return
	}
	draft := state.Load(a.dataDir)
	if len(draft.Values) > 0 {
		a.form.Replace(draft.Values)
		a.refreshInputs()
	}
	if draft.ActiveSection >= 0 && draft.ActiveSection < len(statSections) {
		a.nav.Set(statSections[draft.ActiveSection])
	}
}

func (a *App) saveDraft() {
	if a.dataDir == "" {
		return
	}
	draft := &state.Draft{
		ActiveSection: a.nav.Index(),
		Values:        a.form.Snapshot(),
	}
	if err := state.Save(a.dataDir, draft); err != nil {
		logger.Warn("saving draft: %v", err)
	}
}

// submitPredict validates the form and, when clean, issues a prediction
// request. Validation failure blocks with a dialog and never reaches the
// network.
func (a *App) submitPredict() tea.Cmd {
	if a.predictState == opInFlight {
		return nil
	}

	a.errors = form.Validate(a.form)
	if !a.errors.OK() {
		a.dialog.Show(
			"Missing Fields",
			fmt.Sprintf("Please fill in all required fields (%d missing)", len(a.errors)),
			nil,
		)
		return nil
	}

	a.predictSeq++
	a.predictState = opInFlight
	a.prediction = nil
	a.showResult = false
	return tea.Batch(
		predictCmd(a.ctx, a.svc, a.predictSeq, a.form.Snapshot()),
		a.spinner.Tick(),
	)
}

func (a *App) startDemo() tea.Cmd {
	if a.demoState == opInFlight {
		return nil
	}
	a.demoSeq++
	a.demoState = opInFlight
	return tea.Batch(
		generateDemoCmd(a.ctx, a.svc, a.demoSeq),
		a.spinner.Tick(),
	)
}

// handleCSVSubmit checks the chosen path before any I/O happens. A name that
// does not end in ".csv" (case-sensitive, matching the service's own check)
// fails in the same update, and the prompt is reset so the same file can be
// chosen again on the next attempt.
func (a *App) handleCSVSubmit(path string) tea.Cmd {
	a.csvModal.Reset()
	if a.importState == opInFlight {
		return nil
	}
	if path == "" {
		return nil
	}
	if !strings.HasSuffix(path, ".csv") {
		return a.notices.Show(NoticeError, "Please upload a CSV file", NoticeTTLLong)
	}
	a.importSeq++
	a.importState = opInFlight
	return tea.Batch(
		importCSVCmd(a.ctx, a.svc, a.importSeq, path),
		a.spinner.Tick(),
	)
}

// handleStats records dataset statistics. A failure only costs the header
// its numbers, so it is logged and otherwise swallowed: no notice, no dialog.
func (a *App) handleStats(msg statsFetchedMsg) tea.Cmd {
	if msg.seq != a.statsSeq {
		return nil
	}
	if msg.err != nil {
		a.statsState = opFailed
		logger.Error("stats fetch failed: %v", msg.err)
		return nil
	}
	a.statsState = opSucceeded
	a.stats = msg.stats
	return nil
}

func (a *App) handlePredict(msg predictDoneMsg) tea.Cmd {
	if msg.seq != a.predictSeq {
		return nil
	}
	if msg.err != nil {
		a.predictState = opFailed
		logger.Error("prediction failed: %v", msg.err)
		a.dialog.Show("Prediction Failed", errorText(msg.err), nil)
		return nil
	}
	a.predictState = opSucceeded
	a.prediction = msg.prediction
	return revealResultCmd()
}

func (a *App) handleDemo(msg demoDoneMsg) tea.Cmd {
	if msg.seq != a.demoSeq {
		return nil
	}
	if msg.err != nil {
		a.demoState = opFailed
		logger.Error("demo generation failed: %v", msg.err)
		return a.notices.Show(NoticeError, errorText(msg.err), NoticeTTLLong)
	}
	a.demoState = opSucceeded
	a.form.Replace(msg.record)
	a.refreshInputs()
	a.errors = form.Result{}
	return a.notices.Show(NoticeSuccess, "Demo data generated!", NoticeTTLShort)
}

func (a *App) handleImport(msg importDoneMsg) tea.Cmd {
	if msg.seq != a.importSeq {
		return nil
	}
	if msg.err != nil {
		a.importState = opFailed
		logger.Error("csv import failed: %v", msg.err)
		return a.notices.Show(NoticeError, errorText(msg.err), NoticeTTLLong)
	}
	a.importState = opSucceeded
	a.form.Replace(msg.record)
	a.refreshInputs()
	a.errors = form.Result{}

	text := "CSV data loaded!"
	if msg.totalRows > 1 {
		text = fmt.Sprintf("Loaded first player from CSV (%d rows found)", msg.totalRows)
	}
	return a.notices.Show(NoticeSuccess, text, NoticeTTLLong)
}

// crores renders a price held in lakhs as crores with two decimals.
func crores(lakhs float64) string {
	return fmt.Sprintf("%.2f", lakhs/100)
}

// View renders the whole screen.
func (a *App) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if a.width == 0 || a.height == 0 {
		view.Content = lipgloss.NewLayer("")
		return view
	}

	content := a.renderMain()
	if a.csvModal.IsVisible() {
		content = a.csvModal.View()
	}
	if a.dialog.IsVisible() {
		content = a.dialog.View()
	}

	placed := lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, content)

	canvas := uv.NewScreenBuffer(a.width, a.height)
	uv.NewStyledString(placed).Draw(canvas, uv.Rectangle{
		Min: uv.Position{X: 0, Y: 0},
		Max: uv.Position{X: a.width, Y: a.height},
	})

	view.Content = lipgloss.NewLayer(canvas.Render())
	return view
}

func (a *App) renderMain() string {
	sections := []string{
		a.renderHeader(),
		"",
		a.renderTabs(),
		a.renderForm(),
	}

	if notices := a.notices.View(); notices != "" {
		sections = append(sections, strings.TrimRight(notices, "\n"))
	}
	if a.showResult && a.prediction != nil {
		sections = append(sections, a.renderResult())
	}
	if a.anyInFlight() {
		sections = append(sections, a.spinner.View()+" "+styleSubtitle.Render(a.busyText()))
	}

	sections = append(sections, "", a.renderHints())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) busyText() string {
	switch {
	case a.predictState == opInFlight:
		return "Predicting price..."
	case a.demoState == opInFlight:
		return "Generating demo data..."
	case a.importState == opInFlight:
		return "Uploading CSV..."
	default:
		return "Loading dataset stats..."
	}
}

func (a *App) renderHeader() string {
	title := styleTitle.Render("AuctionLens") + " " + styleSubtitle.Render("IPL auction price predictor")
	if a.stats == nil {
		return title
	}
	s := a.stats
	bar := styleStatsBar.Render("Players ") + styleStatValue.Render(fmt.Sprintf("%d", s.TotalPlayers)) +
		styleStatsBar.Render("  Avg ") + styleStatValue.Render("₹"+crores(s.AvgPrice)+" Cr") +
		styleStatsBar.Render("  Max ") + styleStatValue.Render("₹"+crores(s.MaxPrice)+" Cr") +
		styleStatsBar.Render("  Min ") + styleStatValue.Render("₹"+crores(s.MinPrice)+" Cr") +
		styleStatsBar.Render("  Avg Age ") + styleStatValue.Render(fmt.Sprintf("%.1f", s.AvgAge))
	return lipgloss.JoinVertical(lipgloss.Left, title, bar)
}

func (a *App) renderTabs() string {
	var tabs []string
	for _, s := range statSections {
		style := styleTab
		if s == a.nav.Active() {
			style = styleTabActive
		}
		tabs = append(tabs, style.Render(s.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (a *App) renderForm() string {
	basic := a.renderSection(form.SectionBasic)
	stat := a.renderSection(a.nav.Active())
	return lipgloss.JoinHorizontal(lipgloss.Top, basic, " ", stat)
}

// renderSection renders one section panel: title plus a field row per field.
func (a *App) renderSection(s form.Section) string {
	rows := []string{styleSectionTitle.Render(s.String()), ""}
	for _, name := range form.SectionFields(s) {
		rows = append(rows, a.renderField(name))
	}
	return stylePanel.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a *App) renderField(name string) string {
	f, _ := form.Lookup(name)
	focused := name == a.focus

	labelStyle := styleLabel
	if focused {
		labelStyle = styleLabelFocused
	}
	label := labelStyle.Render(f.Label)
	if f.Required {
		label += styleRequiredMark.Render("*")
	}
	label = lipgloss.NewStyle().Width(inputWidth).Render(label)

	var value string
	switch f.Kind {
	case form.KindEnum:
		arrow := styleEnumArrow
		if focused {
			arrow = styleEnumArrowFocused
		}
		value = arrow.Render("◀ ") + styleEnumValue.Render(a.form.Get(name)) + arrow.Render(" ▶")
	default:
		input := a.inputs[name]
		value = input.View()
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, label, value)
	if reason, bad := a.errors[name]; bad {
		row += " " + styleFieldError.Render(reason)
	}
	return row
}

func (a *App) renderResult() string {
	p := a.prediction

	barWidth := 24
	fill := int(p.Confidence / 100 * float64(barWidth))
	if fill < 0 {
		fill = 0
	}
	if fill > barWidth {
		fill = barWidth
	}
	bar := styleConfidenceFill.Render(strings.Repeat("█", fill)) +
		styleConfidenceTrack.Render(strings.Repeat("░", barWidth-fill))

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		styleSectionTitle.Render("Predicted Auction Price"),
		"",
		stylePrice.Render("₹ "+crores(p.PredictedPrice)+" Cr"),
		styleSubtitle.Render(fmt.Sprintf("Range: ₹ %s Cr - ₹ %s Cr", crores(p.PriceRange.Min), crores(p.PriceRange.Max))),
		"",
		styleLabel.Render(fmt.Sprintf("Confidence %.1f%%", p.Confidence)),
		bar,
	)
	return stylePanel.Render(content)
}

func (a *App) renderHints() string {
	if a.awaitingPrefixKey {
		return renderHintBar("1/2/3", "section", "r", "reset form", "esc", "cancel")
	}
	return renderHintBar(
		"tab", "next field",
		"enter", "predict",
		"ctrl+g", "demo data",
		"ctrl+u", "upload csv",
		"ctrl+x", "more",
		"ctrl+c", "quit",
	)
}

// Run starts the program on the ambient terminal. A non-empty dataDir
// enables draft persistence across runs.
func Run(ctx context.Context, svc Service, dataDir string) error {
	app := NewApp(ctx, svc)
	app.dataDir = dataDir
	app.restoreDraft()

	program := tea.NewProgram(app, tea.WithContext(ctx))
	_, err := program.Run()
	return err
}
