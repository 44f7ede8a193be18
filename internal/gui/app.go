package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"
	"go.uber.org/zap"

	"codeberg.org/snonux/cardstudy/internal"
	"codeberg.org/snonux/cardstudy/internal/card"
	"codeberg.org/snonux/cardstudy/internal/session"
)

// ExportFunc writes the cards of kind to an Anki file and returns its path
type ExportFunc func(kind card.Kind) (string, error)

// Application represents the study window
type Application struct {
	// Fyne components
	app    fyne.App
	window fyne.Window

	// UI elements
	categoryRadio *widget.RadioGroup
	counterLabel  *widget.Label
	verbLabel     *widget.Label
	primaryText   *widget.RichText
	secondaryText *widget.RichText

	// Action buttons
	revealButton  *ttwidget.Button
	nextButton    *ttwidget.Button
	shuffleButton *ttwidget.Button
	exportButton  *ttwidget.Button

	// State management
	ctrl  *session.Controller
	state session.State

	// Configuration
	config *Config
	logger *zap.Logger
}

// Config holds GUI application configuration
type Config struct {
	Title    string
	Category card.Kind
	Export   ExportFunc // nil hides the export button
}

// DefaultConfig returns default GUI configuration
func DefaultConfig() *Config {
	return &Config{
		Title:    "Speaking Flashcards",
		Category: card.KindSentence,
	}
}

// New creates the study window on a new fyne app
func New(ctrl *session.Controller, config *Config, logger *zap.Logger) *Application {
	myApp := app.NewWithID("org.codeberg.snonux.cardstudy")
	return NewWithApp(myApp, ctrl, config, logger)
}

// NewWithApp creates the study window on an existing fyne app
func NewWithApp(fyneApp fyne.App, ctrl *session.Controller, config *Config, logger *zap.Logger) *Application {
	if config == nil {
		config = DefaultConfig()
	} else {
		// Fill in missing fields with defaults
		defaults := DefaultConfig()
		if config.Title == "" {
			config.Title = defaults.Title
		}
		if config.Category == "" {
			config.Category = defaults.Category
		}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	a := &Application{
		app:    fyneApp,
		ctrl:   ctrl,
		config: config,
		logger: logger,
	}
	a.state = ctrl.Start(config.Category)

	a.setupUI()
	a.refresh()

	return a
}

// setupUI creates the main user interface
func (a *Application) setupUI() {
	a.window = a.app.NewWindow(fmt.Sprintf("%s v%s", a.config.Title, internal.Version))
	a.window.Resize(fyne.NewSize(720, 480))

	labels := make([]string, len(card.Kinds))
	for i, kind := range card.Kinds {
		labels[i] = kind.Label()
	}
	a.categoryRadio = widget.NewRadioGroup(labels, nil)
	a.categoryRadio.Horizontal = true
	a.categoryRadio.Required = true
	a.categoryRadio.SetSelected(a.state.Category.Label())
	a.categoryRadio.OnChanged = a.onCategoryChanged

	a.counterLabel = widget.NewLabel("0/0")
	a.counterLabel.TextStyle = fyne.TextStyle{Italic: true}
	a.verbLabel = widget.NewLabel("")
	a.verbLabel.TextStyle = fyne.TextStyle{Bold: true}

	a.primaryText = widget.NewRichText()
	a.primaryText.Wrapping = fyne.TextWrapWord
	a.secondaryText = widget.NewRichText()
	a.secondaryText.Wrapping = fyne.TextWrapWord

	// Tooltips are set after the tooltip layer is created
	a.revealButton = ttwidget.NewButtonWithIcon("Show/Hide English", theme.VisibilityIcon(), a.onReveal)
	a.nextButton = ttwidget.NewButtonWithIcon("Next Card", theme.NavigateNextIcon(), a.onNext)
	a.shuffleButton = ttwidget.NewButtonWithIcon("Shuffle Cards", theme.ViewRefreshIcon(), a.onShuffle)
	a.exportButton = ttwidget.NewButtonWithIcon("", theme.UploadIcon(), a.onExport)
	helpButton := ttwidget.NewButtonWithIcon("", theme.HelpIcon(), a.onShowHotkeys)
	if a.config.Export == nil {
		a.exportButton.Hide()
	}

	header := container.NewBorder(nil, nil, nil,
		container.NewHBox(a.exportButton, helpButton),
		a.categoryRadio,
	)

	cardSection := container.NewVBox(
		container.NewHBox(a.verbLabel, layout.NewSpacer(), a.counterLabel),
		widget.NewSeparator(),
		a.primaryText,
		a.secondaryText,
	)

	buttons := container.NewHBox(
		layout.NewSpacer(),
		a.revealButton,
		a.nextButton,
		a.shuffleButton,
		layout.NewSpacer(),
	)

	content := container.NewBorder(
		container.NewVBox(header, widget.NewSeparator()),
		buttons,
		nil, nil,
		container.NewScroll(cardSection),
	)

	// Add the tooltip layer to enable tooltips
	a.window.SetContent(fynetooltip.AddWindowToolTipLayer(content, a.window.Canvas()))

	a.revealButton.SetToolTip("Show or hide the English side (Space)")
	a.nextButton.SetToolTip("Next card (→)")
	a.shuffleButton.SetToolTip("Reshuffle this category (s)")
	a.exportButton.SetToolTip("Export this category to Anki (x)")
	helpButton.SetToolTip("Show hotkeys (h)")

	a.setupKeyboardShortcuts()
}

// Run shows the window and blocks until it is closed
func (a *Application) Run() {
	a.window.ShowAndRun()
}

// State returns the current session state
func (a *Application) State() session.State {
	return a.state
}

// apply runs one transition and redraws
func (a *Application) apply(action session.Action) {
	a.state = a.ctrl.Dispatch(a.state, action)
	a.logger.Debug("study action",
		zap.Stringer("action", action),
		zap.String("category", string(a.state.Category)),
		zap.Int("index", a.state.Index),
		zap.Bool("revealed", a.state.Revealed))
	a.refresh()
}

// refresh redraws every widget from the current state
func (a *Application) refresh() {
	v := a.ctrl.View(a.state)

	a.counterLabel.SetText(v.Counter)
	a.verbLabel.SetText(v.VerbGroup)

	a.primaryText.Segments = richSegments(v.Primary, theme.SizeNameSubHeadingText)
	a.primaryText.Refresh()

	if v.Revealed {
		a.secondaryText.Segments = richSegments(v.VisibleSecondary(), theme.SizeNameText)
		a.secondaryText.Show()
	} else {
		a.secondaryText.Segments = nil
		a.secondaryText.Hide()
	}
	a.secondaryText.Refresh()

	if v.Empty {
		a.revealButton.Disable()
		a.nextButton.Disable()
	} else {
		a.revealButton.Enable()
		a.nextButton.Enable()
	}
}

func (a *Application) onCategoryChanged(label string) {
	for _, kind := range card.Kinds {
		if kind.Label() == label && kind != a.state.Category {
			a.apply(session.CategoryAction(kind))
			return
		}
	}
}

func (a *Application) onReveal() {
	a.apply(session.ActionReveal)
	a.window.Canvas().Unfocus()
}

func (a *Application) onNext() {
	a.apply(session.ActionNext)
	a.window.Canvas().Unfocus()
}

func (a *Application) onShuffle() {
	a.apply(session.ActionShuffle)
	a.window.Canvas().Unfocus()
}

func (a *Application) onExport() {
	if a.config.Export == nil {
		return
	}
	path, err := a.config.Export(a.state.Category)
	if err != nil {
		a.logger.Warn("export failed", zap.Error(err))
		dialog.ShowError(err, a.window)
		return
	}
	a.logger.Info("exported deck", zap.String("path", path))
	dialog.ShowInformation("Anki export", "Saved "+path, a.window)
}
