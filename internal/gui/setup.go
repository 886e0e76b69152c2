package gui

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"jordanella.com/autoscape-go/internal/profile"
)

// AppID identifies the application to fyne's preferences store
const AppID = "com.jordanella.autoscape-go"

var (
	// ErrSetupCancelled is returned when the window closes without Start
	ErrSetupCancelled = errors.New("setup window closed before starting")

	// ErrIncompleteChoices is returned by Choices when a radio group has no selection
	ErrIncompleteChoices = errors.New("screen layout and ore must both be selected")
)

// SetupForm holds the widgets that collect the operator's choices
type SetupForm struct {
	Aspect    *widget.RadioGroup
	Target    *widget.RadioGroup
	AutoEmpty *widget.Check
	Start     *widget.Button

	aspects map[string]profile.AspectRatio
	targets map[string]profile.Target
	onStart func(profile.Choices)
}

// NewSetupForm builds the form from the catalog's labels. onStart is
// called with the selection when Start is tapped.
func NewSetupForm(catalog *profile.Catalog, onStart func(profile.Choices)) (*SetupForm, error) {
	f := &SetupForm{
		aspects: make(map[string]profile.AspectRatio),
		targets: make(map[string]profile.Target),
		onStart: onStart,
	}

	var aspectLabels []string
	for _, a := range profile.AspectRatios() {
		p, err := catalog.Aspect(a)
		if err != nil {
			return nil, err
		}
		f.aspects[p.Label] = a
		aspectLabels = append(aspectLabels, p.Label)
	}

	var targetLabels []string
	for _, t := range profile.Targets() {
		p, err := catalog.Target(t)
		if err != nil {
			return nil, err
		}
		f.targets[p.Label] = t
		targetLabels = append(targetLabels, p.Label)
	}

	f.Aspect = widget.NewRadioGroup(aspectLabels, nil)
	f.Aspect.Required = true
	f.Aspect.SetSelected(aspectLabels[0])

	f.Target = widget.NewRadioGroup(targetLabels, nil)
	f.Target.Required = true
	f.Target.SetSelected(targetLabels[0])

	f.AutoEmpty = widget.NewCheck("Empty the last slot when the inventory is full", nil)

	f.Start = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), f.submit)
	f.Start.Importance = widget.HighImportance

	return f, nil
}

// Choices returns the current selection
func (f *SetupForm) Choices() (profile.Choices, error) {
	aspect, ok := f.aspects[f.Aspect.Selected]
	if !ok {
		return profile.Choices{}, ErrIncompleteChoices
	}
	target, ok := f.targets[f.Target.Selected]
	if !ok {
		return profile.Choices{}, ErrIncompleteChoices
	}

	return profile.Choices{
		Aspect:    aspect,
		Target:    target,
		AutoEmpty: f.AutoEmpty.Checked,
	}, nil
}

func (f *SetupForm) submit() {
	choices, err := f.Choices()
	if err != nil || f.onStart == nil {
		return
	}
	f.onStart(choices)
}

// Content lays the form out in a single column
func (f *SetupForm) Content() fyne.CanvasObject {
	return container.NewPadded(container.NewVBox(
		Heading("AutoScape"),
		Subheading("Screen layout"),
		f.Aspect,
		Subheading("Ore"),
		f.Target,
		widget.NewSeparator(),
		f.AutoEmpty,
		Caption("Grant screen recording and accessibility access before starting."),
		f.Start,
	))
}

// RunSetup shows the setup window and blocks until the operator starts
// or closes it. It must be called from the main goroutine.
func RunSetup(catalog *profile.Catalog) (profile.Choices, error) {
	a := app.NewWithID(AppID)
	a.Settings().SetTheme(&Theme{})

	w := a.NewWindow("AutoScape")
	w.Resize(SetupWindowSize)
	w.SetFixedSize(true)

	var chosen *profile.Choices
	form, err := NewSetupForm(catalog, func(c profile.Choices) {
		chosen = &c
		w.Close()
	})
	if err != nil {
		return profile.Choices{}, fmt.Errorf("failed to build setup form: %w", err)
	}

	w.SetContent(form.Content())
	w.SetMaster()
	w.ShowAndRun()

	if chosen == nil {
		return profile.Choices{}, ErrSetupCancelled
	}
	return *chosen, nil
}
