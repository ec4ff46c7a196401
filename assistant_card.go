package main

import (
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/tradeshow-assistant/pkg/editor"
	"github.com/borgmon/tradeshow-assistant/pkg/logger"
)

// AssistantCard holds the link to the external chat assistant
type AssistantCard struct {
	pw         *PlannerWindow
	linkLabel  *widget.Label
	openButton *widget.Button
}

func newAssistantCard(pw *PlannerWindow) *AssistantCard {
	ac := &AssistantCard{
		pw:        pw,
		linkLabel: widget.NewLabel(""),
	}
	ac.linkLabel.Truncation = fyne.TextTruncateEllipsis
	ac.openButton = widget.NewButtonWithIcon("Open", theme.ComputerIcon(), ac.open)
	ac.openButton.Importance = widget.HighImportance
	ac.refresh()
	return ac
}

func (ac *AssistantCard) card() fyne.CanvasObject {
	setButton := widget.NewButtonWithIcon("Set link", theme.DocumentCreateIcon(), ac.edit)

	return widget.NewCard("Ask our GPT", "Open the show assistant in your browser.",
		container.NewVBox(ac.linkLabel, container.NewHBox(ac.openButton, setButton)))
}

func (ac *AssistantCard) refresh() {
	link := ac.pw.store.AssistantURL()
	if editor.Usable(link) {
		ac.linkLabel.SetText(link)
		ac.linkLabel.Importance = widget.MediumImportance
		ac.openButton.Enable()
	} else {
		ac.linkLabel.SetText("No link set yet")
		ac.linkLabel.Importance = widget.LowImportance
		ac.openButton.Disable()
	}
	ac.linkLabel.Refresh()
}

func (ac *AssistantCard) open() {
	link := ac.pw.store.AssistantURL()
	if !editor.Usable(link) {
		return
	}
	u, err := url.Parse(link)
	if err != nil {
		dialog.ShowError(err, ac.pw.window)
		return
	}
	if err := ac.pw.app.OpenURL(u); err != nil {
		logger.Warnw("failed to open assistant link", "url", link, "error", err)
		dialog.ShowError(err, ac.pw.window)
	}
}

func (ac *AssistantCard) edit() {
	ed := editor.NewAssistantLink(ac.pw.store.AssistantURL())

	entry := widget.NewEntry()
	entry.SetText(ed.Draft())
	entry.SetPlaceHolder("https://chat.openai.com/g/...")
	entry.Validator = editor.NotBlank("Link")

	items := []*widget.FormItem{widget.NewFormItem("Link", entry)}
	d := dialog.NewForm("Assistant link", "Save", "Cancel", items, func(confirmed bool) {
		if !confirmed {
			return
		}
		ed.Set(entry.Text)
		ed.Save(ac.pw.store)
	}, ac.pw.window)
	d.Resize(fyne.NewSize(520, 180))
	d.Show()
}
