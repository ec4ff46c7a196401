package main

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/tradeshow-assistant/pkg/store"
)

type PlannerWindow struct {
	window  fyne.Window
	app     fyne.App
	planner *Planner
	store   *store.PlannerStore

	schedule  *SchedulePanel
	travel    *TravelPanel
	assistant *AssistantCard
}

func NewPlannerWindow(p *Planner, active time.Time) *PlannerWindow {
	pw := &PlannerWindow{
		app:     p.app,
		planner: p,
		store:   p.store,
	}

	pw.window = p.app.NewWindow("Tradeshow Meetings Assistant")
	pw.schedule = newSchedulePanel(pw, active, p.config.DefaultView)
	pw.travel = newTravelPanel(pw)
	pw.assistant = newAssistantCard(pw)
	pw.buildUI()

	pw.store.OnChange(func(slice string) {
		fyne.Do(func() { pw.refresh(slice) })
	})

	return pw
}

func (pw *PlannerWindow) buildUI() {
	title := widget.NewLabelWithStyle("Tradeshow Meetings Assistant", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	importButton := widget.NewButtonWithIcon("Import", theme.UploadIcon(), pw.importJSON)
	exportButton := widget.NewButtonWithIcon("Export", theme.DownloadIcon(), pw.exportJSON)
	importICSButton := widget.NewButtonWithIcon("Import .ics", theme.FolderOpenIcon(), pw.importICS)
	exportICSButton := widget.NewButtonWithIcon("Export .ics", theme.DocumentSaveIcon(), pw.exportICS)

	header := container.NewBorder(
		nil,
		nil,
		container.NewHBox(widget.NewIcon(theme.CalendarIcon()), title),
		container.NewHBox(importButton, exportButton, importICSButton, exportICSButton),
	)

	left := container.NewVScroll(container.NewVBox(
		pw.schedule.card(),
		pw.assistant.card(),
		pw.travel.card(),
	))
	right := container.NewVScroll(pw.schedule.details)

	split := container.NewHSplit(left, right)
	split.Offset = 0.4

	tabs := container.NewAppTabs(
		container.NewTabItemWithIcon("Planner", theme.CalendarIcon(), split),
		container.NewTabItemWithIcon("Settings", theme.SettingsIcon(), pw.buildSettingsTab()),
	)

	content := container.NewBorder(
		container.NewPadded(header),
		nil,
		nil,
		nil,
		tabs,
	)

	pw.window.SetContent(content)
	pw.window.Resize(fyne.NewSize(1200, 800))
	pw.window.CenterOnScreen()

	// Keep running in the tray when the window is closed
	if _, ok := pw.app.(desktop.App); ok {
		pw.window.SetCloseIntercept(func() {
			pw.window.Hide()
		})
	}
}

func (pw *PlannerWindow) refresh(slice string) {
	switch slice {
	case store.SliceMeetings:
		pw.schedule.refresh()
	case store.SliceTravel:
		pw.travel.refresh()
	case store.SliceAssistant:
		pw.assistant.refresh()
	}
}

func (pw *PlannerWindow) Show() {
	pw.window.Show()
	pw.window.RequestFocus()
}
