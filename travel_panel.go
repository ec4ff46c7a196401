package main

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/tradeshow-assistant/pkg/editor"
	"github.com/borgmon/tradeshow-assistant/pkg/logger"
	"github.com/borgmon/tradeshow-assistant/pkg/models"
	"github.com/borgmon/tradeshow-assistant/pkg/schedule"
	"github.com/borgmon/tradeshow-assistant/pkg/ui/components"
)

type TravelPanel struct {
	pw        *PlannerWindow
	data      []models.Travel
	list      *components.RecordList[models.Travel]
	container *fyne.Container
}

func newTravelPanel(pw *PlannerWindow) *TravelPanel {
	tp := &TravelPanel{
		pw:   pw,
		data: pw.store.Travel(),
	}

	tp.list, tp.container = components.NewRecordList(tp.data, components.RecordListConfig[models.Travel]{
		Render:    travelLine,
		EmptyText: "No bookings yet",
		OnAdd: func() {
			showTravelDialog(pw.window, editor.NewTravel(), pw.store)
		},
		OnEdit: func(idx int) {
			showTravelDialog(pw.window, editor.EditTravel(tp.data[idx]), pw.store)
		},
		OnRemove: func(idx int) {
			id := tp.data[idx].ID
			if err := pw.store.DeleteTravel(id); err != nil {
				logger.Warnw("failed to delete travel", "id", id, "error", err)
			}
		},
	})

	return tp
}

func (tp *TravelPanel) card() fyne.CanvasObject {
	return widget.NewCard("Travel", "Store flight, hotel, and ground confirmations.", tp.container)
}

func (tp *TravelPanel) refresh() {
	tp.data = tp.pw.store.Travel()
	tp.list.SetData(tp.data)
}

// showTravelDialog edits ed's draft and commits it to target on save
func showTravelDialog(parent fyne.Window, ed *editor.TravelEditor, target editor.TravelTarget) {
	draft := ed.Draft()

	options := make([]string, 0, len(models.TravelTypes()))
	for _, t := range models.TravelTypes() {
		options = append(options, travelTypeLabel(t))
	}
	typeSelect := widget.NewSelect(options, nil)
	typeSelect.SetSelected(travelTypeLabel(draft.Type))

	labelEntry := widget.NewEntry()
	labelEntry.SetText(draft.Label)
	labelEntry.SetPlaceHolder("ATL → BOS (AC 1234)")
	labelEntry.Validator = editor.NotBlank("Label")

	confirmationEntry := widget.NewEntry()
	confirmationEntry.SetText(draft.Confirmation)

	startEntry := optionalDateTimeEntry(optionalTime(draft.Start))
	endEntry := optionalDateTimeEntry(optionalTime(draft.End))

	detailsEntry := multiLineEntry(draft.Details)

	items := []*widget.FormItem{
		widget.NewFormItem("Type", typeSelect),
		widget.NewFormItem("Label", labelEntry),
		widget.NewFormItem("Confirmation", confirmationEntry),
		widget.NewFormItem("Start", startEntry),
		widget.NewFormItem("End", endEntry),
		widget.NewFormItem("Details", detailsEntry),
	}

	title := "Edit travel"
	if ed.IsNew() {
		title = "Add travel"
	}

	d := dialog.NewForm(title, "Save", "Cancel", items, func(confirmed bool) {
		if !confirmed {
			return
		}

		for _, t := range models.TravelTypes() {
			if travelTypeLabel(t) == typeSelect.Selected {
				draft.Type = t
			}
		}
		draft.Label = labelEntry.Text
		draft.Confirmation = confirmationEntry.Text
		draft.Details = detailsEntry.Text
		draft.Start, _ = parseOptionalTime(startEntry.Text)
		draft.End, _ = parseOptionalTime(endEntry.Text)

		if err := ed.Save(target); err != nil {
			logger.Warnw("failed to save travel", "id", draft.ID, "error", err)
			dialog.ShowError(err, parent)
			return
		}
		logger.Debugw("travel saved", "id", draft.ID, "type", draft.Type)
	}, parent)
	d.Resize(fyne.NewSize(520, 520))
	d.Show()
}

func optionalDateTimeEntry(text string) *widget.Entry {
	e := widget.NewEntry()
	e.SetPlaceHolder(schedule.InputLayout)
	e.SetText(text)
	e.Validator = func(s string) error {
		if _, err := parseOptionalTime(s); err != nil {
			return errors.New("use YYYY-MM-DD HH:MM or leave blank")
		}
		return nil
	}
	return e
}
