package main

import (
	"errors"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/tradeshow-assistant/pkg/editor"
	"github.com/borgmon/tradeshow-assistant/pkg/logger"
	"github.com/borgmon/tradeshow-assistant/pkg/models"
	"github.com/borgmon/tradeshow-assistant/pkg/schedule"
	"github.com/borgmon/tradeshow-assistant/pkg/ui/components"
)

// showMeetingDialog edits ed's draft and commits it to target on save.
// Closing the dialog any other way discards the draft.
func showMeetingDialog(parent fyne.Window, ed *editor.MeetingEditor, target editor.MeetingTarget) {
	draft := ed.Draft()

	titleEntry := widget.NewEntry()
	titleEntry.SetText(draft.Title)
	titleEntry.SetPlaceHolder("Partner intro")
	titleEntry.Validator = editor.NotBlank("Title")

	locationEntry := widget.NewEntry()
	locationEntry.SetText(draft.Location)
	boothEntry := widget.NewEntry()
	boothEntry.SetText(draft.Booth)

	startEntry := dateTimeEntry(draft.Start)
	endEntry := dateTimeEntry(draft.End)

	descriptionEntry := multiLineEntry(draft.Description)
	talkingPointsEntry := multiLineEntry(draft.TalkingPoints)
	prepEntry := multiLineEntry(draft.PrepChecklist)

	var attendees *components.RecordList[models.Attendee]
	attendees, attendeesContainer := components.NewRecordList(draft.Attendees, components.RecordListConfig[models.Attendee]{
		Render:    attendeeLine,
		EmptyText: "No attendees yet",
		MinHeight: 100,
		OnAdd: func() {
			showAttendeeDialog(parent, "Add attendee", models.Attendee{}, func(a models.Attendee) {
				idx := ed.AddAttendee()
				a.ID = draft.Attendees[idx].ID
				if err := ed.UpdateAttendee(idx, a); err != nil {
					logger.Warnw("failed to add attendee", "error", err)
				}
				attendees.SetData(draft.Attendees)
			})
		},
		OnEdit: func(idx int) {
			showAttendeeDialog(parent, "Edit attendee", draft.Attendees[idx], func(a models.Attendee) {
				if err := ed.UpdateAttendee(idx, a); err != nil {
					logger.Warnw("failed to update attendee", "index", idx, "error", err)
				}
				attendees.SetData(draft.Attendees)
			})
		},
		OnRemove: func(idx int) {
			if err := ed.RemoveAttendee(idx); err != nil {
				logger.Warnw("failed to remove attendee", "index", idx, "error", err)
			}
			attendees.SetData(draft.Attendees)
		},
	})

	items := []*widget.FormItem{
		widget.NewFormItem("Title", titleEntry),
		widget.NewFormItem("Location", locationEntry),
		widget.NewFormItem("Booth", boothEntry),
		widget.NewFormItem("Start", startEntry),
		widget.NewFormItem("End", endEntry),
		widget.NewFormItem("Description", descriptionEntry),
		widget.NewFormItem("Talking points", talkingPointsEntry),
		widget.NewFormItem("Prep checklist", prepEntry),
		widget.NewFormItem("Attendees", attendeesContainer),
	}

	title, confirm := "Edit meeting", "Save changes"
	if ed.IsNew() {
		title, confirm = "Add meeting", "Save"
	}

	d := dialog.NewForm(title, confirm, "Cancel", items, func(confirmed bool) {
		if !confirmed {
			return
		}

		draft.Title = titleEntry.Text
		draft.Location = locationEntry.Text
		draft.Booth = boothEntry.Text
		draft.Description = descriptionEntry.Text
		draft.TalkingPoints = talkingPointsEntry.Text
		draft.PrepChecklist = prepEntry.Text

		// Validators already guarantee these parse
		if t, err := schedule.ParseDateTime(startEntry.Text); err == nil {
			draft.Start = t
		}
		if t, err := schedule.ParseDateTime(endEntry.Text); err == nil {
			draft.End = t
		}

		if err := ed.Save(target); err != nil {
			logger.Warnw("failed to save meeting", "id", draft.ID, "error", err)
			dialog.ShowError(err, parent)
			return
		}
		logger.Debugw("meeting saved", "id", draft.ID, "new", ed.IsNew())
	}, parent)
	d.Resize(fyne.NewSize(640, 720))
	d.Show()
}

func showAttendeeDialog(parent fyne.Window, title string, a models.Attendee, onSave func(models.Attendee)) {
	nameEntry := widget.NewEntry()
	nameEntry.SetText(a.Name)
	jobEntry := widget.NewEntry()
	jobEntry.SetText(a.Title)
	companyEntry := widget.NewEntry()
	companyEntry.SetText(a.Company)
	linkedInEntry := widget.NewEntry()
	linkedInEntry.SetText(a.LinkedIn)
	linkedInEntry.SetPlaceHolder("https://www.linkedin.com/in/...")
	photoEntry := widget.NewEntry()
	photoEntry.SetText(a.PhotoURL)
	notesEntry := multiLineEntry(a.Notes)

	items := []*widget.FormItem{
		widget.NewFormItem("Name", nameEntry),
		widget.NewFormItem("Title", jobEntry),
		widget.NewFormItem("Company", companyEntry),
		widget.NewFormItem("LinkedIn", linkedInEntry),
		widget.NewFormItem("Photo URL", photoEntry),
		widget.NewFormItem("Notes", notesEntry),
	}

	d := dialog.NewForm(title, "Done", "Cancel", items, func(confirmed bool) {
		if !confirmed {
			return
		}
		a.Name = nameEntry.Text
		a.Title = jobEntry.Text
		a.Company = companyEntry.Text
		a.LinkedIn = linkedInEntry.Text
		a.PhotoURL = photoEntry.Text
		a.Notes = notesEntry.Text
		onSave(a)
	}, parent)
	d.Resize(fyne.NewSize(480, 480))
	d.Show()
}

func dateTimeEntry(t time.Time) *widget.Entry {
	e := widget.NewEntry()
	e.SetPlaceHolder(schedule.InputLayout)
	e.SetText(schedule.FormatDateTime(t))
	e.Validator = validDateTime
	return e
}

func validDateTime(s string) error {
	if _, err := schedule.ParseDateTime(s); err != nil {
		return errors.New("use YYYY-MM-DD HH:MM")
	}
	return nil
}

func multiLineEntry(text string) *widget.Entry {
	e := widget.NewMultiLineEntry()
	e.Wrapping = fyne.TextWrapWord
	e.SetMinRowsVisible(3)
	e.SetText(text)
	return e
}
