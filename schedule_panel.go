package main

import (
	"net/url"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/tradeshow-assistant/pkg/editor"
	"github.com/borgmon/tradeshow-assistant/pkg/logger"
	"github.com/borgmon/tradeshow-assistant/pkg/models"
	"github.com/borgmon/tradeshow-assistant/pkg/schedule"
)

const (
	agendaLabel = "Agenda"
	hourlyLabel = "Hourly"
)

// SchedulePanel renders the schedule card and the meeting details for the
// active date. Everything shown is projected from the store on refresh.
type SchedulePanel struct {
	pw   *PlannerWindow
	view schedule.View
	mode string

	dateLabel *widget.Label
	modeGroup *widget.RadioGroup
	agenda    *fyne.Container
	hourly    *fyne.Container
	details   *fyne.Container
}

func newSchedulePanel(pw *PlannerWindow, active time.Time, mode string) *SchedulePanel {
	sp := &SchedulePanel{
		pw:        pw,
		mode:      mode,
		dateLabel: widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		agenda:    container.NewVBox(),
		hourly:    container.NewVBox(),
		details:   container.NewVBox(),
	}
	sp.view = schedule.Project(pw.store.Meetings(), active)

	sp.modeGroup = widget.NewRadioGroup([]string{agendaLabel, hourlyLabel}, func(selected string) {
		if selected == hourlyLabel {
			sp.mode = models.ViewHourly
		} else {
			sp.mode = models.ViewAgenda
		}
		sp.render()
	})
	sp.modeGroup.Horizontal = true
	sp.modeGroup.Required = true
	if mode == models.ViewHourly {
		sp.modeGroup.SetSelected(hourlyLabel)
	} else {
		sp.modeGroup.SetSelected(agendaLabel)
	}

	sp.render()
	return sp
}

func (sp *SchedulePanel) card() fyne.CanvasObject {
	prev := widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() {
		sp.shift(schedule.Previous)
	})
	next := widget.NewButtonWithIcon("", theme.NavigateNextIcon(), func() {
		sp.shift(schedule.Next)
	})

	nav := container.NewBorder(nil, nil,
		container.NewHBox(prev, sp.dateLabel, next),
		sp.modeGroup,
	)

	addButton := widget.NewButtonWithIcon("Add meeting", theme.ContentAddIcon(), sp.addMeeting)
	addButton.Importance = widget.HighImportance

	body := container.NewStack(sp.agenda, sp.hourly)

	return widget.NewCard("Schedule", "Switch between an agenda and an hourly grid for any show day.",
		container.NewVBox(nav, body, addButton))
}

// refresh recomputes the projection after the meeting list changed
func (sp *SchedulePanel) refresh() {
	sp.view = schedule.Project(sp.pw.store.Meetings(), sp.view.Active)
	sp.render()
}

func (sp *SchedulePanel) shift(dir schedule.Direction) {
	sp.view = sp.view.Shift(sp.pw.store.Meetings(), dir)
	sp.render()
}

func (sp *SchedulePanel) render() {
	sp.dateLabel.SetText(schedule.FormatDate(sp.view.Active))

	sp.renderAgenda()
	sp.renderHourly()
	sp.renderDetails()

	if sp.mode == models.ViewHourly {
		sp.agenda.Hide()
		sp.hourly.Show()
	} else {
		sp.hourly.Hide()
		sp.agenda.Show()
	}
}

func (sp *SchedulePanel) renderAgenda() {
	sp.agenda.RemoveAll()

	if len(sp.view.Meetings) == 0 {
		empty := widget.NewLabel("No meetings for this date.")
		empty.Importance = widget.LowImportance
		sp.agenda.Add(empty)
		return
	}

	for _, m := range sp.view.Meetings {
		sp.agenda.Add(sp.agendaItem(m))
	}
}

func (sp *SchedulePanel) agendaItem(m models.Meeting) fyne.CanvasObject {
	line := widget.NewLabelWithStyle(agendaLine(m), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	line.Truncation = fyne.TextTruncateEllipsis
	place := widget.NewLabel(placeLine(m))
	place.Importance = widget.LowImportance
	place.Truncation = fyne.TextTruncateEllipsis

	id := m.ID
	editButton := widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), func() {
		sp.editMeeting(id)
	})
	deleteButton := widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
		sp.deleteMeeting(id)
	})

	return container.NewBorder(nil, widget.NewSeparator(), nil,
		container.NewHBox(editButton, deleteButton),
		container.NewVBox(line, place),
	)
}

func (sp *SchedulePanel) renderHourly() {
	sp.hourly.RemoveAll()

	for _, slot := range sp.view.Slots {
		hour := widget.NewLabel(schedule.FormatTime(slot.Start))
		hour.Importance = widget.LowImportance

		var chips fyne.CanvasObject
		if len(slot.Meetings) == 0 {
			chips = layout.NewSpacer()
		} else {
			row := container.NewHBox()
			for _, m := range slot.Meetings {
				id := m.ID
				chip := widget.NewButton(m.Title+"  "+schedule.FormatRange(m.Start, m.End), func() {
					sp.editMeeting(id)
				})
				chip.Importance = widget.LowImportance
				row.Add(chip)
			}
			chips = container.NewHScroll(row)
		}

		sp.hourly.Add(container.NewBorder(nil, widget.NewSeparator(), hour, nil, chips))
	}
}

func (sp *SchedulePanel) renderDetails() {
	sp.details.RemoveAll()

	if len(sp.view.Meetings) == 0 {
		sp.details.Add(widget.NewCard("No meetings this day", "Add one using the button on the left.", nil))
		return
	}

	for _, m := range sp.view.Meetings {
		sp.details.Add(sp.meetingDetail(m))
	}
}

func (sp *SchedulePanel) meetingDetail(m models.Meeting) fyne.CanvasObject {
	subtitle := widget.NewLabelWithStyle(detailSubtitle(m), fyne.TextAlignLeading, fyne.TextStyle{Italic: true})

	info := container.NewVBox(subtitle)
	if m.Description != "" {
		info.Add(wrapped(m.Description))
	}
	if m.TalkingPoints != "" {
		info.Add(sectionTitle("Suggested talking points"))
		info.Add(wrapped(m.TalkingPoints))
	}
	if m.PrepChecklist != "" {
		info.Add(sectionTitle("Prep checklist"))
		info.Add(wrapped(m.PrepChecklist))
	}

	id := m.ID
	info.Add(container.NewHBox(widget.NewButtonWithIcon("Edit details", theme.DocumentCreateIcon(), func() {
		sp.editMeeting(id)
	})))

	people := container.NewVBox(sectionTitle("Attendees"))
	for _, a := range m.Attendees {
		people.Add(attendeeCard(a))
	}

	body := container.NewGridWithColumns(2, info, people)
	return widget.NewCard(m.Title, detailHeader(m), body)
}

func attendeeCard(a models.Attendee) fyne.CanvasObject {
	name := widget.NewLabelWithStyle(a.Name, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	lines := container.NewVBox(name)

	if sub := attendeeSubtitle(a); sub != "" {
		subLabel := widget.NewLabel(sub)
		subLabel.Importance = widget.LowImportance
		lines.Add(subLabel)
	}
	if a.LinkedIn != "" {
		if u, err := url.Parse(a.LinkedIn); err == nil {
			lines.Add(widget.NewHyperlink("LinkedIn", u))
		}
	}
	if a.Notes != "" {
		lines.Add(wrapped(a.Notes))
	}

	return container.NewBorder(nil, widget.NewSeparator(),
		container.NewPadded(widget.NewIcon(theme.AccountIcon())), nil, lines)
}

func sectionTitle(text string) *widget.Label {
	return widget.NewLabelWithStyle(text, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
}

func wrapped(text string) *widget.Label {
	label := widget.NewLabel(strings.TrimSpace(text))
	label.Wrapping = fyne.TextWrapWord
	return label
}

func (sp *SchedulePanel) addMeeting() {
	start := sp.view.Active
	now := time.Now()
	if schedule.SameDay(start, now) {
		start = now
	} else {
		start = time.Date(start.Year(), start.Month(), start.Day(), now.Hour(), now.Minute(), 0, 0, time.Local)
	}
	showMeetingDialog(sp.pw.window, editor.NewMeeting(start), sp.pw.store)
}

func (sp *SchedulePanel) editMeeting(id string) {
	m, ok := sp.pw.store.Meeting(id)
	if !ok {
		return
	}
	showMeetingDialog(sp.pw.window, editor.EditMeeting(m), sp.pw.store)
}

func (sp *SchedulePanel) deleteMeeting(id string) {
	m, ok := sp.pw.store.Meeting(id)
	if !ok {
		return
	}
	dialog.ShowConfirm("Delete meeting", "Delete \""+m.Title+"\"?", func(confirmed bool) {
		if !confirmed {
			return
		}
		if err := sp.pw.store.DeleteMeeting(id); err != nil {
			logger.Warnw("failed to delete meeting", "id", id, "error", err)
		}
	}, sp.pw.window)
}
