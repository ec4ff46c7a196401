package main

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"github.com/borgmon/tradeshow-assistant/pkg/models"
	"github.com/borgmon/tradeshow-assistant/pkg/schedule"
)

const trayLimit = 8

func (p *Planner) setupSystemTray() {
	p.updateSystemTrayMenu()
}

func (p *Planner) updateSystemTrayMenu() {
	desk, ok := p.app.(desktop.App)
	if !ok {
		return
	}

	menuItems := []*fyne.MenuItem{}

	today := todaysMeetings(p.store.Meetings(), time.Now(), trayLimit)
	header := fyne.NewMenuItem("No meetings today", nil)
	if len(today) > 0 {
		header.Label = "Today:"
	}
	header.Disabled = true
	menuItems = append(menuItems, header)

	for _, m := range today {
		item := fyne.NewMenuItem("  "+trayLine(m), nil)
		item.Disabled = true
		menuItems = append(menuItems, item)
	}

	quitItem := fyne.NewMenuItem("Quit", p.quit)
	quitItem.IsQuit = true

	menuItems = append(menuItems,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Open", func() {
			p.window.Show()
		}),
		fyne.NewMenuItemSeparator(),
		quitItem,
	)

	menu := fyne.NewMenu("Tradeshow Assistant", menuItems...)
	desk.SetSystemTrayMenu(menu)
	desk.SetSystemTrayIcon(theme.CalendarIcon())
}

// todaysMeetings returns up to limit of now's meetings in start order
func todaysMeetings(list []models.Meeting, now time.Time, limit int) []models.Meeting {
	day := schedule.MeetingsOnDay(list, now)
	if len(day) > limit {
		day = day[:limit]
	}
	return day
}
