package main

import (
	"errors"
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"github.com/borgmon/tradeshow-assistant/pkg/calendar"
	"github.com/borgmon/tradeshow-assistant/pkg/logger"
	"github.com/borgmon/tradeshow-assistant/pkg/transfer"
)

var errInvalidJSONFile = errors.New("Invalid JSON file")

func (pw *PlannerWindow) importJSON() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, pw.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		patch, err := transfer.Import(pw.store, reader)
		if err != nil {
			logger.Warnw("import failed", "uri", reader.URI().String(), "error", err)
			if errors.Is(err, transfer.ErrInvalidDocument) {
				err = errInvalidJSONFile
			}
			dialog.ShowError(err, pw.window)
			return
		}
		if patch.Empty() {
			dialog.ShowInformation("Nothing imported", "The file has no meetings, travel or gptUrl.", pw.window)
		}
	}, pw.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	d.Show()
}

func (pw *PlannerWindow) exportJSON() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, pw.window)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		if err := transfer.Export(writer, pw.store.Snapshot()); err != nil {
			logger.Errorw("export failed", "uri", writer.URI().String(), "error", err)
			dialog.ShowError(err, pw.window)
			return
		}
		logger.Infow("export written", "uri", writer.URI().String())
	}, pw.window)
	d.SetFileName(transfer.FileName(time.Now()))
	d.Show()
}

func (pw *PlannerWindow) importICS() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, pw.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		added, updated, err := calendar.Import(pw.store, reader)
		if err != nil {
			logger.Warnw("ics import failed", "uri", reader.URI().String(), "error", err)
			dialog.ShowError(err, pw.window)
			return
		}
		dialog.ShowInformation("Calendar imported",
			fmt.Sprintf("%d new meeting(s), %d updated.", added, updated), pw.window)
	}, pw.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".ics"}))
	d.Show()
}

func (pw *PlannerWindow) exportICS() {
	meetings := pw.store.Meetings()
	if len(meetings) == 0 {
		dialog.ShowInformation("Nothing to export", "Add a meeting first.", pw.window)
		return
	}

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, pw.window)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		if err := calendar.Export(writer, meetings); err != nil {
			logger.Errorw("ics export failed", "uri", writer.URI().String(), "error", err)
			dialog.ShowError(err, pw.window)
			return
		}
		logger.Infow("ics export written", "uri", writer.URI().String(), "meetings", len(meetings))
	}, pw.window)
	d.SetFileName(calendar.FileName(time.Now()))
	d.Show()
}
