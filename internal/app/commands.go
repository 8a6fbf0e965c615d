package app

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/mdflourish/document"
)

type (
	savedMsg struct {
		path string
		text string
		at   time.Time
		err  error
	}
	exportedMsg struct {
		path string
		err  error
	}
	openedMsg struct {
		doc document.Document
		err error
	}
	themeSavedMsg struct {
		id  string
		err error
	}
	draftTickMsg struct {
		seq int
	}
	draftSavedMsg struct {
		err error
	}
)

func saveCmd(dir, name, text string, now func() time.Time) tea.Cmd {
	return func() tea.Msg {
		path, err := document.Save(dir, name, text)
		return savedMsg{path: path, text: text, at: now(), err: err}
	}
}

func exportCmd(dir, name, text string) tea.Cmd {
	return func() tea.Msg {
		path, err := document.SaveHTML(dir, name, text)
		return exportedMsg{path: path, err: err}
	}
}

func openCmd(path string) tea.Cmd {
	return func() tea.Msg {
		doc, err := document.Open(path)
		return openedMsg{doc: doc, err: err}
	}
}

func saveThemeCmd(save func(id string) error, id string) tea.Cmd {
	if save == nil {
		return nil
	}
	return func() tea.Msg {
		return themeSavedMsg{id: id, err: save(id)}
	}
}

func draftTick(seq int) tea.Cmd {
	return tea.Tick(draftDelay, func(time.Time) tea.Msg {
		return draftTickMsg{seq: seq}
	})
}

func saveDraftCmd(path, text string) tea.Cmd {
	return func() tea.Msg {
		return draftSavedMsg{err: document.SaveDraft(path, text)}
	}
}

// saveDraftAndQuit writes the draft, including edits whose tick is still
// pending, then quits.
func saveDraftAndQuit(path, text string, log *slog.Logger) tea.Cmd {
	return func() tea.Msg {
		if err := document.SaveDraft(path, text); err != nil {
			log.Error("saving draft failed", "path", path, "error", err)
		}
		return tea.QuitMsg{}
	}
}
