// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-app-info/internal/logger"
	"github.com/MKhiriev/go-app-info/models"
)

const statusTTL = 2 * time.Second

type aboutModel struct {
	info   models.AppInfoResponse
	status string
	copyFn func(string) error
	logger *logger.Logger
}

func newAboutModel(info models.AppInfoResponse, log *logger.Logger) aboutModel {
	return aboutModel{info: info, copyFn: clipboard.WriteAll, logger: log}
}

func (m aboutModel) Init() tea.Cmd { return nil }

func (m aboutModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.copy):
			if strings.TrimSpace(m.info.Commit) == "" {
				m.status = "No commit to copy"
				return m, cmdClearStatus()
			}
			return m, m.cmdCopy(m.info.Commit)
		}
	case copiedMsg:
		m.status = "Commit copied"
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.logger.Warn().Err(msg.err).Msg("copy commit to clipboard")
		m.status = "Copy failed: " + msg.err.Error()
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
	}
	return m, nil
}

func (m aboutModel) View() string {
	rows := []struct{ label, value string }{
		{"Name", valueOrNA(m.info.Name)},
		{"Version", valueOrNA(m.info.Version)},
		{"Build", valueOrNA(m.info.Build)},
		{"Date", dateOrNA(m.info.Date)},
		{"Commit", valueOrNA(m.info.Commit)},
	}

	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(labelStyle.Render(r.label + ":"))
		b.WriteString(r.value)
	}
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(m.status))
	}

	hotKeys := fmt.Sprintf("%s: %s   %s: %s",
		keys.copy.Help().Key, keys.copy.Help().Desc,
		keys.quit.Help().Key, keys.quit.Help().Desc)

	return appStyle.Render(renderPage("ABOUT", b.String(), hotKeys))
}

func (m aboutModel) cmdCopy(text string) tea.Cmd {
	copyFn := m.copyFn
	return func() tea.Msg {
		if err := copyFn(text); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
