// File: styles.go
// Title: Terminal Styles
// Description: lipgloss styles for tables and headings in command output.
//              With output.color disabled every style renders plain text.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorAccent  = lipgloss.Color("#F59E0B")
	colorMuted   = lipgloss.Color("#6B7280")
)

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	cell   lipgloss.Style
	accent lipgloss.Style
	border lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{
			title:  plain,
			header: plain.Padding(0, 1),
			cell:   plain.Padding(0, 1),
			accent: plain.Padding(0, 1),
			border: plain,
		}
	}

	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary),
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Padding(0, 1),
		cell: lipgloss.NewStyle().
			Padding(0, 1),
		accent: lipgloss.NewStyle().
			Foreground(colorAccent).
			Padding(0, 1),
		border: lipgloss.NewStyle().
			Foreground(colorMuted),
	}
}

func (a *app) styles() styles {
	return newStyles(a.cfg.GetBool("output.color", true))
}
