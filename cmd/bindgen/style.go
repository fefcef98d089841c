package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-bindgen/pkg/descriptor"
)

var (
	headingStyle   = lipgloss.NewStyle().Bold(true)
	nameStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	componentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	macroStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
)

func kindStyle(kind descriptor.Kind) lipgloss.Style {
	if kind.Special() {
		return macroStyle
	}
	return componentStyle
}
