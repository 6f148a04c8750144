// Package report renders roster comparisons, connection paths and graph
// statistics as terminal text, optionally styled with lipgloss.
package report
