package util

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// Marker prefixes every message raph prints about itself.
const Marker = "🦀"

var (
	SuccessColor = color.New(color.FgGreen)
	ErrorColor   = color.New(color.FgRed)
	WarnColor    = color.New(color.FgYellow)
	DebugColor   = color.New(color.Faint)

	HighlightColor = color.New(color.FgGreen, color.Bold)
)

// Console writes raph's own messages. Results go to Out, diagnostics to Err.
type Console struct {
	Out   io.Writer
	Err   io.Writer
	Debug bool
}

// Successf prints a marked message to Out.
func (c *Console) Successf(format string, a ...any) {
	SuccessColor.Fprintf(c.Out, "%s %s\n", Marker, fmt.Sprintf(format, a...))
}

// Warnf prints a marked warning to Err.
func (c *Console) Warnf(format string, a ...any) {
	WarnColor.Fprintf(c.Err, "%s %s\n", Marker, fmt.Sprintf(format, a...))
}

// Error prints err as a single marked line to Err.
func (c *Console) Error(err error) {
	ErrorColor.Fprintf(c.Err, "%s Error: %v\n", Marker, err)
}

// Debugf prints to Err only when debugging is enabled.
func (c *Console) Debugf(format string, a ...any) {
	if !c.Debug {
		return
	}
	DebugColor.Fprintf(c.Err, "debug: %s\n", fmt.Sprintf(format, a...))
}

func PrintTable(w io.Writer, headers []string, data [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(headers)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)
	table.AppendBulk(data)
	table.Render()
}
