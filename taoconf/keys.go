package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/nigeltao/taoconf/wm"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#88c0d0"))
	chordStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#a3be8c"))
	cmdStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#b48ead"))
	descStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#d8dee9"))
)

func (a *app) keysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List the key bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.assemble()
			if err != nil {
				return err
			}
			writeKeys(cmd.OutOrStdout(), c.Keys())
			return nil
		},
	}
}

func chord(k wm.Key) string {
	key := wm.KeysymString(k.Keysym)
	if k.Mods == 0 {
		return key
	}
	return k.Mods.String() + "+" + key
}

func command(c wm.Command) string {
	if c == nil {
		return ""
	}
	if args := c.Args(); len(args) > 0 {
		return c.Path() + " " + strings.Join(args, " ")
	}
	return c.Path()
}

func writeKeys(w io.Writer, keys []wm.Key) {
	chordWidth, cmdWidth := len("KEY"), len("COMMAND")
	for _, k := range keys {
		chordWidth = max(chordWidth, len(chord(k)))
		cmdWidth = max(cmdWidth, len(command(k.Command)))
	}
	chordCol := lipgloss.NewStyle().Width(chordWidth + 2)
	cmdCol := lipgloss.NewStyle().Width(cmdWidth + 2)

	fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top,
		chordCol.Render(headerStyle.Render("KEY")),
		cmdCol.Render(headerStyle.Render("COMMAND")),
		headerStyle.Render("DESCRIPTION"),
	))
	for _, k := range keys {
		fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top,
			chordCol.Render(chordStyle.Render(chord(k))),
			cmdCol.Render(cmdStyle.Render(command(k.Command))),
			descStyle.Render(k.Desc),
		))
	}
}
