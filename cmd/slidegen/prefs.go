package main

import (
	"fmt"
	"io"

	"github.com/phrazzld/slidegen/internal/domain"
	"github.com/spf13/cobra"
)

func newPrefsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change the saved preferences",
	}
	cmd.AddCommand(newPrefsShowCmd(c), newPrefsSetCmd(c))
	return cmd
}

func newPrefsShowCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the saved preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.newApplication(c.stderr)
			if err != nil {
				return err
			}

			prefs, err := app.preferences.Load()
			if err != nil {
				return err
			}
			return writePreferences(c.stdout, app.preferences.Path(), prefs)
		},
	}
}

func newPrefsSetCmd(c *cli) *cobra.Command {
	var choices choiceFlags

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change the saved preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.newApplication(c.stderr)
			if err != nil {
				return err
			}

			prefs, err := app.preferences.Load()
			if err != nil {
				prefs = domain.DefaultPreferences()
			}
			prefs = choices.applyTo(prefs)

			if err := app.preferences.Save(prefs); err != nil {
				return err
			}
			return writePreferences(c.stdout, app.preferences.Path(), prefs)
		},
	}

	choices.register(cmd)
	return cmd
}

func writePreferences(w io.Writer, path string, prefs domain.UserPreferences) error {
	_, err := fmt.Fprintf(w, "format: %s\nlanguage: %s\nmode: %s\ncustom format: %s\nfile: %s\n",
		prefs.FormatID, prefs.Language, prefs.Mode, prefs.CustomFormat, path)
	return err
}
