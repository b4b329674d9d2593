// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"graphicsstudio/internal/clipboard"
	"graphicsstudio/internal/termview"
)

func (c *cli) savedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "saved",
		Short: "List, show, delete and copy saved concepts",
	}
	cmd.AddCommand(
		c.savedListCmd(),
		c.savedShowCmd(),
		c.savedDeleteCmd(),
		c.savedCopyCmd(),
	)
	return cmd
}

// withApp runs fn against a freshly wired app and closes it afterwards.
func (c *cli) withApp(ctx context.Context, fn func(a *app) error) error {
	a, err := newApp(ctx, c.cfg)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

func (c *cli) savedListCmd() *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved concepts, most recent first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd.Context(), func(a *app) error {
				fmt.Fprint(c.out, termview.SavedList(a.studio.Search(search)))
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&search, "search", "q", "", "only list concepts whose title or prompt contains this text")
	return cmd
}

func (c *cli) savedShowCmd() *cobra.Command {
	var text bool
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a saved concept",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd.Context(), func(a *app) error {
				entry, ok := a.studio.Saved(args[0])
				if !ok {
					return fmt.Errorf("saved concept %q not found", args[0])
				}
				if text {
					export, _ := a.studio.ExportSaved(entry.ID)
					fmt.Fprint(c.out, export)
					return nil
				}
				if entry.Query != "" {
					fmt.Fprint(c.out, termview.Notice("Prompt: "+entry.Query))
				}
				fmt.Fprint(c.out, termview.Concept(entry.Concept, false))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&text, "text", false, "print the plain-text export instead of the styled view")
	return cmd
}

func (c *cli) savedDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a saved concept",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd.Context(), func(a *app) error {
				if !a.studio.DeleteSaved(cmd.Context(), args[0]) {
					return fmt.Errorf("saved concept %q not found", args[0])
				}
				fmt.Fprint(c.out, termview.Notice("Deleted "+args[0]))
				return nil
			})
		},
	}
}

func (c *cli) savedCopyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy <id>",
		Short: "Copy a saved concept to the clipboard as text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd.Context(), func(a *app) error {
				export, ok := a.studio.ExportSaved(args[0])
				if !ok {
					return fmt.Errorf("saved concept %q not found", args[0])
				}
				if !clipboard.Copy(export) {
					return errors.New("could not copy to the clipboard")
				}
				fmt.Fprint(c.out, termview.Notice("Copied to clipboard"))
				return nil
			})
		},
	}
}
