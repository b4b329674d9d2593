// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"graphicsstudio/internal/termview"
)

func (c *cli) sampleCmd() *cobra.Command {
	var text bool
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Show the sample concept without contacting the agent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd.Context(), func(a *app) error {
				a.studio.SetSampleMode(true)
				st := a.studio.Snapshot()
				if !st.IsSample {
					return errors.New("sample mode did not install the sample concept")
				}
				if !text {
					fmt.Fprint(c.out, termview.Notice(fmt.Sprintf("Prompt: %s (%s)", st.Prompt, st.Platform)))
				}
				return c.show(a.studio, text)
			})
		},
	}
	cmd.Flags().BoolVar(&text, "text", false, "print the plain-text export instead of the styled view")
	return cmd
}
