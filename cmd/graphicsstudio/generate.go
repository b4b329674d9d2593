// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"graphicsstudio/internal/clipboard"
	"graphicsstudio/internal/concept"
	"graphicsstudio/internal/models"
	"graphicsstudio/internal/studio"
	"graphicsstudio/internal/termview"
)

func (c *cli) generateCmd() *cobra.Command {
	var (
		platformName string
		aspectRatio  string
		variations   int
		save         bool
		copyOut      bool
		text         bool
	)

	cmd := &cobra.Command{
		Use:   "generate <prompt>",
		Short: "Generate a graphic concept from a description",
		Example: `  graphicsstudio generate "Summer sale announcement, playful and bright"
  graphicsstudio generate --platform linkedin --aspect-ratio 4:5 --save "Hiring a backend engineer"
  graphicsstudio generate --variations 2 --copy "Coffee shop grand opening"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			platform, ok := models.ParsePlatform(platformName)
			if !ok {
				return fmt.Errorf("unknown platform %q (choose LinkedIn, Twitter/X, Instagram or Facebook)", platformName)
			}
			if variations < 0 {
				return fmt.Errorf("--variations must not be negative, got %d", variations)
			}
			prompt := strings.TrimSpace(strings.Join(args, " "))
			if prompt == "" {
				return errors.New("prompt must not be empty")
			}

			ctx := cmd.Context()
			a, err := newApp(ctx, c.cfg)
			if err != nil {
				return err
			}
			defer a.Close()
			s := a.studio

			fmt.Fprint(c.errOut, termview.Notice("Generating concept…"))
			s.Generate(ctx, prompt, platform, aspectRatio)
			if err := c.show(s, text); err != nil {
				return err
			}

			for i := 1; i <= variations; i++ {
				fmt.Fprint(c.errOut, termview.Notice(fmt.Sprintf("Generating variation %d of %d…", i, variations)))
				s.RequestVariation(ctx)
				if err := c.show(s, text); err != nil {
					return err
				}
			}

			if save {
				if entry, ok := s.Save(ctx); ok {
					fmt.Fprint(c.out, termview.Notice("Saved as "+entry.ID))
				}
			}
			if copyOut {
				export, _ := s.Export()
				if !clipboard.Copy(export) {
					return errors.New("could not copy to the clipboard")
				}
				fmt.Fprint(c.out, termview.Notice("Copied to clipboard"))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&platformName, "platform", "p", string(models.DefaultPlatform), "target platform: LinkedIn, Twitter/X, Instagram or Facebook")
	cmd.Flags().StringVarP(&aspectRatio, "aspect-ratio", "r", "", "aspect ratio override, e.g. "+strings.Join(models.AspectRatios, ", "))
	cmd.Flags().IntVarP(&variations, "variations", "n", 0, "number of variations to request after the first concept")
	cmd.Flags().BoolVarP(&save, "save", "s", false, "save the final concept")
	cmd.Flags().BoolVarP(&copyOut, "copy", "c", false, "copy the final concept to the clipboard")
	cmd.Flags().BoolVar(&text, "text", false, "print the plain-text export instead of the styled view")
	return cmd
}

// show prints the displayed concept, or returns the studio's error when
// the last request failed.
func (c *cli) show(s *studio.Studio, text bool) error {
	st := s.Snapshot()
	if st.Error != "" {
		return errors.New(st.Error)
	}
	if st.Concept == nil {
		return errors.New("no concept was generated")
	}
	if text {
		fmt.Fprint(c.out, concept.ExportText(*st.Concept))
		return nil
	}
	fmt.Fprint(c.out, termview.Concept(*st.Concept, st.IsSample))
	return nil
}
