// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package concept

import (
	"fmt"
	"strings"

	"graphicsstudio/internal/models"
)

// VariationSuffix is appended to the original query when asking for a variation.
const VariationSuffix = " - give me a different variation with a fresh perspective"

// BuildMessage composes the outbound agent message:
//
//	<prompt> | Platform: <name> (<W>x<H>, <ratio>)[ | Aspect Ratio: <override>]
func BuildMessage(prompt string, platform models.Platform, aspectRatio string) string {
	spec := platform.Spec()
	msg := fmt.Sprintf("%s | Platform: %s (%s, %s)",
		strings.TrimSpace(prompt), spec.Platform, spec.Dimensions(), spec.Ratio)
	if ar := strings.TrimSpace(aspectRatio); ar != "" {
		msg += " | Aspect Ratio: " + ar
	}
	return msg
}

// VariationMessage builds the message that asks the agent for a fresh take
// on query. It always derives from the original query, never from a
// previous variation.
func VariationMessage(query string) string {
	return query + VariationSuffix
}
