// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package concept

import (
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

const (
	// maxCandidates caps how many complete objects are returned per payload.
	maxCandidates = 64

	// maxScans caps the fallback scans for braces that sit inside string
	// literals on the first pass.
	maxScans = 64

	// maxRepairs caps how many malformed objects are repaired per payload.
	maxRepairs = 8

	// maxTruncations caps how far a truncated object is cut back while repairing it.
	maxTruncations = 8

	// maxRepairLen is the largest source that is repaired at all. Larger
	// payloads only yield objects that are already valid.
	maxRepairLen = 1 << 20
)

// fencedBlock matches a markdown code fence, optionally tagged json.
var fencedBlock = regexp.MustCompile("(?s)```[a-zA-Z]*\\s*(.*?)```")

// candidates returns valid JSON object texts found in s, most likely first:
// fenced blocks, then every object start in the plain text. Objects that
// never close or carry trailing commas are repaired before being returned.
func candidates(s string) []string {
	var sources []string
	for _, m := range fencedBlock.FindAllStringSubmatch(s, -1) {
		sources = append(sources, m[1])
	}
	// An unterminated fence still holds the object.
	if i := strings.Index(s, "```"); i != -1 && len(sources) == 0 {
		rest := s[i+3:]
		if nl := strings.IndexByte(rest, '\n'); nl != -1 {
			sources = append(sources, rest[nl+1:])
		}
	}
	sources = append(sources, s)

	var out []string
	seen := make(map[string]bool)
	add := func(c string) {
		if c != "" && !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}

	accepted, scans, repairs := 0, 0, 0
	for _, src := range sources {
		canRepair := len(src) <= maxRepairLen
		ends := closers(src)
		for i := 0; i < len(src) && accepted < maxCandidates; i++ {
			if src[i] != '{' {
				continue
			}
			end, ok := ends[i]
			if !ok {
				if scans >= maxScans {
					continue
				}
				scans++
				end = scanObject(src, i)
			}

			if end == -1 {
				if canRepair && repairs < maxRepairs {
					repairs++
					add(repairTruncated(src[i:]))
				}
				continue
			}

			raw := src[i:end]
			if gjson.Valid(raw) {
				accepted++
				add(raw)
				continue
			}
			if !canRepair || repairs >= maxRepairs {
				continue
			}
			repairs++
			if fixed := repair(raw); gjson.Valid(fixed) {
				add(fixed)
			} else {
				// Placeholder members such as `...` before the closing brace.
				add(repairTruncated(raw[:len(raw)-1]))
			}
		}
	}
	return out
}

// closers makes one pass over s from its first '{' and maps the offset of
// every '{' seen outside a string literal to the offset just past its
// matching close, or -1 when s ends first. Braces that fall inside a string
// on this pass are absent and must be scanned on their own.
func closers(s string) map[int]int {
	ends := make(map[int]int)
	start := strings.IndexByte(s, '{')
	if start == -1 {
		return ends
	}

	var stack []int
	inString, escaped := false, false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '[':
			stack = append(stack, i)
			if c == '{' {
				ends[i] = -1
			}
		case '}', ']':
			if n := len(stack); n > 0 {
				open := stack[n-1]
				stack = stack[:n-1]
				if s[open] == '{' {
					ends[open] = i + 1
				}
			}
		}
	}
	return ends
}

// scanObject returns the index just past the object that opens at s[start],
// or -1 if the input ends first. String contents are skipped.
func scanObject(s string, start int) int {
	depth := 0
	inString, escaped := false, false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return -1
}

// repairTruncated closes an object cut off mid-stream. If closing alone does
// not produce valid JSON, the text is cut back to the previous comma and
// closed again, dropping the incomplete member.
func repairTruncated(s string) string {
	for attempt := 0; attempt <= maxTruncations; attempt++ {
		if fixed := repair(s); gjson.Valid(fixed) {
			return fixed
		}
		cut := strings.LastIndexByte(s, ',')
		if cut <= 0 {
			return ""
		}
		s = s[:cut]
	}
	return ""
}

// repair drops trailing commas before closing brackets and appends whatever
// quotes and brackets are still open at the end of s.
func repair(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)

	var stack []byte
	inString, escaped := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			b.WriteByte(c)
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			stack = append(stack, '}')
		case '[':
			stack = append(stack, ']')
		case '}', ']':
			trimTrailingComma(&b)
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
		b.WriteByte(c)
	}

	out := b.String()
	if inString {
		if escaped {
			out = out[:len(out)-1]
		}
		out += `"`
	}
	out = strings.TrimRight(out, " \t\r\n")
	out = strings.TrimSuffix(out, ",")
	if strings.HasSuffix(out, ":") {
		out += "null"
	}
	if len(stack) == 0 {
		return out
	}
	var tail strings.Builder
	tail.Grow(len(stack))
	for i := len(stack) - 1; i >= 0; i-- {
		tail.WriteByte(stack[i])
	}
	return out + tail.String()
}

// trimTrailingComma removes a comma (and the whitespace after it) from the
// end of b, so that "[1, 2, ]" becomes "[1, 2]".
func trimTrailingComma(b *strings.Builder) {
	s := b.String()
	t := strings.TrimRight(s, " \t\r\n")
	if !strings.HasSuffix(t, ",") {
		return
	}
	b.Reset()
	b.WriteString(t[:len(t)-1])
}
