// Copyright (c) 2026, The OTNS Authors.
// All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are met:
// 1. Redistributions of source code must retain the above copyright
//    notice, this list of conditions and the following disclaimer.
// 2. Redistributions in binary form must reproduce the above copyright
//    notice, this list of conditions and the following disclaimer in the
//    documentation and/or other materials provided with the distribution.
// 3. Neither the name of the copyright holder nor the
//    names of its contributors may be used to endorse or promote products
//    derived from this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
// AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
// IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
// ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
// LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
// CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
// SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
// INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
// CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
// ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
// POSSIBILITY OF SUCH DAMAGE.

package cli

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/mitchellh/go-wordwrap"
	"golang.org/x/term"

	"github.com/openthread/ot-linksim/logger"
)

// The command reference doubles as the help text. Each "### <command>" section is one help topic.
//
//go:embed README.md
var cliHelpFile string

const (
	defaultTermWidth = 80
	maxUsageWidth    = 32
	codeIndent       = "    "
	textIndent       = "  "
)

var (
	linkPattern     = regexp.MustCompile(`\[([^\]]+)\]\(#[a-z-]+\)`)
	markdownPattern = regexp.MustCompile("[`\\\\]")
)

type helpLine struct {
	text string
	code bool
}

// helpTopic is the help of one console command.
type helpTopic struct {
	name    string
	summary string
	usage   []string
	lines   []helpLine
}

// syntax returns the first usage line, or the bare command name if there is none.
func (t *helpTopic) syntax() string {
	if len(t.usage) > 0 {
		return t.usage[0]
	}
	return t.name
}

type Help struct {
	termWidth uint
	topics    map[string]*helpTopic
	names     []string
}

func newHelp() Help {
	h := Help{
		termWidth: defaultTermWidth,
		topics:    make(map[string]*helpTopic),
	}
	h.parseReference(cliHelpFile)
	h.update()
	return h
}

// update adapts the text width to the terminal on stdout, if there is one.
func (help *Help) update() {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		logger.Debugf("terminal size unknown: %v", err)
		return
	}
	help.termWidth = uint(width)
}

// outputGeneralHelp lists the syntax and summary of every command.
func (help *Help) outputGeneralHelp() string {
	help.update()
	col := 0
	for _, name := range help.names {
		if n := len(help.topics[name].syntax()); n > col && n <= maxUsageWidth {
			col = n
		}
	}

	var sb strings.Builder
	sb.WriteString("Commands:\n")
	for _, name := range help.names {
		t := help.topics[name]
		syntax := t.syntax()
		if len(syntax) > col {
			// too long for the column, the summary goes on the next line
			sb.WriteString(textIndent + syntax + "\n")
			syntax = ""
		}
		sb.WriteString(fmt.Sprintf("%s%-*s  %s\n", textIndent, col, syntax, t.summary))
	}
	sb.WriteString("\n")
	sb.WriteString(wordwrap.WrapString("Every command ends with 'Done', or with 'Error: <reason>' if it failed. "+
		"Type 'help <command>' for the usage and an example of one command.", help.termWidth))
	sb.WriteString("\n")
	return sb.String()
}

// outputCommandHelp returns the full help of one command.
func (help *Help) outputCommandHelp(command string) string {
	help.update()
	t, ok := help.topics[command]
	if !ok {
		return fmt.Sprintf("Unknown command '%s'. Type 'help' for the list of commands.\n", command)
	}

	var sb strings.Builder
	sb.WriteString(t.name + "\n")
	width := help.termWidth - uint(len(textIndent))
	for _, line := range t.lines {
		switch {
		case line.code:
			sb.WriteString(codeIndent + line.text + "\n")
		case line.text == "":
			sb.WriteString("\n")
		default:
			for _, l := range strings.Split(wordwrap.WrapString(line.text, width), "\n") {
				sb.WriteString(textIndent + l + "\n")
			}
		}
	}
	return sb.String()
}

// parseReference reads the help topics from the markdown command reference.
func (help *Help) parseReference(md string) {
	var (
		topic     *helpTopic
		fence     string
		paragraph []string
	)

	flush := func() {
		if topic != nil && len(paragraph) > 0 {
			text := strings.Join(paragraph, " ")
			if topic.summary == "" {
				topic.summary = firstSentence(text)
			}
			topic.lines = append(topic.lines, helpLine{text: ""}, helpLine{text: text})
		}
		paragraph = nil
	}

	for _, line := range strings.Split(md, "\n") {
		line = strings.TrimRight(line, " \t\r")

		if fence != "" {
			if line == "```" {
				fence = ""
			} else if topic != nil {
				topic.lines = append(topic.lines, helpLine{text: line, code: true})
				if fence == "shell" {
					topic.usage = append(topic.usage, line)
				}
			}
			continue
		}

		switch {
		case strings.HasPrefix(line, "### "):
			flush()
			name := strings.TrimSpace(line[len("### "):])
			topic = &helpTopic{name: name}
			help.topics[name] = topic
			help.names = append(help.names, name)
		case strings.HasPrefix(line, "#"):
			// any other heading ends the command section
			flush()
			topic = nil
		case strings.HasPrefix(line, "```"):
			flush()
			fence = strings.TrimPrefix(line, "```")
			if fence == "" {
				fence = "text"
			}
			if topic != nil {
				heading := "Example:"
				if fence == "shell" {
					heading = "Usage:"
				}
				topic.lines = append(topic.lines, helpLine{text: ""}, helpLine{text: heading})
			}
		case line == "":
			flush()
		default:
			paragraph = append(paragraph, markdownUnquote(strings.TrimSpace(line)))
		}
	}
	flush()
	sort.Strings(help.names)
}

func firstSentence(text string) string {
	if idx := strings.Index(text, ". "); idx > 0 {
		return text[:idx+1]
	}
	return text
}

func markdownUnquote(md string) string {
	md = linkPattern.ReplaceAllString(md, "$1")
	return markdownPattern.ReplaceAllString(md, "")
}
