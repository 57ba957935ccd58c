package validation

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hH-13/tilde/internal/domain/entity"
	"github.com/hH-13/tilde/internal/domain/url"
)

// ValidateTables checks the command table, the script table and both delimiters.
// Every problem is collected; the returned error is a *ConfigError or nil.
func ValidateTables(commands []entity.Command, scripts []entity.Script, searchDelim, pathDelim string) error {
	cfgErr := &ConfigError{}
	validateCommands(cfgErr, commands)
	validateScripts(cfgErr, scripts, commands)
	validateDelimiters(cfgErr, searchDelim, pathDelim)
	return cfgErr.orNil()
}

// ValidateCommands checks keys, URLs and colours of the command table.
func ValidateCommands(commands []entity.Command) error {
	cfgErr := &ConfigError{}
	validateCommands(cfgErr, commands)
	return cfgErr.orNil()
}

// ValidateScripts checks script keys, their references and expansion cycles.
func ValidateScripts(scripts []entity.Script, commands []entity.Command) error {
	cfgErr := &ConfigError{}
	validateScripts(cfgErr, scripts, commands)
	return cfgErr.orNil()
}

// ValidateDelimiters checks the search and path delimiters.
func ValidateDelimiters(searchDelim, pathDelim string) error {
	cfgErr := &ConfigError{}
	validateDelimiters(cfgErr, searchDelim, pathDelim)
	return cfgErr.orNil()
}

func validateCommands(cfgErr *ConfigError, commands []entity.Command) {
	seen := make(map[string]int, len(commands))
	wildcards := 0

	for i, cmd := range commands {
		key := strings.TrimSpace(cmd.Key)
		switch {
		case key == "":
			cfgErr.add(ErrEmptyKey, fmt.Sprintf("commands[%d]", i))
			continue
		case key != cmd.Key:
			cfgErr.add(ErrEmptyKey, fmt.Sprintf("commands[%d] key %q has surrounding whitespace", i, cmd.Key))
		}

		if cmd.IsWildcard() {
			wildcards++
		} else if first, ok := seen[key]; ok {
			cfgErr.add(ErrDuplicateKey, fmt.Sprintf("command %q at commands[%d] and commands[%d]", key, first, i))
		} else {
			seen[key] = i
		}

		if !url.IsAbsolute(cmd.URL) {
			cfgErr.add(ErrInvalidURL, fmt.Sprintf("command %q: %q", key, cmd.URL))
		}
		if cmd.Color != "" && !IsHexColor(cmd.Color) {
			cfgErr.add(ErrInvalidColor, fmt.Sprintf("command %q: %q", key, cmd.Color))
		}
	}

	switch {
	case wildcards == 0:
		cfgErr.add(ErrMissingWildcard, fmt.Sprintf("add a command with key %q", entity.WildcardKey))
	case wildcards > 1:
		cfgErr.add(ErrDuplicateWildcard, fmt.Sprintf("found %d", wildcards))
	}
}

func validateScripts(cfgErr *ConfigError, scripts []entity.Script, commands []entity.Command) {
	commandKeys := make(map[string]struct{}, len(commands))
	for _, cmd := range commands {
		commandKeys[cmd.Key] = struct{}{}
	}

	graph := make(map[string][]string, len(scripts))
	for i, s := range scripts {
		key := strings.TrimSpace(s.Key)
		if key == "" {
			cfgErr.add(ErrEmptyKey, fmt.Sprintf("scripts[%d]", i))
			continue
		}
		if _, dup := graph[key]; dup {
			cfgErr.add(ErrDuplicateKey, fmt.Sprintf("script %q", key))
			continue
		}
		if len(s.CommandKeys) == 0 {
			cfgErr.add(ErrEmptyScript, fmt.Sprintf("script %q", key))
		}
		graph[key] = s.CommandKeys
	}

	for _, s := range scripts {
		for _, ref := range s.CommandKeys {
			_, isScript := graph[ref]
			_, isCommand := commandKeys[ref]
			if !isScript && !isCommand {
				cfgErr.add(ErrUnknownScriptCommand, fmt.Sprintf("script %q references %q", s.Key, ref))
			}
		}
	}

	if cycle := findScriptCycle(graph); cycle != nil {
		cfgErr.add(ErrScriptCycle, strings.Join(cycle, " -> "))
	}
}

// findScriptCycle returns the first cycle found in the script graph, or nil.
// A reference to a script key always expands the script, so only script to
// script edges matter.
func findScriptCycle(graph map[string][]string) []string {
	const (
		unvisited = iota
		inProgress
		done
	)

	keys := make([]string, 0, len(graph))
	for k := range graph {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	state := make(map[string]int, len(graph))
	var stack []string
	var cycle []string

	var visit func(key string) bool
	visit = func(key string) bool {
		state[key] = inProgress
		stack = append(stack, key)
		for _, ref := range graph[key] {
			if _, isScript := graph[ref]; !isScript {
				continue
			}
			switch state[ref] {
			case inProgress:
				for i, k := range stack {
					if k == ref {
						cycle = append(append([]string{}, stack[i:]...), ref)
						return true
					}
				}
			case unvisited:
				if visit(ref) {
					return true
				}
			}
		}
		stack = stack[:len(stack)-1]
		state[key] = done
		return false
	}

	for _, k := range keys {
		if state[k] == unvisited && visit(k) {
			return cycle
		}
	}
	return nil
}

func validateDelimiters(cfgErr *ConfigError, searchDelim, pathDelim string) {
	check := func(name, value string) bool {
		if utf8.RuneCountInString(value) != 1 {
			cfgErr.add(ErrInvalidDelimiter, fmt.Sprintf("%s must be a single character, got %q", name, value))
			return false
		}
		r, _ := utf8.DecodeRuneInString(value)
		if unicode.IsSpace(r) {
			cfgErr.add(ErrInvalidDelimiter, fmt.Sprintf("%s cannot be whitespace", name))
			return false
		}
		return true
	}

	okSearch := check("search delimiter", searchDelim)
	okPath := check("path delimiter", pathDelim)
	if okSearch && okPath && searchDelim == pathDelim {
		cfgErr.add(ErrInvalidDelimiter, fmt.Sprintf("search and path delimiters are both %q", searchDelim))
	}
}

// Lint returns warnings for tables that are valid but probably not what the
// author intended. Scripts still win over commands sharing their key.
func Lint(commands []entity.Command, scripts []entity.Script, searchDelim, pathDelim string) []string {
	var warnings []string

	commandKeys := make(map[string]struct{}, len(commands))
	for _, cmd := range commands {
		commandKeys[cmd.Key] = struct{}{}
		if cmd.IsWildcard() {
			continue
		}
		if containsDelimiter(cmd.Key, searchDelim, pathDelim) {
			warnings = append(warnings,
				fmt.Sprintf("command %q contains a delimiter and can only be matched exactly", cmd.Key))
		}
	}

	for _, s := range scripts {
		if _, ok := commandKeys[s.Key]; ok {
			warnings = append(warnings,
				fmt.Sprintf("script %q shadows the command with the same key", s.Key))
		}
		if containsDelimiter(s.Key, searchDelim, pathDelim) {
			warnings = append(warnings,
				fmt.Sprintf("script %q contains a delimiter and can only be matched exactly", s.Key))
		}
	}

	return warnings
}

func containsDelimiter(key, searchDelim, pathDelim string) bool {
	return (searchDelim != "" && strings.Contains(key, searchDelim)) ||
		(pathDelim != "" && strings.Contains(key, pathDelim))
}
