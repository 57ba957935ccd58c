package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/hH-13/tilde/internal/domain/entity"
	"github.com/hH-13/tilde/internal/domain/url"
	"github.com/hH-13/tilde/internal/domain/validation"
	"github.com/hH-13/tilde/internal/logging"
)

// maxScriptDepth bounds script expansion. Cycles are rejected when the
// parser is built, so this only stops pathological nesting.
const maxScriptDepth = 8

// ParserConfig holds the static tables a QueryParser resolves against.
type ParserConfig struct {
	Commands        []entity.Command
	Scripts         []entity.Script
	SearchDelimiter string
	PathDelimiter   string
}

// QueryParser resolves raw input into a ParsedQuery.
// It is immutable after construction and safe for concurrent use.
type QueryParser struct {
	commands     []entity.Command
	commandHosts []string
	commandIndex map[string]int
	wildcard     int
	scripts      map[string][]string
	searchDelim  string
	pathDelim    string
	warnings     []string
}

// NewQueryParser validates the tables and builds a parser.
// A *validation.ConfigError is returned when the tables are malformed.
func NewQueryParser(ctx context.Context, cfg ParserConfig) (*QueryParser, error) {
	log := logging.FromContext(ctx)

	if err := validation.ValidateTables(cfg.Commands, cfg.Scripts, cfg.SearchDelimiter, cfg.PathDelimiter); err != nil {
		return nil, fmt.Errorf("failed to build query parser: %w", err)
	}

	p := &QueryParser{
		commands:     append([]entity.Command(nil), cfg.Commands...),
		commandHosts: make([]string, len(cfg.Commands)),
		commandIndex: make(map[string]int, len(cfg.Commands)),
		wildcard:     -1,
		scripts:      make(map[string][]string, len(cfg.Scripts)),
		searchDelim:  cfg.SearchDelimiter,
		pathDelim:    cfg.PathDelimiter,
	}

	for i, cmd := range p.commands {
		p.commandHosts[i] = url.ExtractHost(cmd.URL)
		p.commandIndex[cmd.Key] = i
		if cmd.IsWildcard() {
			p.wildcard = i
		}
	}
	for _, s := range cfg.Scripts {
		p.scripts[s.Key] = append([]string(nil), s.CommandKeys...)
	}

	p.warnings = validation.Lint(cfg.Commands, cfg.Scripts, cfg.SearchDelimiter, cfg.PathDelimiter)
	for _, w := range p.warnings {
		log.Warn().Str("lint", w).Msg("suspicious command table")
	}

	log.Debug().
		Int("commands", len(p.commands)).
		Int("scripts", len(p.scripts)).
		Str("search_delimiter", p.searchDelim).
		Str("path_delimiter", p.pathDelim).
		Msg("query parser ready")

	return p, nil
}

// Parse resolves text. It never fails: unmatched input falls back to the
// wildcard command and empty input yields MatchNone.
func (p *QueryParser) Parse(text string) *entity.ParsedQuery {
	return p.parse(text, 0)
}

// Lint returns the warnings collected when the parser was built.
func (p *QueryParser) Lint() []string {
	return append([]string(nil), p.warnings...)
}

// Commands returns the command table in configuration order.
func (p *QueryParser) Commands() []entity.Command {
	return append([]entity.Command(nil), p.commands...)
}

// ListedCommands returns the named commands in configuration order.
func (p *QueryParser) ListedCommands() []entity.Command {
	listed := make([]entity.Command, 0, len(p.commands))
	for _, cmd := range p.commands {
		if cmd.IsListed() {
			listed = append(listed, cmd)
		}
	}
	return listed
}

// SearchDelimiter returns the configured search delimiter.
func (p *QueryParser) SearchDelimiter() string {
	return p.searchDelim
}

// PathDelimiter returns the configured path delimiter.
func (p *QueryParser) PathDelimiter() string {
	return p.pathDelim
}

func (p *QueryParser) parse(text string, depth int) *entity.ParsedQuery {
	raw := strings.TrimSpace(text)
	q := &entity.ParsedQuery{
		Raw:   raw,
		Query: raw,
		Lower: strings.ToLower(raw),
		Kind:  entity.MatchNone,
	}
	if raw == "" {
		return q
	}

	if url.LooksLikeURL(raw) {
		q.Kind = entity.MatchDirectURL
		q.Redirect = url.Normalize(raw)
		q.Color = p.colorFor(q.Redirect)
		return q
	}

	searchKey, searchRest, hasSearch := url.SplitOnce(raw, p.searchDelim)
	pathKey, pathRest, hasPath := url.SplitOnce(raw, p.pathDelim)

	if p.matchScript(q, depth, searchKey, searchRest, hasSearch, pathKey, pathRest, hasPath) {
		return q
	}

	switch {
	case p.hasCommand(raw):
		cmd := p.command(raw)
		q.Key = cmd.Key
		q.Kind = entity.MatchExactKey
		q.Redirect = cmd.URL
	case hasSearch && p.hasCommand(searchKey):
		cmd := p.command(searchKey)
		p.applySearch(q, cmd.Key, searchRest)
		q.Redirect = url.BuildSearchURL(cmd.URL, cmd.Search, entity.SearchPlaceholder, searchRest)
	case hasPath && p.hasCommand(pathKey):
		cmd := p.command(pathKey)
		p.applyPath(q, cmd.Key, pathRest)
		q.Redirect = url.BuildPathURL(cmd.URL, pathRest)
	default:
		// The whole input is the search term, delimiters included.
		wc := p.commands[p.wildcard]
		q.Kind = entity.MatchFallback
		q.Redirect = url.BuildSearchURL(wc.URL, wc.Search, entity.SearchPlaceholder, raw)
	}

	q.Color = p.colorFor(q.Redirect)
	return q
}

func (p *QueryParser) matchScript(
	q *entity.ParsedQuery,
	depth int,
	searchKey, searchRest string, hasSearch bool,
	pathKey, pathRest string, hasPath bool,
) bool {
	if keys, ok := p.scripts[q.Raw]; ok {
		q.Key = q.Raw
		q.Kind = entity.MatchExactKey
		q.Children = p.expand(keys, depth, func(cmdKey string) string { return cmdKey })
		return true
	}

	if keys, ok := p.scripts[searchKey]; ok && hasSearch {
		p.applySearch(q, searchKey, searchRest)
		q.Children = p.expand(keys, depth, func(cmdKey string) string {
			return cmdKey + p.searchDelim + searchRest
		})
		return true
	}

	if keys, ok := p.scripts[pathKey]; ok && hasPath {
		p.applyPath(q, pathKey, pathRest)
		q.Children = p.expand(keys, depth, func(cmdKey string) string {
			return cmdKey + p.pathDelim + pathRest
		})
		return true
	}

	return false
}

func (p *QueryParser) expand(keys []string, depth int, input func(cmdKey string) string) []*entity.ParsedQuery {
	if depth >= maxScriptDepth {
		return nil
	}
	children := make([]*entity.ParsedQuery, 0, len(keys))
	for _, k := range keys {
		children = append(children, p.parse(input(k), depth+1))
	}
	return children
}

func (p *QueryParser) applySearch(q *entity.ParsedQuery, key, rest string) {
	q.Key = key
	q.Kind = entity.MatchSearch
	q.Split = p.searchDelim
	q.Query = rest
	q.Lower = strings.ToLower(rest)
}

func (p *QueryParser) applyPath(q *entity.ParsedQuery, key, rest string) {
	q.Key = key
	q.Kind = entity.MatchPath
	q.Split = p.pathDelim
	q.Path = rest
}

func (p *QueryParser) hasCommand(key string) bool {
	_, ok := p.commandIndex[key]
	return ok
}

func (p *QueryParser) command(key string) entity.Command {
	return p.commands[p.commandIndex[key]]
}

// colorFor returns the colour of the first command whose host is a suffix of
// the destination host.
func (p *QueryParser) colorFor(redirect string) string {
	host := url.ExtractHost(redirect)
	if host == "" {
		return ""
	}
	for i, cmdHost := range p.commandHosts {
		if url.HostMatches(host, cmdHost) {
			return p.commands[i].Color
		}
	}
	return ""
}
