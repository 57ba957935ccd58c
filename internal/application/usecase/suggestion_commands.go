package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/hH-13/tilde/internal/domain/entity"
)

// CommandsSource suggests the keys of named commands whose name starts with
// the input, so "git" offers "g" for GitHub.
type CommandsSource struct {
	sourceBase
	trie *patricia.Trie
}

type commandEntry struct {
	order int
	key   string
}

// NewCommandsSource indexes the names of listed commands.
func NewCommandsSource(spec entity.SourceSpec, commands []entity.Command) *CommandsSource {
	trie := patricia.NewTrie()
	for i, cmd := range commands {
		if !cmd.IsListed() || cmd.IsWildcard() {
			continue
		}
		name := strings.ToLower(cmd.Name)
		entry := commandEntry{order: i, key: cmd.Key}
		if existing := trie.Get(patricia.Prefix(name)); existing != nil {
			trie.Set(patricia.Prefix(name), append(existing.([]commandEntry), entry))
			continue
		}
		trie.Insert(patricia.Prefix(name), []commandEntry{entry})
	}
	return &CommandsSource{sourceBase: newSourceBase(spec), trie: trie}
}

// Suggestions returns command keys in configuration order. Searches and
// paths already name a command and get nothing.
func (s *CommandsSource) Suggestions(_ context.Context, q *entity.ParsedQuery) ([]string, error) {
	if s.IsTooShort(q.Lower) || q.IsSearch() || q.IsPath() || q.IsScript() {
		return nil, nil
	}

	var entries []commandEntry
	_ = s.trie.VisitSubtree(patricia.Prefix(q.Lower), func(_ patricia.Prefix, item patricia.Item) error {
		entries = append(entries, item.([]commandEntry)...)
		return nil
	})
	sort.Slice(entries, func(i, j int) bool { return entries[i].order < entries[j].order })

	keys := make([]string, 0, min(len(entries), s.limit))
	for _, e := range entries {
		if len(keys) == s.limit {
			break
		}
		if e.key == q.Raw {
			continue
		}
		keys = append(keys, e.key)
	}
	return keys, nil
}

// AddItem is a no-op.
func (*CommandsSource) AddItem(context.Context, *entity.ParsedQuery) error {
	return nil
}
