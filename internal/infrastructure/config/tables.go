package config

import (
	"sort"

	"github.com/hH-13/tilde/internal/domain/entity"
	"github.com/hH-13/tilde/internal/infrastructure/colors"
)

// Palette returns the colour palette configured under [appearance].
func (c *Config) Palette() colors.Palette {
	return colors.NewPalette(c.Appearance.Saturation, c.Appearance.Lightness)
}

// CommandTable converts the configured commands, deriving colours from hues
// for named commands without an explicit colour.
func (c *Config) CommandTable() []entity.Command {
	palette := c.Palette()
	commands := make([]entity.Command, 0, len(c.Commands))
	for _, cc := range c.Commands {
		cmd := entity.Command{
			Key:    cc.Key,
			Name:   cc.Name,
			URL:    cc.URL,
			Search: cc.Search,
			Color:  cc.Color,
			Hues:   append([]float64(nil), cc.Hues...),
		}
		if cmd.Color == "" && cmd.IsListed() {
			cmd.Color, cmd.Gradient = palette.Derive(cmd.Hues)
		}
		commands = append(commands, cmd)
	}
	return commands
}

// ScriptTable converts the configured scripts, sorted by key.
func (c *Config) ScriptTable() []entity.Script {
	keys := make([]string, 0, len(c.Scripts))
	for k := range c.Scripts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	scripts := make([]entity.Script, 0, len(keys))
	for _, k := range keys {
		scripts = append(scripts, entity.Script{
			Key:         k,
			CommandKeys: append([]string(nil), c.Scripts[k]...),
		})
	}
	return scripts
}

// SourceSpecs converts the configured suggestion sources in order.
func (c *Config) SourceSpecs() []entity.SourceSpec {
	specs := make([]entity.SourceSpec, 0, len(c.Suggestions.Sources))
	for _, s := range c.Suggestions.Sources {
		specs = append(specs, entity.SourceSpec{
			Name:     entity.SourceName(s.Name),
			Limit:    s.Limit,
			MinChars: s.MinChars,
		})
	}
	return specs
}
