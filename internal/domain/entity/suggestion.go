package entity

// SourceName identifies a suggestion source variant.
type SourceName string

const (
	SourceDefault    SourceName = "Default"
	SourceHistory    SourceName = "History"
	SourceDuckDuckGo SourceName = "DuckDuckGo"
	SourceCommands   SourceName = "Commands"
)

// SourceSpec configures one suggestion source.
type SourceSpec struct {
	Name SourceName
	// Limit is the maximum number of suggestions the source contributes.
	Limit int
	// MinChars is the query length below which the source stays silent.
	MinChars int
}
