package agents

// Tool describes one entry in the fixed tool catalog.
type Tool struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Catalog is the fixed set of tools an agent configuration may reference.
var Catalog = []Tool{
	{Value: "parallel_search", Label: "Parallel Search"},
	{Value: "exa_search", Label: "Exa Search"},
	{Value: "exa_crawl", Label: "Exa Crawl"},
	{Value: "exa_find_similar", Label: "Exa Find Similar"},
	{Value: "web_search", Label: "Google Web Search"},
	{Value: "webpage_understanding", Label: "Jina Webpage Understanding"},
}

// ValidTool reports whether the identifier is part of the catalog.
func ValidTool(value string) bool {
	for _, tool := range Catalog {
		if tool.Value == value {
			return true
		}
	}
	return false
}

// dedupeTools removes duplicate identifiers while preserving first-seen
// order. Tool lists are sets; duplicates carry no meaning.
func dedupeTools(tools []string) []string {
	if len(tools) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(tools))
	result := make([]string, 0, len(tools))

	for _, tool := range tools {
		if _, ok := seen[tool]; ok {
			continue
		}
		seen[tool] = struct{}{}
		result = append(result, tool)
	}
	return result
}
