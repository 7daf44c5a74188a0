package main

type collectionSeed struct {
	Name        string
	Description string
	Color       string
}

type agentSeed struct {
	Title       string
	Description string
	Prompt      string
	Tools       []string
	Collection  string
}

var seedCollections = []collectionSeed{
	{
		Name:        "Research",
		Description: "Agents for deep web research and source gathering",
		Color:       "#3b82f6",
	},
	{
		Name:        "Writing",
		Description: "Agents that draft, edit, and summarize text",
		Color:       "#10b981",
	},
	{
		Name:        "Analysis",
		Description: "Agents for comparing sources and extracting structure",
		Color:       "#f59e0b",
	},
}

var seedAgents = []agentSeed{
	{
		Title:       "Literature Scout",
		Description: "Finds primary sources and academic references for a topic",
		Prompt:      "You are a research assistant. Given a topic, locate authoritative primary sources and summarize why each is relevant. Prefer recent publications and cite every claim.",
		Tools:       []string{"parallel_search", "exa_search"},
		Collection:  "Research",
	},
	{
		Title:       "Site Mapper",
		Description: "Crawls a website and reports its structure and key pages",
		Prompt:      "You map websites. Given a URL, crawl its pages and produce an outline of the site structure with a one-line description per page.",
		Tools:       []string{"exa_crawl", "webpage_understanding"},
		Collection:  "Research",
	},
	{
		Title:       "Brief Writer",
		Description: "Turns research notes into a structured briefing document",
		Prompt:      "You write concise briefing documents. Given raw notes, produce a structured brief with a summary, key findings, and open questions.",
		Tools:       []string{},
		Collection:  "Writing",
	},
	{
		Title:       "Source Comparer",
		Description: "Finds pages similar to a reference and contrasts their claims",
		Prompt:      "You compare sources. Given a reference URL, find similar pages and produce a table contrasting their main claims and evidence.",
		Tools:       []string{"exa_find_similar", "web_search"},
		Collection:  "Analysis",
	},
	{
		Title:       "Quick Answer",
		Description: "Answers factual questions with a single web search",
		Prompt:      "Answer factual questions directly. Run one search, verify the answer against two results, and respond in a single paragraph with citations.",
		Tools:       []string{"web_search"},
	},
}
