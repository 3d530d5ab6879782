package models

// SuggestionResponse wraps a single suggestion text
type SuggestionResponse struct {
	Suggestion string `json:"suggestion"`
}

// SuggestionList is the response body of the income and expense endpoints
type SuggestionList struct {
	Suggestions []SuggestionResponse `json:"suggestions"`
}

// NewSuggestionList wraps plain suggestion texts
func NewSuggestionList(texts ...string) SuggestionList {
	list := SuggestionList{Suggestions: make([]SuggestionResponse, 0, len(texts))}
	for _, t := range texts {
		list.Suggestions = append(list.Suggestions, SuggestionResponse{Suggestion: t})
	}
	return list
}

// Texts returns the suggestion strings in order
func (l SuggestionList) Texts() []string {
	out := make([]string, 0, len(l.Suggestions))
	for _, s := range l.Suggestions {
		out = append(out, s.Suggestion)
	}
	return out
}

// SavingsSuggestions is the response body of the savings endpoint
type SavingsSuggestions struct {
	Suggestions []string `json:"suggestions"`
}
