// Package analyzer counts how many words of a phrase fall under each category
// of a taxonomy at a chosen depth.
package analyzer

import (
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"wordtree/internal/models"
)

// Phrase is a tokenized phrase whose tokens are already in capitalized form.
type Phrase []string

// NewPhrase splits text on whitespace runs and capitalizes every token.
// A blank text yields an empty phrase.
func NewPhrase(text string) Phrase {
	fields := strings.Fields(text)
	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)

	phrase := make(Phrase, 0, len(fields))
	for _, field := range fields {
		phrase = append(phrase, capitalize(field, upper, lower))
	}
	return phrase
}

// capitalize returns word with its first letter upper-cased and the rest lower-cased.
func capitalize(word string, upper, lower cases.Caser) string {
	if word == "" {
		return word
	}
	_, size := utf8.DecodeRuneInString(word)
	return upper.String(word[:size]) + lower.String(word[size:])
}

/*
Analyze walks root down to targetDepth-1 and, for every category found at that
level, counts the phrase tokens matched anywhere in its subtree.

Only Branch children are followed on the way down. A target depth of zero or
less, or one deeper than the tree, produces an empty report.
*/
func Analyze(root models.Node, text string, targetDepth int) models.Report {
	return traverse(root, NewPhrase(text), targetDepth, 0)
}

func traverse(node models.Node, phrase Phrase, targetDepth, currentDepth int) models.Report {
	report := models.Report{}
	branch, ok := node.(models.Branch)
	if !ok {
		return report
	}

	switch {
	case currentDepth == targetDepth-1:
		for category, subtree := range branch {
			report.Add(category, CountMatches(phrase, subtree))
		}
	case currentDepth < targetDepth-1:
		for _, child := range branch {
			if _, ok := child.(models.Branch); !ok {
				continue
			}
			report.Merge(traverse(child, phrase, targetDepth, currentDepth+1))
		}
	}
	return report
}

// CountMatches returns the total number of tokens found in the leaves of subtree,
// counting each token once per leaf that contains it. Depth is unbounded.
func CountMatches(phrase Phrase, subtree models.Node) int {
	switch n := subtree.(type) {
	case models.Leaf:
		count := 0
		for _, token := range phrase {
			if slices.Contains(n, token) {
				count++
			}
		}
		return count
	case models.Branch:
		count := 0
		for _, child := range n {
			count += CountMatches(phrase, child)
		}
		return count
	default:
		return 0
	}
}
