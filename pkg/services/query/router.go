// Package query answers the questions asked during an advisory session.
//
// Routing is keyword based: the first route whose trigger appears in the
// question decides which advice lines are returned.
package query

import (
	"strings"

	"github.com/de-tools/sonalyze/pkg/models/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

const NotUnderstood = "Désolé, je n'ai pas compris. Posez une autre question ou tapez 'quit'."

// exitKeywords end the session when they are the whole question.
var exitKeywords = []string{"quit", "exit", "q"}

type route struct {
	triggers []string
	answer   func(advice domain.Advice, fold func(string) string) []string
}

var routes = []route{
	{
		triggers: []string{"note", "pourquoi"},
		answer: func(advice domain.Advice, fold func(string) string) []string {
			return filterLines(advice.Insights, fold, "note", "niveau")
		},
	},
	{
		triggers: []string{"bruit", "problématique"},
		answer: func(advice domain.Advice, fold func(string) string) []string {
			return filterLines(advice.Insights, fold, "bruit")
		},
	},
	{
		triggers: []string{"faire", "recommandation"},
		answer: func(advice domain.Advice, _ func(string) string) []string {
			return append([]string{}, advice.Recommendations...)
		},
	},
}

// Response is the answer to a single question.
type Response struct {
	Lines []string
	// Done is set when the question asked to end the session.
	Done bool
}

// Answer routes a question to the matching advice lines.
func Answer(question string, advice domain.Advice) Response {
	caser := cases.Fold()
	fold := func(s string) string {
		return caser.String(norm.NFC.String(s))
	}

	q := fold(strings.TrimSpace(question))
	for _, keyword := range exitKeywords {
		if q == keyword {
			return Response{Done: true}
		}
	}

	for _, r := range routes {
		if containsAny(q, r.triggers...) {
			return Response{Lines: r.answer(advice, fold)}
		}
	}
	return Response{Lines: []string{NotUnderstood}}
}

func filterLines(lines []string, fold func(string) string, keywords ...string) []string {
	matched := []string{}
	for _, line := range lines {
		if containsAny(fold(line), keywords...) {
			matched = append(matched, line)
		}
	}
	return matched
}

func containsAny(s string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
