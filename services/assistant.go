package services

import (
	"context"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"portfolio-backend/internal/store"
	"portfolio-backend/models"
	"portfolio-backend/utils"
)

const (
	corpusLimit       = 10
	maxHighlights     = 3
	snippetFieldLimit = 200
	snippetSeparator  = " • "

	genericReply = "Thanks for reaching out! I build production-grade web apps, AI features, and clean UI systems. " +
		"Ask about projects, case studies, or share your idea and I’ll outline an approach."
	highlightsHeader = "Here are some highlights that match what you asked:"
	highlightsFooter = "Want a deeper dive or a quick estimate? I can outline a plan step-by-step."
)

// contentSource names a collection and the fields that make up its snippet.
type contentSource struct {
	collection string
	fields     []string
}

var contentSources = []contentSource{
	{store.CollectionBlogPosts, []string{"title", "tags", "content"}},
	{store.CollectionCaseStudies, []string{"title", "summary", "impact"}},
	{store.CollectionProjects, []string{"title", "description", "tech_stack"}},
}

// candidate is one corpus item prepared for keyword scoring.
type candidate struct {
	Title   string
	Snippet string
}

// Assistant answers chat messages by keyword overlap against stored content.
// It never calls an external model.
type Assistant struct {
	store store.Store
}

func NewAssistant(st store.Store) *Assistant {
	return &Assistant{store: st}
}

// Reply persists the inbound message, ranks stored content against it and
// persists and returns the generated reply. The message must already be
// trimmed and non-empty.
func (a *Assistant) Reply(ctx context.Context, message string) (string, error) {
	userChat := models.Chat{Role: models.RoleUser, Message: message, CreatedAt: time.Now().UTC()}
	if _, err := a.store.InsertOne(ctx, store.CollectionChats, userChat); err != nil {
		return "", err
	}

	corpus, err := a.buildCorpus(ctx)
	if err != nil {
		return "", err
	}

	best := rank(corpus, tokenize(message))
	reply := composeReply(best)

	assistantChat := models.Chat{Role: models.RoleAssistant, Message: reply, CreatedAt: time.Now().UTC()}
	if _, err := a.store.InsertOne(ctx, store.CollectionChats, assistantChat); err != nil {
		return "", err
	}

	return reply, nil
}

// buildCorpus assembles up to corpusLimit snippet candidates per content
// collection, in fetch order.
func (a *Assistant) buildCorpus(ctx context.Context) ([]candidate, error) {
	var corpus []candidate
	for _, src := range contentSources {
		docs, err := a.store.FindAll(ctx, src.collection)
		if err != nil {
			return nil, err
		}

		count := 0
		for _, doc := range docs {
			if count >= corpusLimit {
				break
			}
			item := store.Serialize(doc)
			title, _ := item["title"].(string)
			corpus = append(corpus, candidate{
				Title:   title,
				Snippet: buildSnippet(item, src.fields),
			})
			count++
		}
	}
	return corpus, nil
}

// buildSnippet renders the named fields of a serialized document into a
// single line, each field capped at snippetFieldLimit characters.
func buildSnippet(item map[string]interface{}, fields []string) string {
	var parts []string
	for _, f := range fields {
		var part string
		switch v := item[f].(type) {
		case string:
			part = v
		case []string:
			part = strings.Join(v, ", ")
		case map[string]string:
			keys := make([]string, 0, len(v))
			for k := range v {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			pairs := make([]string, 0, len(keys))
			for _, k := range keys {
				pairs = append(pairs, k+": "+v[k])
			}
			part = strings.Join(pairs, ", ")
		}
		if part == "" {
			continue
		}
		parts = append(parts, utils.TruncateRunes(part, snippetFieldLimit))
	}
	return strings.Join(parts, snippetSeparator)
}

// tokenize collapses the message into a set of lowercase words longer than
// two characters.
func tokenize(message string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, word := range strings.Fields(message) {
		if utf8.RuneCountInString(word) > 2 {
			tokens[strings.ToLower(word)] = struct{}{}
		}
	}
	return tokens
}

// score counts how many distinct tokens occur as substrings of the
// candidate's lowercased title plus snippet.
func score(c candidate, tokens map[string]struct{}) int {
	text := strings.ToLower(c.Title + " " + c.Snippet)
	n := 0
	for token := range tokens {
		if strings.Contains(text, token) {
			n++
		}
	}
	return n
}

// rank returns the top candidates by descending score. The sort is stable,
// so ties keep fetch order. A zero-scoring corpus still yields highlights;
// only an empty corpus produces none.
func rank(corpus []candidate, tokens map[string]struct{}) []candidate {
	ranked := make([]candidate, len(corpus))
	copy(ranked, corpus)

	sort.SliceStable(ranked, func(i, j int) bool {
		return score(ranked[i], tokens) > score(ranked[j], tokens)
	})

	if len(ranked) > maxHighlights {
		ranked = ranked[:maxHighlights]
	}
	return ranked
}

func composeReply(best []candidate) string {
	if len(best) == 0 {
		return genericReply
	}

	lines := []string{highlightsHeader}
	for _, item := range best {
		title := item.Title
		if title == "" {
			title = "Untitled"
		}
		lines = append(lines, "- "+title+": "+item.Snippet)
	}
	lines = append(lines, highlightsFooter)
	return strings.Join(lines, "\n")
}
