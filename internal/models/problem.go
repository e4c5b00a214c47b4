package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/gosimple/slug"
	"gopkg.in/yaml.v3"
)

// ProblemID identifies a problem. Documents in the wild carry it either as a
// JSON string or as an integer, so both are accepted; it is always rendered as a string.
type ProblemID string

func (id ProblemID) String() string { return string(id) }

func (id *ProblemID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ProblemID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("problem id must be a string or a number: %w", err)
	}
	if _, err := n.Int64(); err != nil {
		return fmt.Errorf("problem id must be an integer: %s", n)
	}
	*id = ProblemID(n.String())
	return nil
}

func (id *ProblemID) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("problem id must be a scalar, line %d", node.Line)
	}
	*id = ProblemID(strings.TrimSpace(node.Value))
	return nil
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// ParseDifficulty matches case-insensitively. ok is false for anything else.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, true
	case "medium":
		return DifficultyMedium, true
	case "hard":
		return DifficultyHard, true
	}
	return Difficulty(s), false
}

type Option struct {
	ID   string `json:"id" yaml:"id"`
	Text string `json:"text" yaml:"text"`
}

type Problem struct {
	ID            ProblemID  `json:"id" yaml:"id"`
	Title         string     `json:"title" yaml:"title"`
	Description   string     `json:"description" yaml:"description"`
	Topic         string     `json:"topic" yaml:"topic"`
	Difficulty    Difficulty `json:"difficulty" yaml:"difficulty"`
	Options       []Option   `json:"options" yaml:"options"`
	CorrectAnswer string     `json:"correct_answer" yaml:"correct_answer"`
	Hints         []string   `json:"hints,omitempty" yaml:"hints,omitempty"`
}

// problemDoc mirrors Problem but also carries the legacy "category" field.
type problemDoc struct {
	ID            ProblemID `json:"id" yaml:"id"`
	Title         string    `json:"title" yaml:"title"`
	Description   string    `json:"description" yaml:"description"`
	Topic         string    `json:"topic" yaml:"topic"`
	Category      string    `json:"category" yaml:"category"`
	Difficulty    string    `json:"difficulty" yaml:"difficulty"`
	Options       []Option  `json:"options" yaml:"options"`
	CorrectAnswer string    `json:"correct_answer" yaml:"correct_answer"`
	Hints         []string  `json:"hints" yaml:"hints"`
}

func (d problemDoc) toProblem() Problem {
	topic := d.Topic
	if topic == "" {
		topic = d.Category
	}
	difficulty, ok := ParseDifficulty(d.Difficulty)
	if !ok {
		difficulty = Difficulty(strings.TrimSpace(d.Difficulty))
	}
	return Problem{
		ID:            d.ID,
		Title:         d.Title,
		Description:   d.Description,
		Topic:         topic,
		Difficulty:    difficulty,
		Options:       d.Options,
		CorrectAnswer: d.CorrectAnswer,
		Hints:         d.Hints,
	}
}

func (p *Problem) UnmarshalJSON(data []byte) error {
	var d problemDoc
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	*p = d.toProblem()
	return nil
}

func (p *Problem) UnmarshalYAML(node *yaml.Node) error {
	var d problemDoc
	if err := node.Decode(&d); err != nil {
		return err
	}
	*p = d.toProblem()
	return nil
}

// Validate checks the fields a problem needs before it can be stored.
func (p Problem) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("problem id is required")
	}
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("problem %s: title is required", p.ID)
	}
	if strings.TrimSpace(p.CorrectAnswer) == "" {
		return fmt.Errorf("problem %s: correct_answer is required", p.ID)
	}
	if _, ok := ParseDifficulty(string(p.Difficulty)); !ok {
		return fmt.Errorf("problem %s: unknown difficulty %q", p.ID, p.Difficulty)
	}
	if len(p.Options) == 0 {
		return fmt.Errorf("problem %s: at least one option is required", p.ID)
	}
	for _, o := range p.Options {
		if strings.EqualFold(strings.TrimSpace(o.ID), strings.TrimSpace(p.CorrectAnswer)) {
			return nil
		}
	}
	return fmt.Errorf("problem %s: correct_answer %q does not match any option", p.ID, p.CorrectAnswer)
}

// ProblemFilter narrows problem listings. Zero values match everything.
type ProblemFilter struct {
	TopicSlug  string
	Difficulty Difficulty
}

type Topic struct {
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	ProblemCount int    `json:"problemCount"`
}

// DecodeProblems accepts either a bare JSON array or the {"problems": [...]} wrapper.
func DecodeProblems(data []byte) ([]Problem, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return []Problem{}, nil
	}
	if data[0] == '{' {
		var wrapped struct {
			Problems []Problem `json:"problems"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return nil, err
		}
		if wrapped.Problems == nil {
			wrapped.Problems = []Problem{}
		}
		return wrapped.Problems, nil
	}
	var problems []Problem
	if err := json.Unmarshal(data, &problems); err != nil {
		return nil, err
	}
	if problems == nil {
		problems = []Problem{}
	}
	return problems, nil
}

// TopicSlug is the URL form of a topic name used by ?topic= filters.
func TopicSlug(topic string) string {
	return slug.Make(topic)
}

// Matches reports whether p passes every non-zero field of f.
func (f ProblemFilter) Matches(p Problem) bool {
	if f.TopicSlug != "" && TopicSlug(p.Topic) != f.TopicSlug {
		return false
	}
	if f.Difficulty != "" && p.Difficulty != f.Difficulty {
		return false
	}
	return true
}

// SortProblems orders problems by id, numerically when both ids are integers.
func SortProblems(problems []Problem) {
	sort.SliceStable(problems, func(i, j int) bool {
		return lessID(problems[i].ID, problems[j].ID)
	})
}

func lessID(a, b ProblemID) bool {
	na, errA := strconv.ParseInt(string(a), 10, 64)
	nb, errB := strconv.ParseInt(string(b), 10, 64)
	switch {
	case errA == nil && errB == nil:
		return na < nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	}
	return a < b
}

// BuildTopics groups problems by topic, sorted by name. Problems without a topic are skipped.
func BuildTopics(problems []Problem) []Topic {
	counts := make(map[string]int)
	for _, p := range problems {
		if strings.TrimSpace(p.Topic) == "" {
			continue
		}
		counts[p.Topic]++
	}
	topics := make([]Topic, 0, len(counts))
	for name, n := range counts {
		topics = append(topics, Topic{Name: name, Slug: TopicSlug(name), ProblemCount: n})
	}
	sort.Slice(topics, func(i, j int) bool { return topics[i].Name < topics[j].Name })
	return topics
}

// NormalizeAnswer trims surrounding whitespace from a submitted answer.
func NormalizeAnswer(answer string) string {
	return strings.TrimSpace(answer)
}

// Check compares answer with the correct answer, ignoring case and surrounding whitespace.
func (p Problem) Check(answer string) bool {
	return strings.EqualFold(NormalizeAnswer(answer), NormalizeAnswer(p.CorrectAnswer))
}
