package models

import (
	"bytes"
	"encoding/json"
)

// DefaultGuideIcon is used when a guide entry carries no icon
const DefaultGuideIcon = "📘"

// DefaultPriority applies when the priority cell is blank
const DefaultPriority = 5

// ItemType classifies a knowledge item for the chatbot engine
type ItemType string

const (
	ItemTypeIntent    ItemType = "intent"
	ItemTypeKnowledge ItemType = "knowledge"
	ItemTypeCase      ItemType = "case"
)

// Tone names the register an answer is written in
type Tone string

const (
	ToneFormal Tone = "formal"
	ToneCasual Tone = "casual"
	TonePlain  Tone = "plain"
)

// Tones lists answer registers in output order
var Tones = []Tone{ToneFormal, ToneCasual, TonePlain}

// Guide is a link shown next to an answer
type Guide struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Icon  string `json:"icon"`
}

// Responses holds the answer text per tone; empty tones are omitted
type Responses struct {
	Formal string `json:"formal,omitempty"`
	Casual string `json:"casual,omitempty"`
	Plain  string `json:"plain,omitempty"`
}

// ResponseEntry is one tone/text pair
type ResponseEntry struct {
	Tone Tone
	Text string
}

// Set stores text under tone
func (r *Responses) Set(tone Tone, text string) {
	switch tone {
	case ToneFormal:
		r.Formal = text
	case ToneCasual:
		r.Casual = text
	case TonePlain:
		r.Plain = text
	}
}

// Entries returns the present tones in formal, casual, plain order
func (r *Responses) Entries() []ResponseEntry {
	if r == nil {
		return nil
	}
	var out []ResponseEntry
	for _, tone := range Tones {
		var text string
		switch tone {
		case ToneFormal:
			text = r.Formal
		case ToneCasual:
			text = r.Casual
		case TonePlain:
			text = r.Plain
		}
		if text != "" {
			out = append(out, ResponseEntry{Tone: tone, Text: text})
		}
	}
	return out
}

// IsEmpty reports whether no tone carries text
func (r *Responses) IsEmpty() bool {
	return len(r.Entries()) == 0
}

// KnowledgeItem is one question/answer record of the knowledge base
type KnowledgeItem struct {
	ID       string   `json:"id" validate:"required"`
	Type     ItemType `json:"type" validate:"oneof=intent knowledge case"`
	Category string   `json:"category"`
	Title    string   `json:"title" validate:"required"`
	Keywords []string `json:"keywords"`
	Priority int      `json:"priority"`

	// Optional fields, omitted from output when not authored
	Description       string     `json:"description,omitempty"`
	NegativeKeywords  []string   `json:"negativeKeywords,omitzero"`
	DateTemplate      bool       `json:"dateTemplate,omitempty"` // only ever written as true
	Responses         *Responses `json:"responses,omitempty"`
	RelatedGuides     []Guide    `json:"relatedGuides,omitzero"`
	RelatedQuestions  []string   `json:"relatedQuestions,omitzero"`
	FollowUpQuestions []string   `json:"followUpQuestions,omitzero"`
}

// KnowledgeMetadata describes a generated knowledge-base document
type KnowledgeMetadata struct {
	Version     string `json:"version"`
	UpdatedAt   string `json:"updated_at"` // YYYY-MM-DD
	Description string `json:"description"`
	TotalItems  int    `json:"total_items"`
	GeneratedBy string `json:"generated_by"`
}

// KnowledgeDocument is the knowledge-base output file
type KnowledgeDocument struct {
	Metadata KnowledgeMetadata `json:"metadata"`
	Synonyms *SynonymSet       `json:"synonyms"`
	Items    []KnowledgeItem   `json:"items"`
}

// SynonymSet maps a representative word to its synonyms, keeping the order
// in which representative words were first seen.
type SynonymSet struct {
	keys   []string
	values map[string][]string
}

// NewSynonymSet returns an empty set
func NewSynonymSet() *SynonymSet {
	return &SynonymSet{values: make(map[string][]string)}
}

// Put stores synonyms under word. A repeated word keeps its first position
// and takes the latest synonyms.
func (s *SynonymSet) Put(word string, synonyms []string) {
	if _, ok := s.values[word]; !ok {
		s.keys = append(s.keys, word)
	}
	s.values[word] = synonyms
}

// Get returns the synonyms stored under word
func (s *SynonymSet) Get(word string) ([]string, bool) {
	v, ok := s.values[word]
	return v, ok
}

// Keys returns representative words in insertion order
func (s *SynonymSet) Keys() []string {
	return append([]string(nil), s.keys...)
}

// Len returns the number of representative words
func (s *SynonymSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

// MarshalJSON writes the set as a JSON object in insertion order
func (s *SynonymSet) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range s.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalNoEscape(k)
		if err != nil {
			return nil, err
		}
		val, err := marshalNoEscape(s.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, preserving key order
func (s *SynonymSet) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return err
	}
	s.keys = nil
	s.values = make(map[string][]string)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)
		var val []string
		if err := dec.Decode(&val); err != nil {
			return err
		}
		s.Put(key, val)
	}
	_, err := dec.Token()
	return err
}

func marshalNoEscape(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
