package models

// DefaultFaqCategory is assigned to FAQ rows without a category
const DefaultFaqCategory = "기타"

// ContentBlockType identifies the kind of a FAQ content block
type ContentBlockType string

const (
	ContentBlockText  ContentBlockType = "text"
	ContentBlockImage ContentBlockType = "image"
)

// ContentBlock is one element of a structured FAQ answer
type ContentBlock struct {
	Type    ContentBlockType `json:"type"`
	Content string           `json:"content,omitempty"` // text blocks
	Src     string           `json:"src,omitempty"`     // image blocks
	Alt     string           `json:"alt,omitempty"`     // image blocks
	Caption *string          `json:"caption,omitempty"` // image blocks, always ""
}

// NewTextBlock returns a text block
func NewTextBlock(text string) ContentBlock {
	return ContentBlock{Type: ContentBlockText, Content: text}
}

// NewImageBlock returns an image block with an empty caption
func NewImageBlock(src, alt string) ContentBlock {
	caption := ""
	return ContentBlock{Type: ContentBlockImage, Src: src, Alt: alt, Caption: &caption}
}

// FaqItem is one question of the FAQ document. Either Content or Answer is
// set, never both; both may be empty.
type FaqItem struct {
	ID                 string         `json:"id"`
	Question           string         `json:"question"`
	Category           string         `json:"category"`
	Order              int            `json:"order"`
	Content            []ContentBlock `json:"content,omitempty"`
	Answer             string         `json:"answer,omitempty"`
	RelatedGuides      []Guide        `json:"relatedGuides,omitzero"` // nil when the cell was not authored
	RelatedKnowledgeID string         `json:"relatedKnowledgeId,omitempty"`
}

// FaqMetadata describes a generated FAQ document
type FaqMetadata struct {
	Version     string `json:"version"`
	UpdatedAt   string `json:"updated_at"`
	Description string `json:"description"`
	GeneratedBy string `json:"generated_by"`
}

// FaqDocument is the FAQ output file
type FaqDocument struct {
	Metadata   FaqMetadata `json:"metadata"`
	Categories []string    `json:"categories"`
	Items      []FaqItem   `json:"items"`
}
