package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynonymSet_KeepsInsertionOrder(t *testing.T) {
	set := NewSynonymSet()
	set.Put("세금계산서", []string{"계산서", "택스인보이스"})
	set.Put("가입", []string{"회원가입"})
	set.Put("세금계산서", []string{"전자세금계산서"})

	assert.Equal(t, 2, set.Len())
	assert.Equal(t, []string{"세금계산서", "가입"}, set.Keys())

	data, err := json.Marshal(set)
	require.NoError(t, err)
	assert.Equal(t, `{"세금계산서":["전자세금계산서"],"가입":["회원가입"]}`, string(data))

	var decoded SynonymSet
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, set.Keys(), decoded.Keys())
	got, ok := decoded.Get("가입")
	require.True(t, ok)
	assert.Equal(t, []string{"회원가입"}, got)
}

func TestSynonymSet_EmptyMarshalsAsObject(t *testing.T) {
	data, err := json.Marshal(NewSynonymSet())
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestResponses_Entries(t *testing.T) {
	var nilResponses *Responses
	assert.True(t, nilResponses.IsEmpty())

	r := &Responses{}
	assert.True(t, r.IsEmpty())

	r.Set(TonePlain, "plain text")
	r.Set(ToneFormal, "formal text")

	entries := r.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, ToneFormal, entries[0].Tone)
	assert.Equal(t, TonePlain, entries[1].Tone)
}

func TestKnowledgeItem_OptionalFieldsOmitted(t *testing.T) {
	item := KnowledgeItem{
		ID:       "Q001",
		Type:     ItemTypeKnowledge,
		Title:    "질문",
		Keywords: []string{},
		Priority: 5,
	}

	data, err := json.Marshal(item)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Contains(t, raw, "keywords")
	assert.Equal(t, []interface{}{}, raw["keywords"])
	for _, key := range []string{"description", "negativeKeywords", "dateTemplate", "responses", "relatedGuides", "relatedQuestions", "followUpQuestions"} {
		assert.NotContains(t, raw, key)
	}

	// an authored but empty list is still written
	item.RelatedQuestions = []string{}
	data, err = json.Marshal(item)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"relatedQuestions":[]`)
}

func TestContentBlock_JSONShape(t *testing.T) {
	data, err := json.Marshal([]ContentBlock{
		NewTextBlock("답변"),
		NewImageBlock("/faq-images/a.png", "FAQ 이미지 1"),
	})
	require.NoError(t, err)
	assert.Equal(t,
		`[{"type":"text","content":"답변"},{"type":"image","src":"/faq-images/a.png","alt":"FAQ 이미지 1","caption":""}]`,
		string(data))
}
