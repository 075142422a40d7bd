package transform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/kbsheet/internal/common"
	"github.com/ternarybob/kbsheet/internal/models"
)

func newTestBuilder() *Builder {
	return NewBuilder(common.NewDefaultConfig(), arbor.NewLogger())
}

func fullMainRow() map[string]string {
	return map[string]string{
		"ID":       " Q001 ",
		"구분":       "문제해결",
		"대분류":      "세금계산서",
		"질문":       " 세금계산서 발행이 안 돼요 ",
		"키워드":      "세금, 계산서 ,  - ,발행",
		"우선순위":     "8",
		"설명":       "발행 오류 대응",
		"제외키워드":    "취소, 환불",
		"날짜템플릿":    "예",
		"격식체답변":    "세금계산서 발행 오류는 인증서를 확인해 주시기 바랍니다.",
		"해요체답변":    "인증서를 먼저 확인해 보세요.",
		"평어체답변":    "",
		"관련가이드URL":  "발행 가이드|https://a.com|📕\n인증서 가이드|https://b.com",
		"관련 질문 목록": "인증서 갱신, 발행 취소",
		"추천 후속 질문": "-",
	}
}

func TestAddKnowledgeRow_FullRow(t *testing.T) {
	b := newTestBuilder()

	ok, err := b.AddKnowledgeRow(models.NewRow(0, fullMainRow()))
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, b.Items(), 1)

	item := b.Items()[0]
	assert.Equal(t, "Q001", item.ID)
	assert.Equal(t, models.ItemTypeCase, item.Type)
	assert.Equal(t, "세금계산서", item.Category)
	assert.Equal(t, "세금계산서 발행이 안 돼요", item.Title)
	assert.Equal(t, []string{"세금", "계산서", "발행"}, item.Keywords)
	assert.Equal(t, 8, item.Priority)
	assert.Equal(t, "발행 오류 대응", item.Description)
	assert.Equal(t, []string{"취소", "환불"}, item.NegativeKeywords)
	assert.True(t, item.DateTemplate)

	require.NotNil(t, item.Responses)
	assert.NotEmpty(t, item.Responses.Formal)
	assert.Equal(t, "인증서를 먼저 확인해 보세요.", item.Responses.Casual)
	assert.Empty(t, item.Responses.Plain)

	require.Len(t, item.RelatedGuides, 2)
	assert.Equal(t, models.DefaultGuideIcon, item.RelatedGuides[1].Icon)
	assert.Equal(t, []string{"인증서 갱신", "발행 취소"}, item.RelatedQuestions)
	assert.Nil(t, item.FollowUpQuestions, "placeholder cell leaves the field absent")
}

func TestAddKnowledgeRow_SkipsRowsWithoutIDOrTitle(t *testing.T) {
	b := newTestBuilder()

	rows := []map[string]string{
		{"ID": "", "질문": "질문"},
		{"ID": "Q1", "질문": "  "},
		{"질문": "ID 컬럼 없음"},
		{"ID": "Q2"},
	}
	for i, values := range rows {
		ok, err := b.AddKnowledgeRow(models.NewRow(i, values))
		require.NoError(t, err)
		assert.False(t, ok)
	}
	assert.Empty(t, b.Items())
}

func TestAddKnowledgeRow_Defaults(t *testing.T) {
	b := newTestBuilder()

	ok, err := b.AddKnowledgeRow(models.NewRow(0, map[string]string{
		"ID":   "Q010",
		"질문":   "안녕하세요",
		"구분":   "알수없음",
		"키워드":  "-",
		"우선순위": "",
	}))
	require.NoError(t, err)
	require.True(t, ok)

	item := b.Items()[0]
	assert.Equal(t, models.ItemTypeKnowledge, item.Type)
	assert.Equal(t, "", item.Category)
	assert.Equal(t, []string{}, item.Keywords)
	assert.Equal(t, models.DefaultPriority, item.Priority)
	assert.Nil(t, item.Responses, "item without answers is still emitted")
	assert.False(t, item.DateTemplate)
	assert.Nil(t, item.NegativeKeywords)
	assert.Nil(t, item.RelatedGuides)
}

func TestAddKnowledgeRow_TypeMapping(t *testing.T) {
	tests := map[string]models.ItemType{
		"인사":    models.ItemTypeIntent,
		"개념":    models.ItemTypeKnowledge,
		"문제해결":  models.ItemTypeCase,
		"실무가이드": models.ItemTypeKnowledge,
		"실무노하우": models.ItemTypeKnowledge,
		"Case":  models.ItemTypeCase,
		"":      models.ItemTypeKnowledge,
		"case":  models.ItemTypeKnowledge,
	}

	for code, want := range tests {
		t.Run(code, func(t *testing.T) {
			b := newTestBuilder()
			_, err := b.AddKnowledgeRow(models.NewRow(0, map[string]string{"ID": "Q", "질문": "q", "구분": code}))
			require.NoError(t, err)
			assert.Equal(t, want, b.Items()[0].Type)
		})
	}
}

func TestAddKnowledgeRow_DateTemplate(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"예", true},
		{"Y", true},
		{"yes", true},
		{"True", true},
		{"1", true},
		{"o", true},
		{"N", false},
		{"", false},
		{"아니오", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			b := newTestBuilder()
			_, err := b.AddKnowledgeRow(models.NewRow(0, map[string]string{"ID": "Q", "질문": "q", "날짜템플릿": tt.value}))
			require.NoError(t, err)
			assert.Equal(t, tt.want, b.Items()[0].DateTemplate)
		})
	}
}

func TestAddKnowledgeRow_InvalidPriority(t *testing.T) {
	row := models.NewRow(2, map[string]string{"ID": "Q020", "질문": "q", "우선순위": "높음"})

	t.Run("defaults when lenient", func(t *testing.T) {
		b := newTestBuilder()
		ok, err := b.AddKnowledgeRow(row)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 5, b.Items()[0].Priority)
	})

	t.Run("fails when strict", func(t *testing.T) {
		config := common.NewDefaultConfig()
		config.Mapping.StrictPriority = true
		b := NewBuilder(config, arbor.NewLogger())

		ok, err := b.AddKnowledgeRow(row)
		require.Error(t, err)
		assert.False(t, ok)
		assert.True(t, errors.Is(err, models.ErrNotInteger))
		assert.Contains(t, err.Error(), "Q020")
		assert.Empty(t, b.Items())
	})
}

func TestAddKnowledgeRow_PlaceholderAnswerKept(t *testing.T) {
	b := newTestBuilder()
	_, err := b.AddKnowledgeRow(models.NewRow(0, map[string]string{"ID": "Q", "질문": "q", "평어체답변": "-"}))
	require.NoError(t, err)

	require.NotNil(t, b.Items()[0].Responses)
	assert.Equal(t, "-", b.Items()[0].Responses.Plain)
}
