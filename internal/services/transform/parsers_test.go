package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/kbsheet/internal/models"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"trims and drops placeholders", "세금, 계산서 ,  - ,발행", []string{"세금", "계산서", "발행"}},
		{"blank cell", "   ", []string{}},
		{"placeholder cell", "-", []string{}},
		{"empty tokens", ",a,,b,", []string{"a", "b"}},
		{"single", "환불", []string{"환불"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitList(tt.in)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseGuides(t *testing.T) {
	t.Run("two guides, second gets default icon", func(t *testing.T) {
		guides := ParseGuides("가이드1|https://a.com|📕\n가이드2|https://b.com", models.DefaultGuideIcon)

		require.Len(t, guides, 2)
		assert.Equal(t, models.Guide{Title: "가이드1", URL: "https://a.com", Icon: "📕"}, guides[0])
		assert.Equal(t, models.Guide{Title: "가이드2", URL: "https://b.com", Icon: models.DefaultGuideIcon}, guides[1])
	})

	t.Run("malformed and blank lines dropped", func(t *testing.T) {
		guides := ParseGuides(" 제목만 \n\n-\n 가이드 | https://c.com |  \r\n", "*")

		require.Len(t, guides, 1)
		assert.Equal(t, models.Guide{Title: "가이드", URL: "https://c.com", Icon: "*"}, guides[0])
	})

	t.Run("blank and placeholder cells", func(t *testing.T) {
		assert.Empty(t, ParseGuides("", "*"))
		assert.Empty(t, ParseGuides(" - ", "*"))
		assert.NotNil(t, ParseGuides("", "*"))
	})
}

func TestImagePath(t *testing.T) {
	tests := []struct {
		line string
		path string
		ok   bool
	}{
		{"이미지: step1.png", "step1.png", true},
		{"이미지:/static/a.svg", "/static/a.svg", true},
		{"  capture.JPG ", "capture.JPG", true},
		{"guide.webp", "guide.webp", true},
		{"anim.gif", "anim.gif", true},
		{"photo.jpeg", "photo.jpeg", true},
		{"설명 텍스트입니다", "", false},
		{"이미지:", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			path, ok := imagePath(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.path, path)
		})
	}
}

func TestResolveImageSrc(t *testing.T) {
	assert.Equal(t, "/faq-images/a.png", resolveImageSrc("a.png", "/faq-images/"))
	assert.Equal(t, "/faq-images/a.png", resolveImageSrc("a.png", "/faq-images"))
	assert.Equal(t, "/static/a.png", resolveImageSrc("/static/a.png", "/faq-images/"))
	assert.Equal(t, "a.png", resolveImageSrc("a.png", ""))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "짧은", truncate("짧은", 30))
	assert.Equal(t, "가나...", truncate("가나다라", 2))
}
