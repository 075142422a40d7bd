package transform

// Main Q&A sheet headers
const (
	colID                = "ID"
	colType              = "구분"
	colCategory          = "대분류"
	colQuestion          = "질문"
	colKeywords          = "키워드"
	colPriority          = "우선순위"
	colDescription       = "설명"
	colNegativeKeywords  = "제외키워드"
	colDateTemplate      = "날짜템플릿"
	colFormalAnswer      = "격식체답변"
	colCasualAnswer      = "해요체답변"
	colPlainAnswer       = "평어체답변"
	colRelatedGuides     = "관련가이드URL"
	colRelatedQuestions  = "관련 질문 목록"
	colFollowUpQuestions = "추천 후속 질문"
)

// Synonym sheet headers
const (
	colRepresentative = "대표어"
	colSynonymPrefix  = "동의어"
	maxSynonymColumns = 5
)

// FAQ sheet headers
const (
	colFaqCategory      = "카테고리"
	colFaqOrder         = "표시순서"
	colFaqAnswer        = "답변"
	colFaqContent       = "컨텐츠"
	colFaqKnowledgeLink = "챗봇 지식베이스 연결"
)
