package i18n

var koreanTranslations = map[string]string{
	"build.done":          "✓ PPT 완성! (%s, 슬라이드 %d장)",
	"build.overflow":      "⚠ 슬라이드 %d: 요소 %d(%s)이 영역을 벗어남 (%s, 필요 %.2fin / 가용 %.2fin)",
	"build.overflow_fail": "영역을 벗어난 요소 %d개: 저장하지 않습니다",
	"build.side_artifact": "  • %s: %s",
	"build.changed":       "이전 빌드와 내용이 다릅니다 (이전 %s)",
	"build.unchanged":     "이전 빌드와 내용이 같습니다",
	"verify.ok":           "✓ 검증 통과: %s (슬라이드 %d장)",
	"verify.failed":       "✗ 검증 실패: %s",
	"history.empty":       "빌드 기록이 없습니다",
	"history.header":      "실행 ID                               시각                 백엔드  슬라이드  바이트    지문",
	"error.config":        "설정 오류: %v",
	"error.build":         "빌드 실패: %v",
	"error.ledger":        "빌드 기록 오류: %v",
	"label.excel":         "표 통합문서",
	"label.handout":       "PDF 유인물",
	"warn.handout_font":   "⚠ 유인물 글꼴이 없습니다: 한글이 표시되지 않습니다 (-handout-font)",
}

var englishTranslations = map[string]string{
	"build.done":          "✓ Deck complete! (%s, %d slides)",
	"build.overflow":      "⚠ slide %d: element %d (%s) does not fit (%s, needs %.2fin, has %.2fin)",
	"build.overflow_fail": "%d elements do not fit: not saving",
	"build.side_artifact": "  • %s: %s",
	"build.changed":       "content differs from the previous build (%s)",
	"build.unchanged":     "content is the same as the previous build",
	"verify.ok":           "✓ Verified: %s (%d slides)",
	"verify.failed":       "✗ Verification failed: %s",
	"history.empty":       "No builds recorded",
	"history.header":      "Run ID                                 Time                 Backend Slides    Bytes     Fingerprint",
	"error.config":        "Configuration error: %v",
	"error.build":         "Build failed: %v",
	"error.ledger":        "Build history error: %v",
	"label.excel":         "table workbook",
	"label.handout":       "PDF handout",
	"warn.handout_font":   "⚠ no handout font set: Hangul will not render (-handout-font)",
}
