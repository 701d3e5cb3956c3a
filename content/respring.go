// Package content holds the Re:Spring business plan, slide by slide.
package content

import "respring/deck"

// Document properties of the deck.
const (
	Title  = "Re:Spring"
	Author = "민소은"
)

// SlideCount is the number of slides ReSpring returns.
const SlideCount = 17

func bold(size deck.Points) deck.Style { return deck.Style{Size: size, Bold: true} }
func plain(size deck.Points) deck.Style { return deck.Style{Size: size} }
func accent(size deck.Points, c deck.Color) deck.Style { return deck.Style{Size: size, Bold: true, Color: c} }

// ReSpring returns the seventeen slides in presentation order.
func ReSpring() []deck.SlideSpec {
	return []deck.SlideSpec{
		cover(),
		vision(),
		motive(),
		businessModel(),
		products(),
		swot(),
		marketing(),
		staffing(),
		wages(),
		programs(),
		investment(),
		funding(),
		fiveYearPlan(),
		incomeStatement(),
		breakEven(),
		socialValue(),
		closing(),
	}
}

func cover() deck.SlideSpec {
	return deck.TitleSlide{
		SmallLabel: "비영리조직 사업(창업)계획서",
		Title:      "Re:Spring",
		Subtitle:   "취약계층의 자립을 돕는 친환경 업사이클링 제조 솔루션",
		FooterLines: []string{
			"과목: 비영리조직 창업 및 운영",
			"제출자: 사회복지학과 202531606 민소은",
		},
	}
}

func vision() deck.SlideSpec {
	items := []struct{ head, body string }{
		{"설립 목적", "단순 현금 지원이 아닌 '제조업 일자리'를 통해 취약계층의 경제적/정서적 완전 자립 실현."},
		{"기관 비전 (2030)", "지역사회 1호 '장애인 표준사업장 인증' 친환경 제조 전문 기업 도약."},
		{"핵심 가치", "치유(Healing)\n전문(Pro)\n순환(Eco)"},
	}
	blocks := []deck.Block{
		deck.Text(deck.At(1.5, 1.6, 7, 0.6),
			deck.T(`"환경과 복지의 교차점에서 지속 가능한 일자리를 창출한다"`, deck.Style{Size: 22, Bold: true, Align: deck.AlignCenter})),
	}
	for i, f := range deck.Columns(len(items), 0.8, 3, 2.8, 2.7, 3.2) {
		blocks = append(blocks, deck.Labeled(f, items[i].head, bold(15), plain(13), items[i].body))
	}
	return deck.ContentSlide{Title: "① 회사소개: 기관의 비전, 목적", Blocks: blocks}
}

func motive() deck.SlideSpec {
	return deck.ContentSlide{
		Title: "② 사업소개: 창업배경 및 창업동기",
		Blocks: []deck.Block{
			deck.Labeled(deck.At(0.8, 1.6, 4.2, 4), "창업 배경 (문제인식)", bold(17), plain(13),
				"• 복지 사각지대: 관내 발달장애인/노인 취업률 20% 미만. 기존 단순 임가공 일자리는 '지속 가능한 급여' 지급 불가.",
				"• 환경 위기: 플라스틱 소각 비용 급증 및 기업 ESG 실적 압박 심화.",
			),
			deck.Text(deck.At(5.2, 1.6, 4.2, 4), deck.Stack(
				deck.T("창업 동기", bold(17)),
				deck.T(`"45세 사회복지 전문가로서 현장의 한계를 절감했습니다."`, bold(15)),
				deck.T("후원금에 의존하는 복지는 지속 가능하지 않습니다. '제품 경쟁력'으로 당당하게 월급을 주는 기업을 만들기 위해 창업을 결심했습니다.", plain(13)),
			)...),
		},
	}
}

func businessModel() deck.SlideSpec {
	models := []struct{ head, body string }{
		{"1. 오프라인 (B2G/B2B)", "대상: 관공서, 보건소, 대기업 ESG팀\n• '중증장애인생산품 우선구매' 활용 수의계약\n• 기업 사내 캠페인 + 굿즈 납품"},
		{"2. 온라인 (D2C)", "대상: 가치소비 MZ세대\n• 자사몰 및 스마트스토어 운영\n• 와디즈/텀블벅 펀딩을 통한 신제품 런칭"},
		{"3. 글로벌 사업 (Global)", "대상: 베트남 등 동남아 시장\n• 5년 차 해외 판로 개척\n• 한국형 업사이클링 디자인(K-Eco) 수출"},
	}
	blocks := []deck.Block{
		deck.Text(deck.At(0.8, 1.4, 8, 0.3), deck.T("안정적인 수익 구조 확보를 위한 다각화 전략", plain(14))),
	}
	for i, f := range deck.Columns(len(models), 0.8, 3, 2.2, 2.7, 3.5) {
		blocks = append(blocks, deck.Labeled(f, models[i].head, bold(14), plain(12), deck.Split(models[i].body)...))
	}
	return deck.ContentSlide{Title: "② 비즈니스 모델 (온/오프라인, 글로벌)", Blocks: blocks}
}

func products() deck.SlideSpec {
	return deck.ContentSlide{
		Title: "핵심 제품 소개 (Signature Products)",
		Blocks: []deck.Block{
			deck.Text(deck.At(1, 1.8, 4, 3.5),
				deck.T("1. 마블링 화분", bold(15)),
				deck.T("폐플라스틱 고유의 패턴을 살린 세상에 하나뿐인 디자인.\n기업 로고 각인 서비스 제공.", plain(13)),
				deck.T("예상가: 12,000원", deck.Style{Bold: true, Color: deck.Green}),
				deck.Gap(),
				deck.T("2. 아웃도어 카라비너", bold(15)),
				deck.T("고강도 플라스틱(HDPE)을 활용한 캠핑/등산용 굿즈.\n내구성 테스트 완료.", plain(13)),
				deck.T("예상가: 3,500원", deck.Style{Bold: true, Color: deck.Blue}),
			),
			deck.Text(deck.At(5.5, 2.2, 3.8, 3), deck.Stack(
				deck.T("제품 차별성", bold(17)),
				deck.T("자체 내구성 테스트 완료, 고품질 원료 사용으로 저가 제품 대비 우수한 품질.", plain(13)),
				deck.T("제품 하단 'Made by 000(근로자 실명)' 각인 서비스.", bold(13)),
			)...),
		},
	}
}

func swot() deck.SlideSpec {
	quads := []struct {
		head, body string
		color      deck.Color
	}{
		{"Strength (강점)", "• 복지 전문가(대표) + 기술 전문가(공장장) 시너지\n• 정부 인건비 지원 수혜 (가격 경쟁력 확보)\n• 독창적인 금형 디자인 보유", deck.Blue},
		{"Weakness (약점)", "• 초기 브랜드 인지도 부족\n• 전용 설비(사출기) 구축 초기 투자비용 부담", deck.Red},
		{"Opportunity (기회)", "• 공공기관 우선구매 시장(20조원) 확대\n• 기업 ESG 경영 강화로 친환경 굿즈 수요 폭증\n• 가치소비 트렌드 확산", deck.Green},
		{"Threat (위협)", "• 저가 중국산 제품과의 가격 경쟁\n• 유사 업사이클링 업체의 난립", deck.Orange},
	}
	var blocks []deck.Block
	for i, f := range deck.Grid2x2(0.8, 1.8, 4.4, 2.4, 4, 2) {
		q := quads[i]
		blocks = append(blocks, deck.Labeled(f, q.head, accent(15, q.color), plain(12), deck.Split(q.body)...))
	}
	return deck.ContentSlide{Title: "④ 시장분석: SWOT 분석", Blocks: blocks}
}

func marketing() deck.SlideSpec {
	channels := deck.Text(deck.At(5.2, 1.8, 4, 4.5), deck.T("단계별 판로 개척", bold(16)), deck.Gap())
	for i, stage := range []string{
		"1단계 (공공): 나라장터, 꿈드래 쇼핑몰 입점.",
		"2단계 (온라인): 네이버 스마트스토어, 와디즈 펀딩.",
		"3단계 (제휴): 제로웨이스트 샵 20개소 입점.",
		"4단계 (수출): KOTRA 연계 해외 전시회 참가.",
	} {
		if i > 0 {
			channels.Lines = append(channels.Lines, deck.Gap())
		}
		channels.Lines = append(channels.Lines, deck.T(stage, plain(12)))
	}
	return deck.ContentSlide{
		Title: "④ 마케팅 전략 및 판로 제시",
		Blocks: []deck.Block{
			deck.Text(deck.At(1, 1.8, 4, 3.5),
				deck.T("홍보 전략", bold(16)),
				deck.T(`"제품이 아닌 가치를 팝니다"`, bold(14)),
				deck.Gap(),
				deck.T("• 스토리텔링: 제품 QR코드로 제작자(장애인)의 작업 영상 연결.", plain(12)),
				deck.T("• 체험단 운영: 지역 맘카페 연계 '나만의 화분 만들기' 체험단.", plain(12)),
			),
			channels,
		},
	}
}

// threeCards lays out the recurring three-column "heading, subheading,
// description" cards.
func threeCards(y, h deck.Inches, hs, ss, ds deck.Style, cards [][3]string) []deck.Block {
	var blocks []deck.Block
	for i, f := range deck.Columns(len(cards), 0.8, 3, y, 2.7, h) {
		c := cards[i]
		blocks = append(blocks, deck.Text(f, deck.Stack(deck.T(c[0], hs), deck.T(c[1], ss), deck.T(c[2], ds))...))
	}
	return blocks
}

func staffing() deck.SlideSpec {
	return deck.ContentSlide{
		Title: "③ 사업계획: 인력구성 (HR)",
		Blocks: threeCards(2.2, 3.5, bold(14), bold(13), plain(11), [][3]string{
			{"대표 민소은 (본인)", "사회복지 전문가 (1급)", "인력 관리 및 직무 지도, 지자체/관공서 영업 총괄."},
			{"기술 이사 (CTO)", "생산 총괄 (경력 20년)", "사출 금형 설계, 공장장 출신, 생산 라인 및 품질 관리."},
			{"현장 근로자 (3명)", "취약계층 우선 채용", "경력단절여성 및 장애인, 지역 사회복지관 추천 채용."},
		}),
	}
}

// WageTable is the salary plan shown on slide 9.
var WageTable = [][]string{
	{"구분", "대상", "월 급여 (세전)", "비고"},
	{"대표", "대표 민소은", "무급", "초기 3년간 무급 (재투자)"},
	{"관리직", "기술이사", "3,000,000원", "경력직 대우"},
	{"현장직", "취약계층 근로자", "2,096,270원", "최저임금 준수"},
}

func wages() deck.SlideSpec {
	return deck.ContentSlide{
		Title: "③ 사업계획: 인력 운영 및 임금 (2025년 기준)",
		Blocks: []deck.Block{
			deck.TableBlock{Frame: deck.At(1, 2, 8, 2), Rows: WageTable, FontSize: 11, BoldRows: []int{0}},
			deck.Text(deck.At(1, 4.8, 8, 1.2), deck.Each(plain(11),
				"※ 임금 산출 근거: 2025년 최저시급 10,030원 × 209시간 (주휴수당 포함 월 소정근로시간)",
				"※ 복리후생: 4대보험 가입(두루누리 활용), 식대 별도 제공, 심리상담(EAP) 프로그램 지원",
			)...),
		},
	}
}

func programs() deck.SlideSpec {
	return deck.ContentSlide{
		Title: "③ 사업계획: 정부 제도 활용 전략 (필수 기입)",
		Blocks: threeCards(2.2, 3.5, accent(12, deck.Blue), bold(14), plain(11), [][3]string{
			{"1. 진입기", "사회적기업가 육성사업", "창업 초기 자금 3,000만원 확보하여 핵심 설비(사출기) 구입 비용으로 사용."},
			{"2. 성장기", "일자리창출사업 (예비)", "예비사회적기업 지정 후, 취약계층 신규 채용 인건비의 50~70%를 지원받아 고정비 절감."},
			{"3. 도약기", "장애인 표준사업장 지원", "한국장애인고용공단 시설 무상지원금을 활용하여 작업장 환경 개선."},
		}),
	}
}

// headed is a heading, a blank line and body lines spaced by styled
// blank lines.
func headed(frame deck.Rect, heading string, hs, bs deck.Style, items ...string) deck.TextBlock {
	return deck.Text(frame, append([]deck.Line{deck.T(heading, hs), deck.Gap()}, deck.Spaced(bs, items...)...)...)
}

func investment() deck.SlideSpec {
	return deck.ContentSlide{
		Title: "초기 투자 및 생산 설비 계획",
		Blocks: []deck.Block{
			headed(deck.At(1.5, 2, 3.5, 3.5), "총 소요 예산: 1억 원", bold(16), plain(13),
				"• 시설자금 (6,000만원):\n  사출기, 분쇄기, 금형 제작비, 공장 보증금.",
				"• 운전자금 (4,000만원):\n  초기 6개월 인건비, 재료비, 시제품 홍보비.",
			),
			headed(deck.At(5.5, 2, 3.5, 3.5), "생산 설비 특징", bold(16), plain(13),
				"• 소형 사출기:\n  다품종 소량 생산 용이, 장애인 접근성 고려.",
				"• 저소음 분쇄기:\n  작업자 청력 보호를 위한 방음 박스 및 안전 센서 부착.",
			),
		},
	}
}

func funding() deck.SlideSpec {
	blocks := []deck.Block{
		deck.Text(deck.At(2, 1.5, 6, 0.4), deck.T("전략: 상환 부담 없는 정부지원금 비율(50%) 확대", deck.Style{Size: 15, Align: deck.AlignCenter})),
	}
	blocks = append(blocks, threeCards(2.8, 3, bold(14), accent(20, deck.Green), plain(12), [][3]string{
		{"자기자본 (20%)", "2,000만 원", "대표자 출자 (책임경영)"},
		{"정부지원 (50%)", "5,000만 원", "사회적기업 육성사업\n장애인공단 기기지원"},
		{"정책융자 (30%)", "3,000만 원", "서민금융진흥원 (저리)"},
	})...)
	return deck.ContentSlide{Title: "자금 조달 방안", Blocks: blocks}
}

func fiveYearPlan() deck.SlideSpec {
	years := []struct {
		head, body string
		color      deck.Color
	}{
		{"1년차 (진입)", "• 법인 설립\n• 예비사회적기업 지정\n• 시제품 5종 개발", deck.Blue},
		{"2년차 (성장)", "• 매출 3억 달성\n• 장애인 표준사업장 신청 준비\n• 고정 거래처 10곳", deck.Blue},
		{"3년차 (도약)", "• 사회적기업 본인증\n• 장애인 표준사업장 인증 완료\n• 공장 확장 이전\n• 취약계층 10명 고용", deck.Green},
		{"4년차 (확장)", "• 신제품 라인업 확대\n• 지역 협력 공장 네트워크 구축\n• 전국 유통망 확대", deck.Green},
		{"5년차 (Global)", "• 해외 수출 시작(베트남)\n• 연 매출 10억 달성\n• K-Eco 브랜드화", deck.Orange},
	}
	var blocks []deck.Block
	for i, f := range deck.Columns(len(years), 0.5, 1.9, 2, 1.7, 4.5) {
		y := years[i]
		blocks = append(blocks, deck.Labeled(f, y.head, accent(12, y.color), plain(10), deck.Split(y.body)...))
	}
	return deck.ContentSlide{Title: "⑤ 향후 추진 계획 (5년 계획)", Blocks: blocks}
}

// IncomeTable is the three-year income statement shown on slide 14.
var IncomeTable = [][]string{
	{"구분 (단위: 백만 원)", "1년차", "2년차", "3년차"},
	{"매출액", "120", "300", "500"},
	{"매출원가", "40", "100", "165"},
	{"판관비 (인건비 포함)", "100", "180", "250"},
	{"영업이익", "△20", "20", "85"},
}

func incomeStatement() deck.SlideSpec {
	return deck.ContentSlide{
		Title: "추정 손익 계산서 (3개년)",
		Blocks: []deck.Block{
			deck.TableBlock{Frame: deck.At(1.5, 2.2, 7, 2.5), Rows: IncomeTable, FontSize: 13, BoldRows: []int{0, 4}},
			deck.Text(deck.At(1.5, 5.3, 7, 0.4), deck.T("* 1차년도 적자는 정부지원금(영업외수익)으로 보전하여 현금 흐름 유지.", plain(11))),
		},
	}
}

func breakEven() deck.SlideSpec {
	return deck.ContentSlide{
		Title: "⑤ 향후 추진 계획: 손익분기점 (BEP)",
		Blocks: []deck.Block{
			deck.Text(deck.At(1.5, 2.5, 3.5, 2.5),
				deck.T("BEP 달성 예상 시점", deck.Style{Size: 16, Align: deck.AlignCenter}),
				deck.Gap(),
				deck.T("8개월", deck.Style{Size: 60, Bold: true, Color: deck.Green, Align: deck.AlignCenter}),
			),
			headed(deck.At(5.2, 1.8, 4, 4.5), "달성 조건 및 전략", bold(15), plain(12),
				"• 달성 조건: 월 매출 1,400만 원\n  (BEP = 고정비 700만원 ÷ 공헌이익률 50%).",
				"• 고정비 최소화: 월 700만 원\n  (인건비 지원 반영 후 자부담분).",
				"• 공헌이익률: 50% (제조업 특성).",
				"• 전략: B2B 대형 계약(월 500만 원 x 2건)\n  수주 시 조기 달성 가능.",
			),
		},
	}
}

func socialValue() deck.SlideSpec {
	return deck.ContentSlide{
		Title: "사회적 가치 측정 (SROI)",
		Blocks: []deck.Block{
			headed(deck.At(1.5, 2.2, 3.5, 3.5), "정량적 성과 (Quantitative)", accent(15, deck.Green), plain(13),
				"• 연간 폐플라스틱 25톤 재활용\n  (3년차 기준).",
				"• 탄소 감축 효과\n  (소나무 1,200그루 식재 상당).",
				"• 취약계층 10명 일자리 창출.",
			),
			headed(deck.At(5.5, 2.2, 3.5, 3.5), "정성적 성과 (Qualitative)", accent(15, deck.Blue), plain(13),
				"• 근로자 우울감 척도 30% 개선.",
				"• 경제적 자립을 통한 탈수급\n  (수급자 탈피).",
				"• 지역사회 '환경 인식' 개선.",
			),
		},
	}
}

func closing() deck.SlideSpec {
	msg := deck.Style{Size: 18, Color: deck.Mist, Align: deck.AlignLeft}
	return deck.ContentSlide{
		Title:      "Closing",
		Background: deck.Navy,
		Header:     deck.HeaderNone,
		Blocks: []deck.Block{
			deck.Text(deck.At(1, 1.5, 8, 1), deck.T("Closing", deck.Style{Size: 60, Bold: true, Color: deck.White, Align: deck.AlignLeft})),
			deck.Text(deck.At(1, 2.8, 8, 3.5), deck.Each(msg,
				`"Re:Spring은 단순한 공장이 아닙니다.`,
				"우리 지역사회의 가장 아픈 곳을 치유하는",
				`'생산적 복지'의 거점입니다."`,
				"",
				"준비된 대표, 검증된 기술, 확실한 수요처.\n이제 지원금이라는 마중물이 필요합니다.",
			)...),
		},
	}
}
