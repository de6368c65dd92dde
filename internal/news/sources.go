package news

// sourceNames maps a registrable news-site host to its display name. It is
// consulted only when the search API does not supply its own source label.
var sourceNames = map[string]string{
	"joongang.joins.com":   "중앙일보",
	"hani.co.kr":           "한겨레",
	"yna.co.kr":            "연합뉴스",
	"chosun.com":           "조선일보",
	"donga.com":            "동아일보",
	"mediatoday.co.kr":     "미디어오늘",
	"journalist.or.kr":     "기자협회보",
	"hankookilbo.com":      "한국일보",
	"mbn.mk.co.kr":         "MBN",
	"newscj.com":           "천지일보",
	"news.jtbc.co.kr":      "JTBC",
	"mediaus.co.kr":        "미디어스",
	"dailian.co.kr":        "데일리안",
	"view.asiae.co.kr":     "아시아경제",
	"newspim.com":          "뉴스핌",
	"news1.kr":             "뉴스1",
	"asiatoday.co.kr":      "아시아경제",
	"news.tvchosun.com":    "TV조선",
	"digitaltoday.co.kr":   "디지털투데이",
	"biz.chosun.com":       "조선비즈",
	"newsis.com":           "뉴시스",
	"biz.heraldcorp.com":   "헤럴드경제",
	"etoday.co.kr":         "이투데이",
	"ichannela.com":        "채널A",
	"news.kbs.co.kr":       "KBS",
	"kukinews.com":         "쿠키뉴스",
	"yonhapnewstv.co.kr":   "연합뉴스TV",
	"segye.com":            "세계일보",
	"munhwa.com":           "문화일보",
	"joongang.co.kr":       "중앙일보",
	"ytn.co.kr":            "YTN",
	"seoul.co.kr":          "서울신문",
	"sedaily.com":          "서울경제",
	"fnnews.com":           "파이낸셜뉴스",
	"news.tf.co.kr":        "더팩트",
	"news.sbs.co.kr":       "SBS",
	"etnews.com":           "전자신문",
	"sisajournal-e.com":    "시사저널e",
	"zdnet.co.kr":          "지디넷코리아",
	"mk.co.kr":             "매일경제",
	"biz.sbs.co.kr":        "SBSBiz",
	"weekly.chosun.com":    "주간조선",
	"kmib.co.kr":           "국민일보",
	"mt.co.kr":             "머니투데이",
	"khan.co.kr":           "경향신문",
	"inews24.com":          "아이뉴스24",
	"it.chosun.com":        "IT조선",
	"edaily.co.kr":         "이데일리",
	"newstapa.org":         "뉴스타파",
	"busan.com":            "부산일보",
	"hankyung.com":         "한국경제",
	"dt.co.kr":             "디지털타임스",
	"pdjournal.com":        "PD저널",
	"sisajournal.com":      "시사저널",
	"nownews.seoul.co.kr":  "서울신문",
	"kado.net":             "강원도민일보",
	"imaeil.com":           "매일신문",
	"sports.khan.co.kr":    "스포츠경향",
	"pressian.com":         "프레시안",
	"imnews.imbc.com":      "MBC",
	"nocutnews.co.kr":      "노컷뉴스",
	"ddaily.co.kr":         "디지털데일리",
	"news.naver.com":       "네이버",
	"news.daum.net":        "다음",
	"sports.chosun.com":    "스포츠조선",
	"sports.seoul.co.kr":   "스포츠서울",
	"sports.donga.com":     "스포츠동아",
	"sports.kbs.co.kr":     "KBS",
	"sports.sbs.co.kr":     "SBS 스포츠",
	"sports.mk.co.kr":      "매일경제 스포츠",
	"news.kmib.co.kr":      "국민일보",
	"news.heraldcorp.com":  "헤럴드경제",
	"news.khan.co.kr":      "경향신문",
	"news.hankyung.com":    "한국경제",
	"news.imaeil.com":      "매일신문",
	"news.busan.com":       "부산일보",
	"news.joins.com":       "중앙일보",
	"news.mt.co.kr":        "머니투데이",
	"news.edaily.co.kr":    "이데일리",
	"news.unn.net":         "한국대학신문",
	"news.kukinews.com":    "쿠키뉴스",
	"news.ajunews.com":     "아주경제",
	"news.wowtv.co.kr":     "한국경제TV",
	"news.g-enews.com":     "글로벌이코노믹",
	"news.mtn.co.kr":       "머니투데이방송",
	"news.ebs.co.kr":       "EBS",
	"news.mbc.co.kr":       "MBC",
	"newstomato.com":       "뉴스토마토",
	"naeil.com":            "내일신문",
	"insight.co.kr":        "인사이트",
	"radio.ytn.co.kr":      "YTN",
	"thebell.co.kr":        "더벨",
	"wowtv.co.kr":          "한국경제TV",
	"daejoilbo.com":        "대전일보",
	"kyeongin.com":         "경인일보",
	"kyeonggi.com":         "경기일보",
	"kyeongbuk.co.kr":      "경북일보",
	"kyongnam.com":         "경남신문",
	"jnilbo.com":           "전북일보",
	"jnnews.co.kr":         "전남일보",
	"newdaily.co.kr":       "뉴데일리",
	"ohmynews.com":         "오마이뉴스",
	"bloter.net":           "블로터",
	"moneys.co.kr":         "머니S",
	"daily.hankooki.com":   "데일리한국",
	"mbn.co.kr":            "MBN",
	"jibs.co.kr":           "JIBS",
	"topstarnews.net":      "톱스타뉴스",
	"kookje.co.kr":         "국제신문",
}

// SourceName returns the display name for a domain, falling back to the
// domain itself when the table has no entry.
func SourceName(domain string) string {
	if name, ok := sourceNames[domain]; ok {
		return name
	}
	return domain
}
