package i18n

// DefaultLanguage is used whenever an unknown or empty code comes in.
const DefaultLanguage = "en"

var dictionaries = map[string]map[string]string{
	"en": {
		"nav_dashboard":               "Dashboard",
		"nav_income":                  "Income",
		"nav_inventory":               "Inventory",
		"nav_employees":               "Employees & Schedules",
		"nav_wages":                   "Wages",
		"nav_settings":                "Settings",
		"btn_save":                    "Save",
		"btn_cancel":                  "Cancel",
		"title_dashboard":             "Restaurant Dashboard",
		"title_income_overview":       "Income Overview",
		"title_record_sales":          "Record Daily Sales",
		"title_menu":                  "Menu Management",
		"title_inventory":             "Inventory",
		"title_inventory_suggestions": "Inventory Suggestions",
		"title_employees":             "Employees",
		"title_schedules":             "Schedules",
		"title_replacement":           "Replacement Suggestions",
		"title_wages":                 "Wage Calculation",
		"title_settings_branding":     "Branding & Contact Settings",
		"kakao_button":                "Contact via KakaoTalk",
	},
	"ko": {
		"nav_dashboard":               "대시보드",
		"nav_income":                  "매출 관리",
		"nav_inventory":               "재고 관리",
		"nav_employees":               "직원 및 근무표",
		"nav_wages":                   "급여",
		"nav_settings":                "설정",
		"btn_save":                    "저장",
		"btn_cancel":                  "취소",
		"title_dashboard":             "레스토랑 대시보드",
		"title_income_overview":       "매출 요약",
		"title_record_sales":          "일일 매출 입력",
		"title_menu":                  "메뉴 관리",
		"title_inventory":             "재고 현황",
		"title_inventory_suggestions": "재고 추천 / 발주 제안",
		"title_employees":             "직원 관리",
		"title_schedules":             "근무표",
		"title_replacement":           "대체 인력 추천",
		"title_wages":                 "급여 계산",
		"title_settings_branding":     "브랜딩 및 연락 설정",
		"kakao_button":                "카카오톡으로 문의하기",
	},
}

// Supported reports whether a translation dictionary exists for the code.
func Supported(lang string) bool {
	_, ok := dictionaries[lang]
	return ok
}

// Normalize maps unknown codes to the default language.
func Normalize(lang string) string {
	if Supported(lang) {
		return lang
	}
	return DefaultLanguage
}

// Lookup returns the dictionary for lang, falling back to English. The
// returned map is a copy; callers may not mutate the shared tables.
func Lookup(lang string) map[string]string {
	dict := dictionaries[Normalize(lang)]
	out := make(map[string]string, len(dict))
	for k, v := range dict {
		out[k] = v
	}
	return out
}

// Languages lists the supported language codes.
func Languages() []string {
	return []string{"en", "ko"}
}
