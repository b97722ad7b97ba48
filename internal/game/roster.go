package game

// Style is the closed set of fighting styles. Each style maps to a move
// list in the Catalog.
type Style string

const (
	StyleStriker    Style = "Striker"
	StyleAllrounder Style = "Allrounder"
	StylePower      Style = "Power"
	StyleTechnique  Style = "Technique"
	StyleSpeed      Style = "Speed"
	StyleSubmission Style = "Submission"
	StyleBrawler    Style = "Brawler"
)

// Styles lists every known style in display order.
var Styles = []Style{
	StyleStriker,
	StyleAllrounder,
	StylePower,
	StyleTechnique,
	StyleSpeed,
	StyleSubmission,
	StyleBrawler,
}

// Valid reports whether s is one of the known styles.
func (s Style) Valid() bool {
	for _, v := range Styles {
		if v == s {
			return true
		}
	}
	return false
}

// Role is narrative only and never enters combat math.
type Role string

const (
	RoleBabyface Role = "Babyface"
	RoleHeel     Role = "Heel"
)

func (r Role) Valid() bool { return r == RoleBabyface || r == RoleHeel }

// Character is an immutable roster entry.
type Character struct {
	ID        int    `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Height    int    `json:"height" yaml:"height"`
	Power     int    `json:"power" yaml:"power"`
	Speed     int    `json:"speed" yaml:"speed"`
	Technique int    `json:"technique" yaml:"technique"`
	Stamina   int    `json:"stamina" yaml:"stamina"`
	Mental    int    `json:"mental" yaml:"mental"`
	// Influence is a cosmetic tier label (e.g. "★★★").
	Influence string `json:"influence" yaml:"influence"`
	Style     Style  `json:"style" yaml:"style"`
	Role      Role   `json:"role" yaml:"role"`
}

// DefaultCharacters is the built-in roster.
func DefaultCharacters() []Character {
	return []Character{
		{ID: 1, Name: "高津小春", Height: 161, Power: 73, Speed: 75, Technique: 47, Stamina: 85, Mental: 96, Influence: "★★", Style: StyleStriker, Role: RoleBabyface},
		{ID: 2, Name: "澤出みずき", Height: 158, Power: 73, Speed: 78, Technique: 73, Stamina: 73, Mental: 72, Influence: "■", Style: StyleAllrounder, Role: RoleBabyface},
		{ID: 4, Name: "富岡加奈子", Height: 168, Power: 86, Speed: 61, Technique: 70, Stamina: 74, Mental: 83, Influence: "★★★★", Style: StylePower, Role: RoleHeel},
		{ID: 7, Name: "副沢たまき", Height: 161, Power: 71, Speed: 68, Technique: 74, Stamina: 68, Mental: 68, Influence: "★★", Style: StyleTechnique, Role: RoleBabyface},
		{ID: 6, Name: "深町真琴", Height: 160, Power: 55, Speed: 90, Technique: 53, Stamina: 85, Mental: 63, Influence: "★★★", Style: StyleSpeed, Role: RoleBabyface},
		{ID: 11, Name: "橘玲美", Height: 171, Power: 71, Speed: 73, Technique: 89, Stamina: 75, Mental: 74, Influence: "★★★★", Style: StyleSubmission, Role: RoleHeel},
		{ID: 12, Name: "生駒エリカ", Height: 153, Power: 78, Speed: 71, Technique: 55, Stamina: 76, Mental: 82, Influence: "★★★", Style: StyleBrawler, Role: RoleHeel},
		{ID: 16, Name: "川野辺菜穂子", Height: 168, Power: 66, Speed: 80, Technique: 69, Stamina: 71, Mental: 76, Influence: "★★★★", Style: StyleTechnique, Role: RoleBabyface},
		{ID: 17, Name: "岸ゆみえ", Height: 155, Power: 43, Speed: 48, Technique: 78, Stamina: 64, Mental: 61, Influence: "★★", Style: StyleTechnique, Role: RoleBabyface},
		{ID: 18, Name: "大河内紗代子", Height: 164, Power: 93, Speed: 72, Technique: 63, Stamina: 68, Mental: 77, Influence: "★★★★★", Style: StylePower, Role: RoleHeel},
		{ID: 21, Name: "四条あずさ", Height: 163, Power: 64, Speed: 68, Technique: 62, Stamina: 67, Mental: 62, Influence: "★★", Style: StyleAllrounder, Role: RoleHeel},
	}
}

// DefaultStyleMoves is the built-in move table.
func DefaultStyleMoves() map[Style][]string {
	return map[Style][]string{
		StyleStriker:    {"ローキック", "ミドルキック", "ジャンピングニー"},
		StyleAllrounder: {"ドロップキック", "DDT", "ブレーンバスター"},
		StylePower:      {"ショルダータックル", "ラリアット", "パワーボム"},
		StyleTechnique:  {"アームホイップ", "ドラゴンスクリュー", "スープレックス"},
		StyleSpeed:      {"スライディングキック", "ヘッドシザーズ", "旋回式DDT"},
		StyleSubmission: {"腕ひしぎ十字固め", "逆エビ固め", "三角締め"},
		StyleBrawler:    {"エルボースマッシュ", "バックハンドブロー", "場外乱闘パンチ"},
	}
}
