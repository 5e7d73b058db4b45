package textbook

// builtinWordbooks is the word-bank table behind the per-unit landing pages.
// Unit counts are derived from TotalItems and UnitSize.
var builtinWordbooks = []Wordbook{
	{Slug: "target-1900", Name: "Target 1900", JPName: "ターゲット1900", UnitLabel: "Section", TotalItems: 1900, UnitSize: 100},
	{Slug: "target-1800", Name: "Target 1800", JPName: "ターゲット1800", UnitLabel: "Section", TotalItems: 1800, UnitSize: 100},
	{Slug: "target-1400", Name: "Target 1400", JPName: "ターゲット1400", UnitLabel: "Section", TotalItems: 1400, UnitSize: 100},
	{Slug: "target-1200", Name: "Target 1200", JPName: "ターゲット1200", UnitLabel: "Section", TotalItems: 2000, UnitSize: 100},
	{Slug: "absolute-150", Name: "Words 150", JPName: "絶対覚える英単語150", UnitLabel: "Part", TotalItems: 150, UnitSize: 50},
	{Slug: "past-tense", Name: "Past Tense", JPName: "過去形", UnitLabel: "Part", TotalItems: 100, UnitSize: 100},
	{Slug: "past-participle", Name: "Past Participle", JPName: "過去形、過去分詞形", UnitLabel: "Part", TotalItems: 100, UnitSize: 100},
	{
		Slug: "system-words", Name: "System English Word", JPName: "システム英単語", UnitLabel: "Chapter",
		TotalItems: 2200,
		Ranges: []Range{
			{Start: 1, End: 600},
			{Start: 601, End: 1200},
			{Start: 1201, End: 1685},
			{Start: 1686, End: 2027},
			{Start: 2028, End: 2200},
		},
	},
	{Slug: "leap", Name: "LEAP", JPName: "LEAP", UnitLabel: "Part", TotalItems: 1600, UnitSize: 400},
	{Slug: "duo-30", Name: "DUO 3.0", JPName: "DUO 3.0", UnitLabel: "Section", TotalItems: 45, UnitSize: 1},
	{Slug: "toeic-gold", Name: "TOEIC金のフレーズ", JPName: "金のフレーズ", UnitLabel: "Level", TotalItems: 800, UnitSize: 200},
	{Slug: "kobun-315", Name: "重要古文単語315", JPName: "重要古文単語315", UnitLabel: "章", TotalItems: 315, UnitSize: 40},
	{Slug: "kobun-330", Name: "Key＆Point古文単語330", JPName: "Key＆Point古文単語330", UnitLabel: "章", TotalItems: 330, UnitSize: 60},
	{Slug: "kobun-325", Name: "ベストセレクション古文単語325", JPName: "ベストセレクション古文単語325", UnitLabel: "章", TotalItems: 325, UnitSize: 60},
	{Slug: "kobun-351", Name: "理解を深める核心古文単語351", JPName: "核心古文単語351", UnitLabel: "章", TotalItems: 351, UnitSize: 50},
}

// DefaultCatalog returns the catalog of built-in wordbooks.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(builtinWordbooks...)
	if err != nil {
		// ALLOW-PANIC: the built-in table is static and covered by tests
		panic(err)
	}
	return c
}
