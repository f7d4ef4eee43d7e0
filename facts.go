package popscrape

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Facts bundles every structured extraction over cleaned page text.
// Each field is best-effort: a pattern that does not match leaves its
// zero value in place, never an error.
type Facts struct {
	Store          StoreInfo
	Novelty        NoveltyInfo
	CharacterNames []string
}

// All patterns below are linear scans over bounded alternations; none
// of them can backtrack catastrophically on hostile input.
var (
	// 7月18日（金）〜8月3日（日), with an optional year prefix on
	// either side and any of the common range dashes.
	dateRangePattern = regexp.MustCompile(
		`((?:\d{4}年)?\d{1,2}月\d{1,2}日（[^）]{1,4}）)\s*[〜~～-]\s*((?:\d{4}年)?\d{1,2}月\d{1,2}日（[^）]{1,4}）)`)

	// 開催場所 渋谷パルコ（東京都渋谷区）
	storePattern = regexp.MustCompile(`開催場所[：:\s]*([^（\s]+)（([^）]+)）`)

	// ノベルティA（全5種）500円; tolerates text between 種 and the
	// closing paren and between the paren and the price.
	noveltyPattern = regexp.MustCompile(`「?([^「」（。\s]+)」?（全([0-9,]+)種[^）]*）[^0-9円]{0,20}([0-9,]+)円`)

	// Partner-chain markers for store type classification.
	a3Pattern      = regexp.MustCompile(`(?i)\bA3\b|株式会社A3`)
	tsutayaPattern = regexp.MustCompile(`(?i)TSUTAYA|ツタヤ`)

	// Name + honorific, and bracket-quoted tokens. The name class is
	// limited to katakana/kanji so trailing particles (と, の, ...)
	// cannot glom onto the captured name.
	honorificPattern = regexp.MustCompile(`([\p{Katakana}\p{Han}ー・]{2,8})(?:ちゃん|くん|さん|様)`)
	bracketPattern   = regexp.MustCompile(`「([^「」]{2,12})」`)
)

// randomKeywords signal random novelty distribution.
var randomKeywords = []string{"ランダム", "おまかせ", "お楽しみ"}

// originalArtKeywords signal newly drawn illustrations.
var originalArtKeywords = []string{"描き下ろし", "書き下ろし", "オリジナル"}

// characterStopwords filters generic event vocabulary that the
// heuristic patterns keep matching on announcement pages.
var characterStopwords = map[string]bool{
	"開催":     true,
	"グッズ":    true,
	"詳細":     true,
	"ノベルティ":  true,
	"特典":     true,
	"限定":     true,
	"店舗":     true,
	"商品":     true,
	"購入":     true,
	"お客":     true,
	"皆":      true,
	"みな":     true,
	"ポップアップ": true,
}

// ExtractFacts runs every structured extraction over cleaned text.
func ExtractFacts(text string) Facts {
	return Facts{
		Store:          ExtractStore(text),
		Novelty:        ExtractNovelty(text),
		CharacterNames: ExtractCharacterNames(text),
	}
}

// ExtractStore pulls venue facts: the date range, the store name and
// location, the partner-chain classification and the illustration type.
func ExtractStore(text string) StoreInfo {
	info := StoreInfo{Type: StoreNormal, IllustKind: IllustrationLicensed}

	if m := dateRangePattern.FindStringSubmatch(text); m != nil {
		info.StartDate = m[1]
		info.EndDate = m[2]
	}
	if m := storePattern.FindStringSubmatch(text); m != nil {
		info.Name = m[1]
		info.Location = m[2]
	}

	switch {
	case a3Pattern.MatchString(text):
		info.Type = StoreA3
	case tsutayaPattern.MatchString(text):
		info.Type = StoreTSUTAYA
	}

	if containsAny(text, originalArtKeywords) {
		info.IllustKind = IllustrationOriginal
	}

	return info
}

// ExtractNovelty pulls the purchase-bonus name, variant count, price
// threshold and the distribution flags.
func ExtractNovelty(text string) NoveltyInfo {
	var info NoveltyInfo

	if m := noveltyPattern.FindStringSubmatch(text); m != nil {
		info.Name = m[1]
		info.TotalTypes = parseNumber(m[2])
		info.Price = parseNumber(m[3])
	}

	info.IsRandom = containsAny(text, randomKeywords)
	info.IsOriginal = containsAny(text, originalArtKeywords)

	return info
}

// ExtractCharacterNames collects character name candidates from
// honorific-suffixed tokens and bracket-quoted tokens. The result is a
// deduplicated, stopword-filtered, sorted set; sorting keeps the
// pipeline output deterministic.
func ExtractCharacterNames(text string) []string {
	seen := make(map[string]bool)

	for _, m := range honorificPattern.FindAllStringSubmatch(text, -1) {
		addCharacterName(seen, m[1])
	}
	for _, m := range bracketPattern.FindAllStringSubmatch(text, -1) {
		addCharacterName(seen, m[1])
	}

	if len(seen) == 0 {
		return nil
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func addCharacterName(seen map[string]bool, name string) {
	name = strings.TrimSpace(name)
	if len([]rune(name)) <= 1 {
		return
	}
	for stopword := range characterStopwords {
		if strings.Contains(name, stopword) {
			return
		}
	}
	seen[name] = true
}

// parseNumber parses an integer with comma separators stripped.
// Unparseable input yields 0, consistent with best-effort extraction.
func parseNumber(s string) int {
	n, err := strconv.Atoi(strings.ReplaceAll(s, ",", ""))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
