// Package gemini implements article generation using the Google Gemini API.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/popscrape"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Generator implements popscrape.Generator at compile time.
var _ popscrape.Generator = (*Generator)(nil)

// Generator implements popscrape.Generator using Google Gemini.
type Generator struct {
	client *genai.Client
}

// NewGenerator creates a new Generator.
func NewGenerator(client *genai.Client) *Generator {
	return &Generator{client: client}
}

// Generate renders pop-up store article copy for the given format pattern.
func (g *Generator) Generate(ctx context.Context, content *popscrape.ScrapedContent, format popscrape.FormatPattern) (*popscrape.Article, error) {
	if content == nil {
		return nil, popscrape.Errorf(popscrape.EINVALID, "content required")
	}
	pattern, err := popscrape.ParseFormatPattern(string(format))
	if err != nil {
		return nil, err
	}
	if content.CleanedText == "" {
		return nil, popscrape.Errorf(popscrape.EINVALID, "content has no text to write from")
	}

	prompt := BuildUserPrompt(content, pattern)
	config := BuildConfig()

	result, err := g.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, popscrape.Errorf(popscrape.EINTERNAL, "gemini returned nil result")
	}

	title := content.Title
	if title == "" {
		title = "ポップアップストア記事 - " + content.SourceURL
	}

	return &popscrape.Article{
		ContentID: content.ID,
		Format:    pattern,
		Title:     title,
		HTML:      result.Text(),
		Images:    append([]string(nil), content.Images...),
	}, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.7)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "あなたは日本のアニメポップアップストア専門のライターです。提供されたサイト情報のみを使用し、推測や創作はしないでください。",
			}},
		},
		Temperature: &temp,
	}
}

// formatLayouts describes the HTML skeleton the model must follow for
// each format pattern.
var formatLayouts = map[popscrape.FormatPattern]string{
	popscrape.FormatPatternA: `<h2>メタディスクリプション</h2>
<p>開催概要のメタディスクリプション</p>
<h2>リード文</h2>
<p>開催店舗・期間・ノベルティ特典を含むリード文</p>
<h2>[作品名] ポップアップストア in [店舗名]のグッズ</h2>
<p>グッズ紹介文</p>
<h3>グッズラインナップ</h3>
<div>-適切な画像を挿入ー</div>
<h2>[作品名] ポップアップストア in [店舗名]のノベルティー</h2>
<p>購入特典の配布条件</p>
<h3>お買い上げ特典 - [ノベルティ名] 全[種類数]種/ランダム</h3>
<div>-適切な画像を挿入ー</div>
<h2 id="pop-up-summary">[作品名] ポップアップストア in [店舗名] [開催日]より開催!</h2>
<div>-適切な画像を挿入ー</div>
<h3>開催情報</h3>
<p>公式サイト・開催場所・開催期間・お問い合わせ</p>`,
	popscrape.FormatPatternB: `<h1>記事タイトル</h1>
<h3>サブヘッド</h3>
<p>本文テキスト（段落分割）</p>
<div>-適切な画像を挿入ー</div>`,
	popscrape.FormatPatternC: `<h1>記事タイトル</h1>
<p>リード文（50文字程度）</p>
<h2>ノベルティ情報</h2>
<p>配布条件・種類数・ランダム配布かどうか</p>
<div>-適切な画像を挿入ー</div>
<p>まとめ・CTA</p>`,
	popscrape.FormatPatternD: `<h1>記事タイトル</h1>
<p>リード文（50文字程度）</p>
<h2>開催概要</h2>
<p>開催場所・開催期間を表形式で</p>
<div>-適切な画像を挿入ー</div>`,
}

// BuildUserPrompt builds the user prompt containing the format layout,
// extracted facts and the page text.
func BuildUserPrompt(content *popscrape.ScrapedContent, format popscrape.FormatPattern) string {
	var sb strings.Builder
	sb.WriteString("以下のサイト情報から、ポップアップストアの記事をHTML形式で作成してください。\n\n")
	sb.WriteString("【出力フォーマット】\n")
	sb.WriteString(formatLayouts[format])
	sb.WriteString("\n\n【重要】\n")
	sb.WriteString("- サイト情報から具体的な情報を抽出し、[作品名]、[店舗名]、[開催日]、[価格]などを実際の情報に置き換えてください\n")
	sb.WriteString("- 画像プレースホルダー「-適切な画像を挿入ー」はフォーマット通りに配置してください\n")
	sb.WriteString("- 推測や創作はせず、実際の情報のみを使用してください\n")
	sb.WriteString("- HTMLタグは正しく閉じてください\n\n")

	sb.WriteString("【抽出済み情報】\n")
	if content.Store.Name != "" {
		fmt.Fprintf(&sb, "店舗名: %s\n", content.Store.Name)
	}
	if content.Store.StartDate != "" {
		fmt.Fprintf(&sb, "開催期間: %s〜%s\n", content.Store.StartDate, content.Store.EndDate)
	}
	if content.Novelty.Name != "" {
		fmt.Fprintf(&sb, "ノベルティ: %s 全%d種 (お買い上げ%d円毎)\n",
			content.Novelty.Name, content.Novelty.TotalTypes, content.Novelty.Price)
	}
	if len(content.CharacterNames) > 0 {
		fmt.Fprintf(&sb, "キャラクター: %s\n", strings.Join(content.CharacterNames, "・"))
	}

	sb.WriteString("\n【元サイト情報】\n")
	fmt.Fprintf(&sb, "URL: %s\n", content.SourceURL)
	fmt.Fprintf(&sb, "サイト全文: %s\n", content.CleanedText)
	return sb.String()
}
