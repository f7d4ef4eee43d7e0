// Package format implements deterministic, template-based article
// generation. It is the offline alternative to the gemini generator:
// same interface, no API calls, output assembled purely from extracted
// facts.
package format

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/popscrape"
)

// Ensure Generator implements popscrape.Generator at compile time.
var _ popscrape.Generator = (*Generator)(nil)

// Generator renders fixed article layouts from scraped content.
type Generator struct{}

// NewGenerator creates a new Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders an article for the given format pattern.
func (g *Generator) Generate(ctx context.Context, content *popscrape.ScrapedContent, format popscrape.FormatPattern) (*popscrape.Article, error) {
	if content == nil {
		return nil, popscrape.Errorf(popscrape.EINVALID, "content required")
	}
	pattern, err := popscrape.ParseFormatPattern(string(format))
	if err != nil {
		return nil, err
	}

	var sections []string
	switch pattern {
	case popscrape.FormatPatternA:
		sections = []string{
			metaDescription(content),
			lead(content),
			goodsSection(content),
			figure(content, 0),
			noveltySection(content),
			figure(content, 1),
			summarySection(content),
			figure(content, 2),
			footer(),
		}
	case popscrape.FormatPatternB:
		sections = []string{
			lead(content),
			goodsSection(content),
			figure(content, 0),
			summarySection(content),
			footer(),
		}
	case popscrape.FormatPatternC:
		sections = []string{
			lead(content),
			noveltySection(content),
			figure(content, 0),
			summarySection(content),
			footer(),
		}
	case popscrape.FormatPatternD:
		sections = []string{
			lead(content),
			summarySection(content),
			figure(content, 0),
			footer(),
		}
	}

	var html []string
	for _, s := range sections {
		if s != "" {
			html = append(html, s)
		}
	}

	title := content.Title
	if title == "" {
		title = workName(content) + " ポップアップストア開催"
	}

	return &popscrape.Article{
		ContentID: content.ID,
		Format:    pattern,
		Title:     title,
		HTML:      strings.Join(html, "\n"),
		Images:    append([]string(nil), content.Images...),
	}, nil
}

// workName is the display name of the source work, best-effort from the
// page title.
func workName(c *popscrape.ScrapedContent) string {
	if t := strings.TrimSpace(c.Title); t != "" {
		return t
	}
	return "ポップアップストア"
}

func storeName(c *popscrape.ScrapedContent) string {
	if c.Store.Name != "" {
		return c.Store.Name
	}
	return "開催店舗"
}

func period(c *popscrape.ScrapedContent) string {
	if c.Store.StartDate == "" {
		return "開催期間未定"
	}
	return c.Store.StartDate + "〜" + c.Store.EndDate
}

func metaDescription(c *popscrape.ScrapedContent) string {
	base := fmt.Sprintf("アニメ「%s」のポップアップストアが、%sにて%sまで開催される。",
		workName(c), storeName(c), period(c))

	if c.Store.IllustKind == popscrape.IllustrationOriginal {
		if len(c.CharacterNames) > 0 {
			return fmt.Sprintf("<p>%s%sらの描き下ろしイラストを使用した新作グッズが多数ラインナップ!</p>",
				base, strings.Join(c.CharacterNames, "・"))
		}
		return fmt.Sprintf("<p>%s描き下ろしイラストを使用した新作グッズが多数ラインナップ!</p>", base)
	}
	return fmt.Sprintf("<p>%s人気キャラクターたちのアニメビジュアルを使用したグッズが多数ラインナップ!</p>", base)
}

func lead(c *popscrape.ScrapedContent) string {
	base := fmt.Sprintf("アニメ「%s」のポップアップストアが、%sにて%sまで開催される。",
		workName(c), storeName(c), period(c))

	if c.Novelty.Name == "" {
		return fmt.Sprintf("<p>%s</p>", base)
	}

	novelty := fmt.Sprintf("「%s 全%d種」", c.Novelty.Name, c.Novelty.TotalTypes)
	price := formatPrice(c.Novelty.Price)

	if c.Store.IllustKind == popscrape.IllustrationOriginal {
		if c.Store.Type == popscrape.StoreA3 || c.Store.Type == popscrape.StoreTSUTAYA {
			return fmt.Sprintf("<p>%s新商品を含めて関連商品を%s円(税込)以上お買い上げの方に、特典として描き下ろしノベルティ%sを1会計につき1枚プレゼント!</p>",
				base, price, novelty)
		}
		return fmt.Sprintf("<p>%sグッズをお買い上げ%s円(税込)ごとに特典として描き下ろしノベルティ%sをランダムに1枚プレゼント!</p>",
			base, price, novelty)
	}
	return fmt.Sprintf("<p>%s関連商品を含めて%s円(税込)お買い上げ毎に特典として%sをランダムに1枚プレゼント!</p>",
		base, price, novelty)
}

func goodsSection(c *popscrape.ScrapedContent) string {
	heading := fmt.Sprintf(`<h2 id="pop-up-goods">%s ポップアップストア in %sのグッズ</h2>`,
		workName(c), storeName(c))

	if c.Store.IllustKind == popscrape.IllustrationOriginal {
		return fmt.Sprintf("%s\n<p>%sより「%s」にて、アニメ「%s」の描き下ろしグッズを販売するポップアップストアを開催!</p>",
			heading, c.Store.StartDate, storeName(c), workName(c))
	}
	return fmt.Sprintf("%s\n<p>%sより「%s」にて、「%s」のポップアップストアを開催!</p>",
		heading, c.Store.StartDate, storeName(c), workName(c))
}

func noveltySection(c *popscrape.ScrapedContent) string {
	if c.Novelty.Name == "" {
		return ""
	}

	heading := fmt.Sprintf(`<h2 id="pop-up-novelty">%s ポップアップストア in %sのノベルティー</h2>`,
		workName(c), storeName(c))
	novelty := fmt.Sprintf("「%s 全%d種」", c.Novelty.Name, c.Novelty.TotalTypes)
	price := formatPrice(c.Novelty.Price)

	if c.Store.Type == popscrape.StoreA3 || c.Store.Type == popscrape.StoreTSUTAYA {
		return fmt.Sprintf("%s\n<p>「%s」ポップアップストアにて新商品を含めて関連商品を%s円(税込)以上お買い上げの方に、特典として描き下ろしノベルティ%sが1会計につき1枚ランダムにプレゼントされる。</p>",
			heading, workName(c), price, novelty)
	}
	return fmt.Sprintf("%s\n<p>「%s」ポップアップストアにて、グッズをお買い上げ%s円毎に特典として%sがランダムに1枚プレゼントされる。</p>",
		heading, workName(c), price, novelty)
}

func summarySection(c *popscrape.ScrapedContent) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<h2 id="pop-up-summary">%s ポップアップストア in %s %sより開催!</h2>`,
		workName(c), storeName(c), c.Store.StartDate)
	sb.WriteString("\n<table>\n")
	fmt.Fprintf(&sb, ` <tr><th>公式サイト</th><td><a href="%s" target="_blank" rel="noopener noreferrer">特設ページ</a></td></tr>`, c.SourceURL)
	sb.WriteString("\n")
	fmt.Fprintf(&sb, " <tr><th>開催場所</th><td>%s</td></tr>\n", storeName(c))
	fmt.Fprintf(&sb, " <tr><th>開催期間</th><td>%s</td></tr>\n", period(c))
	sb.WriteString("</table>")
	return sb.String()
}

func footer() string {
	return "<p>詳細は公式サイトをご確認ください。</p>\n" +
		"<p><small>※記事の情報が古い場合がありますのでお手数ですが公式サイトの情報をご確認下さい。</small></p>"
}

// figure renders the i-th ranked image, empty when the scrape produced
// fewer images.
func figure(c *popscrape.ScrapedContent, i int) string {
	if i >= len(c.Images) {
		return ""
	}
	return fmt.Sprintf(`<figure><img src="%s" loading="lazy"></figure>`, c.Images[i])
}

// formatPrice renders a yen amount with comma separators.
func formatPrice(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	return s + "," + strings.Join(parts, ",")
}
