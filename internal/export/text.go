package export

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PlainText converts rendered resume HTML into readable plain text.
// Headings are upper-cased and list items become dashed lines.
func PlainText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", &ExportError{Message: "failed to parse HTML", Cause: err}
	}

	doc.Find("script, style, noscript").Remove()

	var b strings.Builder
	header := doc.Find("header").First()
	if name := cleanWhitespace(header.Find("h1").Text()); name != "" {
		b.WriteString(name + "\n")
	}
	if title := cleanWhitespace(header.Find(".resume-title").Text()); title != "" {
		b.WriteString(title + "\n")
	}
	var contact []string
	header.Find(".contact li").Each(func(_ int, s *goquery.Selection) {
		if text := cleanWhitespace(s.Text()); text != "" {
			contact = append(contact, text)
		}
	})
	if len(contact) > 0 {
		b.WriteString(strings.Join(contact, " | ") + "\n")
	}
	if summary := cleanWhitespace(header.Find(".summary").Text()); summary != "" {
		b.WriteString("\n" + summary + "\n")
	}
	header.Remove()

	doc.Find("h2, h3, p, li").Each(func(_ int, s *goquery.Selection) {
		text := cleanWhitespace(s.Text())
		if text == "" {
			return
		}
		switch goquery.NodeName(s) {
		case "h2":
			b.WriteString("\n" + strings.ToUpper(text) + "\n")
		case "h3":
			b.WriteString("\n" + text + "\n")
		case "li":
			b.WriteString("- " + text + "\n")
		default:
			b.WriteString(text + "\n")
		}
	})

	return strings.TrimSpace(b.String()) + "\n", nil
}

func cleanWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
