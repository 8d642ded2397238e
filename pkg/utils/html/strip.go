// ABOUTME: HTML utilities for turning feed markup into clean display text
// ABOUTME: Strips tags with the x/net/html tokenizer and normalises whitespace and punctuation

package html

import (
	"regexp"
	"strings"

	xhtml "golang.org/x/net/html"
)

var (
	multiSpaceRegex         = regexp.MustCompile(`\s+`)
	spaceBeforePunctRegex   = regexp.MustCompile(`\s+([,.!?;:])`)
	spaceAfterPunctRegex    = regexp.MustCompile(`([,.!?;:])\s*([^\s\d,.!?;:)\]}"'])`)
	spaceBeforeClosingRegex = regexp.MustCompile(`\s+([)\]}])`)
	spaceAfterOpeningRegex  = regexp.MustCompile(`([(\[{])\s+`)
)

// Elements whose text content is never displayed
var droppedElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
}

// Elements that separate words when rendered
var blockElements = map[string]bool{
	"br": true, "p": true, "div": true, "li": true, "ul": true, "ol": true,
	"tr": true, "td": true, "th": true, "blockquote": true, "pre": true, "hr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"section": true, "article": true, "header": true, "footer": true, "figure": true, "figcaption": true,
}

// CleanString removes HTML tags, decodes entities and fixes whitespace artefacts
func CleanString(input string) string {
	if input == "" {
		return ""
	}
	return CleanWhitespace(StripHTML(input))
}

// StripHTML returns the text content of an HTML fragment with entities decoded.
// Script and style content is dropped and non-breaking spaces become plain spaces.
func StripHTML(input string) string {
	var sb strings.Builder
	tokenizer := xhtml.NewTokenizer(strings.NewReader(input))
	dropped := 0

	for {
		switch tokenizer.Next() {
		case xhtml.ErrorToken:
			// io.EOF or malformed input; either way we return what we have
			return strings.ReplaceAll(sb.String(), "\u00a0", " ")
		case xhtml.TextToken:
			if dropped == 0 {
				sb.Write(tokenizer.Text())
			}
		case xhtml.StartTagToken:
			name, _ := tokenizer.TagName()
			tag := string(name)
			if droppedElements[tag] {
				dropped++
			} else if blockElements[tag] {
				sb.WriteByte(' ')
			}
		case xhtml.EndTagToken:
			name, _ := tokenizer.TagName()
			tag := string(name)
			if droppedElements[tag] {
				if dropped > 0 {
					dropped--
				}
			} else if blockElements[tag] {
				sb.WriteByte(' ')
			}
		case xhtml.SelfClosingTagToken:
			name, _ := tokenizer.TagName()
			if blockElements[string(name)] {
				sb.WriteByte(' ')
			}
		}
	}
}

// CleanWhitespace collapses excessive whitespace and normalises punctuation spacing
func CleanWhitespace(input string) string {
	input = multiSpaceRegex.ReplaceAllString(input, " ")
	input = spaceBeforePunctRegex.ReplaceAllString(input, "$1")
	input = spaceAfterPunctRegex.ReplaceAllString(input, "$1 $2")
	input = spaceBeforeClosingRegex.ReplaceAllString(input, "$1")
	input = spaceAfterOpeningRegex.ReplaceAllString(input, "$1")
	return strings.TrimSpace(input)
}
