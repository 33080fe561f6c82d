package ingest

import (
	"html"
	"regexp"
)

var (
	hiddenElements = []*regexp.Regexp{
		regexp.MustCompile(`(?is)<head[\s>].*?</head>`),
		regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`),
		regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`),
		regexp.MustCompile(`(?is)<noscript[^>]*>.*?</noscript>`),
		regexp.MustCompile(`(?is)<svg[^>]*>.*?</svg>`),
	}
	htmlComments  = regexp.MustCompile(`(?s)<!--.*?-->`)
	blockBoundary = regexp.MustCompile(`(?i)</?(p|div|br|hr|h[1-6]|li|tr|blockquote|pre|table|section|article)(\s[^>]*)?/?>`)
	anyTag        = regexp.MustCompile(`<[^>]+>`)
)

func parseHTML(_ string, raw []byte) (string, error) {
	content, err := decodeText(raw)
	if err != nil {
		return "", err
	}
	return stripHTML(content), nil
}

// stripHTML keeps readable text. Block elements become line breaks so that
// headings and paragraphs do not run together.
func stripHTML(content string) string {
	for _, re := range hiddenElements {
		content = re.ReplaceAllString(content, "")
	}
	content = htmlComments.ReplaceAllString(content, "")
	content = blockBoundary.ReplaceAllString(content, "\n")
	content = anyTag.ReplaceAllString(content, "")
	content = html.UnescapeString(content)
	return normalizeWhitespace(content)
}
