package htmlutil

import (
	"bytes"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

var innerWhitespace = regexp.MustCompile(`\s\s+`)

func CollapseWhitespace(s string) string {
	return strings.TrimSpace(innerWhitespace.ReplaceAllString(s, " "))
}

func RemoveNonPrintable(s string) string {
	newStr := strings.Builder{}
	for _, c := range s {
		if unicode.IsPrint(c) {
			newStr.WriteRune(c)
		}
	}
	return newStr.String()
}

// FirstText walks an ordered list of selectors and returns the
// trimmed text of the first one that matches something non-empty.
// The page being scraped is third-party so selectors rot; callers
// stack older selectors behind newer ones instead of failing.
func FirstText(doc *goquery.Document, selectors ...string) string {
	for _, selector := range selectors {
		text := CollapseWhitespace(doc.Find(selector).First().Text())
		if text != "" {
			return text
		}
	}
	return ""
}

// AbsoluteURL prefixes origin onto root-relative hrefs, anything
// already absolute is passed through untouched.
func AbsoluteURL(origin, href string) string {
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "/") {
		return origin + href
	}
	return href
}
