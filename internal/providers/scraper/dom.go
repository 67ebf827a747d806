package scraper

import (
	"strings"

	"golang.org/x/net/html"
)

type matcher func(*html.Node) bool

func isElement(tag string) matcher {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == tag
	}
}

func and(ms ...matcher) matcher {
	return func(n *html.Node) bool {
		for _, m := range ms {
			if !m(n) {
				return false
			}
		}
		return true
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// compactStyle lowercases an inline style and drops all whitespace so that
// "Width: 350px" and "width:350px" compare equal.
func compactStyle(s string) string {
	return strings.Map(func(r rune) rune {
		if isSpace(r) {
			return -1
		}
		return r
	}, strings.ToLower(s))
}

func styleContains(fragment string) matcher {
	want := compactStyle(fragment)
	return func(n *html.Node) bool {
		return strings.Contains(compactStyle(attr(n, "style")), want)
	}
}

// findAll returns the descendants of n matching m in document order.
func findAll(n *html.Node, m matcher) []*html.Node {
	var found []*html.Node
	var traverse func(*html.Node)
	traverse = func(node *html.Node) {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if m(c) {
				found = append(found, c)
			}
			traverse(c)
		}
	}
	traverse(n)
	return found
}

func findFirst(n *html.Node, m matcher) *html.Node {
	for c := nextInOrder(n, n); c != nil; c = nextInOrder(c, n) {
		if m(c) {
			return c
		}
	}
	return nil
}

// findNext returns the first node after n in document order (its own
// descendants included) that matches m.
func findNext(n *html.Node, m matcher) *html.Node {
	for c := nextInOrder(n, nil); c != nil; c = nextInOrder(c, nil) {
		if m(c) {
			return c
		}
	}
	return nil
}

// nextInOrder walks the tree in pre-order without leaving root.
func nextInOrder(n, root *html.Node) *html.Node {
	if n.FirstChild != nil {
		return n.FirstChild
	}
	for n != nil && n != root {
		if n.NextSibling != nil {
			return n.NextSibling
		}
		n = n.Parent
	}
	return nil
}

// textContent joins the trimmed, non-empty text fragments under n with sep.
func textContent(n *html.Node, sep string) string {
	var parts []string
	var traverse func(*html.Node)
	traverse = func(node *html.Node) {
		if node.Type == html.TextNode {
			if t := strings.TrimSpace(node.Data); t != "" {
				parts = append(parts, t)
			}
			return
		}
		if node.Type == html.ElementNode && (node.Data == "script" || node.Data == "style") {
			return
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(n)
	return strings.Join(parts, sep)
}

// rawText concatenates the text under n exactly as written in the markup.
func rawText(n *html.Node) string {
	var sb strings.Builder
	var traverse func(*html.Node)
	traverse = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
			return
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(n)
	return sb.String()
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v', '\u00a0':
		return true
	}
	return false
}

// normalizeSpace turns NBSP into plain spaces, collapses whitespace runs and
// trims the result.
func normalizeSpace(s string) string {
	return strings.Join(strings.FieldsFunc(s, isSpace), " ")
}

// containsAnchor reports whether the text of n contains anchor. Markup often
// splits a label across inline tags, so both the raw and the fragment-joined
// renderings are tried.
func containsAnchor(anchor string) matcher {
	want := normalizeSpace(anchor)
	return func(n *html.Node) bool {
		if strings.Contains(normalizeSpace(rawText(n)), want) {
			return true
		}
		return strings.Contains(normalizeSpace(textContent(n, "")), want)
	}
}
