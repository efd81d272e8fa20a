// Copyright 2024 Daniel Erat.
// All rights reserved.

// Package web extracts correctable text from HTML pages.
package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Page represents a parsed HTML page.
type Page struct {
	Root *html.Node
}

// Parse parses an HTML page from r.
func Parse(r io.Reader) (*Page, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return &Page{root}, nil
}

// Fetch fetches and parses the HTML page at the supplied URL.
func Fetch(ctx context.Context, url string) (*Page, error) {
	log.Print("Fetching ", url)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("status %v: %v", resp.StatusCode, resp.Status)
	}
	return Parse(resp.Body)
}

// Text returns the page's visible text: the contents of all text nodes
// outside <script> and <style> elements, trimmed and joined by single spaces.
func (p *Page) Text() string { return getText(p.Root) }

// QueryText returns the visible text under the first node matched by the
// supplied CSS selector. An error is returned if the selector is malformed
// or doesn't match any node.
func (p *Page) QueryText(query string) (string, error) {
	sel, err := cascadia.Parse(query)
	if err != nil {
		return "", err
	}
	node := cascadia.Query(p.Root, sel)
	if node == nil {
		return "", errors.New("node not found")
	}
	return getText(node), nil
}

// getText concatenates all visible text content in and under n.
func getText(n *html.Node) string {
	if n == nil {
		return ""
	}
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return ""
	}
	var text string
	if n.Type == html.TextNode {
		// Collapse runs of whitespace the way a browser renders them.
		text = strings.Join(strings.Fields(n.Data), " ")
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if s := getText(c); s != "" {
			if text != "" {
				text += " "
			}
			text += s
		}
	}
	return text
}
