package main

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

const (
	iconType = "fileicon"
	iconPath = "../resource/icon.png"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// alfredOutput is the script filter document Alfred reads from stdout.
type alfredOutput struct {
	Items []alfredItem `json:"items"`
}

type alfredItem struct {
	Title        string     `json:"title"`
	Subtitle     string     `json:"subtitle,omitempty"`
	Arg          string     `json:"arg,omitempty"`
	QuicklookURL string     `json:"quicklookurl,omitempty"`
	Text         alfredText `json:"text"`
	Icon         alfredIcon `json:"icon"`
}

type alfredText struct {
	Copy string `json:"copy,omitempty"`
}

type alfredIcon struct {
	Type string `json:"type,omitempty"`
	Path string `json:"path"`
}

func newAlfredItem(p Pair) alfredItem {
	return alfredItem{
		Title:        p.Value,
		Subtitle:     p.Label,
		Arg:          p.Value,
		QuicklookURL: p.Value,
		Text:         alfredText{Copy: p.Value},
		Icon:         alfredIcon{Type: iconType, Path: iconPath},
	}
}

// writeAlfred writes pairs to w as a single script filter document.
func writeAlfred(w io.Writer, pairs []Pair) error {
	out := alfredOutput{Items: make([]alfredItem, 0, len(pairs))}
	for _, p := range pairs {
		out.Items = append(out.Items, newAlfredItem(p))
	}

	return json.NewEncoder(w).Encode(out)
}
