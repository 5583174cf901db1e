package gemini_test

import (
	"errors"
	"testing"

	"culinamind-go-be/gemini"
)

type payload struct {
	Title string `json:"title"`
	Count int    `json:"count"`
}

func TestExtractJSONDirect(t *testing.T) {
	t.Parallel()
	var p payload
	if err := gemini.ExtractJSON(`{"title":"Pasta","count":2}`, &p); err != nil {
		t.Fatalf("ExtractJSON: %v", err)
	}
	if p.Title != "Pasta" || p.Count != 2 {
		t.Errorf("got %+v", p)
	}
}

func TestExtractJSONWhitespace(t *testing.T) {
	t.Parallel()
	var p payload
	if err := gemini.ExtractJSON("\n\t  {\"title\":\"Soup\"}  \n", &p); err != nil {
		t.Fatalf("ExtractJSON: %v", err)
	}
	if p.Title != "Soup" {
		t.Errorf("title = %q", p.Title)
	}
}

func TestExtractJSONFencedBlock(t *testing.T) {
	t.Parallel()
	for name, text := range map[string]string{
		"json fence":  "Here you go:\n```json\n{\"title\":\"Curry\"}\n```\nEnjoy!",
		"plain fence": "```\n{\"title\":\"Curry\"}\n```",
	} {
		var p payload
		if err := gemini.ExtractJSON(text, &p); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if p.Title != "Curry" {
			t.Errorf("%s: title = %q", name, p.Title)
		}
	}
}

func TestExtractJSONBuriedInProse(t *testing.T) {
	t.Parallel()
	var p payload
	text := `Sure! Based on your pantry I'd suggest {"title":"Stir Fry","count":3} which should work well.`
	if err := gemini.ExtractJSON(text, &p); err != nil {
		t.Fatalf("ExtractJSON: %v", err)
	}
	if p.Title != "Stir Fry" || p.Count != 3 {
		t.Errorf("got %+v", p)
	}
}

func TestExtractJSONArrayInProse(t *testing.T) {
	t.Parallel()
	var items []payload
	text := "Here are the matches:\n[{\"title\":\"A\"},{\"title\":\"B\"}]\nHope that helps."
	if err := gemini.ExtractJSON(text, &items); err != nil {
		t.Fatalf("ExtractJSON: %v", err)
	}
	if len(items) != 2 || items[1].Title != "B" {
		t.Errorf("got %+v", items)
	}
}

func TestExtractJSONNoJSON(t *testing.T) {
	t.Parallel()
	var p payload
	err := gemini.ExtractJSON("I'm sorry, I can't help with that.", &p)
	if !errors.Is(err, gemini.ErrNoJSON) {
		t.Fatalf("err = %v, want ErrNoJSON", err)
	}
}

func TestExtractJSONMalformedEverywhere(t *testing.T) {
	t.Parallel()
	var p payload
	err := gemini.ExtractJSON("```json\n{broken\n```\nand {also broken}", &p)
	if !errors.Is(err, gemini.ErrNoJSON) {
		t.Fatalf("err = %v, want ErrNoJSON", err)
	}
}

func TestStripFences(t *testing.T) {
	t.Parallel()
	got := gemini.StripFences("Before\n```json\n{\"x\":1}\n```\nAfter")
	if got != "Before\n\nAfter" {
		t.Errorf("StripFences = %q", got)
	}
}
