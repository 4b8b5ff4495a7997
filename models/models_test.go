package models

import (
	"testing"
)

func TestBlogPostValidate(t *testing.T) {
	post := BlogPost{Title: "Go services", Content: "How I structure Go services."}
	if err := post.Validate(); err != nil {
		t.Fatalf("valid post rejected: %v", err)
	}

	post = BlogPost{Content: "no title"}
	err := post.Validate()
	if err == nil {
		t.Fatal("expected missing title to fail validation")
	}
	details := ValidationDetails(err)
	if _, ok := details["title"]; !ok {
		t.Fatalf("expected field-level detail for title, got %v", details)
	}
}

func TestBlogPostValidateRejectsMalformedCoverURL(t *testing.T) {
	post := BlogPost{Title: "t", Content: "c", CoverURL: "not a url"}
	err := post.Validate()
	if err == nil {
		t.Fatal("expected malformed cover_url to fail validation")
	}
	details := ValidationDetails(err)
	if _, ok := details["cover_url"]; !ok {
		t.Fatalf("expected field-level detail for cover_url, got %v", details)
	}
}

func TestCaseStudyValidate(t *testing.T) {
	cs := CaseStudy{
		Title:    "Checkout rebuild",
		Summary:  "Rebuilt checkout",
		Problem:  "Slow checkout",
		Solution: "New flow",
		Impact:   "Conversion up",
		Images:   []string{"https://example.com/a.png"},
		Links:    map[string]string{"repo": "https://example.com/repo"},
	}
	if err := cs.Validate(); err != nil {
		t.Fatalf("valid case study rejected: %v", err)
	}

	cs.Images = []string{"nope"}
	if err := cs.Validate(); err == nil {
		t.Fatal("expected malformed image URL to fail validation")
	}

	cs.Images = nil
	cs.Links = map[string]string{"repo": "nope"}
	if err := cs.Validate(); err == nil {
		t.Fatal("expected malformed link URL to fail validation")
	}

	cs.Links = nil
	cs.Summary = ""
	err := cs.Validate()
	if err == nil {
		t.Fatal("expected missing summary to fail validation")
	}
	if _, ok := ValidationDetails(err)["summary"]; !ok {
		t.Fatal("expected field-level detail for summary")
	}
}

func TestProjectValidate(t *testing.T) {
	proj := Project{Title: "vecsearch", Description: "Vector search toy", RepoURL: "https://example.com/r"}
	if err := proj.Validate(); err != nil {
		t.Fatalf("valid project rejected: %v", err)
	}

	proj.RepoURL = "::broken::"
	if err := proj.Validate(); err == nil {
		t.Fatal("expected malformed repo_url to fail validation")
	}
}

func TestDefaultsFillEmptyCollections(t *testing.T) {
	post := BlogPost{Title: "t", Content: "c"}
	post.Defaults()
	if post.Tags == nil {
		t.Fatal("expected tags default to empty list")
	}

	cs := CaseStudy{}
	cs.Defaults()
	if cs.Images == nil || cs.Links == nil {
		t.Fatal("expected images and links defaults")
	}

	proj := Project{}
	proj.Defaults()
	if proj.TechStack == nil {
		t.Fatal("expected tech_stack default to empty list")
	}
}
