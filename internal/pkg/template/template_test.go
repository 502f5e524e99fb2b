package template

import (
	"errors"
	"testing"
)

func TestRenderSubstitutesKnownPlaceholders(t *testing.T) {
	out, err := Render("Order {reference} for {client_first_name} {client_name} is {status}.", Data{
		PlaceholderReference:   "CMD202603141A2B",
		PlaceholderClientFirst: "Paul",
		PlaceholderClientName:  "Martin",
		PlaceholderStatus:      "in progress",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "Order CMD202603141A2B for Paul Martin is in progress."
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestRenderMissingDataRendersEmpty(t *testing.T) {
	out, err := Render("Hello {client_first_name}{client_name}", Data{PlaceholderClientName: "Martin"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "Hello Martin" {
		t.Fatalf("got %q", out)
	}
}

func TestRenderUnknownMarkerFails(t *testing.T) {
	_, err := Render("Hello {customer}", Data{})
	var unknown UnknownPlaceholderError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownPlaceholderError, got %v", err)
	}
	if unknown.Name != "customer" {
		t.Fatalf("unexpected marker name %q", unknown.Name)
	}
}

func TestRenderUnknownDataKeyFails(t *testing.T) {
	_, err := Render("Hello {client_name}", Data{Placeholder("customer"): "x"})
	var unknown UnknownPlaceholderError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownPlaceholderError, got %v", err)
	}
}

func TestRenderLeavesNonMarkersAlone(t *testing.T) {
	text := "Braces {like this one}, {REF} and {1} stay literal."
	out, err := Render(text, Data{})
	if err != nil {
		t.Fatalf("non-matching braces must not fail: %v", err)
	}
	if out != text {
		t.Fatalf("got %q", out)
	}
}
