package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/shelfcraft/pkg/core/hardware"
	"github.com/matzehuels/shelfcraft/pkg/core/pricing"
	"github.com/matzehuels/shelfcraft/pkg/core/shelf"
)

// Document is the exported form of a computed shelf.
type Document struct {
	Config  shelf.Config      `json:"config"`
	Layout  shelf.Result      `json:"layout"`
	Doors   []hardware.Door   `json:"doors,omitempty"`
	Drawers []hardware.Drawer `json:"drawers,omitempty"`
	Quote   *pricing.Quote    `json:"quote,omitempty"`
}

// WriteLayout encodes doc as indented JSON.
func WriteLayout(doc Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportLayout writes doc to a JSON file at path.
func ExportLayout(doc Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteLayout(doc, f)
}

// ReadLayout decodes a document written by WriteLayout.
func ReadLayout(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode: %w", err)
	}
	return doc, nil
}
