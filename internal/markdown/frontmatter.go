package markdown

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
)

// FrontMatter models the optional metadata block an exercise file may carry.
// Most upstream exercise collections have none; every field is an override
// on top of the extractor's defaults.
type FrontMatter struct {
	Title      string   `yaml:"title"`
	Category   string   `yaml:"category"`
	Difficulty string   `yaml:"difficulty"`
	Tags       []string `yaml:"tags"`
}

// ParseFrontMatter extracts metadata and the markdown body from the provided
// source bytes. Files without a frontmatter block return a zero FrontMatter
// and the source unchanged.
func ParseFrontMatter(source []byte) (FrontMatter, []byte, error) {
	var meta FrontMatter

	reader := bytes.NewReader(source)
	body, err := frontmatter.Parse(reader, &meta)
	if err != nil {
		return FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	if len(meta.Tags) > 0 {
		meta.Tags = append([]string(nil), meta.Tags...)
	}
	return meta, body, nil
}
