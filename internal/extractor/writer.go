package extractor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/skywallkee/kubestronaut-preparation-demo-platform/pkg/interfaces"
)

// writeQuestion persists one record as <id>.json under dir. HTML escaping is
// disabled so kubectl redirects and selectors survive the round trip intact.
func writeQuestion(dir string, question interfaces.Question) error {
	data, err := encodeQuestion(question)
	if err != nil {
		return fmt.Errorf("extractor: encode %s: %w", question.ID, err)
	}

	path := filepath.Join(dir, question.ID+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("extractor: write %s: %w", path, err)
	}
	return nil
}

func encodeQuestion(question interfaces.Question) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(question); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
