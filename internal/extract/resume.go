package extract

import (
	"errors"
	"fmt"

	"screener-backend/internal/shared/util"
)

// ErrMissingInput is returned when neither raw text nor an uploaded document
// yields any resume content.
var ErrMissingInput = errors.New("no resume text provided")

// ComposeResume merges pasted resume text with text extracted from an
// optional uploaded document into one normalized string. Extraction failures
// propagate; they are not treated as "no input".
func ComposeResume(rawText string, fileData []byte, mimeType string, fileName string) (string, error) {
	text := util.Normalize(rawText)

	if len(fileData) > 0 {
		extracted, err := TextFromBytes(fileData, mimeType, fileName)
		if err != nil {
			return "", fmt.Errorf("extract resume file %q: %w", fileName, err)
		}
		extracted = util.Normalize(extracted)
		if extracted != "" {
			if text != "" {
				text = text + "\n" + extracted
			} else {
				text = extracted
			}
		}
	}

	text = util.Normalize(text)
	if text == "" {
		return "", ErrMissingInput
	}
	return text, nil
}
