package utils

import (
	"github.com/pkoukk/tiktoken-go"
)

// NumTokensFromMessages counts prompt tokens with the gpt-4 encoding.
// The encoding tables are fetched on first use, so callers treat an error as
// "count unknown" rather than a failure.
func NumTokensFromMessages(text string) (int, error) {
	tkm, err := tiktoken.EncodingForModel("gpt-4-0613")
	if err != nil {
		return 0, err
	}

	return len(tkm.Encode(text, nil, nil)), nil
}
