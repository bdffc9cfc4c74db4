package webfetch

import "fmt"

// NoMoreContent is returned in place of content when the window starts at
// or past the end of the content.
const NoMoreContent = "<error>No more content available.</error>"

// WindowResult is a bounded slice of content.
type WindowResult struct {
	Content        string
	Truncated      bool
	NextStartIndex int
}

// Window returns at most maxLength characters of content starting at
// startIndex. Offsets count runes, not bytes.
//
// A continuation hint is appended only when the slice fills maxLength
// exactly and content remains after it.
func Window(content string, startIndex, maxLength int) WindowResult {
	runes := []rune(content)
	total := len(runes)

	if startIndex < 0 || maxLength <= 0 || startIndex >= total {
		return WindowResult{Content: NoMoreContent}
	}

	end := min(startIndex+maxLength, total)
	slice := runes[startIndex:end]
	if len(slice) == 0 {
		return WindowResult{Content: NoMoreContent}
	}

	actual := len(slice)
	remaining := total - (startIndex + actual)
	if actual == maxLength && remaining > 0 {
		next := startIndex + actual
		return WindowResult{
			Content:        string(slice) + TruncationHint(next),
			Truncated:      true,
			NextStartIndex: next,
		}
	}
	return WindowResult{Content: string(slice)}
}

// TruncationHint returns the marker telling the caller how to continue.
func TruncationHint(next int) string {
	return fmt.Sprintf("\n\n<error>Content truncated. Call the fetch tool with a start_index of %d to get more content.</error>", next)
}
