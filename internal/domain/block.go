package domain

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"
)

const (
	KeyName     = "Name"
	KeyClass    = "Class"
	KeyPosition = "Position"

	fieldSeparator = ":"

	// MaxLineSize is the longest line ParseBlocks accepts; a longer line
	// ends the stream with an error.
	MaxLineSize = 1024 * 1024
)

var requiredKeys = []string{KeyName, KeyClass, KeyPosition}

// Block is one blank-line delimited group of "Key: Value" lines. Line is the
// 1-based line number where the block starts.
type Block struct {
	Line   int
	Fields map[string]string
}

// Record builds a candidate from the block. When a required key is absent
// the returned slice names the missing keys and the record is zero.
func (b Block) Record() (CandidateRecord, []string) {
	var missing []string
	for _, key := range requiredKeys {
		if _, ok := b.Fields[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return CandidateRecord{}, missing
	}

	return CandidateRecord{
		Name:  b.Fields[KeyName],
		Class: Class(b.Fields[KeyClass]),
		Role:  Role(b.Fields[KeyPosition]),
	}, nil
}

// ParseBlocks lazily splits r into blocks. Lines without a separator are
// ignored and blocks without any field are skipped. A final block is emitted
// even when the stream does not end with a blank line.
func ParseBlocks(r io.Reader) iter.Seq2[Block, error] {
	return func(yield func(Block, error) bool) {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxLineSize)

		var current Block
		flush := func() bool {
			block := current
			current = Block{}
			if len(block.Fields) == 0 {
				return true
			}
			return yield(block, nil)
		}

		lineNo := 0
		for scanner.Scan() {
			lineNo++
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				if !flush() {
					return
				}
				continue
			}

			if current.Line == 0 {
				current.Line = lineNo
			}

			key, value, ok := strings.Cut(line, fieldSeparator)
			if !ok {
				continue
			}
			if current.Fields == nil {
				current.Fields = map[string]string{}
			}
			current.Fields[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}

		if err := scanner.Err(); err != nil {
			yield(Block{}, fmt.Errorf("scan roster blocks: %w", err))
			return
		}

		flush()
	}
}
