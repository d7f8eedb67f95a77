package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectBlocks(t *testing.T, input string) []Block {
	t.Helper()

	var blocks []Block
	for block, err := range ParseBlocks(strings.NewReader(input)) {
		require.NoError(t, err)
		blocks = append(blocks, block)
	}
	return blocks
}

func TestParseBlocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []Block
	}{
		{
			name:  "single terminated block",
			input: "Name: Gandalf\nClass: Mage\nPosition: Ranged_Dps\n\n",
			want: []Block{
				{Line: 1, Fields: map[string]string{"Name": "Gandalf", "Class": "Mage", "Position": "Ranged_Dps"}},
			},
		},
		{
			name:  "trailing block without blank line",
			input: "Name: Gandalf\nClass: Mage\n\nName: Thrall\nClass: Shaman\nPosition: Heal",
			want: []Block{
				{Line: 1, Fields: map[string]string{"Name": "Gandalf", "Class": "Mage"}},
				{Line: 4, Fields: map[string]string{"Name": "Thrall", "Class": "Shaman", "Position": "Heal"}},
			},
		},
		{
			name:  "value keeps later separators",
			input: "Name: Sir: Lancelot\n",
			want: []Block{
				{Line: 1, Fields: map[string]string{"Name": "Sir: Lancelot"}},
			},
		},
		{
			name:  "whitespace trimmed and lines without separator ignored",
			input: "   Name :  Arthas  \n just a note \r\n\t\nClass:Warrior\r\n",
			want: []Block{
				{Line: 1, Fields: map[string]string{"Name": "Arthas"}},
				{Line: 4, Fields: map[string]string{"Class": "Warrior"}},
			},
		},
		{
			name:  "runs of blank lines do not produce blocks",
			input: "\n\n  \nName: Jaina\n\n\n\n",
			want: []Block{
				{Line: 4, Fields: map[string]string{"Name": "Jaina"}},
			},
		},
		{
			name:  "block of notes only is skipped",
			input: "no separator here\n\n",
		},
		{
			name:  "later key wins",
			input: "Name: One\nName: Two\n",
			want: []Block{
				{Line: 1, Fields: map[string]string{"Name": "Two"}},
			},
		},
		{
			name:  "keys are case sensitive",
			input: "Name: Gandalf\nclass: Mage\n",
			want: []Block{
				{Line: 1, Fields: map[string]string{"Name": "Gandalf", "class": "Mage"}},
			},
		},
		{name: "empty input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collectBlocks(t, tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseBlocks() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseBlocksStopsWhenConsumerStops(t *testing.T) {
	t.Parallel()

	input := "Name: A\n\nName: B\n\nName: C\n"
	seen := 0
	for range ParseBlocks(strings.NewReader(input)) {
		seen++
		if seen == 2 {
			break
		}
	}

	assert.Equal(t, 2, seen)
}

func TestParseBlocksRestartsFromNewReader(t *testing.T) {
	t.Parallel()

	input := "Name: A\n\nName: B\n"

	first := collectBlocks(t, input)
	second := collectBlocks(t, input)

	assert.Equal(t, first, second)
	assert.Len(t, first, 2)
}

func TestParseBlocksLowercaseKeyDoesNotFillField(t *testing.T) {
	t.Parallel()

	blocks := collectBlocks(t, "Name: Gandalf\nclass: Mage\nPosition: Ranged_Dps\n")
	require.Len(t, blocks, 1)

	_, missing := blocks[0].Record()
	assert.Equal(t, []string{KeyClass}, missing)
}

func TestParseBlocksAcceptsLongLines(t *testing.T) {
	t.Parallel()

	name := "N" + strings.Repeat("a", 200*1024)
	blocks := collectBlocks(t, "Name: "+name+"\nClass: Mage\n")

	require.Len(t, blocks, 1)
	assert.Equal(t, name, blocks[0].Fields[KeyName])
}

func TestParseBlocksRejectsLineOverLimit(t *testing.T) {
	t.Parallel()

	input := "Name: " + strings.Repeat("a", MaxLineSize+1) + "\n"

	var gotErr error
	for _, err := range ParseBlocks(strings.NewReader(input)) {
		gotErr = err
	}

	require.Error(t, gotErr)
	assert.ErrorContains(t, gotErr, "scan roster blocks")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestParseBlocksYieldsReadError(t *testing.T) {
	t.Parallel()

	var gotErr error
	for _, err := range ParseBlocks(failingReader{}) {
		gotErr = err
	}

	require.Error(t, gotErr)
	assert.ErrorContains(t, gotErr, "disk on fire")
}

func TestBlockRecord(t *testing.T) {
	t.Parallel()

	complete := Block{Line: 1, Fields: map[string]string{"Name": "Gandalf", "Class": "Mage", "Position": "Ranged_Dps"}}
	record, missing := complete.Record()
	assert.Empty(t, missing)
	assert.Equal(t, CandidateRecord{Name: "Gandalf", Class: ClassMage, Role: RoleRangedDPS}, record)

	partial := Block{Line: 7, Fields: map[string]string{"Name": "Gandalf"}}
	record, missing = partial.Record()
	assert.Equal(t, []string{KeyClass, KeyPosition}, missing)
	assert.Zero(t, record)
}
