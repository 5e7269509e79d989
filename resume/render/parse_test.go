package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHeaderAndSection(t *testing.T) {
	got := Parse("Jane Doe\n555-1234\n\n## Experience\n\nDid things\n- Built X\n- Shipped Y")

	assert.Equal(t, Header{Name: "Jane Doe", Contact: "555-1234"}, got.Header)
	require.Len(t, got.Sections, 1)
	sec := got.Sections[0]
	assert.Equal(t, "Experience", sec.Title)
	assert.Equal(t, []Block{
		{Kind: BlockParagraph, Text: "Did things"},
		{Kind: BlockBullets, Items: []string{"Built X", "Shipped Y"}},
	}, sec.Blocks)
}

func TestParseWithoutMarkersIsHeaderOnly(t *testing.T) {
	got := Parse("Jane Doe\njane@x.com | Berlin\nBackend engineer.\nLoves Go.")
	assert.Empty(t, got.Sections)
	assert.Equal(t, Header{
		Name:    "Jane Doe",
		Contact: "jane@x.com | Berlin",
		Summary: "Backend engineer. Loves Go.",
	}, got.Header)
}

func TestParseSectionWithEmptyBody(t *testing.T) {
	got := Parse("Jane\n\n## Skills\n\n## Projects\n\ntailor")
	require.Len(t, got.Sections, 2)
	assert.Equal(t, "Skills", got.Sections[0].Title)
	assert.Empty(t, got.Sections[0].Blocks)
	assert.Equal(t, []Block{{Kind: BlockParagraph, Text: "tailor"}}, got.Sections[1].Blocks)
}

func TestParseBulletMarkers(t *testing.T) {
	got := Parse("X\n## Skills\n* Go\n• SQL\n- Docker\n-NotABullet")
	require.Len(t, got.Sections, 1)
	assert.Equal(t, []Block{
		{Kind: BlockBullets, Items: []string{"Go", "SQL", "Docker"}},
		{Kind: BlockParagraph, Text: "-NotABullet"},
	}, got.Sections[0].Blocks)
}

func TestParseIgnoresDeeperHeadings(t *testing.T) {
	got := Parse("X\n## Experience\n### Acme\nEngineer")
	require.Len(t, got.Sections, 1)
	assert.Equal(t, "### Acme Engineer", got.Sections[0].Blocks[0].Text)
}

func TestParseParagraphsSplitOnBlankLines(t *testing.T) {
	got := Parse("X\n## Experience\nEngineer at Acme\n2019 - 2021\n   \nLead at Beta")
	require.Len(t, got.Sections, 1)
	assert.Equal(t, []Block{
		{Kind: BlockParagraph, Text: "Engineer at Acme 2019 - 2021"},
		{Kind: BlockParagraph, Text: "Lead at Beta"},
	}, got.Sections[0].Blocks)
}
