package notion

import (
	"testing"

	"github.com/jomei/notionapi"

	"refsync/internal/workspace"
)

func TestAPIBlocks_Translation(t *testing.T) {
	blocks := apiBlocks([]workspace.Block{
		{Type: workspace.BlockHeading, Text: "Reflection Tasks"},
		{Type: workspace.BlockBullet, Text: "Reflect on sleep"},
		{Type: workspace.BlockParagraph, Text: "No reflection tasks found for this week."},
	})

	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(blocks))
	}

	wantTypes := []notionapi.BlockType{
		notionapi.BlockTypeHeading2,
		notionapi.BlockTypeBulletedListItem,
		notionapi.BlockTypeParagraph,
	}
	for i, want := range wantTypes {
		if got := blocks[i].GetType(); got != want {
			t.Errorf("block %d: expected type %s, got %s", i, want, got)
		}
	}

	heading, ok := blocks[0].(*notionapi.Heading2Block)
	if !ok {
		t.Fatalf("expected Heading2Block, got %T", blocks[0])
	}
	if len(heading.Heading2.RichText) != 1 {
		t.Fatalf("expected a single rich-text run, got %d", len(heading.Heading2.RichText))
	}
	if heading.Heading2.RichText[0].Text.Content != "Reflection Tasks" {
		t.Errorf("unexpected heading text: %q", heading.Heading2.RichText[0].Text.Content)
	}

	bullet, ok := blocks[1].(*notionapi.BulletedListItemBlock)
	if !ok {
		t.Fatalf("expected BulletedListItemBlock, got %T", blocks[1])
	}
	if bullet.BulletedListItem.RichText[0].Text.Content != "Reflect on sleep" {
		t.Errorf("unexpected bullet text: %q", bullet.BulletedListItem.RichText[0].Text.Content)
	}
}

func TestAPIBlocks_ComposedPage(t *testing.T) {
	// The full composed sequence for a page with tasks: one heading,
	// then one bullet per task.
	composed := workspace.ComposeTaskBlocks([]string{"a", "b", "c"})
	blocks := apiBlocks(composed)

	if len(blocks) != 4 {
		t.Fatalf("expected 4 blocks, got %d", len(blocks))
	}
	if blocks[0].GetType() != notionapi.BlockTypeHeading2 {
		t.Errorf("expected heading first, got %s", blocks[0].GetType())
	}
	for i := 1; i < 4; i++ {
		if blocks[i].GetType() != notionapi.BlockTypeBulletedListItem {
			t.Errorf("block %d: expected bullet, got %s", i, blocks[i].GetType())
		}
	}
}
