package workspace

// TasksHeading is the heading above the bulleted task list.
const TasksHeading = "Reflection Tasks"

// EmptyNotice is the paragraph text used when a week has no tasks.
const EmptyNotice = "No reflection tasks found for this week."

// ComposeTaskBlocks builds page content from task titles: one heading
// followed by one bullet per task, or a single paragraph when there are
// no tasks. The two forms are never mixed.
func ComposeTaskBlocks(contents []string) []Block {
	if len(contents) == 0 {
		return []Block{{Type: BlockParagraph, Text: EmptyNotice}}
	}

	blocks := make([]Block, 0, len(contents)+1)
	blocks = append(blocks, Block{Type: BlockHeading, Text: TasksHeading})
	for _, c := range contents {
		blocks = append(blocks, Block{Type: BlockBullet, Text: c})
	}
	return blocks
}
