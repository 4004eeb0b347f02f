// Package notion implements the workspace.Service interface using the
// Notion API.
package notion

import (
	"context"
	"fmt"

	"github.com/jomei/notionapi"

	"refsync/internal/config"
	"refsync/internal/workspace"
)

// Client implements workspace.Service using the Notion SDK.
type Client struct {
	api *notionapi.Client
}

// New creates a new Notion client authenticated with the configured token.
func New(cfg *config.Config) (*Client, error) {
	if cfg.NotionToken == "" {
		return nil, fmt.Errorf("notion token not configured")
	}
	return &Client{api: notionapi.NewClient(notionapi.Token(cfg.NotionToken))}, nil
}

// FindPageByTitle runs a workspace search and filters the results to pages
// whose title property's first rich-text run equals title exactly. Search
// ranking is not trusted; only the exact match counts.
func (c *Client) FindPageByTitle(ctx context.Context, title string) (string, error) {
	resp, err := c.api.Search.Do(ctx, &notionapi.SearchRequest{Query: title})
	if err != nil {
		return "", err
	}

	for _, result := range resp.Results {
		page, ok := result.(*notionapi.Page)
		if !ok {
			continue
		}
		if pageTitle(page) == title {
			return string(page.ID), nil
		}
	}
	return "", workspace.ErrNotFound
}

// pageTitle extracts the first rich-text run of the page's title property.
// Notion exposes it as "title" on plain pages and "Name" on database rows.
func pageTitle(page *notionapi.Page) string {
	for _, key := range []string{"title", "Name"} {
		prop, ok := page.Properties[key]
		if !ok {
			continue
		}
		titleProp, ok := prop.(*notionapi.TitleProperty)
		if !ok || len(titleProp.Title) == 0 {
			continue
		}
		return titleProp.Title[0].PlainText
	}
	return ""
}

// VerifyAccess retrieves the page to confirm the integration can reach it.
// Search can miss a page the integration still has access to, so this is
// the authoritative check.
func (c *Client) VerifyAccess(ctx context.Context, pageID string) error {
	if _, err := c.api.Page.Get(ctx, notionapi.PageID(pageID)); err != nil {
		return fmt.Errorf("cannot access page %s: %w", pageID, err)
	}
	return nil
}

// CreateChildPage creates a new page under parentID with the given title
// and content blocks.
func (c *Client) CreateChildPage(ctx context.Context, parentID, title string, blocks []workspace.Block) (string, error) {
	page, err := c.api.Page.Create(ctx, &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:   notionapi.ParentTypePageID,
			PageID: notionapi.PageID(parentID),
		},
		Properties: notionapi.Properties{
			"title": notionapi.TitleProperty{
				Title: []notionapi.RichText{textRun(title)},
			},
		},
		Children: apiBlocks(blocks),
	})
	if err != nil {
		return "", err
	}
	return string(page.ID), nil
}

// apiBlocks translates workspace blocks into Notion block objects.
func apiBlocks(blocks []workspace.Block) []notionapi.Block {
	result := make([]notionapi.Block, 0, len(blocks))
	for _, b := range blocks {
		switch b.Type {
		case workspace.BlockHeading:
			result = append(result, &notionapi.Heading2Block{
				BasicBlock: basicBlock(notionapi.BlockTypeHeading2),
				Heading2: notionapi.Heading{
					RichText: []notionapi.RichText{textRun(b.Text)},
				},
			})
		case workspace.BlockBullet:
			result = append(result, &notionapi.BulletedListItemBlock{
				BasicBlock: basicBlock(notionapi.BlockTypeBulletedListItem),
				BulletedListItem: notionapi.ListItem{
					RichText: []notionapi.RichText{textRun(b.Text)},
				},
			})
		default:
			result = append(result, &notionapi.ParagraphBlock{
				BasicBlock: basicBlock(notionapi.BlockTypeParagraph),
				Paragraph: notionapi.Paragraph{
					RichText: []notionapi.RichText{textRun(b.Text)},
				},
			})
		}
	}
	return result
}

func basicBlock(t notionapi.BlockType) notionapi.BasicBlock {
	return notionapi.BasicBlock{
		Object: notionapi.ObjectTypeBlock,
		Type:   t,
	}
}

func textRun(content string) notionapi.RichText {
	return notionapi.RichText{
		Type: notionapi.ObjectTypeText,
		Text: &notionapi.Text{Content: content},
	}
}
