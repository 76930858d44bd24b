package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"relato/internal/domain"
	"relato/internal/ports"
)

// RegisterContentTools adds the read-only page tools to the MCP server.
func RegisterContentTools(s *server.MCPServer, src ports.ContentSource) {
	s.AddTool(sectionsTool(), sectionsHandler(src))
	s.AddTool(galleryTool(), galleryHandler(src))
	s.AddTool(captionTool(), captionHandler(src))
}

// --- list_sections ---

func sectionsTool() mcp.Tool {
	return mcp.NewTool("list_sections",
		mcp.WithDescription("List the page sections in scroll order with their index, kind and navigation label."),
	)
}

func sectionsHandler(src ports.ContentSource) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		page, err := src.LoadPage(ctx)
		if err != nil {
			return toolError(err)
		}
		reg := page.Registry()
		return formatEntities(page.Sections, func(d domain.SectionDecl) string {
			s, _ := reg.Lookup(d.ID)
			return fmt.Sprintf("%d  %s  %s  %s", s.Index, d.ID, s.Kind, d.Nav)
		})
	}
}

// --- list_gallery ---

func galleryTool() mcp.Tool {
	return mcp.NewTool("list_gallery",
		mcp.WithDescription("List the gallery catalog in order with image URLs."),
	)
}

func galleryHandler(src ports.ContentSource) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		page, err := src.LoadPage(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(page.Gallery, formatImage)
	}
}

// --- gallery_caption ---

func captionTool() mcp.Tool {
	return mcp.NewTool("gallery_caption",
		mcp.WithDescription("Get the caption shown for a gallery image, with its position and neighbours."),
		mcp.WithString("id",
			mcp.Description("Image id (e.g. galeria_1.jpg)"),
			mcp.Required(),
		),
	)
}

func captionHandler(src ports.ContentSource) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if id == "" {
			return toolError(fmt.Errorf("id is required"))
		}

		page, err := src.LoadPage(ctx)
		if err != nil {
			return toolError(err)
		}

		seq := page.GallerySequence()
		i := seq.IndexOf(id)
		if i < 0 {
			return toolError(fmt.Errorf("image %s: %w", id, domain.ErrNotFound))
		}

		prev, _ := seq.At(seq.Prev(i))
		next, _ := seq.At(seq.Next(i))
		c := seq.CaptionFor(id)

		var sb strings.Builder
		fmt.Fprintf(&sb, "%d / %d  %s\n", i+1, seq.Len(), id)
		fmt.Fprintf(&sb, "%s\n%s\n", c.Title, c.Description)
		fmt.Fprintf(&sb, "prev  %s\nnext  %s\n", prev.ID, next.ID)
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatImage(img domain.GalleryImage) string {
	return fmt.Sprintf("%s  %s", img.ID, img.URL)
}
