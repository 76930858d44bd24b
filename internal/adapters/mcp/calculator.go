package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"relato/internal/application"
	"relato/internal/domain"
)

// RegisterCalculatorTools adds the cisco conversion tools to the MCP server.
func RegisterCalculatorTools(s *server.MCPServer, f *application.Formatter) {
	s.AddTool(areaTool(), areaHandler(f))
	s.AddTool(urbanTool(), urbanHandler(f))
}

// --- calculate_area ---

func areaTool() mcp.Tool {
	return mcp.NewTool("calculate_area",
		mcp.WithDescription("Convert tons of coffee cisco into square meters of WPC board (9 kg per m², rounded to the nearest thousand)."),
		mcp.WithString("tons",
			mcp.Description("Tons of cisco. Leading number is read, the rest ignored (e.g. 196, \"196 t\")."),
			mcp.DefaultString(domain.DefaultCiscoInput),
		),
	)
}

func areaHandler(f *application.Formatter) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		m := domain.CalculateArea(req.GetString("tons", domain.DefaultCiscoInput))
		return mcp.NewToolResultText(fmt.Sprintf("%s t  %s m²  (≈ %s m²)",
			f.Number(m.InputTons),
			f.Decimal(m.SqMetersExact, 2),
			f.Decimal(m.SqMetersRounded, 0),
		)), nil
	}
}

// --- calculate_urban ---

func urbanTool() mcp.Tool {
	return mcp.NewTool("calculate_urban",
		mcp.WithDescription("Convert tons of coffee cisco into urban furniture: benches, bus shelters and meters of decking."),
		mcp.WithString("tons",
			mcp.Description("Tons of cisco"),
			mcp.DefaultString(domain.DefaultUrbanInput),
		),
	)
}

func urbanHandler(f *application.Formatter) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		m := domain.CalculateUrban(req.GetString("tons", domain.DefaultUrbanInput))
		return mcp.NewToolResultText(fmt.Sprintf("benches  %s\nshelters  %s\ndeck_meters  %s\n",
			f.Count(m.Benches, true, ""),
			f.Count(m.Shelters, true, ""),
			f.Count(m.DeckMeters, true, ""),
		)), nil
	}
}
