package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/peterkuimelis/savedata/internal/game"
	"github.com/peterkuimelis/savedata/internal/view"
)

// RegisterTools adds all calculator tools to the MCP server.
func RegisterTools(s *server.MCPServer, sess *Session) {
	s.AddTool(applyActionTool(), sess.handleApplyAction)
	s.AddTool(undoTool(), sess.handleUndo)
	s.AddTool(getStateTool(), sess.handleGetState)
	s.AddTool(listCharactersTool(), sess.handleListCharacters)
	s.AddTool(quickLookupTool(), sess.handleQuickLookup)
	s.AddTool(bulkCountTool(), sess.handleBulkCount)
}

// --- Tool definitions ---

func applyActionTool() mcp.Tool {
	return mcp.NewTool("apply_action",
		mcp.WithDescription("Apply one action to the active team member's deck and return the new state. "+
			"Card actions (unlock, remove, add_epiphany, convert, duplicate, delete) need card_id from the state's card lists. "+
			"Actions whose preconditions fail return applied=false and change nothing."),
		mcp.WithString("action", mcp.Required(), mcp.Enum(game.Actions...), mcp.Description("Action name")),
		mcp.WithString("card_id", mcp.Description("Target card id for card actions")),
		mcp.WithString("card_type", mcp.Enum("base", "neutral", "monster", "forbidden"), mcp.Description("Card type for add_card")),
		mcp.WithString("epiphany", mcp.Enum("regular", "divine"), mcp.Description("Epiphany kind for add_epiphany")),
		mcp.WithNumber("tier", mcp.Description("Tier 1-15 for set_tier")),
		mcp.WithNumber("team_member", mcp.Description("Team member 1-3 for switch_team_member")),
		mcp.WithString("character", mcp.Description("Character key for select_character (see list_characters)")),
	)
}

func undoTool() mcp.Tool {
	return mcp.NewTool("undo",
		mcp.WithDescription("Undo the active team member's last action. Selecting a character or resetting the run cannot be undone."),
	)
}

func getStateTool() mcp.Tool {
	return mcp.NewTool("get_state",
		mcp.WithDescription("Get the active deck, points, cap status, breakdown and events since the last call. Read-only."),
	)
}

func listCharactersTool() mcp.Tool {
	return mcp.NewTool("list_characters",
		mcp.WithDescription("List the selectable characters and their starting and unique card names. Read-only."),
	)
}

func quickLookupTool() mcp.Tool {
	return mcp.NewTool("quick_lookup",
		mcp.WithDescription("Price a hypothetical card without changing any deck."),
		mcp.WithString("card_type", mcp.Required(), mcp.Enum("base", "neutral", "monster", "forbidden")),
		mcp.WithString("epiphany", mcp.Enum("none", "regular", "divine")),
		mcp.WithNumber("duplicate_position", mcp.Description("1-based duplicate position, 0 or omitted if not a duplicate")),
	)
}

func bulkCountTool() mcp.Tool {
	return mcp.NewTool("bulk_count",
		mcp.WithDescription("Compute save-data points from counts alone. Sub-counts (regular_on_base, regular_on_monster, "+
			"divine_on_neutral, bonus_removals) are clamped to their parent counts."),
		mcp.WithNumber("base_cards"),
		mcp.WithNumber("neutral_cards"),
		mcp.WithNumber("monster_cards"),
		mcp.WithNumber("forbidden_cards"),
		mcp.WithNumber("regular_epiphanies"),
		mcp.WithNumber("regular_on_base", mcp.Description("Regular epiphanies on base cards (free)")),
		mcp.WithNumber("regular_on_monster", mcp.Description("Regular epiphanies on monster cards (free, in-game bug)")),
		mcp.WithNumber("divine_epiphanies"),
		mcp.WithNumber("divine_on_neutral", mcp.Description("Divine epiphanies on neutral cards (+10 each, in-game bug)")),
		mcp.WithNumber("removals"),
		mcp.WithNumber("bonus_removals", mcp.Description("Removals charged the +20 bonus")),
		mcp.WithNumber("duplications"),
		mcp.WithNumber("conversions"),
	)
}

// --- Tool handlers ---

func (s *Session) handleApplyAction(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var cmd game.Command
	if err := decodeArgs(request.GetArguments(), &cmd); err != nil {
		return mcp.NewToolResultErrorf("Invalid arguments: %v", err), nil
	}
	resp, err := s.apply(cmd)
	if err != nil {
		return mcp.NewToolResultErrorf("Action %q failed: %v", cmd.Action, err), nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func (s *Session) handleUndo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	resp, err := s.apply(game.Command{Action: game.ActionUndo})
	if err != nil {
		return mcp.NewToolResultErrorf("Undo failed: %v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func (s *Session) handleGetState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(respondJSON(s.snapshot())), nil
}

func (s *Session) handleListCharacters(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(respondJSON(s.characters())), nil
}

func (s *Session) handleQuickLookup(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	t, err := game.ParseCardType(request.GetString("card_type", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	e, err := game.ParseEpiphanyType(request.GetString("epiphany", "none"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	pos := request.GetInt("duplicate_position", 0)
	if pos < 0 {
		return mcp.NewToolResultErrorf("duplicate_position must be >= 0, got %d", pos), nil
	}
	return mcp.NewToolResultText(respondJSON(view.BuildLookupView(game.QuickLookup(t, e, pos)))), nil
}

func (s *Session) handleBulkCount(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var counts game.BulkCounts
	if err := decodeArgs(request.GetArguments(), &counts); err != nil {
		return mcp.NewToolResultErrorf("Invalid arguments: %v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(game.BulkTotalsFor(counts))), nil
}
