package view

// JSON views of the engine shared by the console, MCP and web surfaces.

// StateView is the active team member's deck plus roster-level facts.
type StateView struct {
	ActiveTeamMember int              `json:"active_team_member"`
	Team             []TeamMemberView `json:"team"`
	Character        string           `json:"character,omitempty"`
	Tier             int              `json:"tier"`
	Cap              int              `json:"cap"`
	CurrentPoints    int              `json:"current_points"`
	Status           StatusView       `json:"status"`
	CanUndo          bool             `json:"can_undo"`

	BaseCards       []CardView `json:"base_cards"`
	AdditionalCards []CardView `json:"additional_cards"`

	Breakdown BreakdownView `json:"breakdown"`

	NextRemovalCost     int `json:"next_removal_cost"`
	NextDuplicationCost int `json:"next_duplication_cost"`
}

// TeamMemberView is one tab of the team bar.
type TeamMemberView struct {
	Number    int    `json:"number"`
	Character string `json:"character,omitempty"`
	Points    int    `json:"points"`
	Cap       int    `json:"cap"`
}

// CardView describes a single card.
type CardView struct {
	ID               string          `json:"id"`
	Slot             int             `json:"slot,omitempty"` // 1-based, base cards only
	Name             string          `json:"name,omitempty"`
	Type             string          `json:"type"`
	Epiphany         string          `json:"epiphany"`
	IsLocked         bool            `json:"is_locked,omitempty"`
	IsRemoved        bool            `json:"is_removed,omitempty"`
	IsConverted      bool            `json:"is_converted,omitempty"`
	IsDuplicate      bool            `json:"is_duplicate,omitempty"`
	OriginalCardID   string          `json:"original_card_id,omitempty"`
	DuplicationIndex *int            `json:"duplication_index,omitempty"`
	Points           int             `json:"points"`
	DisplayPoints    int             `json:"display_points"`
	Actions          CardActionsView `json:"actions"`
}

// CardActionsView lists the commands that would change the card.
type CardActionsView struct {
	Unlock    bool `json:"unlock"`
	Epiphany  bool `json:"epiphany"`
	Convert   bool `json:"convert"`
	Duplicate bool `json:"duplicate"`
	Remove    bool `json:"remove"`
	Delete    bool `json:"delete"`
}

// StatusView is the cap indicator.
type StatusView struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// TallyView is one breakdown line.
type TallyView struct {
	Count      int `json:"count"`
	BonusCount int `json:"bonus_count,omitempty"`
	Points     int `json:"points"`
}

// BreakdownView groups points by category.
type BreakdownView struct {
	BaseCards         TallyView `json:"base_cards"`
	NeutralCards      TallyView `json:"neutral_cards"`
	MonsterCards      TallyView `json:"monster_cards"`
	ForbiddenCards    TallyView `json:"forbidden_cards"`
	RegularEpiphanies TallyView `json:"regular_epiphanies"`
	DivineEpiphanies  TallyView `json:"divine_epiphanies"`
	Removals          TallyView `json:"removals"`
	Duplications      TallyView `json:"duplications"`
	Conversions       TallyView `json:"conversions"`

	CardsSubtotal      int `json:"cards_subtotal"`
	EpiphaniesSubtotal int `json:"epiphanies_subtotal"`
	ActionsSubtotal    int `json:"actions_subtotal"`
	Total              int `json:"total"`
}

// EventView is a simplified engine event.
type EventView struct {
	Seq        int    `json:"seq"`
	TeamMember int    `json:"team_member"`
	Type       string `json:"type"`
	CardID     string `json:"card_id,omitempty"`
	Card       string `json:"card,omitempty"`
	Details    string `json:"details"`
	Points     int    `json:"points"`
	Cap        int    `json:"cap"`
}

// CharacterView is one entry of the character selector.
type CharacterView struct {
	Key           string   `json:"key"`
	DisplayName   string   `json:"display_name"`
	StartingCards []string `json:"starting_cards"`
	UniqueCards   []string `json:"unique_cards"`
}

// LookupView is the quick-lookup result.
type LookupView struct {
	CardValue       int `json:"card_value"`
	DuplicationCost int `json:"duplication_cost"`
	Total           int `json:"total"`
}
