package game

import "errors"

var (
	ErrInvalidTier       = errors.New("tier out of range")
	ErrUnknownCharacter  = errors.New("unknown character")
	ErrInvalidTeamMember = errors.New("team member out of range")
	ErrUnknownAction     = errors.New("unknown action")
	ErrUnknownCardType   = errors.New("unknown card type")
	ErrUnknownEpiphany   = errors.New("unknown epiphany type")
	ErrCardNotFound      = errors.New("card not found")
)
