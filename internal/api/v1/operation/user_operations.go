package operation

import "meowscope/internal/api/v1/dto"

type GetSessionInput struct {
	// No input needed - user ID comes from auth context
}

type GetSessionOutput struct {
	Body dto.SessionResponseDTO `json:"body"`
}

type GetHistoryInput struct {
	Limit  int `query:"limit" default:"20" minimum:"1" maximum:"100" doc:"Number of entries to return"`
	Offset int `query:"offset" default:"0" minimum:"0" doc:"Offset for pagination"`
}

type GetHistoryOutput struct {
	Body dto.HistoryResponseDTO `json:"body"`
}
