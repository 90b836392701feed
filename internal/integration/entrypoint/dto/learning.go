package dto

import "github.com/spendxp/backend/internal/application/usecase/learning"

// ModuleResponse represents a learning module.
type ModuleResponse struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Emoji       string       `json:"emoji"`
	Description string       `json:"description"`
	Content     []string     `json:"content"`
	Quiz        QuizResponse `json:"quiz"`
	XPReward    float64      `json:"xp_reward"`
	Completed   bool         `json:"completed"`
}

// ModuleListResponse represents the learning catalogue.
type ModuleListResponse struct {
	Modules []ModuleResponse `json:"modules"`
}

// ToModuleListResponse converts the list use case output.
func ToModuleListResponse(output *learning.ListModulesOutput) ModuleListResponse {
	modules := make([]ModuleResponse, 0, len(output.Modules))
	for _, item := range output.Modules {
		m := item.Module
		modules = append(modules, ModuleResponse{
			ID:          m.ID,
			Title:       m.Title,
			Emoji:       m.Emoji,
			Description: m.Description,
			Content:     m.Content,
			Quiz:        *ToQuizResponse(&m.Quiz),
			XPReward:    m.XPReward,
			Completed:   item.Completed,
		})
	}
	return ModuleListResponse{Modules: modules}
}
