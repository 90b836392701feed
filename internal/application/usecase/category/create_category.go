// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spendxp/backend/internal/application/session"
	"github.com/spendxp/backend/internal/domain/entity"
	domainerror "github.com/spendxp/backend/internal/domain/error"
)

// MaxCategoryNameLength is the maximum allowed length for category names.
const MaxCategoryNameLength = 50

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	AccountKey string
	Name       string
	Emoji      string // Optional, defaults to DefaultCategoryEmoji
	Color      string // Optional, defaults to DefaultCategoryColor
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category entity.Category
}

// CreateCategoryUseCase handles custom category creation.
type CreateCategoryUseCase struct {
	sessions *session.Manager
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(sessions *session.Manager) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		sessions: sessions,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeMissingCategoryFields,
			"category name is required",
			domainerror.ErrCategoryNameRequired,
		)
	}
	if utf8.RuneCountInString(name) > MaxCategoryNameLength {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameTooLong,
			fmt.Sprintf("category name must not exceed %d characters", MaxCategoryNameLength),
			domainerror.ErrCategoryNameTooLong,
		)
	}

	emoji := strings.TrimSpace(input.Emoji)
	if emoji == "" {
		emoji = entity.DefaultCategoryEmoji
	}
	color := strings.TrimSpace(input.Color)
	if color == "" {
		color = entity.DefaultCategoryColor
	}

	s, release, err := uc.sessions.Acquire(ctx, input.AccountKey)
	if err != nil {
		return nil, err
	}
	defer release()

	for _, existing := range s.Account.Categories {
		if strings.EqualFold(existing.Name, name) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNameExists,
				"a category with this name already exists",
				domainerror.ErrCategoryNameExists,
			)
		}
	}

	category := entity.NewCategory(name, emoji, color)
	s.Account.Categories = s.Account.Categories.Add(category)
	uc.sessions.Commit(ctx, s)

	return &CreateCategoryOutput{
		Category: *category,
	}, nil
}
