package usecase

import (
	"context"
	"fmt"

	"github.com/vadimbarashkov/linkpulse/internal/entity"
)

type templateRepository interface {
	Save(ctx context.Context, name string, countdownSeconds int, brandingText string) (*entity.RedirectTemplate, error)
	List(ctx context.Context) ([]entity.RedirectTemplate, error)
	SetDefault(ctx context.Context, id int64) (*entity.RedirectTemplate, error)
	RetrieveDefault(ctx context.Context) (*entity.RedirectTemplate, error)
	Remove(ctx context.Context, id int64) error
}

// TemplateInput carries the caller-supplied fields for a redirect template.
type TemplateInput struct {
	Name             string
	CountdownSeconds int
	BrandingText     string
}

type TemplateUseCase struct {
	templateRepo templateRepository
}

func NewTemplateUseCase(templateRepo templateRepository) *TemplateUseCase {
	return &TemplateUseCase{templateRepo: templateRepo}
}

func (uc *TemplateUseCase) Create(ctx context.Context, input TemplateInput) (*entity.RedirectTemplate, error) {
	const op = "usecase.TemplateUseCase.Create"

	tpl, err := uc.templateRepo.Save(ctx, input.Name, input.CountdownSeconds, input.BrandingText)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create template: %w", op, err)
	}

	return tpl, nil
}

func (uc *TemplateUseCase) List(ctx context.Context) ([]entity.RedirectTemplate, error) {
	const op = "usecase.TemplateUseCase.List"

	templates, err := uc.templateRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list templates: %w", op, err)
	}

	return templates, nil
}

// SetDefault promotes a template to the single default. The repository
// enforces the at-most-one-default invariant.
func (uc *TemplateUseCase) SetDefault(ctx context.Context, id int64) (*entity.RedirectTemplate, error) {
	const op = "usecase.TemplateUseCase.SetDefault"

	tpl, err := uc.templateRepo.SetDefault(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to set default template: %w", op, err)
	}

	return tpl, nil
}

func (uc *TemplateUseCase) GetDefault(ctx context.Context) (*entity.RedirectTemplate, error) {
	const op = "usecase.TemplateUseCase.GetDefault"

	tpl, err := uc.templateRepo.RetrieveDefault(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get default template: %w", op, err)
	}

	return tpl, nil
}

func (uc *TemplateUseCase) Delete(ctx context.Context, id int64) error {
	const op = "usecase.TemplateUseCase.Delete"

	if err := uc.templateRepo.Remove(ctx, id); err != nil {
		return fmt.Errorf("%s: failed to delete template: %w", op, err)
	}

	return nil
}
