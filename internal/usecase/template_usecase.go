package usecase

import (
	"app/internal/domain/model"
	repo "app/internal/repository"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// TemplateUsecase は生成テンプレートのCRUDとレンダリング。
type TemplateUsecase struct {
	templateRepo repo.TemplateRepository
}

// DI
func NewTemplateUsecase(templateRepo repo.TemplateRepository) *TemplateUsecase {
	return &TemplateUsecase{templateRepo: templateRepo}
}

type TemplateInput struct {
	Name         string
	Description  string
	Content      string
	Variables    []string
	QualityRules model.QualityRules
}

func (u *TemplateUsecase) Create(ctx context.Context, in TemplateInput) (model.Template, error) {
	if in.Name == "" {
		return model.Template{}, NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if in.Content == "" {
		return model.Template{}, NewHTTPError(http.StatusBadRequest, "content is required")
	}

	t := model.Template{
		Name:         in.Name,
		Description:  in.Description,
		Content:      in.Content,
		Variables:    in.Variables,
		QualityRules: in.QualityRules,
	}

	created, err := u.templateRepo.Create(ctx, t)
	if err != nil {
		return model.Template{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *TemplateUsecase) Get(ctx context.Context, id int64) (model.Template, error) {
	t, err := u.templateRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Template{}, NewHTTPError(http.StatusNotFound, "Template not found")
	}
	if err != nil {
		return model.Template{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return t, nil
}

func (u *TemplateUsecase) List(ctx context.Context) ([]model.Template, error) {
	templates, err := u.templateRepo.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return templates, nil
}

func (u *TemplateUsecase) Update(ctx context.Context, id int64, in TemplateInput) (model.Template, error) {
	if in.Name == "" {
		return model.Template{}, NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if in.Content == "" {
		return model.Template{}, NewHTTPError(http.StatusBadRequest, "content is required")
	}

	t := model.Template{
		ID:           id,
		Name:         in.Name,
		Description:  in.Description,
		Content:      in.Content,
		Variables:    in.Variables,
		QualityRules: in.QualityRules,
	}

	if err := u.templateRepo.Update(ctx, t); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Template{}, NewHTTPError(http.StatusNotFound, "Template not found")
		}
		return model.Template{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.Get(ctx, id)
}

func (u *TemplateUsecase) Delete(ctx context.Context, id int64) error {
	if err := u.templateRepo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "Template not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// Render はテンプレートを変数で埋めて返す。
func (u *TemplateUsecase) Render(ctx context.Context, id int64, vars map[string]string) (string, error) {
	t, err := u.Get(ctx, id)
	if err != nil {
		return "", err
	}

	rendered, rerr := RenderTemplate(t, vars)
	if rerr != nil {
		return "", NewHTTPError(http.StatusBadRequest, rerr.Error())
	}
	return rendered, nil
}

// RenderTemplate は {{name}} を変数の値で置換する。
// テンプレートが宣言した変数が足りなければエラー。
func RenderTemplate(t model.Template, vars map[string]string) (string, error) {
	for _, name := range t.Variables {
		if _, ok := vars[name]; !ok {
			return "", fmt.Errorf("missing variable: %s", name)
		}
	}

	rendered := t.Content
	for name, value := range vars {
		rendered = strings.ReplaceAll(rendered, "{{"+name+"}}", value)
	}
	return rendered, nil
}
