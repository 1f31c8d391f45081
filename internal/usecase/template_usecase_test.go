package usecase_test

import (
	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type TemplateRepoMock struct{ mock.Mock }

func (m *TemplateRepoMock) Create(ctx context.Context, t model.Template) (model.Template, error) {
	args := m.Called(ctx, t)
	tt, _ := args.Get(0).(model.Template)
	return tt, args.Error(1)
}

func (m *TemplateRepoMock) FindByID(ctx context.Context, id int64) (model.Template, error) {
	args := m.Called(ctx, id)
	tt, _ := args.Get(0).(model.Template)
	return tt, args.Error(1)
}

func (m *TemplateRepoMock) List(ctx context.Context) ([]model.Template, error) {
	args := m.Called(ctx)
	ts, _ := args.Get(0).([]model.Template)
	return ts, args.Error(1)
}

func (m *TemplateRepoMock) Update(ctx context.Context, t model.Template) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *TemplateRepoMock) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestTemplateUsecase_Create_RequiresNameAndContent(t *testing.T) {
	uc := usecase.NewTemplateUsecase(new(TemplateRepoMock))

	_, err := uc.Create(context.Background(), usecase.TemplateInput{Content: "hello"})
	assertHTTPError(t, err, 400)

	_, err = uc.Create(context.Background(), usecase.TemplateInput{Name: "greet"})
	assertHTTPError(t, err, 400)
}

func TestTemplateUsecase_Get_NotFound(t *testing.T) {
	templates := new(TemplateRepoMock)
	templates.On("FindByID", mock.Anything, int64(9)).
		Return(model.Template{}, repo.ErrNotFound)

	uc := usecase.NewTemplateUsecase(templates)

	_, err := uc.Get(context.Background(), 9)
	assertHTTPError(t, err, 404)
}

func TestTemplateUsecase_Render(t *testing.T) {
	templates := new(TemplateRepoMock)
	templates.On("FindByID", mock.Anything, int64(1)).
		Return(model.Template{
			ID:        1,
			Name:      "greet",
			Content:   "Hello {{name}}, welcome to {{place}}!",
			Variables: []string{"name", "place"},
		}, nil)

	uc := usecase.NewTemplateUsecase(templates)

	out, err := uc.Render(context.Background(), 1, map[string]string{"name": "Ada", "place": "the shop"})
	assert.NoError(t, err)
	assert.Equal(t, "Hello Ada, welcome to the shop!", out)
}

// 宣言済み変数が足りなければ400
func TestTemplateUsecase_Render_MissingVariable(t *testing.T) {
	templates := new(TemplateRepoMock)
	templates.On("FindByID", mock.Anything, int64(1)).
		Return(model.Template{
			ID:        1,
			Content:   "Hello {{name}}",
			Variables: []string{"name"},
		}, nil)

	uc := usecase.NewTemplateUsecase(templates)

	_, err := uc.Render(context.Background(), 1, map[string]string{})
	assertHTTPError(t, err, 400)
}

func TestRenderTemplate_LeavesUndeclaredPlaceholders(t *testing.T) {
	tmpl := model.Template{
		Content:   "{{a}} and {{b}}",
		Variables: []string{"a"},
	}

	out, err := usecase.RenderTemplate(tmpl, map[string]string{"a": "x"})
	assert.NoError(t, err)
	assert.Equal(t, "x and {{b}}", out)
}
