package usecase

import (
	"app/internal/contentgen"
	"app/internal/domain/model"
	repo "app/internal/repository"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// プロバイダ設定からクライアントを作るファクトリ（テストで差し替える）
type ClientFactory func(p model.Provider) (contentgen.Client, error)

// GenerationUsecase はコンテンツ生成タスクの実行と記録。
type GenerationUsecase struct {
	taskRepo     repo.GenerationTaskRepository
	templateRepo repo.TemplateRepository
	providerRepo repo.ProviderRepository
	newClient    ClientFactory
	batchLimit   int
}

// DI
func NewGenerationUsecase(
	taskRepo repo.GenerationTaskRepository,
	templateRepo repo.TemplateRepository,
	providerRepo repo.ProviderRepository,
	newClient ClientFactory,
	batchLimit int,
) *GenerationUsecase {
	if newClient == nil {
		newClient = contentgen.NewClient
	}
	if batchLimit < 1 {
		batchLimit = 1
	}
	return &GenerationUsecase{
		taskRepo:     taskRepo,
		templateRepo: templateRepo,
		providerRepo: providerRepo,
		newClient:    newClient,
		batchLimit:   batchLimit,
	}
}

type GenerateInput struct {
	TemplateID int64
	ProviderID int64
	Variables  map[string]string
}

type BatchGenerateInput struct {
	TemplateID int64
	ProviderID int64
	Inputs     []map[string]string
}

type BatchGenerateResponse struct {
	Tasks []model.GenerationTask `json:"tasks"`
}

// Generate は同期生成。タスクを記録して結果と採点を保存する。
func (u *GenerationUsecase) Generate(ctx context.Context, in GenerateInput) (model.GenerationTask, error) {
	tmpl, provider, err := u.loadTemplateAndProvider(ctx, in.TemplateID, in.ProviderID)
	if err != nil {
		return model.GenerationTask{}, err
	}

	task, err := u.createTask(ctx, in)
	if err != nil {
		return model.GenerationTask{}, err
	}

	return u.runTask(ctx, task, tmpl, provider)
}

// GenerateAsync はタスクを作ってすぐIDを返し、裏で生成を走らせる。
// 走り出したタスクは止められない。
func (u *GenerationUsecase) GenerateAsync(ctx context.Context, in GenerateInput) (model.GenerationTask, error) {
	tmpl, provider, err := u.loadTemplateAndProvider(ctx, in.TemplateID, in.ProviderID)
	if err != nil {
		return model.GenerationTask{}, err
	}

	task, err := u.createTask(ctx, in)
	if err != nil {
		return model.GenerationTask{}, err
	}

	go func() {
		//リクエストのctxは使えない（レスポンス後にキャンセルされる）
		bg := context.Background()
		_, _ = u.runTask(bg, task, tmpl, provider)
	}()

	return task, nil
}

// GenerateBatch は入力ごとにタスクを作り、上限付き並列で全部終わるまで待つ。
// 一部が失敗しても残りは最後まで実行する（部分返却はしない）。
func (u *GenerationUsecase) GenerateBatch(ctx context.Context, in BatchGenerateInput) (BatchGenerateResponse, error) {
	if len(in.Inputs) == 0 {
		return BatchGenerateResponse{}, NewHTTPError(http.StatusBadRequest, "inputs is required")
	}

	tmpl, provider, err := u.loadTemplateAndProvider(ctx, in.TemplateID, in.ProviderID)
	if err != nil {
		return BatchGenerateResponse{}, err
	}

	tasks := make([]model.GenerationTask, len(in.Inputs))
	for i, vars := range in.Inputs {
		task, err := u.createTask(ctx, GenerateInput{
			TemplateID: in.TemplateID,
			ProviderID: in.ProviderID,
			Variables:  vars,
		})
		if err != nil {
			return BatchGenerateResponse{}, err
		}
		tasks[i] = task
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.batchLimit)

	for i := range tasks {
		i := i
		g.Go(func() error {
			done, err := u.runTask(gctx, tasks[i], tmpl, provider)
			if err == nil {
				tasks[i] = done
			}
			//失敗はタスク側に記録済み。バッチ全体は止めない。
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return BatchGenerateResponse{}, NewHTTPError(http.StatusInternalServerError, "batch failed")
	}

	//記録済みの最終状態を読み直す
	for i := range tasks {
		if t, err := u.taskRepo.FindByID(ctx, tasks[i].ID); err == nil {
			tasks[i] = t
		}
	}

	return BatchGenerateResponse{Tasks: tasks}, nil
}

// GetTask はタスクを1件返す。
func (u *GenerationUsecase) GetTask(ctx context.Context, id string) (model.GenerationTask, error) {
	t, err := u.taskRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.GenerationTask{}, NewHTTPError(http.StatusNotFound, "Task not found")
	}
	if err != nil {
		return model.GenerationTask{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return t, nil
}

// ListTasks は新しい順にタスクを返す。
func (u *GenerationUsecase) ListTasks(ctx context.Context, limit int) ([]model.GenerationTask, error) {
	tasks, err := u.taskRepo.List(ctx, limit)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return tasks, nil
}

func (u *GenerationUsecase) loadTemplateAndProvider(ctx context.Context, templateID int64, providerID int64) (model.Template, model.Provider, error) {
	tmpl, err := u.templateRepo.FindByID(ctx, templateID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Template{}, model.Provider{}, NewHTTPError(http.StatusNotFound, "Template not found")
	}
	if err != nil {
		return model.Template{}, model.Provider{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	provider, err := u.providerRepo.FindByID(ctx, providerID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Template{}, model.Provider{}, NewHTTPError(http.StatusNotFound, "Provider not found")
	}
	if err != nil {
		return model.Template{}, model.Provider{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !provider.IsActive {
		return model.Template{}, model.Provider{}, NewHTTPError(http.StatusBadRequest, "provider is not active")
	}

	return tmpl, provider, nil
}

func (u *GenerationUsecase) createTask(ctx context.Context, in GenerateInput) (model.GenerationTask, error) {
	task := model.GenerationTask{
		ID:         uuid.NewString(),
		TemplateID: in.TemplateID,
		ProviderID: in.ProviderID,
		Status:     model.TaskStatusPending,
		Variables:  in.Variables,
	}

	created, err := u.taskRepo.Create(ctx, task)
	if err != nil {
		return model.GenerationTask{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

// runTask は生成→採点→記録まで。失敗はFAILEDで記録して返す。
func (u *GenerationUsecase) runTask(ctx context.Context, task model.GenerationTask, tmpl model.Template, provider model.Provider) (model.GenerationTask, error) {
	task.Status = model.TaskStatusRunning
	if err := u.taskRepo.Update(ctx, task); err != nil {
		return model.GenerationTask{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	output, err := u.generateContent(ctx, task, tmpl, provider)

	now := time.Now()
	task.CompletedAt = &now

	if err != nil {
		task.Status = model.TaskStatusFailed
		task.ErrorMessage = err.Error()
		if uerr := u.taskRepo.Update(ctx, task); uerr != nil {
			return model.GenerationTask{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return task, nil
	}

	result := CheckContentQuality(output, tmpl.QualityRules)
	score := result.Score

	task.Status = model.TaskStatusCompleted
	task.Output = output
	task.QualityScore = &score

	if err := u.taskRepo.Update(ctx, task); err != nil {
		return model.GenerationTask{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return task, nil
}

func (u *GenerationUsecase) generateContent(ctx context.Context, task model.GenerationTask, tmpl model.Template, provider model.Provider) (string, error) {
	prompt, err := RenderTemplate(tmpl, task.Variables)
	if err != nil {
		return "", err
	}

	client, err := u.newClient(provider)
	if err != nil {
		return "", err
	}

	return client.Generate(ctx, prompt)
}
