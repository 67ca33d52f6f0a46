// Package engine implements the expense intent resolution pipeline: parse,
// validate, route, persist, record history.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veraticus/budgetbuddy/internal/config"
	"github.com/Veraticus/budgetbuddy/internal/llm"
	"github.com/Veraticus/budgetbuddy/internal/model"
	"github.com/Veraticus/budgetbuddy/internal/parser"
	"github.com/Veraticus/budgetbuddy/internal/service"
	"github.com/Veraticus/budgetbuddy/internal/session"
)

// Agent drives the pipeline. It owns no business rules beyond sequencing and
// response shaping; every decision lives in the validator, normalizer and
// router.
type Agent struct {
	client     llm.Client
	storage    service.Storage
	sessions   *session.Manager
	validator  *Validator
	prompts    config.Prompts
	categories []string
	invokeOpts llm.InvokeOptions
}

// Config holds the pipeline's tunables.
type Config struct {
	Prompts     config.Prompts
	Categories  []string
	MaxTokens   int
	Temperature float64
}

// New creates an agent over the given model client and storage.
func New(client llm.Client, storage service.Storage, cfg Config) *Agent {
	categories := cfg.Categories
	if len(categories) == 0 {
		categories = config.DefaultCategories
	}
	prompts := cfg.Prompts
	if prompts.ParseExpense == "" {
		prompts = config.DefaultPrompts()
	}

	return &Agent{
		client:     client,
		storage:    storage,
		sessions:   session.NewManager(storage),
		validator:  NewValidator(categories, prompts),
		prompts:    prompts,
		categories: categories,
		invokeOpts: llm.InvokeOptions{
			MaxTokens:   cfg.MaxTokens,
			Temperature: cfg.Temperature,
		},
	}
}

// Process runs one expense utterance through the pipeline for a user. It
// never returns an error: every internal fault is folded into one of the
// three response shapes (success, clarification_needed, error).
func (a *Agent) Process(ctx context.Context, text, userID string) model.Response {
	history, err := a.sessions.Load(ctx, userID)
	if err != nil {
		slog.Error("failed to load session", "user_id", userID, "error", err)
		return model.Response{Status: model.ResponseError, Message: msgGenericError}
	}

	state := &model.PipelineState{
		Text:    text,
		UserID:  userID,
		Status:  model.StatusPending,
		History: history,
	}

	a.parse(ctx, state)
	a.validate(state)

	if RouteAfterValidation(state) == RoutePersist {
		a.persist(ctx, state)
	}

	a.recordHistory(ctx, state)

	return formatResponse(state)
}

// parse asks the model to structure the utterance and extracts the candidate
// intent from its reply. Both an unreachable model and an unparseable reply
// leave Parsed nil; the validator turns that into a retry clarification.
func (a *Agent) parse(ctx context.Context, state *model.PipelineState) {
	prompt := config.RenderTemplate(a.prompts.ParseExpense, map[string]string{
		"text":       state.Text,
		"categories": strings.Join(a.categories, ", "),
	})

	response, err := a.client.Invoke(ctx, prompt, a.invokeOpts)
	if err != nil {
		slog.Error("language model invocation failed", "user_id", state.UserID, "error", err)
		state.Status = model.StatusError
		return
	}

	if intent := parser.ExtractIntent(response); intent != nil {
		state.Parsed = intent
		return
	}

	slog.Debug("no intent found in model response", "user_id", state.UserID, "response_bytes", len(response))
	state.Status = model.StatusError
}

func (a *Agent) validate(state *model.PipelineState) {
	status, message := a.validator.Validate(state.Parsed, state.Text)
	state.Status = status
	state.NeedsClarification = status != model.StatusValid
	state.ClarificationMessage = message
}

// persist writes the validated intent. On failure the status is downgraded
// to error with an apology message; the candidate is discarded, not retried.
func (a *Agent) persist(ctx context.Context, state *model.PipelineState) {
	parsed := state.Parsed

	id, err := a.storage.InsertExpense(ctx, *parsed.Amount, parsed.Category, parsed.Note)
	if err != nil {
		slog.Error("failed to insert expense", "user_id", state.UserID, "error", err)
		state.Status = model.StatusError
		state.NeedsClarification = true
		state.ClarificationMessage = msgPersistFailed
		return
	}

	state.ExpenseID = &id
	slog.Info("expense recorded",
		"expense_id", id,
		"user_id", state.UserID,
		"category", parsed.Category,
		"amount", parsed.Amount)
}

// recordHistory appends this turn and saves the session regardless of
// outcome, so error and clarification turns also become context. A save
// failure is logged but does not alter the response: the expense, if any,
// is already committed.
func (a *Agent) recordHistory(ctx context.Context, state *model.PipelineState) {
	entry := model.HistoryEntry{
		Text:   state.Text,
		Parsed: state.Parsed.Clone(),
		Status: state.Status,
	}
	state.History = session.Append(state.History, entry)

	if err := a.sessions.Save(ctx, state.UserID, state.History); err != nil {
		slog.Error("failed to save session", "user_id", state.UserID, "error", err)
	}
}

// formatResponse shapes the final caller-facing response from terminal
// pipeline state.
func formatResponse(state *model.PipelineState) model.Response {
	if state.NeedsClarification {
		return model.Response{
			Status:  model.ResponseClarificationNeeded,
			Message: state.ClarificationMessage,
		}
	}

	if state.Status == model.StatusError {
		return model.Response{Status: model.ResponseError, Message: msgGenericError}
	}

	parsed := state.Parsed
	return model.Response{
		Status:    model.ResponseSuccess,
		Message:   fmt.Sprintf("%s added to %s", model.FormatCurrency(*parsed.Amount), parsed.Category),
		ExpenseID: state.ExpenseID,
		Amount:    parsed.Amount,
		Category:  parsed.Category,
	}
}
