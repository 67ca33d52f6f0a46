package engine

import "github.com/Veraticus/budgetbuddy/internal/model"

// Route is the decision taken after validation.
type Route string

// Routes.
const (
	// RoutePersist continues to the persistence stage.
	RoutePersist Route = "persist"
	// RouteClarify terminates the pipeline with a clarification response.
	RouteClarify Route = "clarify"
)

// RouteAfterValidation is a pure decision over the validated state: stop and
// ask the user whenever clarification is needed, otherwise persist.
func RouteAfterValidation(state *model.PipelineState) Route {
	if state.NeedsClarification {
		return RouteClarify
	}
	return RoutePersist
}
