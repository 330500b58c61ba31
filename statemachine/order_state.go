package statemachine

import (
	"errors"

	"github.com/Verah-Mokaya/foodcourt-sub000/models"
)

// Transition defines a valid state change and who can perform it.
type Transition struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor string // "owner", "customer"
}

// validTransitions is the forward-only order lifecycle. The backend
// is the real enforcer; this table decides which action buttons the
// UI exposes and rejects bad PATCHes before they hit the network.
var validTransitions = []Transition{
	// Outlet owner moves the order through the kitchen
	{From: models.StatusPending, To: models.StatusPreparing, Actor: "owner"},
	{From: models.StatusPreparing, To: models.StatusReady, Actor: "owner"},
	{From: models.StatusReady, To: models.StatusCompleted, Actor: "owner"},
	// Cancellation is only possible before the kitchen starts
	{From: models.StatusPending, To: models.StatusCancelled, Actor: "owner"},
	{From: models.StatusPending, To: models.StatusCancelled, Actor: "customer"},
}

type transitionKey struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor string
}

var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// NextStatuses returns all valid next states from a given state,
// regardless of actor.
func NextStatuses(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks if a given actor can move from one state to
// another.
func CanTransition(from, to models.OrderStatus, actor string) error {
	if transitionMap[transitionKey{From: from, To: to, Actor: actor}] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " -> " + string(to) +
			" is not allowed for actor '" + actor + "'. " +
			"Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := NextStatuses(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// AllTransitions returns the full table for documentation endpoints.
func AllTransitions() []Transition {
	return validTransitions
}
