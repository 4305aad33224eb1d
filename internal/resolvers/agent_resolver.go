package resolvers

import (
	"context"

	"primecasa-catalog/internal/models"
	"primecasa-catalog/internal/repositories"
	"primecasa-catalog/pkg/cache"
	"primecasa-catalog/pkg/logger"
	"primecasa-catalog/pkg/metrics"
)

// AgentResolver resolves an agent's public profile, consulting the
// process-wide agent cache before falling back to a record lookup.
type AgentResolver struct {
	cache *cache.Store[models.AgentProfile]
	repo  repositories.AgentRepository
}

func NewAgentResolver(store *cache.Store[models.AgentProfile], repo repositories.AgentRepository) *AgentResolver {
	return &AgentResolver{cache: store, repo: repo}
}

// Resolve returns the agent's profile, or nil for an empty id or when the
// lookup fails. Failures are not cached, so a transient error is retried on
// the next access instead of poisoning the cache.
func (r *AgentResolver) Resolve(ctx context.Context, agentID string) *models.AgentProfile {
	if agentID == "" {
		return nil
	}

	if cached, ok, _ := r.cache.Get(agentID); ok {
		metrics.CacheHitsTotal.WithLabelValues("agents").Inc()
		profile := cached
		return &profile
	}
	metrics.CacheMissesTotal.WithLabelValues("agents").Inc()

	agent, err := r.repo.FindByID(ctx, agentID)
	if err != nil {
		logger.GlobalLogger.Debugf("agent lookup failed for %s: %v", agentID, err)
		return nil
	}
	if agent == nil {
		return nil
	}

	profile := models.AgentProfile{
		ID:       agent.AgentID,
		Name:     agent.FullName,
		Position: agent.Position,
		Email:    agent.Email,
		Phone:    agent.Phone,
		PhotoURL: agent.PhotoURL,
	}
	r.cache.Set(agentID, profile)
	return &profile
}

// Invalidate drops one agent's cached profile.
func (r *AgentResolver) Invalidate(agentID string) {
	r.cache.Invalidate(agentID)
}

// Clear drops the whole agent cache.
func (r *AgentResolver) Clear() {
	r.cache.Clear()
}
