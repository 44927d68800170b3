package agent

import (
	"context"
	"fmt"
	"time"

	"travel-planning-assistant/internal/model"
	"travel-planning-assistant/pkg/gemini"
	"travel-planning-assistant/pkg/llmprovider"
	"travel-planning-assistant/pkg/log"
)

// base carries what every agent variant shares: identity, the model
// chain, and a bounded interaction memory. Variants embed it and add
// their prompt construction and post-processing.
type base struct {
	kind   Kind
	name   string
	role   string
	system string
	llm    *llmprovider.Manager
	l      log.Logger
	mem    *Memory
}

func newBase(kind Kind, name, role, system string, llm *llmprovider.Manager, l log.Logger, memoryLimit int) base {
	return base{
		kind:   kind,
		name:   name,
		role:   role,
		system: system,
		llm:    llm,
		l:      l,
		mem:    NewMemory(memoryLimit),
	}
}

func (b *base) Kind() Kind   { return b.kind }
func (b *base) Name() string { return b.name }
func (b *base) Role() string { return b.role }

func (b *base) Memory() []MemoryEntry {
	return b.mem.Entries()
}

// generate runs one model call under the agent's system prompt and records
// the interaction, failed calls included, in the agent's memory.
func (b *base) generate(ctx context.Context, task Task, prompt string) (string, error) {
	resp, err := b.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: b.system,
		Messages: []llmprovider.Message{
			{Role: gemini.RoleUser, Text: prompt},
		},
		Temperature: AgentTemperature,
	})
	if err != nil {
		b.mem.Add(MemoryEntry{Task: task, Err: err.Error(), Timestamp: time.Now()})
		b.l.Warnf(ctx, "%s: %s call failed: %v", LogPrefixProcess, b.name, err)
		return "", fmt.Errorf("%s: %w", b.name, err)
	}

	b.mem.Add(MemoryEntry{Task: task, Response: resp.Text, Timestamp: time.Now()})
	b.l.Debugf(ctx, "%s: %s answered via %s", LogPrefixProcess, b.name, resp.Model)
	return resp.Text, nil
}

// dateOrFlexible renders a trip date for prompts, tolerating undated trips.
func dateOrFlexible(t time.Time) string {
	if t.IsZero() {
		return "flexible"
	}
	return t.Format(model.DateLayout)
}
